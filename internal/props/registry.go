package props

import "fmt"

// propertyHandler is the shared get/set capability every property implements
// against its specific backing store. Get-mode implementations produce one
// human-readable name=value output line as a side effect of success.
type propertyHandler interface {
	Get(types ObjectTypes, object string) error
	Set(types ObjectTypes, object string, value string) error
}

// Descriptor describes one named property; it is defined once at process
// start and never mutated.
type Descriptor struct {
	// Name uniquely identifies the property across the registry.
	Name string

	// Description is human-readable text, informational only.
	Description string

	// ReadOnly marks a property that may only be read, never set.
	ReadOnly bool

	// Types are the object kinds the property applies to; never empty.
	Types ObjectTypes

	handler propertyHandler
}

// Registry is the immutable, ordered table of property descriptors.
type Registry struct {
	descriptors []*Descriptor
	byName      map[string]*Descriptor
}

func newRegistry(descriptors ...*Descriptor) (*Registry, error) {
	byName := make(map[string]*Descriptor, len(descriptors))

	for _, desc := range descriptors {
		if desc.Types == 0 {
			return nil, fmt.Errorf("(props) property %q: %w", desc.Name, ErrNoObjectTypes)
		}
		if _, exists := byName[desc.Name]; exists {
			return nil, fmt.Errorf("(props) property %q: %w", desc.Name, ErrDuplicateProperty)
		}
		byName[desc.Name] = desc
	}

	return &Registry{
		descriptors: descriptors,
		byName:      byName,
	}, nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	desc, exists := r.byName[name]
	if !exists {
		return nil, fmt.Errorf("(props) property %q: %w", name, ErrUnknownProperty)
	}

	return desc, nil
}

// ApplicableTo returns, in registry order, all descriptors applying to at
// least one of the given object types.
func (r *Registry) ApplicableTo(types ObjectTypes) []*Descriptor {
	applicable := []*Descriptor{}

	for _, desc := range r.descriptors {
		if desc.Types&types != 0 {
			applicable = append(applicable, desc)
		}
	}

	return applicable
}

// Names returns the registered property names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.descriptors))

	for _, desc := range r.descriptors {
		names = append(names, desc.Name)
	}

	return names
}

// Descriptors returns all registered descriptors in registry order.
func (r *Registry) Descriptors() []*Descriptor {
	descriptors := make([]*Descriptor, len(r.descriptors))
	copy(descriptors, r.descriptors)

	return descriptors
}
