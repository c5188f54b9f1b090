package props

import "errors"

var (
	// ErrInvalidValue is an error that occurs when a caller-supplied value
	// fails property-specific validation; it is never retried.
	ErrInvalidValue = errors.New("invalid value for property")

	// ErrNotApplicable is an error that occurs when a property does not
	// apply to the declared object type(s).
	ErrNotApplicable = errors.New("property not applicable to object type")

	// ErrReadOnlyProperty is an error that occurs on an attempt to set a
	// get-only property.
	ErrReadOnlyProperty = errors.New("property may only be read")

	// ErrUnknownProperty is an error that occurs when no descriptor is
	// registered under the requested name.
	ErrUnknownProperty = errors.New("no such property")

	// ErrUnknownObjectType is an error that occurs when an object-type
	// name cannot be parsed.
	ErrUnknownObjectType = errors.New("no such object type")

	// ErrNotBtrfs is an error that occurs when type detection runs on a
	// path outside any btrfs filesystem.
	ErrNotBtrfs = errors.New("object is not on a btrfs filesystem")

	// ErrNoObjectTypes is a registry construction error for a descriptor
	// without applicable object types.
	ErrNoObjectTypes = errors.New("descriptor has no applicable object types")

	// ErrDuplicateProperty is a registry construction error for a name
	// registered more than once.
	ErrDuplicateProperty = errors.New("descriptor name already registered")
)
