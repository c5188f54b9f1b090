// Package props exposes a uniform property get/set interface over the
// heterogeneous objects of a btrfs filesystem: subvolumes, whole devices, the
// filesystem root and individual inodes. Each named property persists through
// a different backing mechanism behind one shared capability; an immutable
// registry of descriptors reconciles the divergent backends and enforces
// per-property applicability and value validation. The registry is built once
// and is safe to share across concurrent callers; the dispatcher itself
// performs no I/O.
package props

import (
	"fmt"
	"io"
	"os"

	"github.com/desertwitch/bprop/internal/btrfs"
	"github.com/desertwitch/bprop/internal/device"
)

type btrfsProvider interface {
	SubvolumeReadOnly(path string) (bool, error)
	SetSubvolumeReadOnly(path string, readOnly bool) error
	FsLabel(path string) (string, error)
	SetFsLabel(path string, label string) error
	ReadDevProperties(f *os.File, devid uint64) (btrfs.DevProperties, error)
	WriteDevProperties(f *os.File, props btrfs.DevProperties) error
}

type resolveProvider interface {
	Resolve(devicePath string) (device.Resolution, error)
}

type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Stat(name string) (os.FileInfo, error)
}

type xattrProvider interface {
	FGet(f *os.File, name string) ([]byte, error)
	FSet(f *os.File, name string, data []byte) error
}

// Handler is the principal dispatching structure of the package. It looks up
// property descriptors by name, checks object-type applicability and the
// read-only rule, and invokes the matching property implementation uniformly.
type Handler struct {
	registry *Registry
	out      io.Writer
}

// NewHandler returns a pointer to a new dispatching [Handler] with the full
// property registry wired against the given backends. Get-mode output lines
// are written to out.
func NewHandler(out io.Writer, btrfsOps btrfsProvider, deviceOps resolveProvider, osOps osProvider, xattrOps xattrProvider) (*Handler, error) {
	registry, err := newRegistry(
		&Descriptor{
			Name:        "ro",
			Description: "read-only status of a subvolume",
			Types:       Subvolume,
			handler:     &readOnlyProperty{out: out, btrfsOps: btrfsOps},
		},
		&Descriptor{
			Name:        "label",
			Description: "label of the filesystem",
			Types:       Device | Root,
			handler:     &labelProperty{out: out, btrfsOps: btrfsOps, deviceOps: deviceOps},
		},
		&Descriptor{
			Name:        "compression",
			Description: "compression algorithm for the file or directory",
			Types:       Inode,
			handler:     &compressionProperty{out: out, name: "compression", osOps: osOps, xattrOps: xattrOps},
		},
		&Descriptor{
			Name:        "allocation_hint",
			Description: "hint to store the data/metadata chunks",
			Types:       Device,
			handler:     &allocationHintProperty{out: out, btrfsOps: btrfsOps, deviceOps: deviceOps, osOps: osOps},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("(props) failed to build registry: %w", err)
	}

	return &Handler{
		registry: registry,
		out:      out,
	}, nil
}

// Registry returns the property registry for enumeration use cases.
func (h *Handler) Registry() *Registry {
	return h.registry
}

// Get reads the property name of the object addressed as types and prints its
// value as one name=value line.
func (h *Handler) Get(types ObjectTypes, object string, name string) error {
	desc, err := h.registry.Lookup(name)
	if err != nil {
		return err
	}

	if desc.Types&types == 0 {
		return fmt.Errorf("(props) %s on %s (%s): %w", name, object, types, ErrNotApplicable)
	}

	return desc.handler.Get(types&desc.Types, object)
}

// GetAll reads every property applicable to the object addressed as types, in
// registry order. The first failing property aborts the enumeration.
func (h *Handler) GetAll(types ObjectTypes, object string) error {
	for _, desc := range h.registry.ApplicableTo(types) {
		if err := desc.handler.Get(types&desc.Types, object); err != nil {
			return err
		}
	}

	return nil
}

// Set writes value as the new content of the property name on the object
// addressed as types.
func (h *Handler) Set(types ObjectTypes, object string, name string, value string) error {
	desc, err := h.registry.Lookup(name)
	if err != nil {
		return err
	}

	if desc.Types&types == 0 {
		return fmt.Errorf("(props) %s on %s (%s): %w", name, object, types, ErrNotApplicable)
	}

	if desc.ReadOnly {
		return fmt.Errorf("(props) %s on %s: %w", name, object, ErrReadOnlyProperty)
	}

	return desc.handler.Set(types&desc.Types, object, value)
}
