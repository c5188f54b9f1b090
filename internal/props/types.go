package props

import (
	"fmt"
	"strings"
)

// ObjectTypes is a bitmask of filesystem object kinds a property request can
// address. A path often qualifies as more than one kind at once (a subvolume
// root is also an inode), so requests carry the full detected mask and a
// descriptor applies when the intersection is non-empty.
type ObjectTypes uint

const (
	// Subvolume is an independently mountable namespace of the filesystem.
	Subvolume ObjectTypes = 1 << iota

	// Device is one underlying storage device of the filesystem.
	Device

	// Root is the root of a mounted filesystem.
	Root

	// Inode is an individual file or directory.
	Inode
)

//nolint:gochecknoglobals
var objectTypeNames = []struct {
	types ObjectTypes
	name  string
}{
	{Subvolume, "subvolume"},
	{Device, "device"},
	{Root, "root"},
	{Inode, "inode"},
}

// String returns the slash-joined names of all set type bits.
func (t ObjectTypes) String() string {
	names := []string{}

	for _, candidate := range objectTypeNames {
		if t&candidate.types != 0 {
			names = append(names, candidate.name)
		}
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "/")
}

// ParseObjectTypes maps a single object-type name to its mask bit.
func ParseObjectTypes(name string) (ObjectTypes, error) {
	for _, candidate := range objectTypeNames {
		if name == candidate.name {
			return candidate.types, nil
		}
	}

	return 0, fmt.Errorf("(props) object type %q: %w", name, ErrUnknownObjectType)
}
