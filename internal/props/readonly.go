package props

import (
	"fmt"
	"io"
)

// readOnlyProperty backs the "ro" property with the subvolume read-only
// state of the management layer.
type readOnlyProperty struct {
	out      io.Writer
	btrfsOps btrfsProvider
}

func (p *readOnlyProperty) Get(types ObjectTypes, object string) error {
	readOnly, err := p.btrfsOps.SubvolumeReadOnly(object)
	if err != nil {
		return fmt.Errorf("(props-ro) failed to get for %s: %w", object, err)
	}

	fmt.Fprintf(p.out, "ro=%t\n", readOnly)

	return nil
}

func (p *readOnlyProperty) Set(types ObjectTypes, object string, value string) error {
	var readOnly bool

	switch value {
	case "true":
		readOnly = true
	case "false":
		readOnly = false
	default:
		return fmt.Errorf("(props-ro) %q: %w", value, ErrInvalidValue)
	}

	if err := p.btrfsOps.SetSubvolumeReadOnly(object, readOnly); err != nil {
		return fmt.Errorf("(props-ro) failed to set for %s: %w", object, err)
	}

	return nil
}
