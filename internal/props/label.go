package props

import (
	"fmt"
	"io"
)

// labelProperty backs the "label" property with the filesystem label ioctl.
// A device object is first resolved to the mountpoint of its owning live
// filesystem; the root object is addressed directly.
type labelProperty struct {
	out       io.Writer
	btrfsOps  btrfsProvider
	deviceOps resolveProvider
}

func (p *labelProperty) target(types ObjectTypes, object string) (string, error) {
	if types&Device == 0 {
		return object, nil
	}

	res, err := p.deviceOps.Resolve(object)
	if err != nil {
		return "", fmt.Errorf("(props-label) failed to resolve %s: %w", object, err)
	}

	return res.MountPath, nil
}

func (p *labelProperty) Get(types ObjectTypes, object string) error {
	path, err := p.target(types, object)
	if err != nil {
		return err
	}

	label, err := p.btrfsOps.FsLabel(path)
	if err != nil {
		return fmt.Errorf("(props-label) failed to get for %s: %w", object, err)
	}

	fmt.Fprintf(p.out, "label=%s\n", label)

	return nil
}

func (p *labelProperty) Set(types ObjectTypes, object string, value string) error {
	path, err := p.target(types, object)
	if err != nil {
		return err
	}

	if err := p.btrfsOps.SetFsLabel(path, value); err != nil {
		return fmt.Errorf("(props-label) failed to set for %s: %w", object, err)
	}

	return nil
}
