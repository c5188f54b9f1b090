package btrfs

import (
	"fmt"
)

// FsLabel reads the label of the mounted filesystem that path belongs to.
func (b *Handler) FsLabel(path string) (string, error) {
	f, err := b.osHandler.Open(path)
	if err != nil {
		return "", fmt.Errorf("(btrfs) failed to open %s: %w", path, err)
	}
	defer f.Close()

	var label [LabelSize]byte
	if err := b.ioctlHandler.Do(f, iocGetFsLabel, &label); err != nil {
		return "", fmt.Errorf("(btrfs) failed to get label of %s: %w", path, err)
	}

	return cString(label[:]), nil
}

// SetFsLabel writes label as the new label of the mounted filesystem that
// path belongs to. The string content is passed through without any
// normalization.
func (b *Handler) SetFsLabel(path string, label string) error {
	if len(label) >= LabelSize {
		return fmt.Errorf("(btrfs) label of %d bytes: %w", len(label), ErrLabelTooLong)
	}

	f, err := b.osHandler.Open(path)
	if err != nil {
		return fmt.Errorf("(btrfs) failed to open %s: %w", path, err)
	}
	defer f.Close()

	var buf [LabelSize]byte
	copy(buf[:], label)

	if err := b.ioctlHandler.Do(f, iocSetFsLabel, &buf); err != nil {
		return fmt.Errorf("(btrfs) failed to set label of %s: %w", path, err)
	}

	return nil
}
