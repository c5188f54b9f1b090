package btrfs

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// IsSubvolume reports whether path is the root of a btrfs subvolume.
func (b *Handler) IsSubvolume(path string) (bool, error) {
	var st unix.Stat_t

	if err := b.unixHandler.Lstat(path, &st); err != nil {
		return false, fmt.Errorf("(btrfs) failed to lstat %s: %w", path, err)
	}

	return st.Ino == subvolumeRootInode, nil
}

// SubvolumeReadOnly queries the current read-only state of the subvolume at
// path.
func (b *Handler) SubvolumeReadOnly(path string) (bool, error) {
	f, err := b.osHandler.Open(path)
	if err != nil {
		return false, fmt.Errorf("(btrfs) failed to open %s: %w", path, err)
	}
	defer f.Close()

	var flags uint64
	if err := b.ioctlHandler.Do(f, iocSubvolGetflags, &flags); err != nil {
		return false, fmt.Errorf("(btrfs) failed to get subvolume flags of %s: %w", path, err)
	}

	return flags&subvolReadOnly != 0, nil
}

// SetSubvolumeReadOnly switches the read-only state of the subvolume at path.
// The remaining subvolume flags are carried over unchanged.
func (b *Handler) SetSubvolumeReadOnly(path string, readOnly bool) error {
	f, err := b.osHandler.Open(path)
	if err != nil {
		return fmt.Errorf("(btrfs) failed to open %s: %w", path, err)
	}
	defer f.Close()

	var flags uint64
	if err := b.ioctlHandler.Do(f, iocSubvolGetflags, &flags); err != nil {
		return fmt.Errorf("(btrfs) failed to get subvolume flags of %s: %w", path, err)
	}

	if readOnly {
		flags |= subvolReadOnly
	} else {
		flags &^= subvolReadOnly
	}

	if err := b.ioctlHandler.Do(f, iocSubvolSetflags, &flags); err != nil {
		return fmt.Errorf("(btrfs) failed to set subvolume flags of %s: %w", path, err)
	}

	return nil
}
