package props

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Statfs(path string, buf *unix.Statfs_t) error
}

type subvolumeProvider interface {
	IsSubvolume(path string) (bool, error)
}

type mountedProvider interface {
	Mounted(path string) (bool, error)
}

// Detector determines which object kinds a given path can be addressed as,
// for callers that do not declare a type themselves.
type Detector struct {
	osHandler    osProvider
	unixHandler  unixProvider
	btrfsHandler subvolumeProvider
	mountHandler mountedProvider
}

// NewDetector returns a pointer to a new [Detector].
func NewDetector(osHandler osProvider, unixHandler unixProvider, btrfsHandler subvolumeProvider, mountHandler mountedProvider) *Detector {
	return &Detector{
		osHandler:    osHandler,
		unixHandler:  unixHandler,
		btrfsHandler: btrfsHandler,
		mountHandler: mountHandler,
	}
}

// Detect returns the full type mask of path: a block device is a [Device];
// anything on btrfs is an [Inode], additionally a [Subvolume] when it is a
// subvolume root and a [Root] when it is itself the filesystem mountpoint.
func (d *Detector) Detect(path string) (ObjectTypes, error) {
	fi, err := d.osHandler.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("(props-detect) failed to stat %s: %w", path, err)
	}

	if fi.Mode()&os.ModeDevice != 0 && fi.Mode()&os.ModeCharDevice == 0 {
		return Device, nil
	}

	var sfs unix.Statfs_t
	if err := d.unixHandler.Statfs(path, &sfs); err != nil {
		return 0, fmt.Errorf("(props-detect) failed to statfs %s: %w", path, err)
	}

	if sfs.Type != unix.BTRFS_SUPER_MAGIC {
		return 0, fmt.Errorf("(props-detect) %s: %w", path, ErrNotBtrfs)
	}

	types := Inode

	isSubvol, err := d.btrfsHandler.IsSubvolume(path)
	if err != nil {
		return 0, fmt.Errorf("(props-detect) %s: %w", path, err)
	}

	if isSubvol {
		types |= Subvolume

		mounted, err := d.mountHandler.Mounted(path)
		if err != nil {
			return 0, fmt.Errorf("(props-detect) %s: %w", path, err)
		}

		if mounted {
			types |= Root
		}
	}

	return types, nil
}
