package device

import (
	"fmt"

	"github.com/moby/sys/mountinfo"
	"golang.org/x/sys/unix"
)

// MountinfoProvider finds mountpoints through the kernel's mount table. It
// matches mounts by kernel device numbers rather than source strings, so
// symlinked device paths (/dev/disk/by-id, ...) resolve like their targets.
type MountinfoProvider struct {
	unixHandler unixProvider
}

// NewMountinfoProvider returns a pointer to a new [MountinfoProvider].
func NewMountinfoProvider(unixHandler unixProvider) *MountinfoProvider {
	return &MountinfoProvider{
		unixHandler: unixHandler,
	}
}

// MountPoint returns the mountpoint of the mounted btrfs filesystem that has
// devicePath among its backing devices.
func (p *MountinfoProvider) MountPoint(devicePath string) (string, error) {
	var want unix.Stat_t
	if err := p.unixHandler.Stat(devicePath, &want); err != nil {
		return "", fmt.Errorf("(device-mountinfo) failed to stat %s: %w", devicePath, err)
	}

	mounts, err := mountinfo.GetMounts(mountinfo.FSTypeFilter("btrfs"))
	if err != nil {
		return "", fmt.Errorf("(device-mountinfo) failed to read mount table: %w", err)
	}

	for _, m := range mounts {
		var st unix.Stat_t
		if err := p.unixHandler.Stat(m.Source, &st); err != nil {
			// Sources like "none" or stale entries are not fatal.
			continue
		}

		if st.Rdev == want.Rdev {
			return m.Mountpoint, nil
		}
	}

	return "", fmt.Errorf("(device-mountinfo) %s: %w", devicePath, ErrNoMountPoint)
}

// Mounted reports whether path is itself a mountpoint.
func (p *MountinfoProvider) Mounted(path string) (bool, error) {
	mounted, err := mountinfo.Mounted(path)
	if err != nil {
		return false, fmt.Errorf("(device-mountinfo) failed to check %s: %w", path, err)
	}

	return mounted, nil
}
