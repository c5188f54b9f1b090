// Package device resolves an arbitrary device path to the internal device id
// and owning mountpoint of a live mounted btrfs filesystem. Resolution works
// by enumerating the filesystem's devices and matching kernel device numbers,
// so it needs no state beyond what the filesystem itself reports.
package device

import (
	"errors"
	"fmt"
	"os"

	"github.com/desertwitch/bprop/internal/btrfs"
	"golang.org/x/sys/unix"
)

type mountProvider interface {
	MountPoint(devicePath string) (string, error)
}

type osProvider interface {
	Open(name string) (*os.File, error)
}

type unixProvider interface {
	Stat(path string, stat *unix.Stat_t) error
}

type btrfsProvider interface {
	FsInfo(f *os.File) (btrfs.FsInfo, error)
	DevInfo(f *os.File, devid uint64) (btrfs.DevInfo, error)
}

// Resolution is the transient result of resolving a device path against a
// mounted filesystem; it is computed per call and never cached.
type Resolution struct {
	// DevID is the filesystem's internal id for the device.
	DevID uint64

	// MountPath is the mountpoint of the filesystem owning the device.
	MountPath string
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	mountHandler mountProvider
	osHandler    osProvider
	unixHandler  unixProvider
	btrfsHandler btrfsProvider
}

// NewHandler returns a pointer to a new device [Handler].
func NewHandler(mountHandler mountProvider, osHandler osProvider, unixHandler unixProvider, btrfsHandler btrfsProvider) *Handler {
	return &Handler{
		mountHandler: mountHandler,
		osHandler:    osHandler,
		unixHandler:  unixHandler,
		btrfsHandler: btrfsHandler,
	}
}

// Resolve maps devicePath to the id it carries within the mounted filesystem
// that owns it. Device ids are scanned from lowest to highest and the first
// device whose kernel device numbers match wins. Detached and missing ids are
// skipped; a denied filesystem info query returns [ErrPermissionDenied]
// without scanning; exhausting all ids returns [ErrDeviceNotFound].
func (h *Handler) Resolve(devicePath string) (Resolution, error) {
	mountPath, err := h.mountHandler.MountPoint(devicePath)
	if err != nil {
		return Resolution{}, fmt.Errorf("(device) failed to find mountpoint of %s: %w", devicePath, err)
	}

	f, err := h.osHandler.Open(mountPath)
	if err != nil {
		return Resolution{}, fmt.Errorf("(device) failed to open %s: %w", mountPath, err)
	}
	defer f.Close()

	var want unix.Stat_t
	if err := h.unixHandler.Stat(devicePath, &want); err != nil {
		return Resolution{}, fmt.Errorf("(device) failed to stat %s: %w", devicePath, err)
	}

	info, err := h.btrfsHandler.FsInfo(f)
	if err != nil {
		if errors.Is(err, unix.EPERM) {
			return Resolution{}, fmt.Errorf("(device) filesystem info query on %s: %w", mountPath, ErrPermissionDenied)
		}

		return Resolution{}, fmt.Errorf("(device) failed to query %s: %w", mountPath, err)
	}

	for devid := uint64(0); devid <= info.MaxID; devid++ {
		dev, err := h.btrfsHandler.DevInfo(f, devid)
		if err != nil {
			if errors.Is(err, unix.ENODEV) {
				continue
			}

			return Resolution{}, fmt.Errorf("(device) failed to query devid=%d on %s: %w", devid, mountPath, err)
		}

		if dev.Path == "" {
			// Missing device.
			continue
		}

		var st unix.Stat_t
		if err := h.unixHandler.Stat(dev.Path, &st); err != nil {
			return Resolution{}, fmt.Errorf("(device) failed to stat %s: %w", dev.Path, err)
		}

		if unix.Major(st.Rdev) == unix.Major(want.Rdev) && unix.Minor(st.Rdev) == unix.Minor(want.Rdev) {
			return Resolution{DevID: dev.DevID, MountPath: mountPath}, nil
		}
	}

	return Resolution{}, fmt.Errorf("(device) %s on %s: %w", devicePath, mountPath, ErrDeviceNotFound)
}
