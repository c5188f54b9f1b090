// Package btrfs implements the low-level control exchanges with a mounted
// btrfs filesystem: subvolume flags, the filesystem label and the per-device
// property records that are only reachable through binary ioctl requests.
// Argument records mirror the kernel's fixed layouts field by field, so the
// package stays wire compatible with the device property query/update
// mechanism.
package btrfs

import (
	"os"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	Open(name string) (*os.File, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
}

type ioctlProvider interface {
	Do(f *os.File, req uintptr, arg any) error
}

// FsInfo is the decoded result of a filesystem info query.
type FsInfo struct {
	// MaxID is the highest device id the filesystem has assigned.
	MaxID uint64

	// NumDevices is the number of devices currently attached.
	NumDevices uint64
}

// DevInfo is the decoded result of a per-device info query.
type DevInfo struct {
	DevID      uint64
	BytesUsed  uint64
	TotalBytes uint64

	// Path is the device node path, empty for a missing device.
	Path string
}

// DevProperties is the type-bits slice of a device's property record.
type DevProperties struct {
	DevID uint64
	Type  uint64
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	osHandler    osProvider
	unixHandler  unixProvider
	ioctlHandler ioctlProvider
}

// NewHandler returns a pointer to a new btrfs [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider, ioctlHandler ioctlProvider) *Handler {
	return &Handler{
		osHandler:    osHandler,
		unixHandler:  unixHandler,
		ioctlHandler: ioctlHandler,
	}
}
