package device

import "errors"

var (
	// ErrDeviceNotFound is an error that occurs when no device of the
	// owning filesystem matches the kernel device numbers of the input
	// path after all assigned ids were scanned.
	ErrDeviceNotFound = errors.New("no matching device on filesystem")

	// ErrPermissionDenied is an error that occurs when the filesystem
	// refuses the info query; it is surfaced immediately and no scan is
	// attempted.
	ErrPermissionDenied = errors.New("permission denied querying filesystem")

	// ErrNoMountPoint is an error that occurs when no mounted btrfs
	// filesystem claims the given device path.
	ErrNoMountPoint = errors.New("device is not part of a mounted btrfs filesystem")
)
