package btrfs

import (
	"fmt"
	"os"
)

// FsInfo queries the filesystem opened as f for its device topology, most
// notably the highest assigned device id.
func (b *Handler) FsInfo(f *os.File) (FsInfo, error) {
	var args ioctlFsInfoArgs

	if err := b.ioctlHandler.Do(f, iocFsInfo, &args); err != nil {
		return FsInfo{}, fmt.Errorf("(btrfs) failed to get filesystem info: %w", err)
	}

	return FsInfo{
		MaxID:      args.maxID,
		NumDevices: args.numDevices,
	}, nil
}

// DevInfo queries the filesystem opened as f for information about the device
// with the given id. A missing device reports an empty path; a detached id
// surfaces the kernel's "no such device" error unchanged for the caller to
// test against.
func (b *Handler) DevInfo(f *os.File, devid uint64) (DevInfo, error) {
	args := ioctlDevInfoArgs{devid: devid}

	if err := b.ioctlHandler.Do(f, iocDevInfo, &args); err != nil {
		return DevInfo{}, fmt.Errorf("(btrfs) failed to get info about device devid=%d: %w", devid, err)
	}

	return DevInfo{
		DevID:      args.devid,
		BytesUsed:  args.bytesUsed,
		TotalBytes: args.totalBytes,
		Path:       cString(args.path[:]),
	}, nil
}

// ReadDevProperties queries the filesystem opened as f for the type-bits
// field of the property record of the device with the given id. The request
// selects only that field, so nothing else is exchanged.
func (b *Handler) ReadDevProperties(f *os.File, devid uint64) (DevProperties, error) {
	args := ioctlDevProperties{
		devid:      devid,
		properties: DevPropertyType | DevPropertyRead,
	}

	if err := b.ioctlHandler.Do(f, iocDevProperties, &args); err != nil {
		return DevProperties{}, fmt.Errorf("(btrfs) failed to read properties of device devid=%d: %w", devid, err)
	}

	return DevProperties{
		DevID: args.devid,
		Type:  args.typ,
	}, nil
}

// WriteDevProperties writes back the type-bits field of a device property
// record. Only the type selector bit is set on the request, so unrelated
// stored fields are not clobbered.
func (b *Handler) WriteDevProperties(f *os.File, props DevProperties) error {
	args := ioctlDevProperties{
		devid:      props.DevID,
		properties: DevPropertyType,
		typ:        props.Type,
	}

	if err := b.ioctlHandler.Do(f, iocDevProperties, &args); err != nil {
		return fmt.Errorf("(btrfs) failed to write properties of device devid=%d: %w", props.DevID, err)
	}

	return nil
}
