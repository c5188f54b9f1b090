package btrfs

import (
	"unsafe"

	"github.com/dennwc/ioctl"
)

const ioctlMagic = 0x94

const devicePathNameMax = 1024

// LabelSize is the fixed capacity of a filesystem label, including the
// terminating NUL enforced by the kernel.
const LabelSize = 256

// subvolReadOnly marks a read-only subvolume in the subvolume flags word.
const subvolReadOnly = uint64(1) << 1

// subvolumeRootInode is the fixed inode number of every subvolume root.
const subvolumeRootInode = 256

// Selector bits of the device property exchange: a request carries the
// union of field bits it wants handled, plus DevPropertyRead for a query.
// A write request must carry only the field bits being written.
const (
	DevPropertyType = uint64(1) << 0
	DevPropertyRead = uint64(1) << 60
)

// The allocation hint classes occupy the lowest bits of the device type
// bitmask; all other bits of the mask are owned by unrelated features and
// must survive a property write unchanged.
const (
	DevAllocationMaskBitCount = 3
	DevAllocationMask         = uint64(1)<<DevAllocationMaskBitCount - 1

	DevAllocationPreferredData     = uint64(0)
	DevAllocationPreferredMetadata = uint64(1)
	DevAllocationMetadataOnly      = uint64(2)
	DevAllocationDataOnly          = uint64(3)
)

type ioctlFsInfoArgs struct {
	maxID          uint64
	numDevices     uint64
	fsid           [16]byte
	nodesize       uint32
	sectorsize     uint32
	cloneAlignment uint32
	_              [980]byte // pad to 1k
}

type ioctlDevInfoArgs struct {
	devid      uint64 // in/out
	uuid       [16]byte
	bytesUsed  uint64
	totalBytes uint64
	_          [379]uint64 // pad to 4k
	path       [devicePathNameMax]byte
}

type ioctlDevProperties struct {
	devid      uint64
	properties uint64 // selector bits
	typ        uint64
	devGroup   uint64
	seed       uint8
	_          [7]byte
	_          [4]uint64
}

var (
	iocSubvolGetflags = ioctl.IOR(ioctlMagic, 25, unsafe.Sizeof(uint64(0)))
	iocSubvolSetflags = ioctl.IOW(ioctlMagic, 26, unsafe.Sizeof(uint64(0)))
	iocDevInfo        = ioctl.IOWR(ioctlMagic, 30, unsafe.Sizeof(ioctlDevInfoArgs{}))
	iocFsInfo         = ioctl.IOR(ioctlMagic, 31, unsafe.Sizeof(ioctlFsInfoArgs{}))
	iocDevProperties  = ioctl.IOWR(ioctlMagic, 64, unsafe.Sizeof(ioctlDevProperties{}))
	iocGetFsLabel     = ioctl.IOR(ioctlMagic, 49, LabelSize)
	iocSetFsLabel     = ioctl.IOW(ioctlMagic, 50, LabelSize)
)

// cString interprets a fixed-capacity record field as a NUL-terminated string.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}

	return string(b)
}
