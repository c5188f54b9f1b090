package props

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/desertwitch/bprop/internal/props/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

type fakeFileInfo struct {
	mode os.FileMode
}

func (fi fakeFileInfo) Name() string       { return "fake" }
func (fi fakeFileInfo) Size() int64        { return 0 }
func (fi fakeFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (fi fakeFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi fakeFileInfo) Sys() any           { return nil }

func testDetector(t *testing.T) (*Detector, *mocks.OsProvider, *mocks.UnixProvider, *mocks.SubvolumeProvider, *mocks.MountedProvider) {
	t.Helper()

	osMock := mocks.NewOsProvider(t)
	unixMock := mocks.NewUnixProvider(t)
	subvolMock := mocks.NewSubvolumeProvider(t)
	mountMock := mocks.NewMountedProvider(t)

	detector := &Detector{
		osHandler:    osMock,
		unixHandler:  unixMock,
		btrfsHandler: subvolMock,
		mountHandler: mountMock,
	}

	return detector, osMock, unixMock, subvolMock, mountMock
}

func statfsBtrfs(unixMock *mocks.UnixProvider, path string) {
	unixMock.On("Statfs", path, mock.Anything).Run(func(args mock.Arguments) {
		buf := args.Get(1).(*unix.Statfs_t)
		buf.Type = unix.BTRFS_SUPER_MAGIC
	}).Return(nil)
}

// TestDetect_Success_BlockDevice tests that a block device resolves to
// [Device] without any filesystem probing.
func TestDetect_Success_BlockDevice(t *testing.T) {
	t.Parallel()

	detector, osMock, unixMock, _, _ := testDetector(t)

	osMock.On("Stat", "/dev/sdb1").Return(fakeFileInfo{mode: os.ModeDevice}, nil)

	types, err := detector.Detect("/dev/sdb1")
	require.NoError(t, err)
	assert.Equal(t, Device, types)

	unixMock.AssertNotCalled(t, "Statfs", mock.Anything, mock.Anything)
}

// TestDetect_Success_CharDeviceIsNotDevice tests that a character device does
// not short-circuit as a block device.
func TestDetect_Success_CharDeviceIsNotDevice(t *testing.T) {
	t.Parallel()

	detector, osMock, unixMock, subvolMock, _ := testDetector(t)

	osMock.On("Stat", "/dev/null").Return(fakeFileInfo{mode: os.ModeDevice | os.ModeCharDevice}, nil)
	statfsBtrfs(unixMock, "/dev/null")
	subvolMock.On("IsSubvolume", "/dev/null").Return(false, nil)

	types, err := detector.Detect("/dev/null")
	require.NoError(t, err)
	assert.Equal(t, Inode, types)
}

// TestDetect_Success_RegularFile tests a plain file on btrfs.
func TestDetect_Success_RegularFile(t *testing.T) {
	t.Parallel()

	detector, osMock, unixMock, subvolMock, _ := testDetector(t)

	osMock.On("Stat", "/mnt/pool/data.img").Return(fakeFileInfo{}, nil)
	statfsBtrfs(unixMock, "/mnt/pool/data.img")
	subvolMock.On("IsSubvolume", "/mnt/pool/data.img").Return(false, nil)

	types, err := detector.Detect("/mnt/pool/data.img")
	require.NoError(t, err)
	assert.Equal(t, Inode, types)
}

// TestDetect_Success_Subvolume tests an unmounted subvolume root.
func TestDetect_Success_Subvolume(t *testing.T) {
	t.Parallel()

	detector, osMock, unixMock, subvolMock, mountMock := testDetector(t)

	osMock.On("Stat", "/mnt/pool/snaps").Return(fakeFileInfo{mode: os.ModeDir}, nil)
	statfsBtrfs(unixMock, "/mnt/pool/snaps")
	subvolMock.On("IsSubvolume", "/mnt/pool/snaps").Return(true, nil)
	mountMock.On("Mounted", "/mnt/pool/snaps").Return(false, nil)

	types, err := detector.Detect("/mnt/pool/snaps")
	require.NoError(t, err)
	assert.Equal(t, Subvolume|Inode, types)
}

// TestDetect_Success_MountedRoot tests a subvolume that is also the
// filesystem mountpoint.
func TestDetect_Success_MountedRoot(t *testing.T) {
	t.Parallel()

	detector, osMock, unixMock, subvolMock, mountMock := testDetector(t)

	osMock.On("Stat", "/mnt/pool").Return(fakeFileInfo{mode: os.ModeDir}, nil)
	statfsBtrfs(unixMock, "/mnt/pool")
	subvolMock.On("IsSubvolume", "/mnt/pool").Return(true, nil)
	mountMock.On("Mounted", "/mnt/pool").Return(true, nil)

	types, err := detector.Detect("/mnt/pool")
	require.NoError(t, err)
	assert.Equal(t, Subvolume|Root|Inode, types)
}

// TestDetect_Fail_NotBtrfs tests rejection of paths on foreign filesystems.
func TestDetect_Fail_NotBtrfs(t *testing.T) {
	t.Parallel()

	detector, osMock, unixMock, subvolMock, _ := testDetector(t)

	osMock.On("Stat", "/home/user").Return(fakeFileInfo{mode: os.ModeDir}, nil)
	unixMock.On("Statfs", "/home/user", mock.Anything).Run(func(args mock.Arguments) {
		buf := args.Get(1).(*unix.Statfs_t)
		buf.Type = unix.EXT4_SUPER_MAGIC
	}).Return(nil)

	types, err := detector.Detect("/home/user")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotBtrfs)
	assert.Equal(t, ObjectTypes(0), types)

	subvolMock.AssertNotCalled(t, "IsSubvolume", mock.Anything)
}

// TestDetect_Fail_StatError tests propagation of a failed stat.
func TestDetect_Fail_StatError(t *testing.T) {
	t.Parallel()

	detector, osMock, _, _, _ := testDetector(t)

	osMock.On("Stat", "/does/not/exist").Return(nil, fs.ErrNotExist)

	_, err := detector.Detect("/does/not/exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestDetect_Fail_SubvolumeProbeError tests propagation of a failed
// subvolume probe.
func TestDetect_Fail_SubvolumeProbeError(t *testing.T) {
	t.Parallel()

	detector, osMock, unixMock, subvolMock, _ := testDetector(t)

	probeErr := errors.New("probe failed")

	osMock.On("Stat", "/mnt/pool").Return(fakeFileInfo{mode: os.ModeDir}, nil)
	statfsBtrfs(unixMock, "/mnt/pool")
	subvolMock.On("IsSubvolume", "/mnt/pool").Return(false, probeErr)

	_, err := detector.Detect("/mnt/pool")
	require.Error(t, err)
	assert.ErrorIs(t, err, probeErr)
}
