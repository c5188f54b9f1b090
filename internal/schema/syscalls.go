package schema

import (
	"os"

	"github.com/dennwc/ioctl"
	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// OpenFile wraps around [os.OpenFile].
func (*OS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Stat wraps around [unix.Stat].
func (*Unix) Stat(path string, stat *unix.Stat_t) error {
	return unix.Stat(path, stat)
}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

// Statfs wraps around [unix.Statfs].
func (*Unix) Statfs(path string, buf *unix.Statfs_t) error {
	return unix.Statfs(path, buf)
}

// Ioctl is an implementation wrapping ioctl control exchanges.
type Ioctl struct{}

// Do wraps around [ioctl.Do], issuing the request against an open file with
// the argument record referenced by pointer.
func (*Ioctl) Do(f *os.File, req uintptr, arg any) error {
	return ioctl.Do(f, req, arg)
}

// Xattr is an implementation wrapping extended attribute functions.
type Xattr struct{}

// FGet wraps around [xattr.FGet].
func (*Xattr) FGet(f *os.File, name string) ([]byte, error) {
	return xattr.FGet(f, name)
}

// FSet wraps around [xattr.FSet].
func (*Xattr) FSet(f *os.File, name string, data []byte) error {
	return xattr.FSet(f, name, data)
}
