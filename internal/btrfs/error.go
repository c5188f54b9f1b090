package btrfs

import "errors"

var (
	// ErrLabelTooLong is an error that occurs when a label exceeds the
	// fixed capacity of the filesystem label field.
	ErrLabelTooLong = errors.New("label exceeds filesystem label size")
)
