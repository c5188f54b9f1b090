// Package schema provides the principal schematics for all other packages. It
// wraps the (Unix-based) operating system calls that property handling relies
// on, so that consuming packages can declare narrow provider interfaces and
// remain testable without a live btrfs filesystem. The package serves as a
// foundational layer for filesystem interactions throughout the codebase.
package schema
