package props

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/xattr"
)

// xattrPrefix is the fixed attribute namespace; the property name is
// concatenated directly, without a separator.
const xattrPrefix = "btrfs."

// compressionProperty backs the "compression" property with a raw extended
// attribute on the opened inode.
type compressionProperty struct {
	out      io.Writer
	name     string
	osOps    osProvider
	xattrOps xattrProvider
}

func (p *compressionProperty) Get(types ObjectTypes, object string) error {
	f, err := p.osOps.OpenFile(object, os.O_RDONLY, 0)
	if err != nil {
		return fmt.Errorf("(props-compression) failed to open %s: %w", object, err)
	}
	defer f.Close()

	data, err := p.xattrOps.FGet(f, xattrPrefix+p.name)
	if err != nil {
		if errors.Is(err, xattr.ENOATTR) {
			// An unset attribute is not an error; there is just
			// nothing to print.
			return nil
		}

		return fmt.Errorf("(props-compression) failed to get for %s: %w", object, err)
	}

	fmt.Fprintf(p.out, "%s=%s\n", p.name, data)

	return nil
}

func (p *compressionProperty) Set(types ObjectTypes, object string, value string) error {
	fi, err := p.osOps.Stat(object)
	if err != nil {
		return fmt.Errorf("(props-compression) failed to stat %s: %w", object, err)
	}

	// Directories cannot be opened for writing; a read-only handle is
	// enough to write the attribute.
	flag := os.O_RDWR
	if fi.IsDir() {
		flag = os.O_RDONLY
	}

	f, err := p.osOps.OpenFile(object, flag, 0)
	if err != nil {
		return fmt.Errorf("(props-compression) failed to open %s: %w", object, err)
	}
	defer f.Close()

	if value == "no" || value == "none" {
		// Clears compression back to "unset" rather than storing a
		// literal word.
		value = ""
	}

	if err := p.xattrOps.FSet(f, xattrPrefix+p.name, []byte(value)); err != nil {
		return fmt.Errorf("(props-compression) failed to set for %s: %w", object, err)
	}

	return nil
}
