package props

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/desertwitch/bprop/internal/btrfs"
)

// allocationClasses is the immutable ordered mapping of allocation-class bit
// patterns to their names; on get, the first match wins and anything else
// falls back to raw-number display.
//
//nolint:gochecknoglobals
var allocationClasses = []struct {
	value uint64
	name  string
}{
	{btrfs.DevAllocationPreferredMetadata, "PREFERRED_METADATA"},
	{btrfs.DevAllocationMetadataOnly, "METADATA_ONLY"},
	{btrfs.DevAllocationPreferredData, "PREFERRED_DATA"},
	{btrfs.DevAllocationDataOnly, "DATA_ONLY"},
}

// allocationHintProperty backs the "allocation_hint" property with the
// type-bits field of the per-device property record. Only the allocation
// sub-mask is ever modified; unrelated bits of the stored mask survive a set
// through a read-modify-write cycle.
type allocationHintProperty struct {
	out       io.Writer
	btrfsOps  btrfsProvider
	deviceOps resolveProvider
	osOps     osProvider
}

// current resolves the device object and reads its stored type bits. The
// returned handle addresses the owning mountpoint and is the caller's to
// close.
func (p *allocationHintProperty) current(object string) (*os.File, btrfs.DevProperties, error) {
	res, err := p.deviceOps.Resolve(object)
	if err != nil {
		return nil, btrfs.DevProperties{}, fmt.Errorf("(props-allocation) failed to resolve %s: %w", object, err)
	}

	f, err := p.osOps.Open(res.MountPath)
	if err != nil {
		return nil, btrfs.DevProperties{}, fmt.Errorf("(props-allocation) failed to open %s: %w", res.MountPath, err)
	}

	devProps, err := p.btrfsOps.ReadDevProperties(f, res.DevID)
	if err != nil {
		f.Close()

		return nil, btrfs.DevProperties{}, fmt.Errorf("(props-allocation) failed to read for %s: %w", object, err)
	}

	return f, devProps, nil
}

func (p *allocationHintProperty) Get(types ObjectTypes, object string) error {
	f, devProps, err := p.current(object)
	if err != nil {
		return err
	}
	defer f.Close()

	value := devProps.Type & btrfs.DevAllocationMask

	for _, class := range allocationClasses {
		if class.value == value {
			fmt.Fprintf(p.out, "allocation_hint=%s\n", class.name)

			return nil
		}
	}

	fmt.Fprintf(p.out, "allocation_hint=%d\n", value)

	return nil
}

func (p *allocationHintProperty) Set(types ObjectTypes, object string, value string) error {
	bits, err := parseAllocationHint(value)
	if err != nil {
		return err
	}

	f, devProps, err := p.current(object)
	if err != nil {
		return err
	}
	defer f.Close()

	devProps.Type &^= btrfs.DevAllocationMask
	devProps.Type |= bits

	if err := p.btrfsOps.WriteDevProperties(f, devProps); err != nil {
		return fmt.Errorf("(props-allocation) failed to write for %s: %w", object, err)
	}

	return nil
}

// parseAllocationHint accepts one of the class names (exact match) or a raw
// non-negative integer confined to the allocation sub-mask.
func parseAllocationHint(value string) (uint64, error) {
	for _, class := range allocationClasses {
		if value == class.name {
			return class.value, nil
		}
	}

	bits, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("(props-allocation) %q: %w", value, ErrInvalidValue)
	}

	if bits&^btrfs.DevAllocationMask != 0 {
		return 0, fmt.Errorf("(props-allocation) %q has bits outside the allocation mask: %w", value, ErrInvalidValue)
	}

	return bits, nil
}
