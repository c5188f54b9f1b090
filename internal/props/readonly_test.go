package props

import (
	"bytes"
	"errors"
	"testing"

	"github.com/desertwitch/bprop/internal/props/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadOnlyGet_Success tests printing of both read-only states.
func TestReadOnlyGet_Success(t *testing.T) {
	t.Parallel()

	for value, want := range map[bool]string{
		true:  "ro=true\n",
		false: "ro=false\n",
	} {
		out := &bytes.Buffer{}
		btrfsMock := mocks.NewBtrfsProvider(t)
		prop := &readOnlyProperty{out: out, btrfsOps: btrfsMock}

		btrfsMock.On("SubvolumeReadOnly", "/mnt/data/subvol").Return(value, nil).Once()

		err := prop.Get(Subvolume, "/mnt/data/subvol")
		require.NoError(t, err)
		assert.Equal(t, want, out.String())
	}
}

// TestReadOnlySet_Success tests the two accepted literal values.
func TestReadOnlySet_Success(t *testing.T) {
	t.Parallel()

	for value, want := range map[string]bool{
		"true":  true,
		"false": false,
	} {
		btrfsMock := mocks.NewBtrfsProvider(t)
		prop := &readOnlyProperty{btrfsOps: btrfsMock}

		btrfsMock.On("SetSubvolumeReadOnly", "/mnt/data/subvol", want).Return(nil).Once()

		err := prop.Set(Subvolume, "/mnt/data/subvol", value)
		require.NoError(t, err)
	}
}

// TestReadOnlySet_Fail_InvalidValue tests rejection of any other string.
func TestReadOnlySet_Fail_InvalidValue(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "yes", "TRUE", "1"} {
		btrfsMock := mocks.NewBtrfsProvider(t)
		prop := &readOnlyProperty{btrfsOps: btrfsMock}

		err := prop.Set(Subvolume, "/mnt/data/subvol", value)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)

		btrfsMock.AssertNotCalled(t, "SetSubvolumeReadOnly")
	}
}

// TestReadOnlySet_Fail_BackendError tests forwarding of backend failures.
func TestReadOnlySet_Fail_BackendError(t *testing.T) {
	t.Parallel()

	backendErr := errors.New("backend error")

	btrfsMock := mocks.NewBtrfsProvider(t)
	prop := &readOnlyProperty{btrfsOps: btrfsMock}

	btrfsMock.On("SetSubvolumeReadOnly", "/mnt/data/subvol", true).Return(backendErr)

	err := prop.Set(Subvolume, "/mnt/data/subvol", "true")
	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
}
