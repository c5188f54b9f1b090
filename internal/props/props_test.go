package props

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProperty implements propertyHandler for dispatcher testing.
type fakeProperty struct {
	gotTypes  ObjectTypes
	gotObject string
	gotValue  string
	getCalls  int
	setCalls  int
	err       error
}

func (f *fakeProperty) Get(types ObjectTypes, object string) error {
	f.getCalls++
	f.gotTypes = types
	f.gotObject = object

	return f.err
}

func (f *fakeProperty) Set(types ObjectTypes, object string, value string) error {
	f.setCalls++
	f.gotTypes = types
	f.gotObject = object
	f.gotValue = value

	return f.err
}

func testDispatcher(t *testing.T, descriptors ...*Descriptor) *Handler {
	t.Helper()

	registry, err := newRegistry(descriptors...)
	require.NoError(t, err)

	return &Handler{registry: registry}
}

// TestGet_Success tests dispatch of a get to the matching property.
func TestGet_Success(t *testing.T) {
	t.Parallel()

	prop := &fakeProperty{}
	handler := testDispatcher(t, &Descriptor{Name: "one", Types: Subvolume | Inode, handler: prop})

	err := handler.Get(Subvolume, "/mnt/data/subvol", "one")
	require.NoError(t, err)

	assert.Equal(t, 1, prop.getCalls)
	assert.Equal(t, Subvolume, prop.gotTypes)
	assert.Equal(t, "/mnt/data/subvol", prop.gotObject)
}

// TestGet_Success_IntersectedTypes tests that the property only sees the
// intersection of the request mask with its applicability.
func TestGet_Success_IntersectedTypes(t *testing.T) {
	t.Parallel()

	prop := &fakeProperty{}
	handler := testDispatcher(t, &Descriptor{Name: "one", Types: Inode, handler: prop})

	err := handler.Get(Subvolume|Root|Inode, "/mnt/data", "one")
	require.NoError(t, err)

	assert.Equal(t, Inode, prop.gotTypes)
}

// TestGet_Fail_NotApplicable tests refusal for a non-matching object type.
func TestGet_Fail_NotApplicable(t *testing.T) {
	t.Parallel()

	prop := &fakeProperty{}
	handler := testDispatcher(t, &Descriptor{Name: "one", Types: Subvolume, handler: prop})

	err := handler.Get(Device, "/dev/sdb1", "one")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotApplicable)
	assert.Zero(t, prop.getCalls)
}

// TestGet_Fail_Unknown tests the unknown property name.
func TestGet_Fail_Unknown(t *testing.T) {
	t.Parallel()

	handler := testDispatcher(t)

	err := handler.Get(Inode, "/mnt/data/file", "bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

// TestSet_Success tests dispatch of a set to the matching property.
func TestSet_Success(t *testing.T) {
	t.Parallel()

	prop := &fakeProperty{}
	handler := testDispatcher(t, &Descriptor{Name: "one", Types: Subvolume, handler: prop})

	err := handler.Set(Subvolume, "/mnt/data/subvol", "one", "true")
	require.NoError(t, err)

	assert.Equal(t, 1, prop.setCalls)
	assert.Equal(t, "true", prop.gotValue)
}

// TestSet_Fail_ReadOnlyProperty tests refusal to set a get-only property.
func TestSet_Fail_ReadOnlyProperty(t *testing.T) {
	t.Parallel()

	prop := &fakeProperty{}
	handler := testDispatcher(t, &Descriptor{Name: "one", ReadOnly: true, Types: Subvolume, handler: prop})

	err := handler.Set(Subvolume, "/mnt/data/subvol", "one", "true")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadOnlyProperty)
	assert.Zero(t, prop.setCalls)
}

// TestSet_Fail_HandlerError tests that a property failure passes through
// unchanged.
func TestSet_Fail_HandlerError(t *testing.T) {
	t.Parallel()

	backendErr := errors.New("backend error")
	prop := &fakeProperty{err: backendErr}
	handler := testDispatcher(t, &Descriptor{Name: "one", Types: Subvolume, handler: prop})

	err := handler.Set(Subvolume, "/mnt/data/subvol", "one", "true")
	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
}

// TestGetAll_Success tests enumeration over all applicable properties.
func TestGetAll_Success(t *testing.T) {
	t.Parallel()

	first := &fakeProperty{}
	second := &fakeProperty{}
	third := &fakeProperty{}

	handler := testDispatcher(t,
		&Descriptor{Name: "one", Types: Subvolume, handler: first},
		&Descriptor{Name: "two", Types: Device, handler: second},
		&Descriptor{Name: "three", Types: Inode, handler: third},
	)

	err := handler.GetAll(Subvolume|Inode, "/mnt/data/subvol")
	require.NoError(t, err)

	assert.Equal(t, 1, first.getCalls)
	assert.Zero(t, second.getCalls)
	assert.Equal(t, 1, third.getCalls)
}

// TestGetAll_Fail_AbortsOnError tests that the first failing property aborts
// the enumeration.
func TestGetAll_Fail_AbortsOnError(t *testing.T) {
	t.Parallel()

	backendErr := errors.New("backend error")
	first := &fakeProperty{err: backendErr}
	second := &fakeProperty{}

	handler := testDispatcher(t,
		&Descriptor{Name: "one", Types: Inode, handler: first},
		&Descriptor{Name: "two", Types: Inode, handler: second},
	)

	err := handler.GetAll(Inode, "/mnt/data/file")
	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
	assert.Zero(t, second.getCalls)
}

// TestParseObjectTypes_Success tests the name to mask mapping.
func TestParseObjectTypes_Success(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]ObjectTypes{
		"subvolume": Subvolume,
		"device":    Device,
		"root":      Root,
		"inode":     Inode,
	} {
		types, err := ParseObjectTypes(name)
		require.NoError(t, err)
		assert.Equal(t, want, types)
	}

	_, err := ParseObjectTypes("floppy")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownObjectType)
}

// TestObjectTypes_String tests the mask rendering.
func TestObjectTypes_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "subvolume/inode", (Subvolume | Inode).String())
	assert.Equal(t, "device", Device.String())
	assert.Equal(t, "none", ObjectTypes(0).String())
}
