package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi/placement-autofill/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "profiles.json"))
	require.NoError(t, err)
	return s
}

var sampleProfile = types.Profile{
	types.FieldFullName: "Rishi Kumar",
	types.FieldEmail:    "rishi@example.com",
}

func TestStoreSaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("campus", sampleProfile))

	got, err := s.Load("campus")
	require.NoError(t, err)
	assert.Equal(t, sampleProfile, got)
}

func TestStoreSaveValidation(t *testing.T) {
	s := newTestStore(t)

	assert.Error(t, s.Save("", sampleProfile))
	assert.Error(t, s.Save("   ", sampleProfile))
	assert.Error(t, s.Save("empty", types.Profile{}))
}

func TestStoreSaveTrimsName(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("  campus  ", sampleProfile))
	_, err := s.Load("campus")
	assert.NoError(t, err)
}

func TestStoreLoadMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load("nope")
	assert.ErrorContains(t, err, "not found")
}

func TestStoreLastUsed(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.LoadLastUsed()
	assert.Error(t, err)

	require.NoError(t, s.Save("first", sampleProfile))
	require.NoError(t, s.Save("second", types.Profile{types.FieldEmail: "other@example.com"}))

	name, _, err := s.LoadLastUsed()
	require.NoError(t, err)
	assert.Equal(t, "second", name)

	require.NoError(t, s.MarkUsed("first"))
	name, p, err := s.LoadLastUsed()
	require.NoError(t, err)
	assert.Equal(t, "first", name)
	assert.Equal(t, sampleProfile, p)
}

func TestStoreMarkUsedMissing(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorContains(t, s.MarkUsed("nope"), "not found")
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("campus", sampleProfile))
	require.NoError(t, s.Delete("campus"))

	_, err := s.Load("campus")
	assert.Error(t, err)

	// deleting the last used profile clears the marker
	_, _, err = s.LoadLastUsed()
	assert.Error(t, err)

	assert.Error(t, s.Delete("campus"))
}

func TestStoreList(t *testing.T) {
	s := newTestStore(t)

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.Save("zeta", sampleProfile))
	require.NoError(t, s.Save("alpha", sampleProfile))

	names, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	first, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save("campus", sampleProfile))

	second, err := NewStore(path)
	require.NoError(t, err)
	got, err := second.Load("campus")
	require.NoError(t, err)
	assert.Equal(t, sampleProfile, got)
}

func TestStoreRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "profiles": {}}`), 0o600))

	s, err := NewStore(path)
	require.NoError(t, err)
	_, err = s.List()
	assert.ErrorContains(t, err, "unsupported version")
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewStore(path)
	require.NoError(t, err)
	_, err = s.List()
	assert.ErrorContains(t, err, "failed to parse")
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fullName": "  Rishi Kumar  ", "email": "rishi@example.com", " ": "dropped"}`), 0o600))

	p, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, types.Profile{
		types.FieldFullName: "Rishi Kumar",
		types.FieldEmail:    "rishi@example.com",
	}, p)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestClean(t *testing.T) {
	in := types.Profile{
		"  email ": "rishi@example.com",
		"":         "dropped",
		"phone":    " 9876543210 ",
	}
	assert.Equal(t, types.Profile{
		"email": "rishi@example.com",
		"phone": "9876543210",
	}, Clean(in))
}
