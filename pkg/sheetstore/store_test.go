package sheetstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write("alpha", "Alpha\n    Header\n"))
	require.NoError(t, s.Write("beta", "Beta\n"))

	// Read-after-write within one process.
	text, err := s.Read("alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha\n    Header\n", text)

	ids, err := s.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, ids)
}

func TestDiskStoreOverwrite(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write("sheet", "first"))
	require.NoError(t, s.Write("sheet", "second"))

	text, err := s.Read("sheet")
	require.NoError(t, err)
	assert.Equal(t, "second", text)
}

func TestDiskStoreDelete(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write("sheet", "text"))
	require.NoError(t, s.Delete("sheet"))

	_, err = s.Read("sheet")
	assert.Error(t, err)

	// Deleting a missing id is not an error.
	assert.NoError(t, s.Delete("sheet"))
}

func TestDiskStoreReadMissing(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Read("nope")
	assert.Error(t, err)
}
