package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-records/pkg/snapshot"
	"github.com/adfharrison1/go-records/pkg/storage"
)

const seedYAML = `
records:
  - name: Grace Hopper
    age: 22
    grade: A
    major: Computer Science
  - name: Alan Turing
    age: 24
    grade: B+
    major: Mathematics
`

func TestReadSeed(t *testing.T) {
	records, err := snapshot.ReadSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alan Turing", records[1]["name"])
	assert.Equal(t, 24, records[1]["age"])

	store := storage.NewRecordStore()
	n, err := snapshot.Seed(store, records)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rec, err := store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "B+", rec.Text("grade"))
}

func TestReadSeedEmpty(t *testing.T) {
	records, err := snapshot.ReadSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadSeedInvalid(t *testing.T) {
	_, err := snapshot.ReadSeed(strings.NewReader("records: [unterminated"))
	assert.Error(t, err)
}

func TestSeedStopsAtInvalidRecord(t *testing.T) {
	records, err := snapshot.ReadSeed(strings.NewReader(`
records:
  - name: Grace Hopper
  - name: Too Young
    age: 12
`))
	require.NoError(t, err)

	store := storage.NewRecordStore()
	n, err := snapshot.Seed(store, records)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestLoadSeedFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(seedYAML), 0o644))

	records, err := snapshot.LoadSeedFile(filename)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = snapshot.LoadSeedFile(filename + ".missing")
	assert.Error(t, err)
}
