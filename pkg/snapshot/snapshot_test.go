package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-records/pkg/domain"
	"github.com/adfharrison1/go-records/pkg/snapshot"
	"github.com/adfharrison1/go-records/pkg/storage"
)

func seededStore(t *testing.T) *storage.RecordStore {
	t.Helper()
	store := storage.NewRecordStore()
	n, err := snapshot.Seed(store, snapshot.DefaultSeed())
	require.NoError(t, err)
	require.Equal(t, 4, n)
	return store
}

func TestWriteReadRestore(t *testing.T) {
	src := seededStore(t)
	require.NoError(t, src.Remove(2))

	var buf bytes.Buffer
	require.NoError(t, snapshot.Write(&buf, src))
	assert.Equal(t, snapshot.MagicBytes, buf.String()[:4])

	data, err := snapshot.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "grade", "major"}, data.Schema)
	require.Len(t, data.Records, 3)
	assert.Equal(t, uint64(3), data.Records[1].ID)
	assert.Equal(t, uint64(5), data.NextID)

	dst := storage.NewRecordStore()
	n, err := snapshot.Restore(dst, data)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Ids and values survive the trip, normalized back to the schema's types
	assert.Equal(t, src.All(), dst.All())
	assert.Equal(t, src.NextID(), dst.NextID())
}

func TestWriteCompressesLargePayloads(t *testing.T) {
	store := storage.NewRecordStore()
	for i := 0; i < 200; i++ {
		_, err := store.Insert(domain.Fields{"name": "Alice Smith", "age": 20, "major": "Computer Science"})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, snapshot.Write(&buf, store))

	header, err := snapshot.ReadHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.NotZero(t, header.Flags&snapshot.FlagCompressed)
	assert.Less(t, buf.Len(), int(header.Length))

	data, err := snapshot.Read(&buf)
	require.NoError(t, err)
	assert.Len(t, data.Records, 200)
}

func TestReadRejectsBadInput(t *testing.T) {
	_, err := snapshot.Read(strings.NewReader("GODB\x01\x00\x00\x00\x00\x00\x00\x00"))
	assert.ErrorContains(t, err, "invalid file format")

	_, err = snapshot.Read(strings.NewReader("GREC\x09\x00\x00\x00\x00\x00\x00\x00"))
	assert.ErrorContains(t, err, "unsupported file version")

	_, err = snapshot.Read(strings.NewReader("GR"))
	assert.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, snapshot.Write(&buf, seededStore(t)))
	truncated := buf.Bytes()[:buf.Len()-3]
	_, err = snapshot.Read(bytes.NewReader(truncated))
	assert.Error(t, err)
}

func TestRestoreRejectsWholeSnapshot(t *testing.T) {
	data := &snapshot.SnapshotData{NextID: 4, Records: []snapshot.SnapshotRecord{
		{ID: 1, Fields: map[string]interface{}{"name": "Alice"}},
		{ID: 2, Fields: map[string]interface{}{"name": "Bob", "age": 3}},
		{ID: 3, Fields: map[string]interface{}{"name": "Carol"}},
	}}

	dst := storage.NewRecordStore()
	n, err := snapshot.Restore(dst, data)

	assert.Zero(t, n)
	assert.ErrorContains(t, err, "record 2")
	assert.Zero(t, dst.Len())
}

func TestLoadNeverReissuesSavedIDs(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "records"+snapshot.FileExtension)

	src := seededStore(t)
	require.NoError(t, src.Remove(1))
	require.NoError(t, src.Remove(4))
	require.NoError(t, snapshot.Save(filename, src))

	dst := storage.NewRecordStore()
	n, err := snapshot.Load(filename, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all := dst.All()
	require.Len(t, all, 2)
	assert.Equal(t, domain.RecordID(2), all[0].ID)
	assert.Equal(t, domain.RecordID(3), all[1].ID)

	id, err := dst.Insert(domain.Fields{"name": "Eve"})
	require.NoError(t, err)
	assert.Equal(t, domain.RecordID(5), id)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "records"+snapshot.FileExtension)

	src := seededStore(t)
	require.NoError(t, snapshot.Save(filename, src))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")

	dst := storage.NewRecordStore()
	n, err := snapshot.Load(filename, dst)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, src.All(), dst.All())
}

func TestLoadMissingFile(t *testing.T) {
	dst := storage.NewRecordStore()
	n, err := snapshot.Load(filepath.Join(t.TempDir(), "absent.grec"), dst)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, dst.Len())
}
