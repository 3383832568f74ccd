package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-records/pkg/domain"
	"github.com/adfharrison1/go-records/pkg/snapshot"
	"github.com/adfharrison1/go-records/pkg/storage"
)

func TestServerSaveAndRestore(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "records"+snapshot.FileExtension)

	srv := NewServer()
	n, err := srv.InitDB(filename)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	srv.Seed(snapshot.DefaultSeed())

	body, err := json.Marshal(map[string]interface{}{"name": "Eve Adams", "age": 30, "grade": "B"})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/records", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, srv.SaveDB(filename))

	restored := NewServer()
	n, err = restored.InitDB(filename)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	req = httptest.NewRequest("GET", "/records?name=eve%20adams", nil)
	w = httptest.NewRecorder()
	restored.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var records []domain.Record
	require.NoError(t, json.NewDecoder(w.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, domain.RecordID(5), records[0].ID)
	assert.Equal(t, float64(30), records[0].Fields["age"])
}

func TestServerUnknownRoute(t *testing.T) {
	srv := NewServer()

	req := httptest.NewRequest("GET", "/collections/users/find", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServerInitDBRejectsCorruptFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "corrupt"+snapshot.FileExtension)
	require.NoError(t, os.WriteFile(filename, []byte("not a snapshot"), 0o644))

	srv := NewServer()
	n, err := srv.InitDB(filename)
	assert.Error(t, err)
	assert.Equal(t, 0, n)

	// An empty store round-trips to an empty snapshot
	empty := filepath.Join(t.TempDir(), "empty"+snapshot.FileExtension)
	require.NoError(t, srv.SaveDB(empty))
	n, err = NewServer().InitDB(empty)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestServerKeepsSnapshotThatFailsToLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "records"+snapshot.FileExtension)

	// Saved under a looser schema: the second record's age is out of range
	// for students
	loose := storage.NewRecordStore(storage.WithSchema(domain.Schema{
		{Name: "name", Type: domain.FieldText},
		{Name: "age", Type: domain.FieldInteger},
	}))
	for _, fields := range []domain.Fields{
		{"name": "Alice Smith", "age": 20},
		{"name": "Bob Johnson", "age": 3},
		{"name": "Carol White", "age": 21},
	} {
		_, err := loose.Insert(fields)
		require.NoError(t, err)
	}
	require.NoError(t, snapshot.Save(filename, loose))
	original, err := os.ReadFile(filename)
	require.NoError(t, err)

	srv := NewServer()
	n, err := srv.InitDB(filename)
	assert.ErrorContains(t, err, "record 2")
	assert.Equal(t, 0, n)

	// Nothing from the rejected snapshot is visible
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"records":0`)

	srv.Seed(snapshot.DefaultSeed())
	assert.Error(t, srv.SaveDB(filename))

	after, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, original, after)
}
