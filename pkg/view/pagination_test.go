package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-records/pkg/domain"
	"github.com/adfharrison1/go-records/pkg/storage"
	"github.com/adfharrison1/go-records/pkg/view"
)

func newNumberedStore(t *testing.T, n int) *storage.RecordStore {
	t.Helper()
	store := storage.NewRecordStore()
	for i := 0; i < n; i++ {
		_, err := store.Insert(domain.Fields{"name": "Student", "age": 16 + i%50})
		require.NoError(t, err)
	}
	return store
}

func pageIDs(page *domain.PaginationResult) []domain.RecordID {
	ids := []domain.RecordID{}
	for _, r := range page.Rows {
		ids = append(ids, r.Record.ID)
	}
	return ids
}

func TestPageOffset(t *testing.T) {
	store := newNumberedStore(t, 10)
	v := view.NewViewProjection(store, view.WithSort(view.ByID(true)))

	page, err := v.Page(&domain.PaginationOptions{Limit: 4, Offset: 2})
	require.NoError(t, err)

	assert.Equal(t, []domain.RecordID{8, 7, 6, 5}, pageIDs(page))
	assert.Equal(t, 2, page.Rows[0].Row)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
	assert.Equal(t, 10, page.Total)
	assert.NotEmpty(t, page.NextCursor)

	page, err = v.Page(&domain.PaginationOptions{Limit: 4, Offset: 8})
	require.NoError(t, err)
	assert.Equal(t, []domain.RecordID{2, 1}, pageIDs(page))
	assert.False(t, page.HasNext)
	assert.Empty(t, page.NextCursor)

	page, err = v.Page(&domain.PaginationOptions{Limit: 4, Offset: 20})
	require.NoError(t, err)
	assert.Empty(t, page.Rows)
}

func TestPageCursorFollowsRecord(t *testing.T) {
	store := newNumberedStore(t, 6)
	v := view.NewViewProjection(store)

	first, err := v.Page(&domain.PaginationOptions{Limit: 3})
	require.NoError(t, err)
	require.Equal(t, []domain.RecordID{1, 2, 3}, pageIDs(first))

	// A row above the cursor disappears; the next page still starts after record 3
	require.NoError(t, store.Remove(1))

	next, err := v.Page(&domain.PaginationOptions{Limit: 3, After: first.NextCursor})
	require.NoError(t, err)
	assert.Equal(t, []domain.RecordID{4, 5, 6}, pageIDs(next))
	assert.True(t, next.HasPrev)
	assert.False(t, next.HasNext)
}

func TestPageDefaultsAndValidation(t *testing.T) {
	store := newNumberedStore(t, 60)
	v := view.NewViewProjection(store)

	page, err := v.Page(nil)
	require.NoError(t, err)
	assert.Len(t, page.Rows, 50)

	_, err = v.Page(&domain.PaginationOptions{Limit: -1})
	assert.Error(t, err)

	_, err = v.Page(&domain.PaginationOptions{After: "!!notbase64", Limit: 1})
	assert.Error(t, err)

	cursor, err := domain.EncodeCursor(&domain.Cursor{ID: 1})
	require.NoError(t, err)
	_, err = v.Page(&domain.PaginationOptions{After: cursor, Offset: 3})
	assert.Error(t, err)
}
