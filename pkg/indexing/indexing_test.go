package indexing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-records/pkg/domain"
	"github.com/adfharrison1/go-records/pkg/indexing"
)

func TestRowIndexTranslatesBothWays(t *testing.T) {
	idx := indexing.NewRowIndex([]domain.RecordID{7, 3, 9})

	assert.Equal(t, 3, idx.Len())
	for row, want := range []domain.RecordID{7, 3, 9} {
		id, err := idx.IDAt(row)
		require.NoError(t, err)
		assert.Equal(t, want, id)

		back, ok := idx.RowOf(id)
		require.True(t, ok)
		assert.Equal(t, row, back)
	}

	_, ok := idx.RowOf(4)
	assert.False(t, ok)

	_, err := idx.IDAt(3)
	assert.True(t, errors.Is(err, domain.ErrIndexOutOfRange))
	_, err = idx.IDAt(-1)
	assert.True(t, errors.Is(err, domain.ErrIndexOutOfRange))
}

func TestRowIndexEqual(t *testing.T) {
	a := indexing.NewRowIndex([]domain.RecordID{1, 2, 3})

	assert.True(t, a.Equal(indexing.NewRowIndex([]domain.RecordID{1, 2, 3})))
	assert.False(t, a.Equal(indexing.NewRowIndex([]domain.RecordID{1, 3, 2})))
	assert.False(t, a.Equal(indexing.NewRowIndex([]domain.RecordID{1, 2})))
	assert.True(t, indexing.NewRowIndex(nil).Equal(indexing.NewRowIndex([]domain.RecordID{})))
}

func TestRowIndexRows(t *testing.T) {
	idx := indexing.NewRowIndex([]domain.RecordID{5, 6, 7, 8})

	assert.Equal(t, []int{1, 3}, idx.Rows([]domain.RecordID{8, 42, 6, 8}))
	assert.Nil(t, idx.Rows([]domain.RecordID{42}))
}

func TestRowIndexIDsIsACopy(t *testing.T) {
	idx := indexing.NewRowIndex([]domain.RecordID{1, 2})

	ids := idx.IDs()
	ids[0] = 99

	id, _ := idx.IDAt(0)
	assert.Equal(t, domain.RecordID(1), id)
}
