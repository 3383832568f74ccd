// Package indexing maintains the two-way mapping between a view's
// presentation rows and record ids.
package indexing

import (
	"fmt"
	"sort"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// RowIndex stores an ordered id sequence (position = presentation row) plus
// the reverse id -> row map. It is rebuilt whole rather than edited.
type RowIndex struct {
	ids  []domain.RecordID
	rows map[domain.RecordID]int
}

// NewRowIndex builds an index over ids. The slice is owned by the index
// afterwards.
func NewRowIndex(ids []domain.RecordID) *RowIndex {
	idx := &RowIndex{
		ids:  ids,
		rows: make(map[domain.RecordID]int, len(ids)),
	}
	for row, id := range ids {
		idx.rows[id] = row
	}
	return idx
}

// Len returns the number of rows
func (idx *RowIndex) Len() int {
	return len(idx.ids)
}

// IDAt returns the id shown at a presentation row
func (idx *RowIndex) IDAt(row int) (domain.RecordID, error) {
	if row < 0 || row >= len(idx.ids) {
		return 0, fmt.Errorf("row %d of %d: %w", row, len(idx.ids), domain.ErrIndexOutOfRange)
	}
	return idx.ids[row], nil
}

// RowOf returns the presentation row of an id
func (idx *RowIndex) RowOf(id domain.RecordID) (int, bool) {
	row, ok := idx.rows[id]
	return row, ok
}

// IDs returns a copy of the id sequence
func (idx *RowIndex) IDs() []domain.RecordID {
	out := make([]domain.RecordID, len(idx.ids))
	copy(out, idx.ids)
	return out
}

// Equal reports whether other holds the same ids in the same order
func (idx *RowIndex) Equal(other *RowIndex) bool {
	if len(idx.ids) != len(other.ids) {
		return false
	}
	for i, id := range idx.ids {
		if other.ids[i] != id {
			return false
		}
	}
	return true
}

// Rows returns the ascending presentation rows of the given ids, skipping
// ids that are not in the index.
func (idx *RowIndex) Rows(ids []domain.RecordID) []int {
	var rows []int
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if row, ok := idx.rows[id]; ok && !seen[row] {
			seen[row] = true
			rows = append(rows, row)
		}
	}
	sort.Ints(rows)
	return rows
}
