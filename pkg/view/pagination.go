package view

import (
	"fmt"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// Page returns a window of presentation rows. With an After cursor the page
// starts just below the cursor's record, wherever that record now sits; if
// the record has left the view the page starts at the top.
func (v *ViewProjection) Page(options *domain.PaginationOptions) (*domain.PaginationResult, error) {
	if options == nil {
		options = domain.DefaultPaginationOptions()
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pagination options: %w", err)
	}

	total := v.index.Len()
	result := &domain.PaginationResult{
		Rows:  []domain.Row{},
		Total: total,
	}

	startIndex := options.Offset
	if options.After != "" {
		cursor, err := domain.DecodeCursor(options.After)
		if err != nil {
			return nil, fmt.Errorf("invalid after cursor: %w", err)
		}
		startIndex = 0
		if row, ok := v.index.RowOf(cursor.ID); ok {
			startIndex = row + 1
		}
	}

	limit := options.Limit
	if limit <= 0 {
		limit = 50 // default
	}
	if options.MaxLimit > 0 && limit > options.MaxLimit {
		limit = options.MaxLimit
	}

	if startIndex > 0 {
		result.HasPrev = true
	}

	// Check bounds
	if startIndex >= total {
		return result, nil
	}

	endIndex := startIndex + limit
	if endIndex >= total {
		endIndex = total
	} else {
		result.HasNext = true
	}

	for row := startIndex; row < endIndex; row++ {
		record, err := v.RecordAt(row)
		if err != nil {
			return nil, err
		}
		result.Rows = append(result.Rows, domain.Row{Row: row, Record: record})
	}

	if result.HasNext {
		last := result.Rows[len(result.Rows)-1]
		result.NextCursor, _ = domain.EncodeCursor(&domain.Cursor{ID: last.Record.ID})
	}

	return result, nil
}
