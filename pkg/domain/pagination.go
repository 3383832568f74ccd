package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// PaginationOptions defines paging over a view's presentation rows
type PaginationOptions struct {
	// Cursor-based pagination, anchored to a record rather than a row so a
	// page stays put when rows above it come and go.
	After string `json:"after,omitempty"` // Base64 encoded cursor

	// Limit/offset pagination (fallback)
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	MaxLimit int `json:"max_limit,omitempty"`
}

// Row is one presentation row of a view
type Row struct {
	Row    int    `json:"row"`
	Record Record `json:"record"`
}

// PaginationResult contains one page of view rows and its metadata
type PaginationResult struct {
	Rows       []Row  `json:"rows"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
	NextCursor string `json:"next_cursor,omitempty"`
	Total      int    `json:"total"`
}

// Cursor represents a pagination cursor
type Cursor struct {
	ID RecordID `json:"id"`
}

// EncodeCursor encodes a cursor to base64
func EncodeCursor(cursor *Cursor) (string, error) {
	data, err := json.Marshal(cursor)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeCursor decodes a base64 cursor
func DecodeCursor(encoded string) (*Cursor, error) {
	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cursor: %w", err)
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cursor: %w", err)
	}

	return &cursor, nil
}

// DefaultPaginationOptions returns default pagination settings
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		Limit:    50,
		MaxLimit: 1000,
	}
}

// Validate validates pagination options
func (po *PaginationOptions) Validate() error {
	if po.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	if po.Offset < 0 {
		return fmt.Errorf("offset cannot be negative")
	}
	if po.MaxLimit > 0 && po.Limit > po.MaxLimit {
		return fmt.Errorf("limit %d exceeds maximum %d", po.Limit, po.MaxLimit)
	}

	if po.After != "" && po.Offset > 0 {
		return fmt.Errorf("cannot mix cursor-based and offset-based pagination")
	}

	return nil
}
