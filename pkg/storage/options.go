package storage

import (
	"github.com/adfharrison1/go-records/pkg/domain"
)

type StoreOption func(*RecordStore)

// WithSchema declares the store's fields and validators
func WithSchema(schema domain.Schema) StoreOption {
	return func(store *RecordStore) {
		store.schema = schema
	}
}
