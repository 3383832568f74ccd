package storage

import (
	"strconv"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// MatchesFilter checks if a record matches the given filter criteria. The
// key "id" matches the record id.
func MatchesFilter(record domain.Record, filter map[string]interface{}) bool {
	for field, expectedValue := range filter {
		if field == "id" {
			if !domain.ValuesMatch(uint64(record.ID), expectedValue) {
				return false
			}
			continue
		}

		actualValue, exists := record.Fields[field]
		if !exists {
			return false // Field doesn't exist in record
		}

		if !domain.ValuesMatch(actualValue, expectedValue) {
			return false
		}
	}
	return true
}

// ParseFilterValue converts a query-string value to a number when possible
// so it compares against integer fields.
func ParseFilterValue(value string) interface{} {
	if num, err := strconv.ParseFloat(value, 64); err == nil {
		return num
	}
	return value
}
