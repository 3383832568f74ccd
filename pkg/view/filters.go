package view

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// ContainsText matches records where the id or any field value, rendered as
// text, contains the given text. Matching is case-insensitive using Unicode
// case folding. Empty text yields a nil predicate, which accepts everything.
//
// The returned predicate holds a case folder and must not be shared between
// goroutines.
func ContainsText(text string) domain.Predicate {
	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	return func(r domain.Record) bool {
		if strings.Contains(strconv.FormatUint(uint64(r.ID), 10), needle) {
			return true
		}
		for _, name := range r.Fields.Names() {
			if strings.Contains(folder.String(fmt.Sprint(r.Fields[name])), needle) {
				return true
			}
		}
		return false
	}
}

// FieldEquals matches records whose field equals value. Text compares
// case-insensitively and numbers compare numerically.
func FieldEquals(name string, value interface{}) domain.Predicate {
	return func(r domain.Record) bool {
		actual, ok := r.Fields[name]
		return ok && domain.ValuesMatch(actual, value)
	}
}

// FieldHasPrefix matches records whose text field starts with prefix
func FieldHasPrefix(name, prefix string) domain.Predicate {
	return func(r domain.Record) bool {
		return strings.HasPrefix(r.Text(name), prefix)
	}
}

// And matches records accepted by every predicate. Nil predicates are
// skipped.
func And(predicates ...domain.Predicate) domain.Predicate {
	return func(r domain.Record) bool {
		for _, p := range predicates {
			if p != nil && !p(r) {
				return false
			}
		}
		return true
	}
}

// ByField orders records by one field's value. Numbers compare numerically,
// text lexically; a missing value sorts first.
func ByField(name string, descending bool) domain.Comparator {
	return func(a, b domain.Record) int {
		c := CompareValues(a.Fields[name], b.Fields[name])
		if descending {
			return -c
		}
		return c
	}
}

// ByID orders records by id, optionally descending
func ByID(descending bool) domain.Comparator {
	return func(a, b domain.Record) int {
		var c int
		switch {
		case a.ID < b.ID:
			c = -1
		case a.ID > b.ID:
			c = 1
		}
		if descending {
			return -c
		}
		return c
	}
}

// ThenBy returns the first non-zero result among the comparators
func ThenBy(comparators ...domain.Comparator) domain.Comparator {
	return func(a, b domain.Record) int {
		for _, c := range comparators {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// CompareValues orders two field values
func CompareValues(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if an, ok := domain.ToFloat64(a); ok {
		if bn, ok := domain.ToFloat64(b); ok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			return 0
		}
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
