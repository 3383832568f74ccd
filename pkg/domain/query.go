package domain

// Predicate decides whether a record belongs to a view. It must be pure.
type Predicate func(Record) bool

// Comparator orders two records: negative if a sorts before b, positive if
// after, zero if equal. It must be a pure total order.
type Comparator func(a, b Record) int
