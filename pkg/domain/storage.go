package domain

// RecordStore defines the write and read surface of the authoritative
// record collection.
type RecordStore interface {
	Insert(fields Fields) (RecordID, error)
	Update(id RecordID, fields Fields) error
	Remove(id RecordID) error
	Get(id RecordID) (Record, error)
	All() []Record
	FindAll(filter map[string]interface{}) []Record
	Len() int
	Schema() Schema
	Subscribe(h Handler) SubscriptionHandle
	Unsubscribe(handle SubscriptionHandle) bool
}

// RecordSource is the part of a store a view projection reads from
type RecordSource interface {
	Get(id RecordID) (Record, error)
	All() []Record
	StorageIndex(id RecordID) (int, bool)
	IDAt(index int) (RecordID, error)
	Subscribe(h Handler) SubscriptionHandle
	Unsubscribe(handle SubscriptionHandle) bool
}

// RecordView defines the read surface of a filtered and sorted projection
// plus its filter and sort commands.
type RecordView interface {
	SetFilter(p Predicate)
	SetSort(c Comparator)
	RowCount() int
	RecordAt(row int) (Record, error)
	RowOf(id RecordID) (int, bool)
	Page(options *PaginationOptions) (*PaginationResult, error)
	Subscribe(h Handler) SubscriptionHandle
	Unsubscribe(handle SubscriptionHandle) bool
}
