package domain

// Staff represents an employee of a store.
// A user may be staff at several stores, but (UserID, StoreID) pairs are unique.
type Staff struct {
	ID        int64
	Name      string
	StoreID   int64
	StoreName string // filled by joins, empty when not loaded
	UserID    int64
}
