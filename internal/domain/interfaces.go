package domain

// KV is the storage port backing the ledger. One key holds the whole credit
// list; every write replaces the full value.
type KV interface {
	// Get returns the stored value for key; ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set replaces the value for key.
	Set(key string, value []byte) error
	// Delete removes the key entirely. Deleting an absent key is not an error.
	Delete(key string) error
}

// Ledger manages the credit list and its derived GPA.
type Ledger interface {
	Load()
	Add(grade Grade, credits int, note string) error
	Remove(index int) error
	RemoveAll() error
	Replace(records CreditList) error
	Records() CreditList
	GPA() float64
	FormatGPA() string
}
