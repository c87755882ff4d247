package likes

import "errors"

// Record is the per-artwork like counter. ID is the artwork's stable
// filename-derived identifier.
type Record struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}

var (
	// ErrNotFound indicates the artwork id has no record.
	ErrNotFound = errors.New("likes: artwork not found")
	// ErrExists indicates a register attempt for an id that already has a record.
	ErrExists = errors.New("likes: artwork already exists")
)

// Store defines the operations the like service needs from its backend.
// Likes never go below zero: Decrement on a zero count succeeds and
// returns the record unchanged.
type Store interface {
	List() ([]Record, error)
	Get(id string) (*Record, error)
	Create(id string) (*Record, error)
	Increment(id string) (*Record, error)
	Decrement(id string) (*Record, error)
	Count() int
	Close() error
}
