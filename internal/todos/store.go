package todos

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means no item matched the id (and owner, when scoping is on).
	ErrNotFound = errors.New("todo not found")
	// ErrInvalidID means the id could not be parsed into the store's native key
	// type. Stores return it before touching the backing connection.
	ErrInvalidID = errors.New("invalid todo id")
)

// Store is the persistence contract for the todos collection. The item type is
// a store parameter because the two backends expose different native keys on
// the wire: the document store serializes a hex object id, the relational
// store a serial integer.
//
// owner is the tenant scope; the empty string means unscoped. Stores that
// honor scoping must fold the owner into the same atomic filter as the id so
// a mutation can never cross tenant boundaries, even under concurrent access.
type Store[T any] interface {
	// List returns the current snapshot of matching items, never nil.
	List(ctx context.Context, owner string) ([]T, error)

	// Create inserts a new item and returns it with its assigned id.
	Create(ctx context.Context, owner, title string, done bool) (*T, error)

	// SetDone flips the done flag on the matching item. It returns
	// ErrNotFound when nothing matched and ErrInvalidID when the id does not
	// parse. The returned item is nil for stores that do not read the updated
	// row back.
	SetDone(ctx context.Context, owner, id string, done bool) (*T, error)

	// Delete removes the matching item, reporting whether exactly one record
	// was removed. Same error taxonomy as SetDone.
	Delete(ctx context.Context, owner, id string) (bool, error)
}
