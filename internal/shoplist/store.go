package shoplist

import (
	"context"
	"errors"
)

// ErrNotFound signals a list id that is absent from the store.
var ErrNotFound = errors.New("shopping list not found")

// Store is the persistence contract behind the REST surface. The seeded
// in-memory implementation and the GORM-backed one are interchangeable.
type Store interface {
	List(ctx context.Context) ([]List, error)
	Get(ctx context.Context, id int) (List, error)
	Create(ctx context.Context, input CreateInput) (List, error)
	Update(ctx context.Context, id int, patch Patch) (List, error)
	Remove(ctx context.Context, id int) error
}
