package domain

import "context"

// Category is a fixed grouping that tasks reference. Categories are seeded
// at startup and never created or mutated through the API.
type Category struct {
	ID   int64
	Name string
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
