package repository

import (
	"context"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
)

// MenuRepository provides access to the menu catalog.
type MenuRepository interface {
	// List returns available items ordered by (category, name), optionally
	// filtered to one category. An empty category means all.
	List(ctx context.Context, category string) ([]model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	// SetAvailability flips the availability flag. Updating an unknown item
	// is a no-op, not an error.
	SetAvailability(ctx context.Context, id int64, available bool) error
}
