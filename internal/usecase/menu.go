package usecase

import (
	"context"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/repository"
)

// MenuUseCase exposes catalog browsing and the staff availability toggle.
type MenuUseCase struct {
	menu repository.MenuRepository
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menu: menu}
}

// List returns available items, optionally filtered to one category.
// "all" is treated the same as no filter.
func (u *MenuUseCase) List(ctx context.Context, category string) ([]model.MenuItem, error) {
	if category == "all" {
		category = ""
	}
	return u.menu.List(ctx, category)
}

// SetAvailability flips the availability flag. An unknown item id is a no-op.
func (u *MenuUseCase) SetAvailability(ctx context.Context, itemID int64, available bool) error {
	return u.menu.SetAvailability(ctx, itemID, available)
}
