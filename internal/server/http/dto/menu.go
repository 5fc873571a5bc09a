package dto

import "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"

// MenuItemResponse is the JSON shape of a catalog item.
type MenuItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
	ImageURL    string  `json:"image_url"`
}

// AvailabilityRequest toggles a menu item's availability flag.
type AvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

// ToMenuItemResponse converts a domain menu item.
func ToMenuItemResponse(item model.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		IsAvailable: item.IsAvailable,
		ImageURL:    item.ImageURL,
	}
}
