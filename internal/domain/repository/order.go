package repository

import (
	"context"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their
// line items.
type OrderRepository interface {
	// Create persists the order in its initial status and fills ID and
	// CreatedAt on the passed order.
	Create(ctx context.Context, order *model.Order) error
	// InsertItems persists requested lines for the order. Lines referencing
	// unknown menu items are stored as-is; there is deliberately no
	// transaction around the order and its items.
	InsertItems(ctx context.Context, orderID int64, lines []model.CartLine) error
	SetQRCode(ctx context.Context, orderID int64, payload string) error
	GetByIDForUser(ctx context.Context, orderID, userID int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// ItemsByOrder returns lines joined with their menu items; lines whose
	// menu item cannot be resolved are omitted.
	ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	ListActive(ctx context.Context) ([]model.StaffOrder, error)
	SelectMissingQRCode(ctx context.Context, limit int) ([]model.Order, error)
	TodayStats(ctx context.Context) (*model.DayStats, error)
}
