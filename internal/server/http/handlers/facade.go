package handlers

import (
	"context"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

// MenuFacade exposes catalog browsing.
type MenuFacade interface {
	Menu(ctx context.Context, category string) ([]model.MenuItem, error)
}

// OrderFacade encapsulates student-facing order operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, lines []model.CartLine, pickupTime, instructions, paymentMethod string) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItemDetail, error)
	CancelOrder(ctx context.Context, userID, orderID int64) error
}

// StaffFacade provides staff-only operations.
type StaffFacade interface {
	ActiveOrders(ctx context.Context) ([]model.StaffOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
	SetMenuAvailability(ctx context.Context, itemID int64, available bool) error
	TodayStats(ctx context.Context) (*model.DayStats, error)
}

// CanteenFacade aggregates the full set of operations used across handlers.
type CanteenFacade interface {
	AuthFacade
	MenuFacade
	OrderFacade
	StaffFacade
}
