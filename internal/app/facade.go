package app

import (
	"context"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/usecase"
)

// CanteenFacade aggregates the application use cases behind one surface
// consumed by HTTP handlers, middleware and the QR backfill worker.
type CanteenFacade struct {
	auth      *usecase.AuthUseCase
	menu      *usecase.MenuUseCase
	orders    *usecase.OrderUseCase
	analytics *usecase.AnalyticsUseCase
}

// NewCanteenFacade constructs CanteenFacade.
func NewCanteenFacade(auth *usecase.AuthUseCase, menu *usecase.MenuUseCase, orders *usecase.OrderUseCase, analytics *usecase.AnalyticsUseCase) *CanteenFacade {
	return &CanteenFacade{auth: auth, menu: menu, orders: orders, analytics: analytics}
}

func (f *CanteenFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *CanteenFacade) ResolveSession(id string) (*model.User, bool) {
	return f.auth.ResolveSession(id)
}

func (f *CanteenFacade) Menu(ctx context.Context, category string) ([]model.MenuItem, error) {
	return f.menu.List(ctx, category)
}

func (f *CanteenFacade) SetMenuAvailability(ctx context.Context, itemID int64, available bool) error {
	return f.menu.SetAvailability(ctx, itemID, available)
}

func (f *CanteenFacade) PlaceOrder(ctx context.Context, userID int64, lines []model.CartLine, pickupTime, instructions, paymentMethod string) (*model.Order, error) {
	return f.orders.Create(ctx, userID, lines, pickupTime, instructions, paymentMethod)
}

func (f *CanteenFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *CanteenFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItemDetail, error) {
	return f.orders.Get(ctx, userID, orderID)
}

func (f *CanteenFacade) CancelOrder(ctx context.Context, userID, orderID int64) error {
	return f.orders.Cancel(ctx, userID, orderID)
}

func (f *CanteenFacade) ActiveOrders(ctx context.Context) ([]model.StaffOrder, error) {
	return f.orders.ListActive(ctx)
}

func (f *CanteenFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	return f.orders.AdvanceStatus(ctx, orderID, status)
}

func (f *CanteenFacade) TodayStats(ctx context.Context) (*model.DayStats, error) {
	return f.analytics.TodayStats(ctx)
}

func (f *CanteenFacade) OrdersMissingQRCode(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.MissingQRCode(ctx, limit)
}

func (f *CanteenFacade) AttachQRCode(ctx context.Context, order model.Order) error {
	return f.orders.AttachQRCode(ctx, order)
}
