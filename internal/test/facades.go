package test

import (
	"context"
	"sync"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for the login endpoint.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string, string) (*model.User, string, error)
}

// Login delegates to the provided function or returns a default student.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Name: "student", Role: model.RoleStudent}, "session-id", nil
}

// MenuFacadeStub serves configured catalog items.
type MenuFacadeStub struct {
	MenuFn func(context.Context, string) ([]model.MenuItem, error)
}

// Menu returns configured items or a single default dish.
func (s MenuFacadeStub) Menu(ctx context.Context, category string) ([]model.MenuItem, error) {
	if s.MenuFn != nil {
		return s.MenuFn(ctx, category)
	}
	return []model.MenuItem{{ID: 1, Name: "Samosa", Category: "snacks", Price: 1.5, IsAvailable: true}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn  func(context.Context, int64, []model.CartLine, string, string, string) (*model.Order, error)
	OrdersFn      func(context.Context, int64) ([]model.Order, error)
	OrderFn       func(context.Context, int64, int64) (*model.Order, []model.OrderItemDetail, error)
	CancelOrderFn func(context.Context, int64, int64) error
}

// PlaceOrder delegates or returns a default placed order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, lines []model.CartLine, pickupTime, instructions, paymentMethod string) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, lines, pickupTime, instructions, paymentMethod)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusOrdered, Number: "QB-000001"}, nil
}

// Orders delegates or returns one default order.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Status: model.OrderStatusOrdered}}, nil
}

// Order delegates or returns a default order without items.
func (s OrderFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItemDetail, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusOrdered}, nil, nil
}

// CancelOrder delegates or succeeds.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, userID, orderID int64) error {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, userID, orderID)
	}
	return nil
}

// StaffFacadeStub provides controllable behaviour for staff endpoints.
type StaffFacadeStub struct {
	ActiveOrdersFn        func(context.Context) ([]model.StaffOrder, error)
	UpdateOrderStatusFn   func(context.Context, int64, string) error
	SetMenuAvailabilityFn func(context.Context, int64, bool) error
	TodayStatsFn          func(context.Context) (*model.DayStats, error)

	StatusUpdates       []string
	AvailabilityUpdates map[int64]bool
}

// ActiveOrders delegates or returns an empty dashboard.
func (s *StaffFacadeStub) ActiveOrders(ctx context.Context) ([]model.StaffOrder, error) {
	if s.ActiveOrdersFn != nil {
		return s.ActiveOrdersFn(ctx)
	}
	return nil, nil
}

// UpdateOrderStatus records the requested status.
func (s *StaffFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	s.StatusUpdates = append(s.StatusUpdates, status)
	return nil
}

// SetMenuAvailability records the requested flag.
func (s *StaffFacadeStub) SetMenuAvailability(ctx context.Context, itemID int64, available bool) error {
	if s.SetMenuAvailabilityFn != nil {
		return s.SetMenuAvailabilityFn(ctx, itemID, available)
	}
	if s.AvailabilityUpdates == nil {
		s.AvailabilityUpdates = make(map[int64]bool)
	}
	s.AvailabilityUpdates[itemID] = available
	return nil
}

// TodayStats delegates or returns zeros.
func (s *StaffFacadeStub) TodayStats(ctx context.Context) (*model.DayStats, error) {
	if s.TodayStatsFn != nil {
		return s.TodayStatsFn(ctx)
	}
	return &model.DayStats{}, nil
}

// SessionResolverStub maps identifiers to users for middleware tests.
type SessionResolverStub struct {
	Sessions map[string]*model.User
}

// ResolveSession looks the identifier up in the configured map.
func (s SessionResolverStub) ResolveSession(id string) (*model.User, bool) {
	user, ok := s.Sessions[id]
	return user, ok
}

// CanteenFacadeStub aggregates facade dependencies for HTTP layer tests.
type CanteenFacadeStub struct {
	AuthFacadeStub
	MenuFacadeStub
	OrderFacadeStub
	*StaffFacadeStub
}

// NewCanteenFacadeStub constructs the aggregate with default behaviour.
func NewCanteenFacadeStub() CanteenFacadeStub {
	return CanteenFacadeStub{StaffFacadeStub: &StaffFacadeStub{}}
}

// QRAttachCall records an AttachQRCode invocation.
type QRAttachCall struct {
	OrderID int64
	Number  string
}

// WorkerFacadeStub mimics worker interactions with the canteen facade.
type WorkerFacadeStub struct {
	Batches   [][]model.Order
	MissingFn func(context.Context, int) ([]model.Order, error)
	AttachFn  func(context.Context, model.Order) error

	mu       sync.Mutex
	batchIdx int
	Attached []QRAttachCall
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// OrdersMissingQRCode returns batches from the configured queue.
func (s *WorkerFacadeStub) OrdersMissingQRCode(ctx context.Context, limit int) ([]model.Order, error) {
	if s.MissingFn != nil {
		return s.MissingFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.batchIdx < len(s.Batches) {
		batch := s.Batches[s.batchIdx]
		s.batchIdx++
		return batch, nil
	}
	return nil, nil
}

// AttachQRCode records attach requests.
func (s *WorkerFacadeStub) AttachQRCode(ctx context.Context, order model.Order) error {
	if s.AttachFn != nil {
		return s.AttachFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Attached = append(s.Attached, QRAttachCall{OrderID: order.ID, Number: order.Number})
	return nil
}

// EncoderStub implements the QR encoder with controllable output.
type EncoderStub struct {
	EncodeFn func(string) ([]byte, error)
}

// Encode delegates or returns fixed bytes.
func (s EncoderStub) Encode(payload string) ([]byte, error) {
	if s.EncodeFn != nil {
		return s.EncodeFn(payload)
	}
	return []byte("png:" + payload), nil
}
