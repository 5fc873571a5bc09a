package test

import (
	"context"
	"time"

	domainErrors "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/errors"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers a user unless one exists or the stub has an explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, name string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, Name: name, Role: role, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// MenuRepositoryStub serves a fixed catalog.
type MenuRepositoryStub struct {
	Items        map[int64]model.MenuItem
	ListFn       func(context.Context, string) ([]model.MenuItem, error)
	Availability map[int64]bool
	Err          error
}

// NewMenuRepositoryStub constructs the stub with initialized maps.
func NewMenuRepositoryStub(items ...model.MenuItem) *MenuRepositoryStub {
	stub := &MenuRepositoryStub{
		Items:        make(map[int64]model.MenuItem),
		Availability: make(map[int64]bool),
	}
	for _, item := range items {
		stub.Items[item.ID] = item
	}
	return stub
}

// List returns catalog items, honoring an optional category filter.
func (s *MenuRepositoryStub) List(ctx context.Context, category string) ([]model.MenuItem, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, category)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.MenuItem
	for _, item := range s.Items {
		if category == "" || item.Category == category {
			result = append(result, item)
		}
	}
	return result, nil
}

// GetByID resolves one item or returns not found.
func (s *MenuRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if item, ok := s.Items[id]; ok {
		return &item, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SetAvailability records the requested flag.
func (s *MenuRepositoryStub) SetAvailability(ctx context.Context, id int64, available bool) error {
	if s.Err != nil {
		return s.Err
	}
	s.Availability[id] = available
	return nil
}

// StatusUpdateCall records an UpdateStatus invocation.
type StatusUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour and inspect writes.
type OrderRepositoryStub struct {
	CreateFn              func(context.Context, *model.Order) error
	InsertItemsFn         func(context.Context, int64, []model.CartLine) error
	SetQRCodeFn           func(context.Context, int64, string) error
	GetByIDForUserFn      func(context.Context, int64, int64) (*model.Order, error)
	ListByUserFn          func(context.Context, int64) ([]model.Order, error)
	ItemsByOrderFn        func(context.Context, int64) ([]model.OrderItemDetail, error)
	UpdateStatusFn        func(context.Context, int64, model.OrderStatus) error
	ListActiveFn          func(context.Context) ([]model.StaffOrder, error)
	SelectMissingQRCodeFn func(context.Context, int) ([]model.Order, error)
	TodayStatsFn          func(context.Context) (*model.DayStats, error)

	NextID        int64
	Created       []model.Order
	InsertedLines map[int64][]model.CartLine
	QRCodes       map[int64]string
	StatusUpdates []StatusUpdateCall
}

// NewOrderRepositoryStub constructs the stub with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		NextID:        1,
		InsertedLines: make(map[int64][]model.CartLine),
		QRCodes:       make(map[int64]string),
	}
}

// Create assigns an id and records the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	order.ID = s.NextID
	s.NextID++
	order.CreatedAt = time.Now()
	s.Created = append(s.Created, *order)
	return nil
}

// InsertItems records requested lines per order.
func (s *OrderRepositoryStub) InsertItems(ctx context.Context, orderID int64, lines []model.CartLine) error {
	if s.InsertItemsFn != nil {
		return s.InsertItemsFn(ctx, orderID, lines)
	}
	if s.InsertedLines == nil {
		s.InsertedLines = make(map[int64][]model.CartLine)
	}
	s.InsertedLines[orderID] = append(s.InsertedLines[orderID], lines...)
	return nil
}

// SetQRCode records the payload per order.
func (s *OrderRepositoryStub) SetQRCode(ctx context.Context, orderID int64, payload string) error {
	if s.SetQRCodeFn != nil {
		return s.SetQRCodeFn(ctx, orderID, payload)
	}
	if s.QRCodes == nil {
		s.QRCodes = make(map[int64]string)
	}
	s.QRCodes[orderID] = payload
	return nil
}

// GetByIDForUser returns a created order matching both identifiers.
func (s *OrderRepositoryStub) GetByIDForUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	if s.GetByIDForUserFn != nil {
		return s.GetByIDForUserFn(ctx, orderID, userID)
	}
	for _, o := range s.Created {
		if o.ID == orderID && o.UserID == userID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns created orders owned by the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for _, o := range s.Created {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ItemsByOrder returns configured details.
func (s *OrderRepositoryStub) ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error) {
	if s.ItemsByOrderFn != nil {
		return s.ItemsByOrderFn(ctx, orderID)
	}
	return nil, nil
}

// UpdateStatus records status overwrites.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.StatusUpdates = append(s.StatusUpdates, StatusUpdateCall{OrderID: orderID, Status: status})
	for i := range s.Created {
		if s.Created[i].ID == orderID {
			s.Created[i].Status = status
		}
	}
	return nil
}

// ListActive returns configured staff orders.
func (s *OrderRepositoryStub) ListActive(ctx context.Context) ([]model.StaffOrder, error) {
	if s.ListActiveFn != nil {
		return s.ListActiveFn(ctx)
	}
	var result []model.StaffOrder
	for _, o := range s.Created {
		if o.Status != model.OrderStatusCollected {
			result = append(result, model.StaffOrder{Order: o})
		}
	}
	return result, nil
}

// SelectMissingQRCode returns created orders without a recorded payload.
func (s *OrderRepositoryStub) SelectMissingQRCode(ctx context.Context, limit int) ([]model.Order, error) {
	if s.SelectMissingQRCodeFn != nil {
		return s.SelectMissingQRCodeFn(ctx, limit)
	}
	var result []model.Order
	for _, o := range s.Created {
		if s.QRCodes[o.ID] == "" && len(result) < limit {
			result = append(result, o)
		}
	}
	return result, nil
}

// TodayStats returns configured stats or zeros.
func (s *OrderRepositoryStub) TodayStats(ctx context.Context) (*model.DayStats, error) {
	if s.TodayStatsFn != nil {
		return s.TodayStatsFn(ctx)
	}
	return &model.DayStats{}, nil
}
