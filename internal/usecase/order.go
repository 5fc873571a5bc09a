package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/adapter/qrcode"
	domainErrors "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/errors"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/repository"
)

const defaultPaymentMethod = "college_card"

// OrderUseCase encapsulates the order lifecycle: placement, listing,
// cancellation and the staff-side status machine.
type OrderUseCase struct {
	orders  repository.OrderRepository
	menu    repository.MenuRepository
	encoder qrcode.Encoder
	logger  *slog.Logger
	now     func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, menu repository.MenuRepository, encoder qrcode.Encoder, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, menu: menu, encoder: encoder, logger: logger, now: time.Now}
}

// Create places an order. The total is a snapshot summed over lines whose
// menu item resolves; unresolvable lines contribute nothing to the total but
// are still persisted as order items. A QR encoding failure is logged and
// swallowed: the order is returned without its QR payload and picked up by
// the backfill worker later.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, lines []model.CartLine, pickupTime, instructions, paymentMethod string) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		item, err := u.menu.GetByID(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		total += item.Price * float64(line.Quantity)
	}

	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	order := &model.Order{
		UserID:              userID,
		Status:              model.OrderStatusOrdered,
		TotalAmount:         total,
		PickupTime:          pickupTime,
		SpecialInstructions: instructions,
		PaymentMethod:       paymentMethod,
		Number:              u.newOrderNumber(),
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if png, err := u.encoder.Encode(order.Number); err != nil {
		u.logger.Error("qr code generation failed",
			slog.String("order_number", order.Number),
			slog.String("error", err.Error()),
		)
	} else {
		order.QRCode = qrcode.DataURL(png)
		if err := u.orders.SetQRCode(ctx, order.ID, order.QRCode); err != nil {
			return nil, err
		}
	}

	if err := u.orders.InsertItems(ctx, order.ID, lines); err != nil {
		return nil, err
	}

	return order, nil
}

// newOrderNumber derives a short display code from the current time. It only
// needs to be practically unique over the serving window.
func (u *OrderUseCase) newOrderNumber() string {
	millis := fmt.Sprintf("%d", u.now().UnixMilli())
	return "QB-" + millis[len(millis)-6:]
}

// ListByUser returns the user's orders, newest first, each with a compact
// item summary.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Get returns one order owned by the user together with its resolved items.
func (u *OrderUseCase) Get(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItemDetail, error) {
	order, err := u.orders.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, nil, err
	}
	items, err := u.orders.ItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// Cancel sets the order to cancelled unless the kitchen already finished it.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) error {
	order, err := u.orders.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return err
	}
	if !order.Status.Cancellable() {
		return domainErrors.ErrInvalidTransition
	}
	return u.orders.UpdateStatus(ctx, orderID, model.OrderStatusCancelled)
}

// ListActive returns all not-yet-collected orders for the staff dashboard.
func (u *OrderUseCase) ListActive(ctx context.Context) ([]model.StaffOrder, error) {
	return u.orders.ListActive(ctx)
}

// AdvanceStatus overwrites the order status with whatever staff requested.
// The staff path performs no transition validation.
func (u *OrderUseCase) AdvanceStatus(ctx context.Context, orderID int64, status string) error {
	return u.orders.UpdateStatus(ctx, orderID, model.OrderStatus(status))
}

// MissingQRCode returns orders persisted without a QR payload.
func (u *OrderUseCase) MissingQRCode(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectMissingQRCode(ctx, limit)
}

// AttachQRCode encodes the order number and stores the resulting payload.
func (u *OrderUseCase) AttachQRCode(ctx context.Context, order model.Order) error {
	png, err := u.encoder.Encode(order.Number)
	if err != nil {
		return err
	}
	return u.orders.SetQRCode(ctx, order.ID, qrcode.DataURL(png))
}
