package model

import "time"

// OrderStatus describes the pickup lifecycle.
type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ordered"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCollected OrderStatus = "collected"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Cancellable reports whether a student may still cancel an order in this
// status. Once an order is ready or collected the kitchen has committed to it.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusOrdered || s == OrderStatusPreparing
}

// Order is a placed order. TotalAmount is a snapshot of item prices at
// creation time and is never recomputed. Number is the short display code
// printed on pickup slips; QRCode carries its encoded image as a data URL
// and stays empty when encoding failed.
type Order struct {
	ID                  int64
	UserID              int64
	Status              OrderStatus
	TotalAmount         float64
	PickupTime          string
	SpecialInstructions string
	PaymentMethod       string
	Number              string
	QRCode              string
	CreatedAt           time.Time

	// ItemsSummary is a compact "menuItemID:quantity" listing, populated
	// only by per-user order listings.
	ItemsSummary string
}

// OrderItem is a single line of an order, immutable once created.
// Customizations holds the client-supplied payload as opaque JSON text.
type OrderItem struct {
	ID             int64
	OrderID        int64
	MenuItemID     int64
	Quantity       int
	Customizations string
}

// OrderItemDetail is an order line joined with its menu item.
type OrderItemDetail struct {
	OrderItem
	Name     string
	Price    float64
	ImageURL string
}

// StaffOrder annotates an order with the owning user's name and full item
// details for the staff dashboard.
type StaffOrder struct {
	Order
	UserName string
	Items    []OrderItemDetail
}

// CartLine is a requested order line as submitted by the client. The
// referenced menu item is not guaranteed to exist.
type CartLine struct {
	MenuItemID     int64
	Quantity       int
	Customizations string
}
