package dto

import (
	"encoding/json"
	"time"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
)

// CartLineRequest is one requested order line.
type CartLineRequest struct {
	MenuItemID     int64           `json:"menuItemId"`
	Quantity       int             `json:"quantity"`
	Customizations json.RawMessage `json:"customizations,omitempty"`
}

// CreateOrderRequest describes the order placement payload.
type CreateOrderRequest struct {
	Items               []CartLineRequest `json:"items"`
	PickupTime          string            `json:"pickup_time"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
	PaymentMethod       string            `json:"payment_method,omitempty"`
}

// OrderResponse is the JSON shape of an order. Items is the compact
// "menuItemID:quantity" summary attached by listings.
type OrderResponse struct {
	ID                  int64     `json:"id"`
	UserID              int64     `json:"user_id"`
	Status              string    `json:"status"`
	TotalAmount         float64   `json:"total_amount"`
	PickupTime          string    `json:"pickup_time"`
	SpecialInstructions string    `json:"special_instructions"`
	PaymentMethod       string    `json:"payment_method"`
	OrderNumber         string    `json:"order_number"`
	QRCode              string    `json:"qr_code,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	Items               string    `json:"items,omitempty"`
}

// CreateOrderResponse carries the created order and its QR payload.
type CreateOrderResponse struct {
	Order  OrderResponse `json:"order"`
	QRCode string        `json:"qrCode"`
}

// OrderItemResponse is an order line resolved against the menu.
type OrderItemResponse struct {
	ID             int64           `json:"id"`
	OrderID        int64           `json:"order_id"`
	MenuItemID     int64           `json:"menu_item_id"`
	Quantity       int             `json:"quantity"`
	Customizations json.RawMessage `json:"customizations"`
	Name           string          `json:"name"`
	Price          float64         `json:"price"`
	ImageURL       string          `json:"image_url"`
}

// OrderDetailResponse carries one order with its resolved items.
type OrderDetailResponse struct {
	Order OrderResponse       `json:"order"`
	Items []OrderItemResponse `json:"items"`
}

// SuccessResponse acknowledges state-changing staff and cancel operations.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ToOrderResponse converts a domain order.
func ToOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:                  o.ID,
		UserID:              o.UserID,
		Status:              string(o.Status),
		TotalAmount:         o.TotalAmount,
		PickupTime:          o.PickupTime,
		SpecialInstructions: o.SpecialInstructions,
		PaymentMethod:       o.PaymentMethod,
		OrderNumber:         o.Number,
		QRCode:              o.QRCode,
		CreatedAt:           o.CreatedAt,
		Items:               o.ItemsSummary,
	}
}

// ToOrderItemResponse converts a resolved order line.
func ToOrderItemResponse(d model.OrderItemDetail) OrderItemResponse {
	customizations := d.Customizations
	if customizations == "" {
		customizations = "{}"
	}
	return OrderItemResponse{
		ID:             d.ID,
		OrderID:        d.OrderID,
		MenuItemID:     d.MenuItemID,
		Quantity:       d.Quantity,
		Customizations: json.RawMessage(customizations),
		Name:           d.Name,
		Price:          d.Price,
		ImageURL:       d.ImageURL,
	}
}

// ToCartLines converts requested lines into domain cart lines, serializing
// the customization payload opaquely.
func ToCartLines(items []CartLineRequest) []model.CartLine {
	lines := make([]model.CartLine, 0, len(items))
	for _, item := range items {
		customizations := "{}"
		if len(item.Customizations) > 0 {
			customizations = string(item.Customizations)
		}
		lines = append(lines, model.CartLine{
			MenuItemID:     item.MenuItemID,
			Quantity:       item.Quantity,
			Customizations: customizations,
		})
	}
	return lines
}
