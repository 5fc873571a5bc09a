package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/errors"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/dto"
)

// OrderHandler manages student-facing order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), user.ID, dto.ToCartLines(req.Items),
		req.PickupTime, req.SpecialInstructions, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create order"})
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{Order: dto.ToOrderResponse(*order), QRCode: order.QRCode})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	orders, err := h.facade.Orders(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load orders"})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	user := CurrentUser(c)
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
		return
	}

	order, items, err := h.facade.Order(c.Request.Context(), user.ID, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load order"})
		return
	}

	response := dto.OrderDetailResponse{Order: dto.ToOrderResponse(*order), Items: make([]dto.OrderItemResponse, 0, len(items))}
	for _, item := range items {
		response.Items = append(response.Items, dto.ToOrderItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	user := CurrentUser(c)
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
		return
	}

	if err := h.facade.CancelOrder(c.Request.Context(), user.ID, orderID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Cannot cancel order at this stage"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to cancel order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
