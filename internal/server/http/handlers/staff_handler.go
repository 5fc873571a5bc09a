package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/dto"
)

// StaffHandler manages staff-only endpoints. Role enforcement happens in
// middleware; handlers here assume a staff user.
type StaffHandler struct {
	facade StaffFacade
}

// NewStaffHandler constructs StaffHandler.
func NewStaffHandler(facade StaffFacade) *StaffHandler {
	return &StaffHandler{facade: facade}
}

// ActiveOrders handles GET /api/staff/orders.
func (h *StaffHandler) ActiveOrders(c *gin.Context) {
	orders, err := h.facade.ActiveOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load orders"})
		return
	}

	response := make([]dto.StaffOrderResponse, 0, len(orders))
	for _, so := range orders {
		response = append(response, dto.ToStaffOrderResponse(so))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /api/staff/orders/:id/status. The requested
// status is persisted unconditionally.
func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to update status"})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// SetAvailability handles PATCH /api/staff/menu/:id/availability.
func (h *StaffHandler) SetAvailability(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid menu item id"})
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.facade.SetMenuAvailability(c.Request.Context(), itemID, req.IsAvailable); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// TodayStats handles GET /api/staff/analytics/today.
func (h *StaffHandler) TodayStats(c *gin.Context) {
	stats, err := h.facade.TodayStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load analytics"})
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
