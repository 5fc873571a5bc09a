package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/dto"
)

// MenuHandler serves the public menu catalog.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// List handles GET /api/menu.
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.facade.Menu(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load menu"})
		return
	}

	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, dto.ToMenuItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}
