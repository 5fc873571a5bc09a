package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/errors"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/dto"
)

// AuthHandler processes login and current user lookup.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, sessionID, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidDomain) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Please use your college email"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "login failed"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{SessionID: sessionID, User: dto.ToUserResponse(user)})
}

// CurrentUser handles GET /api/auth/user.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, dto.CurrentUserResponse{User: dto.ToUserResponse(user)})
}
