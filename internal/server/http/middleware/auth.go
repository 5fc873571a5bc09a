package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/dto"
)

const (
	// UserContextKey is a gin context key for the authenticated user.
	UserContextKey = "currentUser"
	// SessionHeader is the custom header carrying the session identifier.
	SessionHeader = "X-Session-Id"
)

// SessionResolver looks up the user bound to a session identifier.
type SessionResolver interface {
	ResolveSession(id string) (*model.User, bool)
}

// SessionRequired ensures the request carries a known session identifier,
// either in the X-Session-Id header or a sessionId body field.
func SessionRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := extractSessionID(c)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}

		user, ok := resolver.ResolveSession(id)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// StaffOnly rejects non-staff users. Must run after SessionRequired.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, _ := c.Get(UserContextKey)
		user, _ := val.(*model.User)
		if !user.IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

func extractSessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}

	// Clients may send the identifier in the JSON body instead of the
	// header. The body is re-buffered so the handler can still bind it.
	if c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.SessionID
}
