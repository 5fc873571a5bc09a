package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user from context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}
