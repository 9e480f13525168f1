package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobinow/jobinow/internal/server/models"
)

// pageFrom reads ?page= and ?size= query parameters (both optional).
func pageFrom(c *gin.Context) models.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "0"))
	return models.PageRequest{Page: page, Size: size}
}

func (s *Server) listUsersHandler(c *gin.Context) {
	result, err := s.users.GetAllUsers(c.Request.Context(), pageFrom(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserPage(result))
}

// listByRoleHandler adapts one of the role-filtered UserService listings to
// a gin handler.
func (s *Server) listByRoleHandler(list func(context.Context, models.PageRequest) (*models.Page[*models.User], error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := list(c.Request.Context(), pageFrom(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, toUserPage(result))
	}
}

func (s *Server) listConnectedHandler(c *gin.Context) {
	result, err := s.users.FindConnectedUsers(c.Request.Context(), pageFrom(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserPage(result))
}
