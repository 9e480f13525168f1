package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobinow/jobinow/internal/server/models"
)

func (s *Server) registerHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	role := models.Role(req.Role)
	switch role {
	case "":
		role = models.RoleJobSeeker
	case models.RoleJobSeeker, models.RoleRecruiter, models.RoleAgent:
		// self-registrable roles
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	user, token, err := s.sessions.Register(c.Request.Context(), req.Email, req.Password, role)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"user":  toUserResponse(user),
		"token": loginResponse{AccessToken: token.Value, TokenType: string(token.Type)},
	})
}

func (s *Server) loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	_, token, err := s.sessions.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{AccessToken: token.Value, TokenType: string(token.Type)})
}

func (s *Server) logoutHandler(c *gin.Context) {
	user, err := s.sessions.ResolveCurrentUser(c.Request.Context(), principalFrom(c))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	if err := s.sessions.Logout(c.Request.Context(), user); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) currentUserHandler(c *gin.Context) {
	user, err := s.sessions.ResolveCurrentUser(c.Request.Context(), principalFrom(c))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) changePasswordHandler(c *gin.Context) {
	user, err := s.sessions.ResolveCurrentUser(c.Request.Context(), principalFrom(c))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	if err := s.sessions.ChangePassword(c.Request.Context(),
		req.CurrentPassword, req.NewPassword, req.ConfirmationPassword, user); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
