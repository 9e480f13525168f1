package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobinow/jobinow/internal/common"
)

// abortWithError maps sentinel errors to HTTP statuses. Authentication
// failures collapse into a generic 401 body so nothing about account
// existence or token state leaks to the caller.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": common.ErrInvalidCredentials.Error()})
	case errors.Is(err, common.ErrNoAuthenticatedUser),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenRevoked),
		errors.Is(err, common.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrPasswordMismatch),
		errors.Is(err, common.ErrInvalidApplyStatus),
		errors.Is(err, common.ErrInvalidUUID):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrAlreadyExists):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, common.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// abortUnauthorized hides integrity anomalies (e.g. a principal whose user
// record vanished) behind the same generic 401 as ordinary auth failures.
func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}
