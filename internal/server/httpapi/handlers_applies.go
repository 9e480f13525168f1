package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobinow/jobinow/internal/server/models"
)

func (s *Server) submitApplyHandler(c *gin.Context) {
	user, err := s.sessions.ResolveCurrentUser(c.Request.Context(), principalFrom(c))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	apply := &models.Apply{
		OfferID:     req.OfferID,
		JobSeekerID: user.ID,
		Type:        models.ApplyType(req.Type),
		ResumeKey:   req.ResumeKey,
	}
	created, err := s.applies.Submit(c.Request.Context(), apply)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toApplyResponse(created))
}

func (s *Server) myAppliesHandler(c *gin.Context) {
	user, err := s.sessions.ResolveCurrentUser(c.Request.Context(), principalFrom(c))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	result, err := s.applies.GetAllApplies(c.Request.Context(), user, pageFrom(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse[applyResponse]{
		Items: toApplyResponses(result.Items),
		Page:  result.Page,
		Size:  result.Size,
		Total: result.Total,
	})
}

func (s *Server) offerAppliesHandler(c *gin.Context) {
	offerID := c.Param("id")

	var (
		applies []*models.Apply
		err     error
	)
	if applyType := c.Query("type"); applyType != "" {
		applies, err = s.applies.GetAppliesByApplyType(c.Request.Context(), offerID, models.ApplyType(applyType))
	} else {
		applies, err = s.applies.GetOfferApplies(c.Request.Context(), offerID)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApplyResponses(applies))
}

func (s *Server) updateApplyStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	if err := s.applies.UpdateApplyStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
