package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobinow/jobinow/internal/server/models"
)

func (s *Server) listOffersHandler(c *gin.Context) {
	result, err := s.offers.GetAllOffers(c.Request.Context(), pageFrom(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferPage(result))
}

func (s *Server) getOfferHandler(c *gin.Context) {
	offer, err := s.offers.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferResponse(offer))
}

func (s *Server) createOfferHandler(c *gin.Context) {
	user, err := s.sessions.ResolveCurrentUser(c.Request.Context(), principalFrom(c))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	offer := &models.Offer{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		RecruiterID: user.ID,
		Status:      models.OfferStatus(req.Status),
	}
	created, err := s.offers.CreateOffer(c.Request.Context(), offer)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOfferResponse(created))
}

func (s *Server) updateOfferHandler(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	offer, err := s.offers.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	offer.Title = req.Title
	offer.Description = req.Description
	offer.Company = req.Company
	offer.Location = req.Location
	offer.Salary = req.Salary
	if req.Status != "" {
		offer.Status = models.OfferStatus(req.Status)
	}

	if err := s.offers.UpdateOffer(c.Request.Context(), offer); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferResponse(offer))
}

func (s *Server) deleteOfferHandler(c *gin.Context) {
	if err := s.offers.DeleteOffer(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) appliedOffersHandler(c *gin.Context) {
	user, err := s.sessions.ResolveCurrentUser(c.Request.Context(), principalFrom(c))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	applied, err := s.offers.GetAppliedJobs(c.Request.Context(), user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferResponses(applied))
}
