package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) subscribeHandler(c *gin.Context) {
	user, err := s.sessions.ResolveCurrentUser(c.Request.Context(), principalFrom(c))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	sub, err := s.subscriptions.Subscribe(c.Request.Context(), user, req.PackID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscriptionResponse{
		ID:          sub.ID,
		JobSeekerID: sub.JobSeekerID,
		PackID:      sub.PackID,
		CreatedAt:   sub.CreatedAt,
	})
}

func (s *Server) mySubscriptionsHandler(c *gin.Context) {
	user, err := s.sessions.ResolveCurrentUser(c.Request.Context(), principalFrom(c))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	subs, err := s.subscriptions.GetSubscriptions(c.Request.Context(), user)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]subscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		items = append(items, subscriptionResponse{
			ID:          sub.ID,
			JobSeekerID: sub.JobSeekerID,
			PackID:      sub.PackID,
			CreatedAt:   sub.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) listPacksHandler(c *gin.Context) {
	packs, err := s.subscriptions.ListPacks(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, packs)
}

func (s *Server) createTagHandler(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	tag, err := s.tags.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (s *Server) listTagsHandler(c *gin.Context) {
	tags, err := s.tags.ListTags(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (s *Server) presignResumeHandler(c *gin.Context) {
	key, url, err := s.resumes.GetPresignedPutURL(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, presignResponse{Key: key, URL: url})
}

func (s *Server) resumeURLHandler(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing key"})
		return
	}

	url, err := s.resumes.GetPresignedGetURL(c.Request.Context(), key)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, presignResponse{Key: key, URL: url})
}
