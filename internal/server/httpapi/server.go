// Package httpapi exposes the job-board REST API over gin. Handlers stay
// thin: they bind/validate payloads, call services, and map sentinel errors
// to HTTP statuses.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobinow/jobinow/internal/logging"
	"github.com/jobinow/jobinow/internal/server/auth"
	"github.com/jobinow/jobinow/internal/server/models"
	"github.com/jobinow/jobinow/internal/server/services"
)

// SessionService is the slice of the session core the transport layer uses.
type SessionService interface {
	Register(ctx context.Context, email, password string, role models.Role) (*models.User, *models.Token, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, *models.Token, error)
	ResolveCurrentUser(ctx context.Context, principal *auth.Principal) (*models.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword, confirmationPassword string, user *models.User) error
	Logout(ctx context.Context, user *models.User) error
	CheckToken(ctx context.Context, value string) (*models.Token, error)
}

// Server wires the gin engine to the service layer.
type Server struct {
	address       string
	logger        logging.Logger
	sessions      SessionService
	users         *services.UserService
	offers        *services.OfferService
	applies       *services.ApplyService
	resumes       *services.ResumeService
	subscriptions *services.SubscriptionService
	tags          *services.TagService
	secretKey     []byte
}

// NewServer constructs the HTTP server for the given services.
func NewServer(address string, logger logging.Logger, sessions SessionService,
	users *services.UserService, offers *services.OfferService, applies *services.ApplyService,
	resumes *services.ResumeService, subscriptions *services.SubscriptionService,
	tags *services.TagService, secretKey string) *Server {
	return &Server{
		address:       address,
		logger:        logger.With("module", "http_server"),
		sessions:      sessions,
		users:         users,
		offers:        offers,
		applies:       applies,
		resumes:       resumes,
		subscriptions: subscriptions,
		tags:          tags,
		secretKey:     []byte(secretKey),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	v1 := engine.Group("/api/v1")

	v1.POST("/auth/register", s.registerHandler)
	v1.POST("/auth/login", s.loginHandler)
	v1.GET("/offers", s.listOffersHandler)
	v1.GET("/offers/:id", s.getOfferHandler)
	v1.GET("/packs", s.listPacksHandler)
	v1.GET("/tags", s.listTagsHandler)

	authed := v1.Group("", s.authMiddleware())
	{
		authed.POST("/auth/logout", s.logoutHandler)

		authed.GET("/users/me", s.currentUserHandler)
		authed.PATCH("/users/me/password", s.changePasswordHandler)
		authed.GET("/users/me/offers", s.appliedOffersHandler)
		authed.GET("/users", s.listUsersHandler)
		authed.GET("/users/managers", s.listByRoleHandler(s.users.GetAllManagers))
		authed.GET("/users/agents", s.listByRoleHandler(s.users.GetAllAgents))
		authed.GET("/users/job-seekers", s.listByRoleHandler(s.users.GetAllJobSeekers))
		authed.GET("/users/recruiters", s.listByRoleHandler(s.users.GetAllRecruiters))
		authed.GET("/users/connected", s.listConnectedHandler)

		authed.POST("/offers", s.createOfferHandler)
		authed.PUT("/offers/:id", s.updateOfferHandler)
		authed.DELETE("/offers/:id", s.deleteOfferHandler)
		authed.GET("/offers/:id/applies", s.offerAppliesHandler)

		authed.POST("/applies", s.submitApplyHandler)
		authed.GET("/applies", s.myAppliesHandler)
		authed.PATCH("/applies/:id/status", s.updateApplyStatusHandler)

		authed.POST("/subscriptions", s.subscribeHandler)
		authed.GET("/subscriptions", s.mySubscriptionsHandler)
		authed.POST("/tags", s.createTagHandler)

		authed.POST("/resumes/presign", s.presignResumeHandler)
		authed.GET("/resumes/url", s.resumeURLHandler)
	}

	return engine
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
