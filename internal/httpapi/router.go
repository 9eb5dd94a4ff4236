// Package httpapi serves the job-site punch form and the crew dashboard
// over HTTP.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/crewclock/internal/photostore"
	"github.com/alexanderramin/crewclock/internal/service"
	"github.com/gin-gonic/gin"
)

// Deps are the collaborators of the router. Photos may be nil when no
// photo store is configured.
type Deps struct {
	Clock    service.ClockService
	Auth     service.AuthService
	Reports  service.ReportService
	Admin    service.AdminService
	Export   service.ExportService
	Photos   photostore.Store
	Tokens   *TokenService
	Projects []string
	// AllowedIP limits /clock and /dashboard to one client address.
	AllowedIP string
	Location  *time.Location
	Logger    *slog.Logger
	Now       func() time.Time
}

type server struct {
	Deps
	logger *slog.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Deps) *gin.Engine {
	s := &server{Deps: deps, logger: deps.Logger}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.Location == nil {
		s.Location = time.UTC
	}
	if s.Now == nil {
		s.Now = time.Now
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/projects", s.listProjects)
	router.POST("/login", s.login)

	onSite := restrictIP(s.AllowedIP, s.logger)
	router.POST("/clock", onSite, s.clock)

	authed := router.Group("/")
	authed.Use(requireToken(s.Tokens))
	{
		authed.GET("/dashboard", onSite, s.dashboard)
		authed.GET("/photos/:name", s.photo)
	}

	admin := router.Group("/")
	admin.Use(requireToken(s.Tokens), requireAdmin())
	{
		admin.DELETE("/events/:id", s.deleteEvent)
		admin.PATCH("/events/:id", s.editEvent)
		admin.POST("/events/delete-at", s.deleteAt)
		admin.GET("/export.csv", s.exportCSV)
	}

	return router
}
