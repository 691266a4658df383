package server

import (
	"github.com/gin-gonic/gin"

	"resumegen-backend/internal/analyses"
	"resumegen-backend/internal/documents"
	"resumegen-backend/internal/resumes"
	"resumegen-backend/internal/shared/config"
	"resumegen-backend/internal/shared/metrics"
	"resumegen-backend/internal/shared/server/middleware"
	"resumegen-backend/internal/shared/server/respond"
	"resumegen-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	JWTSecret        []byte
	UsersHandler     *users.Handler
	DocumentsHandler *documents.Handler
	AnalysesHandler  *analyses.Handler
	ResumesHandler   *resumes.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.JWTSecret),
	)

	api := r.Group("")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	deps.UsersHandler.RegisterRoutes(api)
	deps.DocumentsHandler.RegisterRoutes(api)
	deps.AnalysesHandler.RegisterRoutes(api)
	deps.ResumesHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
