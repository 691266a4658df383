package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumegen-backend/internal/llm"
	"resumegen-backend/internal/shared/server/middleware"
	"resumegen-backend/internal/shared/server/respond"
	"resumegen-backend/internal/shared/storage/dynamo"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analysis", h.list)
	rg.POST("/analysis", h.create)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	analysis, err := h.Svc.Create(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "failed to create analysis")
		return
	}
	respond.Created(c, analysis)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	analyses, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "failed to list analyses")
		return
	}
	respond.OK(c, analyses)
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNoDocuments):
		respond.Error(c, http.StatusBadRequest, "no_documents", "no documents found", nil)
	case errors.Is(err, llm.ErrThrottled) || errors.Is(err, dynamo.ErrThrottled):
		respond.Error(c, http.StatusTooManyRequests, "too_many_requests", "too many requests, try again later", nil)
	case errors.Is(err, llm.ErrGenerationUnavailable):
		respond.Error(c, http.StatusInternalServerError, "generation_unavailable", "analysis generation is temporarily unavailable", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
