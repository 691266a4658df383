package resumes

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

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.list)
	rg.POST("/resume", h.create)
}

type createRequest struct {
	JobCategory string `json:"jobCategory"`
	JobTitle    string `json:"jobTitle"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), userID, req.JobCategory, req.JobTitle)
	if err != nil {
		h.fail(c, err, "failed to create resume")
		return
	}
	respond.Created(c, resume)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resumes, err := h.Svc.List(c.Request.Context(), userID, c.Query("jobCategory"))
	if err != nil {
		h.fail(c, err, "failed to list resumes")
		return
	}
	respond.OK(c, resumes)
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNoDocuments):
		respond.Error(c, http.StatusBadRequest, "no_documents", "no documents found", nil)
	case errors.Is(err, llm.ErrThrottled) || errors.Is(err, dynamo.ErrThrottled):
		respond.Error(c, http.StatusTooManyRequests, "too_many_requests", "too many requests, try again later", nil)
	case errors.Is(err, llm.ErrGenerationUnavailable):
		respond.Error(c, http.StatusInternalServerError, "generation_unavailable", "resume generation is temporarily unavailable", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
