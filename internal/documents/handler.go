package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents", h.list)
	rg.POST("/documents", h.create)
	rg.GET("/documents/:id", h.get)
	rg.PUT("/documents/:id", h.update)
	rg.PATCH("/documents/:id", h.patch)
	rg.DELETE("/documents/:id", h.remove)
}

type createRequest struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Type == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "type is required", nil)
		return
	}
	if req.Title == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}

	doc, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.fail(c, err, "failed to create document")
		return
	}
	respond.Created(c, doc)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	docs, err := h.Svc.List(c.Request.Context(), userID, c.Query("type"))
	if err != nil {
		h.fail(c, err, "failed to list documents")
		return
	}
	respond.OK(c, ListResponse{Documents: docs, Total: len(docs), HasMore: false})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.fail(c, err, "failed to fetch document")
		return
	}
	respond.OK(c, doc)
}

type updateRequest struct {
	Type    *string `json:"type"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.Update(c.Request.Context(), c.Param("id"), userID, UpdateInput{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.fail(c, err, "failed to update document")
		return
	}
	respond.OK(c, doc)
}

type patchRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Version *int64  `json:"version"`
}

func (h *Handler) patch(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req patchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.Patch(c.Request.Context(), c.Param("id"), userID, PatchInput{
		Title:   req.Title,
		Content: req.Content,
		Version: req.Version,
	})
	if err != nil {
		h.fail(c, err, "failed to update document")
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.fail(c, err, "failed to delete document")
		return
	}
	respond.OK(c, DeleteResponse{Message: "document deleted"})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	var vErr *ValidationError
	var cErr *ConflictError

	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "you do not have access to this document", nil)
	case errors.As(err, &vErr):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid document fields", vErr.Errors)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.As(err, &cErr):
		respond.Error(c, http.StatusConflict, "conflict", "document was modified by another request", ConflictDetails{
			CurrentVersion: cErr.CurrentVersion,
			ConflictData:   cErr.Current,
		})
	case errors.Is(err, dynamo.ErrThrottled):
		respond.Error(c, http.StatusTooManyRequests, "too_many_requests", "storage is throttling requests, try again later", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
