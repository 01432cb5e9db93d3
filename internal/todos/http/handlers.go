package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/the-todo-app/todo-backend/internal/auth"
	"github.com/the-todo-app/todo-backend/internal/todos"
)

// Handler serves the /todos routes over any store. Each handler performs at
// most one storage call and maps its outcome to a status; no retries.
type Handler[T any] struct {
	store  todos.Store[T]
	policy ResponsePolicy
}

func Register[T any](rg *gin.RouterGroup, store todos.Store[T], policy ResponsePolicy) {
	h := &Handler[T]{store: store, policy: policy}

	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

func (h *Handler[T]) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), auth.Owner(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler[T]) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	done := false
	if h.policy.CreateAcceptsDone {
		if req.Done == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		done = *req.Done
	}

	item, err := h.store.Create(c.Request.Context(), auth.Owner(c), strings.TrimSpace(req.Title), done)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}

	// 200, not 201, for wire compatibility with existing clients.
	c.JSON(http.StatusOK, item)
}

func (h *Handler[T]) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Done == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.store.SetDone(c.Request.Context(), auth.Owner(c), c.Param("id"), *req.Done)
	switch {
	case errors.Is(err, todos.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
	case errors.Is(err, todos.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
	case h.policy.UpdateReturnsItem:
		c.JSON(http.StatusOK, item)
	default:
		c.Status(http.StatusOK)
	}
}

func (h *Handler[T]) delete(c *gin.Context) {
	removed, err := h.store.Delete(c.Request.Context(), auth.Owner(c), c.Param("id"))

	if errors.Is(err, todos.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	if h.policy.DeleteReportsMatch {
		// A missing row is a normal outcome here: 200 with a boolean body.
		if err != nil && !errors.Is(err, todos.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		c.JSON(http.StatusOK, removed)
		return
	}

	switch {
	case errors.Is(err, todos.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
	default:
		c.Status(http.StatusOK)
	}
}
