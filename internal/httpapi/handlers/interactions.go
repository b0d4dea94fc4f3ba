package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stylecraft/backend/internal/interaction"
	"github.com/stylecraft/backend/internal/logging"
	"gorm.io/gorm"
)

type generateReq struct {
	UserID string `json:"user_id"`
	Query  string `json:"query" binding:"required"`
}

// Generate runs the gateway for both styles and stores the interaction.
// Per-style error text is persisted like real content; a total generation
// failure is reported as service-unavailable with nothing stored.
func (h *Handler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "query is required and must be non-empty")
		return
	}

	rec, err := h.Svc.Generate(c.Request.Context(), req.UserID, req.Query)
	if err != nil {
		if errors.Is(err, interaction.ErrNoContent) {
			fail(c, http.StatusServiceUnavailable, "AI response generation failed or returned no content.")
			return
		}
		logging.Errorw("failed to save interaction", "error", err)
		fail(c, http.StatusInternalServerError, "database error while saving interaction")
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListInteractions(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}

	recs, err := h.Svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		logging.Errorw("failed to list interactions", "error", err)
		fail(c, http.StatusInternalServerError, "database error while fetching interactions")
		return
	}
	if recs == nil {
		recs = []interaction.Interaction{}
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) ListUserInteractions(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}

	recs, err := h.Svc.ListByUser(c.Request.Context(), c.Param("user_id"), skip, limit)
	if err != nil {
		logging.Errorw("failed to list interactions for user", "user_id", c.Param("user_id"), "error", err)
		fail(c, http.StatusInternalServerError, "database error while fetching interactions for user")
		return
	}
	if recs == nil {
		recs = []interaction.Interaction{}
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) GetInteraction(c *gin.Context) {
	id, ok := interactionID(c)
	if !ok {
		return
	}

	rec, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Interaction not found")
			return
		}
		fail(c, http.StatusInternalServerError, "database error while fetching interaction")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateInteraction applies a partial body. Only keys present in the JSON are
// touched; an explicit null clears a nullable response field.
func (h *Handler) UpdateInteraction(c *gin.Context) {
	id, ok := interactionID(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid json body")
		return
	}

	fields, errMsg := updateFields(body)
	if errMsg != "" {
		fail(c, http.StatusUnprocessableEntity, errMsg)
		return
	}

	rec, err := h.Svc.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Interaction not found for update")
			return
		}
		logging.Errorw("failed to update interaction", "id", id, "error", err)
		fail(c, http.StatusInternalServerError, "database error while updating interaction")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteInteraction(c *gin.Context) {
	id, ok := interactionID(c)
	if !ok {
		return
	}

	if _, err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Interaction not found for deletion")
			return
		}
		logging.Errorw("failed to delete interaction", "id", id, "error", err)
		fail(c, http.StatusInternalServerError, "database error while deleting interaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateFields whitelists the mutable columns and validates value shapes.
// Unknown keys are ignored, matching the original API's behavior.
func updateFields(body map[string]any) (map[string]any, string) {
	fields := make(map[string]any, len(body))

	if v, present := body["query"]; present {
		s, isStr := v.(string)
		if !isStr || s == "" {
			return nil, "query must be a non-empty string"
		}
		fields["query"] = s
	}
	if v, present := body["user_id"]; present {
		s, isStr := v.(string)
		if !isStr || s == "" {
			return nil, "user_id must be a non-empty string"
		}
		fields["user_id"] = s
	}
	for _, key := range []string{"casual_response", "formal_response"} {
		v, present := body[key]
		if !present {
			continue
		}
		if v == nil {
			fields[key] = nil
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			return nil, key + " must be a string or null"
		}
		fields[key] = s
	}

	return fields, ""
}

func interactionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "interaction id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (skip, limit int, ok bool) {
	skip, limit = 0, 10

	if v := c.Query("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			fail(c, http.StatusUnprocessableEntity, "skip must be an integer >= 0")
			return 0, 0, false
		}
		skip = n
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			fail(c, http.StatusUnprocessableEntity, "limit must be an integer in [1,100]")
			return 0, 0, false
		}
		limit = n
	}
	return skip, limit, true
}
