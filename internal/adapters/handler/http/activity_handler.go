package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
)

type ActivityHandler struct {
	svc *services.ActivityService
}

func NewActivityHandler(svc *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

type createActivityRequest struct {
	CategoryID domain.ID `json:"category_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	Type       string    `json:"type"`
	Time       string    `json:"time"`
	Hours      float64   `json:"hours"`
}

type updateActivityRequest struct {
	CategoryID domain.ID `json:"category_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Time       string    `json:"time"`
	Hours      *float64  `json:"hours"`
}

func (h *ActivityHandler) RegisterRoutes(router *gin.RouterGroup) {
	activities := router.Group("/activities")
	{
		activities.POST("", h.Create)
		activities.GET("", h.List)
		activities.PUT("/:id", h.Update)
		activities.DELETE("/:id", h.Delete)
	}
}

func activityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
	case errors.Is(err, domain.ErrActivityNameEmpty),
		errors.Is(err, domain.ErrActivityNameTooLong),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidScheduledTime),
		errors.Is(err, domain.ErrMissingScheduledTime),
		errors.Is(err, domain.ErrInvalidDailyHours):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// Create godoc
// @Summary   Create an activity
// @Tags      activities
// @Security  BearerAuth
// @Param     body  body      createActivityRequest  true  "activity"
// @Success   201   {object}  domain.Activity
// @Failure   400   {object}  map[string]string
// @Router    /activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.svc.Create(c.Request.Context(), services.CreateActivityInput{
		UserID:        userID,
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Kind:          domain.ActivityKind(req.Type),
		ScheduledTime: req.Time,
		DailyHours:    req.Hours,
	})
	if err != nil {
		activityError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	list, err := h.svc.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		activityError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Update applies a partial update; omitted fields keep their value.
func (h *ActivityHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req updateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.svc.Update(c.Request.Context(), services.UpdateActivityInput{
		ID:            domain.ID(c.Param("id")),
		UserID:        userID,
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Kind:          domain.ActivityKind(req.Type),
		ScheduledTime: req.Time,
		DailyHours:    req.Hours,
	})
	if err != nil {
		activityError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), domain.ID(c.Param("id")), userID); err != nil {
		activityError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
