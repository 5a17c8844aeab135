package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/analytics"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
)

// AnalyticsHandler serves the read-only analytics views. Every view is
// computed for a civil "today": the ?today= query parameter when present,
// otherwise the clock read in the configured location.
type AnalyticsHandler struct {
	svc *services.StatsService
	now func() time.Time
	loc *time.Location
}

func NewAnalyticsHandler(svc *services.StatsService, now func() time.Time, loc *time.Location) *AnalyticsHandler {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsHandler{svc: svc, now: now, loc: loc}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/analytics")
	{
		group.GET("/range", h.Range)
		group.GET("/schedule", h.Schedule)
		group.GET("/dashboard", h.Dashboard)
		group.GET("/categories", h.Categories)
		group.GET("/activities", h.Activities)
		group.GET("/outcomes", h.Outcomes)
	}
}

func (h *AnalyticsHandler) today(c *gin.Context) (time.Time, bool) {
	if raw := c.Query("today"); raw != "" {
		t, err := domain.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return time.Time{}, false
		}
		return t, true
	}

	y, m, d := h.now().In(h.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

func rangeKind(c *gin.Context) (analytics.RangeKind, bool) {
	raw := c.DefaultQuery("range", string(analytics.RangeCurrentWeek))
	kind, err := analytics.ParseRangeKind(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return kind, true
}

func analyticsError(c *gin.Context, err error) {
	if errors.Is(err, analytics.ErrUnknownRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// Range godoc
// @Summary   Dates covered by a named range
// @Tags      analytics
// @Security  BearerAuth
// @Param     range  query    string  false  "current-week | prev-week | month | year"
// @Param     today  query    string  false  "YYYY-MM-DD"
// @Success   200    {array}  string
// @Router    /analytics/range [get]
func (h *AnalyticsHandler) Range(c *gin.Context) {
	kind, ok := rangeKind(c)
	if !ok {
		return
	}
	today, ok := h.today(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.svc.Range(kind, today))
}

// Schedule godoc
// @Summary   Activities grouped into day periods and ordered by time
// @Tags      analytics
// @Security  BearerAuth
// @Success   200  {array}  domain.TimePeriod
// @Router    /analytics/schedule [get]
func (h *AnalyticsHandler) Schedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	periods, err := h.svc.Schedule(c.Request.Context(), userID)
	if err != nil {
		analyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, periods)
}

// Dashboard godoc
// @Summary   Weekly consistency, energy balance, streaks and today's plan
// @Tags      analytics
// @Security  BearerAuth
// @Param     today  query     string  false  "YYYY-MM-DD"
// @Success   200    {object}  domain.Dashboard
// @Router    /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}
	today, ok := h.today(c)
	if !ok {
		return
	}

	dashboard, err := h.svc.Dashboard(c.Request.Context(), userID, today)
	if err != nil {
		analyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// Categories godoc
// @Summary   Completion rate per category with trend against the previous range
// @Tags      analytics
// @Security  BearerAuth
// @Param     range  query     string  false  "current-week | prev-week | month | year"
// @Param     today  query     string  false  "YYYY-MM-DD"
// @Success   200    {object}  domain.CategoryAnalytics
// @Router    /analytics/categories [get]
func (h *AnalyticsHandler) Categories(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}
	kind, ok := rangeKind(c)
	if !ok {
		return
	}
	today, ok := h.today(c)
	if !ok {
		return
	}

	result, err := h.svc.CategoryAnalytics(c.Request.Context(), userID, kind, today)
	if err != nil {
		analyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Activities godoc
// @Summary   Per-activity rates and chart series, split at 70%
// @Tags      analytics
// @Security  BearerAuth
// @Param     range        query     string  false  "current-week | prev-week | month | year"
// @Param     category_id  query     string  false  "only this category"
// @Param     today        query     string  false  "YYYY-MM-DD"
// @Success   200          {object}  domain.ActivityAnalytics
// @Router    /analytics/activities [get]
func (h *AnalyticsHandler) Activities(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}
	kind, ok := rangeKind(c)
	if !ok {
		return
	}
	today, ok := h.today(c)
	if !ok {
		return
	}

	categoryID := domain.ID(c.Query("category_id"))

	result, err := h.svc.ActivityAnalytics(c.Request.Context(), userID, kind, categoryID, today)
	if err != nil {
		analyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Outcomes godoc
// @Summary   Projected life outcomes over 1, 5 and 10 years
// @Tags      analytics
// @Security  BearerAuth
// @Param     today  query     string  false  "YYYY-MM-DD"
// @Success   200    {object}  domain.OutcomeMatrix
// @Router    /analytics/outcomes [get]
func (h *AnalyticsHandler) Outcomes(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}
	today, ok := h.today(c)
	if !ok {
		return
	}

	matrix, err := h.svc.Outcomes(c.Request.Context(), userID, today)
	if err != nil {
		analyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, matrix)
}
