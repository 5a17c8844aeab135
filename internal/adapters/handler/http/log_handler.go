package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
)

type LogHandler struct {
	svc *services.LogService
}

func NewLogHandler(svc *services.LogService) *LogHandler {
	return &LogHandler{svc: svc}
}

type saveDayRequest struct {
	Date        string      `json:"date" binding:"required"`
	ActivityIDs []domain.ID `json:"activity_ids"`
}

type saveDayResponse struct {
	Date        string      `json:"date"`
	ActivityIDs []domain.ID `json:"activity_ids"`
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("", h.List)
		logs.POST("", h.SaveDay)
	}
}

func logError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// List godoc
// @Summary   Completed activities per date
// @Tags      logs
// @Security  BearerAuth
// @Param     start_date  query     string  false  "YYYY-MM-DD"
// @Param     end_date    query     string  false  "YYYY-MM-DD"
// @Success   200         {object}  domain.LogBook
// @Router    /logs [get]
func (h *LogHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	book, err := h.svc.GetLogs(c.Request.Context(), userID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		logError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// SaveDay godoc
// @Summary   Replace the completed set of one date
// @Tags      logs
// @Security  BearerAuth
// @Param     body  body      saveDayRequest  true  "day"
// @Success   200   {object}  saveDayResponse
// @Router    /logs [post]
func (h *LogHandler) SaveDay(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req saveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.svc.SaveDay(c.Request.Context(), services.SaveDayInput{
		UserID:      userID,
		Date:        req.Date,
		ActivityIDs: req.ActivityIDs,
	})
	if err != nil {
		logError(c, err)
		return
	}

	date, _ := domain.ParseDate(req.Date)
	c.JSON(http.StatusOK, saveDayResponse{Date: domain.FormatDate(date), ActivityIDs: saved})
}
