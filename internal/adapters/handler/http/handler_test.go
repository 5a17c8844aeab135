package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/lifesync-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/lifesync-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/lifesync-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/analytics"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
)

const testUser = domain.ID("user-1")

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repository.NewInMemoryStore()
	categorySvc := services.NewCategoryService(store.Categories(), nil)
	activitySvc := services.NewActivityService(store.Activities(), store.Categories(), nil)
	logSvc := services.NewLogService(store.Logs(), store.Activities(), nil)
	statsSvc := services.NewStatsService(store.Categories(), store.Activities(), store.Logs(), nil, analytics.DefaultProjector())

	clock := func() time.Time { return time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC) }

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, testUser)
		c.Next()
	})
	adapterHTTP.NewCategoryHandler(categorySvc).RegisterRoutes(api)
	adapterHTTP.NewActivityHandler(activitySvc).RegisterRoutes(api)
	adapterHTTP.NewLogHandler(logSvc).RegisterRoutes(api)
	adapterHTTP.NewAnalyticsHandler(statsSvc, clock, time.UTC).RegisterRoutes(api)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(t *testing.T, r *gin.Engine, name string) domain.Category {
	t.Helper()
	w := perform(r, http.MethodPost, "/api/v1/categories", `{"name": "`+name+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var c domain.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	return c
}

func createActivity(t *testing.T, r *gin.Engine, body string) domain.Activity {
	t.Helper()
	w := perform(r, http.MethodPost, "/api/v1/activities", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var a domain.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	return a
}

func TestCategoryHandler(t *testing.T) {
	r := setupRouter()

	t.Run("Create uses the default color", func(t *testing.T) {
		c := createCategory(t, r, "Health")
		assert.Equal(t, domain.DefaultCategoryColor, c.Color)
	})

	t.Run("Invalid color is a bad request", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/v1/categories", `{"name": "Work", "color": "blue"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Update of an unknown category is not found", func(t *testing.T) {
		w := perform(r, http.MethodPut, "/api/v1/categories/missing", `{"name": "X"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("List returns creation order", func(t *testing.T) {
		createCategory(t, r, "Social")

		w := perform(r, http.MethodGet, "/api/v1/categories", "")
		require.Equal(t, http.StatusOK, w.Code)

		var list []domain.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 2)
		assert.Equal(t, "Health", list[0].Name)
		assert.Equal(t, "Social", list[1].Name)
	})
}

func TestActivityHandler(t *testing.T) {
	r := setupRouter()
	cat := createCategory(t, r, "Health")

	t.Run("Time-bound activity needs a time", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/v1/activities",
			`{"category_id": "`+cat.ID.String()+`", "name": "Run", "type": "time-bound"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown category is rejected", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/v1/activities", `{"category_id": "nope", "name": "Run"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create, update and delete", func(t *testing.T) {
		a := createActivity(t, r, `{"category_id": "`+cat.ID.String()+`", "name": "Run", "type": "time-bound", "time": "07:30", "hours": 1}`)
		require.NotNil(t, a.ScheduledTime)
		assert.Equal(t, "07:30", *a.ScheduledTime)

		w := perform(r, http.MethodPut, "/api/v1/activities/"+a.ID.String(), `{"hours": 2}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated domain.Activity
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.InDelta(t, 2.0, updated.DailyHours, 0.001)
		assert.Equal(t, "Run", updated.Name)

		w = perform(r, http.MethodDelete, "/api/v1/activities/"+a.ID.String(), "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = perform(r, http.MethodDelete, "/api/v1/activities/"+a.ID.String(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLogHandler(t *testing.T) {
	r := setupRouter()
	cat := createCategory(t, r, "Health")
	run := createActivity(t, r, `{"category_id": "`+cat.ID.String()+`", "name": "Run", "hours": 1}`)

	t.Run("Save drops ids the user does not own", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/v1/logs",
			`{"date": "2024-01-09", "activity_ids": ["`+run.ID.String()+`", "someone-else"]}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		assert.JSONEq(t, `{"date": "2024-01-09", "activity_ids": ["`+run.ID.String()+`"]}`, w.Body.String())
	})

	t.Run("List returns the log book", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/v1/logs?start_date=2024-01-01&end_date=2024-01-31", "")
		require.Equal(t, http.StatusOK, w.Code)

		var book domain.LogBook
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, []domain.ID{run.ID}, book["2024-01-09"])
	})

	t.Run("Bad dates are rejected", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/v1/logs", `{"date": "09/01/2024", "activity_ids": []}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = perform(r, http.MethodGet, "/api/v1/logs?start_date=2024-02-01&end_date=2024-01-01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAnalyticsHandler(t *testing.T) {
	r := setupRouter()
	cat := createCategory(t, r, "Fitness")
	run := createActivity(t, r, `{"category_id": "`+cat.ID.String()+`", "name": "Run", "type": "time-bound", "time": "06:30", "hours": 1}`)
	createActivity(t, r, `{"category_id": "`+cat.ID.String()+`", "name": "Stretch", "hours": 0.5}`)

	for _, d := range []string{"2024-01-08", "2024-01-09", "2024-01-10"} {
		w := perform(r, http.MethodPost, "/api/v1/logs", `{"date": "`+d+`", "activity_ids": ["`+run.ID.String()+`"]}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("Range defaults to the current week of the clock", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/v1/analytics/range", "")
		require.Equal(t, http.StatusOK, w.Code)

		var dates domain.DateRange
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dates))
		require.Len(t, dates, 7)
		assert.Equal(t, "2024-01-08", dates[0])
	})

	t.Run("Explicit today and range", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/v1/analytics/range?range=month&today=2024-02-15", "")
		require.Equal(t, http.StatusOK, w.Code)

		var dates domain.DateRange
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dates))
		assert.Len(t, dates, 29)
	})

	t.Run("Bad parameters", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/api/v1/analytics/range?range=decade", "").Code)
		assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/api/v1/analytics/dashboard?today=tomorrow", "").Code)
	})

	t.Run("Schedule puts timed activities first", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/v1/analytics/schedule", "")
		require.Equal(t, http.StatusOK, w.Code)

		var periods []domain.TimePeriod
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &periods))
		require.NotEmpty(t, periods)
		require.NotEmpty(t, periods[0].Activities)
		assert.Equal(t, "Run", periods[0].Activities[0].Name)
	})

	t.Run("Dashboard reports streaks and consistency", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/v1/analytics/dashboard", "")
		require.Equal(t, http.StatusOK, w.Code)

		var d domain.Dashboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
		assert.Equal(t, "2024-01-10", d.Today)
		assert.Equal(t, 3, d.Consistency.Completed)
		assert.Equal(t, 6, d.Consistency.Possible)
		assert.Equal(t, 50, d.Consistency.CompletionRate)
		require.Len(t, d.Streaks, 2)
		assert.Equal(t, 3, d.Streaks[0].Current)
		assert.InDelta(t, 22.5, d.RemainingHours, 0.001)
	})

	t.Run("Category rates", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/v1/analytics/categories?range=current-week", "")
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.CategoryAnalytics
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result.Categories, 1)
		assert.Equal(t, 50, result.Categories[0].Rate)
		assert.Equal(t, 50, result.Categories[0].Trend)
	})

	t.Run("Activity reports split at the threshold", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/v1/analytics/activities?category_id="+cat.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.ActivityAnalytics
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result.PerformingWell, 1)
		assert.Equal(t, run.ID, result.PerformingWell[0].ActivityID)
		assert.Len(t, result.NeedsAttention, 1)
	})

	t.Run("Outcomes cover every horizon", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/v1/analytics/outcomes", "")
		require.Equal(t, http.StatusOK, w.Code)

		var m domain.OutcomeMatrix
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
		assert.Len(t, m.Matrix, 3)
		assert.InDelta(t, 1.5, m.Meta.TotalHoursTracked, 0.001)
	})
}
