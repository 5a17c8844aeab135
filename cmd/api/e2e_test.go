package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/lifesync-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/analytics"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
	"github.com/comitanigiacomo/lifesync-engine/migrations"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	_ = godotenv.Load("../../.env")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "lifesync_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "lifesync_db"),
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping end-to-end test (Postgres down): %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Apply(context.Background(), db))
	return db
}

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c *client) decode(w *httptest.ResponseRecorder, v any) {
	c.t.Helper()
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestEndToEnd_TrackingLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	repos := buildRepositories(db, nil)
	stats := services.NewStatsService(repos.categories, repos.activities, repos.logs, nil, analytics.DefaultProjector())
	tokens := services.NewTokenService("e2e-secret", "lifesync-e2e", time.Hour, repos.users)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(services.NewAuthService(repos.users), tokens),
		CategoryHandler:  adapterHTTP.NewCategoryHandler(services.NewCategoryService(repos.categories, nil)),
		ActivityHandler:  adapterHTTP.NewActivityHandler(services.NewActivityService(repos.activities, repos.categories, nil)),
		LogHandler:       adapterHTTP.NewLogHandler(services.NewLogService(repos.logs, repos.activities, nil)),
		AnalyticsHandler: adapterHTTP.NewAnalyticsHandler(stats, nil, nil),
		TokenService:     tokens,
		DB:               db,
		StartTime:        time.Now(),
	})

	c := &client{t: t, router: router}
	email := fmt.Sprintf("e2e_%s@lifesync.app", domain.NewID())

	var category domain.Category
	var activity domain.Activity

	t.Run("1. Register and login", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/auth/register", `{"email": "`+email+`", "password": "PasswordValid123!", "name": "E2E"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = c.do(http.MethodPost, "/api/v1/auth/login", `{"email": "`+email+`", "password": "PasswordValid123!"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		c.decode(w, &resp)
		c.token = resp.Token
	})

	t.Run("2. Create category and activity", func(t *testing.T) {
		require.NotEmpty(t, c.token, "login step failed")

		w := c.do(http.MethodPost, "/api/v1/categories", `{"name": "Fitness", "color": "#10b981"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		c.decode(w, &category)

		w = c.do(http.MethodPost, "/api/v1/activities",
			`{"category_id": "`+category.ID.String()+`", "name": "Run", "type": "time-bound", "time": "07:00", "hours": 4}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		c.decode(w, &activity)
	})

	t.Run("3. Log a month of runs", func(t *testing.T) {
		require.NotEmpty(t, activity.ID)

		day := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 30; i++ {
			date := domain.FormatDate(day.AddDate(0, 0, i))
			w := c.do(http.MethodPost, "/api/v1/logs", `{"date": "`+date+`", "activity_ids": ["`+activity.ID.String()+`"]}`)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
	})

	t.Run("4. Outcomes reflect full compliance", func(t *testing.T) {
		w := c.do(http.MethodGet, "/api/v1/analytics/outcomes?today=2024-03-31", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var m domain.OutcomeMatrix
		c.decode(w, &m)
		assert.Equal(t, 100, m.Meta.ComplianceRate)
		assert.Equal(t, 100, m.Matrix[domain.Horizon10Year][domain.DimensionLongevity])
	})

	t.Run("5. Streak on the dashboard", func(t *testing.T) {
		w := c.do(http.MethodGet, "/api/v1/analytics/dashboard?today=2024-03-31", "")
		require.Equal(t, http.StatusOK, w.Code)

		var d domain.Dashboard
		c.decode(w, &d)
		require.Len(t, d.Streaks, 1)
		assert.Equal(t, 30, d.Streaks[0].Current)
	})

	t.Run("6. Deleting the category cascades", func(t *testing.T) {
		w := c.do(http.MethodDelete, "/api/v1/categories/"+category.ID.String(), "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = c.do(http.MethodGet, "/api/v1/activities", "")
		assert.JSONEq(t, `[]`, w.Body.String())

		w = c.do(http.MethodGet, "/api/v1/logs", "")
		assert.JSONEq(t, `{}`, w.Body.String())
	})

	t.Run("7. Auth Error", func(t *testing.T) {
		anon := &client{t: t, router: router}
		w := anon.do(http.MethodGet, "/api/v1/categories", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
