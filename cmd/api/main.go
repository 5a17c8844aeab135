// @title                       LifeSync Engine API
// @version                     1.0
// @description                 Activity tracking and life-outcome analytics.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/comitanigiacomo/lifesync-engine/docs"
	"github.com/comitanigiacomo/lifesync-engine/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/lifesync-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/lifesync-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/lifesync-engine/internal/config"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/analytics"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/workers"
	"github.com/comitanigiacomo/lifesync-engine/migrations"
)

type repositories struct {
	users      domain.UserRepository
	categories domain.CategoryRepository
	activities domain.ActivityRepository
	logs       domain.LogRepository
}

func connectPostgres(ctx context.Context, cfg *config.Config) *sqlx.DB {
	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := migrations.Apply(ctx, db); err != nil {
		log.Fatalf("Critical: Failed to apply migrations: %v", err)
	}

	log.Println("Database connected successfully.")
	return db
}

func connectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled {
		return nil
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Printf("[CACHE] Redis unavailable, running without cache: %v", err)
		return nil
	}

	log.Println("Redis connected successfully.")
	return rdb
}

func buildRepositories(db *sqlx.DB, rdb *redis.Client) repositories {
	if db == nil {
		log.Println("Using in-memory storage; data is lost on restart.")
		store := repository.NewInMemoryStore()
		return repositories{
			users:      store.Users(),
			categories: store.Categories(),
			activities: store.Activities(),
			logs:       store.Logs(),
		}
	}

	repos := repositories{
		users:      repository.NewPostgresUserRepository(db.DB),
		categories: repository.NewPostgresCategoryRepository(db),
		activities: repository.NewPostgresActivityRepository(db),
		logs:       repository.NewPostgresLogRepository(db),
	}
	if rdb != nil {
		repos.categories = repository.NewCachedCategoryRepository(repos.categories, rdb)
		repos.activities = repository.NewCachedActivityRepository(repos.activities, rdb)
	}
	return repos
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading the environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}
	loc, _ := cfg.Location()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var db *sqlx.DB
	if cfg.Storage == config.StoragePostgres {
		db = connectPostgres(ctx, cfg)
		defer db.Close()
	}

	rdb := connectRedis(ctx, cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	repos := buildRepositories(db, rdb)

	var snapshots domain.SnapshotStore = repository.NewInMemorySnapshotStore(cfg.SnapshotTTL)
	if rdb != nil {
		snapshots = cache.NewRedisSnapshotStore(rdb, cfg.SnapshotTTL)
	}

	clock := func() time.Time { return time.Now().In(loc) }

	// the worker refreshes through the stats service and is in turn the
	// queue the write services notify
	statsService := services.NewStatsService(repos.categories, repos.activities, repos.logs, snapshots, analytics.DefaultProjector())
	snapshotWorker := workers.NewSnapshotWorker(statsService, clock, cfg.SnapshotQueueSize)
	snapshotWorker.Start(ctx)

	authService := services.NewAuthService(repos.users)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, repos.users)
	categoryService := services.NewCategoryService(repos.categories, snapshotWorker)
	activityService := services.NewActivityService(repos.activities, repos.categories, snapshotWorker)
	logService := services.NewLogService(repos.logs, repos.activities, snapshotWorker)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService, tokenService),
		CategoryHandler:  adapterHTTP.NewCategoryHandler(categoryService),
		ActivityHandler:  adapterHTTP.NewActivityHandler(activityService),
		LogHandler:       adapterHTTP.NewLogHandler(logService),
		AnalyticsHandler: adapterHTTP.NewAnalyticsHandler(statsService, time.Now, loc),
		TokenService:     tokenService,
		DB:               db,
		Redis:            rdb,
		RateLimit:        cfg.RateLimit,
		RateWindow:       cfg.RateWindow,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("LifeSync Engine running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
