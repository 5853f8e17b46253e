package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/actions"
	"github.com/SSRGNG/ssrg-sub002/internal/citations"
	"github.com/SSRGNG/ssrg-sub002/internal/config"
	"github.com/SSRGNG/ssrg-sub002/internal/handlers"
	"github.com/SSRGNG/ssrg-sub002/internal/jobs"
	appmw "github.com/SSRGNG/ssrg-sub002/internal/middleware"
	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/repositories"
	"github.com/SSRGNG/ssrg-sub002/internal/routers"
)

func initDatabase(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return nil, err
	}
	return db, nil
}

func main() {
	// missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := initDatabase(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, citation caching disabled", zap.Error(err))
			rdb = nil
		}
	}

	citationSvc := citations.NewService(rdb, logger)
	citationSvc.CrossrefBase = cfg.CrossrefBaseURL
	citationSvc.OpenAlexBase = cfg.OpenAlexBaseURL

	pubRepo := &repositories.PublicationRepository{DB: db}
	videoRepo := &repositories.VideoRepository{DB: db}
	userRepo := &repositories.UserRepository{DB: db}
	authorRepo := &repositories.AuthorRepository{DB: db}
	contentRepo := &repositories.ContentRepository{DB: db}
	scholarshipRepo := &repositories.ScholarshipRepository{DB: db}
	teamRepo := &repositories.TeamRepository{DB: db}
	statsRepo := &repositories.StatsRepository{DB: db}

	acts := actions.New(db, logger)

	pubHandler := handlers.NewPublicationHandler(pubRepo, citationSvc, logger)
	videoHandler := handlers.NewVideoHandler(videoRepo, logger)
	contentHandler := handlers.NewContentHandler(contentRepo, scholarshipRepo, teamRepo, logger)
	authHandler := handlers.NewAuthHandler(userRepo, acts, cfg.JWTSecret, logger)
	authorHandler := handlers.NewAuthorHandler(authorRepo, acts, logger)
	adminHandler := handlers.NewAdminHandler(statsRepo, pubRepo, videoRepo, teamRepo, acts, logger)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(chimw.RequestID, chimw.RealIP, chimw.Logger, chimw.Recoverer, chimw.Timeout(60*time.Second))
	router.Use(appmw.Metrics)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })
	router.Handle("/metrics", promhttp.Handler())

	routers.PublicRoutes(router, pubHandler, videoHandler, contentHandler)
	routers.AuthRoutes(router, authHandler, cfg.JWTSecret)
	routers.PortalRoutes(router, authorHandler, authHandler, cfg.JWTSecret)
	routers.AdminRoutes(router, adminHandler, cfg.JWTSecret)

	refresher := jobs.NewCitationRefresherJob(pubRepo, citationSvc, cfg.CitationCron, logger)
	if err := refresher.Start(); err != nil {
		logger.Fatal("failed to start citation refresher", zap.Error(err))
	}
	defer refresher.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("portal service starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("portal service shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("portal service exited")
}
