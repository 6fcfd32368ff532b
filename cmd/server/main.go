package main

import (
	"log"
	"log/slog"
	"net/http"

	"plantbuilder-server/internal/catalog"
	"plantbuilder-server/internal/leaderboard"
	"plantbuilder-server/internal/middleware"
	"plantbuilder-server/internal/player"
	"plantbuilder-server/internal/server"
	"plantbuilder-server/internal/session"
	"plantbuilder-server/internal/shared/config"
	"plantbuilder-server/internal/shared/database"
	"plantbuilder-server/internal/shared/logger"
	"plantbuilder-server/internal/shared/redis"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to initialize configuration:", err)
	}

	logger.Init()
	appLogger := slog.Default()

	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	cache, err := redis.Connect()
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer cache.Close()

	cat := catalog.Default()

	playerRepo := player.NewRepository(db)
	playerService := player.NewService(playerRepo, appLogger)
	leaderboardService := leaderboard.NewService(cache, playerService, appLogger)
	sessionService := session.NewService(
		playerRepo,
		leaderboardService,
		session.RulesFromConfig(config.GlobalConfig.Game),
		appLogger,
	)

	appLogger.Info("Services initialized",
		"sectors", cat.Sectors(),
		"session_seconds", config.GlobalConfig.Game.TotalSessionSeconds,
	)

	routes := server.NewRoutes(db, cat, playerService, sessionService, leaderboardService, appLogger)
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: config.GlobalConfig.RateLimit.RequestsPerSecond,
		BurstSize:         config.GlobalConfig.RateLimit.BurstSize,
		Enabled:           config.GlobalConfig.RateLimit.Enabled,
	})
	corsMiddleware := middleware.NewCORS()

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	serverConfig := config.GlobalConfig.Server
	srv := &http.Server{
		Addr:         ":" + serverConfig.Port,
		Handler:      handler,
		ReadTimeout:  serverConfig.ReadTimeout,
		WriteTimeout: serverConfig.WriteTimeout,
		IdleTimeout:  serverConfig.IdleTimeout,
	}

	appLogger.Info("Plant Builder server starting", "port", serverConfig.Port)
	log.Fatal(srv.ListenAndServe())
}
