package server

import (
	"log/slog"
	"net/http"

	"plantbuilder-server/internal/catalog"
	catalogHandlers "plantbuilder-server/internal/catalog/handlers"
	"plantbuilder-server/internal/leaderboard"
	leaderboardHandlers "plantbuilder-server/internal/leaderboard/handlers"
	"plantbuilder-server/internal/player"
	playerHandlers "plantbuilder-server/internal/player/handlers"
	serverHandlers "plantbuilder-server/internal/server/handlers"
	"plantbuilder-server/internal/session"
	sessionHandlers "plantbuilder-server/internal/session/handlers"
	"plantbuilder-server/internal/shared/database"
)

type Routes struct {
	db                 *database.DB
	catalog            *catalog.Catalog
	playerService      *player.Service
	sessionService     *session.Service
	leaderboardService *leaderboard.Service
	logger             *slog.Logger
}

func NewRoutes(db *database.DB, cat *catalog.Catalog, playerService *player.Service, sessionService *session.Service, leaderboardService *leaderboard.Service, logger *slog.Logger) *Routes {
	return &Routes{
		db:                 db,
		catalog:            cat,
		playerService:      playerService,
		sessionService:     sessionService,
		leaderboardService: leaderboardService,
		logger:             logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db)
	catalogHandler := catalogHandlers.NewCatalogHandler(r.catalog)
	playersHandler := playerHandlers.NewPlayersHandler(r.playerService)
	sessionHandler := sessionHandlers.NewSessionHandler(r.sessionService)
	leaderboardHandler := leaderboardHandlers.NewLeaderboardHandler(r.leaderboardService)

	mux.Handle("/api/server/health", healthHandler)

	mux.HandleFunc("/api/catalog", catalogHandler.HandleSectors)
	mux.HandleFunc("/api/catalog/{sector}", catalogHandler.HandleSector)

	mux.HandleFunc("/api/players/register", playersHandler.HandleRegister)
	mux.HandleFunc("/api/players/{phone}/score", playersHandler.HandleScore)

	mux.HandleFunc("/api/session/start", sessionHandler.HandleStart)
	mux.HandleFunc("/api/session/submit", sessionHandler.HandleSubmit)

	mux.Handle("/api/leaderboard", leaderboardHandler)

	logger.Info("Routes configured successfully",
		"endpoints", []string{
			"/api/server/health",
			"/api/catalog",
			"/api/catalog/{sector}",
			"/api/players/register",
			"/api/players/{phone}/score",
			"/api/session/start",
			"/api/session/submit",
			"/api/leaderboard",
		},
	)

	return mux
}
