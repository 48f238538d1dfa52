package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"foosball-league/config"
	_ "foosball-league/docs" // Swagger docs
	"foosball-league/packages/core"
	"foosball-league/packages/core/middleware"
	"foosball-league/packages/core/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Foosball League API
// @version         1.0
// @description     Round-robin foosball league: players, fixtures, results and standings

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	config.SetupLogging(cfg)
	gin.SetMode(cfg.GinMode)

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Database unavailable")
	}
	leagueStore := store.New(db)
	defer leagueStore.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := prepareSchema(ctx, leagueStore, cfg.ResetDatabase); err != nil {
		log.Fatal().Err(err).Msg("Schema setup failed")
	}

	r := newRouter(cfg, leagueStore)

	coreModule := core.NewModule(leagueStore, cfg.AuditSchedule)
	coreModule.SetupRoutes(r)
	if err := coreModule.StartScheduler(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}
	defer coreModule.StopScheduler()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

// prepareSchema resets the league tables when asked to, otherwise brings the
// schema up to date.
func prepareSchema(ctx context.Context, s *store.Store, reset bool) error {
	if reset {
		return s.Initialize(ctx, true)
	}
	err := s.Initialize(ctx, false)
	if errors.Is(err, store.ErrSchemaExists) {
		return nil
	}
	return err
}

func newRouter(cfg *config.Config, s *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AddAllowHeaders(middleware.RequestIDHeader)
	corsConfig.AddExposeHeaders(middleware.RequestIDHeader)
	r.Use(cors.New(corsConfig))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", healthHandler(s))

	return r
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and the database answers
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func healthHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := s.DB().DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("Database ping failed")
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Message:  "Server is running",
				Database: "unreachable",
			})
			return
		}

		c.JSON(http.StatusOK, HealthResponse{
			Message:  "Server is running",
			Database: "connected",
		})
	}
}
