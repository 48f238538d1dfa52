package core

import (
	"net/http"

	"foosball-league/packages/core/cron"
	"foosball-league/packages/core/handlers"
	"foosball-league/packages/core/services"
	"foosball-league/packages/core/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const welcomeMessage = "Welcome to the foosball league"

type Module struct {
	PlayerHandler *handlers.PlayerHandler
	PlayerService *services.PlayerService
	MatchHandler  *handlers.MatchHandler
	MatchService  *services.MatchService
	LeagueHandler *handlers.LeagueHandler
	LeagueService *services.LeagueService
	StatsHandler  *handlers.StatsHandler
	StatsService  *services.StatsService
	AuditService  *services.AuditService
	Scheduler     *cron.Scheduler
	store         *store.Store
}

// NewModule wires the league services and handlers around one store. An empty
// auditSchedule falls back to the hourly default.
func NewModule(s *store.Store, auditSchedule string) *Module {
	playerService := services.NewPlayerService(s)
	matchService := services.NewMatchService(s)
	leagueService := services.NewLeagueService(s)
	statsService := services.NewStatsService(s)
	auditService := services.NewAuditService(s)

	return &Module{
		PlayerHandler: handlers.NewPlayerHandler(playerService),
		PlayerService: playerService,
		MatchHandler:  handlers.NewMatchHandler(matchService, leagueService),
		MatchService:  matchService,
		LeagueHandler: handlers.NewLeagueHandler(leagueService, auditService),
		LeagueService: leagueService,
		StatsHandler:  handlers.NewStatsHandler(statsService),
		StatsService:  statsService,
		AuditService:  auditService,
		Scheduler:     cron.NewScheduler(auditService, auditSchedule),
		store:         s,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(handlers.Templates())

	v1 := r.Group("/v1")
	{
		v1.GET("/", welcome)
		v1.GET("/health", health)

		v1.POST("/player", m.PlayerHandler.AddPlayer)
		v1.GET("/player", m.PlayerHandler.LookupPlayer)
		v1.DELETE("/player", m.PlayerHandler.DeletePlayer)
		v1.GET("/delete", m.PlayerHandler.DeletePlayer)

		v1.GET("/players", m.PlayerHandler.GetAllPlayers)
		v1.GET("/players/:id", m.PlayerHandler.GetPlayer)

		v1.POST("/fixture", m.MatchHandler.GenerateFixtures)
		v1.GET("/fixture", m.MatchHandler.GetFixtures)
		v1.POST("/result", m.MatchHandler.RecordResult)

		v1.GET("/matches", m.MatchHandler.GetMatches)
		v1.GET("/matches/:id", m.MatchHandler.GetMatch)

		v1.GET("/league", m.LeagueHandler.GetStandings)
		v1.GET("/audit", m.LeagueHandler.GetAudit)
		v1.GET("/stats", m.StatsHandler.GetStats)
	}
}

// StartScheduler starts the cron scheduler for the league audit
func (m *Module) StartScheduler() error {
	log.Info().Msg("Starting core module scheduler")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Info().Msg("Stopping core module scheduler")
	m.Scheduler.Stop()
}

// RunAuditNow triggers the audit job immediately
func (m *Module) RunAuditNow() {
	m.Scheduler.RunNow()
}

// @Summary Welcome
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router /v1/ [get]
func welcome(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}

// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /v1/health [get]
func health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
