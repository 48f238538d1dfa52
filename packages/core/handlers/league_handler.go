package handlers

import (
	"net/http"

	"foosball-league/packages/core/services"
	"foosball-league/packages/core/utils"

	"github.com/gin-gonic/gin"
)

type LeagueHandler struct {
	leagueService *services.LeagueService
	auditService  *services.AuditService
}

func NewLeagueHandler(leagueService *services.LeagueService, auditService *services.AuditService) *LeagueHandler {
	return &LeagueHandler{
		leagueService: leagueService,
		auditService:  auditService,
	}
}

// GetStandings shows the league table
// @Summary Show standings
// @Description League table ordered by points (highest first): id, name, played, won, goals for, goals against, points
// @Tags league
// @Produce plain
// @Produce html
// @Produce json
// @Success 200 {array} models.Player
// @Failure 500 {object} map[string]string
// @Router /v1/league [get]
func (h *LeagueHandler) GetStandings(c *gin.Context) {
	players, err := h.leagueService.Standings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve standings")
		return
	}

	renderTable(c, http.StatusOK, "League table", utils.RenderStandings(players), players)
}

// GetAudit checks stored counters
// @Summary Audit player counters
// @Description Recompute every player's counters from the played matches and list any that disagree with the stored values
// @Tags league
// @Produce json
// @Success 200 {object} models.AuditReport
// @Failure 500 {object} map[string]string
// @Router /v1/audit [get]
func (h *LeagueHandler) GetAudit(c *gin.Context) {
	report, err := h.auditService.Audit(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to audit league")
		return
	}

	c.JSON(http.StatusOK, report)
}
