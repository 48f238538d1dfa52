package handlers

import (
	"net/http"
	"strconv"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/services"
	"foosball-league/packages/core/utils"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService  *services.MatchService
	leagueService *services.LeagueService
}

func NewMatchHandler(matchService *services.MatchService, leagueService *services.LeagueService) *MatchHandler {
	return &MatchHandler{
		matchService:  matchService,
		leagueService: leagueService,
	}
}

// GenerateFixtures schedules the season
// @Summary Generate fixtures
// @Description Schedule one match for every ordered pair of players (home and away legs) and return the fixtures table. Calling it again schedules the whole set again.
// @Tags fixtures
// @Produce plain
// @Produce html
// @Produce json
// @Success 201 {array} models.Match
// @Failure 500 {object} map[string]string
// @Router /v1/fixture [post]
func (h *MatchHandler) GenerateFixtures(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.matchService.GenerateFixtures(ctx); err != nil {
		respondError(c, err, "Failed to generate fixtures")
		return
	}

	matches, err := h.leagueService.Fixtures(ctx)
	if err != nil {
		respondError(c, err, "Failed to retrieve fixtures")
		return
	}

	renderTable(c, http.StatusCreated, "Fixtures", utils.RenderFixtures(matches), matches)
}

// GetFixtures shows every match
// @Summary Show fixtures
// @Description Fixtures table: match id, home player, away player, goals and winner (NULL until played)
// @Tags fixtures
// @Produce plain
// @Produce html
// @Produce json
// @Success 200 {array} models.Match
// @Failure 500 {object} map[string]string
// @Router /v1/fixture [get]
func (h *MatchHandler) GetFixtures(c *gin.Context) {
	matches, err := h.leagueService.Fixtures(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve fixtures")
		return
	}

	renderTable(c, http.StatusOK, "Fixtures", utils.RenderFixtures(matches), matches)
}

// RecordResult stores a match score
// @Summary Record a match result
// @Description Record the score of a scheduled match. The home player wins only with more goals; a tie goes to the away player. Goals must be between 0 and 10.
// @Tags results
// @Accept json
// @Produce json
// @Param result body models.RecordResultRequest true "Match result"
// @Success 200 {object} models.ResultAddedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/result [post]
func (h *MatchHandler) RecordResult(c *gin.Context) {
	var req models.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: match_id is required and goals must be whole numbers between 0 and 10")
		return
	}

	match, err := h.matchService.RecordResult(c.Request.Context(), req.MatchID, *req.HomeGoals, *req.AwayGoals)
	if err != nil {
		respondError(c, err, "Failed to record result")
		return
	}

	var winnerID uint
	if match.WinnerID != nil {
		winnerID = *match.WinnerID
	}

	c.JSON(http.StatusOK, models.ResultAddedResponse{
		ResultAdded: true,
		MatchID:     match.ID,
		WinnerID:    winnerID,
		Winner:      match.WinnerName(),
	})
}

// GetMatch retrieves a match by ID
// @Summary Get match by ID
// @Tags fixtures
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid match ID")
		return
	}

	match, err := h.matchService.GetMatchByID(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, match)
}

// GetMatches lists matches
// @Summary Get matches
// @Description Get every match in id order, optionally only scheduled or played ones
// @Tags fixtures
// @Produce json
// @Param status query string false "Filter by match status" Enums(scheduled,played)
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != models.MatchStatusScheduled && status != models.MatchStatusPlayed {
		respondBadRequest(c, "Invalid status. Must be one of: scheduled, played")
		return
	}

	matches, err := h.matchService.ListMatches(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "Failed to retrieve matches")
		return
	}

	c.JSON(http.StatusOK, matches)
}
