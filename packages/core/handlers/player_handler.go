package handlers

import (
	"net/http"
	"strconv"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// AddPlayer registers a new player
// @Summary Register a player
// @Description Add a player to the league with every counter at zero. Names do not have to be unique.
// @Tags players
// @Accept json
// @Produce json
// @Param player body models.PlayerRequest true "Player name"
// @Success 201 {object} models.PlayerAddedResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/player [post]
func (h *PlayerHandler) AddPlayer(c *gin.Context) {
	var req models.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: first_name and last_name are required")
		return
	}

	player, err := h.playerService.RegisterPlayer(c.Request.Context(), req.FirstName, req.LastName)
	if err != nil {
		respondError(c, err, "Failed to add player")
		return
	}

	c.JSON(http.StatusCreated, models.PlayerAddedResponse{
		PlayerAdded: true,
		ID:          player.ID,
		FirstName:   player.FirstName,
		LastName:    player.LastName,
	})
}

// DeletePlayer removes players by name
// @Summary Remove a player
// @Description Remove every player with exactly this first and last name. Their matches are kept.
// @Tags players
// @Accept json
// @Produce json
// @Param player body models.PlayerRequest true "Player name"
// @Success 200 {object} models.PlayerDeletedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/player [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	var req models.PlayerRequest
	// GET /v1/delete passes the name as query parameters.
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "Invalid request body: first_name and last_name are required")
		return
	}

	removed, err := h.playerService.RemovePlayer(c.Request.Context(), req.FirstName, req.LastName)
	if err != nil {
		respondError(c, err, "Failed to delete player")
		return
	}

	c.JSON(http.StatusOK, models.PlayerDeletedResponse{
		PlayerDeleted: true,
		Removed:       removed,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
	})
}

// LookupPlayer finds one player by name
// @Summary Look up a player by name
// @Description Find the single player with the given first and/or last name. Fails with 409 when several players share it.
// @Tags players
// @Produce json
// @Param first_name query string false "First name"
// @Param last_name query string false "Last name"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/player [get]
func (h *PlayerHandler) LookupPlayer(c *gin.Context) {
	firstName := c.Query("first_name")
	lastName := c.Query("last_name")
	if firstName == "" && lastName == "" {
		respondBadRequest(c, "first_name or last_name is required")
		return
	}

	player, err := h.playerService.FindPlayerByName(c.Request.Context(), firstName, lastName)
	if err != nil {
		respondError(c, err, "Failed to look up player")
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetPlayer retrieves a player by ID
// @Summary Get player by ID
// @Description Get player information and league counters by player ID
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid player ID")
		return
	}

	player, err := h.playerService.GetPlayerByID(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetAllPlayers lists the roster
// @Summary Get all players
// @Description Get every registered player in registration order
// @Tags players
// @Produce json
// @Success 200 {array} models.Player
// @Failure 500 {object} map[string]string
// @Router /v1/players [get]
func (h *PlayerHandler) GetAllPlayers(c *gin.Context) {
	players, err := h.playerService.ListPlayers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve players")
		return
	}

	c.JSON(http.StatusOK, players)
}
