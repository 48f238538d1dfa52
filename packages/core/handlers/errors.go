package handlers

import (
	"errors"
	"net/http"

	"foosball-league/packages/core/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps domain errors to a status code and writes the response.
// Anything unrecognised becomes a 500 carrying only the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, services.ErrPlayerNotFound):
		status, message = http.StatusNotFound, "Player not found"
	case errors.Is(err, services.ErrMatchNotFound):
		status, message = http.StatusNotFound, "Match not found"
	case errors.Is(err, services.ErrAmbiguousPlayer):
		status, message = http.StatusConflict, "More than one player has that name"
	case errors.Is(err, services.ErrMatchAlreadyPlayed):
		status, message = http.StatusConflict, "Match result already recorded"
	}

	if status == http.StatusInternalServerError {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg(fallback)
	}

	c.JSON(status, gin.H{
		"error": message,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": message,
	})
}
