package core

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *Module) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	module := NewModule(testutil.NewStore(t), "")
	r := gin.New()
	module.SetupRoutes(r)
	return r, module
}

func do(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func addPlayer(t *testing.T, r *gin.Engine, first, last string) models.PlayerAddedResponse {
	t.Helper()
	w := do(r, http.MethodPost, "/v1/player", `{"first_name":"`+first+`","last_name":"`+last+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.PlayerAddedResponse](t, w)
}

func TestWelcomeAndHealth(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, http.MethodGet, "/v1/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())

	w = do(r, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAddPlayer(t *testing.T) {
	r, _ := setupRouter(t)

	resp := addPlayer(t, r, "Ben", "Sunny")
	assert.True(t, resp.PlayerAdded)
	assert.Equal(t, uint(1), resp.ID)

	w := do(r, http.MethodGet, "/v1/players/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	player := decode[models.Player](t, w)
	assert.Equal(t, "Ben Sunny", player.FullName())
	assert.Equal(t, "ben-sunny", player.Slug)
}

func TestAddPlayerBadRequest(t *testing.T) {
	r, _ := setupRouter(t)

	for _, body := range []string{`{"first_name":"Ben"}`, `not json`, `{"first_name":"","last_name":"Sunny"}`} {
		w := do(r, http.MethodPost, "/v1/player", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "error")
	}
}

func TestDeletePlayer(t *testing.T) {
	r, _ := setupRouter(t)
	addPlayer(t, r, "Rick", "Sarge")

	w := do(r, http.MethodDelete, "/v1/player", `{"first_name":"Rick","last_name":"Sarge"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.PlayerDeletedResponse](t, w)
	assert.True(t, resp.PlayerDeleted)
	assert.Equal(t, int64(1), resp.Removed)

	w = do(r, http.MethodDelete, "/v1/player", `{"first_name":"Rick","last_name":"Sarge"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	addPlayer(t, r, "Jack", "New")
	w = do(r, http.MethodGet, "/v1/delete?first_name=Jack&last_name=New", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decode[models.PlayerDeletedResponse](t, w).Removed)

	w = do(r, http.MethodGet, "/v1/delete?first_name=Nobody&last_name=Here", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLookupPlayer(t *testing.T) {
	r, _ := setupRouter(t)
	addPlayer(t, r, "Jack", "New")
	addPlayer(t, r, "Rick", "Sarge")
	addPlayer(t, r, "Rick", "Sarge")

	w := do(r, http.MethodGet, "/v1/player?first_name=Jack", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New", decode[models.Player](t, w).LastName)

	w = do(r, http.MethodGet, "/v1/player?first_name=Rick&last_name=Sarge", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodGet, "/v1/player?first_name=Alice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/v1/player", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFixturesAndResults(t *testing.T) {
	r, _ := setupRouter(t)
	addPlayer(t, r, "Ben", "Sunny")
	addPlayer(t, r, "Jack", "New")

	w := do(r, http.MethodPost, "/v1/fixture", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Match_id")
	assert.Equal(t, 2, strings.Count(w.Body.String(), "NULL"))

	w = do(r, http.MethodPost, "/v1/result", `{"match_id":1,"home_goals":5,"away_goals":7}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[models.ResultAddedResponse](t, w)
	assert.True(t, result.ResultAdded)
	assert.Equal(t, uint(2), result.WinnerID)
	assert.Equal(t, "Jack New", result.Winner)

	w = do(r, http.MethodPost, "/v1/result", `{"match_id":1,"home_goals":1,"away_goals":0}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/v1/result", `{"match_id":99,"home_goals":1,"away_goals":0}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/v1/fixture", "", "Accept", "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	matches := decode[[]models.Match](t, w)
	require.Len(t, matches, 2)
	assert.Equal(t, models.MatchStatusPlayed, matches[0].Status)
	assert.Equal(t, models.MatchStatusScheduled, matches[1].Status)

	w = do(r, http.MethodGet, "/v1/league", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Player_id")
	assert.Less(t, strings.Index(body, "Jack New"), strings.Index(body, "Ben Sunny"))

	w = do(r, http.MethodGet, "/v1/league", "", "Accept", "text/html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<pre>")

	w = do(r, http.MethodGet, "/v1/matches?status=played", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Match](t, w), 1)

	w = do(r, http.MethodGet, "/v1/matches/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), decode[models.Match](t, w).ID)

	w = do(r, http.MethodGet, "/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.Stats](t, w)
	assert.Equal(t, int64(12), stats.TotalGoals)

	w = do(r, http.MethodGet, "/v1/audit", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.AuditReport](t, w).Consistent())
}

func TestRecordResultValidation(t *testing.T) {
	r, _ := setupRouter(t)
	addPlayer(t, r, "Ben", "Sunny")
	addPlayer(t, r, "Jack", "New")
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/v1/fixture", "").Code)

	for _, body := range []string{
		`{"match_id":1,"home_goals":11,"away_goals":0}`,
		`{"match_id":1,"home_goals":-1,"away_goals":0}`,
		`{"match_id":1,"home_goals":2.5,"away_goals":0}`,
		`{"match_id":1,"home_goals":"two","away_goals":0}`,
		`{"match_id":1,"away_goals":0}`,
		`{"home_goals":1,"away_goals":0}`,
	} {
		w := do(r, http.MethodPost, "/v1/result", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	// Zero goals are a valid score.
	w := do(r, http.MethodPost, "/v1/result", `{"match_id":1,"home_goals":0,"away_goals":0}`)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRecordResultForRemovedPlayer(t *testing.T) {
	r, _ := setupRouter(t)
	addPlayer(t, r, "Ben", "Sunny")
	addPlayer(t, r, "Jack", "New")
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/v1/fixture", "").Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/v1/player", `{"first_name":"Ben","last_name":"Sunny"}`).Code)

	w := do(r, http.MethodPost, "/v1/result", `{"match_id":1,"home_goals":3,"away_goals":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Player not found")

	w = do(r, http.MethodGet, "/v1/fixture", "")
	assert.Contains(t, w.Body.String(), "Ben Sunny")
}

func TestGetPlayerErrors(t *testing.T) {
	r, _ := setupRouter(t)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/v1/players/abc", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/v1/players/7", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/v1/matches?status=lost", "").Code)

	w := do(r, http.MethodGet, "/v1/players", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestRunAuditNow(t *testing.T) {
	_, module := setupRouter(t)

	module.RunAuditNow()
}
