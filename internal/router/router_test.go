package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/greenxp-api/internal/config"
	"github.com/yukikurage/greenxp-api/internal/constants"
	"github.com/yukikurage/greenxp-api/internal/database"
	"github.com/yukikurage/greenxp-api/internal/dto"
	"github.com/yukikurage/greenxp-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{CORSAllowOrigins: []string{"http://localhost:3000"}}
	return &apiClient{t: t, router: New(db, cfg, zap.NewNop()), db: db}
}

func (a *apiClient) do(method, path string, body interface{}, userID uint64) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(constants.HeaderUserID, fmt.Sprint(userID))
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestRouter_Banner(t *testing.T) {
	api := newAPIClient(t)

	w := api.do(http.MethodGet, "/", nil, 0)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GreenXP API is running!", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(constants.HeaderRequestID))
}

func TestRouter_MissionLifecycle(t *testing.T) {
	api := newAPIClient(t)

	w := api.do(http.MethodPost, "/users", map[string]string{"username": "root", "email": "root@example.com", "role": "admin"}, 0)
	require.Equal(t, http.StatusCreated, w.Code)
	adminID := decode[map[string]uint64](t, w)["id"]

	w = api.do(http.MethodPost, "/users", map[string]string{"username": "mika", "email": "mika@example.com"}, 0)
	require.Equal(t, http.StatusCreated, w.Code)
	playerID := decode[map[string]uint64](t, w)["id"]

	// only admins manage missions
	w = api.do(http.MethodPost, "/missions", map[string]interface{}{"title": "Plant a tree"}, 0)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = api.do(http.MethodPost, "/missions", map[string]interface{}{"title": "Plant a tree"}, playerID)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = api.do(http.MethodPost, "/missions", map[string]interface{}{"title": "Plant a tree"}, 4242)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodPost, "/missions", map[string]interface{}{"title": "Plant a tree", "difficulty": "medium", "xp": 999}, adminID)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[map[string]interface{}](t, w)
	assert.Equal(t, `Mission "Plant a tree" added.`, created["message"])
	missionID := uint64(created["id"].(float64))

	w = api.do(http.MethodGet, "/missions", nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	missions := decode[[]dto.MissionDTO](t, w)
	require.Len(t, missions, 1)
	assert.Equal(t, 25, missions[0].XP)

	accept := map[string]uint64{"user_id": playerID, "mission_id": missionID}
	w = api.do(http.MethodPost, "/user_missions", accept, 0)
	require.Equal(t, http.StatusCreated, w.Code)
	userMissionID := uint64(decode[map[string]interface{}](t, w)["id"].(float64))

	w = api.do(http.MethodPost, "/user_missions", accept, 0)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodGet, fmt.Sprintf("/missions/accepted/%d", playerID), nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	acceptedRows := decode[[]dto.AcceptedMissionDTO](t, w)
	require.Len(t, acceptedRows, 1)
	assert.Equal(t, userMissionID, acceptedRows[0].UserMissionID)

	w = api.do(http.MethodPut, fmt.Sprintf("/user_missions/%d", userMissionID), map[string]bool{"completed": true}, 0)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, fmt.Sprintf("/users/%d/summary", playerID), nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[dto.SummaryDTO](t, w)
	assert.Equal(t, dto.SummaryDTO{TotalXP: 25, Counts: dto.SummaryCounts{Completed: 1}}, summary)

	w = api.do(http.MethodDelete, fmt.Sprintf("/missions/%d", missionID), nil, adminID)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/missions", nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]dto.MissionDTO](t, w))

	// the acceptance record is not cascaded
	var orphans int64
	require.NoError(t, api.db.Model(&models.UserMission{}).Where("id = ?", userMissionID).Count(&orphans).Error)
	assert.Equal(t, int64(1), orphans)

	w = api.do(http.MethodDelete, fmt.Sprintf("/missions/%d", missionID), nil, adminID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ListsAreJSONArrays(t *testing.T) {
	api := newAPIClient(t)

	for _, path := range []string{"/missions", "/users", "/missions/public/1", "/missions/accepted/1", "/missions/completed/1"} {
		w := api.do(http.MethodGet, path, nil, 0)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, "[]", w.Body.String(), path)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	api := newAPIClient(t)

	req := httptest.NewRequest(http.MethodOptions, "/missions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", constants.HeaderUserID)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
