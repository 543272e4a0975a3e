package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arca/internal/services"
	"arca/pkg/i18n"
	"arca/pkg/logger"
	mem "arca/pkg/memcache"
	"arca/pkg/metrics"
	"arca/pkg/middleware"
	"arca/pkg/utils"
)

type memorySlots struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memorySlots) GetSlot(_ context.Context, owner string, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[owner+"/"+key]
	return v, ok, nil
}

func (m *memorySlots) PutSlot(_ context.Context, owner string, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[owner+"/"+key] = value
	return nil
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

type itineraryBody struct {
	Total string `json:"total"`
	Days  []struct {
		ID          string `json:"id"`
		Label       string `json:"label"`
		DisplayDate string `json:"display_date"`
		Activities  []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"activities"`
	} `json:"days"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	revoked := mem.NewRevokedTokens()
	bundle := i18n.NewBundle("en")

	store := services.NewItineraryStore(&memorySlots{values: map[string]string{}}, log, m)
	itineraryCtl := NewItineraryController(services.NewItineraryService(store, log, m), bundle)
	sessionCtl := NewSessionController(services.NewSessionService(tokens, revoked, "en", log))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(), middleware.SessionMiddleware(tokens, revoked))
	r.POST("/session/login", sessionCtl.Login)
	r.POST("/session/logout", middleware.RequireSession(), sessionCtl.Logout)
	r.GET("/session/me", middleware.RequireSession(), sessionCtl.Me)
	r.GET("/itinerary", itineraryCtl.GetItinerary)
	r.GET("/itinerary/summary", itineraryCtl.GetSummary)
	r.PUT("/itinerary/details", itineraryCtl.UpdateTripDetails)
	r.POST("/itinerary/move", itineraryCtl.MoveActivity)
	r.POST("/itinerary/days", itineraryCtl.AddDay)
	r.POST("/itinerary/days/:dayId/activities", itineraryCtl.AddActivity)
	r.PUT("/itinerary/activities/:activityId", itineraryCtl.UpdateActivity)
	r.POST("/itinerary/reset", itineraryCtl.ResetItinerary)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func decodeItinerary(t *testing.T, env envelope) itineraryBody {
	t.Helper()
	var body itineraryBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	return body
}

func TestItineraryController_GetSeed(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/itinerary", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, env.TraceID)
	body := decodeItinerary(t, env)
	assert.Equal(t, "$195", body.Total)
	require.Len(t, body.Days, 2)
	assert.Equal(t, "Day 1", body.Days[0].Label)
	assert.Equal(t, "act-1", body.Days[0].Activities[0].ID)
}

func TestItineraryController_AcceptLanguage(t *testing.T) {
	r := newTestRouter(t)

	_, env := do(t, r, http.MethodGet, "/itinerary", "", map[string]string{"Accept-Language": "vi-VN,vi;q=0.9"})

	body := decodeItinerary(t, env)
	assert.Equal(t, "Ngày 1", body.Days[0].Label)
}

func TestItineraryController_Move(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/itinerary/move",
		`{"activity_id":"act-4","target_day_id":"day-1","target_index":0}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeItinerary(t, env)
	assert.Equal(t, "act-4", body.Days[0].Activities[0].ID)
	assert.Len(t, body.Days[0].Activities, 3)
	assert.Len(t, body.Days[1].Activities, 1)

	_, env = do(t, r, http.MethodGet, "/itinerary", "", nil)
	assert.Equal(t, "act-4", decodeItinerary(t, env).Days[0].Activities[0].ID)
}

func TestItineraryController_MoveErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing index", `{"activity_id":"act-1","target_day_id":"day-2"}`, http.StatusBadRequest},
		{"not json", `{`, http.StatusBadRequest},
		{"unknown activity", `{"activity_id":"act-9","target_day_id":"day-2","target_index":0}`, http.StatusNotFound},
		{"unknown day", `{"activity_id":"act-1","target_day_id":"day-9","target_index":0}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)

			w, env := do(t, r, http.MethodPost, "/itinerary/move", tt.body, nil)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "error", env.Status)
		})
	}
}

func TestItineraryController_AddDayAndActivity(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/itinerary/days", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeItinerary(t, env)
	require.Len(t, body.Days, 3)
	assert.Equal(t, "Tuesday, June 17, 2025", body.Days[2].DisplayDate)

	w, env = do(t, r, http.MethodPost, "/itinerary/days/"+body.Days[2].ID+"/activities", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeItinerary(t, env)
	require.Len(t, body.Days[2].Activities, 1)
	assert.Equal(t, "New Activity", body.Days[2].Activities[0].Title)

	w, _ = do(t, r, http.MethodPost, "/itinerary/days/day-404/activities", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItineraryController_UpdateActivity(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPut, "/itinerary/activities/act-2",
		`{"title":"Eiffel Tower summit","cost":"$120","type":"attraction"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeItinerary(t, env)
	assert.Equal(t, "Eiffel Tower summit", body.Days[0].Activities[1].Title)
	assert.Equal(t, "$230", body.Total)

	w, _ = do(t, r, http.MethodPut, "/itinerary/activities/act-2", `{"title":"Spa","type":"spa"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPut, "/itinerary/activities/act-99", `{"title":"x","type":"hotel"}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItineraryController_Reset(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, http.MethodPost, "/itinerary/days", "", nil)

	w, env := do(t, r, http.MethodPost, "/itinerary/reset", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeItinerary(t, env).Days, 2)
}

func TestItineraryController_SessionOwnsItsOwnPlan(t *testing.T) {
	r := newTestRouter(t)

	_, env := do(t, r, http.MethodPost, "/session/login", `{"email":"alex@example.com","language":"vi"}`, nil)
	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	auth := map[string]string{"Authorization": "Bearer " + session.Token}

	w, _ := do(t, r, http.MethodPost, "/itinerary/days", "", auth)
	require.Equal(t, http.StatusOK, w.Code)

	_, env = do(t, r, http.MethodGet, "/itinerary", "", auth)
	assert.Len(t, decodeItinerary(t, env).Days, 3)
	_, env = do(t, r, http.MethodGet, "/itinerary", "", nil)
	assert.Len(t, decodeItinerary(t, env).Days, 2)

	_, env = do(t, r, http.MethodGet, "/itinerary/summary", "", auth)
	var summary struct {
		Traveler      string `json:"traveler"`
		DurationLabel string `json:"duration_label"`
		Language      string `json:"language"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "alex", summary.Traveler)
	assert.Equal(t, "3 ngày", summary.DurationLabel)
	assert.Equal(t, "vi", summary.Language)
}

func TestItineraryController_UpdateTripDetails(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/itinerary/summary", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		Title          string `json:"title"`
		Destination    string `json:"destination"`
		Travelers      int    `json:"travelers"`
		TravelersLabel string `json:"travelers_label"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "Paris Adventure", summary.Title)
	assert.Equal(t, "2 people", summary.TravelersLabel)

	w, env = do(t, r, http.MethodPut, "/itinerary/details",
		`{"title":"Riviera escape","destination":"Nice, France","travelers":4}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "Riviera escape", summary.Title)
	assert.Equal(t, "Nice, France", summary.Destination)
	assert.Equal(t, 4, summary.Travelers)

	_, env = do(t, r, http.MethodGet, "/itinerary/summary", "", map[string]string{"Accept-Language": "vi"})
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "Riviera escape", summary.Title)
	assert.Equal(t, "4 người", summary.TravelersLabel)
}

func TestItineraryController_UpdateTripDetailsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no travelers", `{"title":"Trip","travelers":0}`},
		{"missing title", `{"destination":"Rome","travelers":2}`},
		{"blank title", `{"title":"   ","travelers":2}`},
		{"not json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)

			w, env := do(t, r, http.MethodPut, "/itinerary/details", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", env.Status)
		})
	}
}
