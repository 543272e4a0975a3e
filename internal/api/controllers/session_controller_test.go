package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionController_LoginMeLogout(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/session/login", `{"email":"kim@example.com","name":"Kim"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Token string `json:"token"`
		User  struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			IsPremium bool   `json:"is_premium"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "Kim", session.User.Name)
	assert.False(t, session.User.IsPremium)
	auth := map[string]string{"Authorization": "Bearer " + session.Token}

	w, env = do(t, r, http.MethodGet, "/session/me", "", auth)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, session.User.ID, me.ID)

	w, _ = do(t, r, http.MethodPost, "/session/logout", "", auth)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodGet, "/session/me", "", auth)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, env = do(t, r, http.MethodGet, "/itinerary", "", auth)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Session has ended, sign in again", env.Message)
}

func TestSessionController_Rejects(t *testing.T) {
	r := newTestRouter(t)

	w, _ := do(t, r, http.MethodPost, "/session/login", `{"email":"not-an-email"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodGet, "/session/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodGet, "/itinerary", "", map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodGet, "/itinerary", "", map[string]string{"Authorization": "Basic abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
