package fpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpl-onboarding/pkg/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/entry/1234/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 1234,
			"name": "pepBall",
			"player_first_name": "Pep",
			"player_last_name": "Guardiola",
			"summary_overall_points": 1789,
			"summary_overall_rank": 42000,
			"current_event": 27
		}`))
	})
	mux.HandleFunc("/api/entry/500/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/entry/501/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupTeam_Found(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/api/", time.Second)

	team, err := client.LookupTeam(context.Background(), " 1234 ")
	require.NoError(t, err)

	assert.Equal(t, 1234, team.ID)
	assert.Equal(t, "pepBall", team.Name)
	assert.Equal(t, "Pep Guardiola", team.ManagerName)
	assert.Equal(t, 1789, team.OverallPoints)
	assert.Equal(t, 42000, team.OverallRank)
	assert.Equal(t, 27, team.CurrentGameweek)
}

func TestLookupTeam_NotFound(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/api", time.Second)

	tests := []struct {
		name  string
		input string
	}{
		{"team name instead of id", "pepBall"},
		{"negative id", "-3"},
		{"zero id", "0"},
		{"unknown entry", "999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.LookupTeam(context.Background(), tt.input)
			assert.ErrorIs(t, err, services.ErrTeamNotFound)
		})
	}
}

func TestGetEntry_UpstreamErrors(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/api", time.Second)

	_, err := client.GetEntry(context.Background(), 500)
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrTeamNotFound)
	assert.Contains(t, err.Error(), "500")

	_, err = client.GetEntry(context.Background(), 501)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing response")
}

func TestGetEntry_ContextCanceled(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/api", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetEntry(ctx, 1234)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("", time.Second).(*clientImpl)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
