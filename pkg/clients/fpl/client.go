package fpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fpl-onboarding/pkg/models"
	"fpl-onboarding/pkg/services"
)

const DefaultBaseURL = "https://fantasy.premierleague.com/api"

// Client defines the interface for interacting with the Fantasy Premier League API
type Client interface {
	services.TeamLookup
	GetEntry(ctx context.Context, entryID int) (models.Team, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new FPL client
func NewClient(baseURL string, timeout time.Duration) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// entryResponse is the subset of /entry/{id}/ the onboarding flow needs
type entryResponse struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	PlayerFirstName      string `json:"player_first_name"`
	PlayerLastName       string `json:"player_last_name"`
	SummaryOverallPoints int    `json:"summary_overall_points"`
	SummaryOverallRank   int    `json:"summary_overall_rank"`
	CurrentEvent         int    `json:"current_event"`
}

// LookupTeam resolves a team by its FPL entry ID. The public API offers no
// search by team name, so anything that is not a positive integer is a miss.
func (c *clientImpl) LookupTeam(ctx context.Context, name string) (models.Team, error) {
	entryID, err := strconv.Atoi(strings.TrimSpace(name))
	if err != nil || entryID <= 0 {
		return models.Team{}, fmt.Errorf("%q is not an FPL entry id: %w", name, services.ErrTeamNotFound)
	}
	return c.GetEntry(ctx, entryID)
}

func (c *clientImpl) GetEntry(ctx context.Context, entryID int) (models.Team, error) {
	url := fmt.Sprintf("%s/entry/%d/", c.baseURL, entryID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Team{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Team{}, fmt.Errorf("error fetching FPL entry: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Team{}, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return models.Team{}, fmt.Errorf("FPL entry %d: %w", entryID, services.ErrTeamNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Team{}, fmt.Errorf("error from FPL API (%d): %s", resp.StatusCode, string(body))
	}

	var entry entryResponse
	if err := json.Unmarshal(body, &entry); err != nil {
		return models.Team{}, fmt.Errorf("error parsing response: %w", err)
	}

	team := models.Team{
		ID:              entry.ID,
		Name:            entry.Name,
		ManagerName:     strings.TrimSpace(entry.PlayerFirstName + " " + entry.PlayerLastName),
		OverallPoints:   entry.SummaryOverallPoints,
		OverallRank:     entry.SummaryOverallRank,
		CurrentGameweek: entry.CurrentEvent,
	}
	log.Printf("Fetched FPL entry %d: %s", team.ID, team.Name)
	return team, nil
}
