package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"fpl-onboarding/pkg/models"
)

var (
	ErrEmptyTeamName = errors.New("team name is empty")
	ErrTeamNotFound  = errors.New("team not found")
)

// TeamLookup resolves a submitted team name to an FPL entry.
// Implementations return ErrTeamNotFound when nothing matches.
type TeamLookup interface {
	LookupTeam(ctx context.Context, name string) (models.Team, error)
}

// TeamService handles submissions of the team connector form
type TeamService interface {
	ConnectTeam(ctx context.Context, flow *Flow, teamName string) error
}

type teamServiceImpl struct {
	lookup TeamLookup
	diag   *log.Logger
}

// NewTeamService creates a team service. lookup may be nil, in which case no
// lookup is attempted. Submitted names are written to diag.
func NewTeamService(lookup TeamLookup, diag *log.Logger) TeamService {
	if diag == nil {
		diag = log.Default()
	}
	return &teamServiceImpl{
		lookup: lookup,
		diag:   diag,
	}
}

// ConnectTeam checks that a name was entered, logs it and resolves it when a
// lookup is configured. A blank submission leaves the held team name as it
// was; any other submission is kept as typed. A previously resolved team is
// dropped on every submission.
func (s *teamServiceImpl) ConnectTeam(ctx context.Context, flow *Flow, teamName string) error {
	flow.setTeam(nil)

	name := strings.TrimSpace(teamName)
	if name == "" {
		return ErrEmptyTeamName
	}

	flow.SetTeamName(teamName)

	s.diag.Printf("Team name submitted: %s", teamName)

	if s.lookup == nil {
		return nil
	}

	team, err := s.lookup.LookupTeam(ctx, name)
	if err != nil {
		log.Printf("Team lookup failed for %q: %v", name, err)
		return err
	}

	log.Printf("Resolved team %q to FPL entry %d", name, team.ID)
	flow.setTeam(&team)
	return nil
}
