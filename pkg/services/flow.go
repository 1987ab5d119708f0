package services

import (
	"sync"

	"fpl-onboarding/pkg/models"
)

// Flow owns the step indicator of a single onboarding visit and the
// team name typed into the connector form.
type Flow struct {
	mu       sync.Mutex
	step     models.OnboardingStep
	teamName string
	team     *models.Team
}

// NewFlow returns a flow positioned at the signup step
func NewFlow() *Flow {
	return &Flow{step: models.StepSignup}
}

func (f *Flow) Step() models.OnboardingStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Advance moves the flow from signup to the FPL connect step.
// There is no step after FplConnect, so further calls are no-ops.
func (f *Flow) Advance() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step == models.StepSignup {
		f.step = models.StepFplConnect
	}
}

func (f *Flow) TeamName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teamName
}

// SetTeamName mirrors the value of the team name field
func (f *Flow) SetTeamName(name string) {
	f.mu.Lock()
	f.teamName = name
	f.mu.Unlock()
}

// Team returns the entry resolved by the last successful lookup, if any
func (f *Flow) Team() *models.Team {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.team
}

func (f *Flow) setTeam(team *models.Team) {
	f.mu.Lock()
	f.team = team
	f.mu.Unlock()
}
