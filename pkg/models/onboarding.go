package models

// OnboardingStep selects which onboarding form is currently displayed
type OnboardingStep int

const (
	StepSignup OnboardingStep = iota
	StepFplConnect
)

func (s OnboardingStep) String() string {
	switch s {
	case StepSignup:
		return "signup"
	case StepFplConnect:
		return "fpl"
	default:
		return "unknown"
	}
}

// SignupCredentials represents the data posted by the signup form.
// It is never persisted.
type SignupCredentials struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// TeamForm represents the data posted by the team connector form
type TeamForm struct {
	TeamName string `form:"teamName"`
}

// Team is an FPL entry resolved by a team lookup
type Team struct {
	ID              int
	Name            string
	ManagerName     string
	OverallPoints   int
	OverallRank     int
	CurrentGameweek int
}
