package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"fpl-onboarding/pkg/models"
	"fpl-onboarding/pkg/services"
)

const (
	sessionCookie = "onboarding_session"

	alertEmptyTeamName   = "Please enter your team name."
	alertTeamNotFound    = "We couldn't find that FPL team."
	alertLookupFailed    = "Team lookup failed, please try again."
	alertSignupFailed    = "Signup is unavailable right now, please try again."
	alertInvalidSignup   = "Please check the form and try again."
	alertInvalidEmail    = "Please enter a valid email address."
	alertMissingEmail    = "Please fill out the email field."
	alertMissingPassword = "Please fill out the password field."
)

// Handlers contains all HTTP handlers for the onboarding pages
type Handlers struct {
	flows         *services.FlowStore
	signupService services.SignupService
	teamService   services.TeamService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(flows *services.FlowStore, signupService services.SignupService, teamService services.TeamService) *Handlers {
	return &Handlers{
		flows:         flows,
		signupService: signupService,
		teamService:   teamService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LoginPage renders the login placeholder. Logging in is owned by the
// account service, not by this application.
func (h *Handlers) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"Title": "Log in"})
}

// RegisterPage starts a new onboarding flow. Reloading the page starts over
// at the signup step and discards the flow the visitor had before.
func (h *Handlers) RegisterPage(c *gin.Context) {
	if previous, err := c.Cookie(sessionCookie); err == nil {
		h.flows.Remove(previous)
	}

	id, flow := h.flows.Start()
	h.setSession(c, id)
	h.renderFlow(c, http.StatusOK, flow, "", "")
}

// HandleSignup processes the signup form and moves the flow to the FPL step
func (h *Handlers) HandleSignup(c *gin.Context) {
	flow, ok := h.currentFlow(c)
	if !ok {
		return
	}

	if flow.Step() != models.StepSignup {
		h.renderFlow(c, http.StatusOK, flow, "", "")
		return
	}

	var creds models.SignupCredentials
	if err := c.ShouldBind(&creds); err != nil {
		h.renderFlow(c, http.StatusUnprocessableEntity, flow, bindingAlert(err), creds.Email)
		return
	}

	if err := h.signupService.Signup(c.Request.Context(), flow, creds); err != nil {
		var rejected *services.SignupRejectedError
		if errors.As(err, &rejected) {
			h.renderFlow(c, http.StatusUnprocessableEntity, flow, rejected.Reason, creds.Email)
			return
		}
		h.renderFlow(c, http.StatusBadGateway, flow, alertSignupFailed, creds.Email)
		return
	}

	h.renderFlow(c, http.StatusOK, flow, "", "")
}

// HandleTeamInput keeps the held team name in sync with the input field
func (h *Handlers) HandleTeamInput(c *gin.Context) {
	flow, ok := h.currentFlow(c)
	if !ok {
		return
	}

	if flow.Step() != models.StepFplConnect {
		c.Status(http.StatusConflict)
		return
	}

	var form models.TeamForm
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	flow.SetTeamName(form.TeamName)
	c.Status(http.StatusNoContent)
}

// HandleTeamSubmit processes the team connector form
func (h *Handlers) HandleTeamSubmit(c *gin.Context) {
	flow, ok := h.currentFlow(c)
	if !ok {
		return
	}

	if flow.Step() != models.StepFplConnect {
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	var form models.TeamForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderFlow(c, http.StatusBadRequest, flow, alertEmptyTeamName, "")
		return
	}

	err := h.teamService.ConnectTeam(c.Request.Context(), flow, form.TeamName)
	switch {
	case err == nil:
		h.renderFlow(c, http.StatusOK, flow, "", "")
	case errors.Is(err, services.ErrEmptyTeamName):
		h.renderFlow(c, http.StatusUnprocessableEntity, flow, alertEmptyTeamName, "")
	case errors.Is(err, services.ErrTeamNotFound):
		h.renderFlow(c, http.StatusUnprocessableEntity, flow, alertTeamNotFound, "")
	default:
		h.renderFlow(c, http.StatusBadGateway, flow, alertLookupFailed, "")
	}
}

// currentFlow resolves the session cookie. Requests without a live flow are
// sent back to the start of onboarding.
func (h *Handlers) currentFlow(c *gin.Context) (*services.Flow, bool) {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/register")
		return nil, false
	}

	flow, err := h.flows.Get(id)
	if err != nil {
		log.Printf("Onboarding session %s unavailable: %v", id, err)
		c.Redirect(http.StatusSeeOther, "/register")
		return nil, false
	}
	return flow, true
}

func (h *Handlers) setSession(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 0, "/register", "", c.Request.TLS != nil, true)
}

func (h *Handlers) renderFlow(c *gin.Context, status int, flow *services.Flow, alert, email string) {
	title := "Sign up"
	if flow.Step() == models.StepFplConnect {
		title = "Connect your FPL team"
	}
	c.HTML(status, "register.tmpl", gin.H{
		"Title":    title,
		"Step":     flow.Step().String(),
		"Alert":    alert,
		"Email":    email,
		"TeamName": flow.TeamName(),
		"Team":     flow.Team(),
	})
}

// bindingAlert turns a signup binding failure into the message a browser
// would show for the same required/email constraint.
func bindingAlert(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return alertInvalidSignup
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "email" {
			return alertInvalidEmail
		}
		return alertMissingEmail
	case "Password":
		return alertMissingPassword
	}
	return alertInvalidSignup
}
