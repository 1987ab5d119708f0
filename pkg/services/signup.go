package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fpl-onboarding/pkg/models"
	"fpl-onboarding/pkg/utils"
)

var ErrSignupRejected = errors.New("signup rejected")

// SignupRejectedError is returned by an Authenticator that refuses the credentials
type SignupRejectedError struct {
	Reason string
}

func (e *SignupRejectedError) Error() string {
	return fmt.Sprintf("signup rejected: %s", e.Reason)
}

func (e *SignupRejectedError) Is(target error) bool {
	return target == ErrSignupRejected
}

// Authenticator creates accounts for submitted credentials.
// A nil error means the account exists and onboarding may continue.
type Authenticator interface {
	Register(ctx context.Context, creds models.SignupCredentials) error
}

// PrototypeAuthenticator accepts every credential pair without contacting any
// account backend. It stands in until a real authentication service exists.
type PrototypeAuthenticator struct{}

func (PrototypeAuthenticator) Register(ctx context.Context, creds models.SignupCredentials) error {
	log.Printf("Signup for %s accepted without verification (prototype authenticator)", utils.HashIdentifier(creds.Email))
	return nil
}

// SignupService completes the signup step of an onboarding flow
type SignupService interface {
	Signup(ctx context.Context, flow *Flow, creds models.SignupCredentials) error
}

type signupServiceImpl struct {
	authenticator Authenticator
}

// NewSignupService creates a new signup service
func NewSignupService(authenticator Authenticator) SignupService {
	return &signupServiceImpl{
		authenticator: authenticator,
	}
}

// Signup registers the credentials and, on success, advances the flow
func (s *signupServiceImpl) Signup(ctx context.Context, flow *Flow, creds models.SignupCredentials) error {
	if err := s.authenticator.Register(ctx, creds); err != nil {
		log.Printf("Signup failed for %s: %v", utils.HashIdentifier(creds.Email), err)
		return err
	}

	flow.Advance()
	return nil
}
