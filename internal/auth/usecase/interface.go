package usecase

import (
	"context"

	authdomain "bookstore-backend/internal/auth/domain"
	authdto "bookstore-backend/internal/auth/dto"
)

type AuthUsecase interface {
	Register(visitorID string, req *authdto.RegisterRequest) (*authdomain.Session, error)
	Login(visitorID string, req *authdto.LoginRequest) (*authdomain.Session, error)
	Me(visitorID string) (*authdomain.Session, error)
	Logout(visitorID string) error

	// StartGoogleLogin generates a fresh verifier/state pair, persists it for
	// the attempt and returns the authorization URL to redirect to.
	StartGoogleLogin(visitorID string) (string, error)

	// CompleteGoogleLogin runs the callback leg: validate state, exchange the
	// code with the original verifier, fetch the profile and persist the
	// session.
	CompleteGoogleLogin(ctx context.Context, visitorID, code, state string) (*authdomain.Session, error)
}
