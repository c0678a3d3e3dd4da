package usecase

import (
	"context"
	"errors"
	"fmt"

	authdomain "bookstore-backend/internal/auth/domain"
	authdto "bookstore-backend/internal/auth/dto"
	"bookstore-backend/internal/auth/repository"
	"bookstore-backend/pkg/config"
	"bookstore-backend/pkg/pkce"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCode        = errors.New("no code in callback")
	ErrStateMismatch      = errors.New("state does not match login attempt")
	ErrNoLoginAttempt     = errors.New("no login attempt in progress")
)

// authUsecase implements AuthUsecase.
type authUsecase struct {
	userRepo    repository.UserDirectoryRepository
	sessionRepo repository.SessionRepository
	pkceRepo    repository.PKCERepository
	oauthConfig *oauth2.Config
	userinfoURL string
}

func NewAuthUsecase(userRepo repository.UserDirectoryRepository, sessionRepo repository.SessionRepository, pkceRepo repository.PKCERepository, cfg *config.Config) AuthUsecase {
	endpoint := google.Endpoint
	if cfg.GoogleAuthURL != "" || cfg.GoogleTokenURL != "" {
		endpoint = oauth2.Endpoint{
			AuthURL:  cfg.GoogleAuthURL,
			TokenURL: cfg.GoogleTokenURL,
		}
	}

	return &authUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		pkceRepo:    pkceRepo,
		userinfoURL: cfg.GoogleUserinfoURL,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     endpoint,
		},
	}
}

func (u *authUsecase) Register(visitorID string, req *authdto.RegisterRequest) (*authdomain.Session, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = req.Email
	}

	user := authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     name,
		Provider: "local",
	}
	if err := u.userRepo.Append(user); err != nil {
		return nil, err
	}

	return u.activateSession(visitorID, user)
}

func (u *authUsecase) Login(visitorID string, req *authdto.LoginRequest) (*authdomain.Session, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Provider != "local" {
		return nil, ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.activateSession(visitorID, *user)
}

func (u *authUsecase) Me(visitorID string) (*authdomain.Session, error) {
	return u.sessionRepo.Get(visitorID)
}

func (u *authUsecase) Logout(visitorID string) error {
	return u.sessionRepo.Delete(visitorID)
}

func (u *authUsecase) StartGoogleLogin(visitorID string) (string, error) {
	verifier, err := pkce.GenerateVerifier()
	if err != nil {
		return "", err
	}
	state, err := pkce.GenerateState()
	if err != nil {
		return "", err
	}

	// Overwrites any pair left over from an earlier attempt; values are never
	// reused across attempts.
	if err := u.pkceRepo.Put(visitorID, authdomain.PKCESession{Verifier: verifier, State: state}); err != nil {
		return "", err
	}

	return u.oauthConfig.AuthCodeURL(state,
		oauth2.SetAuthURLParam("code_challenge", pkce.ChallengeS256(verifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	), nil
}

// CompleteGoogleLogin is terminal on first success or first failure. Early
// rejections (missing code, unknown attempt, state mismatch) leave the stored
// pair in place; it is only consumed once the code exchange begins, and a
// fresh attempt regenerates it either way.
func (u *authUsecase) CompleteGoogleLogin(ctx context.Context, visitorID, code, state string) (*authdomain.Session, error) {
	if code == "" {
		return nil, ErrMissingCode
	}

	attempt, err := u.pkceRepo.Get(visitorID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, ErrNoLoginAttempt
	}
	if state != attempt.State {
		return nil, ErrStateMismatch
	}

	// The code is bound to this verifier; consume the pair so the callback
	// cannot be replayed.
	if err := u.pkceRepo.Delete(visitorID); err != nil {
		return nil, err
	}

	token, err := u.oauthConfig.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", attempt.Verifier),
	)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	profile, err := u.fetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	session := authdomain.Session{
		Email:    profile.Email,
		Name:     profile.Name,
		Picture:  profile.Picture,
		Provider: "google",
	}
	if err := u.sessionRepo.Put(visitorID, session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (u *authUsecase) fetchProfile(ctx context.Context, token *oauth2.Token) (*oauth2api.Userinfo, error) {
	opts := []option.ClientOption{option.WithTokenSource(oauth2.StaticTokenSource(token))}
	if u.userinfoURL != "" {
		opts = append(opts, option.WithEndpoint(u.userinfoURL))
	}

	service, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create userinfo service: %w", err)
	}

	profile, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	return profile, nil
}

func (u *authUsecase) activateSession(visitorID string, user authdomain.User) (*authdomain.Session, error) {
	session := authdomain.Session{
		Email:    user.Email,
		Name:     user.Name,
		Picture:  user.Picture,
		Provider: user.Provider,
	}
	if err := u.sessionRepo.Put(visitorID, session); err != nil {
		return nil, err
	}
	return &session, nil
}
