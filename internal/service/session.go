package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"mall-storefront/internal/client"
	"mall-storefront/internal/model"
	"mall-storefront/internal/store"
)

type SessionService interface {
	Login(ctx context.Context, username, password string) (model.Session, error)
	Logout() error
	Current() model.Session
	// CurrentUserID resolves the logged-in user's id from the token claims.
	CurrentUserID() (int64, error)
	// CanModify reports whether the current user owns the given content,
	// gating comment/reply edit and delete.
	CanModify(ownerID int64) bool
	Profile(ctx context.Context) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, p *model.UserProfile) error
	// ConsumeRedirectPath returns and clears the path remembered before a
	// forced login.
	ConsumeRedirectPath() string
}

type sessionServiceImpl struct {
	api   client.StorefrontClient
	prefs store.PrefStore
}

func NewSessionService(api client.StorefrontClient, prefs store.PrefStore) SessionService {
	return &sessionServiceImpl{api: api, prefs: prefs}
}

func (s *sessionServiceImpl) Login(ctx context.Context, username, password string) (model.Session, error) {
	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		return model.Session{}, fmt.Errorf("login: %w", err)
	}

	role, err := model.ParseRole(result.Role)
	if err != nil {
		return model.Session{}, fmt.Errorf("login response: %w", err)
	}

	sess := model.Session{Token: result.Token, Role: role, Username: result.Username}
	if err := s.prefs.SaveSession(sess); err != nil {
		return model.Session{}, fmt.Errorf("persist session: %w", err)
	}
	return sess, nil
}

func (s *sessionServiceImpl) Logout() error {
	return s.prefs.ClearSession()
}

func (s *sessionServiceImpl) Current() model.Session {
	sess, err := s.prefs.Session()
	if err != nil {
		return model.Session{}
	}
	return sess
}

func (s *sessionServiceImpl) CurrentUserID() (int64, error) {
	sess := s.Current()
	if !sess.LoggedIn() {
		return 0, ErrLoginRequired
	}

	// The token is only decoded, not verified: the backend is the
	// authority, the claim is used for UI gating only.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(sess.Token, claims); err != nil {
		return 0, fmt.Errorf("decode token claims: %w", err)
	}

	if v, ok := claims["userID"].(float64); ok {
		return int64(v), nil
	}
	if sub, ok := claims["sub"].(string); ok {
		id, err := strconv.ParseInt(sub, 10, 64)
		if err == nil {
			return id, nil
		}
	}
	return 0, errors.New("token carries no user id claim")
}

func (s *sessionServiceImpl) CanModify(ownerID int64) bool {
	id, err := s.CurrentUserID()
	if err != nil {
		return false
	}
	return id == ownerID
}

// Profile fetches the current profile, falling back to the cached copy when
// the endpoint is unreachable. A successful fetch refreshes the cache.
func (s *sessionServiceImpl) Profile(ctx context.Context) (*model.UserProfile, error) {
	profile, err := s.api.GetProfile(ctx)
	if err == nil {
		if cacheErr := s.prefs.SaveCachedProfile(profile); cacheErr != nil {
			return profile, nil
		}
		return profile, nil
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) || errors.Is(err, client.ErrNotFound) {
		// The server answered; its verdict stands.
		return nil, err
	}

	cached, ok, cacheErr := s.prefs.CachedProfile()
	if cacheErr != nil || !ok {
		return nil, err
	}
	return cached, nil
}

func (s *sessionServiceImpl) UpdateProfile(ctx context.Context, p *model.UserProfile) error {
	if err := s.api.UpdateProfile(ctx, p); err != nil {
		return err
	}
	return s.prefs.SaveCachedProfile(p)
}

func (s *sessionServiceImpl) ConsumeRedirectPath() string {
	path, err := s.prefs.RedirectPath()
	if err != nil || path == "" {
		return ""
	}
	s.prefs.SaveRedirectPath("")
	return path
}
