package services

import (
	"context"
	"sync"

	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"

	"katcheri/internal/database"
	"katcheri/internal/logger"
	"katcheri/internal/models"
)

// AuthPhase represents where the session is in the authentication lifecycle
type AuthPhase string

const (
	PhaseAnonymous      AuthPhase = "anonymous"
	PhaseAuthenticating AuthPhase = "authenticating"
	PhaseAuthenticated  AuthPhase = "authenticated"
)

// SessionService holds the authenticated identity and its token pair. The
// three values live and die together: a successful login stores all of them
// in one transaction and logout clears all of them in one transaction, so a
// half-cleared session can never be observed.
type SessionService struct {
	api AuthAPI
	db  *database.DB
	log *logrus.Entry

	mu           sync.Mutex
	phase        AuthPhase
	user         *models.User
	accessToken  string
	refreshToken string
}

// NewSessionService creates a session service, restoring any persisted
// session so a restart keeps the user signed in.
func NewSessionService(api AuthAPI, db *database.DB) *SessionService {
	s := &SessionService{
		api:   api,
		db:    db,
		log:   logger.Component("session"),
		phase: PhaseAnonymous,
	}

	if db != nil {
		persisted, err := db.LoadSession()
		if err != nil {
			s.log.WithError(err).Warn("failed to restore session")
		} else if persisted != nil {
			user := persisted.User
			s.phase = PhaseAuthenticated
			s.user = &user
			s.accessToken = persisted.AccessToken
			s.refreshToken = persisted.RefreshToken
			s.log.WithField("email", user.Email).Debug("session restored")
		}
	}

	return s
}

// Login authenticates against the API. A failed login leaves the session
// anonymous with no credentials stored.
func (s *SessionService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.setPhase(PhaseAuthenticating)

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		s.reset()
		return nil, err
	}

	return s.establish(resp)
}

// Register creates an account and signs the new user in
func (s *SessionService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.setPhase(PhaseAuthenticating)

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.reset()
		return nil, err
	}

	return s.establish(resp)
}

// Logout discards the identity and both tokens atomically
func (s *SessionService) Logout() error {
	s.mu.Lock()
	s.phase = PhaseAnonymous
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.mu.Unlock()

	if s.db != nil {
		if err := s.db.ClearSession(); err != nil {
			return err
		}
	}
	return nil
}

// Refresh re-fetches the identity behind the held token from the API and
// updates the persisted session. Anonymous sessions have nothing to refresh.
func (s *SessionService) Refresh(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	authenticated := s.phase == PhaseAuthenticated
	accessToken := s.accessToken
	refreshToken := s.refreshToken
	s.mu.Unlock()

	if !authenticated {
		return nil, models.ErrNotAuthenticated
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	fresh := *user
	s.user = &fresh
	s.mu.Unlock()

	if s.db != nil {
		err := s.db.SaveSession(database.PersistedSession{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         *user,
		})
		if err != nil {
			s.log.WithError(err).Warn("failed to persist refreshed session")
		}
	}

	result := *user
	return &result, nil
}

// CurrentUser returns the authenticated user, or nil when anonymous
func (s *SessionService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Phase returns the current authentication phase
func (s *SessionService) Phase() AuthPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// AccessToken implements TokenSource for the API client
func (s *SessionService) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// IsAdmin returns true when an admin user is signed in
func (s *SessionService) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.IsAdmin()
}

// establish stores a successful auth response in memory and on disk
func (s *SessionService) establish(resp *models.AuthResponse) (*models.User, error) {
	user := resp.User
	fillFromClaims(&user, resp.AccessToken)

	s.mu.Lock()
	s.phase = PhaseAuthenticated
	s.user = &user
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.mu.Unlock()

	if s.db != nil {
		err := s.db.SaveSession(database.PersistedSession{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			User:         user,
		})
		if err != nil {
			s.log.WithError(err).Warn("failed to persist session")
		}
	}

	result := user
	return &result, nil
}

func (s *SessionService) setPhase(phase AuthPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
}

func (s *SessionService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseAnonymous
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
}

// fillFromClaims backfills identity fields from the access token claims when
// the auth payload omits them. The token is not verified here; the API is
// the authority and this is display data only.
func fillFromClaims(user *models.User, accessToken string) {
	if accessToken == "" {
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(accessToken, claims); err != nil {
		return
	}

	if user.Email == "" {
		if email, ok := claims["email"].(string); ok {
			user.Email = email
		}
	}
	if user.Role == "" {
		if role, ok := claims["role"].(string); ok {
			user.Role = models.UserRole(role)
		}
	}
}
