package services

import (
	"context"
	"testing"

	"katcheri/internal/database"
	"katcheri/internal/models"
)

func openServicesTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func authFixture() *models.AuthResponse {
	return &models.AuthResponse{
		User: models.User{
			ID:    1,
			Email: "admin@katcheri.com",
			Role:  models.RoleAdmin,
		},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	api := newMockAPI()
	api.auth = authFixture()
	db := openServicesTestDB(t)
	service := NewSessionService(api, db)

	if got := service.Phase(); got != PhaseAnonymous {
		t.Fatalf("fresh session phase = %q, want %q", got, PhaseAnonymous)
	}

	user, err := service.Login(context.Background(), models.LoginRequest{
		Email:    "admin@katcheri.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Email != "admin@katcheri.com" {
		t.Errorf("user email = %q, want the authenticated identity", user.Email)
	}
	if got := service.Phase(); got != PhaseAuthenticated {
		t.Errorf("phase = %q, want %q", got, PhaseAuthenticated)
	}
	if got := service.AccessToken(); got != "access-token" {
		t.Errorf("AccessToken() = %q, want the issued token", got)
	}
	if !service.IsAdmin() {
		t.Error("IsAdmin() = false for an admin login")
	}
}

func TestLoginFailureLeavesSessionAnonymous(t *testing.T) {
	api := newMockAPI()
	api.failOn("Login")
	service := NewSessionService(api, openServicesTestDB(t))

	_, err := service.Login(context.Background(), models.LoginRequest{
		Email:    "admin@katcheri.com",
		Password: "wrong",
	})
	if err == nil {
		t.Fatal("Login() error = nil for a failed login")
	}
	if got := service.Phase(); got != PhaseAnonymous {
		t.Errorf("phase = %q, want %q", got, PhaseAnonymous)
	}
	if service.CurrentUser() != nil {
		t.Error("CurrentUser() != nil after failed login")
	}
	if service.AccessToken() != "" {
		t.Error("AccessToken() not empty after failed login")
	}
}

func TestLoginValidationSkipsRemote(t *testing.T) {
	api := newMockAPI()
	service := NewSessionService(api, nil)

	if _, err := service.Login(context.Background(), models.LoginRequest{Email: "not-an-email"}); err == nil {
		t.Fatal("Login() error = nil for invalid credentials shape")
	}
	if api.called("Login") != 0 {
		t.Error("invalid login reached the remote API")
	}
}

func TestSessionRestoredAcrossRestart(t *testing.T) {
	api := newMockAPI()
	api.auth = authFixture()
	db := openServicesTestDB(t)

	first := NewSessionService(api, db)
	if _, err := first.Login(context.Background(), models.LoginRequest{
		Email:    "admin@katcheri.com",
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	second := NewSessionService(newMockAPI(), db)
	if got := second.Phase(); got != PhaseAuthenticated {
		t.Fatalf("restored phase = %q, want %q", got, PhaseAuthenticated)
	}
	user := second.CurrentUser()
	if user == nil || user.Email != "admin@katcheri.com" {
		t.Errorf("restored user = %+v, want the persisted identity", user)
	}
	if second.AccessToken() != "access-token" {
		t.Errorf("restored token = %q, want the persisted token", second.AccessToken())
	}
}

func TestLogoutClearsEverythingAtomically(t *testing.T) {
	api := newMockAPI()
	api.auth = authFixture()
	db := openServicesTestDB(t)
	service := NewSessionService(api, db)

	if _, err := service.Login(context.Background(), models.LoginRequest{
		Email:    "admin@katcheri.com",
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := service.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if got := service.Phase(); got != PhaseAnonymous {
		t.Errorf("phase after logout = %q, want %q", got, PhaseAnonymous)
	}
	if service.CurrentUser() != nil {
		t.Error("CurrentUser() != nil after logout")
	}
	if service.AccessToken() != "" {
		t.Error("AccessToken() not empty after logout")
	}

	persisted, err := db.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}
	if persisted != nil {
		t.Errorf("persisted session after logout = %+v, want nil", persisted)
	}

	restarted := NewSessionService(newMockAPI(), db)
	if got := restarted.Phase(); got != PhaseAnonymous {
		t.Errorf("restarted phase = %q, want %q", got, PhaseAnonymous)
	}
}

func TestRefreshRequiresAuthentication(t *testing.T) {
	service := NewSessionService(newMockAPI(), nil)

	if _, err := service.Refresh(context.Background()); err != models.ErrNotAuthenticated {
		t.Fatalf("Refresh() error = %v, want ErrNotAuthenticated", err)
	}
}

func TestRefreshUpdatesIdentity(t *testing.T) {
	api := newMockAPI()
	api.auth = authFixture()
	service := NewSessionService(api, openServicesTestDB(t))

	if _, err := service.Login(context.Background(), models.LoginRequest{
		Email:    "admin@katcheri.com",
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	api.auth.User.FirstName = "Asha"
	user, err := service.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if user.FirstName != "Asha" {
		t.Errorf("refreshed first name = %q, want %q", user.FirstName, "Asha")
	}
	if current := service.CurrentUser(); current == nil || current.FirstName != "Asha" {
		t.Errorf("CurrentUser() = %+v, want the refreshed identity", current)
	}
}

func TestRegisterSignsUserIn(t *testing.T) {
	api := newMockAPI()
	api.auth = &models.AuthResponse{
		User:         models.User{ID: 2, Email: "new@katcheri.com", Role: models.RoleUser},
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}
	service := NewSessionService(api, nil)

	user, err := service.Register(context.Background(), models.RegisterRequest{
		Email:    "new@katcheri.com",
		Password: "longenough",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("user role = %q, want %q", user.Role, models.RoleUser)
	}
	if service.Phase() != PhaseAuthenticated {
		t.Errorf("phase = %q, want authenticated", service.Phase())
	}
	if service.IsAdmin() {
		t.Error("IsAdmin() = true for a regular user")
	}
}
