package models

import (
	"errors"
	"regexp"
	"strings"
)

// UserRole represents the role of a user
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents the authenticated user held by the session
type User struct {
	ID        int      `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Role      UserRole `json:"role"`
}

var userEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns the user's display name, falling back to the email
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates login credentials
func (req *LoginRequest) Validate() error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if req.Password == "" {
		return errors.New("password is required")
	}

	return nil
}

// RegisterRequest represents the data needed to register a new account
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Validate validates registration data
func (req *RegisterRequest) Validate() error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if len(req.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	return nil
}

// AuthResponse is the payload returned by login and register
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// validateEmail validates an email address
func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}

	if !userEmailRegex.MatchString(email) {
		return errors.New("invalid email address")
	}

	return nil
}
