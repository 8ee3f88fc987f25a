package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"katcheri/internal/models"
)

// PersistedSession is the durable credential set: the token pair and the
// identity it belongs to. The three values are written and cleared together.
type PersistedSession struct {
	AccessToken  string
	RefreshToken string
	User         models.User
}

// SaveSession stores the token pair and user in a single transaction,
// replacing any previous session.
func (db *DB) SaveSession(s PersistedSession) error {
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start session transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM session"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear previous session: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO session (id, access_token, refresh_token, user_json) VALUES (1, ?, ?, ?)",
		s.AccessToken, s.RefreshToken, string(userJSON),
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save session: %w", err)
	}

	return tx.Commit()
}

// LoadSession returns the persisted session, or nil if none exists
func (db *DB) LoadSession() (*PersistedSession, error) {
	var s PersistedSession
	var userJSON string

	err := db.QueryRow("SELECT access_token, refresh_token, user_json FROM session WHERE id = 1").
		Scan(&s.AccessToken, &s.RefreshToken, &userJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if err := json.Unmarshal([]byte(userJSON), &s.User); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}

	return &s, nil
}

// ClearSession removes the token pair and identity as one atomic delete. A
// partially cleared session (token gone but identity retained, or the
// reverse) must not be observable.
func (db *DB) ClearSession() error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start session transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM session"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return tx.Commit()
}
