package models

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// MediaItem represents a gallery media item
type MediaItem struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Tags         []string  `json:"tags"`
	Featured     bool      `json:"featured"`
	UploadedAt   time.Time `json:"uploaded_at"`

	Origin Provenance `json:"-"`
}

// Validate validates the media item data
func (m *MediaItem) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("title is required")
	}

	return validateMediaURL(m.URL)
}

// HasTag returns true if the item carries the given tag
func (m *MediaItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MediaCreateRequest represents the data needed to create a media item
type MediaCreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags,omitempty"`
	Featured    bool     `json:"featured"`
}

// Validate validates media creation data
func (req *MediaCreateRequest) Validate() error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}

	return validateMediaURL(req.URL)
}

// validateMediaURL validates a media URL
func validateMediaURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("url is required")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid media URL")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("media URL must use HTTP or HTTPS")
	}

	return nil
}
