package models

import (
	"errors"
	"strings"
	"time"
)

// NewsStatus represents the status of a news post
type NewsStatus string

const (
	NewsDraft     NewsStatus = "draft"
	NewsPublished NewsStatus = "published"
)

// Author represents the author attached to a news post
type Author struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// NewsPost represents a news post in the system.
// PublishedAt is present only while the post is published; unpublishing
// clears it and republishing stamps a fresh time.
type NewsPost struct {
	ID            int        `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content,omitempty"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	Status        NewsStatus `json:"status"`
	Author        *Author    `json:"author,omitempty"`

	Origin Provenance `json:"-"`
}

// Validate validates the news post data
func (p *NewsPost) Validate() error {
	if err := validateNewsTitle(p.Title); err != nil {
		return err
	}

	if err := validateSlug(p.Slug); err != nil {
		return err
	}

	if err := validateNewsStatus(p.Status); err != nil {
		return err
	}

	if p.Status == NewsPublished && p.PublishedAt == nil {
		return errors.New("published post must have a published_at time")
	}

	if p.Status == NewsDraft && p.PublishedAt != nil {
		return errors.New("draft post cannot have a published_at time")
	}

	return nil
}

// IsPublished returns true if the post is published
func (p *NewsPost) IsPublished() bool {
	return p.Status == NewsPublished
}

// NewsCreateRequest represents the data needed to create a news post
type NewsCreateRequest struct {
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	PublishDate   string     `json:"publish_date,omitempty"` // YYYY-MM-DD
	Status        NewsStatus `json:"status"`
}

// Validate validates news post creation data
func (req *NewsCreateRequest) Validate() error {
	if err := validateNewsTitle(req.Title); err != nil {
		return err
	}

	if strings.TrimSpace(req.Content) == "" {
		return errors.New("content is required")
	}

	if req.Status != "" {
		if err := validateNewsStatus(req.Status); err != nil {
			return err
		}
	}

	return nil
}

// validateNewsTitle validates a news post title
func validateNewsTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}

	if len(title) > 255 {
		return errors.New("title must be less than 255 characters")
	}

	return nil
}

// validateNewsStatus validates a news post status
func validateNewsStatus(status NewsStatus) error {
	switch status {
	case NewsDraft, NewsPublished:
		return nil
	default:
		return errors.New("invalid news post status")
	}
}
