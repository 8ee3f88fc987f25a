package models

import (
	"errors"
	"strings"
	"time"
)

// EventStatus represents the status of an event
type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
)

// TicketType represents a purchasable tier within an event
type TicketType struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	Price             float64 `json:"price"` // USD
	QuantityAvailable int     `json:"quantity_available"`
	IsAvailable       bool    `json:"is_available"`
}

// Validate validates the ticket type data
func (tt *TicketType) Validate() error {
	if strings.TrimSpace(tt.Name) == "" {
		return errors.New("ticket type name is required")
	}

	if tt.Price < 0 {
		return errors.New("ticket price cannot be negative")
	}

	if tt.QuantityAvailable < 0 {
		return errors.New("ticket quantity cannot be negative")
	}

	return nil
}

// Event represents an event in the system
type Event struct {
	ID            int          `json:"id"`
	Slug          string       `json:"slug"`
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle,omitempty"`
	Description   string       `json:"description,omitempty"`
	Venue         string       `json:"venue,omitempty"`
	Address       string       `json:"address,omitempty"`
	City          string       `json:"city,omitempty"`
	State         string       `json:"state,omitempty"`
	Zip           string       `json:"zip,omitempty"`
	StartDatetime time.Time    `json:"start_datetime"`
	EndDatetime   *time.Time   `json:"end_datetime,omitempty"`
	CoverImageURL string       `json:"cover_image_url,omitempty"`
	Status        EventStatus  `json:"status"`
	TicketTypes   []TicketType `json:"ticket_types,omitempty"`

	Origin Provenance `json:"-"`
}

// Validate validates the event data
func (e *Event) Validate() error {
	if err := validateEventTitle(e.Title); err != nil {
		return err
	}

	if err := validateSlug(e.Slug); err != nil {
		return err
	}

	if e.StartDatetime.IsZero() {
		return errors.New("start datetime is required")
	}

	if e.EndDatetime != nil && e.EndDatetime.Before(e.StartDatetime) {
		return errors.New("end datetime must be after start datetime")
	}

	if err := validateEventStatus(e.Status); err != nil {
		return err
	}

	for i := range e.TicketTypes {
		if err := e.TicketTypes[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// IsPublished returns true if the event is published
func (e *Event) IsPublished() bool {
	return e.Status == StatusPublished
}

// IsDraft returns true if the event is a draft
func (e *Event) IsDraft() bool {
	return e.Status == StatusDraft
}

// IsUpcoming returns true if the event starts in the future
func (e *Event) IsUpcoming() bool {
	return e.StartDatetime.After(time.Now())
}

// AvailableTicketTypes returns the subset of ticket types that can be bought
func (e *Event) AvailableTicketTypes() []TicketType {
	var available []TicketType
	for _, tt := range e.TicketTypes {
		if tt.IsAvailable && tt.QuantityAvailable > 0 {
			available = append(available, tt)
		}
	}
	return available
}

// TicketType returns the ticket type with the given id, or nil
func (e *Event) TicketType(id int) *TicketType {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].ID == id {
			return &e.TicketTypes[i]
		}
	}
	return nil
}

// EventCreateRequest represents the data needed to create or update an event
type EventCreateRequest struct {
	Slug          string       `json:"slug,omitempty"`
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle,omitempty"`
	Description   string       `json:"description,omitempty"`
	Venue         string       `json:"venue,omitempty"`
	Address       string       `json:"address,omitempty"`
	City          string       `json:"city,omitempty"`
	State         string       `json:"state,omitempty"`
	Zip           string       `json:"zip,omitempty"`
	StartDatetime time.Time    `json:"start_datetime"`
	EndDatetime   *time.Time   `json:"end_datetime,omitempty"`
	CoverImageURL string       `json:"cover_image_url,omitempty"`
	Status        EventStatus  `json:"status"`
	TicketTypes   []TicketType `json:"ticket_types,omitempty"`
}

// Validate validates event creation data
func (req *EventCreateRequest) Validate() error {
	if err := validateEventTitle(req.Title); err != nil {
		return err
	}

	if req.StartDatetime.IsZero() {
		return errors.New("start datetime is required")
	}

	if req.EndDatetime != nil && req.EndDatetime.Before(req.StartDatetime) {
		return errors.New("end datetime must be after start datetime")
	}

	if req.Status != "" {
		if err := validateEventStatus(req.Status); err != nil {
			return err
		}
	}

	return nil
}

// EventQuery represents the supported event list filters
type EventQuery struct {
	Q        string
	DateFrom string
	DateTo   string
	Venue    string
	Page     int
	PerPage  int
}

// validateEventTitle validates an event title
func validateEventTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}

	if len(title) > 255 {
		return errors.New("title must be less than 255 characters")
	}

	return nil
}

// validateEventStatus validates an event status
func validateEventStatus(status EventStatus) error {
	switch status {
	case StatusDraft, StatusPublished:
		return nil
	default:
		return errors.New("invalid event status")
	}
}

// validateSlug validates a URL-safe slug
func validateSlug(slug string) error {
	if slug == "" {
		return errors.New("slug is required")
	}

	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return errors.New("slug must contain only lowercase letters, digits and hyphens")
		}
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return errors.New("slug cannot start or end with a hyphen")
	}

	return nil
}
