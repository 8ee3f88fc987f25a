package models

import (
	"testing"
	"time"
)

func validEvent() Event {
	return Event{
		ID:            1,
		Slug:          "desi-lofi-cafe-rave",
		Title:         "Desi Lofi Café Rave",
		Venue:         "Third Rail Coffee Collective",
		StartDatetime: time.Now().AddDate(0, 0, 7),
		Status:        StatusPublished,
		TicketTypes: []TicketType{
			{ID: 101, Name: "Early Bird", Price: 22, QuantityAvailable: 25, IsAvailable: true},
			{ID: 102, Name: "General Admission", Price: 28, QuantityAvailable: 0, IsAvailable: true},
		},
	}
}

func TestEventValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Event)
		wantErr bool
	}{
		{"valid event", func(e *Event) {}, false},
		{"missing title", func(e *Event) { e.Title = "" }, true},
		{"whitespace title", func(e *Event) { e.Title = "   " }, true},
		{"missing slug", func(e *Event) { e.Slug = "" }, true},
		{"uppercase slug", func(e *Event) { e.Slug = "Desi-Rave" }, true},
		{"slug with spaces", func(e *Event) { e.Slug = "desi rave" }, true},
		{"slug leading hyphen", func(e *Event) { e.Slug = "-desi-rave" }, true},
		{"missing start", func(e *Event) { e.StartDatetime = time.Time{} }, true},
		{"end before start", func(e *Event) {
			end := e.StartDatetime.Add(-time.Hour)
			e.EndDatetime = &end
		}, true},
		{"invalid status", func(e *Event) { e.Status = "archived" }, true},
		{"draft status", func(e *Event) { e.Status = StatusDraft }, false},
		{"negative ticket price", func(e *Event) { e.TicketTypes[0].Price = -1 }, true},
		{"unnamed ticket type", func(e *Event) { e.TicketTypes[0].Name = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := validEvent()
			tt.modify(&event)

			err := event.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEventPredicates(t *testing.T) {
	event := validEvent()

	if !event.IsPublished() {
		t.Error("IsPublished() = false for a published event")
	}
	if event.IsDraft() {
		t.Error("IsDraft() = true for a published event")
	}
	if !event.IsUpcoming() {
		t.Error("IsUpcoming() = false for a future event")
	}

	event.StartDatetime = time.Now().AddDate(0, 0, -1)
	if event.IsUpcoming() {
		t.Error("IsUpcoming() = true for a past event")
	}
}

func TestAvailableTicketTypes(t *testing.T) {
	event := validEvent()

	available := event.AvailableTicketTypes()
	if len(available) != 1 {
		t.Fatalf("AvailableTicketTypes() = %d types, want 1 (zero-quantity tier excluded)", len(available))
	}
	if available[0].Name != "Early Bird" {
		t.Errorf("available type = %q, want Early Bird", available[0].Name)
	}
}

func TestEventTicketTypeLookup(t *testing.T) {
	event := validEvent()

	if tt := event.TicketType(102); tt == nil || tt.Name != "General Admission" {
		t.Errorf("TicketType(102) = %+v, want General Admission", tt)
	}
	if tt := event.TicketType(999); tt != nil {
		t.Errorf("TicketType(999) = %+v, want nil", tt)
	}
}
