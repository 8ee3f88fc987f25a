package services

import (
	"github.com/sirupsen/logrus"

	"katcheri/internal/logger"
	"katcheri/internal/models"
)

// FallbackReason distinguishes why substitute data was served. It feeds
// the diagnostic notice only; control flow never branches on it.
type FallbackReason string

const (
	// FallbackError means the remote fetch failed outright
	FallbackError FallbackReason = "error"
	// FallbackEmpty means the remote fetch succeeded with an empty collection
	FallbackEmpty FallbackReason = "empty"
)

// FallbackService supplies deterministic substitute payloads with the exact
// shape the remote API would have returned, so consumers always see some
// data even with zero live endpoints.
type FallbackService struct {
	log *logrus.Entry
}

// NewFallbackService creates a fallback resolver
func NewFallbackService() *FallbackService {
	return &FallbackService{
		log: logger.Component("fallback"),
	}
}

// notice emits the non-fatal diagnostic for observability
func (f *FallbackService) notice(resource string, reason FallbackReason) {
	f.log.WithFields(logrus.Fields{
		"resource": resource,
		"reason":   reason,
	}).Warn("serving substitute data")
}

// Events returns the substitute event collection with a synthetic
// pagination envelope whose total equals the dataset length
func (f *FallbackService) Events(reason FallbackReason, q models.EventQuery) *EventsPayload {
	f.notice("events", reason)

	events := SampleEvents()
	return &EventsPayload{
		Events:     events,
		Pagination: models.NewPagination(q.Page, q.PerPage, len(events)),
	}
}

// EventBySlug returns the substitute event with the given slug, if any
func (f *FallbackService) EventBySlug(slug string) (*models.Event, bool) {
	for _, event := range SampleEvents() {
		if event.Slug == slug {
			f.notice("event", FallbackError)
			return &event, true
		}
	}
	return nil, false
}

// News returns the substitute news collection
func (f *FallbackService) News(reason FallbackReason, page int) *NewsPayload {
	f.notice("news", reason)

	posts := SampleNews()
	return &NewsPayload{
		Posts:      posts,
		Pagination: models.NewPagination(page, 0, len(posts)),
	}
}

// NewsBySlug returns the substitute news post with the given slug, if any
func (f *FallbackService) NewsBySlug(slug string) (*models.NewsPost, bool) {
	for _, post := range SampleNews() {
		if post.Slug == slug {
			f.notice("news post", FallbackError)
			return &post, true
		}
	}
	return nil, false
}

// Media returns the substitute media collection
func (f *FallbackService) Media(reason FallbackReason) []models.MediaItem {
	f.notice("media", reason)
	return SampleMedia()
}

// Orders returns the substitute order collection
func (f *FallbackService) Orders(reason FallbackReason) []models.Order {
	f.notice("orders", reason)
	return SampleOrders()
}

// Stats returns the substitute dashboard counters
func (f *FallbackService) Stats(reason FallbackReason) models.Stats {
	f.notice("stats", reason)
	return SampleStats()
}
