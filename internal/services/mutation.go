package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"katcheri/internal/logger"
	"katcheri/internal/models"
	"katcheri/internal/utils"
)

// MutationStatus is the terminal state of an optimistic write
type MutationStatus string

const (
	// PersistedRemotely means the optimistic apply was confirmed by the API
	PersistedRemotely MutationStatus = "persisted-remotely"
	// PersistedLocally means the remote leg failed; the local state stands
	// and is treated as authoritative until a successful fetch supersedes it
	PersistedLocally MutationStatus = "persisted-locally"
)

// MutationResult reports the outcome of an optimistic write. The remote leg
// failing is never an error: it only changes the status message.
type MutationResult struct {
	Status  MutationStatus
	Message string
}

func remoteResult(entity string) MutationResult {
	return MutationResult{
		Status:  PersistedRemotely,
		Message: entity + " saved via API.",
	}
}

func localResult(entity string) MutationResult {
	return MutationResult{
		Status:  PersistedLocally,
		Message: entity + " saved locally. Connect the API to persist.",
	}
}

// MutationCoordinator applies admin writes optimistically: the store is
// updated synchronously, then a best-effort remote write runs. Validation
// failures block the apply entirely; remote failures never roll it back.
type MutationCoordinator struct {
	api   AdminAPI
	store *Store
	log   *logrus.Entry
	now   func() time.Time
}

// NewMutationCoordinator creates a mutation coordinator
func NewMutationCoordinator(api AdminAPI, store *Store) *MutationCoordinator {
	return &MutationCoordinator{
		api:   api,
		store: store,
		log:   logger.Component("mutations"),
		now:   time.Now,
	}
}

// CreateOrUpdateEvent validates and applies an event write. A missing slug
// is derived from the title; a missing id is derived from the current time,
// which keeps it unique within the optimistic window.
func (m *MutationCoordinator) CreateOrUpdateEvent(ctx context.Context, event models.Event) (models.Event, MutationResult, error) {
	if event.Status == "" {
		event.Status = models.StatusDraft
	}
	if event.Slug == "" {
		event.Slug = utils.Slugify(event.Title)
	}
	if event.Slug == "" {
		event.Slug = "event-" + strconv.FormatInt(m.now().UnixMilli(), 10)
	}
	if event.ID == 0 {
		event.ID = int(m.now().UnixMilli())
	}

	if err := event.Validate(); err != nil {
		return models.Event{}, MutationResult{}, err
	}

	event.Origin = models.OriginLocalPending
	m.store.Events.Upsert(event)

	if _, err := m.api.CreateEvent(ctx, event); err != nil {
		m.log.WithError(err).Warn("event write not persisted remotely")
		return event, localResult("Event"), nil
	}

	event.Origin = models.OriginLocalConfirmed
	m.store.Events.Upsert(event)
	return event, remoteResult("Event"), nil
}

// CreateEventFromRequest builds an event from admin form input and applies it
func (m *MutationCoordinator) CreateEventFromRequest(ctx context.Context, req models.EventCreateRequest) (models.Event, MutationResult, error) {
	if err := req.Validate(); err != nil {
		return models.Event{}, MutationResult{}, err
	}

	return m.CreateOrUpdateEvent(ctx, models.Event{
		Slug:          req.Slug,
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Description:   req.Description,
		Venue:         req.Venue,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Zip:           req.Zip,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		CoverImageURL: req.CoverImageURL,
		Status:        req.Status,
		TicketTypes:   req.TicketTypes,
	})
}

// PatchEventStatus toggles an event between draft and published
func (m *MutationCoordinator) PatchEventStatus(ctx context.Context, id int, status models.EventStatus) (MutationResult, error) {
	switch status {
	case models.StatusDraft, models.StatusPublished:
	default:
		return MutationResult{}, models.ErrInvalidInput
	}

	found := m.store.Events.Update(
		func(e models.Event) bool { return e.ID == id },
		func(e *models.Event) {
			e.Status = status
			e.Origin = models.OriginLocalPending
		})
	if !found {
		return MutationResult{}, models.ErrEventNotFound
	}

	if current := m.store.CurrentEvent(); current != nil && current.ID == id {
		current.Status = status
		m.store.SetCurrentEvent(current)
	}

	if err := m.api.PatchEventStatus(ctx, id, status); err != nil {
		m.log.WithError(err).Warn("event status not persisted remotely")
		return localResult("Event status"), nil
	}

	m.store.Events.Update(
		func(e models.Event) bool { return e.ID == id },
		func(e *models.Event) { e.Origin = models.OriginLocalConfirmed })
	return remoteResult("Event status"), nil
}

// CreateOrUpdateNewsPost validates and applies a news post write. The
// excerpt defaults to the leading content; published posts get a
// published_at stamp.
func (m *MutationCoordinator) CreateOrUpdateNewsPost(ctx context.Context, post models.NewsPost) (models.NewsPost, MutationResult, error) {
	if post.Status == "" {
		post.Status = models.NewsDraft
	}
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}
	if post.Slug == "" {
		post.Slug = "post-" + strconv.FormatInt(m.now().UnixMilli(), 10)
	}
	if post.ID == 0 {
		post.ID = int(m.now().UnixMilli())
	}
	if post.Excerpt == "" {
		post.Excerpt = excerptOf(post.Content)
	}
	if post.Status == models.NewsPublished && post.PublishedAt == nil {
		now := m.now()
		post.PublishedAt = &now
	}
	if post.Status == models.NewsDraft {
		post.PublishedAt = nil
	}

	if err := post.Validate(); err != nil {
		return models.NewsPost{}, MutationResult{}, err
	}

	post.Origin = models.OriginLocalPending
	m.store.News.Upsert(post)

	if _, err := m.api.CreateNewsPost(ctx, post); err != nil {
		m.log.WithError(err).Warn("news post write not persisted remotely")
		return post, localResult("News post"), nil
	}

	post.Origin = models.OriginLocalConfirmed
	m.store.News.Upsert(post)
	return post, remoteResult("News post"), nil
}

// CreateNewsPostFromRequest builds a news post from admin form input and
// applies it. A publish date of the form YYYY-MM-DD overrides the stamp.
func (m *MutationCoordinator) CreateNewsPostFromRequest(ctx context.Context, req models.NewsCreateRequest) (models.NewsPost, MutationResult, error) {
	if err := req.Validate(); err != nil {
		return models.NewsPost{}, MutationResult{}, err
	}

	post := models.NewsPost{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Status:        req.Status,
	}
	if req.PublishDate != "" && req.Status == models.NewsPublished {
		if at, err := time.Parse("2006-01-02", req.PublishDate); err == nil {
			post.PublishedAt = &at
		}
	}

	return m.CreateOrUpdateNewsPost(ctx, post)
}

// PatchNewsStatus publishes or unpublishes a news post. Publishing stamps
// published_at with the current time; unpublishing clears it, so the field
// is present exactly while the post is published.
func (m *MutationCoordinator) PatchNewsStatus(ctx context.Context, id int, status models.NewsStatus) (MutationResult, error) {
	switch status {
	case models.NewsDraft, models.NewsPublished:
	default:
		return MutationResult{}, models.ErrInvalidInput
	}

	now := m.now()
	found := m.store.News.Update(
		func(p models.NewsPost) bool { return p.ID == id },
		func(p *models.NewsPost) {
			p.Status = status
			if status == models.NewsPublished {
				p.PublishedAt = &now
			} else {
				p.PublishedAt = nil
			}
			p.Origin = models.OriginLocalPending
		})
	if !found {
		return MutationResult{}, models.ErrPostNotFound
	}

	if err := m.api.PatchNewsStatus(ctx, id, status); err != nil {
		m.log.WithError(err).Warn("news status not persisted remotely")
		return localResult("News status"), nil
	}

	m.store.News.Update(
		func(p models.NewsPost) bool { return p.ID == id },
		func(p *models.NewsPost) { p.Origin = models.OriginLocalConfirmed })
	return remoteResult("News status"), nil
}

// CreateMediaItem validates and applies a media write
func (m *MutationCoordinator) CreateMediaItem(ctx context.Context, item models.MediaItem) (models.MediaItem, MutationResult, error) {
	if item.ID == 0 {
		item.ID = int(m.now().UnixMilli())
	}
	if item.UploadedAt.IsZero() {
		item.UploadedAt = m.now()
	}

	if err := item.Validate(); err != nil {
		return models.MediaItem{}, MutationResult{}, err
	}

	item.Origin = models.OriginLocalPending
	m.store.Media.Upsert(item)

	if _, err := m.api.CreateMedia(ctx, item); err != nil {
		m.log.WithError(err).Warn("media write not persisted remotely")
		return item, localResult("Media item"), nil
	}

	item.Origin = models.OriginLocalConfirmed
	m.store.Media.Upsert(item)
	return item, remoteResult("Media item"), nil
}

// CreateMediaItemFromRequest builds a media item from admin form input and
// applies it
func (m *MutationCoordinator) CreateMediaItemFromRequest(ctx context.Context, req models.MediaCreateRequest) (models.MediaItem, MutationResult, error) {
	if err := req.Validate(); err != nil {
		return models.MediaItem{}, MutationResult{}, err
	}

	return m.CreateMediaItem(ctx, models.MediaItem{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Tags:        req.Tags,
		Featured:    req.Featured,
	})
}

// DeleteMediaItem removes a media item locally and best-effort remotely
func (m *MutationCoordinator) DeleteMediaItem(ctx context.Context, id int) (MutationResult, error) {
	if !m.store.Media.Remove(func(i models.MediaItem) bool { return i.ID == id }) {
		return MutationResult{}, models.ErrMediaNotFound
	}

	if err := m.api.DeleteMedia(ctx, id); err != nil {
		m.log.WithError(err).Warn("media delete not persisted remotely")
		return localResult("Media removal"), nil
	}
	return remoteResult("Media removal"), nil
}

// PatchMediaFeatured toggles a media item's featured flag
func (m *MutationCoordinator) PatchMediaFeatured(ctx context.Context, id int, featured bool) (MutationResult, error) {
	found := m.store.Media.Update(
		func(i models.MediaItem) bool { return i.ID == id },
		func(i *models.MediaItem) {
			i.Featured = featured
			i.Origin = models.OriginLocalPending
		})
	if !found {
		return MutationResult{}, models.ErrMediaNotFound
	}

	if err := m.api.PatchMediaFeatured(ctx, id, featured); err != nil {
		m.log.WithError(err).Warn("media featured flag not persisted remotely")
		return localResult("Media update"), nil
	}

	m.store.Media.Update(
		func(i models.MediaItem) bool { return i.ID == id },
		func(i *models.MediaItem) { i.Origin = models.OriginLocalConfirmed })
	return remoteResult("Media update"), nil
}

// PatchOrderStatus moves an order through its status lifecycle. Illegal
// transitions are rejected before anything is applied.
func (m *MutationCoordinator) PatchOrderStatus(ctx context.Context, id int, status models.OrderStatus) (MutationResult, error) {
	order, ok := m.store.Orders.Find(func(o models.Order) bool { return o.ID == id })
	if !ok {
		return MutationResult{}, models.ErrOrderNotFound
	}

	if !models.CanTransition(order.Status, status) {
		return MutationResult{}, models.ErrInvalidTransition
	}

	m.store.Orders.Update(
		func(o models.Order) bool { return o.ID == id },
		func(o *models.Order) {
			o.Status = status
			o.Origin = models.OriginLocalPending
		})

	if err := m.api.PatchOrderStatus(ctx, id, status); err != nil {
		m.log.WithError(err).Warn("order status not persisted remotely")
		return localResult("Order status"), nil
	}

	m.store.Orders.Update(
		func(o models.Order) bool { return o.ID == id },
		func(o *models.Order) { o.Origin = models.OriginLocalConfirmed })
	return remoteResult("Order status"), nil
}

// ResendOrderEmail asks the API to resend an order confirmation. There is
// no local state to apply; the result still follows the two-outcome shape.
func (m *MutationCoordinator) ResendOrderEmail(ctx context.Context, id int) (MutationResult, error) {
	if _, ok := m.store.Orders.Find(func(o models.Order) bool { return o.ID == id }); !ok {
		return MutationResult{}, models.ErrOrderNotFound
	}

	if err := m.api.ResendOrderEmail(ctx, id); err != nil {
		m.log.WithError(err).Warn("order email resend failed")
		return MutationResult{Status: PersistedLocally, Message: "Email not sent. Connect the API to resend confirmations."}, nil
	}
	return MutationResult{Status: PersistedRemotely, Message: "Confirmation email resent."}, nil
}

// excerptOf derives a teaser from the leading content
func excerptOf(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= 180 {
		return content
	}
	// cut on a rune boundary so multibyte content stays valid UTF-8
	runes := []rune(content)
	if len(runes) <= 180 {
		return content
	}
	return string(runes[:180])
}
