package services

import (
	"sync"

	"katcheri/internal/models"
)

// CollectionPhase is the lifecycle state of a collection fetch
type CollectionPhase string

const (
	PhaseIdle    CollectionPhase = "idle"
	PhaseLoading CollectionPhase = "loading"
	PhaseReady   CollectionPhase = "ready"
	PhaseError   CollectionPhase = "error"
)

// Collection is an in-memory container for one fetched collection. Each
// fetch gets a monotonic generation; by default a completion whose
// generation is older than the one already applied is discarded, so a slow
// early request cannot overwrite the result of a faster later one. With the
// guard disabled the container reproduces the historical behavior where the
// last completion wins regardless of issue order.
type Collection[T any] struct {
	mu        sync.Mutex
	dropStale bool

	// pending reports entities written optimistically and not yet confirmed;
	// they survive authoritative refreshes until matched by identity.
	pending func(T) bool
	// same matches two entities by identity (id first, then slug)
	same func(a, b T) bool

	phase      CollectionPhase
	issued     uint64
	applied    uint64
	items      []T
	pagination *models.Pagination
	err        error
}

func newCollection[T any](dropStale bool, pending func(T) bool, same func(a, b T) bool) *Collection[T] {
	return &Collection[T]{
		dropStale: dropStale,
		pending:   pending,
		same:      same,
		phase:     PhaseIdle,
	}
}

// Begin marks the collection loading and returns the fetch generation
func (c *Collection[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = PhaseLoading
	c.issued++
	return c.issued
}

// Complete applies a finished fetch. It returns false when the completion
// was discarded as stale. Locally-pending entities not present in the new
// payload are preserved.
func (c *Collection[T]) Complete(gen uint64, items []T, pagination *models.Pagination) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dropStale && gen < c.applied {
		return false
	}

	merged := make([]T, len(items))
	copy(merged, items)
	for _, existing := range c.items {
		if !c.pending(existing) {
			continue
		}
		matched := false
		for _, incoming := range items {
			if c.same(existing, incoming) {
				matched = true
				break
			}
		}
		if !matched {
			merged = append(merged, existing)
		}
	}

	c.items = merged
	c.pagination = pagination
	c.phase = PhaseReady
	c.err = nil
	c.applied = gen
	return true
}

// Fail records a fetch whose remote and fallback legs both failed
func (c *Collection[T]) Fail(gen uint64, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dropStale && gen < c.applied {
		return false
	}

	c.phase = PhaseError
	c.err = err
	c.applied = gen
	return true
}

// Phase returns the current lifecycle phase
func (c *Collection[T]) Phase() CollectionPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Err returns the recorded failure, if the collection is in the error phase
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Items returns a copy of the held entities
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Pagination returns the envelope of the most recent applied fetch
func (c *Collection[T]) Pagination() *models.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pagination == nil {
		return nil
	}
	p := *c.pagination
	return &p
}

// Upsert merges an entity into the collection by identity, appending when
// no existing entity matches. The collection becomes ready if it was idle
// so optimistic writes are visible before any fetch.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.same(c.items[i], item) {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
	if c.phase == PhaseIdle {
		c.phase = PhaseReady
	}
}

// Update applies fn to the entity matched by match; it returns false when
// no entity matches
func (c *Collection[T]) Update(match func(T) bool, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

// Remove deletes the first entity matched by match
func (c *Collection[T]) Remove(match func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns a copy of the first entity matched by match
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Store owns every entity collection. It is created once at process start
// and injected into the services that consume it; there is no ambient
// global store.
type Store struct {
	Events *Collection[models.Event]
	News   *Collection[models.NewsPost]
	Media  *Collection[models.MediaItem]
	Orders *Collection[models.Order]

	mu           sync.Mutex
	currentEvent *models.Event
	currentPost  *models.NewsPost
}

// StoreOption configures a Store
type StoreOption func(*storeOptions)

type storeOptions struct {
	lastCompletedWins bool
}

// WithLastCompletedWins disables the stale-completion guard, restoring the
// documented race where whichever in-flight fetch resolves last overwrites
// the collection.
func WithLastCompletedWins() StoreOption {
	return func(o *storeOptions) {
		o.lastCompletedWins = true
	}
}

// NewStore creates an empty entity store
func NewStore(opts ...StoreOption) *Store {
	var options storeOptions
	for _, opt := range opts {
		opt(&options)
	}
	dropStale := !options.lastCompletedWins

	return &Store{
		Events: newCollection(dropStale,
			func(e models.Event) bool { return !e.Origin.Supersedable() },
			func(a, b models.Event) bool {
				if a.ID != 0 && a.ID == b.ID {
					return true
				}
				return a.Slug != "" && a.Slug == b.Slug
			}),
		News: newCollection(dropStale,
			func(p models.NewsPost) bool { return !p.Origin.Supersedable() },
			func(a, b models.NewsPost) bool {
				if a.ID != 0 && a.ID == b.ID {
					return true
				}
				return a.Slug != "" && a.Slug == b.Slug
			}),
		Media: newCollection(dropStale,
			func(m models.MediaItem) bool { return !m.Origin.Supersedable() },
			func(a, b models.MediaItem) bool { return a.ID != 0 && a.ID == b.ID }),
		Orders: newCollection(dropStale,
			func(o models.Order) bool { return !o.Origin.Supersedable() },
			func(a, b models.Order) bool {
				if a.ID != 0 && a.ID == b.ID {
					return true
				}
				return a.OrderNumber != "" && a.OrderNumber == b.OrderNumber
			}),
	}
}

// SetCurrentEvent records the event resolved by the latest slug lookup
func (s *Store) SetCurrentEvent(event *models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentEvent = event
}

// CurrentEvent returns the event resolved by the latest slug lookup
func (s *Store) CurrentEvent() *models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentEvent == nil {
		return nil
	}
	event := *s.currentEvent
	return &event
}

// SetCurrentPost records the post resolved by the latest slug lookup
func (s *Store) SetCurrentPost(post *models.NewsPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPost = post
}

// CurrentPost returns the post resolved by the latest slug lookup
func (s *Store) CurrentPost() *models.NewsPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentPost == nil {
		return nil
	}
	post := *s.currentPost
	return &post
}

// TicketType resolves a ticket type through the event collection, checking
// the current event as well so detail pages work before a list fetch.
func (s *Store) TicketType(eventID, ticketTypeID int) (*models.Event, *models.TicketType, error) {
	event, ok := s.Events.Find(func(e models.Event) bool { return e.ID == eventID })
	if !ok {
		current := s.CurrentEvent()
		if current == nil || current.ID != eventID {
			return nil, nil, models.ErrEventNotFound
		}
		event = *current
	}

	tt := event.TicketType(ticketTypeID)
	if tt == nil {
		return nil, nil, models.ErrTicketTypeNotFound
	}

	ticketType := *tt
	return &event, &ticketType, nil
}
