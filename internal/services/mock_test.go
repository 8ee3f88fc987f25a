package services

import (
	"context"
	"fmt"

	"katcheri/internal/models"
)

// mockAPI is a hand-written fake of the remote API. Operations listed in
// shouldFailOps return a wire error; everything else serves the configured
// data and records the call.
type mockAPI struct {
	shouldFailOps map[string]bool

	// when set, cart mirror calls signal on the gate and then wait on it,
	// letting tests hold a mirror call in flight
	cartGate chan struct{}

	events []models.Event
	posts  []models.NewsPost
	media  []models.MediaItem
	orders []models.Order
	stats  *models.Stats
	cart   *models.Cart
	auth   *models.AuthResponse
	order  *models.Order

	calls []string
}

func newMockAPI() *mockAPI {
	return &mockAPI{shouldFailOps: make(map[string]bool)}
}

func (m *mockAPI) failOn(ops ...string) {
	for _, op := range ops {
		m.shouldFailOps[op] = true
	}
}

func (m *mockAPI) record(op string) error {
	m.calls = append(m.calls, op)
	if m.shouldFailOps[op] {
		return fmt.Errorf("mock %s error", op)
	}
	return nil
}

func (m *mockAPI) called(op string) int {
	count := 0
	for _, call := range m.calls {
		if call == op {
			count++
		}
	}
	return count
}

func (m *mockAPI) ListEvents(ctx context.Context, q models.EventQuery) (*EventsPayload, error) {
	if err := m.record("ListEvents"); err != nil {
		return nil, err
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = models.DefaultPerPage
	}
	return &EventsPayload{
		Events:     m.events,
		Pagination: models.NewPagination(page, perPage, len(m.events)),
	}, nil
}

func (m *mockAPI) GetEvent(ctx context.Context, slug string) (*models.Event, error) {
	if err := m.record("GetEvent"); err != nil {
		return nil, err
	}
	for i := range m.events {
		if m.events[i].Slug == slug {
			event := m.events[i]
			return &event, nil
		}
	}
	return nil, models.ErrEventNotFound
}

func (m *mockAPI) ListNews(ctx context.Context, page int) (*NewsPayload, error) {
	if err := m.record("ListNews"); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &NewsPayload{
		Posts:      m.posts,
		Pagination: models.NewPagination(page, models.DefaultPerPage, len(m.posts)),
	}, nil
}

func (m *mockAPI) GetNewsPost(ctx context.Context, slug string) (*models.NewsPost, error) {
	if err := m.record("GetNewsPost"); err != nil {
		return nil, err
	}
	for i := range m.posts {
		if m.posts[i].Slug == slug {
			post := m.posts[i]
			return &post, nil
		}
	}
	return nil, models.ErrPostNotFound
}

func (m *mockAPI) ListMedia(ctx context.Context) ([]models.MediaItem, error) {
	if err := m.record("ListMedia"); err != nil {
		return nil, err
	}
	return m.media, nil
}

func (m *mockAPI) GetCart(ctx context.Context) (*models.Cart, error) {
	if err := m.record("GetCart"); err != nil {
		return nil, err
	}
	return m.cart, nil
}

func (m *mockAPI) AddToCart(ctx context.Context, req models.AddToCartRequest) (*models.Cart, error) {
	if m.cartGate != nil {
		m.cartGate <- struct{}{}
		<-m.cartGate
	}
	if err := m.record("AddToCart"); err != nil {
		return nil, err
	}
	return m.cart, nil
}

func (m *mockAPI) RemoveCartItem(ctx context.Context, itemID int) error {
	return m.record("RemoveCartItem")
}

func (m *mockAPI) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.Order, error) {
	if err := m.record("Checkout"); err != nil {
		return nil, err
	}
	return m.order, nil
}

func (m *mockAPI) ListOrders(ctx context.Context) ([]models.Order, error) {
	if err := m.record("ListOrders"); err != nil {
		return nil, err
	}
	return m.orders, nil
}

func (m *mockAPI) ListAdminOrders(ctx context.Context) ([]models.Order, error) {
	if err := m.record("ListAdminOrders"); err != nil {
		return nil, err
	}
	return m.orders, nil
}

func (m *mockAPI) GetStats(ctx context.Context) (*models.Stats, error) {
	if err := m.record("GetStats"); err != nil {
		return nil, err
	}
	return m.stats, nil
}

func (m *mockAPI) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	if err := m.record("CreateEvent"); err != nil {
		return nil, err
	}
	return &event, nil
}

func (m *mockAPI) PatchEventStatus(ctx context.Context, id int, status models.EventStatus) error {
	return m.record("PatchEventStatus")
}

func (m *mockAPI) CreateNewsPost(ctx context.Context, post models.NewsPost) (*models.NewsPost, error) {
	if err := m.record("CreateNewsPost"); err != nil {
		return nil, err
	}
	return &post, nil
}

func (m *mockAPI) PatchNewsStatus(ctx context.Context, id int, status models.NewsStatus) error {
	return m.record("PatchNewsStatus")
}

func (m *mockAPI) CreateMedia(ctx context.Context, item models.MediaItem) (*models.MediaItem, error) {
	if err := m.record("CreateMedia"); err != nil {
		return nil, err
	}
	return &item, nil
}

func (m *mockAPI) DeleteMedia(ctx context.Context, id int) error {
	return m.record("DeleteMedia")
}

func (m *mockAPI) PatchMediaFeatured(ctx context.Context, id int, featured bool) error {
	return m.record("PatchMediaFeatured")
}

func (m *mockAPI) PatchOrderStatus(ctx context.Context, id int, status models.OrderStatus) error {
	return m.record("PatchOrderStatus")
}

func (m *mockAPI) ResendOrderEmail(ctx context.Context, id int) error {
	return m.record("ResendOrderEmail")
}

func (m *mockAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := m.record("Login"); err != nil {
		return nil, err
	}
	return m.auth, nil
}

func (m *mockAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := m.record("Register"); err != nil {
		return nil, err
	}
	return m.auth, nil
}

func (m *mockAPI) Me(ctx context.Context) (*models.User, error) {
	if err := m.record("Me"); err != nil {
		return nil, err
	}
	if m.auth == nil {
		return nil, models.ErrNotAuthenticated
	}
	user := m.auth.User
	return &user, nil
}
