package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"katcheri/internal/models"
)

// TokenSource supplies the bearer token for authenticated requests. An
// empty string means the request goes out anonymous.
type TokenSource interface {
	AccessToken() string
}

// Client talks to the Katcheri API. It performs exactly one attempt per
// call: no retries, no caching. Resilience lives a layer up, in the
// fallback resolver.
type Client struct {
	baseURL   string
	client    *http.Client
	tokens    TokenSource
	sessionID string
}

// NewClient creates an API client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    &http.Client{Timeout: timeout},
		sessionID: uuid.NewString(),
	}
}

// SetTokenSource attaches the session holder so requests carry its token
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// SessionID returns the anonymous cart session identifier
func (c *Client) SessionID() string {
	return c.sessionID
}

// NetworkError represents a connectivity or HTTP-level failure.
// StatusCode is zero when the request never produced a response.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is a NetworkError with the given HTTP status
func IsStatus(err error, status int) bool {
	var nerr *NetworkError
	return errors.As(err, &nerr) && nerr.StatusCode == status
}

// apiError is the error envelope returned by the API
type apiError struct {
	Error string `json:"error"`
}

// EventsPayload is the response shape of a collection fetch for events
type EventsPayload struct {
	Events     []models.Event    `json:"events"`
	Pagination models.Pagination `json:"pagination"`
}

// NewsPayload is the response shape of a collection fetch for news posts
type NewsPayload struct {
	Posts      []models.NewsPost `json:"posts"`
	Pagination models.Pagination `json:"pagination"`
}

// ListEvents fetches the event collection with optional filters
func (c *Client) ListEvents(ctx context.Context, q models.EventQuery) (*EventsPayload, error) {
	params := url.Values{}
	if q.Q != "" {
		params.Set("q", q.Q)
	}
	if q.DateFrom != "" {
		params.Set("date_from", q.DateFrom)
	}
	if q.DateTo != "" {
		params.Set("date_to", q.DateTo)
	}
	if q.Venue != "" {
		params.Set("venue", q.Venue)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}

	var payload EventsPayload
	if err := c.do(ctx, "list events", http.MethodGet, "/events", params, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetEvent fetches a single event by slug
func (c *Client) GetEvent(ctx context.Context, slug string) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, "get event", http.MethodGet, "/events/"+url.PathEscape(slug), nil, nil, &event); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, &NetworkError{Op: "get event", StatusCode: http.StatusNotFound, Err: models.ErrEventNotFound}
		}
		return nil, err
	}
	return &event, nil
}

// ListNews fetches the news collection
func (c *Client) ListNews(ctx context.Context, page int) (*NewsPayload, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	var payload NewsPayload
	if err := c.do(ctx, "list news", http.MethodGet, "/news", params, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetNewsPost fetches a single news post by slug
func (c *Client) GetNewsPost(ctx context.Context, slug string) (*models.NewsPost, error) {
	var post models.NewsPost
	if err := c.do(ctx, "get news post", http.MethodGet, "/news/"+url.PathEscape(slug), nil, nil, &post); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, &NetworkError{Op: "get news post", StatusCode: http.StatusNotFound, Err: models.ErrPostNotFound}
		}
		return nil, err
	}
	return &post, nil
}

// ListMedia fetches the gallery media collection
func (c *Client) ListMedia(ctx context.Context) ([]models.MediaItem, error) {
	var items []models.MediaItem
	if err := c.do(ctx, "list media", http.MethodGet, "/media", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetCart fetches the server-side cart for this session
func (c *Client) GetCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, "get cart", http.MethodGet, "/cart", nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds tickets to the server-side cart
func (c *Client) AddToCart(ctx context.Context, req models.AddToCartRequest) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, "add to cart", http.MethodPost, "/cart", nil, req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveCartItem removes a line from the server-side cart
func (c *Client) RemoveCartItem(ctx context.Context, itemID int) error {
	return c.do(ctx, "remove cart item", http.MethodDelete, "/cart/"+strconv.Itoa(itemID), nil, nil, nil)
}

// ListOrders fetches the current user's orders
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, "list orders", http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Checkout places an order from the server-side cart
func (c *Client) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, "checkout", http.MethodPost, "/orders/checkout", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateEvent creates an event through the admin API
func (c *Client) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	var created models.Event
	if err := c.do(ctx, "create event", http.MethodPost, "/admin/events", nil, event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// PatchEventStatus updates an event's status through the admin API
func (c *Client) PatchEventStatus(ctx context.Context, id int, status models.EventStatus) error {
	body := map[string]models.EventStatus{"status": status}
	return c.do(ctx, "patch event status", http.MethodPatch, "/admin/events/"+strconv.Itoa(id), nil, body, nil)
}

// CreateNewsPost creates a news post through the admin API
func (c *Client) CreateNewsPost(ctx context.Context, post models.NewsPost) (*models.NewsPost, error) {
	var created models.NewsPost
	if err := c.do(ctx, "create news post", http.MethodPost, "/admin/news", nil, post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// PatchNewsStatus updates a news post's status through the admin API
func (c *Client) PatchNewsStatus(ctx context.Context, id int, status models.NewsStatus) error {
	body := map[string]models.NewsStatus{"status": status}
	return c.do(ctx, "patch news status", http.MethodPatch, "/admin/news/"+strconv.Itoa(id), nil, body, nil)
}

// CreateMedia creates a media item through the admin API
func (c *Client) CreateMedia(ctx context.Context, item models.MediaItem) (*models.MediaItem, error) {
	var created models.MediaItem
	if err := c.do(ctx, "create media", http.MethodPost, "/admin/media", nil, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteMedia removes a media item through the admin API
func (c *Client) DeleteMedia(ctx context.Context, id int) error {
	return c.do(ctx, "delete media", http.MethodDelete, "/admin/media/"+strconv.Itoa(id), nil, nil, nil)
}

// PatchMediaFeatured toggles a media item's featured flag through the admin API
func (c *Client) PatchMediaFeatured(ctx context.Context, id int, featured bool) error {
	body := map[string]bool{"featured": featured}
	return c.do(ctx, "patch media featured", http.MethodPatch, "/admin/media/"+strconv.Itoa(id), nil, body, nil)
}

// ListAdminOrders fetches all orders through the admin API
func (c *Client) ListAdminOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, "list admin orders", http.MethodGet, "/admin/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// PatchOrderStatus updates an order's status through the admin API
func (c *Client) PatchOrderStatus(ctx context.Context, id int, status models.OrderStatus) error {
	body := map[string]models.OrderStatus{"status": status}
	return c.do(ctx, "patch order status", http.MethodPatch, "/admin/orders/"+strconv.Itoa(id), nil, body, nil)
}

// ResendOrderEmail asks the API to resend an order's confirmation email
func (c *Client) ResendOrderEmail(ctx context.Context, id int) error {
	return c.do(ctx, "resend order email", http.MethodPost, "/admin/orders/"+strconv.Itoa(id)+"/resend", nil, nil, nil)
}

// GetStats fetches the admin dashboard counters
func (c *Client) GetStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.do(ctx, "get stats", http.MethodGet, "/admin/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Login authenticates with email and password
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", nil, req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Me fetches the current user for the held token
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var payload struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, "me", http.MethodGet, "/auth/me", nil, nil, &payload); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// do performs a single API request and decodes the response into out
func (c *Client) do(ctx context.Context, op, method, path string, params url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Session-ID", c.sessionID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", apiErr.Error)}
		}
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}
