package services

import (
	"context"

	"katcheri/internal/models"
)

// EventsAPI is the remote surface consumed by the event service
type EventsAPI interface {
	ListEvents(ctx context.Context, q models.EventQuery) (*EventsPayload, error)
	GetEvent(ctx context.Context, slug string) (*models.Event, error)
}

// NewsAPI is the remote surface consumed by the news service
type NewsAPI interface {
	ListNews(ctx context.Context, page int) (*NewsPayload, error)
	GetNewsPost(ctx context.Context, slug string) (*models.NewsPost, error)
}

// MediaAPI is the remote surface consumed by the media service
type MediaAPI interface {
	ListMedia(ctx context.Context) ([]models.MediaItem, error)
}

// CartAPI is the remote surface consumed by the cart engine
type CartAPI interface {
	GetCart(ctx context.Context) (*models.Cart, error)
	AddToCart(ctx context.Context, req models.AddToCartRequest) (*models.Cart, error)
	RemoveCartItem(ctx context.Context, itemID int) error
	Checkout(ctx context.Context, req models.CheckoutRequest) (*models.Order, error)
}

// OrdersAPI is the remote surface consumed by the order service
type OrdersAPI interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListAdminOrders(ctx context.Context) ([]models.Order, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

// AdminAPI is the remote surface consumed by the mutation coordinator
type AdminAPI interface {
	CreateEvent(ctx context.Context, event models.Event) (*models.Event, error)
	PatchEventStatus(ctx context.Context, id int, status models.EventStatus) error
	CreateNewsPost(ctx context.Context, post models.NewsPost) (*models.NewsPost, error)
	PatchNewsStatus(ctx context.Context, id int, status models.NewsStatus) error
	CreateMedia(ctx context.Context, item models.MediaItem) (*models.MediaItem, error)
	DeleteMedia(ctx context.Context, id int) error
	PatchMediaFeatured(ctx context.Context, id int, featured bool) error
	PatchOrderStatus(ctx context.Context, id int, status models.OrderStatus) error
	ResendOrderEmail(ctx context.Context, id int) error
}

// AuthAPI is the remote surface consumed by the session service
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

var (
	_ EventsAPI = (*Client)(nil)
	_ NewsAPI   = (*Client)(nil)
	_ MediaAPI  = (*Client)(nil)
	_ CartAPI   = (*Client)(nil)
	_ OrdersAPI = (*Client)(nil)
	_ AdminAPI  = (*Client)(nil)
	_ AuthAPI   = (*Client)(nil)
)
