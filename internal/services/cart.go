package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"katcheri/internal/database"
	"katcheri/internal/logger"
	"katcheri/internal/models"
)

// CartService owns the shopping cart. The local cart is authoritative: every
// change is applied and validated here, persisted to the local database, and
// only then mirrored to the API on a best-effort basis.
type CartService struct {
	api   CartAPI
	store *Store
	db    *database.DB
	log   *logrus.Entry
	now   func() time.Time

	mu         sync.Mutex
	cart       models.Cart
	nextItemID int
}

// NewCartService creates a cart service, restoring any persisted cart lines
func NewCartService(api CartAPI, store *Store, db *database.DB) *CartService {
	s := &CartService{
		api:        api,
		store:      store,
		db:         db,
		log:        logger.Component("cart"),
		now:        time.Now,
		nextItemID: 1,
	}

	if db != nil {
		items, err := db.LoadCartItems()
		if err != nil {
			s.log.WithError(err).Warn("failed to restore persisted cart")
		} else {
			s.cart.Items = items
			s.cart.Recalculate()
			for _, item := range items {
				if item.ID >= s.nextItemID {
					s.nextItemID = item.ID + 1
				}
			}
		}
	}

	return s
}

// Cart returns a snapshot of the current cart
func (s *CartService) Cart() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// AddItem adds tickets to the cart. Adding the same ticket type twice merges
// into one line with the quantities summed; the merged quantity is checked
// against availability before anything changes, so a rejected add leaves the
// cart exactly as it was.
func (s *CartService) AddItem(ctx context.Context, req models.AddToCartRequest) (models.Cart, error) {
	if err := req.Validate(); err != nil {
		return models.Cart{}, err
	}

	event, ticketType, err := s.store.TicketType(req.EventID, req.TicketTypeID)
	if err != nil {
		return models.Cart{}, err
	}
	if !ticketType.IsAvailable {
		return models.Cart{}, models.ErrTicketUnavailable
	}

	s.mu.Lock()

	merged := req.Quantity
	line := s.cart.ItemByTicketType(req.TicketTypeID)
	if line != nil {
		merged += line.Quantity
	}
	if merged > ticketType.QuantityAvailable {
		s.mu.Unlock()
		return models.Cart{}, models.ErrInsufficientStock
	}

	if line != nil {
		line.Quantity = merged
		line.UnitPrice = ticketType.Price
		line.EventTitle = event.Title
		line.TicketName = ticketType.Name
	} else {
		s.cart.Items = append(s.cart.Items, models.CartItem{
			ID:           s.nextItemID,
			TicketTypeID: req.TicketTypeID,
			EventID:      req.EventID,
			EventTitle:   event.Title,
			TicketName:   ticketType.Name,
			Quantity:     req.Quantity,
			UnitPrice:    ticketType.Price,
		})
		s.nextItemID++
	}
	s.cart.Recalculate()

	s.persist()
	cart := s.snapshot()
	s.mu.Unlock()

	// mirror outside the lock so a slow API never stalls other cart calls
	if _, err := s.api.AddToCart(ctx, req); err != nil {
		s.log.WithError(err).Debug("cart add not mirrored remotely")
	}

	return cart, nil
}

// RemoveItem removes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, itemID int) (models.Cart, error) {
	s.mu.Lock()

	index := -1
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == itemID {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return models.Cart{}, models.ErrCartItemNotFound
	}

	s.cart.Items = append(s.cart.Items[:index], s.cart.Items[index+1:]...)
	s.cart.Recalculate()

	s.persist()
	cart := s.snapshot()
	s.mu.Unlock()

	if err := s.api.RemoveCartItem(ctx, itemID); err != nil {
		s.log.WithError(err).Debug("cart removal not mirrored remotely")
	}

	return cart, nil
}

// Checkout turns the cart into an order. The order appears in the store
// immediately; if the API confirms it, the confirmed order replaces the
// local one. The cart is cleared either way.
func (s *CartService) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.Order, MutationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, MutationResult{}, err
	}

	s.mu.Lock()
	if s.cart.IsEmpty() {
		s.mu.Unlock()
		return nil, MutationResult{}, models.ErrEmptyCart
	}
	cart := s.snapshot()
	s.cart = models.Cart{}
	s.nextItemID = 1
	s.persist()
	s.mu.Unlock()

	order := s.buildOrder(cart, req)
	order.Origin = models.OriginLocalPending
	s.store.Orders.Upsert(order)

	confirmed, err := s.api.Checkout(ctx, req)
	if err != nil || confirmed == nil {
		if err != nil {
			s.log.WithError(err).Warn("checkout not persisted remotely")
		}
		return &order, localResult("Order"), nil
	}

	confirmed.Origin = models.OriginLocalConfirmed
	s.store.Orders.Remove(func(o models.Order) bool { return o.ID == order.ID })
	s.store.Orders.Upsert(*confirmed)
	return confirmed, remoteResult("Order"), nil
}

// buildOrder assembles a pending order from the cart contents
func (s *CartService) buildOrder(cart models.Cart, req models.CheckoutRequest) models.Order {
	now := s.now()

	name := strings.TrimSpace(req.HolderName)
	if name == "" {
		if at := strings.IndexByte(req.Email, '@'); at > 0 {
			name = req.Email[:at]
		} else {
			name = req.Email
		}
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ID:         line.ID,
			EventTitle: line.EventTitle,
			TicketType: line.TicketName,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		})
	}

	return models.Order{
		ID:          int(now.UnixMilli()),
		OrderNumber: fmt.Sprintf("KAT-%d-%04d", now.Year(), now.UnixMilli()%10000),
		Status:      models.OrderPending,
		Total:       cart.Subtotal,
		PlacedAt:    now,
		Customer:    models.Customer{Name: name, Email: req.Email},
		Items:       items,
	}
}

// persist writes the cart lines to the local database. Callers hold s.mu.
func (s *CartService) persist() {
	if s.db == nil {
		return
	}
	if err := s.db.ReplaceCartItems(s.cart.Items); err != nil {
		s.log.WithError(err).Warn("failed to persist cart")
	}
}

// snapshot copies the cart so callers cannot mutate internal state.
// Callers hold s.mu.
func (s *CartService) snapshot() models.Cart {
	cart := s.cart
	cart.Items = make([]models.CartItem, len(s.cart.Items))
	copy(cart.Items, s.cart.Items)
	return cart
}
