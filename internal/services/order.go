package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"katcheri/internal/logger"
	"katcheri/internal/models"
)

// OrderService reads orders and the dashboard counters with the
// remote-then-fallback pipeline. Status changes go through the mutation
// coordinator, not this service.
type OrderService struct {
	api      OrdersAPI
	fallback *FallbackService
	store    *Store
	log      *logrus.Entry
}

// NewOrderService creates an order service
func NewOrderService(api OrdersAPI, fallback *FallbackService, store *Store) *OrderService {
	return &OrderService{
		api:      api,
		fallback: fallback,
		store:    store,
		log:      logger.Component("orders"),
	}
}

// List fetches the admin order collection, substituting sample orders on
// failure or empty results
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	gen := s.store.Orders.Begin()

	orders, err := s.api.ListAdminOrders(ctx)
	switch {
	case err != nil:
		s.log.WithError(err).Debug("order list fetch failed")
		orders = s.fallback.Orders(FallbackError)
	case len(orders) == 0:
		orders = s.fallback.Orders(FallbackEmpty)
	}

	for i := range orders {
		orders[i].Origin = models.OriginRemote
	}

	s.store.Orders.Complete(gen, orders, nil)

	return orders, nil
}

// ListMine fetches the signed-in user's own orders. No fallback here: an
// anonymous or offline user simply has no order history.
func (s *OrderService) ListMine(ctx context.Context) ([]models.Order, error) {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Stats fetches the dashboard counters, substituting sample counters on
// failure
func (s *OrderService) Stats(ctx context.Context) (models.Stats, error) {
	stats, err := s.api.GetStats(ctx)
	if err != nil {
		s.log.WithError(err).Debug("stats fetch failed")
		return s.fallback.Stats(FallbackError), nil
	}
	return *stats, nil
}
