package services

import (
	"context"
	"math"
	"regexp"
	"testing"

	"katcheri/internal/models"
)

func cartFixtureStore() *Store {
	store := NewStore()
	gen := store.Events.Begin()
	store.Events.Complete(gen, []models.Event{
		{
			ID:    1,
			Slug:  "desi-lofi-cafe-rave",
			Title: "Desi Lofi Café Rave",
			TicketTypes: []models.TicketType{
				{ID: 101, Name: "Early Bird", Price: 22, QuantityAvailable: 6, IsAvailable: true},
				{ID: 102, Name: "General Admission", Price: 28, QuantityAvailable: 60, IsAvailable: true},
				{ID: 103, Name: "Sold Out Tier", Price: 40, QuantityAvailable: 0, IsAvailable: false},
			},
		},
	}, nil)
	return store
}

func addRequest(ticketTypeID, quantity int) models.AddToCartRequest {
	return models.AddToCartRequest{EventID: 1, TicketTypeID: ticketTypeID, Quantity: quantity}
}

func TestCartAddMergesSameTicketType(t *testing.T) {
	service := NewCartService(newMockAPI(), cartFixtureStore(), nil)

	if _, err := service.AddItem(context.Background(), addRequest(101, 2)); err != nil {
		t.Fatalf("first AddItem() error = %v", err)
	}
	cart, err := service.AddItem(context.Background(), addRequest(101, 3))
	if err != nil {
		t.Fatalf("second AddItem() error = %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("cart lines = %d, want merged single line", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", cart.Items[0].Quantity)
	}
	if cart.Items[0].Subtotal != 110 {
		t.Errorf("line subtotal = %v, want 110", cart.Items[0].Subtotal)
	}
}

func TestCartSubtotalStaysDerived(t *testing.T) {
	service := NewCartService(newMockAPI(), cartFixtureStore(), nil)
	ctx := context.Background()

	service.AddItem(ctx, addRequest(101, 2))
	service.AddItem(ctx, addRequest(102, 1))
	cart, err := service.AddItem(ctx, addRequest(101, 1))
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	var want float64
	for _, line := range cart.Items {
		want += float64(line.Quantity) * line.UnitPrice
	}
	if math.Abs(cart.Subtotal-want) > 0.005 {
		t.Errorf("cart subtotal = %v, want derived sum %v", cart.Subtotal, want)
	}

	removed := cart.Items[0].ID
	cart, err = service.RemoveItem(ctx, removed)
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	want = 0
	for _, line := range cart.Items {
		want += float64(line.Quantity) * line.UnitPrice
	}
	if math.Abs(cart.Subtotal-want) > 0.005 {
		t.Errorf("subtotal after removal = %v, want %v", cart.Subtotal, want)
	}
}

func TestCartAddRejectsOverAvailability(t *testing.T) {
	service := NewCartService(newMockAPI(), cartFixtureStore(), nil)
	ctx := context.Background()

	if _, err := service.AddItem(ctx, addRequest(101, 4)); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	// 4 in cart + 3 requested exceeds the 6 available
	if _, err := service.AddItem(ctx, addRequest(101, 3)); err != models.ErrInsufficientStock {
		t.Fatalf("AddItem() error = %v, want ErrInsufficientStock", err)
	}

	cart := service.Cart()
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 4 {
		t.Errorf("cart after rejected add = %+v, want unchanged line of 4", cart.Items)
	}
}

func TestCartAddRejectsUnavailableTicket(t *testing.T) {
	service := NewCartService(newMockAPI(), cartFixtureStore(), nil)

	if _, err := service.AddItem(context.Background(), addRequest(103, 1)); err != models.ErrTicketUnavailable {
		t.Fatalf("AddItem() error = %v, want ErrTicketUnavailable", err)
	}
	if !service.Cart().IsEmpty() {
		t.Error("rejected add mutated the cart")
	}
}

func TestCartMirrorDoesNotBlockReads(t *testing.T) {
	api := newMockAPI()
	api.cartGate = make(chan struct{})
	service := NewCartService(api, cartFixtureStore(), nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := service.AddItem(context.Background(), addRequest(101, 2)); err != nil {
			t.Errorf("AddItem() error = %v", err)
		}
	}()

	// the local mutation is committed before the mirror call goes out,
	// so the cart must be readable while the mirror is still in flight
	<-api.cartGate
	cart := service.Cart()
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Errorf("cart during in-flight mirror = %+v, want one line of 2", cart.Items)
	}

	api.cartGate <- struct{}{}
	<-done
}

func TestCartAddValidatesQuantity(t *testing.T) {
	service := NewCartService(newMockAPI(), cartFixtureStore(), nil)

	if _, err := service.AddItem(context.Background(), addRequest(101, 0)); err == nil {
		t.Fatal("AddItem() with zero quantity succeeded")
	}
}

func TestCartRemoveUnknownLine(t *testing.T) {
	service := NewCartService(newMockAPI(), cartFixtureStore(), nil)

	if _, err := service.RemoveItem(context.Background(), 99); err != models.ErrCartItemNotFound {
		t.Fatalf("RemoveItem() error = %v, want ErrCartItemNotFound", err)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	service := NewCartService(newMockAPI(), cartFixtureStore(), nil)

	_, _, err := service.Checkout(context.Background(), models.CheckoutRequest{Email: "priya@example.com"})
	if err != models.ErrEmptyCart {
		t.Fatalf("Checkout() error = %v, want ErrEmptyCart", err)
	}
}

func TestCheckoutPlacesOptimisticOrder(t *testing.T) {
	api := newMockAPI()
	api.failOn("Checkout")
	store := cartFixtureStore()
	service := NewCartService(api, store, nil)
	ctx := context.Background()

	service.AddItem(ctx, addRequest(101, 2))
	service.AddItem(ctx, addRequest(102, 1))

	order, result, err := service.Checkout(ctx, models.CheckoutRequest{
		Email:      "priya@example.com",
		HolderName: "Priya Raman",
	})
	if err != nil {
		t.Fatalf("Checkout() error = %v, want remote failure absorbed", err)
	}
	if result.Status != PersistedLocally {
		t.Errorf("result status = %q, want %q", result.Status, PersistedLocally)
	}

	if !regexp.MustCompile(`^KAT-\d{4}-\d{4}$`).MatchString(order.OrderNumber) {
		t.Errorf("order number = %q, want KAT-YYYY-NNNN", order.OrderNumber)
	}
	if order.Status != models.OrderPending {
		t.Errorf("order status = %q, want pending", order.Status)
	}
	if math.Abs(order.Total-72) > 0.005 {
		t.Errorf("order total = %v, want 72", order.Total)
	}
	if err := order.Validate(); err != nil {
		t.Errorf("placed order fails validation: %v", err)
	}

	stored, ok := store.Orders.Find(func(o models.Order) bool { return o.ID == order.ID })
	if !ok {
		t.Fatal("placed order missing from store")
	}
	if stored.Origin != models.OriginLocalPending {
		t.Errorf("stored order origin = %q, want local pending", stored.Origin)
	}

	if !service.Cart().IsEmpty() {
		t.Error("cart not cleared after checkout")
	}
}

func TestCheckoutAdoptsConfirmedOrder(t *testing.T) {
	api := newMockAPI()
	api.order = &models.Order{
		ID:          777,
		OrderNumber: "KAT-2026-0777",
		Status:      models.OrderPending,
		Total:       22,
		Customer:    models.Customer{Name: "Priya", Email: "priya@example.com"},
	}
	store := cartFixtureStore()
	service := NewCartService(api, store, nil)
	ctx := context.Background()

	service.AddItem(ctx, addRequest(101, 1))

	order, result, err := service.Checkout(ctx, models.CheckoutRequest{Email: "priya@example.com"})
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if result.Status != PersistedRemotely {
		t.Errorf("result status = %q, want %q", result.Status, PersistedRemotely)
	}
	if order.OrderNumber != "KAT-2026-0777" {
		t.Errorf("order number = %q, want the confirmed order", order.OrderNumber)
	}

	orders := store.Orders.Items()
	if len(orders) != 1 {
		t.Fatalf("store orders = %d, want the confirmed order only", len(orders))
	}
	if orders[0].Origin != models.OriginLocalConfirmed {
		t.Errorf("order origin = %q, want local confirmed", orders[0].Origin)
	}
}

func TestCartPersistsAcrossRestart(t *testing.T) {
	db := openServicesTestDB(t)
	store := cartFixtureStore()

	service := NewCartService(newMockAPI(), store, db)
	if _, err := service.AddItem(context.Background(), addRequest(101, 2)); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	reopened := NewCartService(newMockAPI(), store, db)
	cart := reopened.Cart()
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("restored cart = %+v, want the persisted line", cart.Items)
	}
	if math.Abs(cart.Subtotal-44) > 0.005 {
		t.Errorf("restored subtotal = %v, want 44", cart.Subtotal)
	}
}
