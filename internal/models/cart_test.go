package models

import (
	"math"
	"testing"
)

func TestCartRecalculate(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ID: 1, TicketTypeID: 101, Quantity: 2, UnitPrice: 22},
			{ID: 2, TicketTypeID: 102, Quantity: 1, UnitPrice: 28},
		},
		Subtotal: 999, // stale value that must be overwritten
	}

	cart.Recalculate()

	if cart.Items[0].Subtotal != 44 {
		t.Errorf("line 1 subtotal = %v, want 44", cart.Items[0].Subtotal)
	}
	if cart.Items[1].Subtotal != 28 {
		t.Errorf("line 2 subtotal = %v, want 28", cart.Items[1].Subtotal)
	}
	if math.Abs(cart.Subtotal-72) > 0.005 {
		t.Errorf("cart subtotal = %v, want 72", cart.Subtotal)
	}
}

func TestCartRecalculateEmpty(t *testing.T) {
	cart := Cart{Subtotal: 50}
	cart.Recalculate()

	if cart.Subtotal != 0 {
		t.Errorf("empty cart subtotal = %v, want 0", cart.Subtotal)
	}
	if !cart.IsEmpty() {
		t.Error("IsEmpty() = false for a cart with no items")
	}
}

func TestCartIsEmptyOnReturnedValue(t *testing.T) {
	snapshot := func() Cart {
		return Cart{Items: []CartItem{{ID: 1, TicketTypeID: 101, Quantity: 1}}}
	}

	// IsEmpty must work on a cart value straight off a function call
	if snapshot().IsEmpty() {
		t.Error("IsEmpty() = true for a cart with one item")
	}
	if !(Cart{}).IsEmpty() {
		t.Error("IsEmpty() = false for a zero cart")
	}
}

func TestCartItemByTicketType(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ID: 1, TicketTypeID: 101, Quantity: 2},
		},
	}

	if line := cart.ItemByTicketType(101); line == nil || line.ID != 1 {
		t.Errorf("ItemByTicketType(101) = %+v, want line 1", line)
	}
	if line := cart.ItemByTicketType(999); line != nil {
		t.Errorf("ItemByTicketType(999) = %+v, want nil", line)
	}
}

func TestAddToCartRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AddToCartRequest
		wantErr bool
	}{
		{"valid", AddToCartRequest{EventID: 1, TicketTypeID: 101, Quantity: 2}, false},
		{"missing event", AddToCartRequest{TicketTypeID: 101, Quantity: 2}, true},
		{"missing ticket type", AddToCartRequest{EventID: 1, Quantity: 2}, true},
		{"zero quantity", AddToCartRequest{EventID: 1, TicketTypeID: 101, Quantity: 0}, true},
		{"negative quantity", AddToCartRequest{EventID: 1, TicketTypeID: 101, Quantity: -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
