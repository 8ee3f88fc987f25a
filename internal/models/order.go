package models

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCheckedIn OrderStatus = "checked_in"
	OrderRefunded  OrderStatus = "refunded"
)

// orderTransitions is the set of legal status transitions. Refunds are
// reachable from every non-refunded state; refunded is terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPaid, OrderRefunded},
	OrderPaid:      {OrderCheckedIn, OrderRefunded},
	OrderCheckedIn: {OrderRefunded},
	OrderRefunded:  {},
}

// CanTransition reports whether an order may move from one status to another
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Customer represents the purchaser attached to an order
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItem represents a line item on an order
type OrderItem struct {
	ID         int     `json:"id"`
	EventTitle string  `json:"event_title"`
	TicketType string  `json:"ticket_type"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

// Order represents an order in the system
type Order struct {
	ID          int         `json:"id"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
	Total       float64     `json:"total"`
	PlacedAt    time.Time   `json:"placed_at"`
	Customer    Customer    `json:"customer"`
	Items       []OrderItem `json:"items"`
	Notes       string      `json:"notes,omitempty"`

	Origin Provenance `json:"-"`
}

// Order number format: KAT-YYYY-NNNN (e.g., KAT-2025-1189)
var orderNumberRegex = regexp.MustCompile(`^KAT-\d{4}-\d{4}$`)

// Validate validates the order data
func (o *Order) Validate() error {
	if err := o.validateOrderNumber(); err != nil {
		return err
	}

	if err := o.validateStatus(); err != nil {
		return err
	}

	if err := o.validateCustomer(); err != nil {
		return err
	}

	return o.validateTotal()
}

// validateOrderNumber validates the human-readable order code
func (o *Order) validateOrderNumber() error {
	if o.OrderNumber == "" {
		return errors.New("order number is required")
	}

	if !orderNumberRegex.MatchString(o.OrderNumber) {
		return errors.New("order number must match format KAT-YYYY-NNNN")
	}

	return nil
}

// validateStatus validates the order status
func (o *Order) validateStatus() error {
	switch o.Status {
	case OrderPending, OrderPaid, OrderCheckedIn, OrderRefunded:
		return nil
	default:
		return errors.New("invalid order status")
	}
}

// validateCustomer validates the order customer
func (o *Order) validateCustomer() error {
	if strings.TrimSpace(o.Customer.Name) == "" {
		return errors.New("customer name is required")
	}

	return validateEmail(o.Customer.Email)
}

// validateTotal checks the total against the item lines
func (o *Order) validateTotal() error {
	if o.Total < 0 {
		return errors.New("order total cannot be negative")
	}

	var sum float64
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			return errors.New("order item quantity must be greater than 0")
		}
		if item.UnitPrice < 0 {
			return errors.New("order item unit price cannot be negative")
		}
		sum += float64(item.Quantity) * item.UnitPrice
	}

	if len(o.Items) > 0 && math.Abs(sum-o.Total) > 0.005 {
		return errors.New("order total must equal the sum of its items")
	}

	return nil
}

// CheckoutRequest represents the data needed to place an order from the cart
type CheckoutRequest struct {
	Email       string `json:"email"`
	HolderName  string `json:"holder_name,omitempty"`
	HolderEmail string `json:"holder_email,omitempty"`
}

// Validate validates checkout data
func (req *CheckoutRequest) Validate() error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if req.HolderEmail != "" {
		if err := validateEmail(req.HolderEmail); err != nil {
			return errors.New("invalid holder email address")
		}
	}

	return nil
}
