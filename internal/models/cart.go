package models

import "errors"

// CartItem represents a line in the shopping cart. UnitPrice is a snapshot
// taken when the line was added; later ticket price changes do not affect it.
type CartItem struct {
	ID           int     `json:"id"`
	TicketTypeID int     `json:"ticket_type_id"`
	EventID      int     `json:"event_id"`
	EventTitle   string  `json:"event_title,omitempty"`
	TicketName   string  `json:"ticket_name,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	Subtotal     float64 `json:"subtotal"`
}

// Cart represents the shopping cart. Subtotal is derived from the items and
// must be recomputed whenever they change, never assigned directly.
type Cart struct {
	ID       int        `json:"id"`
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

// Recalculate recomputes every line subtotal and the cart subtotal
func (c *Cart) Recalculate() {
	var total float64
	for i := range c.Items {
		c.Items[i].Subtotal = float64(c.Items[i].Quantity) * c.Items[i].UnitPrice
		total += c.Items[i].Subtotal
	}
	c.Subtotal = total
}

// ItemByTicketType returns the line for the given ticket type, or nil
func (c *Cart) ItemByTicketType(ticketTypeID int) *CartItem {
	for i := range c.Items {
		if c.Items[i].TicketTypeID == ticketTypeID {
			return &c.Items[i]
		}
	}
	return nil
}

// IsEmpty returns true if the cart has no items
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// AddToCartRequest represents the data needed to add tickets to the cart
type AddToCartRequest struct {
	EventID      int `json:"event_id"`
	TicketTypeID int `json:"ticket_type_id"`
	Quantity     int `json:"quantity"`
}

// Validate validates add-to-cart data
func (req *AddToCartRequest) Validate() error {
	if req.EventID <= 0 {
		return errors.New("event id is required")
	}

	if req.TicketTypeID <= 0 {
		return errors.New("ticket type id is required")
	}

	if req.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	return nil
}
