package models

import "errors"

// Common errors used throughout the data layer
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrPostNotFound       = errors.New("news post not found")
	ErrMediaNotFound      = errors.New("media item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInsufficientStock  = errors.New("insufficient tickets available")
	ErrTicketUnavailable  = errors.New("ticket type not available")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
