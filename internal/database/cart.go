package database

import (
	"fmt"

	"katcheri/internal/models"
)

// ReplaceCartItems rewrites the persisted cart lines in one transaction so
// a crash between the delete and the inserts cannot lose the cart.
func (db *DB) ReplaceCartItems(items []models.CartItem) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start cart transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM cart_items"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	for _, item := range items {
		if _, err := tx.Exec(
			"INSERT INTO cart_items (id, ticket_type_id, event_id, event_title, ticket_name, quantity, unit_price) VALUES (?, ?, ?, ?, ?, ?, ?)",
			item.ID, item.TicketTypeID, item.EventID, item.EventTitle, item.TicketName, item.Quantity, item.UnitPrice,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save cart item %d: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

// LoadCartItems returns the persisted cart lines with subtotals recomputed
func (db *DB) LoadCartItems() ([]models.CartItem, error) {
	rows, err := db.Query("SELECT id, ticket_type_id, event_id, event_title, ticket_name, quantity, unit_price FROM cart_items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.TicketTypeID, &item.EventID, &item.EventTitle, &item.TicketName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		item.Subtotal = float64(item.Quantity) * item.UnitPrice
		items = append(items, item)
	}

	return items, rows.Err()
}
