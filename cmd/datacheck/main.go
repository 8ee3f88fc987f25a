package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"katcheri/internal/config"
	"katcheri/internal/database"
	"katcheri/internal/logger"
	"katcheri/internal/models"
	"katcheri/internal/services"
)

// datacheck exercises the data layer end to end against whatever API the
// config points at. With no API running everything below still succeeds on
// substitute data, which is exactly the resilience being checked.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger.SetLevel(cfg.Log.Level)

	db, err := database.Open(cfg.State.Path)
	if err != nil {
		log.Fatal("Failed to open local state:", err)
	}
	defer db.Close()

	client := services.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	session := services.NewSessionService(client, db)
	client.SetTokenSource(session)

	store := services.NewStore()
	fallback := services.NewFallbackService()

	events := services.NewEventService(client, fallback, store)
	news := services.NewNewsService(client, fallback, store)
	media := services.NewMediaService(client, fallback, store)
	orders := services.NewOrderService(client, fallback, store)
	cart := services.NewCartService(client, store, db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("Checking Katcheri data layer against", cfg.API.BaseURL)

	if user := session.CurrentUser(); user != nil {
		fmt.Printf("Session: signed in as %s (%s)\n", user.FullName(), user.Role)
	} else {
		fmt.Println("Session: anonymous")
	}

	eventList, pagination, err := events.List(ctx, models.EventQuery{Page: 1})
	if err != nil {
		log.Fatal("Event list failed:", err)
	}
	fmt.Printf("Events: %d (page %d of %d)\n", len(eventList), pagination.Page, pagination.Pages)
	for _, event := range eventList {
		fmt.Printf("  - %s @ %s (%d ticket types)\n", event.Title, event.Venue, len(event.TicketTypes))
	}

	posts, _, err := news.List(ctx, 1)
	if err != nil {
		log.Fatal("News list failed:", err)
	}
	fmt.Printf("News posts: %d\n", len(posts))

	items, err := media.List(ctx)
	if err != nil {
		log.Fatal("Media list failed:", err)
	}
	fmt.Printf("Media items: %d\n", len(items))

	orderList, err := orders.List(ctx)
	if err != nil {
		log.Fatal("Order list failed:", err)
	}
	fmt.Printf("Orders: %d\n", len(orderList))

	if remoteCart, err := client.GetCart(ctx); err != nil {
		fmt.Println("Remote cart: unavailable (local cart is authoritative)")
	} else {
		fmt.Printf("Remote cart: %d line(s)\n", len(remoteCart.Items))
	}

	if len(eventList) > 0 && len(eventList[0].TicketTypes) > 0 {
		first := eventList[0]
		updated, err := cart.AddItem(ctx, models.AddToCartRequest{
			EventID:      first.ID,
			TicketTypeID: first.TicketTypes[0].ID,
			Quantity:     1,
		})
		if err != nil {
			log.Fatal("Cart add failed:", err)
		}
		fmt.Printf("Cart: %d line(s), subtotal %.2f\n", len(updated.Items), updated.Subtotal)

		if _, err := cart.RemoveItem(ctx, updated.Items[0].ID); err != nil {
			log.Fatal("Cart remove failed:", err)
		}
		fmt.Println("Cart: cleaned up")
	}

	fmt.Println("Data layer OK")
}
