package services

import (
	"time"

	"katcheri/internal/models"
)

// The substitute dataset mirrors the live response shapes exactly: every
// value below is a models type, so any schema drift fails compilation.
// Dates are generated relative to now so the sample events always look
// upcoming and the sample news always looks recent.

func daysFromNow(days, hours int) time.Time {
	return time.Now().AddDate(0, 0, days).Add(time.Duration(hours) * time.Hour).Truncate(time.Minute)
}

func daysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days).Truncate(time.Minute)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// SampleEvents returns a fresh copy of the substitute event dataset
func SampleEvents() []models.Event {
	return []models.Event{
		{
			ID:       1,
			Slug:     "desi-lofi-cafe-rave",
			Title:    "Desi Lofi Café Rave",
			Subtitle: "A late-night mix of chai, vinyl, and vibey beats",
			Description: "Settle into the coziest corners of our partner café for a night of chill beats, " +
				"creative pop-ups, and new friends. Featuring live vinyl mixing, card games, and " +
				"limited-edition Katcheri chai flights.",
			Venue:         "Third Rail Coffee Collective",
			Address:       "2454 18th St NW",
			City:          "Washington",
			State:         "DC",
			Zip:           "20009",
			StartDatetime: daysFromNow(5, 20),
			EndDatetime:   timePtr(daysFromNow(6, 1)),
			CoverImageURL: "https://images.unsplash.com/photo-1529088746738-4575547d9430?auto=format&fit=crop&w=1200&q=80",
			Status:        models.StatusPublished,
			TicketTypes: []models.TicketType{
				{
					ID:                101,
					Name:              "Early Bird",
					Description:       "Includes chai flight + access to vinyl lounge",
					Price:             22,
					QuantityAvailable: 25,
					IsAvailable:       true,
				},
				{
					ID:                102,
					Name:              "General Admission",
					Price:             28,
					QuantityAvailable: 60,
					IsAvailable:       true,
				},
			},
		},
		{
			ID:       2,
			Slug:     "pickleball-and-parathas",
			Title:    "Pickleball & Parathas",
			Subtitle: "A Saturday morning rally for brunch lovers",
			Description: "Reserve a court, rally with new friends, and refuel with chef-driven paratha " +
				"tacos and masala mimosas. All skill levels welcome, just bring your energy.",
			Venue:         "District Sports Hub",
			Address:       "4801 Eisenhower Ave",
			City:          "Alexandria",
			State:         "VA",
			Zip:           "22304",
			StartDatetime: daysFromNow(12, 10),
			EndDatetime:   timePtr(daysFromNow(12, 13)),
			CoverImageURL: "https://images.unsplash.com/photo-1620138540899-78a0f6ad0da4?auto=format&fit=crop&w=1200&q=80",
			Status:        models.StatusPublished,
			TicketTypes: []models.TicketType{
				{
					ID:                201,
					Name:              "Rally Squad",
					Description:       "Court time + brunch plate",
					Price:             35,
					QuantityAvailable: 40,
					IsAvailable:       true,
				},
				{
					ID:                202,
					Name:              "Spectator Brunch",
					Price:             20,
					QuantityAvailable: 30,
					IsAvailable:       true,
				},
			},
		},
		{
			ID:       3,
			Slug:     "bollywood-bass-warehouse",
			Title:    "Bollywood Bass Warehouse",
			Subtitle: "Late-night dance party meets art installation",
			Description: "A high-energy warehouse night with live DJs, projection-mapped visuals, and " +
				"surprise performances. Dress for neon, stay for the cypher.",
			Venue:         "The Foundry Loft",
			Address:       "1350 Okie St NE",
			City:          "Washington",
			State:         "DC",
			Zip:           "20002",
			StartDatetime: daysFromNow(22, 21),
			EndDatetime:   timePtr(daysFromNow(23, 2)),
			CoverImageURL: "https://images.unsplash.com/photo-1521337580396-0259d8b721f7?auto=format&fit=crop&w=1200&q=80",
			Status:        models.StatusPublished,
			TicketTypes: []models.TicketType{
				{
					ID:                301,
					Name:              "Dance Floor",
					Price:             32,
					QuantityAvailable: 80,
					IsAvailable:       true,
				},
				{
					ID:                302,
					Name:              "VIP Loft",
					Description:       "Private lounge + complimentary mocktail flight",
					Price:             55,
					QuantityAvailable: 20,
					IsAvailable:       true,
				},
			},
		},
	}
}

// SampleNews returns a fresh copy of the substitute news dataset
func SampleNews() []models.NewsPost {
	return []models.NewsPost{
		{
			ID:    1,
			Slug:  "katcheri-welcomes-2025",
			Title: "Katcheri Welcomes 2025 with a Neon Night Market",
			Excerpt: "We kicked off the new year with an immersive neon night market featuring South Asian " +
				"street food, DJ collabs, and a packed dance floor.",
			Content: "Our 2025 opener brought together 400+ community members under one roof for a neon-lit " +
				"celebration. From Sindhi street eats to an interactive mehndi lounge, the night was designed " +
				"to showcase the creativity of DMV-based South Asian makers. Big shoutout to our partner DJs " +
				"who kept the energy high until the lights came on.",
			CoverImageURL: "https://images.unsplash.com/photo-1506157786151-b8491531f063?auto=format&fit=crop&w=1200&q=80",
			PublishedAt:   timePtr(daysAgo(6)),
			Status:        models.NewsPublished,
			Author: &models.Author{
				ID:        1,
				Email:     "team@katcheri.com",
				FirstName: "Katcheri",
				LastName:  "Collective",
			},
		},
		{
			ID:    2,
			Slug:  "pickleball-league-announcement",
			Title: "Announcing Our Spring Pickleball League",
			Excerpt: "Three weeks, six courts, endless hyped brunch pairings. Our spring league is here with " +
				"new skill tracks and DJ warm-ups.",
			Content: "Back by popular demand: Pickleball & Parathas is evolving into a full mini league. " +
				"We're introducing rotating DJs for warm-ups, captains for each court, and curated brunch " +
				"menus each week. Register early to secure your preferred time slots and squad up with new friends.",
			CoverImageURL: "https://images.unsplash.com/photo-1617957743091-9f75103552ef?auto=format&fit=crop&w=1200&q=80",
			PublishedAt:   timePtr(daysAgo(14)),
			Status:        models.NewsPublished,
			Author: &models.Author{
				ID:        2,
				Email:     "events@katcheri.com",
				FirstName: "Event",
				LastName:  "Crew",
			},
		},
		{
			ID:    3,
			Slug:  "volunteer-spotlight-aarti",
			Title: "Volunteer Spotlight: Meet Aarti, Our Creative Producer",
			Excerpt: "From projection-mapped visuals to chai pairing menus, Aarti brings her creative " +
				"direction to every Katcheri experience.",
			Content: "Aarti joined Katcheri last summer and has since designed immersive visual stories for " +
				"our warehouse parties and curated tasting menus for intimate salon-style gatherings. Learn " +
				"what fuels her creativity and how she's shaping the next wave of community experiences.",
			CoverImageURL: "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1200&q=80",
			PublishedAt:   timePtr(daysAgo(21)),
			Status:        models.NewsPublished,
			Author: &models.Author{
				ID:        3,
				Email:     "stories@katcheri.com",
				FirstName: "Story",
				LastName:  "Team",
			},
		},
	}
}

// SampleMedia returns a fresh copy of the substitute media dataset
func SampleMedia() []models.MediaItem {
	return []models.MediaItem{
		{
			ID:          1,
			Title:       "Neon Night Market Crowd",
			Description: "Packed dance floor from the 2025 kickoff night market.",
			URL:         "https://images.unsplash.com/photo-1464375117522-1311d6a5b81c?auto=format&fit=crop&w=1200&q=80",
			Tags:        []string{"events", "nightlife", "community"},
			Featured:    true,
			UploadedAt:  daysAgo(4),
		},
		{
			ID:          2,
			Title:       "Pickleball Morning Rally",
			Description: "Serving energy and sunshine at Pickleball & Parathas.",
			URL:         "https://images.unsplash.com/photo-1620138540899-78a0f6ad0da4?auto=format&fit=crop&w=1200&q=80",
			Tags:        []string{"sports", "brunch"},
			Featured:    false,
			UploadedAt:  daysAgo(9),
		},
		{
			ID:          3,
			Title:       "Café Vinyl Lounge",
			Description: "Cozy corners and chai flights at the Desi Lofi Café Rave.",
			URL:         "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?auto=format&fit=crop&w=1200&q=80",
			Tags:        []string{"cafe", "music"},
			Featured:    true,
			UploadedAt:  daysAgo(15),
		},
	}
}

// SampleOrders returns a fresh copy of the substitute order dataset
func SampleOrders() []models.Order {
	return []models.Order{
		{
			ID:          1,
			OrderNumber: "KAT-2025-1189",
			Status:      models.OrderPaid,
			Total:       96,
			PlacedAt:    time.Now().Add(-12 * time.Hour).Truncate(time.Minute),
			Customer: models.Customer{
				Name:  "Jaya Nair",
				Email: "jaya@katcheri.com",
			},
			Items: []models.OrderItem{
				{
					ID:         1,
					EventTitle: "Desi Lofi Café Rave",
					TicketType: "General Admission",
					Quantity:   3,
					UnitPrice:  32,
				},
			},
		},
		{
			ID:          2,
			OrderNumber: "KAT-2025-1185",
			Status:      models.OrderPending,
			Total:       70,
			PlacedAt:    time.Now().Add(-26 * time.Hour).Truncate(time.Minute),
			Customer: models.Customer{
				Name:  "Rohan Patel",
				Email: "rohan@example.com",
			},
			Items: []models.OrderItem{
				{
					ID:         2,
					EventTitle: "Pickleball & Parathas",
					TicketType: "Rally Squad",
					Quantity:   2,
					UnitPrice:  35,
				},
			},
			Notes: "Requested gluten-free brunch plate.",
		},
		{
			ID:          3,
			OrderNumber: "KAT-2025-1176",
			Status:      models.OrderCheckedIn,
			Total:       110,
			PlacedAt:    time.Now().Add(-80 * time.Hour).Truncate(time.Minute),
			Customer: models.Customer{
				Name:  "Sara Subramani",
				Email: "sara.sub@example.com",
			},
			Items: []models.OrderItem{
				{
					ID:         3,
					EventTitle: "Bollywood Bass Warehouse",
					TicketType: "VIP Loft",
					Quantity:   2,
					UnitPrice:  55,
				},
			},
		},
	}
}

// SampleStats returns a fresh copy of the substitute dashboard counters
func SampleStats() models.Stats {
	return models.Stats{
		Orders: models.OrderStats{
			Total:        1428,
			Recent30Days: 187,
		},
		Revenue: models.RevenueStats{
			Total: 128560.75,
		},
		Events: models.ContentStats{
			Total:     5, // published samples plus a couple of drafts
			Published: 3,
		},
		News: models.ContentStats{
			Total:     4,
			Published: 3,
		},
		Users: models.UserStats{
			Total:        3265,
			NewThisMonth: 214,
		},
		Community: models.CommunityStats{
			Volunteers: 48,
			Partners:   17,
		},
	}
}
