package models

// Stats represents the admin dashboard counters
type Stats struct {
	Orders    OrderStats     `json:"orders"`
	Revenue   RevenueStats   `json:"revenue"`
	Events    ContentStats   `json:"events"`
	News      ContentStats   `json:"news"`
	Users     UserStats      `json:"users"`
	Community CommunityStats `json:"community"`
}

// OrderStats holds order volume counters
type OrderStats struct {
	Total        int `json:"total"`
	Recent30Days int `json:"recent_30_days"`
}

// RevenueStats holds revenue counters
type RevenueStats struct {
	Total float64 `json:"total"`
}

// ContentStats holds published-content counters
type ContentStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
}

// UserStats holds user growth counters
type UserStats struct {
	Total        int `json:"total"`
	NewThisMonth int `json:"new_this_month"`
}

// CommunityStats holds community counters
type CommunityStats struct {
	Volunteers int `json:"volunteers"`
	Partners   int `json:"partners"`
}
