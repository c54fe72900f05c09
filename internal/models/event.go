package models

type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Image       string `json:"image"`
}

// EventTemplate is a decoration package from the seeded catalog.
type EventTemplate struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Details     string `json:"details"`
}
