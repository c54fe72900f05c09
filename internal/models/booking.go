package models

type Booking struct {
	ID         int64    `json:"id"`
	UserID     int64    `json:"user_id"`
	EventID    int64    `json:"event_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
	EventDate  string   `json:"event_date"`
	EventTime  string   `json:"event_time"`
	Addons     []string `json:"addons"`
	TotalPrice int64    `json:"total_price"`
	Notes      string   `json:"notes"`
}

// BookingSummary is a booking joined with the template it reserves.
type BookingSummary struct {
	BookingID   int64  `json:"booking_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Date        string `json:"date"`
}
