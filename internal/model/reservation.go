package model

import "time"

// Reservation is a row of the reservations table joined with its property.
type Reservation struct {
	ID         int64     `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PropertyID int64     `json:"property_id"`
	GuestID    int64     `json:"guest_id"`
	Property   Property  `json:"property"`
}
