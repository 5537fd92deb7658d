package models

import "time"

// Client represents a travel-agency client
type Client struct {
	ID        int64     `json:"id"`
	AgencyID  int64     `json:"agency_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
