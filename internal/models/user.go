package models

import "time"

// User represents a back-office user in the system
type User struct {
	ID           int64     `json:"id"`
	AgencyID     int64     `json:"agency_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Not serialized
	CreatedAt    time.Time `json:"created_at"`
}
