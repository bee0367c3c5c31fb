package models

import (
	"time"
)

// Session is one continuous interactive context with an attacker. The ID
// is the opaque identifier minted by the upstream facade, stable for the
// lifetime of the connection. Rows are created on the first processed
// command and never deleted.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	IP        string    `json:"ip"`
	Country   string    `json:"country"`
	StartedAt time.Time `json:"started_at"`
	Status    Action    `json:"status" gorm:"index"`
}
