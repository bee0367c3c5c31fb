package models

import (
	"time"
)

// LogEntry records one processed command. Append-only: exactly one row
// per command regardless of which classification branch fired. Response
// is empty when the action carries no payload (ink).
type LogEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"session_id" gorm:"index"`
	Command   string    `json:"command" gorm:"type:text"`
	Action    Action    `json:"action"`
	Response  string    `json:"response" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp"`
}
