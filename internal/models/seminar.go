package models

import (
	"time"
)

const (
	SeminarOpen   = "open"
	SeminarClosed = "closed"
)

type Seminar struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Venue           string    `json:"venue"`
	Capacity        int       `json:"capacity"`
	RegisteredCount int       `json:"registered_count"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TimeRange renders the seminar hours the way confirmation messages show them.
func (s Seminar) TimeRange() string {
	return s.StartTime + " - " + s.EndTime
}
