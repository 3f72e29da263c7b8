package models

import (
	"time"
)

// Registration statuses. Admission only ever produces StatusConfirmed;
// StatusPending is reserved for future admin flows (waitlist, manual
// approval) and kept so stored rows using it stay representable.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

type Registration struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Name             string    `json:"name"`
	Email            string    `gorm:"uniqueIndex:idx_seminar_email" json:"email"`
	Phone            string    `json:"phone"`
	Organization     string    `json:"organization"`
	SeminarID        string    `gorm:"uniqueIndex:idx_seminar_email" json:"seminar_id"`
	Seminar          Seminar   `gorm:"foreignKey:SeminarID" json:"-"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registration_date"`
}
