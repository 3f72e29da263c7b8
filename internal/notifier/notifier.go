package notifier

import (
	"github.com/bkkdevs/seminar-registration-api/internal/models"
)

type Notifier interface {
	NotifyRegistration(seminar models.Seminar, registration models.Registration) error
}
