package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bkkdevs/seminar-registration-api/internal/models"
	"github.com/bkkdevs/seminar-registration-api/internal/notifier"
	"github.com/bkkdevs/seminar-registration-api/internal/store"
	"github.com/bkkdevs/seminar-registration-api/internal/validation"
	"github.com/danielgtaylor/huma/v2"
)

type RegistrationHandler struct {
	store     *store.Store
	notifiers []notifier.Notifier
}

func NewRegistrationHandler(st *store.Store, notifiers ...notifier.Notifier) *RegistrationHandler {
	return &RegistrationHandler{store: st, notifiers: notifiers}
}

type RegisterRequest struct {
	Body struct {
		Name         string `json:"name" doc:"Full name"`
		Email        string `json:"email" doc:"Contact email, used for status lookup"`
		Phone        string `json:"phone" doc:"Phone number"`
		Organization string `json:"organization" doc:"Organization or company"`
		SeminarID    string `json:"seminar_id" doc:"Seminar to register for"`
	}
}

type RegisterResponse struct {
	Body struct {
		Success        bool   `json:"success"`
		RegistrationID string `json:"registration_id"`
		Message        string `json:"message"`
	}
}

func (h *RegistrationHandler) HandleRegister(ctx context.Context, input *RegisterRequest) (*RegisterResponse, error) {
	form, verrs := validation.ValidateRegistration(validation.RegistrationInput{
		Name:         input.Body.Name,
		Email:        input.Body.Email,
		Phone:        input.Body.Phone,
		Organization: input.Body.Organization,
		SeminarID:    input.Body.SeminarID,
	})
	if verrs != nil {
		details := make([]error, len(verrs))
		for i, fe := range verrs {
			details[i] = &huma.ErrorDetail{Message: fe.Message, Location: "body." + fe.Field}
		}
		return nil, huma.Error422UnprocessableEntity("Invalid registration data", details...)
	}

	registration, seminar, err := h.store.Admit(ctx, store.AdmitInput{
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		Organization: form.Organization,
		SeminarID:    form.SeminarID,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSeminarNotFound):
			return nil, huma.Error404NotFound("Seminar not found")
		case errors.Is(err, store.ErrSeminarClosed):
			return nil, huma.Error400BadRequest("Seminar is closed for registration")
		case errors.Is(err, store.ErrCapacityExceeded):
			return nil, huma.Error400BadRequest("Seminar is fully booked")
		case errors.Is(err, store.ErrDuplicateRegistration):
			return nil, huma.Error409Conflict("This email is already registered for the seminar")
		}
		log.Printf("Admission failed: %v", err)
		return nil, huma.Error500InternalServerError("Failed to process registration")
	}

	h.dispatchNotifications(*seminar, *registration)

	res := &RegisterResponse{}
	res.Body.Success = true
	res.Body.RegistrationID = registration.ID
	res.Body.Message = "Registration successful"
	return res, nil
}

// dispatchNotifications fans out to the configured notifiers after the
// registration is committed. Delivery is best-effort: failures are logged
// and never affect the admission result.
func (h *RegistrationHandler) dispatchNotifications(seminar models.Seminar, registration models.Registration) {
	for _, n := range h.notifiers {
		go func(n notifier.Notifier) {
			if err := n.NotifyRegistration(seminar, registration); err != nil {
				log.Printf("Notification failed for registration %s: %v", registration.ID, err)
			}
		}(n)
	}
}

type CheckRequest struct {
	Email string `query:"email" doc:"Email used at registration"`
}

type SeminarView struct {
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type RegistrationView struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	Organization     string      `json:"organization"`
	Status           string      `json:"status"`
	RegistrationDate time.Time   `json:"registration_date"`
	Seminar          SeminarView `json:"seminar"`
}

type CheckResponse struct {
	Body struct {
		Success      bool             `json:"success"`
		Registration RegistrationView `json:"registration"`
	}
}

func (h *RegistrationHandler) HandleCheck(ctx context.Context, input *CheckRequest) (*CheckResponse, error) {
	if input.Email == "" {
		return nil, huma.Error400BadRequest("Email is required")
	}

	registration, err := h.store.LatestRegistrationByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrRegistrationNotFound) {
			return nil, huma.Error404NotFound("No registration found for this email")
		}
		log.Printf("Status lookup failed: %v", err)
		return nil, huma.Error500InternalServerError("Failed to look up registration")
	}

	res := &CheckResponse{}
	res.Body.Success = true
	res.Body.Registration = RegistrationView{
		ID:               registration.ID,
		Name:             registration.Name,
		Email:            registration.Email,
		Phone:            registration.Phone,
		Organization:     registration.Organization,
		Status:           registration.Status,
		RegistrationDate: registration.RegistrationDate,
		Seminar: SeminarView{
			Title:     registration.Seminar.Title,
			Date:      registration.Seminar.Date,
			Venue:     registration.Seminar.Venue,
			StartTime: registration.Seminar.StartTime,
			EndTime:   registration.Seminar.EndTime,
		},
	}
	return res, nil
}
