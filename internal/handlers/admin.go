package handlers

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bkkdevs/seminar-registration-api/internal/auth"
	"github.com/bkkdevs/seminar-registration-api/internal/models"
	"github.com/bkkdevs/seminar-registration-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
)

type AdminHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
}

func NewAdminHandler(st *store.Store, authHandler *auth.AuthHandler) *AdminHandler {
	return &AdminHandler{store: st, authHandler: authHandler}
}

type ListRegistrationsInput struct {
	auth.AuthInput
}

type RegistrationStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Capacity  int `json:"capacity"`
	Available int `json:"available"`
}

type ListRegistrationsOutput struct {
	Body struct {
		Success       bool                  `json:"success"`
		Registrations []models.Registration `json:"registrations"`
		Stats         RegistrationStats     `json:"stats"`
	}
}

func (h *AdminHandler) HandleListRegistrations(ctx context.Context, input *ListRegistrationsInput) (*ListRegistrationsOutput, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	registrations, err := h.store.ListRegistrations(ctx)
	if err != nil {
		log.Printf("Failed to list registrations: %v", err)
		return nil, huma.Error500InternalServerError("Failed to fetch registrations")
	}

	res := &ListRegistrationsOutput{}
	res.Body.Success = true
	res.Body.Registrations = registrations
	res.Body.Stats = h.buildStats(ctx, registrations)
	return res, nil
}

// buildStats aggregates the listing. Available is capacity minus total and
// may go negative, which is itself a signal of past over-admission.
func (h *AdminHandler) buildStats(ctx context.Context, registrations []models.Registration) RegistrationStats {
	stats := RegistrationStats{Total: len(registrations)}
	for _, r := range registrations {
		switch r.Status {
		case models.StatusConfirmed:
			stats.Confirmed++
		case models.StatusPending:
			stats.Pending++
		}
	}

	if seminar, err := h.store.OpenSeminar(ctx); err == nil {
		stats.Capacity = seminar.Capacity
	}
	stats.Available = stats.Capacity - stats.Total

	return stats
}

// HandleExportCSV streams the registration list as a CSV download. Plain
// chi handler because the response is a file, not JSON; the route is
// protected by the auth middleware.
func (h *AdminHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.store.ListRegistrations(r.Context())
	if err != nil {
		log.Printf("Failed to export registrations: %v", err)
		http.Error(w, "Failed to fetch registrations", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("registrations-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	// BOM so spreadsheet apps detect UTF-8
	w.Write([]byte("\uFEFF"))

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "name", "email", "phone", "organization", "status", "registration_date"})
	for _, reg := range registrations {
		organization := reg.Organization
		if organization == "" {
			organization = "-"
		}
		cw.Write([]string{
			reg.ID,
			reg.Name,
			reg.Email,
			reg.Phone,
			organization,
			reg.Status,
			reg.RegistrationDate.Format(time.RFC3339),
		})
	}
	cw.Flush()
}
