package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bkkdevs/seminar-registration-api/internal/auth"
	"github.com/bkkdevs/seminar-registration-api/internal/config"
	"github.com/bkkdevs/seminar-registration-api/internal/models"
	"github.com/bkkdevs/seminar-registration-api/internal/store"
)

func adminCookie(t *testing.T, authHandler *auth.AuthHandler) string {
	t.Helper()
	token, err := authHandler.GenerateToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return auth.CookieName + "=" + token
}

func TestHandleListRegistrations(t *testing.T) {
	db := setupDB(t)
	createSeminar(t, db, 10, models.SeminarOpen)

	regs := []models.Registration{
		{ID: "reg-1", Name: "Alice", Email: "a@x.com", Phone: "0812345678", SeminarID: "sem-1",
			Status: models.StatusConfirmed, RegistrationDate: time.Now().Add(-time.Hour)},
		{ID: "reg-2", Name: "Bob", Email: "b@x.com", Phone: "0898765432", SeminarID: "sem-1",
			Status: models.StatusPending, RegistrationDate: time.Now()},
	}
	for i := range regs {
		if err := db.Create(&regs[i]).Error; err != nil {
			t.Fatalf("failed to create registration: %v", err)
		}
	}

	authHandler := auth.NewAuthHandler(&config.Config{JWTSecret: "test-secret"})
	handler := NewAdminHandler(store.New(db), authHandler)

	t.Run("Authorized", func(t *testing.T) {
		input := &ListRegistrationsInput{}
		input.Cookie = adminCookie(t, authHandler)

		resp, err := handler.HandleListRegistrations(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleListRegistrations returned error: %v", err)
		}
		if len(resp.Body.Registrations) != 2 {
			t.Fatalf("expected 2 registrations, got %d", len(resp.Body.Registrations))
		}
		if resp.Body.Registrations[0].ID != "reg-2" {
			t.Errorf("expected newest first, got %s", resp.Body.Registrations[0].ID)
		}

		stats := resp.Body.Stats
		if stats.Total != 2 || stats.Confirmed != 1 || stats.Pending != 1 {
			t.Errorf("unexpected stats: %+v", stats)
		}
		if stats.Capacity != 10 || stats.Available != 8 {
			t.Errorf("unexpected capacity stats: %+v", stats)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		_, err := handler.HandleListRegistrations(context.Background(), &ListRegistrationsInput{})
		if err == nil {
			t.Fatal("expected error for missing session, got nil")
		}
		if got := statusOf(t, err); got != 401 {
			t.Errorf("expected 401, got %d", got)
		}
	})
}

func TestHandleExportCSV(t *testing.T) {
	db := setupDB(t)
	createSeminar(t, db, 10, models.SeminarOpen)

	reg := models.Registration{
		ID: "reg-1", Name: "Alice", Email: "a@x.com", Phone: "0812345678",
		Organization: "Example Org", SeminarID: "sem-1",
		Status: models.StatusConfirmed, RegistrationDate: time.Now(),
	}
	if err := db.Create(&reg).Error; err != nil {
		t.Fatalf("failed to create registration: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret"}
	authHandler := auth.NewAuthHandler(cfg)
	handler := NewAdminHandler(store.New(db), authHandler)

	protected := authHandler.AuthMiddleware(http.HandlerFunc(handler.HandleExportCSV))

	t.Run("WithSession", func(t *testing.T) {
		token, _ := authHandler.GenerateToken()
		req := httptest.NewRequest("GET", "/admin/registrations/export", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status OK, got %d", rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("expected text/csv content type, got %s", ct)
		}
		if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "registrations-") {
			t.Errorf("expected dated attachment filename, got %s", cd)
		}

		body := rr.Body.String()
		if !strings.HasPrefix(body, "\uFEFF") {
			t.Error("expected UTF-8 BOM prefix")
		}
		if !strings.Contains(body, "id,name,email,phone,organization,status,registration_date") {
			t.Errorf("missing header row: %s", body)
		}
		if !strings.Contains(body, "reg-1,Alice,a@x.com") {
			t.Errorf("missing registration row: %s", body)
		}
	})

	t.Run("NoSession", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/registrations/export", nil)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rr.Code)
		}
	})
}

func TestBuildStats_NegativeAvailable(t *testing.T) {
	db := setupDB(t)
	createSeminar(t, db, 1, models.SeminarOpen)

	authHandler := auth.NewAuthHandler(&config.Config{JWTSecret: "test-secret"})
	handler := NewAdminHandler(store.New(db), authHandler)

	regs := []models.Registration{
		{ID: "reg-1", Email: "a@x.com", SeminarID: "sem-1", Status: models.StatusConfirmed},
		{ID: "reg-2", Email: "b@x.com", SeminarID: "sem-1", Status: models.StatusConfirmed},
	}
	stats := handler.buildStats(context.Background(), regs)
	if stats.Available != -1 {
		t.Errorf("expected available -1 for an over-capacity seminar, got %d", stats.Available)
	}
}
