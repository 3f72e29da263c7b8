package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bkkdevs/seminar-registration-api/internal/models"
)

func fixtures() (models.Seminar, models.Registration) {
	seminar := models.Seminar{
		ID:        "sem-1",
		Title:     "Go Workshop",
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "17:00",
		Venue:     "Hall A",
		Capacity:  10,
	}
	registration := models.Registration{
		ID:               "reg-1",
		Name:             "Alice",
		Email:            "alice@example.com",
		SeminarID:        "sem-1",
		Status:           models.StatusConfirmed,
		RegistrationDate: time.Now(),
	}
	return seminar, registration
}

func TestSendConfirmation(t *testing.T) {
	seminar, registration := fixtures()

	var got sendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "msg_123"})
	}))
	defer server.Close()

	n := NewEmailNotifier(server.URL, "test-key", "events@example.com", "http://app.example.com")

	id, err := n.SendConfirmation(context.Background(), seminar, registration)
	if err != nil {
		t.Fatalf("SendConfirmation returned error: %v", err)
	}
	if id != "msg_123" {
		t.Errorf("expected provider message id msg_123, got %s", id)
	}

	if len(got.To) != 1 || got.To[0] != "alice@example.com" {
		t.Errorf("unexpected recipients: %v", got.To)
	}
	if !strings.Contains(got.Subject, "Go Workshop") {
		t.Errorf("expected seminar title in subject, got %s", got.Subject)
	}
	for _, want := range []string{"Alice", "reg-1", "Hall A", "09:00 - 17:00", "2026-03-15", "http://app.example.com/check"} {
		if !strings.Contains(got.HTML, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestSendConfirmation_ProviderError(t *testing.T) {
	seminar, registration := fixtures()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewEmailNotifier(server.URL, "test-key", "events@example.com", "http://app.example.com")

	if _, err := n.SendConfirmation(context.Background(), seminar, registration); err == nil {
		t.Fatal("expected error for provider failure, got nil")
	}

	if err := n.NotifyRegistration(seminar, registration); err == nil {
		t.Fatal("expected NotifyRegistration to surface the delivery error")
	}
}

func TestSendConfirmation_NoAPIKey(t *testing.T) {
	seminar, registration := fixtures()
	n := NewEmailNotifier("http://127.0.0.1:0", "", "events@example.com", "http://app.example.com")

	if _, err := n.SendConfirmation(context.Background(), seminar, registration); err == nil {
		t.Fatal("expected error when api key is missing, got nil")
	}
}
