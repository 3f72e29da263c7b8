package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bkkdevs/seminar-registration-api/internal/models"
)

const sendTimeout = 10 * time.Second

// EmailNotifier sends confirmation emails through a Resend-compatible
// HTTP API (POST {base}/emails with a bearer key).
type EmailNotifier struct {
	client  *http.Client
	baseURL string
	apiKey  string
	from    string
	appURL  string
}

func NewEmailNotifier(baseURL, apiKey, from, appURL string) *EmailNotifier {
	return &EmailNotifier{
		client:  &http.Client{Timeout: sendTimeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		appURL:  appURL,
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

// SendConfirmation delivers the confirmation email and returns the
// provider-assigned message id. One attempt, no retry.
func (n *EmailNotifier) SendConfirmation(ctx context.Context, seminar models.Seminar, registration models.Registration) (string, error) {
	if n.apiKey == "" {
		return "", fmt.Errorf("email api key is empty")
	}

	payload := sendEmailRequest{
		From:    n.from,
		To:      []string{registration.Email},
		Subject: fmt.Sprintf("Registration confirmed: %s", seminar.Title),
		HTML:    confirmationBody(seminar, registration, n.appURL),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("email provider returned %s", resp.Status)
	}

	var out sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode email response: %w", err)
	}
	return out.ID, nil
}

func (n *EmailNotifier) NotifyRegistration(seminar models.Seminar, registration models.Registration) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	id, err := n.SendConfirmation(ctx, seminar, registration)
	if err != nil {
		log.Printf("Failed to send confirmation email to %s: %v", registration.Email, err)
		return err
	}

	log.Printf("Confirmation email %s sent to %s", id, registration.Email)
	return nil
}

func confirmationBody(seminar models.Seminar, registration models.Registration, appURL string) string {
	return fmt.Sprintf(`<h2>Registration confirmed</h2>
<p>Hello <strong>%s</strong>,</p>
<p>Thank you for registering. Your seat is confirmed.</p>
<table>
<tr><td><strong>Seminar:</strong></td><td>%s</td></tr>
<tr><td><strong>Date:</strong></td><td>%s</td></tr>
<tr><td><strong>Time:</strong></td><td>%s</td></tr>
<tr><td><strong>Venue:</strong></td><td>%s</td></tr>
<tr><td><strong>Registration code:</strong></td><td><code>%s</code></td></tr>
</table>
<p>Keep the registration code for check-in at the venue.</p>
<p><a href="%s/check">Check your registration status</a></p>`,
		registration.Name,
		seminar.Title,
		seminar.Date.Format("2006-01-02"),
		seminar.TimeRange(),
		seminar.Venue,
		registration.ID,
		appURL,
	)
}
