package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NotificationSender delivers a plain-text notification to a list of
// recipients. Implementations must not mutate catalog state.
type NotificationSender interface {
	Send(ctx context.Context, subject, body, from string, to []string) error
}

// NotificationClient sends notifications through notification-service over
// HTTP.
type NotificationClient struct {
	baseURL    string
	httpClient *http.Client
}

// notificationRequest is the API request format for notification-service
type notificationRequest struct {
	To      []string `json:"to"`
	From    string   `json:"from"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// NewNotificationClient creates a client for the given notification-service
// base URL.
func NewNotificationClient(baseURL string) *NotificationClient {
	return &NotificationClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send posts a notification to notification-service. A non-2xx response is an
// error; the caller decides whether that is fatal.
func (c *NotificationClient) Send(ctx context.Context, subject, body, from string, to []string) error {
	payload, err := json.Marshal(&notificationRequest{
		To:      to,
		From:    from,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/notifications/send", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Internal-Service", "catalog-service")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	return nil
}
