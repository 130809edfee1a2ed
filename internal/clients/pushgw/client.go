// Package pushgw talks to the hosted edge function that fans a push
// notification out to every registered parent device of a team.
package pushgw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"express-hub/internal/models"

	"github.com/google/uuid"
)

const endpoint = "/functions/v1/send-push-notification"

var ErrInvalidResponse = errors.New("invalid response from push gateway")

// ServerError is returned for any non-200 answer. Message is the raw body.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

type Request struct {
	TeamID uuid.UUID               `json:"teamId"`
	Title  string                  `json:"title"`
	Body   string                  `json:"body"`
	Type   models.NotificationType `json:"type"`
	Badge  *int                    `json:"badge"`
	Data   map[string]any          `json:"data,omitempty"`
}

type response struct {
	Success bool    `json:"success"`
	Sent    int     `json:"sent"`
	Failed  int     `json:"failed"`
	Message *string `json:"message"`
}

type Client struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func New(baseURL, serviceKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts one notification and returns the number of devices reached.
// It never retries.
func (c *Client) Send(ctx context.Context, in Request) (int, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = "Unknown error"
		}
		return 0, &ServerError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return out.Sent, nil
}
