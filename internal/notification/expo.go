package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/config"
)

// ExpoClient sends push messages through the Expo push API.
type ExpoClient struct {
	client  *http.Client
	pushURL string
}

func NewExpoClient(cfg config.Expo) *ExpoClient {
	return &ExpoClient{
		client:  &http.Client{Timeout: cfg.Timeout},
		pushURL: cfg.PushURL,
	}
}

type pushMessage struct {
	To    string         `json:"to"`
	Body  string         `json:"body"`
	Sound string         `json:"sound"`
	Data  map[string]any `json:"data,omitempty"`
}

func (c *ExpoClient) SendPush(ctx context.Context, token, message string) error {
	payload := pushMessage{
		To:    token,
		Body:  message,
		Sound: "default",
		Data:  map[string]any{"type": "order"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pushURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return nil
}
