package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/config"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"

	"github.com/google/uuid"
)

const (
	initiatePath = "/api/payments/mobile_money_tanzania"
	statusPath   = "/api/payments/order-status"
)

// ZenopayClient talks to the Zenopay mobile-money processor. Initiation is
// synchronous; the final payment outcome arrives later through the webhook.
type ZenopayClient struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewZenopayClient(logger *slog.Logger, cfg config.Zenopay) *ZenopayClient {
	return &ZenopayClient{
		logger:  logger.With(slog.String("gateway", "zenopay")),
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

type initiateRequest struct {
	OrderID    string  `json:"order_id"`
	BuyerName  string  `json:"buyer_name"`
	BuyerEmail string  `json:"buyer_email"`
	BuyerPhone string  `json:"buyer_phone"`
	Amount     float64 `json:"amount"`
}

type initiateResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

// Initiate pushes a charge to the buyer's phone. Any non-success response is
// a hard failure: the caller must not create an order for it.
func (c *ZenopayClient) Initiate(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
	payload := initiateRequest{
		OrderID:    uuid.NewString(),
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		BuyerPhone: req.BuyerPhone,
		Amount:     req.Amount,
	}

	var resp initiateResponse
	if err := c.post(ctx, initiatePath, payload, &resp); err != nil {
		return entities.ChargeResult{}, err
	}

	if resp.Status != "success" {
		c.logger.WarnContext(ctx, "charge declined",
			slog.String("status", resp.Status), slog.String("message", resp.Message))
		return entities.ChargeResult{}, fmt.Errorf("%w: %s", entities.ErrPaymentFailed, resp.Message)
	}

	transactionID := resp.OrderID
	if transactionID == "" {
		transactionID = payload.OrderID
	}

	return entities.ChargeResult{
		TransactionID: transactionID,
		Status:        resp.Status,
		Message:       resp.Message,
	}, nil
}

type statusResponse struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// QueryStatus returns the provider's live view of a transaction.
func (c *ZenopayClient) QueryStatus(ctx context.Context, transactionID string) (string, error) {
	u, err := url.Parse(c.baseURL + statusPath)
	if err != nil {
		return "", fmt.Errorf("invalid gateway url: %w", err)
	}
	q := u.Query()
	q.Set("order_id", transactionID)
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("x-api-key", c.apiKey)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway returned status %d", httpResp.StatusCode)
	}

	var resp statusResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return resp.PaymentStatus, nil
}

func (c *ZenopayClient) post(ctx context.Context, path string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: gateway returned status %d", entities.ErrPaymentFailed, httpResp.StatusCode)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}
