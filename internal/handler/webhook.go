package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/utils"
)

const webhookSecretHeader = "X-Api-Key"

// maxWebhookBody caps callback payloads; gateway payloads are tiny.
const maxWebhookBody = 1 << 16

type WebhookService interface {
	HandleCallback(ctx context.Context, raw []byte, cb entities.PaymentCallback) error
}

type WebhookHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	service  WebhookService
	secret   string
}

func NewWebhookHandler(logger *slog.Logger, service WebhookService, secret string) *WebhookHandler {
	return &WebhookHandler{
		logger:   logger.With(slog.String("component", "webhook_handler")),
		validate: validator.New(),
		service:  service,
		secret:   secret,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Route("/webhooks", func(r chi.Router) {
		r.Get("/zenopay", h.Liveness)
		r.Post("/zenopay", h.HandleZenopay)
	})
}

// Liveness lets the gateway dashboard verify the callback URL is reachable.
func (h *WebhookHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "Zenopay webhook endpoint is working"}, http.StatusOK)
}

// HandleZenopay godoc
// @Summary Payment gateway callback
// @Description Settles an order's payment exactly once based on the gateway verdict.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /webhooks/zenopay [post]
func (h *WebhookHandler) HandleZenopay(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		webhooksReceived.WithLabelValues("unauthorized").Inc()
		utils.WriteJSON(w, map[string]string{"error": "Invalid webhook credentials"}, http.StatusUnauthorized)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.WriteJSON(w, map[string]string{"error": "Unreadable body"}, http.StatusBadRequest)
		return
	}

	var payload WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		webhooksReceived.WithLabelValues("malformed").Inc()
		utils.WriteJSON(w, map[string]string{"error": "Invalid payload"}, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		webhooksReceived.WithLabelValues("malformed").Inc()
		utils.WriteJSON(w, map[string]string{"error": "Invalid payload"}, http.StatusBadRequest)
		return
	}

	err = h.service.HandleCallback(r.Context(), raw, WebhookPayloadToEntity(payload))
	switch {
	case err == nil:
		webhooksReceived.WithLabelValues("processed").Inc()
		utils.WriteJSON(w, map[string]bool{"received": true}, http.StatusOK)
	case errors.Is(err, entities.ErrOrderNotFound):
		webhooksReceived.WithLabelValues("order_not_found").Inc()
		utils.WriteJSON(w, map[string]string{"error": "Order not found"}, http.StatusNotFound)
	default:
		webhooksReceived.WithLabelValues("error").Inc()
		h.logger.Error("webhook processing failed",
			slog.String("transaction_id", payload.OrderID),
			slog.String("error", err.Error()),
		)
		utils.WriteJSON(w, map[string]string{"error": "Webhook processing failed"}, http.StatusBadRequest)
	}
}

func (h *WebhookHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return true
	}
	got := r.Header.Get(webhookSecretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) == 1
}
