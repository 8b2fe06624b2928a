package handler_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/handler"
	mocks "github.com/KIBUTI-SOFTWARE/swahili-api/internal/handler/mocks"
)

const testWebhookSecret = "super-secret"

func newWebhookRouter(svc *mocks.MockWebhookService) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewWebhookHandler(logger, svc, testWebhookSecret)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestWebhookHandler_HandleZenopay(t *testing.T) {
	validPayload := []byte(`{"order_id":"tx-123","payment_status":"COMPLETED","reference":"REF-1"}`)

	testCases := []struct {
		name         string
		payload      []byte
		secret       string
		mockBehavior func(svc *mocks.MockWebhookService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "processed",
			payload: validPayload,
			secret:  testWebhookSecret,
			mockBehavior: func(svc *mocks.MockWebhookService) {
				svc.EXPECT().
					HandleCallback(mock.Anything, validPayload, entities.PaymentCallback{
						OrderID:       "tx-123",
						PaymentStatus: "COMPLETED",
						Reference:     "REF-1",
					}).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"received":true`,
		},
		{
			name:         "wrong secret",
			payload:      validPayload,
			secret:       "guess",
			mockBehavior: func(svc *mocks.MockWebhookService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"Invalid webhook credentials"`,
		},
		{
			name:         "missing secret",
			payload:      validPayload,
			secret:       "",
			mockBehavior: func(svc *mocks.MockWebhookService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "malformed payload",
			payload:      []byte(`not-json`),
			secret:       testWebhookSecret,
			mockBehavior: func(svc *mocks.MockWebhookService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Invalid payload"`,
		},
		{
			name:         "missing required fields",
			payload:      []byte(`{"reference":"REF-1"}`),
			secret:       testWebhookSecret,
			mockBehavior: func(svc *mocks.MockWebhookService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:    "unknown transaction",
			payload: validPayload,
			secret:  testWebhookSecret,
			mockBehavior: func(svc *mocks.MockWebhookService) {
				svc.EXPECT().
					HandleCallback(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"Order not found"`,
		},
		{
			name:    "processing error",
			payload: validPayload,
			secret:  testWebhookSecret,
			mockBehavior: func(svc *mocks.MockWebhookService) {
				svc.EXPECT().
					HandleCallback(mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Webhook processing failed"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWebhookService(t)
			tc.mockBehavior(svc)

			r := newWebhookRouter(svc)
			req := httptest.NewRequest(http.MethodPost, "/webhooks/zenopay", bytes.NewReader(tc.payload))
			if tc.secret != "" {
				req.Header.Set("X-Api-Key", tc.secret)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestWebhookHandler_Liveness(t *testing.T) {
	svc := mocks.NewMockWebhookService(t)
	r := newWebhookRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/webhooks/zenopay", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "Zenopay webhook endpoint is working")
}
