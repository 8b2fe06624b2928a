package handler_test

import (
	"bytes"
	"encoding/json"
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

func newRouter(svc *mocks.MockOrderService) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewOrderHandler(logger, svc)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func authedRequest(method, target string, body []byte, userID, role string) *http.Request {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
		req.Header.Set("X-User-Role", role)
	}
	return req
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	validBody := []byte(`{
		"productId": "prod-1",
		"quantity": 2,
		"paymentMethod": "mobile_money",
		"shippingAddress": {
			"street": "Uhuru St", "city": "Dar es Salaam", "state": "DSM",
			"zipCode": "11101", "country": "TZ", "phone": "+255700000001"
		}
	}`)

	testCases := []struct {
		name         string
		body         []byte
		userID       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			body:   validBody,
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(in entities.CreateOrderInput) bool {
						return in.UserID == "user-1" && in.ProductID == "prod-1" && in.Quantity == 2
					})).
					Return(entities.Order{ID: "order-1", OrderNumber: "ORD1"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"orderNumber":"ORD1"`,
		},
		{
			name:         "missing auth headers",
			body:         validBody,
			userID:       "",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"Authentication required"`,
		},
		{
			name:         "missing fields",
			body:         []byte(`{"quantity": 2}`),
			userID:       "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "insufficient stock",
			body:   validBody,
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.InsufficientStockError{Available: 1}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"only 1 items available in stock"`,
		},
		{
			name:   "payment declined",
			body:   validBody,
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrPaymentFailed).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Payment could not be processed"`,
		},
		{
			name:   "product not found",
			body:   validBody,
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newRouter(svc)
			req := authedRequest(http.MethodPost, "/orders", tc.body, tc.userID, "BUYER")
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

func TestOrderHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "order-1", entities.Actor{ID: "user-1", Role: entities.RoleBuyer}).
					Return(entities.Order{ID: "order-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"order-1"`,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "order-1", mock.Anything).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "forbidden",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "order-1", mock.Anything).
					Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "order-1", mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newRouter(svc)
			req := authedRequest(http.MethodGet, "/orders/order-1", nil, "user-1", "BUYER")
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

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         []byte
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: []byte(`{"status": "processing"}`),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "order-1", entities.Actor{ID: "shop-1", Role: entities.RoleShop}, entities.StatusProcessing).
					Return(entities.Order{ID: "order-1", Status: entities.StatusProcessing}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"processing"`,
		},
		{
			name: "invalid transition",
			body: []byte(`{"status": "delivered"}`),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "order-1", mock.Anything, entities.StatusDelivered).
					Return(entities.Order{}, entities.InvalidTransitionError{
						From: entities.StatusPending, To: entities.StatusDelivered,
					}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid status transition from pending to delivered"`,
		},
		{
			name: "concurrent update",
			body: []byte(`{"status": "processing"}`),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "order-1", mock.Anything, entities.StatusProcessing).
					Return(entities.Order{}, entities.ErrOrderConflict).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "empty body",
			body:         []byte(`{}`),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newRouter(svc)
			req := authedRequest(http.MethodPatch, "/orders/order-1/status", tc.body, "shop-1", "SHOP")
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

func TestOrderHandler_GetOrderStatuses(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	r := newRouter(svc)

	req := authedRequest(http.MethodGet, "/orders/statuses", nil, "user-1", "BUYER")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Data map[string]struct {
			Description          string   `json:"description"`
			NextPossibleStatuses []string `json:"nextPossibleStatuses"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))

	assert.Len(t, resp.Data, 6)
	assert.ElementsMatch(t, []string{"processing", "cancelled"}, resp.Data["pending"].NextPossibleStatuses)
	assert.Empty(t, resp.Data["pending_payment"].NextPossibleStatuses)
	assert.Empty(t, resp.Data["delivered"].NextPossibleStatuses)
}

func TestOrderHandler_GetMyOrders(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().
		ListUserOrders(mock.Anything, entities.Actor{ID: "user-1", Role: entities.RoleBuyer}, entities.OrderFilter{
			Status: entities.StatusPending, Page: 2, Limit: 5,
		}).
		Return([]entities.Order{{ID: "order-1"}}, 11, nil).Once()

	r := newRouter(svc)
	req := authedRequest(http.MethodGet, "/orders/my-orders?status=pending&page=2&limit=5", nil, "user-1", "BUYER")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"totalRecords":11`)
	assert.Contains(t, string(body), `"current":2`)
	assert.Contains(t, string(body), `"total":3`)
}

func TestOrderHandler_UpdatePaymentStatus(t *testing.T) {
	body := []byte(`{"paymentStatus": "completed", "transactionId": "tx-1"}`)

	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().
		UpdatePaymentStatus(mock.Anything, "order-1", entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}, entities.PaymentOverride{
			Status:        entities.PaymentCompleted,
			TransactionID: "tx-1",
		}).
		Return(entities.Order{ID: "order-1", PaymentStatus: entities.PaymentCompleted}, nil).Once()

	r := newRouter(svc)
	req := authedRequest(http.MethodPatch, "/orders/order-1/payment-status", body, "admin-1", "ADMIN")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(respBody), `"paymentStatus":"completed"`)
}
