package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/middleware"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/utils"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	ListUserOrders(ctx context.Context, actor entities.Actor, f entities.OrderFilter) ([]entities.Order, int, error)
	ListShopOrders(ctx context.Context, actor entities.Actor, f entities.OrderFilter) ([]entities.Order, int, error)
	UpdateOrderStatus(ctx context.Context, orderID string, actor entities.Actor, newStatus entities.OrderStatus) (entities.Order, error)
	CheckPaymentStatus(ctx context.Context, orderID string, actor entities.Actor) (entities.PaymentStatusInfo, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, actor entities.Actor, in entities.PaymentOverride) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	service  OrderService
}

func NewOrderHandler(logger *slog.Logger, service OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("component", "order_handler")),
		validate: validator.New(),
		service:  service,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(middleware.Auth)
		r.Post("/", h.CreateOrder)
		r.Get("/my-orders", h.GetMyOrders)
		r.Get("/shop", h.GetShopOrders)
		r.Get("/statuses", h.GetOrderStatuses)
		r.Get("/{orderId}", h.GetOrderByID)
		r.Patch("/{orderId}/status", h.UpdateOrderStatus)
		r.Get("/{orderId}/payment-status", h.CheckPaymentStatus)
		r.Patch("/{orderId}/payment-status", h.UpdatePaymentStatus)
	})
}

// CreateOrder godoc
// @Summary Place a new order
// @Description Validates the request, charges mobile money up front and reserves stock.
// @Tags orders
// @Accept json
// @Produce json
// @Param input body CreateOrderRequest true "Order to place"
// @Success 201 {object} utils.Response{data=Order}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), entities.CreateOrderInput{
		UserID:          actor.ID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		ShippingAddress: ShippingAddressToEntity(req.ShippingAddress),
		PaymentMethod:   entities.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	ordersCreated.Inc()
	utils.WriteSuccess(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID godoc
// @Summary Get a single order
// @Tags orders
// @Produce json
// @Param orderId path string true "Order id"
// @Success 200 {object} utils.Response{data=Order}
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /orders/{orderId} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), chi.URLParam(r, "orderId"), actor)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetMyOrders godoc
// @Summary List the caller's orders
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by order status"
// @Param paymentStatus query string false "Filter by payment status"
// @Success 200 {object} utils.Response{data=[]Order}
// @Router /orders/my-orders [get]
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, h.service.ListUserOrders)
}

// GetShopOrders godoc
// @Summary List orders placed against the caller's shop
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by order status"
// @Param paymentStatus query string false "Filter by payment status"
// @Success 200 {object} utils.Response{data=[]Order}
// @Router /orders/shop [get]
func (h *OrderHandler) GetShopOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, h.service.ListShopOrders)
}

func (h *OrderHandler) listOrders(
	w http.ResponseWriter,
	r *http.Request,
	list func(context.Context, entities.Actor, entities.OrderFilter) ([]entities.Order, int, error),
) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	filter := filterFromQuery(r)
	orders, total, err := list(r.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, map[string]any{
		"orders":     OrdersEntityToJSON(orders),
		"pagination": paginationFor(filter, total),
	}, http.StatusOK)
}

// GetOrderStatuses godoc
// @Summary Describe the order lifecycle
// @Tags orders
// @Produce json
// @Success 200 {object} utils.Response{data=map[string]StatusInfo}
// @Router /orders/statuses [get]
func (h *OrderHandler) GetOrderStatuses(w http.ResponseWriter, r *http.Request) {
	statuses := make(map[string]StatusInfo)
	for _, s := range entities.OrderStatuses() {
		next := make([]string, 0, len(s.NextStatuses()))
		for _, n := range s.NextStatuses() {
			next = append(next, string(n))
		}
		statuses[string(s)] = StatusInfo{
			Description:          s.Description(),
			NextPossibleStatuses: next,
		}
	}
	utils.WriteSuccess(w, statuses, http.StatusOK)
}

// UpdateOrderStatus godoc
// @Summary Move an order along the fulfillment lifecycle
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path string true "Order id"
// @Param input body UpdateStatusRequest true "Target status"
// @Success 200 {object} utils.Response{data=Order}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /orders/{orderId}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.service.UpdateOrderStatus(r.Context(), chi.URLParam(r, "orderId"), actor, entities.OrderStatus(req.Status))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	statusTransitions.WithLabelValues(req.Status).Inc()
	utils.WriteSuccess(w, OrderEntityToJSON(order), http.StatusOK)
}

// CheckPaymentStatus godoc
// @Summary Query the payment gateway for the order's current payment state
// @Tags orders
// @Produce json
// @Param orderId path string true "Order id"
// @Success 200 {object} utils.Response{data=PaymentStatusInfo}
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /orders/{orderId}/payment-status [get]
func (h *OrderHandler) CheckPaymentStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	info, err := h.service.CheckPaymentStatus(r.Context(), chi.URLParam(r, "orderId"), actor)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp := PaymentStatusInfo{
		PaymentStatus: string(info.PaymentStatus),
		TransactionID: info.TransactionID,
	}
	if info.Details.Status != "" || info.Details.TransactionID != "" {
		resp.PaymentDetails = PaymentDetailsEntityToJSON(info.Details)
	}
	utils.WriteSuccess(w, resp, http.StatusOK)
}

// UpdatePaymentStatus godoc
// @Summary Administratively override an order's payment status
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path string true "Order id"
// @Param input body UpdatePaymentStatusRequest true "Override"
// @Success 200 {object} utils.Response{data=Order}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /orders/{orderId}/payment-status [patch]
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdatePaymentStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.service.UpdatePaymentStatus(r.Context(), chi.URLParam(r, "orderId"), actor, entities.PaymentOverride{
		Status:           entities.PaymentStatus(req.PaymentStatus),
		TransactionID:    req.TransactionID,
		Message:          req.PaymentDetails.Message,
		PaymentReference: req.PaymentDetails.PaymentReference,
		FailureReason:    req.PaymentDetails.FailureReason,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var stockErr entities.InsufficientStockError
	var transitionErr entities.InvalidTransitionError

	switch {
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, http.StatusForbidden, "You are not allowed to perform this action")
	case errors.Is(err, entities.ErrOrderConflict):
		utils.WriteError(w, http.StatusConflict, "Order was modified concurrently, please retry")
	case errors.As(err, &stockErr):
		utils.WriteError(w, http.StatusBadRequest, stockErr.Error())
	case errors.As(err, &transitionErr):
		utils.WriteError(w, http.StatusBadRequest, transitionErr.Error())
	case errors.Is(err, entities.ErrPaymentFailed):
		utils.WriteError(w, http.StatusBadRequest, "Payment could not be processed")
	case errors.Is(err, entities.ErrInvalidOrder):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func filterFromQuery(r *http.Request) entities.OrderFilter {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return entities.OrderFilter{
		Status:        entities.OrderStatus(q.Get("status")),
		PaymentStatus: entities.PaymentStatus(q.Get("paymentStatus")),
		Page:          page,
		Limit:         limit,
	}
}

func paginationFor(f entities.OrderFilter, total int) Pagination {
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}
	pages := (total + limit - 1) / limit
	return Pagination{Current: page, Total: pages, TotalRecords: total}
}
