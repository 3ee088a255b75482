package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/service"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/port"
)

type CheckoutItem struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	UserID          string         `json:"user_id" binding:"required"`
	DeliveryAddress string         `json:"delivery_address" binding:"required"`
	Items           []CheckoutItem `json:"items" binding:"required,min=1"`
}

type ProcessPaymentRequest struct {
	Order   domain.Order          `json:"order" binding:"required"`
	Method  string                `json:"method" binding:"required"`
	Details domain.PaymentDetails `json:"details"`
}

type ProcessPaymentResponse struct {
	Code    service.PaymentOutcomeCode `json:"code"`
	Message string                     `json:"message"`
	Order   domain.Order               `json:"order"`
}

// OrderHandler is the HTTP surface of the application layer. The core itself
// is a library; each checkout request gets its own OrderPlacement.
type OrderHandler struct {
	menu       port.MenuRepository
	payment    port.PaymentCharger
	processing *service.PaymentProcessing
	events     port.EventPublisher
	logger     *zap.Logger
}

func NewOrderHandler(menu port.MenuRepository, payment port.PaymentCharger, processing *service.PaymentProcessing, events port.EventPublisher, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		menu:       menu,
		payment:    payment,
		processing: processing,
		events:     events,
		logger:     logger,
	}
}

func (h *OrderHandler) Register(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/checkout", h.Checkout)
		v1.POST("/payments", h.ProcessPayment)
	}
	router.GET("/health", h.HealthCheck)
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	user := domain.UserProfile{UserID: req.UserID, DeliveryAddress: req.DeliveryAddress}
	placement := service.NewOrderPlacement(user, h.menu, h.payment, h.logger)

	ctx := c.Request.Context()
	for _, item := range req.Items {
		if err := placement.AddItem(ctx, item.ItemID, item.Quantity); err != nil {
			c.JSON(checkoutErrorStatus(err), gin.H{"error": err.Error(), "item_id": item.ItemID})
			return
		}
	}

	result, err := placement.ConfirmOrder(ctx)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("checkout failed",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment service unavailable"})
		return
	}

	if result.Status != domain.ResultStatusSuccess {
		c.JSON(http.StatusPaymentRequired, result)
		return
	}

	if err := h.events.PublishOrderConfirmed(ctx, result.Order); err != nil {
		// The order is confirmed either way; downstream catches up later.
		h.logger.Warn("order confirmed but event publish failed",
			zap.String("order_id", result.Order.OrderID),
			zap.Error(err))
	}

	c.JSON(http.StatusCreated, result)
}

func (h *OrderHandler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	order, outcome := h.processing.ProcessPayment(c.Request.Context(), req.Order, req.Method, req.Details)

	resp := ProcessPaymentResponse{Code: outcome.Code, Message: outcome.Message, Order: order}
	switch outcome.Code {
	case service.PaymentOutcomeConfirmed:
		c.JSON(http.StatusOK, resp)
	case service.PaymentOutcomeInvalidMethod:
		c.JSON(http.StatusBadRequest, resp)
	default:
		c.JSON(http.StatusPaymentRequired, resp)
	}
}

func (h *OrderHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "order-service"})
}

func checkoutErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrItemUnavailable), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrEmptyCart) ||
		errors.Is(err, service.ErrItemUnavailable) ||
		errors.Is(err, domain.ErrItemNotFound)
}
