package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart and coupon handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// CartActionRequest represents the request body for the cart mutation endpoint
type CartActionRequest struct {
	Action    string  `json:"action" validate:"required,oneof=add update remove"`
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Quantity  float64 `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

// ApplyCouponRequest represents the request body for applying a coupon
type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// GetCart handles retrieving the session cart with computed totals
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.GetCart(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}

// MutateCart handles add, update and remove cart actions
func (h *CartHandler) MutateCart(c echo.Context) error {
	var req CartActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CartActionInput{
		SessionID: deliverycontext.GetSessionID(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	}

	var view *usecase.CartView
	var err error

	switch req.Action {
	case "add":
		view, err = h.cartUC.Add(c.Request().Context(), input)
	case "update":
		view, err = h.cartUC.Update(c.Request().Context(), input)
	case "remove":
		view, err = h.cartUC.Remove(c.Request().Context(), input)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Cart updated successfully")
}

// ApplyCoupon handles applying a coupon code to the session
func (h *CartHandler) ApplyCoupon(c echo.Context) error {
	var req ApplyCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.cartUC.ApplyCoupon(c.Request().Context(), deliverycontext.GetSessionID(c), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Coupon applied successfully")
}
