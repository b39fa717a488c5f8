// Package orderhdl - handler cho domain order.
package orderhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "vela_commerce/internal/api/auth/models"
	basehdl "vela_commerce/internal/api/base/handler"
	orderdto "vela_commerce/internal/api/order/dto"
	models "vela_commerce/internal/api/order/models"
	ordersvc "vela_commerce/internal/api/order/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/logger"
)

// OrderHandler xử lý các route đơn hàng phía storefront:
// báo giá, đặt đơn, xác nhận thanh toán, tra cứu.
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.PlaceOrderInput, orderdto.SetStatusInput]
	OrderService *ordersvc.OrderService
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	return &OrderHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Order, orderdto.PlaceOrderInput, orderdto.SetStatusInput](orderService),
		OrderService: orderService,
	}, nil
}

// HandleQuote báo giá giỏ hàng, không tạo đơn (public)
func (h *OrderHandler) HandleQuote(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(orderdto.QuoteInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		quote, err := h.OrderService.QuoteOrder(c.Context(), input)
		h.HandleResponse(c, quote, err)
		return nil
	})
}

// HandlePlaceOrder đặt đơn. Người dùng đăng nhập gắn đơn với tài khoản,
// khách vãng lai nhận định danh guest và tra cứu bằng mã đơn + email.
func (h *OrderHandler) HandlePlaceOrder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(orderdto.PlaceOrderInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var user *authmodels.User
		if u, ok := c.Locals("user").(authmodels.User); ok {
			user = &u
		}

		order, err := h.OrderService.PlaceOrder(c.Context(), user, input)
		if err == nil {
			logger.LogOrder("place", order.OrderNumber, c, map[string]interface{}{
				"total":   order.Amounts.Total,
				"isGuest": order.IsGuest,
				"method":  order.Payment.Method,
			})
		}
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleConfirmPayment xác nhận thanh toán với chữ ký từ gateway (public)
func (h *OrderHandler) HandleConfirmPayment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(orderdto.ConfirmPaymentInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.OrderService.ConfirmPayment(c.Context(), input)
		if err == nil {
			logger.LogOrder("payment_confirmed", order.OrderNumber, c, map[string]interface{}{
				"intentId": input.IntentID,
			})
		}
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleMyOrders trả về đơn của người dùng đang đăng nhập, mới nhất trước
func (h *OrderHandler) HandleMyOrders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}
		page := parseQueryInt64(c, "page")
		limit := parseQueryInt64(c, "limit")
		result, err := h.OrderService.MyOrders(c.Context(), user.ID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetByNumber trả về đơn theo mã, chỉ chủ đơn hoặc admin
func (h *OrderHandler) HandleGetByNumber(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}
		order, err := h.OrderService.FindForUser(c.Context(), user, c.Params("number"))
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleGuestLookup tra cứu đơn của khách vãng lai theo mã đơn + email (public)
func (h *OrderHandler) HandleGuestLookup(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(orderdto.GuestLookupInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		order, err := h.OrderService.GuestLookup(c.Context(), input.OrderNumber, input.Email)
		h.HandleResponse(c, order, err)
		return nil
	})
}

func (h *OrderHandler) parseOrderID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID đơn hàng không đúng định dạng MongoDB ObjectID",
			common.StatusBadRequest,
			nil,
		)
	}
	objID, _ := primitive.ObjectIDFromHex(id)
	return objID, nil
}

func parseQueryInt64(c fiber.Ctx, key string) int64 {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
