package orderhdl

import (
	"github.com/gofiber/fiber/v3"

	orderdto "vela_commerce/internal/api/order/dto"
	ordersvc "vela_commerce/internal/api/order/service"
	"vela_commerce/internal/logger"
)

// HandleAdminListOrders trả về danh sách đơn có lọc theo
// status/email/isGuest/khoảng thời gian (admin)
func (h *OrderHandler) HandleAdminListOrders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := ordersvc.AdminListFilter{
			Status:   c.Query("status"),
			Email:    c.Query("email"),
			FromDate: parseQueryInt64(c, "from"),
			ToDate:   parseQueryInt64(c, "to"),
		}
		if raw := c.Query("isGuest"); raw != "" {
			isGuest := raw == "true"
			filter.IsGuest = &isGuest
		}

		page := parseQueryInt64(c, "page")
		limit := parseQueryInt64(c, "limit")
		if limit <= 0 {
			limit = 20
		}

		result, err := h.OrderService.AdminList(c.Context(), filter, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAdminSetStatus đổi trạng thái đơn (admin)
func (h *OrderHandler) HandleAdminSetStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseOrderID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(orderdto.SetStatusInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.OrderService.SetStatus(c.Context(), id, input.Status)
		if err == nil {
			logger.LogAdmin("set_order_status", "order", id.Hex(), c, map[string]interface{}{"status": input.Status})
		}
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleAdminSetTracking gắn vận đơn (admin)
func (h *OrderHandler) HandleAdminSetTracking(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseOrderID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(orderdto.TrackingInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.OrderService.SetTracking(c.Context(), id, input)
		if err == nil {
			logger.LogAdmin("set_tracking", "order", id.Hex(), c, map[string]interface{}{
				"carrier": input.Carrier,
				"number":  input.Number,
			})
		}
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleAdminAddNote thêm ghi chú vào đơn (admin)
func (h *OrderHandler) HandleAdminAddNote(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseOrderID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(orderdto.NoteInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.OrderService.AddNote(c.Context(), id, input.Note)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleAdminCancel hủy đơn, hoàn tồn kho và lượt dùng coupon (admin)
func (h *OrderHandler) HandleAdminCancel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseOrderID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(orderdto.NoteInput)
		// Body rỗng hợp lệ - hủy không cần lý do
		_ = h.ParseRequestBody(c, input)

		order, err := h.OrderService.CancelOrder(c.Context(), id, input.Note)
		if err == nil {
			logger.LogAdmin("cancel_order", "order", id.Hex(), c, map[string]interface{}{"reason": input.Note})
		}
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleAdminRefund hoàn tiền cho đơn (admin)
func (h *OrderHandler) HandleAdminRefund(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseOrderID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(orderdto.RefundInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.OrderService.RefundOrder(c.Context(), id, input)
		if err == nil {
			logger.LogAdmin("refund_order", "order", id.Hex(), c, map[string]interface{}{
				"amount": input.Amount,
				"reason": input.Reason,
			})
		}
		h.HandleResponse(c, order, err)
		return nil
	})
}
