// Package couponhdl - handler cho domain coupon.
package couponhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "vela_commerce/internal/api/base/handler"
	coupondto "vela_commerce/internal/api/coupon/dto"
	models "vela_commerce/internal/api/coupon/models"
	couponsvc "vela_commerce/internal/api/coupon/service"
)

// CouponHandler xử lý các route mã giảm giá: CRUD admin qua BaseHandler,
// endpoint validate công khai cho giỏ hàng storefront.
type CouponHandler struct {
	*basehdl.BaseHandler[models.Coupon, coupondto.CouponCreateInput, coupondto.CouponUpdateInput]
	CouponService *couponsvc.CouponService
}

// NewCouponHandler tạo mới CouponHandler
func NewCouponHandler() (*CouponHandler, error) {
	couponService, err := couponsvc.NewCouponService()
	if err != nil {
		return nil, fmt.Errorf("failed to create coupon service: %v", err)
	}
	return &CouponHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Coupon, coupondto.CouponCreateInput, coupondto.CouponUpdateInput](couponService),
		CouponService: couponService,
	}, nil
}

// HandleValidate kiểm tra mã cho subtotal của giỏ hàng, trả về số tiền giảm
func (h *CouponHandler) HandleValidate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(coupondto.CouponValidateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		coupon, discount, err := h.CouponService.ValidateCoupon(c.Context(), input.Code, input.Subtotal)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{
			"code":     coupon.Code,
			"type":     coupon.Type,
			"value":    coupon.Value,
			"discount": discount,
		}, nil)
		return nil
	})
}
