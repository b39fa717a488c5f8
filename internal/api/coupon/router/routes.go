// Package router đăng ký các route thuộc domain coupon.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	couponhdl "vela_commerce/internal/api/coupon/handler"
	apirouter "vela_commerce/internal/api/router"
)

// Register đăng ký các route coupon lên v1. Validate công khai cho giỏ hàng,
// toàn bộ CRUD yêu cầu admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	couponHandler, err := couponhdl.NewCouponHandler()
	if err != nil {
		return fmt.Errorf("failed to create coupon handler: %w", err)
	}

	v1.Post("/coupons/validate", couponHandler.HandleValidate)

	r.RegisterCRUDRoutes(v1, "/coupons", couponHandler, apirouter.AdminCRUDConfig)
	return nil
}
