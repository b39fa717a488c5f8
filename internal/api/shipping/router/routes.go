// Package router đăng ký các route thuộc domain shipping.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vela_commerce/internal/api/middleware"
	apirouter "vela_commerce/internal/api/router"
	shippinghdl "vela_commerce/internal/api/shipping/handler"
)

// Register đăng ký các route shipping lên v1. Danh sách zone và báo giá
// công khai cho storefront, quản trị zone/rate yêu cầu admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	zoneHandler, err := shippinghdl.NewZoneHandler()
	if err != nil {
		return fmt.Errorf("failed to create zone handler: %w", err)
	}
	rateHandler, err := shippinghdl.NewRateHandler()
	if err != nil {
		return fmt.Errorf("failed to create rate handler: %w", err)
	}

	v1.Post("/shipping/quote", zoneHandler.HandleQuote)
	v1.Get("/shipping-zones/:id/rates", zoneHandler.HandleListZoneRates)

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/shipping-zones", "POST", "/:id/set-default", adminChain, zoneHandler.HandleSetDefault)

	r.RegisterCRUDRoutes(v1, "/shipping-zones", zoneHandler, apirouter.CatalogCRUDConfig)
	r.RegisterCRUDRoutes(v1, "/shipping-rates", rateHandler, apirouter.AdminCRUDConfig)
	return nil
}
