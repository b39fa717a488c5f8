// Package router đăng ký các route thuộc domain order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vela_commerce/internal/api/middleware"
	orderhdl "vela_commerce/internal/api/order/handler"
	apirouter "vela_commerce/internal/api/router"
)

// Register đăng ký các route order lên v1. Báo giá và đặt đơn nhận cả
// khách vãng lai (OptionalAuth), tra cứu theo tài khoản yêu cầu đăng nhập,
// các thao tác quản trị yêu cầu admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	optionalAuth := middleware.OptionalAuth()
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/quote", []fiber.Handler{optionalAuth}, orderHandler.HandleQuote)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/", []fiber.Handler{optionalAuth}, orderHandler.HandlePlaceOrder)

	v1.Post("/orders/confirm-payment", orderHandler.HandleConfirmPayment)
	v1.Post("/orders/guest-lookup", orderHandler.HandleGuestLookup)

	authOnly := middleware.RequireAuth()
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/my", []fiber.Handler{authOnly}, orderHandler.HandleMyOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/number/:number", []fiber.Handler{authOnly}, orderHandler.HandleGetByNumber)

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "GET", "/", adminChain, orderHandler.HandleAdminListOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "POST", "/:id/status", adminChain, orderHandler.HandleAdminSetStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "POST", "/:id/tracking", adminChain, orderHandler.HandleAdminSetTracking)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "POST", "/:id/notes", adminChain, orderHandler.HandleAdminAddNote)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "POST", "/:id/cancel", adminChain, orderHandler.HandleAdminCancel)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "POST", "/:id/refund", adminChain, orderHandler.HandleAdminRefund)

	return nil
}
