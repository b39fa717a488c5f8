// Package router đăng ký các route thuộc domain admin (dashboard, khách hàng).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	adminhdl "vela_commerce/internal/api/admin/handler"
	"vela_commerce/internal/api/middleware"
	apirouter "vela_commerce/internal/api/router"
)

// Register đăng ký các route quản trị lên v1, toàn bộ yêu cầu admin
func Register(v1 fiber.Router, r *apirouter.Router) error {
	adminHandler, err := adminhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/dashboard", adminChain, adminHandler.HandleDashboard)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/customers", adminChain, adminHandler.HandleListCustomers)
	return nil
}
