// Package router đăng ký các route thuộc domain settings.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vela_commerce/internal/api/middleware"
	apirouter "vela_commerce/internal/api/router"
	settingshdl "vela_commerce/internal/api/settings/handler"
)

// Register đăng ký các route settings lên v1. Đọc công khai, sửa yêu cầu admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	settingsHandler, err := settingshdl.NewSettingsHandler()
	if err != nil {
		return fmt.Errorf("failed to create settings handler: %w", err)
	}

	v1.Get("/settings", settingsHandler.HandleGetSettings)

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/settings", "PUT", "/", adminChain, settingsHandler.HandleUpdateSettings)
	return nil
}
