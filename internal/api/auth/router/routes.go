// Package router đăng ký các route thuộc domain auth: System, Auth, Admin user.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "vela_commerce/internal/api/auth/handler"
	basehdl "vela_commerce/internal/api/base/handler"
	"vela_commerce/internal/api/middleware"
	apirouter "vela_commerce/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, admin user) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	return registerAdminUserRoutes(v1)
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler := basehdl.NewSystemHandler()
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	authOnly := middleware.RequireAuth()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnly}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnly}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/change-password", []fiber.Handler{authOnly}, userHandler.HandleChangePassword)
	return nil
}

func registerAdminUserRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(router, "/admin/users", "GET", "/", adminChain, userHandler.HandleAdminListUsers)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/users", "POST", "/:id/role", adminChain, userHandler.HandleAdminSetRole)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/users", "POST", "/:id/ban", adminChain, userHandler.HandleAdminBanUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/users", "POST", "/:id/unban", adminChain, userHandler.HandleAdminUnbanUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/users", "POST", "/:id/status", adminChain, userHandler.HandleAdminSetStatus)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/users", "DELETE", "/:id", adminChain, userHandler.HandleAdminDeleteUser)
	return nil
}
