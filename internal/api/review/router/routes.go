// Package router đăng ký các route thuộc domain review.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vela_commerce/internal/api/middleware"
	reviewhdl "vela_commerce/internal/api/review/handler"
	apirouter "vela_commerce/internal/api/router"
)

// Register đăng ký các route review lên v1. Đọc công khai theo sản phẩm,
// tạo/sửa/xóa yêu cầu đăng nhập (sửa/xóa chỉ chủ đánh giá hoặc admin).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reviewHandler, err := reviewhdl.NewReviewHandler()
	if err != nil {
		return fmt.Errorf("failed to create review handler: %w", err)
	}

	v1.Get("/products/:id/reviews", reviewHandler.HandleListByProduct)

	authOnly := middleware.RequireAuth()
	apirouter.RegisterRouteWithMiddleware(v1, "/reviews", "POST", "/", []fiber.Handler{authOnly}, reviewHandler.HandleCreateReview)
	apirouter.RegisterRouteWithMiddleware(v1, "/reviews", "PUT", "/:id", []fiber.Handler{authOnly}, reviewHandler.HandleUpdateReview)
	apirouter.RegisterRouteWithMiddleware(v1, "/reviews", "DELETE", "/:id", []fiber.Handler{authOnly}, reviewHandler.HandleDeleteReview)

	// Admin có thêm bộ CRUD đầy đủ để quản trị đánh giá
	r.RegisterCRUDRoutes(v1, "/reviews", reviewHandler, apirouter.AdminCRUDConfig)
	return nil
}
