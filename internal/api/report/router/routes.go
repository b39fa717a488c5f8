// Package router đăng ký các route thuộc domain report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vela_commerce/internal/api/middleware"
	reporthdl "vela_commerce/internal/api/report/handler"
	apirouter "vela_commerce/internal/api/router"
)

// Register đăng ký các route báo cáo lên v1, toàn bộ yêu cầu admin
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %w", err)
	}

	// Đăng ký invalidation: đơn hàng thay đổi thì báo cáo trùm thời điểm
	// đó được đánh dấu cần tính lại
	reportHandler.ReportService.RegisterInvalidation()

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/reports", "POST", "/generate", adminChain, reportHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/reports", "GET", "/", adminChain, reportHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/reports", "GET", "/:id", adminChain, reportHandler.HandleGet)
	return nil
}
