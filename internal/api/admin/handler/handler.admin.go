// Package adminhdl - handler cho dashboard quản trị và danh sách khách hàng.
package adminhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	adminsvc "vela_commerce/internal/api/admin/service"
	basehdl "vela_commerce/internal/api/base/handler"
)

// AdminHandler xử lý các route tổng quan của trang quản trị.
// Không embed BaseHandler: dashboard chỉ đọc số liệu tổng hợp.
type AdminHandler struct {
	DashboardService *adminsvc.DashboardService
}

// NewAdminHandler tạo mới AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	dashboardService, err := adminsvc.NewDashboardService()
	if err != nil {
		return nil, err
	}
	return &AdminHandler{DashboardService: dashboardService}, nil
}

// HandleDashboard trả về số liệu tổng quan. Query days giới hạn cửa sổ
// doanh thu theo ngày (mặc định 30).
func (h *AdminHandler) HandleDashboard(c fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days"))
	dashboard, err := h.DashboardService.GetDashboard(c.Context(), days)
	basehdl.HandleResponse(c, dashboard, err)
	return nil
}

// HandleListCustomers danh sách khách hàng kèm số đơn và tổng chi tiêu.
// Query params: search, role, status, page, limit.
func (h *AdminHandler) HandleListCustomers(c fiber.Ctx) error {
	page, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	result, err := h.DashboardService.ListCustomers(c.Context(), &adminsvc.CustomerListQuery{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	basehdl.HandleResponse(c, result, err)
	return nil
}
