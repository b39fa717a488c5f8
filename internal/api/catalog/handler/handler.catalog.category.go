// Package cataloghdl - handler cho domain catalog.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "vela_commerce/internal/api/base/handler"
	catalogdto "vela_commerce/internal/api/catalog/dto"
	models "vela_commerce/internal/api/catalog/models"
	catalogsvc "vela_commerce/internal/api/catalog/service"
)

// CategoryHandler xử lý các route danh mục.
// CRUD đi qua BaseHandler, xóa danh mục được guard ở service
// (từ chối khi còn sản phẩm tham chiếu).
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	CategoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	return &CategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService),
		CategoryService: categoryService,
	}, nil
}

// HandleGetBySlug trả về danh mục theo slug (storefront)
func (h *CategoryHandler) HandleGetBySlug(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		slug := c.Params("slug")
		category, err := h.CategoryService.FindBySlug(c.Context(), slug)
		h.HandleResponse(c, category, err)
		return nil
	})
}
