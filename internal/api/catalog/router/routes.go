// Package router đăng ký các route thuộc domain catalog: Category, Product.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "vela_commerce/internal/api/catalog/handler"
	"vela_commerce/internal/api/middleware"
	apirouter "vela_commerce/internal/api/router"
)

// Register đăng ký các route catalog lên v1. Đọc công khai (storefront),
// ghi yêu cầu quyền admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerCategoryRoutes(v1, r); err != nil {
		return err
	}
	return registerProductRoutes(v1, r)
}

func registerCategoryRoutes(router fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}

	// Storefront: tra danh mục theo slug
	router.Get("/categories/slug/:slug", categoryHandler.HandleGetBySlug)

	r.RegisterCRUDRoutes(router, "/categories", categoryHandler, apirouter.CatalogCRUDConfig)
	return nil
}

func registerProductRoutes(router fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	// Storefront: danh sách có lọc + phân trang, chi tiết theo slug
	router.Get("/products", productHandler.HandleStorefrontList)
	router.Get("/products/slug/:slug", productHandler.HandleGetBySlug)

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(router, "/products", "POST", "/:id/adjust-stock", adminChain, productHandler.HandleAdjustStock)

	r.RegisterCRUDRoutes(router, "/products", productHandler, apirouter.CatalogCRUDConfig)
	return nil
}
