package cataloghdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "vela_commerce/internal/api/base/handler"
	catalogdto "vela_commerce/internal/api/catalog/dto"
	models "vela_commerce/internal/api/catalog/models"
	catalogsvc "vela_commerce/internal/api/catalog/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/logger"
)

// ProductHandler xử lý các route sản phẩm: CRUD admin qua BaseHandler,
// các endpoint storefront (danh sách có lọc, tra theo slug) và điều chỉnh tồn kho.
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService),
		ProductService: productService,
	}, nil
}

// HandleStorefrontList trả về danh sách sản phẩm đang bán, có lọc và phân trang.
// Chỉ trả sản phẩm active, filter nhận qua query string.
func (h *ProductHandler) HandleStorefrontList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := &catalogdto.ProductListQuery{
			Category: c.Query("category"),
			Tag:      c.Query("tag"),
			Search:   c.Query("search"),
			Sort:     c.Query("sort"),
			MinPrice: parseQueryInt64(c, "minPrice"),
			MaxPrice: parseQueryInt64(c, "maxPrice"),
			Featured: c.Query("featured") == "true",
			Page:     parseQueryInt64(c, "page"),
			Limit:    parseQueryInt64(c, "limit"),
		}
		result, err := h.ProductService.ListStorefront(c.Context(), query)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetBySlug trả về chi tiết sản phẩm đang bán theo slug
func (h *ProductHandler) HandleGetBySlug(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		slug := c.Params("slug")
		product, err := h.ProductService.FindBySlug(c.Context(), slug)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleAdjustStock điều chỉnh tồn kho theo delta, sàn về 0 khi trừ quá số hiện có
func (h *ProductHandler) HandleAdjustStock(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseProductID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(catalogdto.StockAdjustInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.ProductService.AdjustStock(c.Context(), id, input.Delta)
		if err == nil {
			logger.LogAdmin("adjust_stock", "product", id.Hex(), c, map[string]interface{}{
				"delta":       input.Delta,
				"stock":       product.Stock,
				"stockStatus": product.StockStatus,
			})
		}
		h.HandleResponse(c, product, err)
		return nil
	})
}

func (h *ProductHandler) parseProductID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID sản phẩm không đúng định dạng MongoDB ObjectID",
			common.StatusBadRequest,
			nil,
		)
	}
	objID, _ := primitive.ObjectIDFromHex(id)
	return objID, nil
}

func parseQueryInt64(c fiber.Ctx, key string) int64 {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
