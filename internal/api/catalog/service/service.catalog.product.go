package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "vela_commerce/internal/api/base/models"
	basesvc "vela_commerce/internal/api/base/service"
	catalogdto "vela_commerce/internal/api/catalog/dto"
	models "vela_commerce/internal/api/catalog/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/utility"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	categoryService *basesvc.BaseServiceMongoImpl[models.Category]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
		categoryService:      basesvc.NewBaseServiceMongo[models.Category](categoryCollection),
	}, nil
}

// InsertOne tạo sản phẩm mới.
// Slug được sinh từ tên khi không được cung cấp, categoryId phải tồn tại,
// images không bao giờ nil và stockStatus được tính từ stock.
func (s *ProductService) InsertOne(ctx context.Context, data models.Product) (models.Product, error) {
	if data.Slug == "" {
		data.Slug = utility.Slugify(data.Name)
	}
	if data.Images == nil {
		data.Images = []models.ProductImage{}
	}
	if data.Tags == nil {
		data.Tags = []string{}
	}
	if data.LowStockThreshold <= 0 {
		data.LowStockThreshold = models.DefaultLowStockThreshold
	}
	if data.Status == "" {
		data.Status = models.StatusActive
	}
	data.StockStatus = models.ComputeStockStatus(data.Stock, data.LowStockThreshold)

	if !data.CategoryID.IsZero() {
		exists, err := s.categoryService.DocumentExists(ctx, bson.M{"_id": data.CategoryID})
		if err != nil {
			return models.Product{}, err
		}
		if !exists {
			return models.Product{}, common.NewError(common.ErrCodeValidationInput, "Danh mục không tồn tại", common.StatusBadRequest, nil)
		}
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật sản phẩm và tính lại stockStatus sau khi ghi
func (s *ProductService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Product, error) {
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
	if err != nil {
		return models.Product{}, err
	}
	return s.reconcileStockStatus(ctx, updated)
}

// AdjustStock điều chỉnh tồn kho theo delta, sàn 0, tính lại stockStatus
func (s *ProductService) AdjustStock(ctx context.Context, id primitive.ObjectID, delta int) (models.Product, error) {
	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	newStock := product.Stock + delta
	if newStock < 0 {
		newStock = 0
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"stock":       newStock,
			"stockStatus": models.ComputeStockStatus(newStock, product.LowStockThreshold),
		},
	})
}

// FindBySlug tìm sản phẩm đang bán theo slug (storefront)
func (s *ProductService) FindBySlug(ctx context.Context, slug string) (models.Product, error) {
	return s.FindOne(ctx, bson.M{"slug": slug, "status": models.StatusActive}, nil)
}

// ListStorefront liệt kê sản phẩm cho storefront với filter, sort và phân trang.
// Chỉ trả về sản phẩm ACTIVE. Filter không khớp gì (kể cả danh mục
// không tồn tại) trả về trang rỗng, không phải lỗi.
func (s *ProductService) ListStorefront(ctx context.Context, query *catalogdto.ProductListQuery) (*basemodels.PaginateResult[models.Product], error) {
	filter := bson.M{"status": models.StatusActive}

	if query.Category != "" {
		if primitive.IsValidObjectID(query.Category) {
			filter["categoryId"] = utility.String2ObjectID(query.Category)
		} else {
			category, err := s.categoryService.FindOne(ctx, bson.M{"slug": query.Category}, nil)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return emptyStorefrontPage(query), nil
				}
				return nil, err
			}
			filter["categoryId"] = category.ID
		}
	}
	if query.Tag != "" {
		filter["tags"] = query.Tag
	}
	if query.Search != "" {
		// Match chứa chuỗi con trên tên, không phân biệt hoa thường
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(query.Search), "$options": "i"}
	}
	if query.Featured {
		filter["featured"] = true
	}
	if query.MinPrice > 0 || query.MaxPrice > 0 {
		priceFilter := bson.M{}
		if query.MinPrice > 0 {
			priceFilter["$gte"] = query.MinPrice
		}
		if query.MaxPrice > 0 {
			priceFilter["$lte"] = query.MaxPrice
		}
		filter["price"] = priceFilter
	}

	opts := options.Find().SetSort(storefrontSort(query.Sort))
	return s.FindWithPagination(ctx, filter, query.Page, query.Limit, opts)
}

// emptyStorefrontPage trả về trang rỗng cho filter không khớp gì
func emptyStorefrontPage(query *catalogdto.ProductListQuery) *basemodels.PaginateResult[models.Product] {
	page := query.Page
	if page < 1 {
		page = 1
	}
	return &basemodels.PaginateResult[models.Product]{
		Items:   []models.Product{},
		Total:   0,
		Page:    page,
		PerPage: query.Limit,
	}
}

// storefrontSort map sort key sang sort document của MongoDB
func storefrontSort(sort string) bson.D {
	switch sort {
	case "price_asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "price", Value: -1}}
	case "rating":
		return bson.D{{Key: "ratingAvg", Value: -1}, {Key: "ratingCount", Value: -1}}
	default: // newest
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// reconcileStockStatus tính lại stockStatus khi giá trị lưu không khớp với stock hiện tại
func (s *ProductService) reconcileStockStatus(ctx context.Context, product models.Product) (models.Product, error) {
	expected := models.ComputeStockStatus(product.Stock, product.LowStockThreshold)
	if product.StockStatus == expected {
		return product, nil
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, product.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"stockStatus": expected},
	})
}
