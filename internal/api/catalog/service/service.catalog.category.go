// Package catalogsvc - service cho domain catalog (Category, Product).
package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vela_commerce/internal/api/base/service"
	models "vela_commerce/internal/api/catalog/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/utility"
)

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
	productService *basesvc.BaseServiceMongoImpl[models.Product]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](categoryCollection),
		productService:       basesvc.NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// InsertOne tạo danh mục mới, tự sinh slug từ tên khi không được cung cấp
func (s *CategoryService) InsertOne(ctx context.Context, data models.Category) (models.Category, error) {
	if data.Slug == "" {
		data.Slug = utility.Slugify(data.Name)
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// DeleteById xóa danh mục, từ chối khi còn sản phẩm tham chiếu tới nó
func (s *CategoryService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	count, err := s.productService.CountDocuments(ctx, bson.M{"categoryId": id})
	if err != nil {
		return err
	}
	if count > 0 {
		return common.WithDetails(common.ErrCategoryInUse, map[string]interface{}{
			"productCount": count,
		})
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// FindBySlug tìm danh mục theo slug
func (s *CategoryService) FindBySlug(ctx context.Context, slug string) (models.Category, error) {
	return s.FindOne(ctx, bson.M{"slug": slug}, nil)
}
