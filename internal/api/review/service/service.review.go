// Package reviewsvc - service cho domain review.
package reviewsvc

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "vela_commerce/internal/api/auth/models"
	basemodels "vela_commerce/internal/api/base/models"
	basesvc "vela_commerce/internal/api/base/service"
	catalogmodels "vela_commerce/internal/api/catalog/models"
	reviewdto "vela_commerce/internal/api/review/dto"
	models "vela_commerce/internal/api/review/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
)

// ReviewService là cấu trúc chứa các phương thức liên quan đến đánh giá sản phẩm
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[models.Review]
	productService *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	orderService   *basesvc.BaseServiceMongoImpl[bson.M]
}

// NewReviewService tạo mới ReviewService
func NewReviewService() (*ReviewService, error) {
	reviewCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("failed to get reviews collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Review](reviewCollection),
		productService:       basesvc.NewBaseServiceMongo[catalogmodels.Product](productCollection),
		orderService:         basesvc.NewBaseServiceMongo[bson.M](orderCollection),
	}, nil
}

// CreateReview tạo đánh giá mới cho sản phẩm.
// Mỗi người dùng chỉ đánh giá mỗi sản phẩm một lần. Verified được gán
// khi người dùng có đơn hàng đã giao chứa sản phẩm.
func (s *ReviewService) CreateReview(ctx context.Context, user authmodels.User, input *reviewdto.ReviewCreateInput, productID primitive.ObjectID) (models.Review, error) {
	var zero models.Review

	productExists, err := s.productService.DocumentExists(ctx, bson.M{"_id": productID})
	if err != nil {
		return zero, err
	}
	if !productExists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Sản phẩm không tồn tại", common.StatusNotFound, nil)
	}

	alreadyReviewed, err := s.DocumentExists(ctx, bson.M{"productId": productID, "userId": user.ID})
	if err != nil {
		return zero, err
	}
	if alreadyReviewed {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Bạn đã đánh giá sản phẩm này", common.StatusConflict, nil)
	}

	verified, err := s.hasDeliveredOrder(ctx, user.ID, productID)
	if err != nil {
		return zero, err
	}

	review := models.Review{
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    input.Rating,
		Title:     input.Title,
		Body:      input.Body,
		Verified:  verified,
	}
	return s.InsertOne(ctx, review)
}

// UpdateReview cập nhật đánh giá. Chỉ chủ đánh giá hoặc admin được phép.
func (s *ReviewService) UpdateReview(ctx context.Context, actor authmodels.User, reviewID primitive.ObjectID, input *reviewdto.ReviewUpdateInput) (models.Review, error) {
	var zero models.Review

	review, err := s.FindOneById(ctx, reviewID)
	if err != nil {
		return zero, err
	}
	if review.UserID != actor.ID && !actor.IsAdmin() {
		return zero, common.ErrForbidden
	}

	set := bson.M{}
	if input.Rating != nil {
		set["rating"] = *input.Rating
	}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Body != "" {
		set["body"] = input.Body
	}
	if len(set) == 0 {
		return review, nil
	}

	return s.UpdateById(ctx, reviewID, &basesvc.UpdateData{Set: set})
}

// DeleteReview xóa đánh giá. Chỉ chủ đánh giá hoặc admin được phép.
func (s *ReviewService) DeleteReview(ctx context.Context, actor authmodels.User, reviewID primitive.ObjectID) error {
	review, err := s.FindOneById(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != actor.ID && !actor.IsAdmin() {
		return common.ErrForbidden
	}
	return s.DeleteById(ctx, reviewID)
}

// ListByProduct trả về đánh giá của sản phẩm, mới nhất trước
func (s *ReviewService) ListByProduct(ctx context.Context, productID primitive.ObjectID, page int64, limit int64) (*basemodels.PaginateResult[models.Review], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"productId": productID}, page, limit, opts)
}

// InsertOne chèn đánh giá rồi tính lại điểm trung bình của sản phẩm
func (s *ReviewService) InsertOne(ctx context.Context, data models.Review) (models.Review, error) {
	inserted, err := s.BaseServiceMongoImpl.InsertOne(ctx, data)
	if err != nil {
		return inserted, err
	}
	if err := s.RecomputeProductRating(ctx, inserted.ProductID); err != nil {
		return inserted, err
	}
	return inserted, nil
}

// UpdateById cập nhật đánh giá rồi tính lại điểm trung bình của sản phẩm
func (s *ReviewService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Review, error) {
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
	if err != nil {
		return updated, err
	}
	if err := s.RecomputeProductRating(ctx, updated.ProductID); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteById xóa đánh giá rồi tính lại điểm trung bình của sản phẩm
func (s *ReviewService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	review, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if err := s.BaseServiceMongoImpl.DeleteById(ctx, id); err != nil {
		return err
	}
	return s.RecomputeProductRating(ctx, review.ProductID)
}

// RoundRating làm tròn điểm trung bình về 1 chữ số thập phân
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// RecomputeProductRating tính lại ratingAvg (làm tròn 1 chữ số thập phân)
// và ratingCount của sản phẩm từ toàn bộ đánh giá hiện có.
func (s *ReviewService) RecomputeProductRating(ctx context.Context, productID primitive.ObjectID) error {
	pipeline := []bson.M{
		{"$match": bson.M{"productId": productID}},
		{"$group": bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}},
	}

	var results []struct {
		Avg   float64 `bson:"avg"`
		Count int     `bson:"count"`
	}
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return err
	}

	ratingAvg := float64(0)
	ratingCount := 0
	if len(results) > 0 {
		ratingAvg = RoundRating(results[0].Avg)
		ratingCount = results[0].Count
	}

	_, err := s.productService.UpdateOne(ctx, bson.M{"_id": productID}, &basesvc.UpdateData{
		Set: bson.M{"ratingAvg": ratingAvg, "ratingCount": ratingCount},
	}, nil)
	return err
}

// hasDeliveredOrder kiểm tra người dùng đã nhận đơn hàng chứa sản phẩm chưa
func (s *ReviewService) hasDeliveredOrder(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (bool, error) {
	count, err := s.orderService.CountDocuments(ctx, bson.M{
		"userId":          userID,
		"status":          "delivered",
		"items.productId": productID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
