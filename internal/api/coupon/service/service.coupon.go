// Package couponsvc - service cho domain coupon.
package couponsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "vela_commerce/internal/api/base/service"
	models "vela_commerce/internal/api/coupon/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/logger"
)

// CouponService là cấu trúc chứa các phương thức liên quan đến mã giảm giá
type CouponService struct {
	*basesvc.BaseServiceMongoImpl[models.Coupon]
}

// NewCouponService tạo mới CouponService
func NewCouponService() (*CouponService, error) {
	couponCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Coupons)
	if !exist {
		return nil, fmt.Errorf("failed to get coupons collection: %v", common.ErrNotFound)
	}
	return &CouponService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Coupon](couponCollection),
	}, nil
}

// NormalizeCode chuẩn hóa mã giảm giá: bỏ khoảng trắng hai đầu, chữ hoa
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// InsertOne tạo mã giảm giá mới. Code được chuẩn hóa chữ hoa,
// kiểm tra trùng trước khi chèn, khung thời gian phải hợp lệ.
func (s *CouponService) InsertOne(ctx context.Context, data models.Coupon) (models.Coupon, error) {
	var zero models.Coupon

	data.Code = NormalizeCode(data.Code)
	if data.Type == models.TypePercent && data.Value > 100 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Giá trị phần trăm không được vượt quá 100", common.StatusBadRequest, nil)
	}
	if data.StartsAt > 0 && data.EndsAt > 0 && data.StartsAt >= data.EndsAt {
		return zero, common.NewError(common.ErrCodeValidationInput, "Thời gian bắt đầu phải trước thời gian kết thúc", common.StatusBadRequest, nil)
	}

	exists, err := s.DocumentExists(ctx, bson.M{"code": data.Code})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Mã giảm giá đã tồn tại", common.StatusConflict, nil)
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindByCode tìm mã giảm giá theo code đã chuẩn hóa
func (s *CouponService) FindByCode(ctx context.Context, code string) (models.Coupon, error) {
	return s.FindOne(ctx, bson.M{"code": NormalizeCode(code)}, nil)
}

// ValidateCoupon kiểm tra mã cho subtotal và trả về số tiền giảm.
// Điều kiện: tồn tại, đang active, trong khung thời gian, chưa hết lượt,
// subtotal đạt ngưỡng tối thiểu.
func (s *CouponService) ValidateCoupon(ctx context.Context, code string, subtotal int64) (models.Coupon, int64, error) {
	var zero models.Coupon

	coupon, err := s.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, 0, common.ErrCouponInvalid
		}
		return zero, 0, err
	}

	if !coupon.Active || !coupon.WithinWindow(time.Now().UnixMilli()) {
		return zero, 0, common.ErrCouponInvalid
	}
	if !coupon.HasUsesLeft() {
		return zero, 0, common.ErrCouponExhausted
	}
	if subtotal < coupon.MinSubtotal {
		return zero, 0, common.WithDetails(common.ErrCouponInvalid, map[string]interface{}{
			"minSubtotal": coupon.MinSubtotal,
			"subtotal":    subtotal,
		})
	}

	return coupon, coupon.ComputeDiscount(subtotal), nil
}

// RedeemCoupon tăng usedCount một cách nguyên tử. Filter điều kiện
// đảm bảo usedCount không bao giờ vượt maxUses khi nhiều request song song.
func (s *CouponService) RedeemCoupon(ctx context.Context, code string) error {
	normalized := NormalizeCode(code)
	filter := bson.M{
		"code":   normalized,
		"active": true,
		"$or": []bson.M{
			{"maxUses": 0},
			{"$expr": bson.M{"$lt": []string{"$usedCount", "$maxUses"}}},
		},
	}
	result, err := s.Collection().UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{"usedCount": 1},
		"$set": bson.M{"updatedAt": time.Now().UnixMilli()},
	})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return common.ErrCouponExhausted
	}
	return nil
}

// ReleaseCoupon giảm usedCount khi đơn hàng bị hủy, không âm dưới 0
func (s *CouponService) ReleaseCoupon(ctx context.Context, code string) error {
	normalized := NormalizeCode(code)
	result, err := s.Collection().UpdateOne(ctx, bson.M{
		"code":      normalized,
		"usedCount": bson.M{"$gt": 0},
	}, bson.M{
		"$inc": bson.M{"usedCount": -1},
		"$set": bson.M{"updatedAt": time.Now().UnixMilli()},
	})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		logger.GetAppLogger().Warnf("Không thể hoàn lượt sử dụng cho mã %s", normalized)
	}
	return nil
}

// SweepExpired tắt các mã đã quá hạn. Worker gọi định kỳ mỗi giờ.
func (s *CouponService) SweepExpired(ctx context.Context) (int64, error) {
	now := time.Now().UnixMilli()
	return s.UpdateMany(ctx, bson.M{
		"active": true,
		"endsAt": bson.M{"$gt": 0, "$lt": now},
	}, &basesvc.UpdateData{
		Set: bson.M{"active": false},
	}, nil)
}
