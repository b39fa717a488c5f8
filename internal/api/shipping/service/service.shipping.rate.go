package shippingsvc

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vela_commerce/internal/api/base/service"
	models "vela_commerce/internal/api/shipping/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
)

// RateService là cấu trúc chứa các phương thức liên quan đến biểu phí giao hàng
type RateService struct {
	*basesvc.BaseServiceMongoImpl[models.ShippingRate]
	zoneService *basesvc.BaseServiceMongoImpl[models.ShippingZone]
}

// NewRateService tạo mới RateService
func NewRateService() (*RateService, error) {
	rateCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ShippingRates)
	if !exist {
		return nil, fmt.Errorf("failed to get shipping rates collection: %v", common.ErrNotFound)
	}
	zoneCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ShippingZones)
	if !exist {
		return nil, fmt.Errorf("failed to get shipping zones collection: %v", common.ErrNotFound)
	}
	return &RateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ShippingRate](rateCollection),
		zoneService:          basesvc.NewBaseServiceMongo[models.ShippingZone](zoneCollection),
	}, nil
}

// InsertOne tạo biểu phí mới, zone phải tồn tại và khung subtotal hợp lệ
func (s *RateService) InsertOne(ctx context.Context, data models.ShippingRate) (models.ShippingRate, error) {
	var zero models.ShippingRate

	zoneExists, err := s.zoneService.DocumentExists(ctx, bson.M{"_id": data.ZoneID})
	if err != nil {
		return zero, err
	}
	if !zoneExists {
		return zero, common.NewError(common.ErrCodeValidationInput, "Khu vực giao hàng không tồn tại", common.StatusBadRequest, nil)
	}
	if data.MaxSubtotal != nil && *data.MaxSubtotal <= data.MinSubtotal {
		return zero, common.NewError(common.ErrCodeValidationInput, "Khung subtotal không hợp lệ", common.StatusBadRequest, nil)
	}
	if data.Method == "" {
		data.Method = models.MethodOrderTotal
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// ListByZone trả về biểu phí của một zone, sắp theo MinSubtotal tăng dần
func (s *RateService) ListByZone(ctx context.Context, zoneID primitive.ObjectID) ([]models.ShippingRate, error) {
	rates, err := s.Find(ctx, bson.M{"zoneId": zoneID}, nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].MinSubtotal < rates[j].MinSubtotal })
	return rates, nil
}

// MatchRate chọn biểu phí của zone áp dụng được cho đơn có subtotal
// và tổng khối lượng đã cho
func (s *RateService) MatchRate(ctx context.Context, zoneID primitive.ObjectID, subtotal int64, weight int64) (models.ShippingRate, error) {
	rates, err := s.ListByZone(ctx, zoneID)
	if err != nil {
		return models.ShippingRate{}, err
	}
	return PickRate(rates, subtotal, weight)
}

// rateRank xếp hạng độ cụ thể của biểu phí: khung order_total/weight_based
// cụ thể hơn flat_rate, flat_rate hơn free.
func rateRank(r *models.ShippingRate) int {
	switch r.Method {
	case models.MethodFree:
		return 0
	case models.MethodFlatRate:
		return 1
	default:
		return 2
	}
}

// PickRate chọn biểu phí áp dụng được từ danh sách. Biểu phí có khung
// được ưu tiên trước loại không khung; cùng hạng lấy khung có cận dưới
// lớn nhất. Method free luôn trả phí 0.
func PickRate(rates []models.ShippingRate, subtotal int64, weight int64) (models.ShippingRate, error) {
	var matched *models.ShippingRate
	for i := range rates {
		r := &rates[i]
		if !r.AppliesTo(subtotal, weight) {
			continue
		}
		if matched == nil ||
			rateRank(r) > rateRank(matched) ||
			(rateRank(r) == rateRank(matched) && r.MinSubtotal > matched.MinSubtotal) {
			matched = r
		}
	}
	if matched == nil {
		return models.ShippingRate{}, common.NewError(common.ErrCodeBusinessState, "Không có biểu phí giao hàng phù hợp", common.StatusUnprocessable, nil)
	}
	picked := *matched
	if picked.Method == models.MethodFree {
		picked.Amount = 0
	}
	return picked, nil
}
