// Package shippingsvc - service cho domain shipping (Zone, Rate).
package shippingsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vela_commerce/internal/api/base/service"
	models "vela_commerce/internal/api/shipping/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/logger"
)

// ZoneService là cấu trúc chứa các phương thức liên quan đến khu vực giao hàng
type ZoneService struct {
	*basesvc.BaseServiceMongoImpl[models.ShippingZone]
	rateService *basesvc.BaseServiceMongoImpl[models.ShippingRate]
}

// NewZoneService tạo mới ZoneService
func NewZoneService() (*ZoneService, error) {
	zoneCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ShippingZones)
	if !exist {
		return nil, fmt.Errorf("failed to get shipping zones collection: %v", common.ErrNotFound)
	}
	rateCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ShippingRates)
	if !exist {
		return nil, fmt.Errorf("failed to get shipping rates collection: %v", common.ErrNotFound)
	}
	return &ZoneService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ShippingZone](zoneCollection),
		rateService:          basesvc.NewBaseServiceMongo[models.ShippingRate](rateCollection),
	}, nil
}

// InsertOne tạo zone mới, mã quốc gia được chuẩn hóa chữ hoa.
// Nếu zone mới là mặc định thì unset mặc định cũ trước.
func (s *ZoneService) InsertOne(ctx context.Context, data models.ShippingZone) (models.ShippingZone, error) {
	data.Countries = normalizeCountries(data.Countries)
	if data.IsDefault {
		if err := s.unsetAllDefaults(ctx); err != nil {
			return models.ShippingZone{}, err
		}
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// SetDefault đặt zone làm mặc định. Unset toàn bộ mặc định cũ trước khi
// set zone đích: nếu lỗi giữa chừng thì hệ thống không có mặc định nào,
// không bao giờ có hai.
func (s *ZoneService) SetDefault(ctx context.Context, id primitive.ObjectID) (models.ShippingZone, error) {
	var zero models.ShippingZone

	if _, err := s.FindOneById(ctx, id); err != nil {
		return zero, err
	}
	if err := s.unsetAllDefaults(ctx); err != nil {
		return zero, err
	}
	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: bson.M{"isDefault": true}})
}

// DeleteById xóa zone và toàn bộ biểu phí của nó.
// Từ chối xóa zone mặc định khi còn zone khác.
func (s *ZoneService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	zone, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if zone.IsDefault {
		others, err := s.CountDocuments(ctx, bson.M{"_id": bson.M{"$ne": id}})
		if err != nil {
			return err
		}
		if others > 0 {
			return common.ErrZoneIsDefault
		}
	}

	deleted, err := s.rateService.DeleteMany(ctx, bson.M{"zoneId": id})
	if err != nil {
		return err
	}
	if deleted > 0 {
		logger.GetAppLogger().Infof("Đã xóa %d biểu phí của zone %s", deleted, zone.Name)
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// MatchZone tìm zone active chứa mã quốc gia, fallback về zone mặc định
func (s *ZoneService) MatchZone(ctx context.Context, country string) (models.ShippingZone, error) {
	normalized := strings.ToUpper(strings.TrimSpace(country))

	zone, err := s.FindOne(ctx, bson.M{"active": true, "countries": normalized}, nil)
	if err == nil {
		return zone, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.ShippingZone{}, err
	}

	return s.FindOne(ctx, bson.M{"active": true, "isDefault": true}, nil)
}

func (s *ZoneService) unsetAllDefaults(ctx context.Context) error {
	_, err := s.UpdateMany(ctx, bson.M{"isDefault": true}, &basesvc.UpdateData{
		Set: bson.M{"isDefault": false},
	}, nil)
	return err
}

func normalizeCountries(countries []string) []string {
	result := make([]string, 0, len(countries))
	for _, c := range countries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			result = append(result, c)
		}
	}
	return result
}
