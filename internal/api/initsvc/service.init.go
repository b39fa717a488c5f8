// Package initsvc khởi tạo dữ liệu mặc định khi server boot:
// tài khoản admin, cấu hình cửa hàng và khu vực giao hàng mặc định.
package initsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	authmodels "vela_commerce/internal/api/auth/models"
	basesvc "vela_commerce/internal/api/base/service"
	settingssvc "vela_commerce/internal/api/settings/service"
	shippingmodels "vela_commerce/internal/api/shipping/models"
	shippingsvc "vela_commerce/internal/api/shipping/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/logger"
	"vela_commerce/internal/utility"
)

// InitService gom các bước khởi tạo dữ liệu mặc định
type InitService struct {
	userService     *basesvc.BaseServiceMongoImpl[authmodels.User]
	settingsService *settingssvc.SettingsService
	zoneService     *shippingsvc.ZoneService
	rateService     *shippingsvc.RateService
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	settingsService, err := settingssvc.NewSettingsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %w", err)
	}
	zoneService, err := shippingsvc.NewZoneService()
	if err != nil {
		return nil, fmt.Errorf("failed to create zone service: %w", err)
	}
	rateService, err := shippingsvc.NewRateService()
	if err != nil {
		return nil, fmt.Errorf("failed to create rate service: %w", err)
	}
	return &InitService{
		userService:     basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
		settingsService: settingsService,
		zoneService:     zoneService,
		rateService:     rateService,
	}, nil
}

// InitAdminUser tạo tài khoản admin từ ADMIN_EMAIL / ADMIN_PASSWORD
// khi collection users còn rỗng. Khi users đã có dữ liệu thì bỏ qua,
// kể cả khi env có cấu hình.
func (s *InitService) InitAdminUser(ctx context.Context) error {
	cfg := global.ServerConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.GetAppLogger().Info("ADMIN_EMAIL/ADMIN_PASSWORD chưa cấu hình, user đầu tiên đăng ký sẽ là admin")
		return nil
	}

	count, err := s.userService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := authmodels.User{
		Name:         "Administrator",
		Email:        utility.NormalizeEmail(cfg.AdminEmail),
		PasswordHash: string(hash),
		Role:         authmodels.RoleAdmin,
		Status:       authmodels.StatusActive,
		Tags:         []string{},
	}
	created, err := s.userService.InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	logger.GetAppLogger().WithFields(map[string]interface{}{
		"adminId": created.ID.Hex(),
		"email":   created.Email,
	}).Info("Đã tạo tài khoản admin mặc định")
	return nil
}

// InitStoreSettings đảm bảo singleton cấu hình cửa hàng tồn tại
func (s *InitService) InitStoreSettings(ctx context.Context) error {
	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return err
	}
	logger.GetAppLogger().WithFields(map[string]interface{}{
		"storeName": settings.StoreName,
		"currency":  settings.Currency,
	}).Info("Cấu hình cửa hàng sẵn sàng")
	return nil
}

// InitDefaultShippingZone tạo zone mặc định kèm một biểu phí chuẩn
// khi chưa có zone nào. Zone mặc định là fallback cho mọi quốc gia
// chưa thuộc zone riêng.
func (s *InitService) InitDefaultShippingZone(ctx context.Context) error {
	count, err := s.zoneService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	zone, err := s.zoneService.InsertOne(ctx, shippingmodels.ShippingZone{
		Name:      "Toàn quốc",
		Countries: []string{},
		IsDefault: true,
		Active:    true,
	})
	if err != nil {
		return err
	}

	if _, err := s.rateService.InsertOne(ctx, shippingmodels.ShippingRate{
		ZoneID:      zone.ID,
		Name:        "Giao hàng tiêu chuẩn",
		MinSubtotal: 0,
		Amount:      3000,
		EtaDays:     5,
	}); err != nil {
		return err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"zoneId": zone.ID.Hex(),
	}).Info("Đã tạo khu vực giao hàng mặc định")
	return nil
}
