// Package settingssvc - service cho domain settings.
package settingssvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "vela_commerce/internal/api/base/service"
	settingsdto "vela_commerce/internal/api/settings/dto"
	models "vela_commerce/internal/api/settings/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
)

// SettingsService là cấu trúc chứa các phương thức liên quan đến cấu hình cửa hàng
type SettingsService struct {
	*basesvc.BaseServiceMongoImpl[models.StoreSettings]
}

// NewSettingsService tạo mới SettingsService
func NewSettingsService() (*SettingsService, error) {
	settingsCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("failed to get settings collection: %v", common.ErrNotFound)
	}
	return &SettingsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.StoreSettings](settingsCollection),
	}, nil
}

// GetSettings trả về document cấu hình duy nhất, tạo với giá trị mặc định
// ở lần đọc đầu tiên. Upsert trên khóa sentinel nên nhiều lần đọc đầu
// song song chỉ tạo đúng một document.
func (s *SettingsService) GetSettings(ctx context.Context) (models.StoreSettings, error) {
	settings, err := s.FindOne(ctx, bson.M{"key": models.SettingsKey}, nil)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.StoreSettings{}, err
	}

	defaults := models.DefaultStoreSettings()
	return s.Upsert(ctx, bson.M{"key": models.SettingsKey}, &basesvc.UpdateData{
		SetOnInsert: defaultsAsMap(defaults),
	})
}

// UpdateSettings cập nhật cấu hình. PaymentMethods merge từng field
// (patch chỉ nêu card.enabled không được ghi đè cod), các field khác
// ghi đè nguyên giá trị.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *settingsdto.SettingsUpdateInput) (models.StoreSettings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return models.StoreSettings{}, err
	}

	set := bson.M{}
	if input.StoreName != nil {
		set["storeName"] = *input.StoreName
	}
	if input.SupportEmail != nil {
		set["supportEmail"] = *input.SupportEmail
	}
	if input.Currency != nil {
		set["currency"] = *input.Currency
	}
	if input.TaxRate != nil {
		set["taxRate"] = *input.TaxRate
	}
	if input.FreeShippingThreshold != nil {
		set["freeShippingThreshold"] = *input.FreeShippingThreshold
	}
	if input.MaintenanceMode != nil {
		set["maintenanceMode"] = *input.MaintenanceMode
	}
	if input.PaymentMethods != nil {
		set["paymentMethods"] = MergePaymentMethods(current.PaymentMethods, input.PaymentMethods)
	}
	if len(set) == 0 {
		return current, nil
	}

	return s.UpdateById(ctx, current.ID, &basesvc.UpdateData{Set: set})
}

// MergePaymentMethods áp patch lên cấu hình thanh toán hiện có,
// method không được nêu trong patch giữ nguyên
func MergePaymentMethods(current models.PaymentMethods, patch *settingsdto.PaymentMethodsPatch) models.PaymentMethods {
	merged := current
	merged.Card = mergePaymentMethod(current.Card, patch.Card)
	merged.COD = mergePaymentMethod(current.COD, patch.COD)
	merged.BankTransfer = mergePaymentMethod(current.BankTransfer, patch.BankTransfer)
	return merged
}

func mergePaymentMethod(current models.PaymentMethodConfig, patch *settingsdto.PaymentMethodPatch) models.PaymentMethodConfig {
	if patch == nil {
		return current
	}
	merged := current
	if patch.Enabled != nil {
		merged.Enabled = *patch.Enabled
	}
	if patch.Label != nil {
		merged.Label = *patch.Label
	}
	if patch.Config != nil {
		merged.Config = patch.Config
	}
	return merged
}

func defaultsAsMap(settings models.StoreSettings) bson.M {
	return bson.M{
		"storeName":             settings.StoreName,
		"supportEmail":          settings.SupportEmail,
		"currency":              settings.Currency,
		"taxRate":               settings.TaxRate,
		"freeShippingThreshold": settings.FreeShippingThreshold,
		"paymentMethods":        settings.PaymentMethods,
		"maintenanceMode":       settings.MaintenanceMode,
	}
}
