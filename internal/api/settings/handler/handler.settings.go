// Package settingshdl - handler cho domain settings.
package settingshdl

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "vela_commerce/internal/api/base/handler"
	settingsdto "vela_commerce/internal/api/settings/dto"
	settingssvc "vela_commerce/internal/api/settings/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/logger"
)

// SettingsHandler xử lý các route cấu hình cửa hàng.
// Không embed BaseHandler vì settings là singleton, không có bộ CRUD.
type SettingsHandler struct {
	SettingsService *settingssvc.SettingsService
}

// NewSettingsHandler tạo mới SettingsHandler
func NewSettingsHandler() (*SettingsHandler, error) {
	settingsService, err := settingssvc.NewSettingsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %v", err)
	}
	return &SettingsHandler{SettingsService: settingsService}, nil
}

// HandleGetSettings trả về cấu hình cửa hàng. Public vì storefront cần
// currency và paymentMethods để hiển thị giỏ hàng.
func (h *SettingsHandler) HandleGetSettings(c fiber.Ctx) error {
	settings, err := h.SettingsService.GetSettings(c.Context())
	basehdl.HandleResponse(c, settings, err)
	return nil
}

// HandleUpdateSettings cập nhật cấu hình (admin)
func (h *SettingsHandler) HandleUpdateSettings(c fiber.Ctx) error {
	input := new(settingsdto.SettingsUpdateInput)
	if err := json.Unmarshal(c.Body(), input); err != nil {
		basehdl.HandleResponse(c, nil, common.WithDetails(common.ErrInvalidFormat, err.Error()))
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		basehdl.HandleResponse(c, nil, common.WithDetails(common.ErrInvalidInput, err.Error()))
		return nil
	}

	settings, err := h.SettingsService.UpdateSettings(c.Context(), input)
	if err == nil {
		logger.LogAdmin("update_settings", "settings", settings.ID.Hex(), c, nil)
	}
	basehdl.HandleResponse(c, settings, err)
	return nil
}
