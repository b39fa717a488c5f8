// Package settingssvc - Test merge từng phần cấu hình phương thức thanh toán.
package settingssvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	settingsdto "vela_commerce/internal/api/settings/dto"
	models "vela_commerce/internal/api/settings/models"
)

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestMergePaymentMethods_PatchOneMethodKeepsOthers(t *testing.T) {
	current := models.PaymentMethods{
		Card: models.PaymentMethodConfig{Enabled: true, Label: "Thẻ tín dụng"},
		COD:  models.PaymentMethodConfig{Enabled: true, Label: "Thanh toán khi nhận hàng"},
	}
	patch := &settingsdto.PaymentMethodsPatch{
		Card: &settingsdto.PaymentMethodPatch{Enabled: boolPtr(false)},
	}

	merged := MergePaymentMethods(current, patch)

	assert.False(t, merged.Card.Enabled)
	assert.Equal(t, "Thẻ tín dụng", merged.Card.Label, "field không patch phải giữ nguyên")
	assert.True(t, merged.COD.Enabled, "method không patch phải giữ nguyên")
	assert.Equal(t, "Thanh toán khi nhận hàng", merged.COD.Label)
}

func TestMergePaymentMethods_LabelAndConfig(t *testing.T) {
	current := models.PaymentMethods{
		BankTransfer: models.PaymentMethodConfig{
			Enabled: false,
			Label:   "Chuyển khoản",
			Config:  map[string]string{"bank": "VCB"},
		},
	}
	patch := &settingsdto.PaymentMethodsPatch{
		BankTransfer: &settingsdto.PaymentMethodPatch{
			Label:  strPtr("Chuyển khoản ngân hàng"),
			Config: map[string]string{"bank": "VCB", "account": "00123"},
		},
	}

	merged := MergePaymentMethods(current, patch)

	assert.False(t, merged.BankTransfer.Enabled, "enabled không patch phải giữ nguyên")
	assert.Equal(t, "Chuyển khoản ngân hàng", merged.BankTransfer.Label)
	assert.Equal(t, "00123", merged.BankTransfer.Config["account"])
}

func TestMergePaymentMethods_NilPatchKeepsEverything(t *testing.T) {
	current := models.PaymentMethods{
		Card: models.PaymentMethodConfig{Enabled: true, Label: "Thẻ"},
	}
	merged := MergePaymentMethods(current, &settingsdto.PaymentMethodsPatch{})
	assert.Equal(t, current, merged)
}
