// Package settingsdto - DTO cho domain settings.
package settingsdto

// PaymentMethodPatch cập nhật từng phần một phương thức thanh toán.
// Field nil giữ nguyên giá trị hiện có.
type PaymentMethodPatch struct {
	Enabled *bool             `json:"enabled"`
	Label   *string           `json:"label" validate:"omitempty,max=200"`
	Config  map[string]string `json:"config"`
}

// PaymentMethodsPatch cập nhật từng phần các phương thức thanh toán
type PaymentMethodsPatch struct {
	Card         *PaymentMethodPatch `json:"card"`
	COD          *PaymentMethodPatch `json:"cod"`
	BankTransfer *PaymentMethodPatch `json:"bankTransfer"`
}

// SettingsUpdateInput đầu vào cập nhật cấu hình cửa hàng.
// PaymentMethods merge từng field, các field khác ghi đè nguyên giá trị.
type SettingsUpdateInput struct {
	StoreName             *string              `json:"storeName" validate:"omitempty,min=1,max=200"`
	SupportEmail          *string              `json:"supportEmail" validate:"omitempty,email"`
	Currency              *string              `json:"currency" validate:"omitempty,len=3"`
	TaxRate               *float64             `json:"taxRate" validate:"omitempty,gte=0,lte=1"`
	FreeShippingThreshold *int64               `json:"freeShippingThreshold" validate:"omitempty,gte=0"`
	PaymentMethods        *PaymentMethodsPatch `json:"paymentMethods"`
	MaintenanceMode       *bool                `json:"maintenanceMode"`
}
