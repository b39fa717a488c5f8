// Package models - model cho domain settings.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettingsKey là khóa sentinel của document cấu hình duy nhất
const SettingsKey = "store"

// PaymentMethodConfig cấu hình một phương thức thanh toán
type PaymentMethodConfig struct {
	Enabled bool              `json:"enabled" bson:"enabled"`
	Label   string            `json:"label" bson:"label"`
	Config  map[string]string `json:"config" bson:"config,omitempty"`
}

// PaymentMethods các phương thức thanh toán của cửa hàng
type PaymentMethods struct {
	Card         PaymentMethodConfig `json:"card" bson:"card"`
	COD          PaymentMethodConfig `json:"cod" bson:"cod"`
	BankTransfer PaymentMethodConfig `json:"bankTransfer" bson:"bankTransfer"`
}

// StoreSettings là cấu hình cửa hàng, singleton theo Key.
// TaxRate là tỉ lệ thập phân (0.1 = 10%), FreeShippingThreshold theo
// đơn vị tiền tệ nhỏ nhất, 0 nghĩa là không miễn phí giao hàng.
type StoreSettings struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Key                   string             `json:"key" bson:"key" index:"unique"`
	StoreName             string             `json:"storeName" bson:"storeName"`
	SupportEmail          string             `json:"supportEmail" bson:"supportEmail"`
	Currency              string             `json:"currency" bson:"currency"`
	TaxRate               float64            `json:"taxRate" bson:"taxRate"`
	FreeShippingThreshold int64              `json:"freeShippingThreshold" bson:"freeShippingThreshold"`
	PaymentMethods        PaymentMethods     `json:"paymentMethods" bson:"paymentMethods"`
	MaintenanceMode       bool               `json:"maintenanceMode" bson:"maintenanceMode"`
	CreatedAt             int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt             int64              `json:"updatedAt" bson:"updatedAt"`
}

// DefaultStoreSettings trả về cấu hình mặc định dùng cho lần đọc đầu tiên
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		Key:       SettingsKey,
		StoreName: "Vela Commerce",
		Currency:  "USD",
		TaxRate:   0,
		PaymentMethods: PaymentMethods{
			Card:         PaymentMethodConfig{Enabled: true, Label: "Credit card"},
			COD:          PaymentMethodConfig{Enabled: true, Label: "Cash on delivery"},
			BankTransfer: PaymentMethodConfig{Enabled: false, Label: "Bank transfer"},
		},
	}
}
