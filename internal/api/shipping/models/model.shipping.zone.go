// Package models - model cho domain shipping.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShippingZone là khu vực giao hàng, gom nhóm theo mã quốc gia.
// Toàn collection chỉ có tối đa một zone mặc định (fallback khi
// quốc gia không khớp zone nào).
type ShippingZone struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Countries []string           `json:"countries" bson:"countries" index:"single"`
	IsDefault bool               `json:"isDefault" bson:"isDefault" index:"single"`
	Active    bool               `json:"active" bson:"active" default:"true"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
