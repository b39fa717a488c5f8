// Package models - model cho domain coupon.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại giảm giá
const (
	TypePercent      = "percent"       // Giảm theo phần trăm subtotal
	TypeFixed        = "fixed"         // Giảm số tiền cố định
	TypeFreeShipping = "free_shipping" // Miễn phí giao hàng, không giảm subtotal
)

// Coupon là mã giảm giá. Code luôn được lưu dạng chữ hoa.
// StartsAt/EndsAt bằng 0 nghĩa là không giới hạn phía đó,
// MaxUses bằng 0 nghĩa là không giới hạn lượt dùng.
type Coupon struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code" index:"unique"`
	Type        string             `json:"type" bson:"type"`
	Value       int64              `json:"value" bson:"value"`
	MinSubtotal int64              `json:"minSubtotal" bson:"minSubtotal"`
	MaxUses     int                `json:"maxUses" bson:"maxUses"`
	UsedCount   int                `json:"usedCount" bson:"usedCount"`
	StartsAt    int64              `json:"startsAt" bson:"startsAt"`
	EndsAt      int64              `json:"endsAt" bson:"endsAt" index:"single"`
	Active      bool               `json:"active" bson:"active" default:"true" index:"single"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// WaivesShipping báo coupon có miễn phí giao hàng không
func (c *Coupon) WaivesShipping() bool {
	return c.Type == TypeFreeShipping
}

// WithinWindow kiểm tra mốc thời gian unix-ms nằm trong hiệu lực của coupon.
// Biên bằng 0 là không giới hạn phía đó.
func (c *Coupon) WithinWindow(nowMillis int64) bool {
	if c.StartsAt > 0 && nowMillis < c.StartsAt {
		return false
	}
	if c.EndsAt > 0 && nowMillis > c.EndsAt {
		return false
	}
	return true
}

// HasUsesLeft báo coupon còn lượt dùng hay không, MaxUses 0 là không giới hạn
func (c *Coupon) HasUsesLeft() bool {
	return c.MaxUses == 0 || c.UsedCount < c.MaxUses
}

// ComputeDiscount tính số tiền giảm trên subtotal cho subtotal đã cho.
// Percent tính trên subtotal, fixed không vượt quá subtotal,
// free_shipping không giảm subtotal (phí ship được miễn ở bước báo giá).
func (c *Coupon) ComputeDiscount(subtotal int64) int64 {
	switch c.Type {
	case TypePercent:
		discount := subtotal * c.Value / 100
		if discount > subtotal {
			return subtotal
		}
		return discount
	case TypeFixed:
		if c.Value > subtotal {
			return subtotal
		}
		return c.Value
	}
	return 0
}
