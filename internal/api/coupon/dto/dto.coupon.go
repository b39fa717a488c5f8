// Package coupondto - DTO cho domain coupon.
package coupondto

// CouponCreateInput đầu vào tạo mã giảm giá.
// StartsAt/EndsAt nhận chuỗi RFC3339, chuyển sang unix-ms.
type CouponCreateInput struct {
	Code        string `json:"code" validate:"required,coupon_code"`
	Type        string `json:"type" validate:"required,oneof=percent fixed free_shipping"`
	Value       int64  `json:"value" validate:"required_unless=Type free_shipping,omitempty,gt=0"`
	MinSubtotal int64  `json:"minSubtotal" validate:"gte=0"`
	MaxUses     int    `json:"maxUses" validate:"gte=0"`
	StartsAt    string `json:"startsAt" validate:"omitempty" transform:"str_time,optional"`
	EndsAt      string `json:"endsAt" validate:"omitempty" transform:"str_time,optional"`
	Active      *bool  `json:"active"`
}

// CouponUpdateInput đầu vào cập nhật mã giảm giá
type CouponUpdateInput struct {
	Type        string `json:"type" validate:"omitempty,oneof=percent fixed free_shipping"`
	Value       *int64 `json:"value" validate:"omitempty,gt=0"`
	MinSubtotal *int64 `json:"minSubtotal" validate:"omitempty,gte=0"`
	MaxUses     *int   `json:"maxUses" validate:"omitempty,gte=0"`
	StartsAt    string `json:"startsAt" validate:"omitempty" transform:"str_time,optional"`
	EndsAt      string `json:"endsAt" validate:"omitempty" transform:"str_time,optional"`
	Active      *bool  `json:"active"`
}

// CouponValidateInput đầu vào kiểm tra mã giảm giá cho giỏ hàng storefront
type CouponValidateInput struct {
	Code     string `json:"code" validate:"required"`
	Subtotal int64  `json:"subtotal" validate:"required,gt=0"`
}
