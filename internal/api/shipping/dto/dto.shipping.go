// Package shippingdto - DTO cho domain shipping.
package shippingdto

// ZoneCreateInput đầu vào tạo khu vực giao hàng
type ZoneCreateInput struct {
	Name      string   `json:"name" validate:"required,min=1,max=200"`
	Countries []string `json:"countries" validate:"dive,len=2"`
	IsDefault bool     `json:"isDefault"`
	Active    *bool    `json:"active"`
}

// ZoneUpdateInput đầu vào cập nhật khu vực giao hàng.
// IsDefault không sửa qua đây - dùng endpoint set-default riêng
// để giữ bất biến chỉ một zone mặc định.
type ZoneUpdateInput struct {
	Name      string   `json:"name" validate:"omitempty,min=1,max=200"`
	Countries []string `json:"countries" validate:"omitempty,dive,len=2"`
	Active    *bool    `json:"active"`
}

// RateCreateInput đầu vào tạo biểu phí giao hàng.
// Với method weight_based, minSubtotal/maxSubtotal hiểu theo gram.
type RateCreateInput struct {
	ZoneID      string `json:"zoneId" validate:"required,len=24" transform:"str_objectid"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Method      string `json:"method" validate:"omitempty,oneof=flat_rate free weight_based order_total"`
	MinSubtotal int64  `json:"minSubtotal" validate:"gte=0"`
	MaxSubtotal *int64 `json:"maxSubtotal" validate:"omitempty,gt=0"`
	Amount      int64  `json:"amount" validate:"gte=0"`
	EtaDays     int    `json:"etaDays" validate:"gte=0"`
}

// RateUpdateInput đầu vào cập nhật biểu phí giao hàng
type RateUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,min=1,max=200"`
	Method      string `json:"method" validate:"omitempty,oneof=flat_rate free weight_based order_total"`
	MinSubtotal *int64 `json:"minSubtotal" validate:"omitempty,gte=0"`
	MaxSubtotal *int64 `json:"maxSubtotal" validate:"omitempty,gt=0"`
	Amount      *int64 `json:"amount" validate:"omitempty,gte=0"`
	EtaDays     *int   `json:"etaDays" validate:"omitempty,gte=0"`
}

// ShippingQuoteInput đầu vào báo giá phí giao hàng cho giỏ hàng.
// Weight (gram) chỉ cần khi zone có biểu phí weight_based.
type ShippingQuoteInput struct {
	Country  string `json:"country" validate:"required,len=2"`
	Subtotal int64  `json:"subtotal" validate:"required,gt=0"`
	Weight   int64  `json:"weight" validate:"gte=0"`
}
