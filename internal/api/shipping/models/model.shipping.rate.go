package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cách tính phí của biểu phí giao hàng
const (
	MethodFlatRate    = "flat_rate"    // Một mức phí cố định, không khung
	MethodFree        = "free"         // Miễn phí, không khung
	MethodWeightBased = "weight_based" // Khung Min/Max hiểu theo khối lượng đơn (gram)
	MethodOrderTotal  = "order_total"  // Khung Min/Max hiểu theo subtotal
)

// ShippingRate là biểu phí của một zone. Khung là nửa mở
// [MinSubtotal, MaxSubtotal), MaxSubtotal nil là không giới hạn trên.
// Với method weight_based, hai cận được hiểu theo tổng khối lượng đơn
// thay vì subtotal.
type ShippingRate struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ZoneID      primitive.ObjectID `json:"zoneId" bson:"zoneId" index:"single"`
	Name        string             `json:"name" bson:"name"`
	Method      string             `json:"method" bson:"method" default:"order_total"`
	MinSubtotal int64              `json:"minSubtotal" bson:"minSubtotal"`
	MaxSubtotal *int64             `json:"maxSubtotal" bson:"maxSubtotal,omitempty"`
	Amount      int64              `json:"amount" bson:"amount"`
	EtaDays     int                `json:"etaDays" bson:"etaDays"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// Contains kiểm tra giá trị có rơi vào khung [Min, Max) của biểu phí không
func (r *ShippingRate) Contains(value int64) bool {
	if value < r.MinSubtotal {
		return false
	}
	if r.MaxSubtotal != nil && value >= *r.MaxSubtotal {
		return false
	}
	return true
}

// AppliesTo kiểm tra biểu phí áp dụng được cho đơn theo method của nó.
// flat_rate và free không có khung, order_total xét subtotal,
// weight_based xét tổng khối lượng.
func (r *ShippingRate) AppliesTo(subtotal int64, weight int64) bool {
	switch r.Method {
	case MethodFlatRate, MethodFree:
		return true
	case MethodWeightBased:
		return r.Contains(weight)
	default:
		return r.Contains(subtotal)
	}
}
