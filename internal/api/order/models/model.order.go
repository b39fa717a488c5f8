// Package models - model cho domain order.
package models

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn hàng. Admin có thể set giá trị ngoài danh sách này
// cho các flow đặc thù, danh sách chỉ là các trạng thái chuẩn.
const (
	StatusPending    = "pending"
	StatusPaid       = "paid"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
)

// TerminalStatus cho biết status có phải trạng thái kết thúc không.
// Đơn đã vào trạng thái kết thúc thì admin không đổi status được nữa.
func TerminalStatus(status string) bool {
	return status == StatusCancelled || status == StatusRefunded
}

// Phương thức thanh toán
const (
	PaymentCard         = "card"
	PaymentCOD          = "cod"
	PaymentBankTransfer = "bankTransfer"
)

// OrderItem là snapshot một dòng hàng tại thời điểm đặt.
// Giá và tên sản phẩm không đổi khi catalog thay đổi sau đó.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	Image     string             `json:"image" bson:"image,omitempty"`
	UnitPrice int64              `json:"unitPrice" bson:"unitPrice"`
	Qty       int                `json:"qty" bson:"qty"`
	LineTotal int64              `json:"lineTotal" bson:"lineTotal"`
}

// OrderAmounts các khoản tiền của đơn, tính lại phía server
type OrderAmounts struct {
	Subtotal int64 `json:"subtotal" bson:"subtotal"`
	Discount int64 `json:"discount" bson:"discount"`
	Shipping int64 `json:"shipping" bson:"shipping"`
	Tax      int64 `json:"tax" bson:"tax"`
	Total    int64 `json:"total" bson:"total"`
}

// OrderAddress là snapshot địa chỉ giao / thanh toán
type OrderAddress struct {
	Name       string `json:"name" bson:"name"`
	Phone      string `json:"phone" bson:"phone,omitempty"`
	Line1      string `json:"line1" bson:"line1"`
	Line2      string `json:"line2" bson:"line2,omitempty"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state,omitempty"`
	PostalCode string `json:"postalCode" bson:"postalCode"`
	Country    string `json:"country" bson:"country"`
}

// PaymentInfo thông tin thanh toán của đơn
type PaymentInfo struct {
	Method   string `json:"method" bson:"method"`
	IntentID string `json:"intentId" bson:"intentId,omitempty"`
	PaidAt   int64  `json:"paidAt" bson:"paidAt,omitempty"`
}

// TrackingInfo thông tin vận đơn
type TrackingInfo struct {
	Carrier string `json:"carrier" bson:"carrier"`
	Number  string `json:"number" bson:"number"`
	URL     string `json:"url" bson:"url,omitempty"`
}

// RefundInfo thông tin hoàn tiền
type RefundInfo struct {
	Amount int64  `json:"amount" bson:"amount"`
	Reason string `json:"reason" bson:"reason,omitempty"`
	At     int64  `json:"at" bson:"at"`
}

// Order là đơn hàng. UserID vắng mặt với khách vãng lai, khi đó GuestID
// mang định danh guest-<uuid> và Email dùng để tra cứu đơn.
type Order struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrderNumber     string              `json:"orderNumber" bson:"orderNumber" index:"unique"`
	UserID          *primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty" index:"single"`
	GuestID         string              `json:"guestId,omitempty" bson:"guestId,omitempty"`
	IsGuest         bool                `json:"isGuest" bson:"isGuest"`
	Email           string              `json:"email" bson:"email" index:"single"`
	Items           []OrderItem         `json:"items" bson:"items"`
	Amounts         OrderAmounts        `json:"amounts" bson:"amounts"`
	CouponCode      string              `json:"couponCode,omitempty" bson:"couponCode,omitempty"`
	ShippingZoneID  *primitive.ObjectID `json:"shippingZoneId,omitempty" bson:"shippingZoneId,omitempty"`
	ShippingAddress OrderAddress        `json:"shippingAddress" bson:"shippingAddress"`
	BillingAddress  OrderAddress        `json:"billingAddress" bson:"billingAddress"`
	Status          string              `json:"status" bson:"status" default:"pending" index:"single"`
	Payment         PaymentInfo         `json:"payment" bson:"payment"`
	Tracking        *TrackingInfo       `json:"tracking,omitempty" bson:"tracking,omitempty"`
	Notes           []string            `json:"notes" bson:"notes"`
	Refund          *RefundInfo         `json:"refund,omitempty" bson:"refund,omitempty"`
	CreatedAt       int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64               `json:"updatedAt" bson:"updatedAt"`
}

// GenerateOrderNumber sinh mã đơn dạng VC-<yyyymmdd>-<6 hex hoa>
func GenerateOrderNumber(now time.Time) string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return "VC-" + now.UTC().Format("20060102") + "-" + strings.ToUpper(hex.EncodeToString(buf))
}
