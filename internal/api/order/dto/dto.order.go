// Package orderdto - DTO cho domain order.
package orderdto

// OrderItemInput một dòng hàng trong giỏ
type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required,len=24"`
	Qty       int    `json:"qty" validate:"required,gt=0"`
}

// OrderAddressInput địa chỉ giao / thanh toán
type OrderAddressInput struct {
	Name       string `json:"name" validate:"required,max=200"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Line1      string `json:"line1" validate:"required,max=300"`
	Line2      string `json:"line2" validate:"omitempty,max=300"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"omitempty,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,len=2"`
}

// QuoteInput đầu vào báo giá giỏ hàng, chưa tạo đơn
type QuoteInput struct {
	Items      []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	CouponCode string           `json:"couponCode" validate:"omitempty"`
	Country    string           `json:"country" validate:"required,len=2"`
}

// PlaceOrderInput đầu vào đặt đơn. Email bắt buộc với khách vãng lai,
// BillingAddress vắng mặt thì dùng ShippingAddress.
type PlaceOrderInput struct {
	Items           []OrderItemInput   `json:"items" validate:"required,min=1,dive"`
	CouponCode      string             `json:"couponCode" validate:"omitempty"`
	Email           string             `json:"email" validate:"omitempty,email"`
	ShippingAddress OrderAddressInput  `json:"shippingAddress" validate:"required"`
	BillingAddress  *OrderAddressInput `json:"billingAddress" validate:"omitempty"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required,oneof=card cod bankTransfer"`
	Notes           string             `json:"notes" validate:"omitempty,max=2000"`
}

// ConfirmPaymentInput đầu vào xác nhận thanh toán từ gateway
type ConfirmPaymentInput struct {
	OrderNumber string `json:"orderNumber" validate:"required"`
	IntentID    string `json:"intentId" validate:"required"`
	Signature   string `json:"signature" validate:"required"`
}

// GuestLookupInput tra cứu đơn của khách vãng lai
type GuestLookupInput struct {
	OrderNumber string `json:"orderNumber" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

// SetStatusInput đầu vào admin đổi trạng thái đơn. Giá trị tự do,
// không giới hạn trong danh sách chuẩn.
type SetStatusInput struct {
	Status string `json:"status" validate:"required,min=1,max=50,no_xss"`
}

// TrackingInput đầu vào admin gắn vận đơn
type TrackingInput struct {
	Carrier string `json:"carrier" validate:"required,max=100"`
	Number  string `json:"number" validate:"required,max=100"`
	URL     string `json:"url" validate:"omitempty,url"`
}

// NoteInput đầu vào admin thêm ghi chú vào đơn
type NoteInput struct {
	Note string `json:"note" validate:"required,max=2000"`
}

// RefundInput đầu vào admin hoàn tiền
type RefundInput struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}
