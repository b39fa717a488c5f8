// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vela_commerce/internal/common"
)

// Role của người dùng
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Status của tài khoản. Inactive là tài khoản tự ngừng hoặc bị admin
// vô hiệu, khác banned ở chỗ không mang ý nghĩa kỷ luật.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBanned   = "banned"
)

// Address địa chỉ của người dùng, cũng được dùng làm snapshot trong đơn hàng
type Address struct {
	Line1      string `json:"line1" bson:"line1"`
	Line2      string `json:"line2,omitempty" bson:"line2,omitempty"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string `json:"postalCode" bson:"postalCode"`
	Country    string `json:"country" bson:"country"`
}

// User định nghĩa mô hình người dùng.
// Email được lưu lowercase và là unique key đăng nhập.
// PasswordHash là bcrypt hash, không bao giờ trả về qua API.
type User struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Email           string             `json:"email" bson:"email" index:"unique"`
	PasswordHash    string             `json:"-" bson:"passwordHash"`
	Role            string             `json:"role" bson:"role" default:"USER" index:"single"`
	Status          string             `json:"status" bson:"status" default:"active" index:"single"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address         *Address           `json:"address,omitempty" bson:"address,omitempty"`
	Tags            []string           `json:"tags" bson:"tags"`
	NewsletterOptIn bool               `json:"newsletterOptIn" bson:"newsletterOptIn"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin kiểm tra user có role ADMIN không
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsBanned kiểm tra tài khoản có đang bị khóa không
func (u *User) IsBanned() bool {
	return u.Status == StatusBanned
}

// CanLogin chỉ tài khoản active mới đăng nhập và gọi API được
func (u *User) CanLogin() bool {
	return u.Status == StatusActive
}

// StatusError trả lỗi tương ứng khi tài khoản không đăng nhập được,
// nil nếu tài khoản active
func (u *User) StatusError() error {
	switch u.Status {
	case StatusBanned:
		return common.ErrAccountBanned
	case StatusActive:
		return nil
	default:
		return common.ErrAccountInactive
	}
}
