package authdto

// AddressInput địa chỉ trong request body
type AddressInput struct {
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required,len=2"`
}

// RegisterInput đầu vào đăng ký tài khoản
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// LoginInput đầu vào đăng nhập
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput đầu vào cập nhật thông tin cá nhân
type UpdateProfileInput struct {
	Name            string        `json:"name" validate:"omitempty,min=2,max=100"`
	Phone           string        `json:"phone"`
	Address         *AddressInput `json:"address"`
	NewsletterOptIn *bool         `json:"newsletterOptIn"`
}

// ChangePasswordInput đầu vào đổi mật khẩu
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strong_password"`
}

// SetRoleInput đầu vào gán role cho người dùng (admin)
type SetRoleInput struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN"`
}

// BanUserInput đầu vào khóa tài khoản (admin)
type BanUserInput struct {
	Reason string `json:"reason"`
}

// SetStatusInput đầu vào đổi trạng thái tài khoản (admin)
type SetStatusInput struct {
	Status string `json:"status" validate:"required,oneof=active inactive banned"`
}

// AdminUpdateUserInput đầu vào cập nhật người dùng của admin (tags, trạng thái newsletter)
type AdminUpdateUserInput struct {
	Name            string   `json:"name" validate:"omitempty,min=2,max=100"`
	Phone           string   `json:"phone"`
	Tags            []string `json:"tags"`
	NewsletterOptIn *bool    `json:"newsletterOptIn"`
}
