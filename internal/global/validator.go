package global

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"vela_commerce/internal/utility"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("coupon_code", validateCouponCode)
	_ = Validate.RegisterValidation("slug", validateSlug)
	_ = Validate.RegisterValidation("order_status", validateOrderStatus)
}

// validateNoXSS kiểm tra chuỗi không chứa các pattern XSS phổ biến
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword yêu cầu tối thiểu 8 ký tự, có chữ hoa, chữ thường và số
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, c := range value {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

var couponCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)

// validateCouponCode kiểm tra mã giảm giá: 3-32 ký tự chữ/số/gạch
func validateCouponCode(fl validator.FieldLevel) bool {
	return couponCodeRegex.MatchString(fl.Field().String())
}

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateSlug kiểm tra slug URL hợp lệ
func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// Các trạng thái đơn hàng hợp lệ
var orderStatuses = []string{
	"pending", "paid", "processing", "shipped", "delivered", "cancelled", "refunded",
}

// validateOrderStatus kiểm tra trạng thái đơn hàng nằm trong danh sách cho phép
func validateOrderStatus(fl validator.FieldLevel) bool {
	return utility.Contains(orderStatuses, fl.Field().String())
}
