package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction ghi một audit entry cho hành động của người dùng.
// UserID được lấy từ context nếu request đã qua auth middleware.
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	// c nil khi audit được ghi từ service/worker, ngoài request HTTP
	userID := ""
	ip := ""
	userAgent := ""
	if c != nil {
		if v := c.Locals("userID"); v != nil {
			if uid, ok := v.(string); ok {
				userID = uid
			}
		}
		if requestID := c.Get("X-Request-ID"); requestID != "" {
			details["request_id"] = requestID
		}
		ip = c.IP()
		userAgent = c.Get("User-Agent")
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":     action,
		"user_id":    userID,
		"ip":         ip,
		"user_agent": userAgent,
		"details":    details,
		"timestamp":  time.Now(),
	}).Info("Audit log")
}

// LogAuth ghi audit cho các thao tác authentication (login, register, ban...)
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	LogAction("auth_"+action, c, details)
}

// LogOrder ghi audit cho các thao tác trên đơn hàng
func LogOrder(action string, orderNumber string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["order_number"] = orderNumber
	LogAction("order_"+action, c, details)
}

// LogAdmin ghi audit cho các thao tác quản trị
func LogAdmin(action string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID
	LogAction("admin_"+action, c, details)
}
