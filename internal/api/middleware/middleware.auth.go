package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	models "vela_commerce/internal/api/auth/models"
	authsvc "vela_commerce/internal/api/auth/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/logger"
	"vela_commerce/internal/utility"
)

// AuthManager quản lý xác thực người dùng.
// User được cache theo ID để tránh query database trên mỗi request.
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &AuthManager{
		UserCRUD: userService,
		Cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// getUser lấy user theo ID hex từ cache hoặc database
func (am *AuthManager) getUser(ctx context.Context, userID string) (models.User, error) {
	cacheKey := "auth_user:" + userID
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(models.User), nil
	}

	user, err := am.UserCRUD.FindOneById(ctx, utility.String2ObjectID(userID))
	if err != nil {
		return models.User{}, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// InvalidateUser xóa user khỏi cache (gọi sau khi ban/đổi role)
func (am *AuthManager) InvalidateUser(userID string) {
	am.Cache.Delete("auth_user:" + userID)
}

// RequireAuth là middleware xác thực JWT cho Fiber.
// Parse bearer token, load user, kiểm tra trạng thái tài khoản
// và lưu user vào context cho các handler phía sau.
func RequireAuth() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := authsvc.ParseToken(parts[1])
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := authManager.getUser(c.Context(), claims.Subject)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id": claims.Subject,
				"path":    c.Path(),
			}).Warn("Token hợp lệ nhưng user không tồn tại")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if err := user.StatusError(); err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		c.Locals("userID", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}

// RequireAdmin là middleware phân quyền admin, dùng SAU RequireAuth
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}
		if !user.IsAdmin() {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id": user.ID.Hex(),
				"path":    c.Path(),
			}).Warn("User không có quyền admin")
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}
		return c.Next()
	}
}

// OptionalAuth parse token nếu có nhưng không bắt buộc.
// Dùng cho các route storefront hoạt động với cả guest và user đăng nhập.
func OptionalAuth() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}

		claims, err := authsvc.ParseToken(parts[1])
		if err != nil {
			return c.Next()
		}

		user, err := authManager.getUser(c.Context(), claims.Subject)
		if err != nil || !user.CanLogin() {
			return c.Next()
		}

		c.Locals("userID", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}
