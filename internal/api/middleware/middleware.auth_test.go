// Package middleware - Test cache xác thực: user bị khóa và việc xóa cache.
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vela_commerce/config"
	models "vela_commerce/internal/api/auth/models"
	authsvc "vela_commerce/internal/api/auth/service"
	"vela_commerce/internal/global"
)

func setupAuthTest(t *testing.T) *AuthManager {
	t.Helper()
	if global.ServerConfig == nil {
		global.ServerConfig = &config.Configuration{JwtSecret: "test-secret", JwtTTLMinutes: 60}
	}
	if global.MongoDB_ColNames.Users == "" {
		global.MongoDB_ColNames.Users = "users"
	}
	if _, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users); !exist {
		if _, err := global.RegistryCollections.Register(global.MongoDB_ColNames.Users, &mongo.Collection{}); err != nil {
			t.Fatalf("Không đăng ký được collection cho test: %v", err)
		}
	}
	return GetAuthManager()
}

func TestInvalidateUser_XoaUserKhoiCache(t *testing.T) {
	am := setupAuthTest(t)

	id := primitive.NewObjectID()
	am.Cache.Set("auth_user:"+id.Hex(), models.User{ID: id, Status: models.StatusActive})

	am.InvalidateUser(id.Hex())

	if _, found := am.Cache.Get("auth_user:" + id.Hex()); found {
		t.Error("InvalidateUser phải xóa user khỏi cache")
	}
}

func TestRequireAuth_UserBiKhoaTrongCacheBiTuChoi(t *testing.T) {
	am := setupAuthTest(t)

	id := primitive.NewObjectID()
	am.Cache.Set("auth_user:"+id.Hex(), models.User{
		ID:     id,
		Email:  "banned@example.com",
		Role:   models.RoleUser,
		Status: models.StatusBanned,
	})

	token, err := authsvc.CreateToken(id.Hex(), "banned@example.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Không tạo được token: %v", err)
	}

	app := fiber.New()
	app.Get("/me", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }, RequireAuth())

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, 5*time.Second)
	if err != nil {
		t.Fatalf("Request trả lỗi: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("User bị khóa phải nhận 403, nhận %d", resp.StatusCode)
	}
}
