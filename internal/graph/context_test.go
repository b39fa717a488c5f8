// Package graph - Test truyền user đã xác thực qua context cho resolver.
package graph

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "vela_commerce/internal/api/auth/models"
)

func TestWithUser_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	user := authmodels.User{ID: id, Email: "user@example.com", Role: authmodels.RoleUser}

	// Context gốc của request là *fasthttp.RequestCtx, sau khi bọc phải
	// vẫn là context.Context hợp lệ mang theo user
	var ctx context.Context = context.Background()
	ctx = WithUser(ctx, user)

	got, ok := userFromContext(ctx)
	if !ok {
		t.Fatal("userFromContext phải tìm thấy user đã gắn")
	}
	if got.ID != id {
		t.Errorf("ID không khớp, nhận %s", got.ID.Hex())
	}

	if _, err := requireUser(ctx); err != nil {
		t.Errorf("requireUser với user trong context trả lỗi: %v", err)
	}
}

func TestRequireUser_ThieuUserTraLoi(t *testing.T) {
	if _, err := requireUser(context.Background()); err == nil {
		t.Error("requireUser không có user phải trả lỗi")
	}
}
