// Package router - Test middleware gắn theo từng route, không lan theo prefix.
package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	"vela_commerce/internal/global"
)

// stubCRUDHandler trả về 200 cho mọi operation, dùng để kiểm tra định tuyến
type stubCRUDHandler struct{}

func okStub(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

func (stubCRUDHandler) InsertOne(c fiber.Ctx) error          { return okStub(c) }
func (stubCRUDHandler) Find(c fiber.Ctx) error               { return okStub(c) }
func (stubCRUDHandler) FindOne(c fiber.Ctx) error            { return okStub(c) }
func (stubCRUDHandler) FindOneById(c fiber.Ctx) error        { return okStub(c) }
func (stubCRUDHandler) FindManyByIds(c fiber.Ctx) error      { return okStub(c) }
func (stubCRUDHandler) FindWithPagination(c fiber.Ctx) error { return okStub(c) }
func (stubCRUDHandler) UpdateOne(c fiber.Ctx) error          { return okStub(c) }
func (stubCRUDHandler) UpdateById(c fiber.Ctx) error         { return okStub(c) }
func (stubCRUDHandler) DeleteOne(c fiber.Ctx) error          { return okStub(c) }
func (stubCRUDHandler) DeleteById(c fiber.Ctx) error         { return okStub(c) }
func (stubCRUDHandler) CountDocuments(c fiber.Ctx) error     { return okStub(c) }
func (stubCRUDHandler) Distinct(c fiber.Ctx) error           { return okStub(c) }
func (stubCRUDHandler) DocumentExists(c fiber.Ctx) error     { return okStub(c) }

// newCatalogTestApp dựng app với route CRUD kiểu catalog và một route
// công khai kế bên cùng prefix /products
func newCatalogTestApp(t *testing.T) *fiber.App {
	t.Helper()
	if global.MongoDB_ColNames.Users == "" {
		global.MongoDB_ColNames.Users = "users"
	}
	if _, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users); !exist {
		if _, err := global.RegistryCollections.Register(global.MongoDB_ColNames.Users, &mongo.Collection{}); err != nil {
			t.Fatalf("Không đăng ký được collection cho test: %v", err)
		}
	}

	app := fiber.New()
	v1 := app.Group(NewRoutePrefix().V1)
	r := NewRouter(app)
	r.RegisterCRUDRoutes(v1, "/products", stubCRUDHandler{}, CatalogCRUDConfig)
	RegisterRouteWithMiddleware(v1, "/products", "GET", "/:id/reviews", nil, okStub)
	return app
}

func TestRegisterCRUDRoutes_PublicReadKhongCanDangNhap(t *testing.T) {
	app := newCatalogTestApp(t)

	paths := []string{
		"/api/v1/products/find",
		"/api/v1/products/find-by-id/68b1f00000000000000000aa",
		"/api/v1/products/find-with-pagination",
		"/api/v1/products/count",
	}
	for _, path := range paths {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("Request %s trả lỗi: %v", path, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("Route đọc công khai %s trả về %d, muốn 200", path, resp.StatusCode)
		}
	}
}

func TestRegisterCRUDRoutes_RouteCongKhaiCungPrefixKhongBiChanBoiChainAdmin(t *testing.T) {
	app := newCatalogTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products/68b1f00000000000000000aa/reviews", nil))
	if err != nil {
		t.Fatalf("Request trả lỗi: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Route công khai cùng prefix trả về %d, muốn 200", resp.StatusCode)
	}
}

func TestRegisterCRUDRoutes_GhiYeuCauDangNhap(t *testing.T) {
	app := newCatalogTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/products/insert-one", nil))
	if err != nil {
		t.Fatalf("Request trả lỗi: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Route ghi không có token trả về %d, muốn 401", resp.StatusCode)
	}
}
