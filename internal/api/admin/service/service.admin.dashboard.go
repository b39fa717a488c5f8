// Package adminsvc - service cho dashboard quản trị và danh sách khách hàng.
package adminsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "vela_commerce/internal/api/auth/models"
	basesvc "vela_commerce/internal/api/base/service"
	catalogmodels "vela_commerce/internal/api/catalog/models"
	ordermodels "vela_commerce/internal/api/order/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
)

// revenueStatuses các trạng thái đơn được tính doanh thu
var revenueStatuses = []string{
	ordermodels.StatusPaid,
	ordermodels.StatusProcessing,
	ordermodels.StatusShipped,
	ordermodels.StatusDelivered,
}

// DashboardService tính các số liệu tổng quan cho trang quản trị
type DashboardService struct {
	orderService   *basesvc.BaseServiceMongoImpl[ordermodels.Order]
	userService    *basesvc.BaseServiceMongoImpl[authmodels.User]
	productService *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService() (*DashboardService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &DashboardService{
		orderService:   basesvc.NewBaseServiceMongo[ordermodels.Order](orderCollection),
		userService:    basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
		productService: basesvc.NewBaseServiceMongo[catalogmodels.Product](productCollection),
	}, nil
}

// Dashboard là số liệu tổng quan trả về cho trang quản trị
type Dashboard struct {
	Totals           DashboardTotals         `json:"totals"`
	RevenueByDay     []bson.M                `json:"revenueByDay"`
	TopProducts      []bson.M                `json:"topProducts"`
	RecentOrders     []ordermodels.Order     `json:"recentOrders"`
	LowStockProducts []catalogmodels.Product `json:"lowStockProducts"`
}

// DashboardTotals các con số tổng
type DashboardTotals struct {
	Orders    int64 `json:"orders"`
	Revenue   int64 `json:"revenue"`
	Customers int64 `json:"customers"`
	Products  int64 `json:"products"`
}

// GetDashboard tính toàn bộ số liệu dashboard. Days là độ rộng cửa sổ
// doanh thu theo ngày, mặc định 30.
func (s *DashboardService) GetDashboard(ctx context.Context, days int) (*Dashboard, error) {
	if days <= 0 {
		days = 30
	}
	windowStart := time.Now().UTC().AddDate(0, 0, -days).UnixMilli()

	dashboard := &Dashboard{}

	orders, err := s.orderService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	customers, err := s.userService.CountDocuments(ctx, bson.M{"role": authmodels.RoleUser})
	if err != nil {
		return nil, err
	}
	products, err := s.productService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	revenue, err := s.totalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	dashboard.Totals = DashboardTotals{
		Orders:    orders,
		Revenue:   revenue,
		Customers: customers,
		Products:  products,
	}

	if dashboard.RevenueByDay, err = s.revenueByDay(ctx, windowStart); err != nil {
		return nil, err
	}
	if dashboard.TopProducts, err = s.topProducts(ctx, windowStart); err != nil {
		return nil, err
	}

	recentOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5)
	if dashboard.RecentOrders, err = s.orderService.Find(ctx, bson.M{}, recentOpts); err != nil {
		return nil, err
	}
	if dashboard.RecentOrders == nil {
		dashboard.RecentOrders = []ordermodels.Order{}
	}

	lowStockFilter := bson.M{
		"status":      catalogmodels.StatusActive,
		"stockStatus": bson.M{"$in": []string{catalogmodels.StockLowStock, catalogmodels.StockOutOfStock}},
	}
	lowStockOpts := options.Find().SetSort(bson.D{{Key: "stock", Value: 1}}).SetLimit(20)
	if dashboard.LowStockProducts, err = s.productService.Find(ctx, lowStockFilter, lowStockOpts); err != nil {
		return nil, err
	}
	if dashboard.LowStockProducts == nil {
		dashboard.LowStockProducts = []catalogmodels.Product{}
	}

	return dashboard, nil
}

func (s *DashboardService) totalRevenue(ctx context.Context) (int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": revenueStatuses}}},
		{"$group": bson.M{"_id": nil, "revenue": bson.M{"$sum": "$amounts.total"}}},
	}
	var results []struct {
		Revenue int64 `bson:"revenue"`
	}
	if err := s.orderService.Aggregate(ctx, pipeline, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Revenue, nil
}

func (s *DashboardService) revenueByDay(ctx context.Context, windowStart int64) ([]bson.M, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    bson.M{"$in": revenueStatuses},
			"createdAt": bson.M{"$gte": windowStart},
		}},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   bson.M{"$toDate": "$createdAt"},
			}},
			"orders":  bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$amounts.total"},
		}},
		{"$sort": bson.M{"_id": 1}},
		{"$project": bson.M{"_id": 0, "date": "$_id", "orders": 1, "revenue": 1}},
	}
	var rows []bson.M
	if err := s.orderService.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []bson.M{}
	}
	return rows, nil
}

func (s *DashboardService) topProducts(ctx context.Context, windowStart int64) ([]bson.M, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    bson.M{"$in": revenueStatuses},
			"createdAt": bson.M{"$gte": windowStart},
		}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":     "$items.productId",
			"name":    bson.M{"$first": "$items.name"},
			"qty":     bson.M{"$sum": "$items.qty"},
			"revenue": bson.M{"$sum": "$items.lineTotal"},
		}},
		{"$sort": bson.M{"qty": -1}},
		{"$limit": 10},
		{"$project": bson.M{
			"_id":       0,
			"productId": bson.M{"$toString": "$_id"},
			"name":      1,
			"qty":       1,
			"revenue":   1,
		}},
	}
	var rows []bson.M
	if err := s.orderService.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []bson.M{}
	}
	return rows, nil
}
