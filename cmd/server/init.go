package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"vela_commerce/config"
	authmodels "vela_commerce/internal/api/auth/models"
	catalogmodels "vela_commerce/internal/api/catalog/models"
	couponmodels "vela_commerce/internal/api/coupon/models"
	newslettermodels "vela_commerce/internal/api/newsletter/models"
	ordermodels "vela_commerce/internal/api/order/models"
	reportmodels "vela_commerce/internal/api/report/models"
	reviewmodels "vela_commerce/internal/api/review/models"
	settingsmodels "vela_commerce/internal/api/settings/models"
	shippingmodels "vela_commerce/internal/api/shipping/models"
	"vela_commerce/internal/database"
	"vela_commerce/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Categories = "catalog_categories"
	global.MongoDB_ColNames.Products = "catalog_products"
	global.MongoDB_ColNames.Reviews = "reviews"
	global.MongoDB_ColNames.Orders = "orders"
	global.MongoDB_ColNames.Coupons = "coupons"
	global.MongoDB_ColNames.ShippingZones = "shipping_zones"
	global.MongoDB_ColNames.ShippingRates = "shipping_rates"
	global.MongoDB_ColNames.NewsletterSubscriptions = "newsletter_subscriptions"
	global.MongoDB_ColNames.NewsletterCampaigns = "newsletter_campaigns"
	global.MongoDB_ColNames.Settings = "store_settings"
	global.MongoDB_ColNames.Reports = "reports"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký các custom validator:
// no_xss, strong_password, coupon_code, slug, order_status, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và các collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag `index` trên model
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	ctx := context.TODO()
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Categories), catalogmodels.Category{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Reviews), reviewmodels.Review{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Coupons), couponmodels.Coupon{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.ShippingZones), shippingmodels.ShippingZone{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.ShippingRates), shippingmodels.ShippingRate{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.NewsletterSubscriptions), newslettermodels.NewsletterSubscription{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.NewsletterCampaigns), newslettermodels.NewsletterCampaign{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Settings), settingsmodels.StoreSettings{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Reports), reportmodels.Report{})

	// Index bổ sung (nested field, compound) không thể khai báo qua tag
	if err := database.CreateCommerceAdditionalIndexes(ctx, db); err != nil {
		logrus.Errorf("Failed to create additional indexes: %v", err)
	}
}
