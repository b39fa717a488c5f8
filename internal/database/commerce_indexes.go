// Package database - Index bổ sung cho storefront (nested fields, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vela_commerce/internal/global"
)

// CreateCommerceAdditionalIndexes tạo các index bổ sung cho storefront.
// Gọi sau CreateIndexes cho từng collection.
func CreateCommerceAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// orders: (userId, createdAt desc) — truy vấn "đơn hàng của tôi"
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_user_created").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (guestId, email) sparse — tra cứu đơn hàng guest theo số đơn + email
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "guestId", Value: 1},
			{Key: "email", Value: 1},
		},
		Options: options.Index().SetName("order_guest_email").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (status, createdAt desc) — filter admin và aggregation báo cáo
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_status_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (items.productId) multikey — thống kê top sản phẩm và kiểm tra verified review
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "items.productId", Value: 1}},
		Options: options.Index().SetName("order_item_product"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// reviews: (productId, userId) unique — mỗi user một đánh giá trên một sản phẩm
	reviews := db.Collection(global.MongoDB_ColNames.Reviews)
	if _, err := reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "userId", Value: 1},
		},
		Options: options.Index().SetName("review_product_user_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (categoryId, status) — listing storefront theo danh mục
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "categoryId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("product_category_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// shipping_rates: (zoneId, minSubtotal) — match bracket biểu phí
	rates := db.Collection(global.MongoDB_ColNames.ShippingRates)
	if _, err := rates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "zoneId", Value: 1},
			{Key: "minSubtotal", Value: 1},
		},
		Options: options.Index().SetName("rate_zone_min"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}
