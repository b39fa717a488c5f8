package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái tồn kho của sản phẩm
const (
	StockInStock    = "in_stock"
	StockLowStock   = "low_stock"
	StockOutOfStock = "out_of_stock"
)

// DefaultLowStockThreshold là ngưỡng cảnh báo tồn kho mặc định
const DefaultLowStockThreshold = 5

// Trạng thái vòng đời của sản phẩm. Chỉ ACTIVE hiện trên storefront.
const (
	StatusActive     = "ACTIVE"
	StatusInactive   = "INACTIVE"
	StatusDraft      = "DRAFT"
	StatusOutOfStock = "OUT_OF_STOCK"
)

// ProductImage là một ảnh của sản phẩm, giữ kèm định danh file trên
// storage để xóa được file gốc khi gỡ ảnh
type ProductImage struct {
	URL       string `json:"url" bson:"url"`
	StorageID string `json:"storageId" bson:"storageId,omitempty"`
	IsPrimary bool   `json:"isPrimary" bson:"isPrimary"`
}

// Product định nghĩa sản phẩm.
// Price tính bằng đơn vị nhỏ nhất của tiền tệ (minor units),
// Weight tính bằng gram (dùng cho biểu phí giao hàng theo khối lượng).
// StockStatus là field dẫn xuất từ Stock và LowStockThreshold,
// được tính lại trên mọi thao tác ghi.
type Product struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	Slug              string             `json:"slug" bson:"slug" index:"unique"`
	Description       string             `json:"description,omitempty" bson:"description,omitempty"`
	Price             int64              `json:"price" bson:"price"`
	CompareAtPrice    *int64             `json:"compareAtPrice,omitempty" bson:"compareAtPrice,omitempty"`
	Images            []ProductImage     `json:"images" bson:"images"`
	CategoryID        primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"single"`
	Stock             int                `json:"stock" bson:"stock"`
	StockStatus       string             `json:"stockStatus" bson:"stockStatus"`
	LowStockThreshold int                `json:"lowStockThreshold" bson:"lowStockThreshold" default:"5"`
	Weight            int64              `json:"weight" bson:"weight"`
	Attributes        map[string]string  `json:"attributes" bson:"attributes"`
	Tags              []string           `json:"tags" bson:"tags" index:"single"`
	RatingAvg         float64            `json:"ratingAvg" bson:"ratingAvg"`
	RatingCount       int                `json:"ratingCount" bson:"ratingCount"`
	Featured          bool               `json:"featured" bson:"featured"`
	Status            string             `json:"status" bson:"status" default:"ACTIVE" index:"single"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}

// PrimaryImage trả về URL ảnh chính, fallback ảnh đầu tiên, rỗng khi không có ảnh
func (p *Product) PrimaryImage() string {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return p.Images[i].URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

// IsPublished báo sản phẩm có hiện trên storefront không
func (p *Product) IsPublished() bool {
	return p.Status == StatusActive
}

// ComputeStockStatus tính trạng thái tồn kho từ số lượng và ngưỡng cảnh báo.
// stock = 0 → out_of_stock, stock <= threshold → low_stock, ngược lại in_stock.
func ComputeStockStatus(stock, lowStockThreshold int) string {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	switch {
	case stock <= 0:
		return StockOutOfStock
	case stock <= lowStockThreshold:
		return StockLowStock
	default:
		return StockInStock
	}
}
