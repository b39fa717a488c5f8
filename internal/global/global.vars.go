// Package global chứa các biến toàn cục của ứng dụng: cấu hình server,
// phiên kết nối MongoDB, validator và registry các collections.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"vela_commerce/config"
	"vela_commerce/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users                   string // Tên collection cho người dùng
	Categories              string // Tên collection cho danh mục sản phẩm
	Products                string // Tên collection cho sản phẩm
	Reviews                 string // Tên collection cho đánh giá sản phẩm
	Orders                  string // Tên collection cho đơn hàng
	Coupons                 string // Tên collection cho mã giảm giá
	ShippingZones           string // Tên collection cho khu vực giao hàng
	ShippingRates           string // Tên collection cho biểu phí giao hàng
	NewsletterSubscriptions string // Tên collection cho đăng ký nhận tin
	NewsletterCampaigns     string // Tên collection cho chiến dịch email
	Settings                string // Tên collection cho cấu hình cửa hàng (singleton)
	Reports                 string // Tên collection cho báo cáo
}

// Các biến toàn cục
var Validate *validator.Validate                // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client               // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration          // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{} // Tên các collection

// RegistryCollections chứa các collections đã khởi tạo, truy cập theo tên
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
