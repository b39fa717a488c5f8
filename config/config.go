package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng:
// server, cơ sở dữ liệu, JWT, cổng thanh toán và các tham số nghiệp vụ.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	JwtTTLMinutes         int    `env:"JWT_TTL_MINUTES" envDefault:"1440"`         // Thời gian sống của token (phút)
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Payment gateway
	PaymentGatewayURL    string `env:"PAYMENT_GATEWAY_URL"`                     // Base URL cổng thanh toán
	PaymentMerchantID    string `env:"PAYMENT_MERCHANT_ID"`                     // Mã merchant
	PaymentMerchantKey   string `env:"PAYMENT_MERCHANT_KEY"`                    // Khóa bí mật ký giao dịch
	PaymentTimeoutSecond int    `env:"PAYMENT_TIMEOUT_SECONDS" envDefault:"15"` // Timeout gọi gateway (giây)

	// Tham số nghiệp vụ storefront
	TaxRate               float64 `env:"TAX_RATE" envDefault:"0.10"`                 // Thuế suất trên (subtotal - discount)
	FreeShippingThreshold int64   `env:"FREE_SHIPPING_THRESHOLD" envDefault:"50000"` // Ngưỡng miễn phí vận chuyển (đơn vị nhỏ nhất)

	// Scheduler
	ReportCronSpec    string `env:"REPORT_CRON_SPEC" envDefault:"0 2 * * *"` // Lịch chạy snapshot báo cáo hằng ngày
	CouponSweepMinute int    `env:"COUPON_SWEEP_MINUTES" envDefault:"60"`    // Chu kỳ quét coupon hết hạn (phút)

	// Tài khoản admin khởi tạo (chỉ dùng khi collection users rỗng)
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
