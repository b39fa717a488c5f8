package main

import (
	"context"

	"vela_commerce/internal/api/initsvc"
	"vela_commerce/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định khi boot. Các bước không
// bắt buộc (settings, shipping zone) lỗi thì chỉ warn, admin user lỗi
// thì fatal vì hệ thống quản trị không dùng được.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	ctx := context.Background()

	// 1. Tài khoản admin từ env (chỉ khi collection users rỗng)
	if err := initService.InitAdminUser(ctx); err != nil {
		log.Fatalf("Failed to initialize admin user: %v", err)
	}
	log.Info("✅ [INIT] Step 1: Admin user ensured")

	// 2. Singleton cấu hình cửa hàng
	if err := initService.InitStoreSettings(ctx); err != nil {
		log.WithError(err).Warn("❌ [INIT] Step 2: Failed to initialize store settings")
	} else {
		log.Info("✅ [INIT] Step 2: Store settings ensured")
	}

	// 3. Khu vực giao hàng mặc định (chỉ khi chưa có zone nào)
	if err := initService.InitDefaultShippingZone(ctx); err != nil {
		log.WithError(err).Warn("❌ [INIT] Step 3: Failed to initialize default shipping zone")
	} else {
		log.Info("✅ [INIT] Step 3: Default shipping zone ensured")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
