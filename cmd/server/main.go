package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vela_commerce/internal/database"
	"vela_commerce/internal/global"
	"vela_commerce/internal/logger"
	"vela_commerce/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// startWorkers chạy các background worker: quét coupon hết hạn và
// cron chụp báo cáo hằng ngày. Worker nào tạo thất bại thì chỉ log,
// server vẫn chạy.
func startWorkers(ctx context.Context) {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	couponWorker, err := worker.NewCouponSweepWorker(time.Duration(cfg.CouponSweepMinute) * time.Minute)
	if err != nil {
		log.WithError(err).Error("Failed to create coupon sweep worker, continuing without it")
	} else {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("🎟️ [COUPON_SWEEP] Worker goroutine panic")
				}
			}()
			couponWorker.Start(ctx)
		}()
	}

	reportWorker, err := worker.NewReportSnapshotWorker(cfg.ReportCronSpec)
	if err != nil {
		log.WithError(err).Error("Failed to create report snapshot worker, continuing without it")
	} else {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("📊 [REPORT_SNAPSHOT] Worker goroutine panic")
				}
			}()
			reportWorker.Start(ctx)
		}()
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục: config, validator, MongoDB, indexes
	InitGlobal()

	// Khởi tạo registry collections
	InitRegistry()

	// Khởi tạo dữ liệu mặc định: admin, settings, shipping zone
	InitDefaultData()

	log := logger.GetAppLogger()

	// Context hủy khi nhận SIGINT/SIGTERM, dừng workers và server
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startWorkers(ctx)

	app := InitFiberApp()

	// Shutdown server khi context bị hủy
	go func() {
		<-ctx.Done()
		log.Info("Nhận tín hiệu dừng, shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}
	}()

	address := global.ServerConfig.Address
	log.WithFields(map[string]interface{}{
		"address": address,
	}).Info("Starting Fiber server...")

	if err := app.Listen(address); err != nil {
		log.WithError(err).Error("Fiber server stopped with error")
	}

	if err := database.CloseInstance(global.MongoDB_Session); err != nil {
		log.WithError(err).Error("Error closing MongoDB connection")
	}
	log.Info("Server stopped")
}
