// Package worker - các background worker chạy định kỳ của hệ thống.
package worker

import (
	"context"
	"time"

	couponsvc "vela_commerce/internal/api/coupon/service"
	"vela_commerce/internal/logger"
)

// CouponSweepWorker quét và vô hiệu hóa các coupon quá hạn endsAt.
// Coupon hết hạn vẫn bị từ chối lúc validate, worker này chỉ dọn cờ
// active để danh sách quản trị và index phản ánh đúng trạng thái.
type CouponSweepWorker struct {
	couponService *couponsvc.CouponService
	interval      time.Duration
}

// NewCouponSweepWorker tạo worker mới. interval dưới 1 phút được
// nâng lên mặc định 60 phút.
func NewCouponSweepWorker(interval time.Duration) (*CouponSweepWorker, error) {
	couponService, err := couponsvc.NewCouponService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 60 * time.Minute
	}
	return &CouponSweepWorker{
		couponService: couponService,
		interval:      interval,
	}, nil
}

// Start chạy vòng quét cho tới khi ctx bị hủy
func (w *CouponSweepWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🎟️ [COUPON_SWEEP] Starting Coupon Sweep Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🎟️ [COUPON_SWEEP] Coupon Sweep Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🎟️ [COUPON_SWEEP] Panic khi quét coupon, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				sweptCount, err := w.couponService.SweepExpired(ctx)
				if err != nil {
					log.WithError(err).Error("🎟️ [COUPON_SWEEP] Failed to sweep expired coupons")
					return
				}

				if sweptCount > 0 {
					log.WithFields(map[string]interface{}{
						"sweptCount": sweptCount,
					}).Info("🎟️ [COUPON_SWEEP] Deactivated expired coupons")
				}
				// sweptCount = 0 thì không log để giảm noise
			}()
		}
	}
}
