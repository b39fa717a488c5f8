package worker

import (
	"context"

	"github.com/robfig/cron/v3"

	reportsvc "vela_commerce/internal/api/report/service"
	"vela_commerce/internal/logger"
)

// ReportSnapshotWorker chạy cron chụp báo cáo sales_daily của ngày
// hôm trước. Lịch chạy lấy từ cấu hình REPORT_CRON_SPEC.
type ReportSnapshotWorker struct {
	reportService *reportsvc.ReportService
	cronSpec      string
	scheduler     *cron.Cron
}

// NewReportSnapshotWorker tạo worker mới với spec cron 5 trường chuẩn
func NewReportSnapshotWorker(cronSpec string) (*ReportSnapshotWorker, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, err
	}
	if cronSpec == "" {
		cronSpec = "0 2 * * *"
	}
	return &ReportSnapshotWorker{
		reportService: reportService,
		cronSpec:      cronSpec,
		scheduler:     cron.New(),
	}, nil
}

// Start đăng ký job và chạy scheduler cho tới khi ctx bị hủy.
// Lỗi sinh báo cáo được đánh dấu failed trong document và chỉ log,
// không bao giờ dừng tiến trình.
func (w *ReportSnapshotWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	_, err := w.scheduler.AddFunc(w.cronSpec, func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("📊 [REPORT_SNAPSHOT] Panic khi chụp báo cáo, sẽ tiếp tục ở lần chạy tiếp theo")
			}
		}()

		report, err := w.reportService.SnapshotYesterday(ctx)
		if err != nil {
			log.WithError(err).Error("📊 [REPORT_SNAPSHOT] Failed to snapshot daily sales report")
			return
		}
		log.WithFields(map[string]interface{}{
			"reportId":   report.ID.Hex(),
			"artifactId": report.ArtifactID,
		}).Info("📊 [REPORT_SNAPSHOT] Daily sales report ready")
	})
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"cronSpec": w.cronSpec,
		}).Error("📊 [REPORT_SNAPSHOT] Cron spec không hợp lệ, worker không chạy")
		return
	}

	log.WithFields(map[string]interface{}{
		"cronSpec": w.cronSpec,
	}).Info("📊 [REPORT_SNAPSHOT] Starting Report Snapshot Worker...")

	w.scheduler.Start()
	<-ctx.Done()

	stopCtx := w.scheduler.Stop()
	<-stopCtx.Done()
	log.Info("📊 [REPORT_SNAPSHOT] Report Snapshot Worker stopped")
}
