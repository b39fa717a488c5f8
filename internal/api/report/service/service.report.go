// Package reportsvc - service cho domain report: sinh báo cáo bằng
// aggregation pipeline, lưu kết quả kèm artifactID.
package reportsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "vela_commerce/internal/api/base/models"
	basesvc "vela_commerce/internal/api/base/service"
	"vela_commerce/internal/api/events"
	ordermodels "vela_commerce/internal/api/order/models"
	models "vela_commerce/internal/api/report/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/logger"
)

// revenueStatuses các trạng thái đơn được tính doanh thu
var revenueStatuses = []string{
	ordermodels.StatusPaid,
	ordermodels.StatusProcessing,
	ordermodels.StatusShipped,
	ordermodels.StatusDelivered,
}

// ReportService là cấu trúc chứa các phương thức liên quan đến báo cáo
type ReportService struct {
	*basesvc.BaseServiceMongoImpl[models.Report]
	orderService *basesvc.BaseServiceMongoImpl[ordermodels.Order]
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	reportCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reports)
	if !exist {
		return nil, fmt.Errorf("failed to get reports collection: %v", common.ErrNotFound)
	}
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	return &ReportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Report](reportCollection),
		orderService:         basesvc.NewBaseServiceMongo[ordermodels.Order](orderCollection),
	}, nil
}

// Generate sinh báo cáo cho khoảng [periodStart, periodEnd).
// Báo cáo được tạo pending, tính xong chuyển ready kèm payload và
// artifactID uuid; lỗi tính toán chuyển failed, không ném panic.
func (s *ReportService) Generate(ctx context.Context, kind string, periodStart int64, periodEnd int64) (models.Report, error) {
	var zero models.Report

	if periodStart >= periodEnd {
		return zero, common.NewError(common.ErrCodeValidationInput, "Khoảng thời gian báo cáo không hợp lệ", common.StatusBadRequest, nil)
	}

	report, err := s.InsertOne(ctx, models.Report{
		Kind:        kind,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      models.StatusPending,
	})
	if err != nil {
		return zero, err
	}

	payload, err := s.compute(ctx, kind, periodStart, periodEnd)
	if err != nil {
		logger.GetErrorLogger().Errorf("Tính báo cáo %s thất bại: %v", kind, err)
		_, markErr := s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
			Set: bson.M{"status": models.StatusFailed, "error": err.Error()},
		})
		if markErr != nil {
			return zero, markErr
		}
		return zero, err
	}

	return s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Set: bson.M{
			"status":     models.StatusReady,
			"artifactId": uuid.NewString(),
			"payload":    payload,
		},
	})
}

// ListReports trả về báo cáo, lọc theo kind, mới nhất trước
func (s *ReportService) ListReports(ctx context.Context, kind string, page int64, limit int64) (*basemodels.PaginateResult[models.Report], error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// SnapshotYesterday sinh báo cáo sales_daily cho ngày hôm qua (UTC).
// Cron gọi hằng ngày.
func (s *ReportService) SnapshotYesterday(ctx context.Context) (models.Report, error) {
	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	return s.Generate(ctx, models.KindSalesDaily, yesterdayStart.UnixMilli(), todayStart.UnixMilli())
}

// RegisterInvalidation đăng ký handler đánh dấu báo cáo cần tính lại
// khi đơn hàng trong khoảng thời gian của báo cáo thay đổi
func (s *ReportService) RegisterInvalidation() {
	ordersCollection := s.orderService.Collection().Name()
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != ordersCollection {
			return
		}
		order, ok := e.Document.(ordermodels.Order)
		if !ok {
			return
		}
		_, err := s.UpdateMany(ctx, bson.M{
			"status":      models.StatusReady,
			"periodStart": bson.M{"$lte": order.CreatedAt},
			"periodEnd":   bson.M{"$gt": order.CreatedAt},
		}, &basesvc.UpdateData{
			Set: bson.M{"status": models.StatusPending},
		}, nil)
		if err != nil {
			logger.GetErrorLogger().Errorf("Không thể đánh dấu báo cáo cần tính lại: %v", err)
		}
	})
}

func (s *ReportService) compute(ctx context.Context, kind string, periodStart int64, periodEnd int64) (bson.M, error) {
	switch kind {
	case models.KindSalesDaily:
		return s.computeSalesDaily(ctx, periodStart, periodEnd)
	case models.KindTopProducts:
		return s.computeTopProducts(ctx, periodStart, periodEnd)
	case models.KindCustomers:
		return s.computeCustomers(ctx, periodStart, periodEnd)
	}
	return nil, common.NewError(common.ErrCodeValidationInput, "Loại báo cáo không được hỗ trợ", common.StatusBadRequest, nil)
}

// computeSalesDaily gom đơn có doanh thu theo ngày: số đơn, doanh thu, giảm giá
func (s *ReportService) computeSalesDaily(ctx context.Context, periodStart int64, periodEnd int64) (bson.M, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    bson.M{"$in": revenueStatuses},
			"createdAt": bson.M{"$gte": periodStart, "$lt": periodEnd},
		}},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   bson.M{"$toDate": "$createdAt"},
			}},
			"orders":   bson.M{"$sum": 1},
			"revenue":  bson.M{"$sum": "$amounts.total"},
			"discount": bson.M{"$sum": "$amounts.discount"},
			"shipping": bson.M{"$sum": "$amounts.shipping"},
			"tax":      bson.M{"$sum": "$amounts.tax"},
		}},
		{"$sort": bson.M{"_id": 1}},
		{"$project": bson.M{
			"_id":      0,
			"date":     "$_id",
			"orders":   1,
			"revenue":  1,
			"discount": 1,
			"shipping": 1,
			"tax":      1,
		}},
	}

	var rows []bson.M
	if err := s.orderService.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []bson.M{}
	}
	return bson.M{"rows": rows}, nil
}

// computeTopProducts xếp hạng sản phẩm theo số lượng bán trong khoảng
func (s *ReportService) computeTopProducts(ctx context.Context, periodStart int64, periodEnd int64) (bson.M, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    bson.M{"$in": revenueStatuses},
			"createdAt": bson.M{"$gte": periodStart, "$lt": periodEnd},
		}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":     "$items.productId",
			"name":    bson.M{"$first": "$items.name"},
			"slug":    bson.M{"$first": "$items.slug"},
			"qty":     bson.M{"$sum": "$items.qty"},
			"revenue": bson.M{"$sum": "$items.lineTotal"},
		}},
		{"$sort": bson.M{"qty": -1}},
		{"$limit": 50},
		{"$project": bson.M{
			"_id":       0,
			"productId": bson.M{"$toString": "$_id"},
			"name":      1,
			"slug":      1,
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
	return bson.M{"rows": rows}, nil
}

// computeCustomers gom đơn theo email: số đơn và tổng chi tiêu
func (s *ReportService) computeCustomers(ctx context.Context, periodStart int64, periodEnd int64) (bson.M, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    bson.M{"$in": revenueStatuses},
			"createdAt": bson.M{"$gte": periodStart, "$lt": periodEnd},
		}},
		{"$group": bson.M{
			"_id":     "$email",
			"orders":  bson.M{"$sum": 1},
			"spend":   bson.M{"$sum": "$amounts.total"},
			"isGuest": bson.M{"$last": "$isGuest"},
		}},
		{"$sort": bson.M{"spend": -1}},
		{"$limit": 100},
		{"$project": bson.M{
			"_id":     0,
			"email":   "$_id",
			"orders":  1,
			"spend":   1,
			"isGuest": 1,
		}},
	}

	var rows []bson.M
	if err := s.orderService.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []bson.M{}
	}
	return bson.M{"rows": rows}, nil
}

// FindReport trả về báo cáo theo id
func (s *ReportService) FindReport(ctx context.Context, id primitive.ObjectID) (models.Report, error) {
	return s.FindOneById(ctx, id)
}
