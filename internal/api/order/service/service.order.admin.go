package ordersvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "vela_commerce/internal/api/base/models"
	basesvc "vela_commerce/internal/api/base/service"
	orderdto "vela_commerce/internal/api/order/dto"
	models "vela_commerce/internal/api/order/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/logger"
	"vela_commerce/internal/utility"
)

// AdminListFilter bộ lọc danh sách đơn cho admin
type AdminListFilter struct {
	Status   string
	Email    string
	IsGuest  *bool
	FromDate int64
	ToDate   int64
}

// AdminList trả về danh sách đơn có lọc, mới nhất trước
func (s *OrderService) AdminList(ctx context.Context, filter AdminListFilter, page int64, limit int64) (*basemodels.PaginateResult[models.Order], error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Email != "" {
		query["email"] = utility.NormalizeEmail(filter.Email)
	}
	if filter.IsGuest != nil {
		query["isGuest"] = *filter.IsGuest
	}
	if filter.FromDate > 0 || filter.ToDate > 0 {
		createdAt := bson.M{}
		if filter.FromDate > 0 {
			createdAt["$gte"] = filter.FromDate
		}
		if filter.ToDate > 0 {
			createdAt["$lte"] = filter.ToDate
		}
		query["createdAt"] = createdAt
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, query, page, limit, opts)
}

// SetStatus đổi trạng thái đơn. Giá trị tự do, không giới hạn trong
// danh sách chuẩn, nhưng đơn đã hủy/hoàn tiền thì đóng băng.
func (s *OrderService) SetStatus(ctx context.Context, orderID primitive.ObjectID, status string) (models.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if models.TerminalStatus(order.Status) {
		return models.Order{}, common.WithDetails(common.ErrInvalidState, map[string]interface{}{"status": order.Status})
	}

	updated, err := s.UpdateById(ctx, orderID, &basesvc.UpdateData{Set: bson.M{"status": status}})
	if err != nil {
		return models.Order{}, err
	}
	logger.LogOrder("set_status", order.OrderNumber, nil, map[string]interface{}{
		"from": order.Status,
		"to":   status,
	})
	return updated, nil
}

// SetTracking gắn thông tin vận đơn và chuyển trạng thái sang shipped
// nếu đơn đang ở trước đó trong luồng chuẩn
func (s *OrderService) SetTracking(ctx context.Context, orderID primitive.ObjectID, input *orderdto.TrackingInput) (models.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}

	set := bson.M{
		"tracking": models.TrackingInfo{
			Carrier: input.Carrier,
			Number:  input.Number,
			URL:     input.URL,
		},
	}
	if order.Status == models.StatusPaid || order.Status == models.StatusProcessing {
		set["status"] = models.StatusShipped
	}

	return s.UpdateById(ctx, orderID, &basesvc.UpdateData{Set: set})
}

// AddNote thêm ghi chú vào đơn
func (s *OrderService) AddNote(ctx context.Context, orderID primitive.ObjectID, note string) (models.Order, error) {
	return s.UpdateById(ctx, orderID, &basesvc.UpdateData{
		Push: bson.M{"notes": note},
	})
}

// CancelOrder hủy đơn: hoàn tồn kho, hoàn lượt dùng coupon,
// chuyển trạng thái cancelled. Đơn đã giao hoặc đã đóng không hủy được.
func (s *OrderService) CancelOrder(ctx context.Context, orderID primitive.ObjectID, reason string) (models.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	switch order.Status {
	case models.StatusDelivered, models.StatusCancelled, models.StatusRefunded:
		return models.Order{}, common.WithDetails(common.ErrInvalidState, map[string]interface{}{"status": order.Status})
	}

	s.restoreStock(ctx, order.Items)
	if order.CouponCode != "" {
		_ = s.couponService.ReleaseCoupon(ctx, order.CouponCode)
	}

	update := &basesvc.UpdateData{Set: bson.M{"status": models.StatusCancelled}}
	if reason != "" {
		update.Push = bson.M{"notes": "Hủy đơn: " + reason}
	}

	updated, err := s.UpdateById(ctx, orderID, update)
	if err != nil {
		return models.Order{}, err
	}
	logger.LogOrder("cancel", order.OrderNumber, nil, map[string]interface{}{"reason": reason})
	return updated, nil
}

// RefundOrder hoàn tiền cho đơn, không vượt quá tổng đơn.
// Hoàn toàn bộ thì hoàn tồn kho và chuyển trạng thái refunded,
// hoàn một phần giữ nguyên trạng thái.
func (s *OrderService) RefundOrder(ctx context.Context, orderID primitive.ObjectID, input *orderdto.RefundInput) (models.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if models.TerminalStatus(order.Status) {
		return models.Order{}, common.WithDetails(common.ErrInvalidState, map[string]interface{}{"status": order.Status})
	}
	if input.Amount > order.Amounts.Total {
		return models.Order{}, common.NewError(common.ErrCodeValidationInput, "Số tiền hoàn vượt quá tổng đơn", common.StatusBadRequest, map[string]interface{}{
			"amount": input.Amount,
			"total":  order.Amounts.Total,
		})
	}

	set := bson.M{
		"refund": models.RefundInfo{
			Amount: input.Amount,
			Reason: input.Reason,
			At:     time.Now().UnixMilli(),
		},
	}
	if input.Amount == order.Amounts.Total {
		s.restoreStock(ctx, order.Items)
		set["status"] = models.StatusRefunded
	}

	updated, err := s.UpdateById(ctx, orderID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return models.Order{}, err
	}
	logger.LogOrder("refund", order.OrderNumber, nil, map[string]interface{}{
		"amount": input.Amount,
		"reason": input.Reason,
	})
	return updated, nil
}
