// Package ordersvc - service cho domain order: báo giá, đặt đơn,
// xác nhận thanh toán và tra cứu.
package ordersvc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "vela_commerce/internal/api/auth/models"
	basemodels "vela_commerce/internal/api/base/models"
	basesvc "vela_commerce/internal/api/base/service"
	catalogmodels "vela_commerce/internal/api/catalog/models"
	couponmodels "vela_commerce/internal/api/coupon/models"
	couponsvc "vela_commerce/internal/api/coupon/service"
	orderdto "vela_commerce/internal/api/order/dto"
	models "vela_commerce/internal/api/order/models"
	settingsmodels "vela_commerce/internal/api/settings/models"
	settingssvc "vela_commerce/internal/api/settings/service"
	shippingmodels "vela_commerce/internal/api/shipping/models"
	shippingsvc "vela_commerce/internal/api/shipping/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/logger"
	"vela_commerce/internal/payment"
	"vela_commerce/internal/utility"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	productService  *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	couponService   *couponsvc.CouponService
	zoneService     *shippingsvc.ZoneService
	rateService     *shippingsvc.RateService
	settingsService *settingssvc.SettingsService
	paymentClient   *payment.Client
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	couponService, err := couponsvc.NewCouponService()
	if err != nil {
		return nil, err
	}
	zoneService, err := shippingsvc.NewZoneService()
	if err != nil {
		return nil, err
	}
	rateService, err := shippingsvc.NewRateService()
	if err != nil {
		return nil, err
	}
	settingsService, err := settingssvc.NewSettingsService()
	if err != nil {
		return nil, err
	}

	cfg := global.ServerConfig
	paymentClient := payment.NewClient(
		cfg.PaymentGatewayURL,
		cfg.PaymentMerchantID,
		cfg.PaymentMerchantKey,
		time.Duration(cfg.PaymentTimeoutSecond)*time.Second,
	)

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
		productService:       basesvc.NewBaseServiceMongo[catalogmodels.Product](productCollection),
		couponService:        couponService,
		zoneService:          zoneService,
		rateService:          rateService,
		settingsService:      settingsService,
		paymentClient:        paymentClient,
	}, nil
}

// Quote là kết quả báo giá giỏ hàng, chưa tạo đơn
type Quote struct {
	Items    []models.OrderItem           `json:"items"`
	Amounts  models.OrderAmounts          `json:"amounts"`
	Currency string                       `json:"currency"`
	Coupon   *couponmodels.Coupon         `json:"coupon,omitempty"`
	Zone     *shippingmodels.ShippingZone `json:"zone,omitempty"`
	EtaDays  int                          `json:"etaDays"`
}

// QuoteOrder tính toàn bộ các khoản tiền cho giỏ hàng theo giá hiện tại.
// Subtotal từ giá sản phẩm hiện hành, discount từ coupon đã kiểm tra,
// shipping theo zone/rate khớp (0 khi đạt ngưỡng miễn phí),
// tax = round((subtotal - discount) × taxRate).
func (s *OrderService) QuoteOrder(ctx context.Context, input *orderdto.QuoteInput) (*Quote, error) {
	return s.buildQuote(ctx, input.Items, input.CouponCode, input.Country)
}

func (s *OrderService) buildQuote(ctx context.Context, items []orderdto.OrderItemInput, couponCode string, country string) (*Quote, error) {
	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	var subtotal int64
	var totalWeight int64
	for _, item := range items {
		if !primitive.IsValidObjectID(item.ProductID) {
			return nil, common.WithDetails(common.ErrInvalidFormat, map[string]interface{}{"productId": item.ProductID})
		}
		product, err := s.productService.FindOneById(ctx, utility.String2ObjectID(item.ProductID))
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.NewError(common.ErrCodeValidationInput, "Sản phẩm không tồn tại", common.StatusBadRequest, map[string]interface{}{"productId": item.ProductID})
			}
			return nil, err
		}
		if !product.IsPublished() {
			return nil, common.NewError(common.ErrCodeBusinessState, "Sản phẩm đã ngừng bán", common.StatusUnprocessable, map[string]interface{}{"productId": item.ProductID})
		}

		lineTotal := product.Price * int64(item.Qty)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Slug:      product.Slug,
			Image:     product.PrimaryImage(),
			UnitPrice: product.Price,
			Qty:       item.Qty,
			LineTotal: lineTotal,
		})
		subtotal += lineTotal
		totalWeight += product.Weight * int64(item.Qty)
	}

	quote := &Quote{
		Items:    orderItems,
		Currency: settings.Currency,
	}

	var discount int64
	if couponCode != "" {
		coupon, computed, err := s.couponService.ValidateCoupon(ctx, couponCode, subtotal)
		if err != nil {
			return nil, err
		}
		discount = computed
		quote.Coupon = &coupon
	}

	discounted := subtotal - discount

	var shipping int64
	zone, err := s.zoneService.MatchZone(ctx, country)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		// Không có zone nào cấu hình: giao hàng miễn phí
	} else {
		quote.Zone = &zone
		rate, err := s.rateService.MatchRate(ctx, zone.ID, discounted, totalWeight)
		if err != nil {
			return nil, err
		}
		shipping = rate.Amount
		quote.EtaDays = rate.EtaDays
	}
	if quote.Coupon != nil && quote.Coupon.WaivesShipping() {
		shipping = 0
	}

	quote.Amounts = ComputeAmounts(subtotal, discount, shipping, settings.TaxRate, settings.FreeShippingThreshold)
	return quote, nil
}

// ComputeAmounts lắp bảng tiền của đơn từ subtotal, giảm giá và phí ship
// đã match. Ngưỡng freeship và thuế tính trên số tiền sau giảm giá,
// thuế làm tròn về đơn vị tiền nhỏ nhất.
func ComputeAmounts(subtotal, discount, shipping int64, taxRate float64, freeShippingThreshold int64) models.OrderAmounts {
	discounted := subtotal - discount
	if freeShippingThreshold > 0 && discounted >= freeShippingThreshold {
		shipping = 0
	}
	tax := int64(math.Round(float64(discounted) * taxRate))
	return models.OrderAmounts{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal - discount + shipping + tax,
	}
}

// PlaceOrder đặt đơn: kiểm tra và trừ tồn kho, snapshot giỏ hàng và địa chỉ,
// tăng lượt dùng coupon, tạo payment intent cho phương thức không phải COD.
// User nil là khách vãng lai, nhận định danh guest-<uuid> và bắt buộc email.
func (s *OrderService) PlaceOrder(ctx context.Context, user *authmodels.User, input *orderdto.PlaceOrderInput) (models.Order, error) {
	var zero models.Order

	email := input.Email
	if user != nil && email == "" {
		email = user.Email
	}
	if email == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Khách vãng lai phải cung cấp email", common.StatusBadRequest, nil)
	}
	email = utility.NormalizeEmail(email)

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return zero, err
	}
	if !paymentMethodEnabled(settings.PaymentMethods, input.PaymentMethod) {
		return zero, common.NewError(common.ErrCodeValidationInput, "Phương thức thanh toán không khả dụng", common.StatusBadRequest, map[string]interface{}{"method": input.PaymentMethod})
	}

	quote, err := s.buildQuote(ctx, input.Items, input.CouponCode, input.ShippingAddress.Country)
	if err != nil {
		return zero, err
	}

	decremented, err := s.decrementStock(ctx, quote.Items)
	if err != nil {
		s.restoreStock(ctx, decremented)
		return zero, err
	}

	if quote.Coupon != nil {
		if err := s.couponService.RedeemCoupon(ctx, quote.Coupon.Code); err != nil {
			s.restoreStock(ctx, decremented)
			return zero, err
		}
	}

	order := models.Order{
		OrderNumber:     models.GenerateOrderNumber(time.Now()),
		IsGuest:         user == nil,
		Email:           email,
		Items:           quote.Items,
		Amounts:         quote.Amounts,
		ShippingAddress: toOrderAddress(&input.ShippingAddress),
		Status:          models.StatusPending,
		Payment:         models.PaymentInfo{Method: input.PaymentMethod},
		Notes:           []string{},
	}
	if user != nil {
		order.UserID = &user.ID
	} else {
		order.GuestID = "guest-" + uuid.NewString()
	}
	if quote.Coupon != nil {
		order.CouponCode = quote.Coupon.Code
	}
	if quote.Zone != nil {
		order.ShippingZoneID = &quote.Zone.ID
	}
	if input.BillingAddress != nil {
		order.BillingAddress = toOrderAddress(input.BillingAddress)
	} else {
		order.BillingAddress = order.ShippingAddress
	}
	if input.Notes != "" {
		order.Notes = append(order.Notes, input.Notes)
	}

	if input.PaymentMethod != models.PaymentCOD {
		intentID, err := s.paymentClient.CreateIntent(ctx, order.OrderNumber, order.Amounts.Total, quote.Currency, input.PaymentMethod)
		if err != nil {
			s.restoreStock(ctx, decremented)
			if quote.Coupon != nil {
				_ = s.couponService.ReleaseCoupon(ctx, quote.Coupon.Code)
			}
			return zero, err
		}
		order.Payment.IntentID = intentID
	}

	inserted, err := s.insertWithUniqueNumber(ctx, order)
	if err != nil {
		s.restoreStock(ctx, decremented)
		if quote.Coupon != nil {
			_ = s.couponService.ReleaseCoupon(ctx, quote.Coupon.Code)
		}
		return zero, err
	}
	return inserted, nil
}

// ConfirmPayment xác nhận thanh toán: kiểm chữ ký HMAC của gateway
// rồi chuyển đơn sang paid
func (s *OrderService) ConfirmPayment(ctx context.Context, input *orderdto.ConfirmPaymentInput) (models.Order, error) {
	var zero models.Order

	order, err := s.FindByNumber(ctx, input.OrderNumber)
	if err != nil {
		return zero, err
	}
	if order.Payment.IntentID == "" || order.Payment.IntentID != input.IntentID {
		return zero, common.ErrPaymentSignature
	}
	if order.Status != models.StatusPending {
		return zero, common.WithDetails(common.ErrInvalidState, map[string]interface{}{"status": order.Status})
	}
	if !s.paymentClient.VerifySignature(input.IntentID, order.OrderNumber, order.Amounts.Total, input.Signature) {
		logger.LogOrder("payment_signature_rejected", order.OrderNumber, nil, map[string]interface{}{"intentId": input.IntentID})
		return zero, common.ErrPaymentSignature
	}

	return s.UpdateById(ctx, order.ID, &basesvc.UpdateData{
		Set: bson.M{
			"status":         models.StatusPaid,
			"payment.paidAt": time.Now().UnixMilli(),
		},
	})
}

// FindByNumber tìm đơn theo mã đơn
func (s *OrderService) FindByNumber(ctx context.Context, orderNumber string) (models.Order, error) {
	return s.FindOne(ctx, bson.M{"orderNumber": orderNumber}, nil)
}

// FindForUser trả về đơn theo mã, chỉ chủ đơn hoặc admin được xem
func (s *OrderService) FindForUser(ctx context.Context, actor authmodels.User, orderNumber string) (models.Order, error) {
	order, err := s.FindByNumber(ctx, orderNumber)
	if err != nil {
		return models.Order{}, err
	}
	if actor.IsAdmin() {
		return order, nil
	}
	if order.UserID == nil || *order.UserID != actor.ID {
		return models.Order{}, common.ErrForbidden
	}
	return order, nil
}

// GuestLookup tra cứu đơn của khách vãng lai theo mã đơn + email
func (s *OrderService) GuestLookup(ctx context.Context, orderNumber string, email string) (models.Order, error) {
	return s.FindOne(ctx, bson.M{
		"orderNumber": orderNumber,
		"email":       utility.NormalizeEmail(email),
	}, nil)
}

// MyOrders trả về đơn của người dùng, mới nhất trước
func (s *OrderService) MyOrders(ctx context.Context, userID primitive.ObjectID, page int64, limit int64) (*basemodels.PaginateResult[models.Order], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"userId": userID}, page, limit, opts)
}

// decrementStock trừ tồn kho từng dòng hàng bằng update có điều kiện:
// chỉ khớp khi stock còn đủ, nên tồn kho không bao giờ âm.
// Trả về các dòng đã trừ để caller hoàn lại khi thất bại giữa chừng.
func (s *OrderService) decrementStock(ctx context.Context, items []models.OrderItem) ([]models.OrderItem, error) {
	decremented := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		result, err := s.productService.Collection().UpdateOne(ctx, bson.M{
			"_id":   item.ProductID,
			"stock": bson.M{"$gte": item.Qty},
		}, bson.M{
			"$inc": bson.M{"stock": -item.Qty},
			"$set": bson.M{"updatedAt": time.Now().UnixMilli()},
		})
		if err != nil {
			return decremented, common.ConvertMongoError(err)
		}
		if result.MatchedCount == 0 {
			return decremented, common.WithDetails(common.ErrOutOfStock, map[string]interface{}{
				"productId": item.ProductID.Hex(),
				"requested": item.Qty,
			})
		}
		decremented = append(decremented, item)
		s.reconcileStockStatus(ctx, item.ProductID)
	}
	return decremented, nil
}

// restoreStock hoàn tồn kho cho các dòng đã trừ
func (s *OrderService) restoreStock(ctx context.Context, items []models.OrderItem) {
	for _, item := range items {
		_, err := s.productService.Collection().UpdateOne(ctx, bson.M{"_id": item.ProductID}, bson.M{
			"$inc": bson.M{"stock": item.Qty},
			"$set": bson.M{"updatedAt": time.Now().UnixMilli()},
		})
		if err != nil {
			logger.GetErrorLogger().Errorf("Không thể hoàn tồn kho cho sản phẩm %s: %v", item.ProductID.Hex(), err)
			continue
		}
		s.reconcileStockStatus(ctx, item.ProductID)
	}
}

// reconcileStockStatus cập nhật lại stockStatus dẫn xuất sau khi stock thay đổi
func (s *OrderService) reconcileStockStatus(ctx context.Context, productID primitive.ObjectID) {
	product, err := s.productService.FindOneById(ctx, productID)
	if err != nil {
		return
	}
	status := catalogmodels.ComputeStockStatus(product.Stock, product.LowStockThreshold)
	if status == product.StockStatus {
		return
	}
	_, err = s.productService.UpdateOne(ctx, bson.M{"_id": productID}, &basesvc.UpdateData{
		Set: bson.M{"stockStatus": status},
	}, nil)
	if err != nil {
		logger.GetErrorLogger().Errorf("Không thể cập nhật stockStatus cho sản phẩm %s: %v", productID.Hex(), err)
	}
}

// insertWithUniqueNumber chèn đơn, sinh lại mã khi đụng unique index
func (s *OrderService) insertWithUniqueNumber(ctx context.Context, order models.Order) (models.Order, error) {
	for attempt := 0; attempt < 3; attempt++ {
		inserted, err := s.InsertOne(ctx, order)
		if err == nil {
			return inserted, nil
		}
		if !errors.Is(err, common.ErrDuplicate) {
			return models.Order{}, err
		}
		order.OrderNumber = models.GenerateOrderNumber(time.Now())
	}
	return models.Order{}, common.NewError(common.ErrCodeDatabase, "Không thể sinh mã đơn duy nhất", common.StatusInternalServerError, nil)
}

func toOrderAddress(input *orderdto.OrderAddressInput) models.OrderAddress {
	return models.OrderAddress{
		Name:       input.Name,
		Phone:      input.Phone,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Country:    input.Country,
	}
}

func paymentMethodEnabled(methods settingsmodels.PaymentMethods, method string) bool {
	switch method {
	case models.PaymentCard:
		return methods.Card.Enabled
	case models.PaymentCOD:
		return methods.COD.Enabled
	case models.PaymentBankTransfer:
		return methods.BankTransfer.Enabled
	}
	return false
}
