package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authdto "vela_commerce/internal/api/auth/dto"
	authmodels "vela_commerce/internal/api/auth/models"
	authsvc "vela_commerce/internal/api/auth/service"
	catalogdto "vela_commerce/internal/api/catalog/dto"
	catalogsvc "vela_commerce/internal/api/catalog/service"
	couponsvc "vela_commerce/internal/api/coupon/service"
	newslettersvc "vela_commerce/internal/api/newsletter/service"
	orderdto "vela_commerce/internal/api/order/dto"
	ordersvc "vela_commerce/internal/api/order/service"
	reviewdto "vela_commerce/internal/api/review/dto"
	reviewsvc "vela_commerce/internal/api/review/service"
	settingssvc "vela_commerce/internal/api/settings/service"
	shippingsvc "vela_commerce/internal/api/shipping/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
)

// userContextKey khóa lưu user đã xác thực trong context của request GraphQL
type userContextKey struct{}

// WithUser gắn user đã xác thực vào context cho các resolver
func WithUser(ctx context.Context, user authmodels.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func userFromContext(ctx context.Context) (authmodels.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(authmodels.User)
	return user, ok
}

func requireUser(ctx context.Context) (authmodels.User, error) {
	user, ok := userFromContext(ctx)
	if !ok {
		return authmodels.User{}, wrapError(common.ErrTokenMissing)
	}
	return user, nil
}

// Resolver giữ các domain service dùng chung với lớp REST
type Resolver struct {
	userService         *authsvc.UserService
	categoryService     *catalogsvc.CategoryService
	productService      *catalogsvc.ProductService
	reviewService       *reviewsvc.ReviewService
	orderService        *ordersvc.OrderService
	couponService       *couponsvc.CouponService
	zoneService         *shippingsvc.ZoneService
	settingsService     *settingssvc.SettingsService
	subscriptionService *newslettersvc.SubscriptionService
}

// NewResolver tạo mới Resolver với đầy đủ service
func NewResolver() (*Resolver, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}
	reviewService, err := reviewsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %w", err)
	}
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}
	couponService, err := couponsvc.NewCouponService()
	if err != nil {
		return nil, fmt.Errorf("failed to create coupon service: %w", err)
	}
	zoneService, err := shippingsvc.NewZoneService()
	if err != nil {
		return nil, fmt.Errorf("failed to create zone service: %w", err)
	}
	settingsService, err := settingssvc.NewSettingsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %w", err)
	}
	subscriptionService, err := newslettersvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %w", err)
	}
	return &Resolver{
		userService:         userService,
		categoryService:     categoryService,
		productService:      productService,
		reviewService:       reviewService,
		orderService:        orderService,
		couponService:       couponService,
		zoneService:         zoneService,
		settingsService:     settingsService,
		subscriptionService: subscriptionService,
	}, nil
}

// decodeArgs chuyển args GraphQL thành DTO và chạy validator,
// cùng bộ quy tắc với request body của REST
func decodeArgs(args map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return common.NewError(common.ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", common.StatusBadRequest, nil)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return common.NewError(common.ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", common.StatusBadRequest, err.Error())
	}
	if err := global.Validate.Struct(dst); err != nil {
		return common.NewError(common.ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", common.StatusBadRequest, err.Error())
	}
	return nil
}

func parseObjectIDArg(args map[string]interface{}, key string, label string) (primitive.ObjectID, error) {
	raw, _ := args[key].(string)
	if !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("%s không đúng định dạng MongoDB ObjectID", label),
			common.StatusBadRequest, nil)
	}
	return primitive.ObjectIDFromHex(raw)
}

func intArg(args map[string]interface{}, key string, def int64) int64 {
	if v, ok := args[key].(int); ok {
		return int64(v)
	}
	return def
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

// ---- Query resolvers ----

func (r *Resolver) resolveProducts(p graphql.ResolveParams) (interface{}, error) {
	featured, _ := p.Args["featured"].(bool)
	query := &catalogdto.ProductListQuery{
		Category: stringArg(p.Args, "category"),
		Tag:      stringArg(p.Args, "tag"),
		Search:   stringArg(p.Args, "search"),
		Sort:     stringArg(p.Args, "sort"),
		MinPrice: intArg(p.Args, "minPrice", 0),
		MaxPrice: intArg(p.Args, "maxPrice", 0),
		Featured: featured,
		Page:     intArg(p.Args, "page", 1),
		Limit:    intArg(p.Args, "limit", 20),
	}
	result, err := r.productService.ListStorefront(p.Context, query)
	if err != nil {
		return nil, wrapError(err)
	}
	return Page(result), nil
}

// nullForMissing cho biết resolver chi tiết nên trả null thay vì error:
// field nullable của GraphQL, tài nguyên không tồn tại không phải lỗi
func nullForMissing(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}

func (r *Resolver) resolveProduct(p graphql.ResolveParams) (interface{}, error) {
	if slug := stringArg(p.Args, "slug"); slug != "" {
		product, err := r.productService.FindBySlug(p.Context, slug)
		if err != nil {
			if nullForMissing(err) {
				return nil, nil
			}
			return nil, wrapError(err)
		}
		return Doc(product), nil
	}
	id, err := parseObjectIDArg(p.Args, "id", "ID sản phẩm")
	if err != nil {
		return nil, wrapError(err)
	}
	product, err := r.productService.FindOneById(p.Context, id)
	if err != nil {
		if nullForMissing(err) {
			return nil, nil
		}
		return nil, wrapError(err)
	}
	return Doc(product), nil
}

func (r *Resolver) resolveCategories(p graphql.ResolveParams) (interface{}, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	categories, err := r.categoryService.Find(p.Context, bson.M{"active": true}, opts)
	if err != nil {
		return nil, wrapError(err)
	}
	return Docs(categories), nil
}

func (r *Resolver) resolveCategory(p graphql.ResolveParams) (interface{}, error) {
	if slug := stringArg(p.Args, "slug"); slug != "" {
		category, err := r.categoryService.FindBySlug(p.Context, slug)
		if err != nil {
			if nullForMissing(err) {
				return nil, nil
			}
			return nil, wrapError(err)
		}
		return Doc(category), nil
	}
	id, err := parseObjectIDArg(p.Args, "id", "ID danh mục")
	if err != nil {
		return nil, wrapError(err)
	}
	category, err := r.categoryService.FindOneById(p.Context, id)
	if err != nil {
		if nullForMissing(err) {
			return nil, nil
		}
		return nil, wrapError(err)
	}
	return Doc(category), nil
}

func (r *Resolver) resolveReviews(p graphql.ResolveParams) (interface{}, error) {
	productID, err := parseObjectIDArg(p.Args, "productId", "ID sản phẩm")
	if err != nil {
		return nil, wrapError(err)
	}
	result, err := r.reviewService.ListByProduct(p.Context, productID, intArg(p.Args, "page", 1), intArg(p.Args, "limit", 20))
	if err != nil {
		return nil, wrapError(err)
	}
	return Page(result), nil
}

func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, err
	}
	return Doc(user), nil
}

func (r *Resolver) resolveMyOrders(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, err
	}
	result, err := r.orderService.MyOrders(p.Context, user.ID, intArg(p.Args, "page", 1), intArg(p.Args, "limit", 20))
	if err != nil {
		return nil, wrapError(err)
	}
	return Page(result), nil
}

func (r *Resolver) resolveOrder(p graphql.ResolveParams) (interface{}, error) {
	number := stringArg(p.Args, "number")
	if user, ok := userFromContext(p.Context); ok {
		order, err := r.orderService.FindForUser(p.Context, user, number)
		if err != nil {
			if nullForMissing(err) {
				return nil, nil
			}
			return nil, wrapError(err)
		}
		return Doc(order), nil
	}
	email := stringArg(p.Args, "email")
	if email == "" {
		return nil, wrapError(common.NewError(common.ErrCodeValidationInput,
			"Khách vãng lai tra cứu đơn cần kèm email", common.StatusBadRequest, nil))
	}
	order, err := r.orderService.GuestLookup(p.Context, number, email)
	if err != nil {
		if nullForMissing(err) {
			return nil, nil
		}
		return nil, wrapError(err)
	}
	return Doc(order), nil
}

func (r *Resolver) resolveSettings(p graphql.ResolveParams) (interface{}, error) {
	settings, err := r.settingsService.GetSettings(p.Context)
	if err != nil {
		return nil, wrapError(err)
	}
	return Doc(settings), nil
}

func (r *Resolver) resolveShippingZones(p graphql.ResolveParams) (interface{}, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	zones, err := r.zoneService.Find(p.Context, bson.M{"active": true}, opts)
	if err != nil {
		return nil, wrapError(err)
	}
	return Docs(zones), nil
}

func (r *Resolver) resolveValidateCoupon(p graphql.ResolveParams) (interface{}, error) {
	subtotal := intArg(p.Args, "subtotal", 0)
	coupon, discount, err := r.couponService.ValidateCoupon(p.Context, stringArg(p.Args, "code"), subtotal)
	if err != nil {
		return nil, wrapError(err)
	}
	return map[string]any{
		"code":     coupon.Code,
		"type":     coupon.Type,
		"value":    coupon.Value,
		"discount": discount,
	}, nil
}

// ---- Mutation resolvers ----

func (r *Resolver) resolveRegister(p graphql.ResolveParams) (interface{}, error) {
	input := new(authdto.RegisterInput)
	if err := decodeArgs(p.Args, input); err != nil {
		return nil, wrapError(err)
	}
	user, token, err := r.userService.Register(p.Context, input)
	if err != nil {
		return nil, wrapError(err)
	}
	return map[string]any{"token": token, "user": Doc(user)}, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	input := new(authdto.LoginInput)
	if err := decodeArgs(p.Args, input); err != nil {
		return nil, wrapError(err)
	}
	user, token, err := r.userService.Login(p.Context, input)
	if err != nil {
		return nil, wrapError(err)
	}
	return map[string]any{"token": token, "user": Doc(user)}, nil
}

func (r *Resolver) resolveUpdateProfile(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, err
	}
	input := new(authdto.UpdateProfileInput)
	if err := decodeArgs(p.Args, input); err != nil {
		return nil, wrapError(err)
	}
	updated, err := r.userService.UpdateProfile(p.Context, user.ID, input)
	if err != nil {
		return nil, wrapError(err)
	}
	return Doc(updated), nil
}

func (r *Resolver) resolveCreateReview(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, err
	}
	input := new(reviewdto.ReviewCreateInput)
	if err := decodeArgs(p.Args, input); err != nil {
		return nil, wrapError(err)
	}
	productID, err := parseObjectIDArg(p.Args, "productId", "ID sản phẩm")
	if err != nil {
		return nil, wrapError(err)
	}
	review, err := r.reviewService.CreateReview(p.Context, user, input, productID)
	if err != nil {
		return nil, wrapError(err)
	}
	return Doc(review), nil
}

func (r *Resolver) resolveUpdateReview(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, err
	}
	reviewID, err := parseObjectIDArg(p.Args, "id", "ID đánh giá")
	if err != nil {
		return nil, wrapError(err)
	}
	input := new(reviewdto.ReviewUpdateInput)
	if err := decodeArgs(p.Args, input); err != nil {
		return nil, wrapError(err)
	}
	review, err := r.reviewService.UpdateReview(p.Context, user, reviewID, input)
	if err != nil {
		return nil, wrapError(err)
	}
	return Doc(review), nil
}

func (r *Resolver) resolveDeleteReview(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, err
	}
	reviewID, err := parseObjectIDArg(p.Args, "id", "ID đánh giá")
	if err != nil {
		return nil, wrapError(err)
	}
	if err := r.reviewService.DeleteReview(p.Context, user, reviewID); err != nil {
		return nil, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) resolveQuoteOrder(p graphql.ResolveParams) (interface{}, error) {
	input := new(orderdto.QuoteInput)
	if err := decodeArgs(p.Args, input); err != nil {
		return nil, wrapError(err)
	}
	quote, err := r.orderService.QuoteOrder(p.Context, input)
	if err != nil {
		return nil, wrapError(err)
	}
	return map[string]any{
		"items":    Docs(quote.Items),
		"amounts":  Doc(quote.Amounts),
		"currency": quote.Currency,
		"etaDays":  quote.EtaDays,
	}, nil
}

func (r *Resolver) resolvePlaceOrder(p graphql.ResolveParams) (interface{}, error) {
	input := new(orderdto.PlaceOrderInput)
	if err := decodeArgs(p.Args, input); err != nil {
		return nil, wrapError(err)
	}
	var actor *authmodels.User
	if user, ok := userFromContext(p.Context); ok {
		actor = &user
	}
	order, err := r.orderService.PlaceOrder(p.Context, actor, input)
	if err != nil {
		return nil, wrapError(err)
	}
	return Doc(order), nil
}

func (r *Resolver) resolveConfirmPayment(p graphql.ResolveParams) (interface{}, error) {
	input := new(orderdto.ConfirmPaymentInput)
	if err := decodeArgs(p.Args, input); err != nil {
		return nil, wrapError(err)
	}
	order, err := r.orderService.ConfirmPayment(p.Context, input)
	if err != nil {
		return nil, wrapError(err)
	}
	return Doc(order), nil
}

func (r *Resolver) resolveSubscribeNewsletter(p graphql.ResolveParams) (interface{}, error) {
	subscription, err := r.subscriptionService.Subscribe(p.Context, stringArg(p.Args, "email"), "", nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return Doc(subscription), nil
}

func (r *Resolver) resolveUnsubscribeNewsletter(p graphql.ResolveParams) (interface{}, error) {
	subscription, err := r.subscriptionService.Unsubscribe(p.Context, stringArg(p.Args, "email"))
	if err != nil {
		return nil, wrapError(err)
	}
	return Doc(subscription), nil
}
