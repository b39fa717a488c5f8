// Package newslettersvc - service cho domain newsletter.
package newslettersvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vela_commerce/internal/api/base/service"
	models "vela_commerce/internal/api/newsletter/models"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/utility"
)

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến đăng ký nhận tin
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[models.NewsletterSubscription]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.NewsletterSubscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get newsletter subscriptions collection: %v", common.ErrNotFound)
	}
	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.NewsletterSubscription](subscriptionCollection),
	}, nil
}

// Subscribe đăng ký nhận tin. Email đã tồn tại thì kích hoạt lại
// thay vì báo trùng; tags mới được gộp vào danh sách hiện có.
// Source rỗng được coi là đăng ký từ storefront.
func (s *SubscriptionService) Subscribe(ctx context.Context, email string, source string, tags []string) (models.NewsletterSubscription, error) {
	normalized := utility.NormalizeEmail(email)
	if source == "" {
		source = models.SourceStorefront
	}

	existing, err := s.FindOne(ctx, bson.M{"email": normalized}, nil)
	if err == nil {
		update := &basesvc.UpdateData{
			Set:   bson.M{"active": true},
			Unset: bson.M{"unsubscribedAt": ""},
		}
		if len(tags) > 0 {
			update.AddToSet = bson.M{"tags": bson.M{"$each": tags}}
		}
		if existing.Active && len(tags) == 0 {
			return existing, nil
		}
		return s.UpdateById(ctx, existing.ID, update)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.NewsletterSubscription{}, err
	}

	return s.InsertOne(ctx, models.NewsletterSubscription{
		Email:  normalized,
		Active: true,
		Source: source,
		Tags:   tags,
	})
}

// Unsubscribe hủy đăng ký: tắt active và ghi thời điểm hủy
func (s *SubscriptionService) Unsubscribe(ctx context.Context, email string) (models.NewsletterSubscription, error) {
	normalized := utility.NormalizeEmail(email)

	existing, err := s.FindOne(ctx, bson.M{"email": normalized}, nil)
	if err != nil {
		return models.NewsletterSubscription{}, err
	}
	if !existing.Active {
		return existing, nil
	}

	return s.UpdateById(ctx, existing.ID, &basesvc.UpdateData{
		Set: bson.M{
			"active":         false,
			"unsubscribedAt": time.Now().UnixMilli(),
		},
	})
}

// CountActive đếm số đăng ký đang hoạt động
func (s *SubscriptionService) CountActive(ctx context.Context) (int64, error) {
	return s.CountDocuments(ctx, bson.M{"active": true})
}

// CampaignService là cấu trúc chứa các phương thức liên quan đến chiến dịch email
type CampaignService struct {
	*basesvc.BaseServiceMongoImpl[models.NewsletterCampaign]
	subscriptionService *SubscriptionService
}

// NewCampaignService tạo mới CampaignService
func NewCampaignService() (*CampaignService, error) {
	campaignCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.NewsletterCampaigns)
	if !exist {
		return nil, fmt.Errorf("failed to get newsletter campaigns collection: %v", common.ErrNotFound)
	}
	subscriptionService, err := NewSubscriptionService()
	if err != nil {
		return nil, err
	}
	return &CampaignService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.NewsletterCampaign](campaignCollection),
		subscriptionService:  subscriptionService,
	}, nil
}

// UpdateById chỉ cho phép sửa chiến dịch chưa vào luồng gửi
func (s *CampaignService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.NewsletterCampaign, error) {
	campaign, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.NewsletterCampaign{}, err
	}
	if !campaign.Editable() {
		return models.NewsletterCampaign{}, common.NewError(common.ErrCodeBusinessState, "Chiến dịch đã vào luồng gửi, không thể sửa", common.StatusConflict, nil)
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// ScheduleCampaign hẹn giờ gửi chiến dịch. Chỉ nhận chiến dịch
// còn sửa được và thời điểm trong tương lai.
func (s *CampaignService) ScheduleCampaign(ctx context.Context, id primitive.ObjectID, at int64) (models.NewsletterCampaign, error) {
	var zero models.NewsletterCampaign

	campaign, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if !campaign.Editable() {
		return zero, common.NewError(common.ErrCodeBusinessState, "Chiến dịch đã vào luồng gửi, không thể hẹn giờ", common.StatusConflict, nil)
	}
	if at <= time.Now().UnixMilli() {
		return zero, common.NewError(common.ErrCodeValidationInput, "Thời điểm hẹn giờ phải ở tương lai", common.StatusBadRequest, nil)
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: bson.M{
			"status":      models.CampaignScheduled,
			"scheduledAt": at,
		},
	})
}

// SendCampaign đánh dấu chiến dịch đã gửi, ghi nhận sentAt và số người nhận.
// Gửi hai lần bị từ chối, gửi lại chiến dịch failed thì được phép.
func (s *CampaignService) SendCampaign(ctx context.Context, id primitive.ObjectID) (models.NewsletterCampaign, error) {
	var zero models.NewsletterCampaign

	campaign, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if campaign.Status == models.CampaignSent || campaign.Status == models.CampaignSending {
		return zero, common.NewError(common.ErrCodeBusinessState, "Chiến dịch đã được gửi trước đó", common.StatusConflict, nil)
	}

	recipients, err := s.subscriptionService.CountActive(ctx)
	if err != nil {
		return zero, err
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: bson.M{
			"status":         models.CampaignSent,
			"sentAt":         time.Now().UnixMilli(),
			"recipientCount": recipients,
		},
		Unset: bson.M{"scheduledAt": ""},
	})
}

// RecordOpen cộng dồn lượt mở cho chiến dịch đã gửi. Gọi từ tracking
// pixel nên chiến dịch không tồn tại cũng không báo lỗi.
func (s *CampaignService) RecordOpen(ctx context.Context, id primitive.ObjectID) error {
	return s.recordMetric(ctx, id, "openCount")
}

// RecordClick cộng dồn lượt bấm link cho chiến dịch đã gửi
func (s *CampaignService) RecordClick(ctx context.Context, id primitive.ObjectID) error {
	return s.recordMetric(ctx, id, "clickCount")
}

func (s *CampaignService) recordMetric(ctx context.Context, id primitive.ObjectID, field string) error {
	_, err := s.BaseServiceMongoImpl.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.CampaignSent},
		&basesvc.UpdateData{Inc: bson.M{field: 1}},
		nil,
	)
	if err != nil && errors.Is(err, common.ErrNotFound) {
		return nil
	}
	return err
}
