// Package newsletterhdl - handler cho domain newsletter.
package newsletterhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "vela_commerce/internal/api/base/handler"
	newsletterdto "vela_commerce/internal/api/newsletter/dto"
	models "vela_commerce/internal/api/newsletter/models"
	newslettersvc "vela_commerce/internal/api/newsletter/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/logger"
)

// SubscriptionHandler xử lý đăng ký / hủy đăng ký nhận tin (public)
type SubscriptionHandler struct {
	*basehdl.BaseHandler[models.NewsletterSubscription, newsletterdto.SubscribeInput, newsletterdto.SubscribeInput]
	SubscriptionService *newslettersvc.SubscriptionService
}

// NewSubscriptionHandler tạo mới SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := newslettersvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}
	return &SubscriptionHandler{
		BaseHandler:         basehdl.NewBaseHandler[models.NewsletterSubscription, newsletterdto.SubscribeInput, newsletterdto.SubscribeInput](subscriptionService),
		SubscriptionService: subscriptionService,
	}, nil
}

// HandleSubscribe đăng ký nhận tin, đăng ký lại thì kích hoạt lại
func (h *SubscriptionHandler) HandleSubscribe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(newsletterdto.SubscribeInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		subscription, err := h.SubscriptionService.Subscribe(c.Context(), input.Email, input.Source, input.Tags)
		h.HandleResponse(c, subscription, err)
		return nil
	})
}

// HandleUnsubscribe hủy đăng ký nhận tin
func (h *SubscriptionHandler) HandleUnsubscribe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(newsletterdto.SubscribeInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		subscription, err := h.SubscriptionService.Unsubscribe(c.Context(), input.Email)
		h.HandleResponse(c, subscription, err)
		return nil
	})
}

// CampaignHandler xử lý CRUD và gửi chiến dịch email (admin)
type CampaignHandler struct {
	*basehdl.BaseHandler[models.NewsletterCampaign, newsletterdto.CampaignCreateInput, newsletterdto.CampaignUpdateInput]
	CampaignService *newslettersvc.CampaignService
}

// NewCampaignHandler tạo mới CampaignHandler
func NewCampaignHandler() (*CampaignHandler, error) {
	campaignService, err := newslettersvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign service: %v", err)
	}
	return &CampaignHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.NewsletterCampaign, newsletterdto.CampaignCreateInput, newsletterdto.CampaignUpdateInput](campaignService),
		CampaignService: campaignService,
	}, nil
}

// HandleSendCampaign đánh dấu chiến dịch đã gửi
func (h *CampaignHandler) HandleSendCampaign(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, ok := h.parseCampaignID(c)
		if !ok {
			return nil
		}

		campaign, err := h.CampaignService.SendCampaign(c.Context(), id)
		if err == nil {
			logger.LogAdmin("send_campaign", "newsletter_campaign", id.Hex(), c, map[string]interface{}{
				"recipientCount": campaign.RecipientCount,
			})
		}
		h.HandleResponse(c, campaign, err)
		return nil
	})
}

// HandleScheduleCampaign hẹn giờ gửi chiến dịch
func (h *CampaignHandler) HandleScheduleCampaign(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, ok := h.parseCampaignID(c)
		if !ok {
			return nil
		}
		input := new(newsletterdto.CampaignScheduleInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		campaign, err := h.CampaignService.ScheduleCampaign(c.Context(), id, input.ScheduledAt)
		if err == nil {
			logger.LogAdmin("schedule_campaign", "newsletter_campaign", id.Hex(), c, map[string]interface{}{
				"scheduledAt": input.ScheduledAt,
			})
		}
		h.HandleResponse(c, campaign, err)
		return nil
	})
}

// HandleTrackOpen ghi nhận lượt mở email (tracking pixel, public)
func (h *CampaignHandler) HandleTrackOpen(c fiber.Ctx) error {
	return h.handleTrack(c, h.CampaignService.RecordOpen)
}

// HandleTrackClick ghi nhận lượt bấm link trong email (public)
func (h *CampaignHandler) HandleTrackClick(c fiber.Ctx) error {
	return h.handleTrack(c, h.CampaignService.RecordClick)
}

func (h *CampaignHandler) handleTrack(c fiber.Ctx, record func(ctx context.Context, id primitive.ObjectID) error) error {
	return h.SafeHandler(c, func() error {
		rawID := c.Params("id")
		// endpoint tracking không lộ thông tin: id sai cũng trả 204
		if primitive.IsValidObjectID(rawID) {
			id, _ := primitive.ObjectIDFromHex(rawID)
			if err := record(c.Context(), id); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func (h *CampaignHandler) parseCampaignID(c fiber.Ctx) (primitive.ObjectID, bool) {
	rawID := c.Params("id")
	if !primitive.IsValidObjectID(rawID) {
		h.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationFormat,
			"ID chiến dịch không đúng định dạng MongoDB ObjectID",
			common.StatusBadRequest,
			nil,
		))
		return primitive.NilObjectID, false
	}
	id, _ := primitive.ObjectIDFromHex(rawID)
	return id, true
}
