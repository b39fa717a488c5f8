// Package router đăng ký các route thuộc domain newsletter.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vela_commerce/internal/api/middleware"
	newsletterhdl "vela_commerce/internal/api/newsletter/handler"
	apirouter "vela_commerce/internal/api/router"
)

// Register đăng ký các route newsletter lên v1. Đăng ký/hủy công khai,
// chiến dịch email yêu cầu admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	subscriptionHandler, err := newsletterhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscription handler: %w", err)
	}
	campaignHandler, err := newsletterhdl.NewCampaignHandler()
	if err != nil {
		return fmt.Errorf("failed to create campaign handler: %w", err)
	}

	v1.Post("/newsletter/subscribe", subscriptionHandler.HandleSubscribe)
	v1.Post("/newsletter/unsubscribe", subscriptionHandler.HandleUnsubscribe)
	v1.Get("/newsletter/campaigns/:id/open", campaignHandler.HandleTrackOpen)
	v1.Get("/newsletter/campaigns/:id/click", campaignHandler.HandleTrackClick)

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/newsletter-campaigns", "POST", "/:id/send", adminChain, campaignHandler.HandleSendCampaign)
	apirouter.RegisterRouteWithMiddleware(v1, "/newsletter-campaigns", "POST", "/:id/schedule", adminChain, campaignHandler.HandleScheduleCampaign)

	r.RegisterCRUDRoutes(v1, "/newsletter-subscriptions", subscriptionHandler, apirouter.AdminCRUDConfig)
	r.RegisterCRUDRoutes(v1, "/newsletter-campaigns", campaignHandler, apirouter.AdminCRUDConfig)
	return nil
}
