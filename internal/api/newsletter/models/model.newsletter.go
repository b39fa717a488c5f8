// Package models - model cho domain newsletter.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái chiến dịch email
const (
	CampaignDraft     = "draft"
	CampaignScheduled = "scheduled"
	CampaignSending   = "sending"
	CampaignSent      = "sent"
	CampaignFailed    = "failed"
)

// Nguồn đăng ký nhận tin
const (
	SourceStorefront = "storefront"
	SourceCheckout   = "checkout"
	SourceImport     = "import"
)

// NewsletterSubscription là đăng ký nhận tin. Email lưu chữ thường, unique.
// Hủy đăng ký chỉ tắt active, document được giữ lại để đăng ký lại.
type NewsletterSubscription struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email          string             `json:"email" bson:"email" index:"unique"`
	Active         bool               `json:"active" bson:"active" default:"true" index:"single"`
	Source         string             `json:"source" bson:"source" default:"storefront"`
	Tags           []string           `json:"tags" bson:"tags,omitempty"`
	UnsubscribedAt int64              `json:"unsubscribedAt" bson:"unsubscribedAt,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// NewsletterCampaign là chiến dịch email. Send đánh dấu sent và ghi nhận
// số người nhận, không có pipeline gửi thư thật; open/click do endpoint
// tracking cộng dồn.
type NewsletterCampaign struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Subject        string             `json:"subject" bson:"subject"`
	Body           string             `json:"body" bson:"body"`
	Status         string             `json:"status" bson:"status" default:"draft" index:"single"`
	ScheduledAt    int64              `json:"scheduledAt" bson:"scheduledAt,omitempty"`
	SentAt         int64              `json:"sentAt" bson:"sentAt,omitempty"`
	RecipientCount int                `json:"recipientCount" bson:"recipientCount"`
	OpenCount      int64              `json:"openCount" bson:"openCount"`
	ClickCount     int64              `json:"clickCount" bson:"clickCount"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// Editable cho biết chiến dịch còn sửa được không (chưa vào luồng gửi)
func (c *NewsletterCampaign) Editable() bool {
	return c.Status == CampaignDraft || c.Status == CampaignScheduled || c.Status == CampaignFailed
}
