// Package newsletterdto - DTO cho domain newsletter.
package newsletterdto

// SubscribeInput đầu vào đăng ký / hủy đăng ký nhận tin
type SubscribeInput struct {
	Email  string   `json:"email" validate:"required,email"`
	Source string   `json:"source" validate:"omitempty,oneof=storefront checkout import"`
	Tags   []string `json:"tags" validate:"omitempty,dive,min=1,max=100"`
}

// CampaignCreateInput đầu vào tạo chiến dịch email
type CampaignCreateInput struct {
	Subject string `json:"subject" validate:"required,min=1,max=300"`
	Body    string `json:"body" validate:"required"`
}

// CampaignUpdateInput đầu vào cập nhật chiến dịch email (chỉ khi chưa vào luồng gửi)
type CampaignUpdateInput struct {
	Subject string `json:"subject" validate:"omitempty,min=1,max=300"`
	Body    string `json:"body" validate:"omitempty"`
}

// CampaignScheduleInput đầu vào hẹn giờ gửi chiến dịch (epoch millis)
type CampaignScheduleInput struct {
	ScheduledAt int64 `json:"scheduledAt" validate:"required,gt=0"`
}
