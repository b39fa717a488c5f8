// Package reportdto - DTO cho domain report.
package reportdto

// GenerateInput đầu vào sinh báo cáo cho một khoảng thời gian.
// PeriodStart/PeriodEnd nhận chuỗi RFC3339, chuyển sang unix-ms.
type GenerateInput struct {
	Kind        string `json:"kind" validate:"required,oneof=sales_daily top_products customers"`
	PeriodStart string `json:"periodStart" validate:"required" transform:"str_time"`
	PeriodEnd   string `json:"periodEnd" validate:"required" transform:"str_time"`
}
