// Package payment cung cấp client gọi cổng thanh toán và ký/kiểm chữ ký giao dịch.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"vela_commerce/internal/common"
	"vela_commerce/internal/logger"
)

// Client gọi REST API của cổng thanh toán qua resty
type Client struct {
	http           *resty.Client
	merchantID     string
	merchantSecret string
}

// intentRequest payload tạo payment intent
type intentRequest struct {
	MerchantID  string `json:"merchantId"`
	OrderNumber string `json:"orderNumber"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Method      string `json:"method"`
}

// intentResponse payload trả về từ gateway
type intentResponse struct {
	IntentID string `json:"intentId"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// NewClient tạo client thanh toán với timeout và retry cấu hình sẵn
func NewClient(baseURL string, merchantID string, merchantSecret string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:           http,
		merchantID:     merchantID,
		merchantSecret: merchantSecret,
	}
}

// CreateIntent tạo payment intent tại gateway, trả về intentID.
// Phương thức COD không cần intent, caller tự bỏ qua.
func (c *Client) CreateIntent(ctx context.Context, orderNumber string, amount int64, currency string, method string) (string, error) {
	var result intentResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(intentRequest{
			MerchantID:  c.merchantID,
			OrderNumber: orderNumber,
			Amount:      amount,
			Currency:    currency,
			Method:      method,
		}).
		SetResult(&result).
		Post("/v1/intents")
	if err != nil {
		logger.GetErrorLogger().WithField("orderNumber", orderNumber).Errorf("Gọi cổng thanh toán thất bại: %v", err)
		return "", common.ErrPaymentGateway
	}
	if resp.IsError() || result.IntentID == "" {
		logger.GetErrorLogger().WithField("orderNumber", orderNumber).Errorf("Cổng thanh toán trả lỗi: %s %s", resp.Status(), result.Message)
		return "", common.WithDetails(common.ErrPaymentGateway, map[string]interface{}{
			"status":  resp.StatusCode(),
			"message": result.Message,
		})
	}

	return result.IntentID, nil
}

// Sign tạo chữ ký HMAC-SHA256 trên intentID|orderNumber|total
func (c *Client) Sign(intentID string, orderNumber string, total int64) string {
	return Sign(c.merchantSecret, intentID, orderNumber, total)
}

// VerifySignature kiểm chữ ký callback của gateway bằng so sánh thời gian hằng định
func (c *Client) VerifySignature(intentID string, orderNumber string, total int64, signature string) bool {
	expected := c.Sign(intentID, orderNumber, total)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign tính HMAC-SHA256 hex trên chuỗi intentID|orderNumber|total
func Sign(secret string, intentID string, orderNumber string, total int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s|%d", intentID, orderNumber, total)
	return hex.EncodeToString(mac.Sum(nil))
}
