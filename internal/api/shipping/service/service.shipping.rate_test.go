// Package shippingsvc - Test chọn biểu phí theo method và khung.
package shippingsvc

import (
	"testing"

	models "vela_commerce/internal/api/shipping/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestRateContains_HalfOpenBracket(t *testing.T) {
	r := models.ShippingRate{MinSubtotal: 1000, MaxSubtotal: int64Ptr(5000)}

	if r.Contains(999) {
		t.Error("dưới min không được khớp")
	}
	if !r.Contains(1000) {
		t.Error("cận dưới phải khớp (đóng)")
	}
	if !r.Contains(4999) {
		t.Error("ngay dưới max phải khớp")
	}
	if r.Contains(5000) {
		t.Error("cận trên không được khớp (mở)")
	}

	open := models.ShippingRate{MinSubtotal: 5000}
	if !open.Contains(1_000_000) {
		t.Error("không có max thì mọi giá trị từ min trở lên phải khớp")
	}
}

func TestPickRate_PicksMostSpecificBracket(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "standard", Method: models.MethodOrderTotal, MinSubtotal: 0, MaxSubtotal: int64Ptr(10000), Amount: 3000},
		{Name: "bulk", Method: models.MethodOrderTotal, MinSubtotal: 5000, MaxSubtotal: int64Ptr(10000), Amount: 2000},
		{Name: "free-ish", Method: models.MethodOrderTotal, MinSubtotal: 10000, Amount: 1000},
	}

	got, err := PickRate(rates, 7000, 0)
	if err != nil {
		t.Fatalf("PickRate lỗi: %v", err)
	}
	// 7000 khớp cả standard lẫn bulk, chọn khung có min cao hơn
	if got.Name != "bulk" {
		t.Errorf("PickRate(7000) = %s, muốn bulk", got.Name)
	}

	got, err = PickRate(rates, 25000, 0)
	if err != nil {
		t.Fatalf("PickRate lỗi: %v", err)
	}
	if got.Name != "free-ish" {
		t.Errorf("PickRate(25000) = %s, muốn free-ish", got.Name)
	}
}

func TestPickRate_NoBracketMatches(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "mid", Method: models.MethodOrderTotal, MinSubtotal: 5000, MaxSubtotal: int64Ptr(10000), Amount: 2000},
	}
	if _, err := PickRate(rates, 1000, 0); err == nil {
		t.Error("subtotal ngoài mọi khung phải trả về lỗi")
	}
	if _, err := PickRate(nil, 1000, 0); err == nil {
		t.Error("danh sách rate rỗng phải trả về lỗi")
	}
}

func TestPickRate_BracketThangFlatRateThangFree(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "anyone", Method: models.MethodFree},
		{Name: "flat", Method: models.MethodFlatRate, Amount: 5000},
		{Name: "bracketed", Method: models.MethodOrderTotal, MinSubtotal: 0, MaxSubtotal: int64Ptr(10000), Amount: 3000},
	}

	got, err := PickRate(rates, 7000, 0)
	if err != nil {
		t.Fatalf("PickRate lỗi: %v", err)
	}
	if got.Name != "bracketed" {
		t.Errorf("Khung khớp phải thắng flat_rate/free, nhận %s", got.Name)
	}

	// Ngoài khung order_total thì rơi về flat_rate trước free
	got, err = PickRate(rates, 50000, 0)
	if err != nil {
		t.Fatalf("PickRate lỗi: %v", err)
	}
	if got.Name != "flat" {
		t.Errorf("Ngoài khung phải rơi về flat_rate, nhận %s", got.Name)
	}
}

func TestPickRate_WeightBasedXetKhoiLuong(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "heavy", Method: models.MethodWeightBased, MinSubtotal: 2000, Amount: 8000},
		{Name: "light", Method: models.MethodWeightBased, MinSubtotal: 0, MaxSubtotal: int64Ptr(2000), Amount: 3000},
	}

	got, err := PickRate(rates, 999999, 500)
	if err != nil {
		t.Fatalf("PickRate lỗi: %v", err)
	}
	if got.Name != "light" {
		t.Errorf("Đơn 500g phải khớp khung light, nhận %s", got.Name)
	}

	got, err = PickRate(rates, 1, 3000)
	if err != nil {
		t.Fatalf("PickRate lỗi: %v", err)
	}
	if got.Name != "heavy" {
		t.Errorf("Đơn 3000g phải khớp khung heavy, nhận %s", got.Name)
	}
}

func TestPickRate_FreeLuonTraPhiKhong(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "anyone", Method: models.MethodFree, Amount: 9999},
	}
	got, err := PickRate(rates, 100, 0)
	if err != nil {
		t.Fatalf("PickRate lỗi: %v", err)
	}
	if got.Amount != 0 {
		t.Errorf("Method free phải trả phí 0, nhận %d", got.Amount)
	}
}
