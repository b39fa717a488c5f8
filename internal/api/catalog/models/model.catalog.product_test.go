// Package models - Test trạng thái tồn kho dẫn xuất, ảnh chính và
// trạng thái vòng đời sản phẩm.
package models

import "testing"

func TestPrimaryImage(t *testing.T) {
	withPrimary := Product{Images: []ProductImage{
		{URL: "https://cdn.example.com/a.jpg"},
		{URL: "https://cdn.example.com/b.jpg", IsPrimary: true},
	}}
	if got := withPrimary.PrimaryImage(); got != "https://cdn.example.com/b.jpg" {
		t.Errorf("ảnh có cờ isPrimary phải thắng, got %q", got)
	}

	noPrimary := Product{Images: []ProductImage{
		{URL: "https://cdn.example.com/a.jpg"},
		{URL: "https://cdn.example.com/b.jpg"},
	}}
	if got := noPrimary.PrimaryImage(); got != "https://cdn.example.com/a.jpg" {
		t.Errorf("không có isPrimary thì lấy ảnh đầu, got %q", got)
	}

	empty := Product{}
	if got := empty.PrimaryImage(); got != "" {
		t.Errorf("không có ảnh phải trả rỗng, got %q", got)
	}
}

func TestIsPublished(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{StatusActive, true},
		{StatusInactive, false},
		{StatusDraft, false},
		{StatusOutOfStock, false},
		{"", false},
	}
	for _, c := range cases {
		p := Product{Status: c.status}
		if got := p.IsPublished(); got != c.want {
			t.Errorf("IsPublished với status %q = %v, muốn %v", c.status, got, c.want)
		}
	}
}

func TestComputeStockStatus(t *testing.T) {
	cases := []struct {
		stock     int
		threshold int
		want      string
	}{
		{0, 5, StockOutOfStock},
		{-3, 5, StockOutOfStock},
		{1, 5, StockLowStock},
		{5, 5, StockLowStock},
		{6, 5, StockInStock},
		{100, 5, StockInStock},
		// threshold 0 dùng ngưỡng mặc định
		{3, 0, StockLowStock},
		{DefaultLowStockThreshold + 1, 0, StockInStock},
	}
	for _, c := range cases {
		if got := ComputeStockStatus(c.stock, c.threshold); got != c.want {
			t.Errorf("ComputeStockStatus(%d, %d) = %s, muốn %s", c.stock, c.threshold, got, c.want)
		}
	}
}
