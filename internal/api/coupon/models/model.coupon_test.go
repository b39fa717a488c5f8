// Package models - Test ComputeDiscount với percent/fixed và các cận.
package models

import "testing"

func TestComputeDiscount_Percent(t *testing.T) {
	c := &Coupon{Type: TypePercent, Value: 10}
	if got := c.ComputeDiscount(10000); got != 1000 {
		t.Errorf("percent 10 của 10000 phải là 1000, got %d", got)
	}
	if got := c.ComputeDiscount(0); got != 0 {
		t.Errorf("subtotal 0 phải giảm 0, got %d", got)
	}
}

func TestComputeDiscount_PercentOverHundredCapsAtSubtotal(t *testing.T) {
	c := &Coupon{Type: TypePercent, Value: 150}
	if got := c.ComputeDiscount(8000); got != 8000 {
		t.Errorf("percent vượt 100 phải bị chặn tại subtotal, got %d", got)
	}
}

func TestComputeDiscount_FixedCapsAtSubtotal(t *testing.T) {
	c := &Coupon{Type: TypeFixed, Value: 5000}
	if got := c.ComputeDiscount(3000); got != 3000 {
		t.Errorf("fixed lớn hơn subtotal phải bị chặn tại subtotal, got %d", got)
	}
	if got := c.ComputeDiscount(9000); got != 5000 {
		t.Errorf("fixed nhỏ hơn subtotal phải giữ nguyên value, got %d", got)
	}
}

func TestComputeDiscount_FreeShippingKhongGiamSubtotal(t *testing.T) {
	c := &Coupon{Type: TypeFreeShipping, Value: 5000}
	if got := c.ComputeDiscount(9000); got != 0 {
		t.Errorf("free_shipping không giảm subtotal, got %d", got)
	}
	if !c.WaivesShipping() {
		t.Error("free_shipping phải miễn phí giao hàng")
	}
	if (&Coupon{Type: TypePercent}).WaivesShipping() {
		t.Error("percent không miễn phí giao hàng")
	}
}

func TestComputeDiscount_UnknownTypeIsZero(t *testing.T) {
	c := &Coupon{Type: "bogus", Value: 5000}
	if got := c.ComputeDiscount(9000); got != 0 {
		t.Errorf("type không hợp lệ phải giảm 0, got %d", got)
	}
}

func TestWithinWindow(t *testing.T) {
	c := &Coupon{StartsAt: 1000, EndsAt: 2000}
	cases := []struct {
		now  int64
		want bool
	}{
		{999, false},
		{1000, true},
		{2000, true},
		{2001, false},
	}
	for _, tc := range cases {
		if got := c.WithinWindow(tc.now); got != tc.want {
			t.Errorf("WithinWindow(%d) = %v, muốn %v", tc.now, got, tc.want)
		}
	}

	open := &Coupon{}
	if !open.WithinWindow(5) {
		t.Error("Biên 0 phải là không giới hạn")
	}
	noEnd := &Coupon{StartsAt: 1000}
	if noEnd.WithinWindow(999) || !noEnd.WithinWindow(99999999) {
		t.Error("EndsAt 0 phải là không giới hạn phía sau")
	}
}

func TestHasUsesLeft(t *testing.T) {
	unlimited := &Coupon{MaxUses: 0, UsedCount: 100}
	if !unlimited.HasUsesLeft() {
		t.Error("MaxUses 0 phải là không giới hạn lượt dùng")
	}
	if !(&Coupon{MaxUses: 3, UsedCount: 2}).HasUsesLeft() {
		t.Error("Còn lượt phải trả true")
	}
	if (&Coupon{MaxUses: 3, UsedCount: 3}).HasUsesLeft() {
		t.Error("Hết lượt phải trả false")
	}
}
