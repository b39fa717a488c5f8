// Package ordersvc - Test bảng tiền của đơn hàng.
package ordersvc

import (
	"testing"
)

func TestComputeAmounts_Basic(t *testing.T) {
	amounts := ComputeAmounts(40000, 4000, 3000, 0.10, 50000)

	if amounts.Subtotal != 40000 {
		t.Errorf("Subtotal sai, nhận %d", amounts.Subtotal)
	}
	if amounts.Discount != 4000 {
		t.Errorf("Discount sai, nhận %d", amounts.Discount)
	}
	if amounts.Shipping != 3000 {
		t.Errorf("Shipping sai, nhận %d", amounts.Shipping)
	}
	if amounts.Tax != 3600 {
		t.Errorf("Thuế phải tính trên số tiền sau giảm giá (36000 × 0.10), nhận %d", amounts.Tax)
	}
	if amounts.Total != 40000-4000+3000+3600 {
		t.Errorf("Total phải bằng subtotal − discount + shipping + tax, nhận %d", amounts.Total)
	}
}

func TestComputeAmounts_FreeShippingThreshold(t *testing.T) {
	// Sau giảm giá đạt ngưỡng thì phí ship về 0 dù zone có rate
	amounts := ComputeAmounts(60000, 10000, 3000, 0.10, 50000)
	if amounts.Shipping != 0 {
		t.Errorf("Đạt ngưỡng freeship phải miễn phí ship, nhận %d", amounts.Shipping)
	}

	// Dưới ngưỡng một đơn vị thì vẫn tính phí ship
	amounts = ComputeAmounts(60000, 10001, 3000, 0.10, 50000)
	if amounts.Shipping != 3000 {
		t.Errorf("Dưới ngưỡng freeship phải giữ phí ship, nhận %d", amounts.Shipping)
	}

	// Ngưỡng 0 nghĩa là tắt freeship
	amounts = ComputeAmounts(60000, 0, 3000, 0.10, 0)
	if amounts.Shipping != 3000 {
		t.Errorf("Ngưỡng 0 không được kích hoạt freeship, nhận %d", amounts.Shipping)
	}
}

func TestComputeAmounts_TaxRounding(t *testing.T) {
	// 333 × 0.10 = 33.3 → 33; 335 × 0.10 = 33.5 → 34
	if got := ComputeAmounts(333, 0, 0, 0.10, 0).Tax; got != 33 {
		t.Errorf("Thuế 33.3 phải làm tròn về 33, nhận %d", got)
	}
	if got := ComputeAmounts(335, 0, 0, 0.10, 0).Tax; got != 34 {
		t.Errorf("Thuế 33.5 phải làm tròn lên 34, nhận %d", got)
	}
}

func TestComputeAmounts_FullDiscount(t *testing.T) {
	amounts := ComputeAmounts(20000, 20000, 3000, 0.10, 50000)
	if amounts.Tax != 0 {
		t.Errorf("Giảm hết subtotal thì thuế phải bằng 0, nhận %d", amounts.Tax)
	}
	if amounts.Total != 3000 {
		t.Errorf("Total chỉ còn phí ship, nhận %d", amounts.Total)
	}
}
