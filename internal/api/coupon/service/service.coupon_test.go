// Package couponsvc - Test chuẩn hóa mã coupon.
package couponsvc

import "testing"

func TestNormalizeCode(t *testing.T) {
	cases := map[string]string{
		"summer10":    "SUMMER10",
		"  Tet2026  ": "TET2026",
		"FREESHIP":    "FREESHIP",
		"":            "",
	}
	for in, want := range cases {
		if got := NormalizeCode(in); got != want {
			t.Errorf("NormalizeCode(%q) = %q, muốn %q", in, got, want)
		}
	}
}
