// Package shippingsvc - Test chuẩn hóa danh sách mã quốc gia của zone.
package shippingsvc

import (
	"reflect"
	"testing"
)

func TestNormalizeCountries(t *testing.T) {
	got := normalizeCountries([]string{" vn ", "US", "", "jp"})
	want := []string{"VN", "US", "JP"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeCountries trả %v, muốn %v", got, want)
	}
}

func TestNormalizeCountries_EmptyInput(t *testing.T) {
	got := normalizeCountries(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Input nil phải trả slice rỗng, nhận %v", got)
	}
}
