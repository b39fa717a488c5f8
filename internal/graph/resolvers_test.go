// Package graph - Test ánh xạ lỗi không-tìm-thấy của resolver chi tiết.
package graph

import (
	"testing"

	"vela_commerce/internal/common"
)

func TestNullForMissing(t *testing.T) {
	if !nullForMissing(common.ErrNotFound) {
		t.Error("ErrNotFound phải map sang null")
	}
	wrapped := common.WithDetails(common.ErrNotFound, map[string]interface{}{"slug": "khong-ton-tai"})
	if !nullForMissing(wrapped) {
		t.Error("ErrNotFound kèm details vẫn phải map sang null")
	}
	if nullForMissing(common.ErrTokenMissing) {
		t.Error("lỗi khác không được nuốt thành null")
	}
	if nullForMissing(nil) {
		t.Error("nil không phải không-tìm-thấy")
	}
}
