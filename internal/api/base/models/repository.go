// Package models chứa các kiểu dùng chung cho layer base (kết quả phân trang).
package models

// PaginateResult đại diện cho kết quả phân trang.
// Items luôn là mảng (không bao giờ nil) để serialize thành [] thay vì null.
type PaginateResult[T any] struct {
	// Danh sách các mục trong trang hiện tại
	Items []T `json:"items" bson:"items"`
	// Tổng số mục khớp filter
	Total int64 `json:"total" bson:"total"`
	// Trang hiện tại (bắt đầu từ 1)
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	PerPage int64 `json:"perPage" bson:"perPage"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
