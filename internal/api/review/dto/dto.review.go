// Package reviewdto - DTO cho domain review.
package reviewdto

// ReviewCreateInput đầu vào tạo đánh giá sản phẩm
type ReviewCreateInput struct {
	ProductID string `json:"productId" validate:"required,len=24" transform:"str_objectid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title" validate:"omitempty,max=200"`
	Body      string `json:"body" validate:"omitempty,max=5000"`
}

// ReviewUpdateInput đầu vào cập nhật đánh giá (chủ đánh giá hoặc admin)
type ReviewUpdateInput struct {
	Rating *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	Title  string `json:"title" validate:"omitempty,max=200"`
	Body   string `json:"body" validate:"omitempty,max=5000"`
}
