// Package catalogdto - DTO cho domain catalog.
package catalogdto

// CategoryCreateInput đầu vào tạo danh mục
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Slug        string `json:"slug" validate:"omitempty,slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ParentID    string `json:"parentId" validate:"omitempty,len=24" transform:"str_objectid_ptr,optional"`
	Sort        int    `json:"sort"`
}

// CategoryUpdateInput đầu vào cập nhật danh mục
type CategoryUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,min=1,max=200"`
	Slug        string `json:"slug" validate:"omitempty,slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ParentID    string `json:"parentId" validate:"omitempty,len=24" transform:"str_objectid_ptr,optional"`
	Sort        int    `json:"sort"`
}
