package catalogdto

// ProductImageInput một ảnh sản phẩm trong đầu vào tạo/cập nhật
type ProductImageInput struct {
	URL       string `json:"url" validate:"required,url"`
	StorageID string `json:"storageId"`
	IsPrimary bool   `json:"isPrimary"`
}

// ProductCreateInput đầu vào tạo sản phẩm
type ProductCreateInput struct {
	Name              string              `json:"name" validate:"required,min=1,max=300"`
	Slug              string              `json:"slug" validate:"omitempty,slug"`
	Description       string              `json:"description"`
	Price             int64               `json:"price" validate:"required,gt=0"`
	CompareAtPrice    *int64              `json:"compareAtPrice" validate:"omitempty,gt=0"`
	Images            []ProductImageInput `json:"images" validate:"omitempty,dive"`
	CategoryID        string              `json:"categoryId" validate:"required,len=24" transform:"str_objectid"`
	Stock             int                 `json:"stock" validate:"gte=0"`
	LowStockThreshold int                 `json:"lowStockThreshold" validate:"gte=0"`
	Weight            int64               `json:"weight" validate:"gte=0"`
	Attributes        map[string]string   `json:"attributes"`
	Tags              []string            `json:"tags"`
	Featured          bool                `json:"featured"`
	Status            string              `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE DRAFT OUT_OF_STOCK"`
}

// ProductUpdateInput đầu vào cập nhật sản phẩm
type ProductUpdateInput struct {
	Name              string              `json:"name" validate:"omitempty,min=1,max=300"`
	Slug              string              `json:"slug" validate:"omitempty,slug"`
	Description       string              `json:"description"`
	Price             *int64              `json:"price" validate:"omitempty,gt=0"`
	CompareAtPrice    *int64              `json:"compareAtPrice" validate:"omitempty,gt=0"`
	Images            []ProductImageInput `json:"images" validate:"omitempty,dive"`
	CategoryID        string              `json:"categoryId" validate:"omitempty,len=24" transform:"str_objectid"`
	Stock             *int                `json:"stock" validate:"omitempty,gte=0"`
	LowStockThreshold *int                `json:"lowStockThreshold" validate:"omitempty,gte=0"`
	Weight            *int64              `json:"weight" validate:"omitempty,gte=0"`
	Attributes        map[string]string   `json:"attributes"`
	Tags              []string            `json:"tags"`
	Featured          *bool               `json:"featured"`
	Status            string              `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE DRAFT OUT_OF_STOCK"`
}

// StockAdjustInput đầu vào điều chỉnh tồn kho (delta âm hoặc dương)
type StockAdjustInput struct {
	Delta int `json:"delta" validate:"required"`
}

// ProductListQuery các tham số lọc danh sách sản phẩm storefront
type ProductListQuery struct {
	Category string // slug hoặc ID của danh mục
	Tag      string
	Search   string // text search trên tên
	MinPrice int64
	MaxPrice int64
	Featured bool
	Sort     string // price_asc | price_desc | newest | rating
	Page     int64
	Limit    int64
}
