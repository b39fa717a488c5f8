// Package models - các model thuộc domain catalog (Category, Product).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category định nghĩa danh mục sản phẩm.
// Slug là unique key dùng cho URL storefront.
type Category struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string              `json:"name" bson:"name"`
	Slug        string              `json:"slug" bson:"slug" index:"unique"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	Image       string              `json:"image,omitempty" bson:"image,omitempty"`
	ParentID    *primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty"`
	Sort        int                 `json:"sort" bson:"sort"`
	CreatedAt   int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64               `json:"updatedAt" bson:"updatedAt"`
}
