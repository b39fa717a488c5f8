// Package models - model cho domain review.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review là đánh giá của người dùng cho một sản phẩm.
// Mỗi người dùng chỉ có một đánh giá trên mỗi sản phẩm (compound unique index).
// Verified được gán khi người dùng có đơn hàng đã giao chứa sản phẩm này.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID primitive.ObjectID `json:"productId" bson:"productId" index:"single;compound:productId_userId_unique"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"compound:productId_userId_unique"`
	UserName  string             `json:"userName" bson:"userName"`
	Rating    int                `json:"rating" bson:"rating"`
	Title     string             `json:"title" bson:"title,omitempty"`
	Body      string             `json:"body" bson:"body,omitempty"`
	Verified  bool               `json:"verified" bson:"verified"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
