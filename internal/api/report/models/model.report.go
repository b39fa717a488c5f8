// Package models - model cho domain report.
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại báo cáo
const (
	KindSalesDaily  = "sales_daily"
	KindTopProducts = "top_products"
	KindCustomers   = "customers"
)

// Trạng thái báo cáo
const (
	StatusPending = "pending"
	StatusReady   = "ready"
	StatusFailed  = "failed"
)

// Report là một báo cáo đã tính cho khoảng [PeriodStart, PeriodEnd).
// Payload chứa các dòng kết quả, ArtifactID là định danh uuid của bản kết xuất.
type Report struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Kind        string             `json:"kind" bson:"kind" index:"single"`
	PeriodStart int64              `json:"periodStart" bson:"periodStart" index:"single"`
	PeriodEnd   int64              `json:"periodEnd" bson:"periodEnd"`
	Status      string             `json:"status" bson:"status" default:"pending" index:"single"`
	ArtifactID  string             `json:"artifactId" bson:"artifactId,omitempty"`
	Payload     bson.M             `json:"payload" bson:"payload,omitempty"`
	Error       string             `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
