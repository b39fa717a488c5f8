// Package graph - lớp GraphQL chạy trên cùng các service với REST.
package graph

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vela_commerce/internal/api/base/models"
)

// Doc chuyển một document (struct hoặc bson.M) thành map thuần cho
// GraphQL: ObjectID thành chuỗi hex (ghi ở cả _id và id), các trường
// *At kiểu unix-ms thành chuỗi RFC3339 UTC.
func Doc(v any) map[string]any {
	if v == nil {
		return nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil
	}
	out, _ := normalizeValue("", m).(map[string]any)
	if id, ok := out["_id"]; ok {
		out["id"] = id
	}
	return out
}

// Docs áp dụng Doc cho từng phần tử, không bao giờ trả về nil
func Docs[T any](items []T) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		out = append(out, Doc(items[i]))
	}
	return out
}

// Page chuyển kết quả phân trang thành envelope {items, total, page, perPage}
func Page[T any](p *basemodels.PaginateResult[T]) map[string]any {
	if p == nil {
		return map[string]any{"items": []map[string]any{}, "total": int64(0), "page": int64(1), "perPage": int64(0)}
	}
	return map[string]any{
		"items":   Docs(p.Items),
		"total":   p.Total,
		"page":    p.Page,
		"perPage": p.PerPage,
	}
}

// normalizeValue đi đệ quy qua document sau vòng bson. Key được truyền
// xuống để nhận diện các trường thời gian *At.
func normalizeValue(key string, v any) any {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC().Format(time.RFC3339)
	case primitive.Decimal128:
		return val.String()
	case bson.M:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeValue(k, item)
		}
		if id, ok := out["_id"]; ok {
			out["id"] = id
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeValue(k, item)
		}
		if id, ok := out["_id"]; ok {
			out["id"] = id
		}
		return out
	case bson.A:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, normalizeValue("", item))
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, normalizeValue("", item))
		}
		return out
	case int32:
		return normalizeTimestamp(key, int64(val))
	case int64:
		return normalizeTimestamp(key, val)
	case nil:
		return nil
	default:
		return val
	}
}

// normalizeTimestamp đổi unix-ms của các trường *At thành RFC3339.
// Giá trị 0 nghĩa là chưa có mốc thời gian, trả về nil.
func normalizeTimestamp(key string, v int64) any {
	if !strings.HasSuffix(key, "At") {
		return v
	}
	if v == 0 {
		return nil
	}
	return time.UnixMilli(v).UTC().Format(time.RFC3339)
}
