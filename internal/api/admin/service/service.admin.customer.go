package adminsvc

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "vela_commerce/internal/api/auth/models"
	"vela_commerce/internal/global"
)

// CustomerRow một dòng trong danh sách khách hàng, gồm số đơn và tổng chi tiêu
type CustomerRow struct {
	ID         string `bson:"id" json:"id"`
	Email      string `bson:"email" json:"email"`
	Name       string `bson:"name" json:"name"`
	Role       string `bson:"role" json:"role"`
	Status     string `bson:"status" json:"status"`
	OrderCount int64  `bson:"orderCount" json:"orderCount"`
	TotalSpend int64  `bson:"totalSpend" json:"totalSpend"`
	CreatedAt  int64  `bson:"createdAt" json:"createdAt"`
}

// CustomerPage kết quả phân trang danh sách khách hàng
type CustomerPage struct {
	Page      int64         `json:"page"`
	Limit     int64         `json:"limit"`
	ItemCount int64         `json:"itemCount"`
	Items     []CustomerRow `json:"items"`
}

// CustomerListQuery bộ lọc danh sách khách hàng
type CustomerListQuery struct {
	Search string
	Role   string
	Status string
	Page   int64
	Limit  int64
}

// customerMatch dựng filter $match từ query. Role rỗng mặc định lọc
// USER, search khớp substring không phân biệt hoa thường trên email/name.
func customerMatch(query *CustomerListQuery) bson.M {
	role := query.Role
	if role == "" {
		role = authmodels.RoleUser
	}
	match := bson.M{"role": role}
	if query.Status != "" {
		match["status"] = query.Status
	}
	if query.Search != "" {
		pattern := regexp.QuoteMeta(query.Search)
		match["$or"] = []bson.M{
			{"email": bson.M{"$regex": pattern, "$options": "i"}},
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return match
}

// ListCustomers trả về user kèm số đơn và tổng chi tiêu, join qua
// $lookup sang collection orders. Role rỗng mặc định lọc USER.
func (s *DashboardService) ListCustomers(ctx context.Context, query *CustomerListQuery) (*CustomerPage, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	match := customerMatch(query)

	total, err := s.userService.CountDocuments(ctx, match)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"createdAt": -1}},
		{"$skip": (page - 1) * limit},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from": global.MongoDB_ColNames.Orders,
			"let":  bson.M{"userId": "$_id"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$eq": []string{"$userId", "$$userId"}}}},
				{"$group": bson.M{
					"_id":        nil,
					"orderCount": bson.M{"$sum": 1},
					"totalSpend": bson.M{"$sum": "$amounts.total"},
				}},
			},
			"as": "stats",
		}},
		{"$project": bson.M{
			"_id":        0,
			"id":         bson.M{"$toString": "$_id"},
			"email":      1,
			"name":       1,
			"role":       1,
			"status":     1,
			"createdAt":  1,
			"orderCount": bson.M{"$ifNull": []interface{}{bson.M{"$first": "$stats.orderCount"}, 0}},
			"totalSpend": bson.M{"$ifNull": []interface{}{bson.M{"$first": "$stats.totalSpend"}, 0}},
		}},
	}

	var rows []CustomerRow
	if err := s.userService.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []CustomerRow{}
	}

	return &CustomerPage{Page: page, Limit: limit, ItemCount: total, Items: rows}, nil
}
