// Package graph - Test chuẩn hóa document cho GraphQL.
package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vela_commerce/internal/api/base/models"
)

type sampleDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	CreatedAt int64              `bson:"createdAt"`
	DeletedAt int64              `bson:"deletedAt"`
	Stock     int64              `bson:"stock"`
	Nested    sampleNested       `bson:"nested"`
	Tags      []string           `bson:"tags"`
}

type sampleNested struct {
	ProductID primitive.ObjectID `bson:"productId"`
	PaidAt    int64              `bson:"paidAt"`
}

func TestDoc_NormalizesObjectIDAndTimestamps(t *testing.T) {
	id := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	out := Doc(sampleDoc{
		ID:        id,
		Name:      "Áo thun",
		CreatedAt: 1767225600000, // 2026-01-01T00:00:00Z
		DeletedAt: 0,
		Stock:     7,
		Nested:    sampleNested{ProductID: productID, PaidAt: 1767225600000},
	})

	assert.Equal(t, id.Hex(), out["_id"])
	assert.Equal(t, id.Hex(), out["id"], "_id phải được nhân bản sang id")
	assert.Equal(t, "2026-01-01T00:00:00Z", out["createdAt"])
	assert.Nil(t, out["deletedAt"], "mốc thời gian 0 phải trả về nil")
	assert.Equal(t, int64(7), out["stock"], "số không kết thúc bằng At phải giữ nguyên")

	nested, ok := out["nested"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, productID.Hex(), nested["productId"])
	assert.Equal(t, "2026-01-01T00:00:00Z", nested["paidAt"])
}

func TestDoc_NonNilSliceStaysSlice(t *testing.T) {
	out := Doc(sampleDoc{ID: primitive.NewObjectID(), Tags: []string{"áo", "hè"}})
	tags, ok := out["tags"].([]any)
	assert.True(t, ok)
	assert.Equal(t, []any{"áo", "hè"}, tags)
}

func TestDocs_NeverNil(t *testing.T) {
	assert.NotNil(t, Docs[sampleDoc](nil))
	assert.Len(t, Docs([]sampleDoc{{ID: primitive.NewObjectID()}}), 1)
}

func TestPage_NilGivesEmptyEnvelope(t *testing.T) {
	out := Page[sampleDoc](nil)
	assert.Equal(t, int64(0), out["total"])
	assert.Equal(t, int64(1), out["page"])
	assert.Empty(t, out["items"])
}

func TestPage_WrapsItems(t *testing.T) {
	out := Page(&basemodels.PaginateResult[sampleDoc]{
		Items:   []sampleDoc{{ID: primitive.NewObjectID(), Name: "Áo thun"}},
		Total:   1,
		Page:    2,
		PerPage: 20,
	})
	assert.Equal(t, int64(1), out["total"])
	assert.Equal(t, int64(2), out["page"])
	items := out["items"].([]map[string]any)
	assert.Equal(t, "Áo thun", items[0]["name"])
}
