package utility

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển đổi chuỗi hex thành ObjectID.
// Trả về NilObjectID nếu chuỗi không hợp lệ.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// StringArray2ObjectIDArray chuyển đổi mảng chuỗi thành mảng ObjectID
func StringArray2ObjectIDArray(ids []string) []primitive.ObjectID {
	var objectIDs []primitive.ObjectID
	for _, id := range ids {
		objectIDs = append(objectIDs, String2ObjectID(id))
	}
	return objectIDs
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugTrimDashes   = regexp.MustCompile(`^-+|-+$`)
)

// Slugify chuẩn hóa chuỗi thành slug URL: chữ thường,
// các ký tự không phải chữ/số gộp thành một dấu gạch ngang.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	return slugTrimDashes.ReplaceAllString(s, "")
}

// NormalizeEmail chuẩn hóa email để lưu trữ và so sánh
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
