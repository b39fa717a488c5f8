// Package utility chứa các hàm tiện ích dùng chung: chuyển đổi bson,
// ObjectID, thời gian và chuỗi.
package utility

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành map[string]interface{} thông qua bson round-trip.
// Các bson tag trên struct quyết định tên key, nên map trả về dùng được
// trực tiếp trong các truy vấn và update của mongo.
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal struct: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal to map: %w", err)
	}
	return result, nil
}

// CurrentTimeInMilli trả về timestamp hiện tại tính bằng mili giây.
// Mọi trường createdAt/updatedAt trong hệ thống dùng format này.
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}

// Contains kiểm tra một phần tử có trong slice hay không
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// GoProtect bao bọc một hàm, bắt panic thay vì để chương trình dừng hẳn.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("Đã bắt lỗi panic: %v\n", err)
		}
	}()
	f()
}
