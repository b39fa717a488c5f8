package utility

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransformTagConfig chứa cấu hình được parse từ tag transform
type TransformTagConfig struct {
	Type     string // str_objectid, str_objectid_ptr, str_objectid_array, str_time
	Format   string // Format cho time converter
	Optional bool   // Không có giá trị thì bỏ qua field
	Required bool   // Bắt buộc phải có giá trị
}

// ParseTransformTag parse tag transform thành config.
// Format: "[type][,format=<value>][,optional|required]"
// Ví dụ:
//   - transform:"str_objectid" - Convert string → primitive.ObjectID
//   - transform:"str_objectid_ptr,optional" - Convert string → *primitive.ObjectID
//   - transform:"str_objectid_array" - Convert []string → []primitive.ObjectID
//   - transform:"str_time,format=2006-01-02" - Convert string → int64 unix-ms
func ParseTransformTag(tag string) *TransformTagConfig {
	config := &TransformTagConfig{
		Format: time.RFC3339,
	}
	if tag == "" {
		return config
	}

	parts := strings.Split(tag, ",")
	config.Type = strings.TrimSpace(parts[0])

	for i := 1; i < len(parts); i++ {
		part := strings.TrimSpace(parts[i])
		switch {
		case part == "optional":
			config.Optional = true
		case part == "required":
			config.Required = true
		case strings.HasPrefix(part, "format="):
			config.Format = strings.TrimPrefix(part, "format=")
		}
	}
	return config
}

// TransformFieldValue transform giá trị từ DTO field sang Model field theo config
func TransformFieldValue(value interface{}, config *TransformTagConfig, targetFieldType reflect.Type) (interface{}, error) {
	if value == nil {
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng không có giá trị")
		}
		return nil, nil
	}
	if strValue, ok := value.(string); ok && strValue == "" {
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng giá trị rỗng")
		}
		return nil, nil
	}

	switch config.Type {
	case "str_objectid":
		return transformToObjectID(value)
	case "str_objectid_ptr":
		return transformToObjectIDPtr(value)
	case "str_objectid_array":
		return transformToObjectIDArray(value)
	case "str_time":
		return transformToTime(value, config.Format)
	default:
		return value, nil
	}
}

func transformToObjectID(value interface{}) (primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return primitive.NilObjectID, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("không thể convert string '%s' sang ObjectID: %w", strValue, err)
	}
	return objID, nil
}

func transformToObjectIDPtr(value interface{}) (*primitive.ObjectID, error) {
	objID, err := transformToObjectID(value)
	if err != nil {
		return nil, err
	}
	if objID.IsZero() {
		return nil, nil
	}
	return &objID, nil
}

func transformToObjectIDArray(value interface{}) ([]primitive.ObjectID, error) {
	switch v := value.(type) {
	case []string:
		out := make([]primitive.ObjectID, 0, len(v))
		for _, s := range v {
			objID, err := transformToObjectID(s)
			if err != nil {
				return nil, err
			}
			out = append(out, objID)
		}
		return out, nil
	case []interface{}:
		out := make([]primitive.ObjectID, 0, len(v))
		for _, item := range v {
			objID, err := transformToObjectID(item)
			if err != nil {
				return nil, err
			}
			out = append(out, objID)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("giá trị không phải là mảng string: %T", value)
	}
}

func transformToTime(value interface{}, format string) (int64, error) {
	strValue, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return 0, nil
	}

	t, err := time.Parse(format, strValue)
	if err != nil {
		return 0, fmt.Errorf("không thể parse time '%s' với format '%s': %w", strValue, format, err)
	}
	return t.UnixMilli(), nil
}
