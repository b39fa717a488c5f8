package graph

import (
	"errors"

	"vela_commerce/internal/common"
)

// apiError bọc *common.Error để graphql-go đưa mã lỗi vào extensions
// của formatted error (qua interface gqlerrors.ExtendedError).
type apiError struct {
	err *common.Error
}

func (e *apiError) Error() string {
	return e.err.Message
}

func (e *apiError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code":   e.err.Code.Code,
		"status": e.err.StatusCode,
	}
	if e.err.Details != nil {
		ext["details"] = e.err.Details
	}
	return ext
}

// wrapError ánh xạ lỗi nghiệp vụ sang lỗi GraphQL có extensions
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *common.Error
	if errors.As(err, &apiErr) {
		return &apiError{err: apiErr}
	}
	return err
}
