package graph

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/graphql-go/graphql"

	authmodels "vela_commerce/internal/api/auth/models"
	"vela_commerce/internal/api/middleware"
	"vela_commerce/internal/logger"
)

// graphqlRequest body chuẩn của một request GraphQL qua POST
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler phục vụ POST /graphql trên Fiber
type Handler struct {
	schema graphql.Schema
}

// NewHandler dựng resolver, schema và trả về handler sẵn dùng
func NewHandler() (*Handler, error) {
	resolver, err := NewResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to create graphql resolver: %w", err)
	}
	schema, err := NewSchema(resolver)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema}, nil
}

// Serve thực thi một request GraphQL. User đã xác thực (nếu có, từ
// OptionalAuth) được chuyển từ Locals vào context cho resolver.
func (h *Handler) Serve(c fiber.Ctx) error {
	req := new(graphqlRequest)
	if err := json.Unmarshal(c.Body(), req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []fiber.Map{{"message": "Request body không phải JSON hợp lệ"}},
		})
	}

	var ctx context.Context = c.Context()
	if user, ok := c.Locals("user").(authmodels.User); ok {
		ctx = WithUser(ctx, user)
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	if result.HasErrors() {
		logger.GetAppLogger().WithField("errors", result.Errors).Debug("GraphQL request có lỗi")
	}
	return c.JSON(result)
}

// Register đăng ký POST /graphql lên app, sau OptionalAuth
func Register(app *fiber.App) error {
	handler, err := NewHandler()
	if err != nil {
		return err
	}
	app.Post("/graphql", middleware.OptionalAuth(), handler.Serve)
	return nil
}
