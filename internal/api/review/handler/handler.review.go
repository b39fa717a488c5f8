// Package reviewhdl - handler cho domain review.
package reviewhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "vela_commerce/internal/api/auth/models"
	basehdl "vela_commerce/internal/api/base/handler"
	reviewdto "vela_commerce/internal/api/review/dto"
	models "vela_commerce/internal/api/review/models"
	reviewsvc "vela_commerce/internal/api/review/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/utility"
)

// ReviewHandler xử lý các route đánh giá sản phẩm
type ReviewHandler struct {
	*basehdl.BaseHandler[models.Review, reviewdto.ReviewCreateInput, reviewdto.ReviewUpdateInput]
	ReviewService *reviewsvc.ReviewService
}

// NewReviewHandler tạo mới ReviewHandler
func NewReviewHandler() (*ReviewHandler, error) {
	reviewService, err := reviewsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %v", err)
	}
	return &ReviewHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Review, reviewdto.ReviewCreateInput, reviewdto.ReviewUpdateInput](reviewService),
		ReviewService: reviewService,
	}, nil
}

// HandleCreateReview tạo đánh giá mới, yêu cầu đăng nhập
func (h *ReviewHandler) HandleCreateReview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		input := new(reviewdto.ReviewCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		productID := utility.String2ObjectID(input.ProductID)
		review, err := h.ReviewService.CreateReview(c.Context(), user, input, productID)
		h.HandleResponse(c, review, err)
		return nil
	})
}

// HandleUpdateReview cập nhật đánh giá, chỉ chủ đánh giá hoặc admin
func (h *ReviewHandler) HandleUpdateReview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		id, err := h.parseReviewID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(reviewdto.ReviewUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		review, err := h.ReviewService.UpdateReview(c.Context(), user, id, input)
		h.HandleResponse(c, review, err)
		return nil
	})
}

// HandleDeleteReview xóa đánh giá, chỉ chủ đánh giá hoặc admin
func (h *ReviewHandler) HandleDeleteReview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		id, err := h.parseReviewID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.ReviewService.DeleteReview(c.Context(), user, id)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// HandleListByProduct trả về đánh giá của một sản phẩm, mới nhất trước (public)
func (h *ReviewHandler) HandleListByProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rawID := c.Params("id")
		if !primitive.IsValidObjectID(rawID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID sản phẩm không đúng định dạng MongoDB ObjectID",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		productID := utility.String2ObjectID(rawID)

		page := parseQueryInt64(c, "page")
		limit := parseQueryInt64(c, "limit")
		result, err := h.ReviewService.ListByProduct(c.Context(), productID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

func (h *ReviewHandler) parseReviewID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID đánh giá không đúng định dạng MongoDB ObjectID",
			common.StatusBadRequest,
			nil,
		)
	}
	objID, _ := primitive.ObjectIDFromHex(id)
	return objID, nil
}

func parseQueryInt64(c fiber.Ctx, key string) int64 {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
