package authhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	authdto "vela_commerce/internal/api/auth/dto"
	"vela_commerce/internal/api/middleware"
	"vela_commerce/internal/common"
	"vela_commerce/internal/logger"
)

// HandleAdminListUsers liệt kê người dùng có phân trang.
// Query params: role, status, tag, page, limit.
func (h *UserHandler) HandleAdminListUsers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := bson.M{}
		if role := c.Query("role"); role != "" {
			filter["role"] = role
		}
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}
		if tag := c.Query("tag"); tag != "" {
			filter["tags"] = tag
		}

		page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 20
		}

		opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		data, err := h.UserService.FindWithPagination(c.Context(), filter, page, limit, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleAdminSetRole gán role cho người dùng
func (h *UserHandler) HandleAdminSetRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.SetRoleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.SetRole(c.Context(), id, input.Role)
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(id.Hex())
			logger.LogAdmin("set_role", "user", id.Hex(), c, map[string]interface{}{"role": input.Role})
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleAdminBanUser khóa tài khoản người dùng
func (h *UserHandler) HandleAdminBanUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.BanUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.BanUser(c.Context(), id, input.Reason)
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(id.Hex())
			logger.LogAdmin("ban_user", "user", id.Hex(), c, map[string]interface{}{"reason": input.Reason})
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleAdminUnbanUser mở khóa tài khoản người dùng
func (h *UserHandler) HandleAdminUnbanUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.UnbanUser(c.Context(), id)
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(id.Hex())
			logger.LogAdmin("unban_user", "user", id.Hex(), c, nil)
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleAdminSetStatus đổi trạng thái tài khoản (active / inactive / banned)
func (h *UserHandler) HandleAdminSetStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.SetStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.SetStatus(c.Context(), id, input.Status)
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(id.Hex())
			logger.LogAdmin("set_status", "user", id.Hex(), c, map[string]interface{}{"status": input.Status})
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleAdminDeleteUser xóa người dùng (admin cuối cùng không thể bị xóa)
func (h *UserHandler) HandleAdminDeleteUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.UserService.DeleteUser(c.Context(), id)
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(id.Hex())
			logger.LogAdmin("delete_user", "user", id.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// parseUserID đọc ObjectID từ URI params
func (h *UserHandler) parseUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID người dùng không đúng định dạng MongoDB ObjectID",
			common.StatusBadRequest,
			nil,
		)
	}
	objID, _ := primitive.ObjectIDFromHex(id)
	return objID, nil
}
