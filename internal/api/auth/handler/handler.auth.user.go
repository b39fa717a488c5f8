// Package authhdl - handler xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "vela_commerce/internal/api/auth/dto"
	models "vela_commerce/internal/api/auth/models"
	authsvc "vela_commerce/internal/api/auth/service"
	basehdl "vela_commerce/internal/api/base/handler"
	"vela_commerce/internal/common"
	"vela_commerce/internal/logger"
)

// UserHandler xử lý các route đăng ký, đăng nhập và hồ sơ cá nhân
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.RegisterInput, authdto.AdminUpdateUserInput]
	UserService *authsvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.RegisterInput, authdto.AdminUpdateUserInput](userService),
		UserService: userService,
	}, nil
}

// HandleRegister đăng ký tài khoản mới.
// Trả về user và JWT để client đăng nhập ngay sau khi đăng ký.
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, token, err := h.UserService.Register(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAuth("register", c, map[string]interface{}{"user_id": user.ID.Hex()})
		h.HandleResponse(c, fiber.Map{"user": user, "token": token}, nil)
		return nil
	})
}

// HandleLogin đăng nhập bằng email/mật khẩu
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, token, err := h.UserService.Login(c.Context(), &input)
		if err != nil {
			logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAuth("login", c, map[string]interface{}{"user_id": user.ID.Hex()})
		h.HandleResponse(c, fiber.Map{"user": user, "token": token}, nil)
		return nil
	})
}

// HandleGetProfile trả về thông tin user hiện tại (từ middleware RequireAuth)
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUpdateProfile cập nhật thông tin cá nhân
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input authdto.UpdateProfileInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.UserService.UpdateProfile(c.Context(), user.ID, &input)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của user hiện tại
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input authdto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.UserService.ChangePassword(c.Context(), user.ID, &input)
		if err == nil {
			logger.LogAuth("change_password", c, map[string]interface{}{"user_id": user.ID.Hex()})
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
