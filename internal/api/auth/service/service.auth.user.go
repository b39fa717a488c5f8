package authsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "vela_commerce/internal/api/auth/dto"
	models "vela_commerce/internal/api/auth/models"
	basesvc "vela_commerce/internal/api/base/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký tài khoản mới.
// Email được lưu lowercase. Người dùng đầu tiên của hệ thống trở thành ADMIN.
func (s *UserService) Register(ctx context.Context, input *authdto.RegisterInput) (*models.User, string, error) {
	email := utility.NormalizeEmail(input.Email)

	exists, err := s.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", common.NewError(common.ErrCodeAuthAccount, "Email đã được đăng ký", common.StatusConflict, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, nil)
	}

	role := models.RoleUser
	total, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, "", err
	}
	if total == 0 {
		role = models.RoleAdmin
	}

	user, err := s.InsertOne(ctx, models.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       models.StatusActive,
		Tags:         []string{},
	})
	if err != nil {
		return nil, "", err
	}

	token, err := CreateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "role": user.Role}).Info("Register: Đăng ký tài khoản thành công")
	return &user, token, nil
}

// Login đăng nhập bằng email/mật khẩu, trả về user và JWT
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*models.User, string, error) {
	email := utility.NormalizeEmail(input.Email)

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	if err := user.StatusError(); err != nil {
		return nil, "", err
	}

	token, err := CreateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// UpdateProfile cập nhật thông tin cá nhân của user
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateProfileInput) (*models.User, error) {
	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.Address != nil {
		set["address"] = models.Address{
			Line1:      input.Address.Line1,
			Line2:      input.Address.Line2,
			City:       input.Address.City,
			State:      input.Address.State,
			PostalCode: input.Address.PostalCode,
			Country:    input.Address.Country,
		}
	}
	if input.NewsletterOptIn != nil {
		set["newsletterOptIn"] = *input.NewsletterOptIn
	}
	if len(set) == 0 {
		user, err := s.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	user, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword đổi mật khẩu sau khi kiểm tra mật khẩu hiện tại
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu hiện tại không chính xác", common.StatusUnauthorized, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, nil)
	}

	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"passwordHash": string(hash)},
	})
	return err
}

// SetRole gán role cho user. Không cho hạ role của admin cuối cùng.
func (s *UserService) SetRole(ctx context.Context, userID primitive.ObjectID, role string) (*models.User, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleAdmin && role != models.RoleAdmin {
		if err := s.guardLastAdmin(ctx, userID); err != nil {
			return nil, err
		}
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"role": role},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// BanUser khóa tài khoản. Admin cuối cùng không thể bị khóa.
func (s *UserService) BanUser(ctx context.Context, userID primitive.ObjectID, reason string) (*models.User, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleAdmin {
		if err := s.guardLastAdmin(ctx, userID); err != nil {
			return nil, err
		}
	}

	set := map[string]interface{}{"status": models.StatusBanned}
	if reason != "" {
		set["tags"] = append(user.Tags, "banned:"+reason)
	}
	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UnbanUser mở khóa tài khoản
func (s *UserService) UnbanUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.SetStatus(ctx, userID, models.StatusActive)
}

// SetStatus đổi trạng thái tài khoản. Admin active cuối cùng
// không thể bị đưa ra khỏi trạng thái active.
func (s *UserService) SetStatus(ctx context.Context, userID primitive.ObjectID, status string) (*models.User, error) {
	if status != models.StatusActive {
		user, err := s.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user.Role == models.RoleAdmin {
			if err := s.guardLastAdmin(ctx, userID); err != nil {
				return nil, err
			}
		}
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser xóa user. Admin cuối cùng không thể bị xóa.
func (s *UserService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		if err := s.guardLastAdmin(ctx, userID); err != nil {
			return err
		}
	}

	return s.DeleteById(ctx, userID)
}

// guardLastAdmin trả lỗi nếu userID là admin active cuối cùng của hệ thống
func (s *UserService) guardLastAdmin(ctx context.Context, userID primitive.ObjectID) error {
	count, err := s.CountDocuments(ctx, bson.M{
		"role":   models.RoleAdmin,
		"status": models.StatusActive,
		"_id":    bson.M{"$ne": userID},
	})
	if err != nil {
		return err
	}
	if count == 0 {
		return common.ErrLastAdmin
	}
	return nil
}
