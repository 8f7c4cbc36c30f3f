package persistent

import (
	"errors"

	"hi-platform/services/auth/internal/entity"
	"hi-platform/services/auth/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByIdentityName(identityName string) (*entity.User, error)
	UpdateRefreshToken(userID, refreshToken string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := toUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *toUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	return r.getBy("id = ?", id)
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	return r.getBy("email = ?", email)
}

func (r *userRepository) GetByIdentityName(identityName string) (*entity.User, error) {
	return r.getBy("hi_identity_name = ?", identityName)
}

func (r *userRepository) getBy(query string, arg string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.First(&userModel, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return toUserEntity(&userModel), nil
}

func (r *userRepository) UpdateRefreshToken(userID, refreshToken string) error {
	result := r.db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("refresh_token", refreshToken)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func toUserEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:             m.ID,
		FullName:       m.FullName,
		Email:          m.Email,
		HiIdentityName: m.HiIdentityName,
		Password:       m.Password,
		RefreshToken:   m.RefreshToken,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toUserModel(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		HiIdentityName: u.HiIdentityName,
		Password:       u.Password,
		RefreshToken:   u.RefreshToken,
	}
}
