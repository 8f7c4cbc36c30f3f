package persistent

import (
	"errors"

	"hi-platform/services/user/internal/entity"
	"hi-platform/services/user/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByIdentityName(identityName string) (*entity.User, error)
	EmailInUse(email, excludeUserID string) (bool, error)
	IdentityInUse(identityName, excludeUserID string) (bool, error)
	Update(user *entity.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	return r.getBy("id = ?", id)
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

func (r *userRepository) EmailInUse(email, excludeUserID string) (bool, error) {
	return r.inUse("email = ?", email, excludeUserID)
}

func (r *userRepository) IdentityInUse(identityName, excludeUserID string) (bool, error) {
	return r.inUse("hi_identity_name = ?", identityName, excludeUserID)
}

func (r *userRepository) inUse(query string, arg, excludeUserID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).
		Where(query, arg).
		Where("id <> ?", excludeUserID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Update(user *entity.User) error {
	updates := map[string]interface{}{
		"full_name":        user.FullName,
		"email":            user.Email,
		"hi_identity_name": user.HiIdentityName,
		"password":         user.Password,
		"avatar_url":       user.AvatarURL,
	}

	result := r.db.Model(&model.UserModel{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}
