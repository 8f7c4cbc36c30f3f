package usecase

import (
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"hi-platform/pkg/logger"
	"hi-platform/pkg/s3"
	"hi-platform/services/user/internal/entity"
	"hi-platform/services/user/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const maxFullNameLength = 50

var (
	emailPattern    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	identityPattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,20}$`)
	digitPattern    = regexp.MustCompile(`\d`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
)

// validatePassword enforces the same password rules registration applies.
func validatePassword(password string) error {
	if len(password) < 8 {
		return entity.ErrPasswordTooShort
	}
	if !digitPattern.MatchString(password) {
		return entity.ErrPasswordNeedsDigit
	}
	if !letterPattern.MatchString(password) {
		return entity.ErrPasswordNeedsLetter
	}
	return nil
}

type UpdateProfileInput struct {
	FullName        string
	Email           string
	HiIdentityName  string
	Password        string
	CurrentPassword string
}

type UserUseCase interface {
	GetProfile(userID string) (*entity.User, error)
	GetByIdentity(identityName string) (*entity.PublicProfile, error)
	UpdateProfile(userID string, input UpdateProfileInput) (*entity.User, error)
	GetOwnPosts(userID, postType, sort string, limit, skip int) ([]*entity.Post, int64, error)
	GetPostsByIdentity(identityName, postType, sort string, limit, skip int) ([]*entity.Post, int64, error)
	GetInteractions(userID, engType string, limit, skip int) ([]*entity.Interaction, int64, error)
	GetEndorsements(userID, postType string, limit, skip int) ([]*entity.Post, int64, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error)
}

type userUseCase struct {
	userRepo       persistent.UserRepository
	postRepo       persistent.PostRepository
	engagementRepo persistent.EngagementRepository
	s3Client       *s3.Client
	logger         *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	postRepo persistent.PostRepository,
	engagementRepo persistent.EngagementRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:       userRepo,
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
		s3Client:       s3Client,
		logger:         logger,
	}
}

func (uc *userUseCase) GetProfile(userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(userID)
}

func (uc *userUseCase) GetByIdentity(identityName string) (*entity.PublicProfile, error) {
	user, err := uc.userRepo.GetByIdentityName(identityName)
	if err != nil {
		return nil, err
	}
	return user.PublicProfile(), nil
}

func (uc *userUseCase) UpdateProfile(userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if fullName := strings.TrimSpace(input.FullName); fullName != "" {
		if utf8.RuneCountInString(fullName) > maxFullNameLength {
			return nil, entity.ErrFullNameTooLong
		}
		user.FullName = fullName
	}

	if email := strings.ToLower(strings.TrimSpace(input.Email)); email != "" && email != user.Email {
		if !emailPattern.MatchString(email) {
			return nil, entity.ErrInvalidEmail
		}
		taken, err := uc.userRepo.EmailInUse(email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, entity.ErrEmailTaken
		}
		user.Email = email
	}

	if identity := strings.TrimSpace(input.HiIdentityName); identity != "" && identity != user.HiIdentityName {
		if !identityPattern.MatchString(identity) {
			return nil, entity.ErrInvalidIdentityName
		}
		taken, err := uc.userRepo.IdentityInUse(identity, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, entity.ErrIdentityTaken
		}
		user.HiIdentityName = identity
	}

	// Password changes require proving knowledge of the current one.
	if input.Password != "" {
		if input.CurrentPassword == "" {
			return nil, entity.ErrCurrentPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
			return nil, entity.ErrCurrentPasswordWrong
		}
		if err := validatePassword(input.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) GetOwnPosts(userID, postType, sort string, limit, skip int) ([]*entity.Post, int64, error) {
	return uc.postRepo.ListByAuthor(userID, postType, sort, limit, skip)
}

func (uc *userUseCase) GetPostsByIdentity(identityName, postType, sort string, limit, skip int) ([]*entity.Post, int64, error) {
	user, err := uc.userRepo.GetByIdentityName(identityName)
	if err != nil {
		return nil, 0, err
	}
	return uc.postRepo.ListByAuthor(user.ID, postType, sort, limit, skip)
}

func (uc *userUseCase) GetInteractions(userID, engType string, limit, skip int) ([]*entity.Interaction, int64, error) {
	return uc.engagementRepo.ListInteractions(userID, engType, limit, skip)
}

func (uc *userUseCase) GetEndorsements(userID, postType string, limit, skip int) ([]*entity.Post, int64, error) {
	return uc.postRepo.ListEndorsed(userID, postType, limit, skip)
}

func (uc *userUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, entity.ErrAvatarUploadFailed
	}

	user.AvatarURL = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
