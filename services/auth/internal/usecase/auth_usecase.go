package usecase

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"hi-platform/pkg/jwt"
	"hi-platform/pkg/logger"
	"hi-platform/services/auth/internal/entity"
	"hi-platform/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const maxFullNameLength = 50

var (
	emailPattern    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	identityPattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,20}$`)
	digitPattern    = regexp.MustCompile(`\d`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
)

// validatePassword enforces the account password rules shared by
// registration and password changes.
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

type RegisterInput struct {
	FullName       string
	Email          string
	HiIdentityName string
	Password       string
}

// TokenPair carries the issued tokens together with the account they belong to.
type TokenPair struct {
	Token        string
	RefreshToken string
	User         *entity.User
}

type AuthUseCase interface {
	Register(input RegisterInput) (*TokenPair, error)
	Login(email, password string) (*TokenPair, error)
	Verify(userID string) (*entity.User, error)
	Refresh(refreshToken string) (*TokenPair, error)
	Logout(userID string) error
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(input RegisterInput) (*TokenPair, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	identityName := strings.TrimSpace(input.HiIdentityName)

	if fullName == "" {
		return nil, entity.ErrFullNameRequired
	}
	if utf8.RuneCountInString(fullName) > maxFullNameLength {
		return nil, entity.ErrFullNameTooLong
	}
	if !emailPattern.MatchString(email) {
		return nil, entity.ErrInvalidEmail
	}
	if !identityPattern.MatchString(identityName) {
		return nil, entity.ErrInvalidIdentityName
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	// Distinct errors for each uniqueness check so the client can point at
	// the offending field.
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, entity.ErrEmailTaken
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, err
	}
	if _, err := uc.userRepo.GetByIdentityName(identityName); err == nil {
		return nil, entity.ErrIdentityTaken
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName:       fullName,
		Email:          email,
		HiIdentityName: identityName,
		Password:       string(hash),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	return uc.issueTokens(user)
}

func (uc *authUseCase) Login(email, password string) (*TokenPair, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	return uc.issueTokens(user)
}

func (uc *authUseCase) Verify(userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(userID)
}

// Refresh validates the presented token against the stored one and rotates
// it, so a leaked refresh token stops working after its first use.
func (uc *authUseCase) Refresh(refreshToken string) (*TokenPair, error) {
	userID, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, entity.ErrInvalidRefreshToken
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidRefreshToken
		}
		return nil, err
	}
	if user.RefreshToken != refreshToken {
		return nil, entity.ErrInvalidRefreshToken
	}

	return uc.issueTokens(user)
}

func (uc *authUseCase) Logout(userID string) error {
	return uc.userRepo.UpdateRefreshToken(userID, "")
}

func (uc *authUseCase) issueTokens(user *entity.User) (*TokenPair, error) {
	token, err := uc.jwtService.GenerateToken(user.ID, user.HiIdentityName)
	if err != nil {
		return nil, err
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return nil, err
	}
	user.RefreshToken = refreshToken

	return &TokenPair{
		Token:        token,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
