package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserServiceError özel servis hataları
type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

const (
	ErrUserNotFound          UserServiceError = "kullanıcı bulunamadı"
	ErrEmailAlreadyExists    UserServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrInvalidCredentials    UserServiceError = "e-posta veya şifre hatalı"
	ErrUserInactive          UserServiceError = "hesap pasif durumda"
	ErrUserInvalidInput      UserServiceError = "geçersiz kullanıcı verisi"
	ErrPasswordHashingFailed UserServiceError = "şifre oluşturulamadı"
)

// IUserService kullanıcı işlemleri için arayüz.
type IUserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// UserService IUserService arayüzünü uygular.
type UserService struct {
	repo repositories.IUserRepository
}

// NewUserService yeni bir UserService örneği oluşturur.
func NewUserService() IUserService {
	return &UserService{repo: repositories.NewUserRepository()}
}

// Register yeni bir form sahibi hesabı oluşturur.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: ad ve geçerli e-posta zorunludur", ErrUserInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: şifre en az 8 karakter olmalıdır", ErrUserInvalidInput)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashingFailed
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		configslog.Log.Error("Kullanıcı oluşturulurken repository hatası", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Kullanıcı kaydı oluşturuldu: ID %d, E-posta: %s", user.ID, user.Email)
	return user, nil
}

// Authenticate e-posta/şifre ikilisini doğrular ve kullanıcıyı döndürür.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

// GetUserByID ID ile kullanıcıyı getirir.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

var _ IUserService = (*UserService)(nil)
