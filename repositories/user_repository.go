package repositories

import (
	"context"
	"errors"

	"anket.link/configs"
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.User]
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	db := configs.GetDB()
	return &UserRepository{db: db, base: NewBaseRepository[models.User](db)}
}

// NewUserRepositoryTx transaction içinde çalışan bir örnek oluşturur.
func NewUserRepositoryTx(tx *gorm.DB) IUserRepository {
	return &UserRepository{db: tx, base: NewBaseRepository[models.User](tx)}
}

// Create yeni kullanıcı kaydı oluşturur.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil || user.Email == "" {
		return errors.New("geçersiz kullanıcı kaydı")
	}
	return r.base.Create(ctx, user)
}

// FindByID ID ile kullanıcıyı bulur.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	return r.base.FindByID(ctx, id)
}

// FindByEmail e-posta adresi ile kullanıcıyı bulur.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	var user models.User
	err := getDB(ctx, r.db).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// Update kullanıcı kaydını günceller.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == 0 {
		return errors.New("güncellenecek kullanıcı geçerli değil")
	}
	return getDB(ctx, r.db).Save(user).Error
}

var _ IUserRepository = (*UserRepository)(nil)
