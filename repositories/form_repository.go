package repositories

import (
	"context"
	"errors"
	"time"

	"anket.link/configs"
	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFormRepository form veritabanı işlemleri için arayüz.
type IFormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	FindByID(ctx context.Context, id uint) (*models.Form, error)
	FindByKey(ctx context.Context, key string) (*models.Form, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]models.Form, error)
	FindAllByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Form, int64, error)
	Update(ctx context.Context, form *models.Form) error
	Delete(ctx context.Context, form *models.Form, deletedByUserID uint) error
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

// FormRepository IFormRepository arayüzünü uygular.
type FormRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Form]
}

// NewFormRepository yeni bir FormRepository örneği oluşturur.
func NewFormRepository() IFormRepository {
	return newFormRepository(configs.GetDB())
}

// NewFormRepositoryTx transaction içinde çalışan bir örnek oluşturur.
func NewFormRepositoryTx(tx *gorm.DB) IFormRepository {
	return newFormRepository(tx)
}

func newFormRepository(db *gorm.DB) *FormRepository {
	base := NewBaseRepository[models.Form](db)
	base.SetAllowedSortColumns(map[string]string{
		"id":         "id",
		"created_at": "created_at",
		"title":      "title",
		"is_enabled": "is_enabled",
	})
	return &FormRepository{db: db, base: base}
}

// Create yeni bir form oluşturur (Key üretimi model hook'unda).
func (r *FormRepository) Create(ctx context.Context, form *models.Form) error {
	if form == nil || form.CreatorUserID == 0 {
		return errors.New("geçersiz veya sahipsiz form oluşturulamaz")
	}
	return r.base.Create(ctx, form)
}

// FindByID belirli bir ID'ye sahip formu bulur.
func (r *FormRepository) FindByID(ctx context.Context, id uint) (*models.Form, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Form ID")
	}
	return r.base.FindByID(ctx, id)
}

// FindByKey public link anahtarı ile formu bulur.
func (r *FormRepository) FindByKey(ctx context.Context, key string) (*models.Form, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var form models.Form
	err := getDB(ctx, r.db).Where("key = ?", key).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindByKey: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// FindAllByUserID kullanıcıya ait tüm formları oluşturulma sırasıyla döndürür.
// İstatistik hesabı tek okuma geçişinde bu listeyi kullanır.
func (r *FormRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.Form, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var forms []models.Form
	err := getDB(ctx, r.db).
		Where("creator_user_id = ?", userID).
		Order("id asc").
		Find(&forms).Error
	if err != nil {
		configslog.Log.Error("FormRepository.FindAllByUserID: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return forms, nil
}

// FindAllByUserIDPaginated kullanıcıya ait formları sayfalayarak bulur.
func (r *FormRepository) FindAllByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Form, int64, error) {
	if userID == 0 {
		return nil, 0, errors.New("geçersiz kullanıcı ID")
	}
	var forms []models.Form
	var totalCount int64
	db := getDB(ctx, r.db)

	query := db.Model(&models.Form{}).Where("creator_user_id = ?", userID)
	if params.Name != "" {
		query = query.Where("title ILIKE ?", "%"+params.Name+"%")
	}
	if params.Status != "" {
		query = query.Where("is_enabled = ?", params.Status == "true")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("FormRepository.Count (Paginated): DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return forms, 0, nil
	}

	err := query.
		Order(r.base.OrderClause(params.SortBy, params.OrderBy, "created_at")).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&forms).Error
	if err != nil {
		configslog.Log.Error("FormRepository.Find (Paginated): DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, totalCount, err
	}
	return forms, totalCount, nil
}

// Update formu günceller (BeforeUpdate hook çalışır).
func (r *FormRepository) Update(ctx context.Context, form *models.Form) error {
	if form == nil || form.ID == 0 {
		return errors.New("güncellenecek form geçerli değil")
	}
	return getDB(ctx, r.db).Save(form).Error
}

// Delete formu soft delete eder, DeletedBy alanını işaretler.
// Cevap kayıtları silinmez; form silinse de saklanmaya devam ederler.
func (r *FormRepository) Delete(ctx context.Context, form *models.Form, deletedByUserID uint) error {
	if form == nil || form.ID == 0 {
		return errors.New("silinecek form geçerli değil")
	}
	now := time.Now().UTC()
	result := getDB(ctx, r.db).Model(&models.Form{}).
		Where("id = ? AND deleted_at IS NULL", form.ID).
		Updates(map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID})
	if result.Error != nil {
		configslog.Log.Error("FormRepository.Delete: DB error", zap.Uint("id", form.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByUserID kullanıcıya ait form sayısını döndürür.
func (r *FormRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, errors.New("geçersiz kullanıcı ID")
	}
	var count int64
	err := getDB(ctx, r.db).Model(&models.Form{}).Where("creator_user_id = ?", userID).Count(&count).Error
	return count, err
}

var _ IFormRepository = (*FormRepository)(nil)
