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

// IResponseRepository cevap (response) veritabanı işlemleri için arayüz.
// Cevaplar append-only'dir: Update/Delete yolu bilinçli olarak yoktur.
type IResponseRepository interface {
	Create(ctx context.Context, response *models.Response) error
	FindAllByFormID(ctx context.Context, formID uint) ([]models.Response, error)
	CountGroupedByFormIDs(ctx context.Context, formIDs []uint) (map[uint]int64, error)
}

// ResponseRepository IResponseRepository arayüzünü uygular.
type ResponseRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Response]
}

// NewResponseRepository yeni bir ResponseRepository örneği oluşturur.
func NewResponseRepository() IResponseRepository {
	db := configs.GetDB()
	return &ResponseRepository{db: db, base: NewBaseRepository[models.Response](db)}
}

// NewResponseRepositoryTx transaction içinde çalışan bir örnek oluşturur.
func NewResponseRepositoryTx(tx *gorm.DB) IResponseRepository {
	return &ResponseRepository{db: tx, base: NewBaseRepository[models.Response](tx)}
}

// Create yeni cevap kaydı oluşturur.
func (r *ResponseRepository) Create(ctx context.Context, response *models.Response) error {
	if response == nil || response.FormID == 0 {
		return errors.New("geçersiz veya formsuz cevap oluşturulamaz")
	}
	return r.base.Create(ctx, response)
}

// FindAllByFormID bir forma ait tüm cevapları gönderilme sırasıyla döndürür.
func (r *ResponseRepository) FindAllByFormID(ctx context.Context, formID uint) ([]models.Response, error) {
	if formID == 0 {
		return nil, errors.New("geçersiz Form ID")
	}
	var responses []models.Response
	err := getDB(ctx, r.db).
		Where("form_id = ?", formID).
		Order("id asc").
		Find(&responses).Error
	if err != nil {
		configslog.Log.Error("ResponseRepository.FindAllByFormID: DB error", zap.Uint("formID", formID), zap.Error(err))
		return nil, err
	}
	return responses, nil
}

// CountGroupedByFormIDs verilen formların cevap sayılarını tek sorguda,
// form ID'sine göre gruplanmış olarak döndürür. Hiç cevabı olmayan formlar
// haritada yer almaz; sıfır varsayımı çağırana aittir.
func (r *ResponseRepository) CountGroupedByFormIDs(ctx context.Context, formIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(formIDs))
	if len(formIDs) == 0 {
		return counts, nil
	}

	type formCount struct {
		FormID uint
		Total  int64
	}
	var rows []formCount
	err := getDB(ctx, r.db).Model(&models.Response{}).
		Select("form_id, count(*) as total").
		Where("form_id IN ?", formIDs).
		Group("form_id").
		Scan(&rows).Error
	if err != nil {
		configslog.Log.Error("ResponseRepository.CountGroupedByFormIDs: DB error", zap.Error(err))
		return nil, err
	}
	for _, row := range rows {
		counts[row.FormID] = row.Total
	}
	return counts, nil
}

var _ IResponseRepository = (*ResponseRepository)(nil)
