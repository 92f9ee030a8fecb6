package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound kayıt bulunamadığında repository katmanının döndürdüğü hatadır.
// Servisler gorm.ErrRecordNotFound yerine bunu kontrol eder.
var ErrNotFound = errors.New("kayıt bulunamadı")

// getDB context'te bir transaction varsa onu, yoksa verilen bağlantıyı
// context ile döndürür. Tüm repository'ler bu yardımcıyı kullanır.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

// IBaseRepository ortak CRUD işlemleri için generik arayüz.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Count(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns map[string]string)
	OrderClause(sortBy, orderBy, fallback string) string
}

// BaseRepository generik temel repository implementasyonudur.
type BaseRepository[T any] struct {
	db          *gorm.DB
	sortColumns map[string]string
}

// NewBaseRepository yeni bir generik repository örneği oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, sortColumns: map[string]string{}}
}

// SetAllowedSortColumns dışarıdan gelen sıralama alanlarının izin listesini
// (istek alanı -> veritabanı sütunu) ayarlar.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns map[string]string) {
	r.sortColumns = columns
}

// OrderClause izin listesine göre güvenli bir ORDER BY ifadesi üretir.
// Bilinmeyen alanlar fallback sütununa düşer.
func (r *BaseRepository[T]) OrderClause(sortBy, orderBy, fallback string) string {
	column := fallback
	if dbCol, ok := r.sortColumns[sortBy]; ok {
		column = dbCol
	}
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = "desc"
	}
	return column + " " + orderBy
}

// Create yeni kaydı oluşturur (model hook'ları çalışır).
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return getDB(ctx, r.db).Create(entity).Error
}

// FindByID ID ile tek kayıt bulur.
func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := getDB(ctx, r.db).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Count toplam kayıt sayısını döndürür.
func (r *BaseRepository[T]) Count(ctx context.Context) (int64, error) {
	var entity T
	var count int64
	err := getDB(ctx, r.db).Model(&entity).Count(&count).Error
	return count, err
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
