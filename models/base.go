package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// contextUserIDKey işlemi yapan kullanıcının ID'sini context üzerinden taşır;
// BaseModel hook'ları CreatedBy/UpdatedBy alanlarını buradan doldurur.
const contextUserIDKey contextKey = "user_id"

// ContextWithUserID verilen context'e işlemi yapan kullanıcı ID'sini ekler.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, contextUserIDKey, userID)
}

func userIDFromContext(ctx context.Context) *uint {
	if ctx == nil {
		return nil
	}
	if id, ok := ctx.Value(contextUserIDKey).(uint); ok && id != 0 {
		return &id
	}
	return nil
}

// BaseModel tüm modeller için ortak alanları içerir.
// ID, CreatedAt, UpdatedAt, DeletedAt, CreatedBy, UpdatedBy, DeletedBy
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	CreatedBy *uint          `json:"-"`
	UpdatedBy *uint          `json:"-"`
	DeletedBy *uint          `json:"-"`
}

// BeforeCreate context'teki kullanıcı ID'sini CreatedBy alanına yazar.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if uid := userIDFromContext(tx.Statement.Context); uid != nil {
		m.CreatedBy = uid
	}
	return nil
}

// BeforeUpdate context'teki kullanıcı ID'sini UpdatedBy alanına yazar.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if uid := userIDFromContext(tx.Statement.Context); uid != nil {
		m.UpdatedBy = uid
	}
	return nil
}
