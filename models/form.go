package models

import (
	"crypto/rand"
	"math/big"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionType bir sorunun cevap tipini tanımlar.
type QuestionType string

const (
	QuestionTypeText         QuestionType = "TEXT"
	QuestionTypeSingleChoice QuestionType = "SINGLE_CHOICE"
)

// Question bir formun içindeki tek bir soruyu temsil eder. Sorular formla
// birlikte JSONB sütununda saklanır; ayrı bir tablo yoktur.
// ID sorunun yaşamı boyunca sabittir ve cevaplar yalnızca bu ID üzerinden eşleşir.
// Options sadece SINGLE_CHOICE tipinde anlamlıdır.
type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// Form bir kullanıcının oluşturduğu anket formudur. Key public erişim için
// kullanılan kısa link anahtarıdır. Questions sırası görüntüleme sırasıdır
// ve her okumada aynen korunur.
type Form struct {
	BaseModel
	Key           string                        `gorm:"type:varchar(11);uniqueIndex;not null" json:"key"`
	CreatorUserID uint                          `gorm:"index;not null" json:"-"`
	IsEnabled     bool                          `gorm:"default:true;index" json:"isEnabled"`
	Title         string                        `gorm:"type:varchar(255);not null" json:"title"`
	Description   string                        `gorm:"type:text" json:"description"`
	Questions     datatypes.JSONSlice[Question] `gorm:"type:jsonb" json:"questions"`
}

const (
	formKeyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	formKeyLength   = 11
)

// BeforeCreate public link anahtarını üretir (boşsa). Unique index çakışması
// servis katmanında yakalanıp tekrar denenir.
func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if err := f.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if f.Key == "" {
		key, err := generateFormKey()
		if err != nil {
			return err
		}
		f.Key = key
	}
	return nil
}

func generateFormKey() (string, error) {
	buf := make([]byte, formKeyLength)
	max := big.NewInt(int64(len(formKeyAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = formKeyAlphabet[n.Int64()]
	}
	return string(buf), nil
}
