package models

import (
	"gorm.io/datatypes"
)

// Answer tek bir soruya verilen cevabı tutar. QuestionID zayıf referanstır:
// soru formdan silinmiş olsa bile cevap kaydı okunabilir kalır, okuma anında
// yeniden doğrulanmaz.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"answer"`
}

// Response bir formun tek bir doldurulmasını temsil eder. Gönderim anında
// oluşturulur ve sonrasında değişmez; silme yolu yoktur. Form güncellense de
// yaşamaya devam eder (zayıf referans).
type Response struct {
	BaseModel
	FormID  uint                        `gorm:"index;not null" json:"formId"`
	Answers datatypes.JSONSlice[Answer] `gorm:"type:jsonb" json:"answers"`
}
