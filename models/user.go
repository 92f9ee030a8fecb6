package models

// User form sahiplerini temsil eder. Anonim katılımcıların kaydı tutulmaz.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"-"`
	IsSystem     bool   `gorm:"default:false" json:"-"`
}
