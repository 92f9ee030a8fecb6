package seeders

import (
	"errors"
	"os"

	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemUser sistem yönetici hesabını oluşturur (varsa dokunmaz).
// Kimlik bilgileri SYSTEM_USER_EMAIL / SYSTEM_USER_PASSWORD ile verilir.
func SeedSystemUser(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_USER_EMAIL")
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if email == "" || password == "" {
		configslog.SLog.Info("SYSTEM_USER_EMAIL/PASSWORD tanımlı değil, sistem kullanıcısı atlanıyor.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Sistem kullanıcısı '%s' zaten mevcut, oluşturma atlanıyor.", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Sistem kullanıcısı şifresi hashlenemedi", zap.Error(err))
		return err
	}

	user := models.User{
		Name:         "System",
		Email:        email,
		PasswordHash: string(hashed),
		IsActive:     true,
		IsSystem:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem kullanıcısı başarıyla oluşturuldu (ID: %d).", user.ID)
	return nil
}
