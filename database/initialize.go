package database

import (
	"anket.link/configs/configslog"
	"anket.link/database/migrations"
	"anket.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyon ve seed işlemlerini tek transaction içinde çalıştırır.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder tabloları bağımlılık sırasına göre migrate eder.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> User migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> Form migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateFormsTable(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> Response migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateResponsesTable(db); err != nil {
		return err
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders başlangıç kayıtlarını kontrol edip oluşturur.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Sistem kullanıcısı kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedSystemUser(db); err != nil {
		return err
	}
	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
