package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"anket.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB .env üzerinden gelen ayarlarla PostgreSQL bağlantısını kurar.
func InitDB() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "anketlink"),
		getEnv("DB_SSLMODE", "disable"),
	)

	gormLogLevel := gormlogger.Warn
	if os.Getenv("APP_ENV") != "production" {
		gormLogLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormLogLevel),
		TranslateError: true,
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantı havuzu alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı başarıyla kuruldu.")
}

// GetDB aktif gorm.DB örneğini döndürür. InitDB çağrılmadan kullanılmamalıdır.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB çağrıldı ancak veritabanı başlatılmamış (InitDB unutuldu mu?)")
	}
	return db
}

// CloseDB bağlantı havuzunu kapatır (defer ile çağrılır).
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı kapatılırken bağlantı havuzu alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
