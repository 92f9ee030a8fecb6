package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log ve SLog uygulama genelinde kullanılan global logger örnekleridir.
// Log yapılandırılmış (structured) loglama, SLog ise sugared loglama içindir.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger ortama göre (APP_ENV) zap logger'ı başlatır.
// main fonksiyonunda bir kez çağrılmalı, çıkışta SyncLogger ile temizlenmelidir.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("zap logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını temizler (defer ile çağrılır).
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
