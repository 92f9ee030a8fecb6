package configs

import (
	"os"
	"strings"

	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa (örn. production ortamı) sessizce
// ortam değişkenleriyle devam edilir.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if configslog.SLog != nil {
			configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
		}
	}
}

// GetDB aktif veritabanı bağlantısını döndürür (configsdatabase için kısayol).
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// GetPort uygulamanın dinleyeceği portu döndürür.
func GetPort() string {
	if port := os.Getenv("APP_PORT"); port != "" {
		return port
	}
	return "5000"
}

// GetCORSOrigins izin verilen origin listesini döndürür. Yerel geliştirme
// origin'i her zaman listededir, CORS_ORIGIN virgülle ayrılmış ek origin'ler içerir.
func GetCORSOrigins() string {
	origins := []string{"http://localhost:3000"}
	for _, o := range strings.Split(os.Getenv("CORS_ORIGIN"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return strings.Join(origins, ", ")
}
