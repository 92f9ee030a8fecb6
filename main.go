package main

import (
	"os"
	"os/signal"
	"syscall"

	"anket.link/configs"
	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"
	"anket.link/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName: "anket.link",
	})

	routes.SetupRoutes(app)

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde açık istekler tamamlanır.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata", zap.Error(err))
		}
	}()

	addr := ":" + configs.GetPort()
	configslog.SLog.Infof("Sunucu %s adresinde dinliyor", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
