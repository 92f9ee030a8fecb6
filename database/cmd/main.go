package main

import (
	"flag"

	"anket.link/configs"
	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"
	"anket.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	seedFlag := flag.Bool("seed", false, "Başlangıç kayıtlarını (seeder) çalıştır")
	flag.Parse()

	configs.LoadEnv()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag, *seedFlag)
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
