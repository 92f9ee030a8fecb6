package migrations

import (
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateResponsesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating responses table...")
	if err := db.AutoMigrate(&models.Response{}); err != nil {
		configslog.Log.Error("Failed to migrate responses table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Responses table migrated successfully")
	return nil
}
