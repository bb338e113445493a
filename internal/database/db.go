package database

import (
	"fmt"

	"attendance-registry/internal/logger"
	"attendance-registry/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open открывает файл SQLite и создаёт таблицы users и records, если их ещё нет.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	// один писатель на файл
	sqlDB.SetMaxOpenConns(1)

	// миграции
	if err := db.AutoMigrate(&models.User{}, &models.Record{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.L.Info().Str("path", path).Msg("database ready")
	return db, nil
}
