package database

import (
	"fmt"

	"continuity/internal/domain"
)

// AutoMigrateAll applies GORM schema migrations for every table.
func AutoMigrateAll() error {
	if DB == nil {
		return fmt.Errorf("database not connected")
	}
	return DB.AutoMigrate(
		&domain.User{},
		&domain.Space{},
		&domain.UserSpace{},
		&domain.Folder{},
		&domain.Snapshot{},
		&domain.Character{},
		&domain.Attachment{},
	)
}

// RunFullMigration applies raw SQL migrations then the GORM schema.
func RunFullMigration(migrationsDir string) error {
	if err := ApplyRawMigrations(migrationsDir); err != nil {
		return err
	}
	return AutoMigrateAll()
}

func Ping() error {
	return HealthCheck()
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func TableExists(name string) (bool, error) {
	if DB == nil {
		return false, fmt.Errorf("database not connected")
	}
	var exists bool
	err := DB.Raw(
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?)",
		name,
	).Scan(&exists).Error
	return exists, err
}
