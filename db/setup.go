package db

import (
	"errors"

	"github.com/trackr-dev/trackr/internal/auth"
	"github.com/trackr-dev/trackr/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Project{},
		&models.Milestone{},
		&models.Document{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedAdmin creates the bootstrap admin account if no admin exists.
// Signup never produces an ADMIN, so this is the only way the first
// one comes into being.
func SeedAdmin(username, password, fullName string) error {
	if username == "" || password == "" {
		return nil
	}

	var admin models.User

	err := DB.Where("role = ?", models.RoleAdmin).First(&admin).Error

	if err == nil {
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := auth.HashPassword(password)

	if err != nil {
		return err
	}

	if fullName == "" {
		fullName = "Administrator"
	}

	return DB.Create(&models.User{
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         models.RoleAdmin,
	}).Error
}
