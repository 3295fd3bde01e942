package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"fuelstations/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20240312_create_stations_and_pumps",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Station{}, &models.Pump{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("pumps", "stations")
			},
		},
	})
	return m.Migrate()
}
