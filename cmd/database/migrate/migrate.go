package migration

import (
	"SkinSense-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SkinScan{}); err != nil {
		log.Fatalf("Error migrating skin scan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.HealingProgress{}); err != nil {
		log.Fatalf("Error migrating healing progress database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
