package migration

import (
	"emenu/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Menu{}); err != nil {
		log.Fatalf("Error migrating menu database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Dish{}); err != nil {
		log.Fatalf("Error migrating dish database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
