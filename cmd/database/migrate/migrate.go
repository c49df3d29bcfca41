package migration

import (
	"fmt"
	"log"

	"github.com/ViniciusVRodrigues/despensa-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListItem{}); err != nil {
		log.Fatalf("Error migrating shopping list item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
