package main

import (
	"flag"
	"log"

	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/pkg/database"

	"github.com/joho/godotenv"
)

// Creates the admin account, or resets its password when it already exists.
func main() {
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", "admin123", "admin password")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{})

	// 3. Find or create the admin
	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		user = model.User{
			Name:     *name,
			Email:    *email,
			Role:     model.RoleAdmin,
			IsActive: true,
		}
		if err := user.SetPassword(*password); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Admin user %s created", *email)
		return
	}

	// 4. Reset the password and make sure the account is usable
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	user.Role = model.RoleAdmin
	user.IsActive = true
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update admin user: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
