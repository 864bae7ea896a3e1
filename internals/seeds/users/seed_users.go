package users

import (
	"log"
	"os"

	"gorm.io/gorm"

	authModel "perpustakaanku_backend/internals/features/users/auth/model"
	authService "perpustakaanku_backend/internals/features/users/auth/service"
)

// SeedAdminUser creates the librarian account from ADMIN_USERNAME /
// ADMIN_PASSWORD. Skipped when the account already exists or the
// password is not configured.
func SeedAdminUser(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "bibliotecario"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ℹ️ ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing authModel.UserModel
	if err := db.Where("lower(user_username) = lower(?)", username).First(&existing).Error; err == nil {
		log.Printf("ℹ️ User '%s' already exists, skipped", username)
		return
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	user := authModel.UserModel{
		UserUsername: username,
		UserPassword: hashed,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("❌ Failed to insert user '%s': %v", username, err)
		return
	}
	log.Printf("✅ Seeded admin user '%s'", username)
}
