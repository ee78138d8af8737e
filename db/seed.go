package db

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/Yash-231-hue/clinic-booking/models"
)

// SeedAdmin ensures the administrator account from the environment
// exists. Registration never produces admins, so this is the only
// path that grants the flag: a missing account is created, an
// existing one is promoted.
func SeedAdmin() error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		log.Println("ADMIN_USERNAME not set, skipping admin seed")
		return nil
	}

	var existing models.User
	if DB.Where("username = ?", username).First(&existing).RowsAffected > 0 {
		if existing.IsAdmin {
			return nil
		}
		existing.IsAdmin = true
		if err := DB.Save(&existing).Error; err != nil {
			return err
		}
		log.Printf("Promoted existing user %q to admin", username)
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: string(hashed),
		Contact:  os.Getenv("ADMIN_CONTACT"),
		IsAdmin:  true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Admin user %q created", username)
	return nil
}
