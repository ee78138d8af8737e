package db

import (
	"fmt"
	"log"

	"github.com/Yash-231-hue/clinic-booking/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	err := DB.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	if err := SeedAdmin(); err != nil {
		log.Fatal("Failed to seed admin user: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
