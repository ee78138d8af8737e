package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Yash-231-hue/clinic-booking/controllers"
)

// StartCronJobs starts the scheduler that keeps the public doctor
// directory cache warm between admin writes.
func StartCronJobs() {
	c := cron.New()
	_, err := c.AddFunc("*/5 * * * *", refreshDirectoryCache)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started for directory cache refresh")
}

func refreshDirectoryCache() {
	if _, err := controllers.FetchDirectory(); err != nil {
		log.Printf("Directory cache refresh failed: %v", err)
	}
}
