package main

import (
	"log"

	"Workshop/Config"
	"Workshop/CronJobs"
	"Workshop/Database"
	"Workshop/FiberConfig"
	"Workshop/Models"
)

func main() {
	Config.Load()
	Models.Connect()

	store := Database.NewStore(Models.DB)

	// Seed the template catalog on first run
	if err := store.SeedTemplatesFromCatalog(Config.CatalogPath); err != nil {
		log.Printf("Error seeding template catalog: %v\n", err)
	}

	if Config.RemindersEnabled() {
		reminder := CronJobs.NewAppointmentReminder(store, false)
		if err := reminder.Start(); err != nil {
			log.Printf("Failed to start appointment reminder: %v\n", err)
		}
	}

	FiberConfig.FiberConfig()
}
