package Models

import (
	"log"

	"Workshop/Config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	switch Config.DatabaseDriver {
	case "mysql":
		DB, err = gorm.Open(mysql.Open(Config.MySQLDSN()), &gorm.Config{})
	default:
		DB, err = gorm.Open(sqlite.Open(Config.DatabasePath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// Migrate runs AutoMigrate for every workshop table. Safe to call on an
// existing database; AutoMigrate only adds what is missing.
func Migrate(db *gorm.DB) error {
	// 1. Base tables with no dependencies
	if err := db.AutoMigrate(
		&Customer{},
		&VehicleType{},
		&ServiceTemplate{},
		&SparePartTemplate{},
		&Setting{},
		&Appointment{},
		&Employee{},
		&Tool{},
		&Diagnostic{},
	); err != nil {
		return err
	}

	// 2. Then tables referencing base data
	if err := db.AutoMigrate(
		&Vehicle{}, // linked to customers by phone
	); err != nil {
		return err
	}

	// 3. Finally orders and everything hanging off them
	return db.AutoMigrate(
		&WorkOrder{}, // depends on Vehicle
		&Service{},   // depends on WorkOrder
		&SparePart{}, // depends on WorkOrder
		&Invoice{},   // depends on WorkOrder
	)
}
