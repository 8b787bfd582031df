package Config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const DefaultCompanyName = "Auto Repair Shop"

var (
	DatabaseDriver string
	DatabasePath   string
	Port           string
	AssetsDir      string
	LogosDir       string
	ExportsDir     string
	CatalogPath    string
	LogsDir        string
)

// Load reads .env if present and resolves all runtime settings. Call once
// before Models.Connect.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	DatabaseDriver = getEnv("DB_DRIVER", "sqlite")
	DatabasePath = getEnv("WORKSHOP_DB", "workshop.db")
	Port = getEnv("PORT", ":3001")
	AssetsDir = getEnv("ASSETS_DIR", "assets")
	LogosDir = filepath.Join(AssetsDir, "logos")
	ExportsDir = getEnv("EXPORTS_DIR", "exports")
	CatalogPath = getEnv("CATALOG_PATH", "catalog.json5")
	LogsDir = getEnv("LOGS_DIR", "logs")

	for _, dir := range []string{AssetsDir, LogosDir, ExportsDir, LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Error creating directory %s: %v\n", dir, err)
		}
	}
}

// MySQLDSN assembles the DSN used when DB_DRIVER=mysql.
func MySQLDSN() string {
	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASSWORD")
	DbName := os.Getenv("DB_NAME")
	DbPort := os.Getenv("DB_PORT")
	return DbUser + ":" + DbPassword + "@tcp(" + DbHost + ":" + DbPort + ")/" + DbName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

func RemindersEnabled() bool {
	return getEnv("REMINDERS_ENABLED", "true") == "true"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
