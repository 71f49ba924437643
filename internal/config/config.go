package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the commands read from the environment.
type Config struct {
	// Username and Password gate the web UI and API. Both empty means no
	// login can succeed; the server still starts.
	Username string
	Password string

	DBPath  string // database file path
	Addr    string // listen address for serve
	LogFile string // optional log file, stdout/stderr only when empty

	// BackupDir enables scheduled snapshots when set; BackupEvery is the
	// cron schedule they run on.
	BackupDir   string
	BackupEvery string
}

// Load reads configuration from the environment, consulting an optional
// .env file first. A missing .env is fine; so are missing credentials.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Username:    os.Getenv("INVENTORY_USERNAME"),
		Password:    os.Getenv("INVENTORY_PASSWORD"),
		DBPath:      getEnv("PARTSBIN_DB", "electronics_inventory.db"),
		Addr:        getEnv("PARTSBIN_ADDR", ":8080"),
		LogFile:     os.Getenv("PARTSBIN_LOG"),
		BackupDir:   os.Getenv("PARTSBIN_BACKUP_DIR"),
		BackupEvery: getEnv("PARTSBIN_BACKUP_EVERY", "@daily"),
	}
}

// getEnv returns the environment value for key, or defaultValue when unset
// or empty.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
