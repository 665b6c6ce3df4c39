package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database selected by DB_DRIVER ("sqlite" by default,
// "mysql" for production) using DB_DSN.
func InitDB() (*gorm.DB, error) {
	driver := getEnv("DB_DRIVER", "sqlite")

	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(getEnv("DB_DSN", "ordering.db")), cfg)
	case "mysql":
		dsn := getEnv("DB_DSN", "")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required for mysql")
		}
		return gorm.Open(mysql.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
