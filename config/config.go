package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	KindPostgres = "postgres"
	KindMySQL    = "mysql"
	KindMemory   = "memory"
)

// Config dibaca sekali dari environment saat proses start dan di-inject
// eksplisit, tidak ada state global.
type Config struct {
	DBKind      string
	DatabaseURL string
	PostgresDSN string
	MySQLDSN    string
	Port        string
	GinMode     string
	AllowOrigin string
	RateRPS     int
	RateBurst   int
}

func Load() *Config {
	return &Config{
		DBKind:      getenv("DB_KIND", KindMemory),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		PostgresDSN: os.Getenv("PG_DATABASE_URL"),
		MySQLDSN:    os.Getenv("MYSQL_DATABASE_URL"),
		Port:        getenv("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		AllowOrigin: getenv("ALLOW_ORIGIN", "*"),
		RateRPS:     getenvInt("RATE_LIMIT_RPS", 50),
		RateBurst:   getenvInt("RATE_LIMIT_BURST", 50),
	}
}

// OpenDB membuka koneksi sesuai DBKind dan memastikan koneksinya hidup.
// Error apa pun di sini (DSN kosong, gagal dial, gagal ping) ditangani
// caller dengan fallback ke store in-memory, bukan dengan exit.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBKind {
	case KindPostgres:
		dsn := cfg.PostgresDSN
		if dsn == "" {
			dsn = cfg.DatabaseURL
		}
		if dsn == "" {
			return nil, fmt.Errorf("PG_DATABASE_URL or DATABASE_URL must be set for postgres")
		}
		dialector = postgres.Open(dsn)
	case KindMySQL:
		dsn := cfg.MySQLDSN
		if dsn == "" {
			dsn = cfg.DatabaseURL
		}
		if dsn == "" {
			return nil, fmt.Errorf("MYSQL_DATABASE_URL or DATABASE_URL must be set for mysql")
		}
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_KIND %q", cfg.DBKind)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
