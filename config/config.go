package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Observ   ObservabilityConfig
	Business BusinessConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DataConfig struct {
	Directory     string
	BackupEnabled bool
	BackupKeep    int
}

type ObservabilityConfig struct {
	JaegerEndpoint string
	TracingEnabled bool
}

type BusinessConfig struct {
	MinQuantity        int
	MaxQuantity        int
	MaxDiscountPercent float64
	LowStockThreshold  int
}

func Load() *Config {
	_ = godotenv.Load()

	backupKeep, _ := strconv.Atoi(getEnv("BACKUP_KEEP", "10"))
	minQty, _ := strconv.Atoi(getEnv("MIN_ORDER_QUANTITY", "1"))
	maxQty, _ := strconv.Atoi(getEnv("MAX_ORDER_QUANTITY", "10000"))
	maxDiscount, _ := strconv.ParseFloat(getEnv("MAX_DISCOUNT_PERCENT", "50"), 64)
	lowStock, _ := strconv.Atoi(getEnv("LOW_STOCK_THRESHOLD", "10"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Data: DataConfig{
			Directory:     getEnv("DATA_DIRECTORY", "./data"),
			BackupEnabled: getEnv("BACKUP_ENABLED", "true") == "true",
			BackupKeep:    backupKeep,
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
			TracingEnabled: getEnv("TRACING_ENABLED", "false") == "true",
		},
		Business: BusinessConfig{
			MinQuantity:        minQty,
			MaxQuantity:        maxQty,
			MaxDiscountPercent: maxDiscount,
			LowStockThreshold:  lowStock,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s, data_dir=%s", cfg.Server.Env, cfg.Server.Port, cfg.Data.Directory)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
