package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Data    DataConfig
	Storage StorageConfig
	Minio   MinioConfig
	Display DisplayConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	BodyLimit int
}

type LogConfig struct {
	Level  string
	Format string
}

// DataConfig names the reference dataset and model artifact inside the store.
type DataConfig struct {
	DatasetPath string
	ModelPath   string
	SynthSeed   uint64
}

type StorageConfig struct {
	Backend string
	Root    string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

type DisplayConfig struct {
	CurrencySymbol string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "3000"),
			Env:       getEnv("ENV", "development"),
			BodyLimit: getEnvAsInt("BODY_LIMIT", 1<<20),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Data: DataConfig{
			DatasetPath: getEnv("DATASET_PATH", "data/salaries.csv"),
			ModelPath:   getEnv("MODEL_PATH", "model.json"),
			SynthSeed:   uint64(getEnvAsInt64("SYNTH_SEED", 42)),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", StorageLocal),
			Root:    getEnv("STORAGE_ROOT", "."),
		},
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "salary-estimator"),
			Prefix:    getEnv("MINIO_PREFIX", ""),
			UseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
		},
		Display: DisplayConfig{
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
