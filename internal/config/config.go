package config

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Policy   PolicyConfig
	App      AppConfig
	Cache    CacheConfig
	Storage  StorageConfig
	LogLevel string
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

// PolicyConfig holds every tunable of the classification and stocking
// policy pipeline. All of it is data an operator can retune through the
// environment without a rebuild.
type PolicyConfig struct {
	// ABC cumulative-percentage boundaries
	ACutoffPct float64
	BCutoffPct float64

	// Demand variability (vod) settings
	WindowMonths    int
	VodLowThreshold float64
	VodHighThreshold float64
	MinTransactions int

	// Inventory math
	OrderingCost float64
	HoldingRate  float64

	// Target service level per nine-box segment, plus the fallback used
	// for any code not present in the table.
	ServiceLevels        map[string]float64
	FallbackServiceLevel float64
}

type AppConfig struct {
	DataDir   string
	OutputDir string
}

type CacheConfig struct {
	Enabled             bool
	RedisURL            string
	RedisHost           string
	RedisPort           string
	RedisPassword       string
	RedisDB             int
	DashboardTTLSeconds int
}

// StorageConfig holds the optional S3-compatible object storage settings
// used to fetch input tables and publish output tables.
type StorageConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

var nineBoxCodes = []string{"AL", "AM", "AH", "BL", "BM", "BH", "CL", "CM", "CH"}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("LOG_LEVEL", "info")

		viper.SetDefault("ABC_A_PCT", 75.0)
		viper.SetDefault("ABC_B_PCT", 95.0)
		viper.SetDefault("VOD_WINDOW_MONTHS", 36)
		viper.SetDefault("VOD_LOW_THRESHOLD", 2.0)
		viper.SetDefault("VOD_HIGH_THRESHOLD", 4.0)
		viper.SetDefault("MIN_TRANSACTIONS", 3)
		viper.SetDefault("ORDERING_COST", 50.0)
		viper.SetDefault("HOLDING_RATE", 0.2)

		viper.SetDefault("SERVICE_LEVEL_AL", 0.97)
		viper.SetDefault("SERVICE_LEVEL_AM", 0.97)
		viper.SetDefault("SERVICE_LEVEL_AH", 0.97)
		viper.SetDefault("SERVICE_LEVEL_BL", 0.93)
		viper.SetDefault("SERVICE_LEVEL_BM", 0.93)
		viper.SetDefault("SERVICE_LEVEL_BH", 0.93)
		viper.SetDefault("SERVICE_LEVEL_CL", 0.90)
		viper.SetDefault("SERVICE_LEVEL_CM", 0.90)
		viper.SetDefault("SERVICE_LEVEL_CH", 0.85)
		viper.SetDefault("SERVICE_LEVEL_FALLBACK", 0.85)

		viper.SetDefault("APP_DATA_DIR", "./data/sample")
		viper.SetDefault("APP_OUTPUT_DIR", "./data/output")

		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_DASHBOARD_TTL_SECONDS", 60)

		viper.SetDefault("STORAGE_ENABLED", false)
		viper.SetDefault("STORAGE_ENDPOINT", "")
		viper.SetDefault("STORAGE_ACCESS_KEY", "")
		viper.SetDefault("STORAGE_SECRET_KEY", "")
		viper.SetDefault("STORAGE_BUCKET", "")
		viper.SetDefault("STORAGE_REGION", "us-east-1")
		viper.SetDefault("STORAGE_USE_SSL", true)

		// Read from environment variables
		viper.AutomaticEnv()

		ensureDir(viper.GetString("APP_OUTPUT_DIR"))

		serviceLevels := make(map[string]float64, len(nineBoxCodes))
		for _, code := range nineBoxCodes {
			serviceLevels[code] = viper.GetFloat64("SERVICE_LEVEL_" + code)
		}

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: splitOrigins(viper.GetStringSlice("SERVER_ALLOWED_ORIGINS")),
			},
			Policy: PolicyConfig{
				ACutoffPct:           viper.GetFloat64("ABC_A_PCT"),
				BCutoffPct:           viper.GetFloat64("ABC_B_PCT"),
				WindowMonths:         viper.GetInt("VOD_WINDOW_MONTHS"),
				VodLowThreshold:      viper.GetFloat64("VOD_LOW_THRESHOLD"),
				VodHighThreshold:     viper.GetFloat64("VOD_HIGH_THRESHOLD"),
				MinTransactions:      viper.GetInt("MIN_TRANSACTIONS"),
				OrderingCost:         viper.GetFloat64("ORDERING_COST"),
				HoldingRate:          viper.GetFloat64("HOLDING_RATE"),
				ServiceLevels:        serviceLevels,
				FallbackServiceLevel: viper.GetFloat64("SERVICE_LEVEL_FALLBACK"),
			},
			App: AppConfig{
				DataDir:   viper.GetString("APP_DATA_DIR"),
				OutputDir: viper.GetString("APP_OUTPUT_DIR"),
			},
			Cache: CacheConfig{
				Enabled:             viper.GetBool("CACHE_ENABLED"),
				RedisURL:            viper.GetString("REDIS_URL"),
				RedisHost:           viper.GetString("REDIS_HOST"),
				RedisPort:           viper.GetString("REDIS_PORT"),
				RedisPassword:       viper.GetString("REDIS_PASSWORD"),
				RedisDB:             viper.GetInt("REDIS_DB"),
				DashboardTTLSeconds: viper.GetInt("CACHE_DASHBOARD_TTL_SECONDS"),
			},
			Storage: StorageConfig{
				Enabled:   viper.GetBool("STORAGE_ENABLED"),
				Endpoint:  viper.GetString("STORAGE_ENDPOINT"),
				AccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
				SecretKey: viper.GetString("STORAGE_SECRET_KEY"),
				Bucket:    viper.GetString("STORAGE_BUCKET"),
				Region:    viper.GetString("STORAGE_REGION"),
				UseSSL:    viper.GetBool("STORAGE_USE_SSL"),
			},
			LogLevel: viper.GetString("LOG_LEVEL"),
		}
	})

	return instance
}

// splitOrigins allows a single comma-separated env value as well as a list.
func splitOrigins(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
