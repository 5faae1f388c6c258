package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting of the backend and the dashboard. Values come
// from the environment, optionally preloaded from a .env file.
type Config struct {
	Port string

	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	PostgresDSN   string
	BoltPath      string
	SeedFile      string

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	APIBaseURL string
	APITimeout time.Duration
}

// Store drivers understood by the backend.
const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
)

// Load reads the .env files given (".env" when none) and then the process
// environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}
	cfg := Config{
		Port:          get("PORT", "8000"),
		StoreDriver:   get("STORE_DRIVER", DriverMemory),
		MongoURI:      get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: get("MONGO_DATABASE", "gorestaurant"),
		PostgresDSN:   getenv("POSTGRES_DSN"),
		BoltPath:      get("BOLT_PATH", "foods.db"),
		SeedFile:      getenv("SEED_FILE"),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		APIBaseURL:    get("API_BASE_URL", "http://localhost:8000"),
	}

	var err error
	if cfg.CacheTTL, err = parseDuration("CACHE_TTL", get("CACHE_TTL", "5m")); err != nil {
		return Config{}, err
	}
	if cfg.APITimeout, err = parseDuration("API_TIMEOUT", get("API_TIMEOUT", "0s")); err != nil {
		return Config{}, err
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be a number, got %q", cfg.Port)
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverMongo, DriverBolt:
	case DriverPostgres:
		if cfg.PostgresDSN == "" {
			return Config{}, errors.New("POSTGRES_DSN is required for the postgres driver")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
