package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Worker   WorkerConfig
	Policy   PayPolicy
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	MaxRetries    int
	RunMigrations bool
}

type RedisConfig struct {
	Addr       string
	MaxRetries int
	OptionsTTL time.Duration
}

type KafkaConfig struct {
	Broker     string
	MaxRetries int
	GroupID    string
}

type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// PayPolicy is the rate table injected into the calculators.
type PayPolicy struct {
	WeekdayRate      int64
	SundayRate       int64
	SalaryCategories []string
}

func DefaultPayPolicy() PayPolicy {
	return PayPolicy{
		WeekdayRate: 350,
		SundayRate:  400,
	}
}

// HasCategory reports whether id is an allowed salary supplement.
// An empty category list allows any id.
func (p PayPolicy) HasCategory(id string) bool {
	if len(p.SalaryCategories) == 0 {
		return true
	}
	for _, c := range p.SalaryCategories {
		if strings.EqualFold(c, id) {
			return true
		}
	}
	return false
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	cfg.HTTP = HTTPConfig{
		Port:         getEnv("PORT", "3000"),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	dbRetries, err := getEnvInt("DB_MAX_RETRIES", 5)
	if err != nil {
		return nil, err
	}
	cfg.Database = DatabaseConfig{
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          getEnv("DB_PORT", "5432"),
		User:          getEnv("DB_USER", "postgres"),
		Password:      getEnv("DB_PASSWORD", ""),
		Name:          getEnv("DB_NAME", "staffpay"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		MaxRetries:    dbRetries,
		RunMigrations: getEnvBool("DB_RUN_MIGRATIONS", false),
	}

	ttl, err := getEnvDuration("REDIS_OPTIONS_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.Redis = RedisConfig{
		Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
		MaxRetries: 5,
		OptionsTTL: ttl,
	}

	cfg.Kafka = KafkaConfig{
		Broker:     getEnv("KAFKA_BROKER", ""),
		MaxRetries: 5,
		GroupID:    getEnv("KAFKA_GROUP_ID", "go-staffpay-slips"),
	}

	poll, err := getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second)
	if err != nil {
		return nil, err
	}
	batch, err := getEnvInt("OUTBOX_BATCH_SIZE", 50)
	if err != nil {
		return nil, err
	}
	cfg.Worker = WorkerConfig{PollInterval: poll, BatchSize: batch}

	cfg.Policy = DefaultPayPolicy()
	if cfg.Policy.WeekdayRate, err = getEnvInt64("PART_TIME_WEEKDAY_RATE", cfg.Policy.WeekdayRate); err != nil {
		return nil, err
	}
	if cfg.Policy.SundayRate, err = getEnvInt64("PART_TIME_SUNDAY_RATE", cfg.Policy.SundayRate); err != nil {
		return nil, err
	}
	cfg.Policy.SalaryCategories = getEnvList("SALARY_CATEGORIES")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
