package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Business BusinessConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// BusinessConfig holds the site-wide payroll and attendance policy.
type BusinessConfig struct {
	// Timezone is the fixed business timezone all wall-clock input is
	// interpreted in, regardless of where the server runs.
	Timezone string

	// OvertimeThresholdMinutes is the minimum worked-minus-scheduled excess
	// before an attendance record is surfaced as an overtime candidate.
	OvertimeThresholdMinutes int

	// SSORate and SSOCap drive the statutory social-security line.
	SSORate decimal.Decimal
	SSOCap  decimal.Decimal

	// Attendance-bonus policy: a month is "clean" when absences and late
	// arrivals both stay within their allowances.
	AbsenceAllowance  int
	LatenessAllowance int
	BonusBase         decimal.Decimal
	BonusStep         decimal.Decimal
	BonusStepCap      int
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_portal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	overtimeThreshold, err := strconv.Atoi(getEnv("OVERTIME_THRESHOLD_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_THRESHOLD_MINUTES: %w", err)
	}

	ssoRate, err := decimal.NewFromString(getEnv("SSO_RATE", "0.05"))
	if err != nil {
		return nil, fmt.Errorf("invalid SSO_RATE: %w", err)
	}
	ssoCap, err := decimal.NewFromString(getEnv("SSO_CAP", "750"))
	if err != nil {
		return nil, fmt.Errorf("invalid SSO_CAP: %w", err)
	}

	absenceAllowance, err := strconv.Atoi(getEnv("BONUS_ABSENCE_ALLOWANCE", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid BONUS_ABSENCE_ALLOWANCE: %w", err)
	}
	latenessAllowance, err := strconv.Atoi(getEnv("BONUS_LATENESS_ALLOWANCE", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid BONUS_LATENESS_ALLOWANCE: %w", err)
	}
	bonusBase, err := decimal.NewFromString(getEnv("BONUS_BASE", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid BONUS_BASE: %w", err)
	}
	bonusStep, err := decimal.NewFromString(getEnv("BONUS_STEP", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid BONUS_STEP: %w", err)
	}
	bonusStepCap, err := strconv.Atoi(getEnv("BONUS_STEP_CAP", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid BONUS_STEP_CAP: %w", err)
	}

	config.Business = BusinessConfig{
		Timezone:                 getEnv("BUSINESS_TIMEZONE", "Asia/Bangkok"),
		OvertimeThresholdMinutes: overtimeThreshold,
		SSORate:                  ssoRate,
		SSOCap:                   ssoCap,
		AbsenceAllowance:         absenceAllowance,
		LatenessAllowance:        latenessAllowance,
		BonusBase:                bonusBase,
		BonusStep:                bonusStep,
		BonusStepCap:             bonusStepCap,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Business.OvertimeThresholdMinutes < 0 {
		return fmt.Errorf("OVERTIME_THRESHOLD_MINUTES must not be negative")
	}
	if c.Business.SSORate.IsNegative() || c.Business.SSOCap.IsNegative() {
		return fmt.Errorf("SSO_RATE and SSO_CAP must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
