package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port string
	Env  string

	Constraints Constraints
}

// Constraints holds every business constant the decision engine reads.
// Loaded once at startup and never mutated afterwards.
type Constraints struct {
	MinLoanAmount int
	MaxLoanAmount int
	MinLoanPeriod int
	MaxLoanPeriod int

	Segment1Modifier int
	Segment2Modifier int
	Segment3Modifier int

	MinAge          int
	MaxAgeEstonia   int
	MaxAgeLatvia    int
	MaxAgeLithuania int

	MinCreditScore float64
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("APP_ENV", "local"),

		Constraints: Constraints{
			MinLoanAmount: getEnvInt("MIN_LOAN_AMOUNT", 2000),
			MaxLoanAmount: getEnvInt("MAX_LOAN_AMOUNT", 10000),
			MinLoanPeriod: getEnvInt("MIN_LOAN_PERIOD", 12),
			MaxLoanPeriod: getEnvInt("MAX_LOAN_PERIOD", 60),

			Segment1Modifier: getEnvInt("SEGMENT_1_CREDIT_MODIFIER", 100),
			Segment2Modifier: getEnvInt("SEGMENT_2_CREDIT_MODIFIER", 300),
			Segment3Modifier: getEnvInt("SEGMENT_3_CREDIT_MODIFIER", 1000),

			MinAge:          getEnvInt("MINIMUM_AGE", 18),
			MaxAgeEstonia:   getEnvInt("MAXIMUM_AGE_ESTONIA", 76),
			MaxAgeLatvia:    getEnvInt("MAXIMUM_AGE_LATVIA", 74),
			MaxAgeLithuania: getEnvInt("MAXIMUM_AGE_LITHUANIA", 73),

			MinCreditScore: getEnvFloat("MINIMUM_CREDIT_SCORE", 0.1),
		},
	}
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

// AgeLimits returns the per-country maximum age table keyed by
// lowercase country name.
func (b Constraints) AgeLimits() map[string]int {
	return map[string]int{
		"estonia":   b.MaxAgeEstonia,
		"latvia":    b.MaxAgeLatvia,
		"lithuania": b.MaxAgeLithuania,
	}
}

// Validate checks that every bounded pair satisfies min <= max.
func (b Constraints) Validate() error {
	if b.MinLoanAmount > b.MaxLoanAmount {
		return fmt.Errorf("loan amount bounds inverted: %d > %d", b.MinLoanAmount, b.MaxLoanAmount)
	}
	if b.MinLoanPeriod > b.MaxLoanPeriod {
		return fmt.Errorf("loan period bounds inverted: %d > %d", b.MinLoanPeriod, b.MaxLoanPeriod)
	}
	for country, maxAge := range b.AgeLimits() {
		if b.MinAge > maxAge {
			return fmt.Errorf("age bounds inverted for %s: %d > %d", country, b.MinAge, maxAge)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
