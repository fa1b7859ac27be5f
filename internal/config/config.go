package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
)

type Config struct {
	// HTTP server
	Port string

	// Ledger gateway
	LedgerBackend string
	WebhookURL    string
	SubmitTimeout time.Duration

	// Submission lifecycle
	IdleDelay time.Duration

	// Cash count seed
	CashDenominations []float64

	// AMQP (optional closing events)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets gateway
	GoogleSpreadsheetID string
	GoogleSheetName     string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		LedgerBackend: getEnv("LEDGER_BACKEND", "webhook"),
		WebhookURL:    getEnv("WEBHOOK_URL", ""),
		SubmitTimeout: getEnvDuration("SUBMIT_TIMEOUT", 30*time.Second),

		IdleDelay: getEnvDuration("IDLE_DELAY", 5*time.Second),

		CashDenominations: getEnvFloats("CASH_DENOMINATIONS", nil),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "cierres"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "closing_recorded"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Cierres"),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{"webhook", "sheets", "memory"}
	isValid := false
	for _, b := range validBackends {
		if c.LedgerBackend == b {
			isValid = true
			break
		}
	}
	if !isValid {
		problems = append(problems, fmt.Sprintf("invalid ledger backend '%s': must be one of %v", c.LedgerBackend, validBackends))
	}

	if c.LedgerBackend == "webhook" {
		if c.WebhookURL == "" {
			problems = append(problems, "webhook URL cannot be empty when using webhook backend")
		} else if parsed, err := url.Parse(c.WebhookURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid webhook URL '%s': %v", c.WebhookURL, err))
		} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
			problems = append(problems, fmt.Sprintf("invalid webhook URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
		}
	}

	if c.LedgerBackend == "sheets" && c.GoogleSpreadsheetID == "" {
		problems = append(problems, "Google Spreadsheet ID is required when using sheets backend")
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.SubmitTimeout < time.Second {
		problems = append(problems, fmt.Sprintf("invalid submit timeout %v: must be at least 1 second", c.SubmitTimeout))
	}
	if c.IdleDelay < 100*time.Millisecond {
		problems = append(problems, fmt.Sprintf("invalid idle delay %v: must be at least 100ms", c.IdleDelay))
	}

	for _, d := range c.CashDenominations {
		if d <= 0 {
			problems = append(problems, fmt.Sprintf("invalid cash denomination %v: must be positive", d))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvFloats parses a comma-separated list of numbers. Entries that
// fail to parse are dropped, matching the form's own input coercion.
func getEnvFloats(key string, defaultValue []float64) []float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []float64
	for _, part := range strings.Split(value, ",") {
		if a := core.ParseAmount(part); a.Present() {
			out = append(out, a.OrZero())
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
