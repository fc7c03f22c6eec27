// Package constants provides shared constants for the mde-planner application.
package constants

// Default planning inputs, used by the web UI and the example configuration.
const (
	// DefaultAlpha is the default significance level
	DefaultAlpha = 0.1

	// DefaultPower is the default statistical power
	DefaultPower = 0.8

	// DefaultBaselineRate is the default baseline conversion rate
	DefaultBaselineRate = 0.1159

	// DefaultDailySampleSize is the default number of users per day per arm
	DefaultDailySampleSize = 7989

	// DefaultMaxDays is the default forecast horizon in days
	DefaultMaxDays = 21
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)

// Validation thresholds for warning-level checks
const (
	// HighAlphaThreshold flags unusually loose significance levels
	HighAlphaThreshold = 0.2

	// LowPowerThreshold flags underpowered plans
	LowPowerThreshold = 0.5

	// MaxReasonableHorizonDays flags forecast horizons beyond ten years
	MaxReasonableHorizonDays = 3650

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
