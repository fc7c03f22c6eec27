// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/robrmz/MDE-Day-Planner/pkg/constants"
	"github.com/robrmz/MDE-Day-Planner/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mde-planner.
type Configuration struct {
	Plot      PlotConfig `yaml:"plot,omitempty"`
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// PlotConfig holds the user-supplied chart annotations. Both fields are
// opaque passthrough text.
type PlotConfig struct {
	Title    string `yaml:"title,omitempty"`
	Subtitle string `yaml:"subtitle,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario holds the five planning inputs for one experiment plan.
type Scenario struct {
	Name            string
	Active          bool
	Alpha           float64
	Power           float64
	BaselineRate    float64
	DailySampleSize int
	MaxDays         int
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source such as an HTTP request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard domain errors are reported by the planner itself.
func (c *Configuration) ValidateConfiguration() []string {
	var scenarios []validation.ScenarioInfo
	for _, scenario := range c.Scenarios {
		scenarios = append(scenarios, validation.ScenarioInfo{
			Name:    scenario.Name,
			Active:  scenario.Active,
			Alpha:   scenario.Alpha,
			Power:   scenario.Power,
			MaxDays: scenario.MaxDays,
		})
	}

	return validation.ValidateScenarios(scenarios)
}

// Title returns the configured plot title or the stock one.
func (c *Configuration) Title() string {
	if c.Plot.Title != "" {
		return c.Plot.Title
	}
	return DefaultPlotTitle
}

// DefaultPlotTitle is used whenever no title was supplied.
const DefaultPlotTitle = "Approximated Minimal Detectable Effect by Day"

// Subtitle returns the configured plot subtitle for a scenario, or generates
// the stock one from the scenario inputs.
func (c *Configuration) Subtitle(s Scenario) string {
	if c.Plot.Subtitle != "" {
		return c.Plot.Subtitle
	}
	return DefaultSubtitle(s.BaselineRate, s.DailySampleSize, s.Power)
}

// DefaultSubtitle builds the stock subtitle from the scenario inputs.
func DefaultSubtitle(baselineRate float64, dailySampleSize int, power float64) string {
	return fmt.Sprintf("Based on baseline %.2f%%, daily group traffic of %d and %.0f%% power",
		baselineRate*constants.PercentageMultiplier, dailySampleSize,
		power*constants.PercentageMultiplier)
}
