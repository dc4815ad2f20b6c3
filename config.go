// Copyright 2025 The pvsim Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Calculation modes for annual production
const (
	// ModeDirect multiplies installed power by the site irradiation
	ModeDirect = "direct"

	// ModeCalibrated scales each technology's measured reference yield
	// linearly with installed power
	ModeCalibrated = "calibrated"
)

// Config holds the application configuration
type Config struct {
	// Per-panel constants
	ModuleAreaM2  float64 `yaml:"module_area_m2"`
	RatedPowerKWp float64 `yaml:"rated_power_kwp"`

	// Site constants (defaults model Marseille)
	SiteIrradiation     float64 `yaml:"site_irradiation"`     // kWh/m²/year
	BuildingConsumption float64 `yaml:"building_consumption"` // kWh/year

	// Energy balance settings
	SelfConsumptionRate float64 `yaml:"self_consumption_rate"`

	// Production calculation settings
	Mode              string  `yaml:"mode"`
	ReferencePowerKWp float64 `yaml:"reference_power_kwp"`

	// Panel count settings
	DefaultPanelCount int `yaml:"default_panel_count"`
	MaxPanelCount     int `yaml:"max_panel_count"`

	// Report settings
	ChartTheme string `yaml:"chart_theme"`

	// Debugging
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the configuration matching the reference study:
// 1.7 m² / 0.4 kWc modules on a Marseille site (1824 kWh/m²/year) serving
// a building consuming 8260 kWh/year
func DefaultConfig() *Config {
	return &Config{
		ModuleAreaM2:        1.7,
		RatedPowerKWp:       0.4,
		SiteIrradiation:     1824,
		BuildingConsumption: 8260,
		SelfConsumptionRate: 0.9,
		Mode:                ModeDirect,
		ReferencePowerKWp:   8.0,
		DefaultPanelCount:   20,
		MaxPanelCount:       25,
		ChartTheme:          "dark",
		Debug:               false,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	// If no path provided, return defaults with env var overrides
	if path == "" {
		config.applyEnvironmentVariables()
		return config, nil
	}

	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Field: "config_file", Message: "failed to read config file", Err: err}
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, &ConfigError{Field: "config_file", Message: "failed to parse config file", Err: err}
	}

	// Apply environment variable overrides
	config.applyEnvironmentVariables()

	return config, nil
}

// applyEnvironmentVariables overrides config with environment variables
func (c *Config) applyEnvironmentVariables() {
	if val := os.Getenv("PVSIM_MODE"); val != "" {
		c.Mode = val
	}
	if val := os.Getenv("PVSIM_SITE_IRRADIATION"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.SiteIrradiation = f
		}
	}
	if val := os.Getenv("PVSIM_BUILDING_CONSUMPTION"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.BuildingConsumption = f
		}
	}
	if val := os.Getenv("PVSIM_CHART_THEME"); val != "" {
		c.ChartTheme = val
	}
	if val := os.Getenv("PVSIM_DEBUG"); val == "true" || val == "1" {
		c.Debug = true
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	if c.ModuleAreaM2 <= 0 {
		errors = append(errors, "module_area_m2 must be positive")
	}
	if c.RatedPowerKWp <= 0 {
		errors = append(errors, "rated_power_kwp must be positive")
	}
	if c.SiteIrradiation <= 0 {
		errors = append(errors, "site_irradiation must be positive")
	}
	if c.BuildingConsumption < 0 {
		errors = append(errors, "building_consumption must not be negative")
	}
	if c.SelfConsumptionRate <= 0 || c.SelfConsumptionRate > 1 {
		errors = append(errors, "self_consumption_rate must be in (0, 1]")
	}
	if c.Mode != ModeDirect && c.Mode != ModeCalibrated {
		errors = append(errors, fmt.Sprintf("mode must be %q or %q", ModeDirect, ModeCalibrated))
	}
	if c.ReferencePowerKWp <= 0 {
		errors = append(errors, "reference_power_kwp must be positive")
	}
	if c.MaxPanelCount < 0 {
		errors = append(errors, "max_panel_count must not be negative")
	}
	if c.DefaultPanelCount < 0 || c.DefaultPanelCount > c.MaxPanelCount {
		errors = append(errors, fmt.Sprintf("default_panel_count must be between 0 and %d", c.MaxPanelCount))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// ClampPanelCount forces a requested panel count into the slider range
// 0..MaxPanelCount, mirroring what the selection widget enforces
func (c *Config) ClampPanelCount(count int) int {
	if count < 0 {
		return 0
	}
	if count > c.MaxPanelCount {
		return c.MaxPanelCount
	}
	return count
}
