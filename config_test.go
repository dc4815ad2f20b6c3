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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	assert.Equal(t, 1.7, config.ModuleAreaM2)
	assert.Equal(t, 0.4, config.RatedPowerKWp)
	assert.Equal(t, 1824.0, config.SiteIrradiation)
	assert.Equal(t, 8260.0, config.BuildingConsumption)
	assert.Equal(t, 0.9, config.SelfConsumptionRate)
	assert.Equal(t, ModeDirect, config.Mode)
	assert.Equal(t, 8.0, config.ReferencePowerKWp)
	assert.Equal(t, 20, config.DefaultPanelCount)
	assert.Equal(t, 25, config.MaxPanelCount)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvsim.yaml")
	content := []byte(`
mode: calibrated
site_irradiation: 1300
building_consumption: 6000
default_panel_count: 12
chart_theme: light
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, ModeCalibrated, config.Mode)
	assert.Equal(t, 1300.0, config.SiteIrradiation)
	assert.Equal(t, 6000.0, config.BuildingConsumption)
	assert.Equal(t, 12, config.DefaultPanelCount)
	assert.Equal(t, "light", config.ChartTheme)

	// Untouched fields keep their defaults
	assert.Equal(t, 1.7, config.ModuleAreaM2)
	assert.Equal(t, 25, config.MaxPanelCount)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "config_file", configErr.Field)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.NotNil(t, configErr.Unwrap())
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("PVSIM_MODE", ModeCalibrated)
	t.Setenv("PVSIM_SITE_IRRADIATION", "1500")
	t.Setenv("PVSIM_DEBUG", "1")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ModeCalibrated, config.Mode)
	assert.Equal(t, 1500.0, config.SiteIrradiation)
	assert.True(t, config.Debug)
}

func TestValidateCollectsAllProblems(t *testing.T) {
	config := DefaultConfig()
	config.Mode = "guesswork"
	config.ModuleAreaM2 = -1
	config.SelfConsumptionRate = 1.5

	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode must be")
	assert.Contains(t, err.Error(), "module_area_m2")
	assert.Contains(t, err.Error(), "self_consumption_rate")
}

func TestValidateDefaultCountWithinRange(t *testing.T) {
	config := DefaultConfig()
	config.DefaultPanelCount = 30

	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_panel_count")
}

func TestClampPanelCount(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 0, config.ClampPanelCount(-5))
	assert.Equal(t, 0, config.ClampPanelCount(0))
	assert.Equal(t, 13, config.ClampPanelCount(13))
	assert.Equal(t, 25, config.ClampPanelCount(25))
	assert.Equal(t, 25, config.ClampPanelCount(100))
}
