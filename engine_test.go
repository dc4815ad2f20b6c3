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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	return NewEngine(config, NewLogger(false))
}

func newCalibratedEngine(t *testing.T) *Engine {
	t.Helper()
	config := DefaultConfig()
	config.Mode = ModeCalibrated
	require.NoError(t, config.Validate())
	return NewEngine(config, NewLogger(false))
}

func TestComputeReferenceInstallation(t *testing.T) {
	// 20 monocrystalline panels under clear skies is the reference
	// configuration of the original study
	engine := newTestEngine(t)

	result, err := engine.Compute(Monocrystalline, Sunny, 20)
	require.NoError(t, err)

	assert.Equal(t, 20.0, result.NominalEfficiency)
	assert.InDelta(t, 34.0, result.TotalAreaM2, 1e-9)
	assert.InDelta(t, 8.0, result.InstalledKWp, 1e-9)
	assert.InDelta(t, 14592.0, result.AnnualProduction, 1e-9)
	assert.InDelta(t, 14592.0/34.0, result.Efficiency, 1e-9)
	assert.InDelta(t, 9600.0, result.TotalCost, 1e-9)

	assert.InDelta(t, 7434.0, result.SelfConsumed, 1e-9)
	assert.InDelta(t, 7158.0, result.Exported, 1e-9)
	assert.InDelta(t, 826.0, result.Imported, 1e-9)
}

func TestComputeRainyWeather(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Compute(Monocrystalline, Rainy, 20)
	require.NoError(t, err)

	// Production drops below demand, so self-consumption binds on
	// production and both export and import stay positive
	assert.InDelta(t, 8025.6, result.AnnualProduction, 1e-9)
	assert.InDelta(t, 7223.04, result.SelfConsumed, 1e-9)
	assert.InDelta(t, 802.56, result.Exported, 1e-9)
	assert.InDelta(t, 1036.96, result.Imported, 1e-9)
}

func TestComputeZeroPanels(t *testing.T) {
	engine := newTestEngine(t)

	for _, tech := range TechnologyNames() {
		for _, weather := range WeatherNames() {
			result, err := engine.Compute(tech, weather, 0)
			require.NoError(t, err)

			assert.Zero(t, result.TotalAreaM2)
			assert.Zero(t, result.InstalledKWp)
			assert.Zero(t, result.AnnualProduction)
			assert.Zero(t, result.Efficiency)
			assert.Zero(t, result.TotalCost)
			assert.Zero(t, result.SelfConsumed)
			assert.Zero(t, result.Exported)
			assert.InDelta(t, engine.config.BuildingConsumption, result.Imported, 1e-9)
		}
	}
}

func TestProductionMonotonicInPanelCount(t *testing.T) {
	engine := newTestEngine(t)

	previous := -1.0
	for count := 0; count <= 25; count++ {
		result, err := engine.Compute(Polycrystalline, Cloudy, count)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.AnnualProduction, previous,
			"production must not decrease when adding panels (count=%d)", count)
		previous = result.AnnualProduction
	}
}

func TestProductionOrderedByWeather(t *testing.T) {
	engine := newTestEngine(t)

	for _, tech := range TechnologyNames() {
		sunny, err := engine.Compute(tech, Sunny, 10)
		require.NoError(t, err)
		cloudy, err := engine.Compute(tech, Cloudy, 10)
		require.NoError(t, err)
		rainy, err := engine.Compute(tech, Rainy, 10)
		require.NoError(t, err)

		assert.Greater(t, sunny.AnnualProduction, cloudy.AnnualProduction, tech)
		assert.Greater(t, cloudy.AnnualProduction, rainy.AnnualProduction, tech)
	}
}

func TestEnergyBalanceDecomposition(t *testing.T) {
	engine := newTestEngine(t)
	consumption := engine.config.BuildingConsumption

	for _, weather := range WeatherNames() {
		for count := 0; count <= 25; count += 5 {
			result, err := engine.Compute(Bifacial, weather, count)
			require.NoError(t, err)

			expectedSelf := math.Min(consumption, result.AnnualProduction) * 0.9
			assert.Equal(t, expectedSelf, result.SelfConsumed)
			assert.Equal(t, math.Max(0, result.AnnualProduction-expectedSelf), result.Exported)
			assert.Equal(t, math.Max(0, consumption-expectedSelf), result.Imported)

			assert.GreaterOrEqual(t, result.SelfConsumed, 0.0)
			assert.GreaterOrEqual(t, result.Exported, 0.0)
			assert.GreaterOrEqual(t, result.Imported, 0.0)
		}
	}
}

func TestEfficiencyDefinition(t *testing.T) {
	engine := newTestEngine(t)

	zero, err := engine.Compute(Amorphous, Sunny, 0)
	require.NoError(t, err)
	assert.Zero(t, zero.Efficiency)

	nonZero, err := engine.Compute(Amorphous, Sunny, 12)
	require.NoError(t, err)
	assert.Equal(t, nonZero.AnnualProduction/nonZero.TotalAreaM2, nonZero.Efficiency)
}

func TestComputeDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	first, err := engine.Compute(Heterojunction, Cloudy, 17)
	require.NoError(t, err)
	second, err := engine.Compute(Heterojunction, Cloudy, 17)
	require.NoError(t, err)

	// The whole record must be bit-identical across runs; results carry
	// no timestamp or other per-call state
	assert.Equal(t, first, second)
}

func TestComputeUnknownTechnology(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Compute("Perovskite", Sunny, 10)
	require.Error(t, err)

	var unknownTech *UnknownTechnologyError
	require.ErrorAs(t, err, &unknownTech)
	assert.Equal(t, "Perovskite", unknownTech.Name)
	assert.Equal(t, TechnologyNames(), unknownTech.Known)
}

func TestComputeUnknownWeather(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Compute(Monocrystalline, "Snowy", 10)
	require.Error(t, err)

	var unknownWeather *UnknownWeatherError
	require.ErrorAs(t, err, &unknownWeather)
	assert.Equal(t, "Snowy", unknownWeather.Name)
}

func TestComputeNegativePanelCount(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Compute(Monocrystalline, Sunny, -1)
	require.Error(t, err)

	var validation *ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestCalibratedModeAtReferencePower(t *testing.T) {
	// 20 panels install exactly the 8 kWc reference capacity, so the
	// calibrated estimate must equal the monocrystalline reference yield
	engine := newCalibratedEngine(t)

	result, err := engine.Compute(Monocrystalline, Sunny, 20)
	require.NoError(t, err)
	assert.InDelta(t, 14592.0, result.AnnualProduction, 1e-9)
	assert.Equal(t, ModeCalibrated, result.Mode)
}

func TestCalibratedModeScalesLinearly(t *testing.T) {
	engine := newCalibratedEngine(t)

	half, err := engine.Compute(Bifacial, Sunny, 10)
	require.NoError(t, err)
	full, err := engine.Compute(Bifacial, Sunny, 20)
	require.NoError(t, err)

	assert.InDelta(t, full.AnnualProduction/2, half.AnnualProduction, 1e-9)

	// Weather derates the calibrated estimate the same way it derates
	// the direct one
	rainy, err := engine.Compute(Bifacial, Rainy, 20)
	require.NoError(t, err)
	assert.InDelta(t, full.AnnualProduction*0.55, rainy.AnnualProduction, 1e-9)
}

func TestCompareAll(t *testing.T) {
	engine := newTestEngine(t)

	entries, err := engine.CompareAll(Sunny, 20)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Technology.Name)

		// Count, and therefore area and installed power, are held fixed
		// across technologies
		assert.Equal(t, 20, entry.Result.PanelCount)
		assert.InDelta(t, 34.0, entry.Result.TotalAreaM2, 1e-9)
		assert.InDelta(t, 8.0, entry.Result.InstalledKWp, 1e-9)

		// Cost varies with the technology's price per watt
		assert.InDelta(t, 8000*entry.Technology.PricePerWatt, entry.Result.TotalCost, 1e-9)
	}
	assert.Equal(t, TechnologyNames(), names)
}

func TestCompareAllUnknownWeather(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.CompareAll("Foggy", 20)
	var unknownWeather *UnknownWeatherError
	require.ErrorAs(t, err, &unknownWeather)
}

func TestCompareAllNegativePanelCount(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.CompareAll(Sunny, -3)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}
