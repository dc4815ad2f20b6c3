// Copyright 2025 The pvsim Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math"
)

// Engine computes production, cost, and energy-balance figures for a
// photovoltaic installation. It holds no mutable state; every call derives
// a fresh result from its inputs and the static catalog.
type Engine struct {
	config *Config
	logger *Logger
}

// NewEngine creates a new calculation engine
func NewEngine(config *Config, logger *Logger) *Engine {
	return &Engine{
		config: config,
		logger: logger,
	}
}

// Compute derives the simulation result for one technology, weather
// condition, and panel count. Unknown names fail fast; a panel count of
// zero is a valid degenerate installation, a negative one is not.
func (e *Engine) Compute(technology, weather string, panelCount int) (*SimulationResult, error) {
	tech, err := LookupTechnology(technology)
	if err != nil {
		return nil, err
	}

	cond, err := LookupWeather(weather)
	if err != nil {
		return nil, err
	}

	if panelCount < 0 {
		return nil, &ValidationError{
			Field:   "panel_count",
			Value:   fmt.Sprintf("%d", panelCount),
			Message: "must not be negative",
		}
	}

	installation := e.newInstallation(tech, cond, panelCount)
	result := e.compute(installation)
	e.logger.LogSimulationStage("compute")

	return result, nil
}

// CompareAll computes the result for every known technology at the given
// weather and panel count, in catalog display order. Panel count, and
// therefore total area, is held fixed across technologies.
func (e *Engine) CompareAll(weather string, panelCount int) ([]ComparisonEntry, error) {
	cond, err := LookupWeather(weather)
	if err != nil {
		return nil, err
	}

	if panelCount < 0 {
		return nil, &ValidationError{
			Field:   "panel_count",
			Value:   fmt.Sprintf("%d", panelCount),
			Message: "must not be negative",
		}
	}

	entries := make([]ComparisonEntry, 0, len(technologies))
	for _, tech := range technologies {
		installation := e.newInstallation(tech, cond, panelCount)
		entries = append(entries, ComparisonEntry{
			Technology: tech,
			Result:     e.compute(installation),
		})
	}
	e.logger.LogSimulationStage("compare_all")

	return entries, nil
}

// newInstallation snapshots the current config constants into a per-run
// installation record
func (e *Engine) newInstallation(tech PanelTechnology, cond WeatherCondition, panelCount int) *InstallationConfig {
	return &InstallationConfig{
		Technology:          tech,
		Weather:             cond,
		PanelCount:          panelCount,
		ModuleAreaM2:        e.config.ModuleAreaM2,
		RatedPowerKWp:       e.config.RatedPowerKWp,
		SiteIrradiation:     e.config.SiteIrradiation,
		BuildingConsumption: e.config.BuildingConsumption,
	}
}

// compute applies the formula set to one installation
func (e *Engine) compute(in *InstallationConfig) *SimulationResult {
	totalArea := float64(in.PanelCount) * in.ModuleAreaM2
	installedKWp := float64(in.PanelCount) * in.RatedPowerKWp
	production := e.annualProduction(in, installedKWp)

	// Area-normalized efficiency is undefined for an empty roof
	efficiency := 0.0
	if totalArea > 0 {
		efficiency = production / totalArea
	}

	totalCost := installedKWp * 1000 * in.Technology.PricePerWatt

	// Self-consumption captures 90% of whichever of production or demand
	// is the binding constraint. Export and import can therefore both be
	// positive at once: local surplus leaves the building while the grid
	// still covers the residual 10% gap.
	selfConsumed := math.Min(in.BuildingConsumption, production) * e.config.SelfConsumptionRate
	exported := math.Max(0, production-selfConsumed)
	imported := math.Max(0, in.BuildingConsumption-selfConsumed)

	return &SimulationResult{
		Technology:        in.Technology.Name,
		NominalEfficiency: in.Technology.NominalEfficiency,
		Weather:           in.Weather.Name,
		PanelCount:        in.PanelCount,
		Mode:              e.config.Mode,

		TotalAreaM2:      totalArea,
		InstalledKWp:     installedKWp,
		AnnualProduction: production,
		Efficiency:       efficiency,
		TotalCost:        totalCost,

		SelfConsumed: selfConsumed,
		Exported:     exported,
		Imported:     imported,
	}
}

// annualProduction estimates the yearly output in kWh for the installed
// capacity under the selected weather
func (e *Engine) annualProduction(in *InstallationConfig, installedKWp float64) float64 {
	switch e.config.Mode {
	case ModeCalibrated:
		// Scale the technology's measured reference yield linearly with
		// installed power relative to the 8 kWc reference installation
		scale := installedKWp / e.config.ReferencePowerKWp
		return scale * in.Technology.ReferenceYield * in.Weather.IrradiationFactor
	default:
		return installedKWp * in.SiteIrradiation * in.Weather.IrradiationFactor
	}
}
