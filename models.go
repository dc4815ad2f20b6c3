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

// PanelTechnology describes one photovoltaic panel technology
type PanelTechnology struct {
	Name string `json:"name"`

	// NominalEfficiency is the rated conversion efficiency in percent
	NominalEfficiency float64 `json:"nominalEfficiency"`

	// PricePerWatt is the installed cost in euros per watt
	PricePerWatt float64 `json:"pricePerWatt"`

	// ReferenceYield is the measured annual production in kWh for an
	// installation of the reference capacity (8 kWc) under clear skies.
	// Only the calibrated calculation mode reads it.
	ReferenceYield float64 `json:"referenceYield"`
}

// WeatherCondition describes a categorical weather scenario
type WeatherCondition struct {
	Name string `json:"name"`

	// IrradiationFactor is a multiplicative derate in (0, 1] applied
	// to nominal production
	IrradiationFactor float64 `json:"irradiationFactor"`
}

// InstallationConfig holds the parameters of one simulation run.
// It is rebuilt from the current selections on every run and never stored.
type InstallationConfig struct {
	Technology PanelTechnology  `json:"technology"`
	Weather    WeatherCondition `json:"weather"`
	PanelCount int              `json:"panelCount"`

	// Per-panel and site constants, copied from Config so a result can
	// always be traced back to the parameters that produced it
	ModuleAreaM2        float64 `json:"moduleAreaM2"`
	RatedPowerKWp       float64 `json:"ratedPowerKWp"`       // kWc per panel
	SiteIrradiation     float64 `json:"siteIrradiation"`     // kWh/m²/year
	BuildingConsumption float64 `json:"buildingConsumption"` // kWh/year
}

// SimulationResult holds the derived figures for one configuration.
// It carries no timestamp: identical inputs must produce bit-identical
// results, so the report layer stamps its own generation time.
type SimulationResult struct {
	Technology        string  `json:"technology"`
	NominalEfficiency float64 `json:"nominalEfficiency"` // percent, from the catalog
	Weather           string  `json:"weather"`
	PanelCount        int     `json:"panelCount"`
	Mode              string  `json:"mode"`

	TotalAreaM2      float64 `json:"totalAreaM2"`
	InstalledKWp     float64 `json:"installedKWp"`
	AnnualProduction float64 `json:"annualProduction"` // kWh/year
	Efficiency       float64 `json:"efficiency"`       // kWh/m²/year, 0 when area is 0
	TotalCost        float64 `json:"totalCost"`        // euros

	// Annual energy balance against the building's consumption
	SelfConsumed float64 `json:"selfConsumed"` // kWh/year
	Exported     float64 `json:"exported"`     // kWh/year
	Imported     float64 `json:"imported"`     // kWh/year
}

// ComparisonEntry pairs a technology with its result at the current
// panel count and weather, for the comparison charts and tables
type ComparisonEntry struct {
	Technology PanelTechnology   `json:"technology"`
	Result     *SimulationResult `json:"result"`
}
