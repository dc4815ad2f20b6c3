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
	"encoding/base64"
	"fmt"

	charts "github.com/vicanso/go-charts/v2"
)

// ChartGenerator handles chart generation
type ChartGenerator struct {
	theme  string
	logger *Logger
}

// NewChartGenerator creates a new chart generator
func NewChartGenerator(theme string, logger *Logger) *ChartGenerator {
	if theme == "" {
		theme = "dark" // Match our HTML report dark theme
	}
	return &ChartGenerator{
		theme:  theme,
		logger: logger,
	}
}

// GenerateBalanceChart creates a bar chart splitting the year's energy into
// self-consumed, exported, and imported
func (cg *ChartGenerator) GenerateBalanceChart(result *SimulationResult) (string, error) {
	values := [][]float64{
		{result.SelfConsumed, result.Exported, result.Imported},
	}
	labels := []string{"Self-consumed", "Exported to grid", "Imported from grid"}

	return cg.renderBarChart("balance", "Annual Energy Balance (kWh)", labels, values)
}

// GenerateProductionChart creates a per-technology production comparison
func (cg *ChartGenerator) GenerateProductionChart(entries []ComparisonEntry) (string, error) {
	values, labels := comparisonSeries(entries, func(r *SimulationResult) float64 {
		return r.AnnualProduction
	})
	return cg.renderBarChart("production", "Annual Production (kWh/year)", labels, values)
}

// GenerateEfficiencyChart creates a per-technology efficiency comparison
func (cg *ChartGenerator) GenerateEfficiencyChart(entries []ComparisonEntry) (string, error) {
	values, labels := comparisonSeries(entries, func(r *SimulationResult) float64 {
		return r.Efficiency
	})
	return cg.renderBarChart("efficiency", "Energy Efficiency (kWh/m²/year)", labels, values)
}

// GenerateCostChart creates a per-technology installation cost comparison
func (cg *ChartGenerator) GenerateCostChart(entries []ComparisonEntry) (string, error) {
	values, labels := comparisonSeries(entries, func(r *SimulationResult) float64 {
		return r.TotalCost
	})
	return cg.renderBarChart("cost", "Installation Cost (EUR)", labels, values)
}

// comparisonSeries extracts one metric per technology, keeping catalog order
func comparisonSeries(entries []ComparisonEntry, metric func(*SimulationResult) float64) ([][]float64, []string) {
	row := make([]float64, 0, len(entries))
	labels := make([]string, 0, len(entries))
	for _, entry := range entries {
		row = append(row, metric(entry.Result))
		labels = append(labels, entry.Technology.Name)
	}
	return [][]float64{row}, labels
}

// renderBarChart renders a single-series bar chart and returns it as
// base64 PNG for embedding in HTML
func (cg *ChartGenerator) renderBarChart(name, title string, labels []string, values [][]float64) (string, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return "", fmt.Errorf("no values for %s chart", name)
	}

	p, err := charts.BarRender(
		values,
		charts.TitleTextOptionFunc(title),
		charts.XAxisDataOptionFunc(labels),
		charts.ThemeOptionFunc(cg.theme),
		charts.WidthOptionFunc(900),
		charts.HeightOptionFunc(400),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %s chart: %w", name, err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s chart bytes: %w", name, err)
	}

	cg.logger.LogChartRendered(name, len(buf))
	return base64.StdEncoding.EncodeToString(buf), nil
}
