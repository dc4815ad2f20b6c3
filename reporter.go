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
	"io"
	"math"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Reporter generates markdown reports from simulation results
type Reporter struct {
	logger *Logger
}

// NewReporter creates a new report generator
func NewReporter(logger *Logger) *Reporter {
	return &Reporter{
		logger: logger,
	}
}

// GenerateReport creates a markdown report for one simulation run and its
// per-technology comparison
func (r *Reporter) GenerateReport(result *SimulationResult, comparison []ComparisonEntry, outputPath string) error {
	r.logger.Info("Generating report")

	var writer io.Writer
	if outputPath == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputPath)
		if err != nil {
			return &ReportError{Stage: "create_file", Err: err}
		}
		defer file.Close()
		writer = file
	}

	r.writeHeader(writer, result)
	r.writeSummary(writer, result)
	r.writeEnergyBalance(writer, result)
	r.writeComparison(writer, comparison)
	r.writeFooter(writer)

	if outputPath != "" {
		r.logger.LogReportWritten("markdown", outputPath)
	}

	return nil
}

// writeHeader writes the report header
func (r *Reporter) writeHeader(w io.Writer, result *SimulationResult) {
	fmt.Fprintf(w, "# ☀️ Residential Photovoltaic Simulation\n\n")
	fmt.Fprintf(w, "**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "**Configuration:** %s · %s · %d panels\n\n",
		result.Technology,
		result.Weather,
		result.PanelCount,
	)
	fmt.Fprintf(w, "**pvsim version:** %s\n\n", GetVersion())
	fmt.Fprintf(w, "---\n\n")
}

// writeSummary writes the headline simulation metrics
func (r *Reporter) writeSummary(w io.Writer, result *SimulationResult) {
	fmt.Fprintf(w, "## 📊 Simulation Results\n\n")

	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| ⚡ Estimated production | %s/year |\n", FormatEnergy(result.AnnualProduction))
	fmt.Fprintf(w, "| 🔋 Installed power | %s |\n", FormatPower(result.InstalledKWp))
	fmt.Fprintf(w, "| 📐 Total panel area | %.1f m² |\n", result.TotalAreaM2)
	fmt.Fprintf(w, "| 🎯 Real efficiency | %s |\n", FormatEfficiency(result.Efficiency))
	fmt.Fprintf(w, "| 💰 Total cost | %s |\n", FormatCurrency(result.TotalCost))
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "📌 **Nominal efficiency of the _%s_ panel: `%s`**\n\n",
		result.Technology,
		FormatPercentage(result.NominalEfficiency),
	)
}

// writeEnergyBalance writes the self-consumption split
func (r *Reporter) writeEnergyBalance(w io.Writer, result *SimulationResult) {
	fmt.Fprintf(w, "## ⚡ Annual Energy Balance\n\n")

	fmt.Fprintf(w, "| Flow | Energy |\n")
	fmt.Fprintf(w, "|------|--------|\n")
	fmt.Fprintf(w, "| 🟢 Self-consumed | %s |\n", FormatEnergy(result.SelfConsumed))
	fmt.Fprintf(w, "| 🟠 Exported to grid | %s |\n", FormatEnergy(result.Exported))
	fmt.Fprintf(w, "| 🔴 Imported from grid | %s |\n", FormatEnergy(result.Imported))
	fmt.Fprintf(w, "\n")
}

// writeComparison writes the per-technology comparison table
func (r *Reporter) writeComparison(w io.Writer, comparison []ComparisonEntry) {
	if len(comparison) == 0 {
		return
	}

	fmt.Fprintf(w, "## 📊 Panel Technology Comparison\n\n")
	fmt.Fprintf(w, "| Technology | Nominal efficiency | Production | Efficiency | Cost |\n")
	fmt.Fprintf(w, "|------------|-------------------:|-----------:|-----------:|-----:|\n")
	for _, entry := range comparison {
		fmt.Fprintf(w, "| %s | %.1f%% | %s | %s | %s |\n",
			entry.Technology.Name,
			entry.Technology.NominalEfficiency,
			FormatEnergy(entry.Result.AnnualProduction),
			FormatEfficiency(entry.Result.Efficiency),
			FormatCurrency(entry.Result.TotalCost),
		)
	}
	fmt.Fprintf(w, "\n")
}

// writeFooter writes the report footer
func (r *Reporter) writeFooter(w io.Writer) {
	fmt.Fprintf(w, "---\n\n")
	fmt.Fprintf(w, "*Simulation based on Marseille irradiation data and PVsyst reference yields.*\n")
}

// FormatCurrency formats a value as thousands-separated euros.
// Rounding before formatting keeps values like 8000*1.2 from truncating
// to 9,599 instead of 9,600.
func FormatCurrency(value float64) string {
	return fmt.Sprintf("%s €", humanize.Commaf(math.Round(value)))
}

// FormatEnergy formats an energy value as integer kWh
func FormatEnergy(value float64) string {
	return fmt.Sprintf("%s kWh", humanize.Commaf(math.Round(value)))
}

// FormatPower formats an installed capacity in kWc
func FormatPower(value float64) string {
	return fmt.Sprintf("%.2f kWc", value)
}

// FormatEfficiency formats an area-normalized yield
func FormatEfficiency(value float64) string {
	return fmt.Sprintf("%.1f kWh/m²/year", value)
}

// FormatPercentage formats a value as a percentage
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
