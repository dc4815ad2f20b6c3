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
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	// Define command-line flags
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	technology := flag.String("technology", Monocrystalline,
		fmt.Sprintf("Panel technology (%s)", strings.Join(TechnologyNames(), ", ")))
	weather := flag.String("weather", Sunny,
		fmt.Sprintf("Weather condition (%s)", strings.Join(WeatherNames(), ", ")))
	panels := flag.Int("panels", -1, "Number of installed panels (default: from config)")
	mode := flag.String("mode", "", "Production calculation mode: direct or calibrated (overrides config)")
	outputPath := flag.String("output", "", "Output file for report (default: stdout)")
	htmlOutput := flag.Bool("html", false, "Generate HTML report with charts instead of Markdown")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("pvsim %s\n", GetVersion())
		os.Exit(0)
	}

	// Initialize logger
	logger := NewLogger(*debug)
	logger.Info("Starting pvsim", "version", GetVersion())

	// Load configuration
	config, err := LoadConfig(*configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Override with command-line flags
	if *mode != "" {
		config.Mode = *mode
	}
	if *debug {
		config.Debug = true
		// Recreate logger with debug enabled
		logger = NewLogger(true)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	// Resolve the panel count the way the slider would: config default
	// when unset, clamped into 0..max otherwise
	panelCount := config.DefaultPanelCount
	if *panels >= 0 {
		panelCount = config.ClampPanelCount(*panels)
	}

	// Create the calculation engine
	engine := NewEngine(config, logger.WithComponent("engine"))

	// Run the simulation for the selected configuration
	logger.LogSimulation(*technology, *weather, panelCount)
	result, err := engine.Compute(*technology, *weather, panelCount)
	if err != nil {
		logger.Error("Simulation failed", "error", err)
		os.Exit(1)
	}

	// Run the per-technology comparison at the same count and weather
	comparison, err := engine.CompareAll(*weather, panelCount)
	if err != nil {
		logger.Error("Comparison failed", "error", err)
		os.Exit(1)
	}

	// Generate report (HTML or Markdown)
	if *htmlOutput {
		logger.Info("Generating HTML report")
		chartGen := NewChartGenerator(config.ChartTheme, logger.WithComponent("charts"))
		htmlReporter := NewHTMLReporter(chartGen, logger)
		if err := htmlReporter.GenerateHTMLReport(result, comparison, *outputPath); err != nil {
			logger.Error("Failed to generate HTML report", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("Generating Markdown report")
		reporter := NewReporter(logger)
		if err := reporter.GenerateReport(result, comparison, *outputPath); err != nil {
			logger.Error("Failed to generate report", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("Simulation completed successfully")
}
