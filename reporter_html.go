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
	"html"
	"io"
	"os"
	"time"
)

// HTMLReporter generates HTML reports from simulation results
type HTMLReporter struct {
	charts *ChartGenerator
	logger *Logger
}

// NewHTMLReporter creates a new HTML report generator
func NewHTMLReporter(charts *ChartGenerator, logger *Logger) *HTMLReporter {
	return &HTMLReporter{
		charts: charts,
		logger: logger,
	}
}

// GenerateHTMLReport generates an HTML report with embedded charts
func (r *HTMLReporter) GenerateHTMLReport(result *SimulationResult, comparison []ComparisonEntry, outputPath string) error {
	r.logger.Info("Generating HTML report")

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

	r.writeHTMLHeader(writer, result)
	r.writeHTMLSummary(writer, result)
	if err := r.writeHTMLBalance(writer, result); err != nil {
		return err
	}
	if err := r.writeHTMLComparison(writer, comparison); err != nil {
		return err
	}
	r.writeHTMLFooter(writer)

	if outputPath != "" {
		r.logger.LogReportWritten("html", outputPath)
	}

	return nil
}

func (r *HTMLReporter) writeHTMLHeader(w io.Writer, result *SimulationResult) {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Residential Photovoltaic Simulation</title>
    <style>
        :root {
            --primary-color: #FFB800;
            --secondary-color: #00C896;
            --danger-color: #FF006E;
            --bg-color: #0A0F1E;
            --card-bg: #1A2332;
            --text-color: #E8EAF6;
            --text-muted: #9FA8DA;
            --border-color: #2A3550;
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            background: var(--bg-color);
            color: var(--text-color);
            line-height: 1.6;
            padding: 20px;
        }

        .container {
            max-width: 1000px;
            margin: 0 auto;
        }

        header {
            background: linear-gradient(135deg, var(--primary-color), var(--secondary-color));
            padding: 40px;
            border-radius: 16px;
            margin-bottom: 30px;
            color: #0A0F1E;
        }

        h1 {
            font-size: 2.2em;
            margin-bottom: 10px;
            font-weight: 700;
        }

        .subtitle {
            font-size: 1.1em;
        }

        .card {
            background: var(--card-bg);
            border-radius: 12px;
            padding: 30px;
            margin-bottom: 30px;
            border: 1px solid var(--border-color);
        }

        .card h2 {
            margin-bottom: 20px;
        }

        .metrics {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
        }

        .metric .label {
            color: var(--text-muted);
            font-size: 0.9em;
            text-transform: uppercase;
        }

        .metric .value {
            font-size: 1.6em;
            font-weight: 700;
        }

        .chart img {
            width: 100%%;
            border-radius: 8px;
        }

        footer {
            color: var(--text-muted);
            text-align: center;
            padding: 20px;
        }
    </style>
</head>
<body>
<div class="container">
<header>
    <h1>☀️ Residential Photovoltaic Simulation</h1>
    <div class="subtitle">%s · %s · %d panels · generated %s by pvsim %s</div>
</header>
`,
		html.EscapeString(result.Technology),
		html.EscapeString(result.Weather),
		result.PanelCount,
		time.Now().Format("2006-01-02 15:04"),
		html.EscapeString(GetVersion()),
	)
}

func (r *HTMLReporter) writeHTMLSummary(w io.Writer, result *SimulationResult) {
	fmt.Fprintf(w, `<div class="card">
    <h2>📊 Simulation Results</h2>
    <div class="metrics">
`)
	r.writeMetric(w, "Estimated production", FormatEnergy(result.AnnualProduction)+"/year")
	r.writeMetric(w, "Installed power", FormatPower(result.InstalledKWp))
	r.writeMetric(w, "Real efficiency", FormatEfficiency(result.Efficiency))
	r.writeMetric(w, "Total cost", FormatCurrency(result.TotalCost))
	r.writeMetric(w, "Nominal panel efficiency", FormatPercentage(result.NominalEfficiency))
	fmt.Fprintf(w, `    </div>
</div>
`)
}

func (r *HTMLReporter) writeMetric(w io.Writer, label, value string) {
	fmt.Fprintf(w, `        <div class="metric">
            <div class="label">%s</div>
            <div class="value">%s</div>
        </div>
`, html.EscapeString(label), html.EscapeString(value))
}

func (r *HTMLReporter) writeHTMLBalance(w io.Writer, result *SimulationResult) error {
	chart, err := r.charts.GenerateBalanceChart(result)
	if err != nil {
		return &ReportError{Stage: "balance_chart", Err: err}
	}

	fmt.Fprintf(w, `<div class="card">
    <h2>⚡ Annual Energy Balance</h2>
    <div class="chart"><img src="data:image/png;base64,%s" alt="Annual energy balance"></div>
</div>
`, chart)
	return nil
}

func (r *HTMLReporter) writeHTMLComparison(w io.Writer, comparison []ComparisonEntry) error {
	type section struct {
		title  string
		render func([]ComparisonEntry) (string, error)
	}

	sections := []section{
		{"📈 Production by Technology", r.charts.GenerateProductionChart},
		{"🎯 Efficiency by Technology", r.charts.GenerateEfficiencyChart},
		{"💰 Cost by Technology", r.charts.GenerateCostChart},
	}

	for _, s := range sections {
		chart, err := s.render(comparison)
		if err != nil {
			return &ReportError{Stage: "comparison_chart", Err: err}
		}
		fmt.Fprintf(w, `<div class="card">
    <h2>%s</h2>
    <div class="chart"><img src="data:image/png;base64,%s" alt="%s"></div>
</div>
`, s.title, chart, html.EscapeString(s.title))
	}
	return nil
}

func (r *HTMLReporter) writeHTMLFooter(w io.Writer) {
	fmt.Fprintf(w, `<footer>
    Simulation based on Marseille irradiation data and PVsyst reference yields.
</footer>
</div>
</body>
</html>
`)
}
