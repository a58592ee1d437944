package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/harnessworks/harnesscost/pkg/application/dto"
	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format         string
	OutputDir      string
	Verbose        bool
	EstimationTime time.Duration
	InputFiles     map[string]string
}

// Generate creates output in the specified format
func Generate(report *dto.CostReport, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *dto.CostReport, config Config) error {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Harness Cost Estimate\n")
	fmt.Fprintf(&b, "========================\n\n")

	fmt.Fprintf(&b, "Complexity: %s (multiplier %.3f)\n", report.ComplexityLevel, report.ComplexityMultiplier)
	fmt.Fprintf(&b, "Workstation: %s\n", report.Workstation)
	fmt.Fprintf(&b, "Operations: %d\n", report.Metrics.OperationsCount)
	if config.EstimationTime > 0 {
		fmt.Fprintf(&b, "Estimation Time: %v\n", config.EstimationTime)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "⏱  Time Breakdown (minutes):\n")
	fmt.Fprintf(&b, "%-25s %12s\n", "Stage", "Minutes")
	fmt.Fprintf(&b, "%-25s %12s\n", "-------------------------", "------------")
	fmt.Fprintf(&b, "%-25s %12.2f\n", "Setup", report.Time.SetupMinutes)
	fmt.Fprintf(&b, "%-25s %12.2f\n", "Base Labor", report.Time.BaseLaborMinutes)
	fmt.Fprintf(&b, "%-25s %12.2f\n", "Effective Labor", report.Time.EffectiveLaborMinutes)
	fmt.Fprintf(&b, "%-25s %12.2f\n", "Quality Inspection", report.Time.InspectionMinutes)
	fmt.Fprintf(&b, "%-25s %12.2f\n", "Material Handling", report.Time.HandlingMinutes)
	fmt.Fprintf(&b, "%-25s %12.2f\n", "Total", report.Time.TotalMinutes)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "💰 Cost Breakdown:\n")
	fmt.Fprintf(&b, "%-25s %12s\n", "Item", "Amount")
	fmt.Fprintf(&b, "%-25s %12s\n", "-------------------------", "------------")
	fmt.Fprintf(&b, "%-25s %12s\n", "Labor Cost", report.Cost.LaborCost.StringFixed(2))
	fmt.Fprintf(&b, "%-25s %12s\n", "Setup Cost", report.Cost.SetupCost.StringFixed(2))
	fmt.Fprintf(&b, "%-25s %12s\n", "Total Cost", report.Cost.TotalCost.StringFixed(2))
	fmt.Fprintf(&b, "%-25s %12s\n", "Cost Per Unit", report.Cost.CostPerUnit.StringFixed(2))
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "🏭 Production Metrics:\n")
	fmt.Fprintf(&b, "  Units Per Shift: %d\n", report.Metrics.UnitsPerShift)
	fmt.Fprintf(&b, "  Production Volume: %d\n", report.Metrics.ProductionVolume)
	fmt.Fprintf(&b, "  Efficiency Rate: %.1f%%\n", report.Metrics.EfficiencyRate)
	fmt.Fprintln(&b)

	if report.Wire.TotalWires > 0 {
		fmt.Fprintf(&b, "🔌 Wire Analysis:\n")
		fmt.Fprintf(&b, "  Total Wires: %d\n", report.Wire.TotalWires)
		fmt.Fprintf(&b, "  Total Length: %.1f mm\n", report.Wire.TotalLength)
		fmt.Fprintf(&b, "  Average Length: %.1f mm\n", report.Wire.AverageLength)
		fmt.Fprintf(&b, "  Unique Gauges: %d\n", report.Wire.UniqueGauges)
		fmt.Fprintln(&b)
	}

	if report.BOM.UniqueParts > 0 {
		fmt.Fprintf(&b, "📦 BOM Analysis:\n")
		fmt.Fprintf(&b, "  Total Items: %d\n", report.BOM.TotalItems)
		fmt.Fprintf(&b, "  Unique Parts: %d\n", report.BOM.UniqueParts)

		categories := make([]string, 0, len(report.BOM.Categories))
		for c := range report.BOM.Categories {
			categories = append(categories, string(c))
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Fprintf(&b, "  %-15s %d\n", c+":", report.BOM.Categories[entities.Category(c)])
		}
		fmt.Fprintln(&b)
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(&b, "⚠️  Warnings:\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
		fmt.Fprintln(&b)
	}

	fmt.Print(b.String())

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "estimate.txt")
		if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("failed to write text file: %w", err)
		}
		if config.Verbose {
			fmt.Printf("💾 Results saved to: %s\n", filename)
		}
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *dto.CostReport, config Config) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "estimate.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", filename)
	}

	return nil
}
