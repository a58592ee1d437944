package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/harnessworks/harnesscost/pkg/interfaces/cli/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "estimate":
		err = runEstimate(os.Args[2:])
	case "template":
		err = runTemplate(os.Args[2:])
	case "help", "-help", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runEstimate(args []string) error {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	var (
		bomFile      = fs.String("bom", "", "Path to BOM file (CSV or XLSX)")
		wiresFile    = fs.String("wires", "", "Path to wire cut list file (CSV or XLSX)")
		dbFile       = fs.String("db", "", "Path to the template SQLite database")
		templateID   = fs.String("template", "", "Apply a saved template by id")
		category     = fs.String("category", "", "Filter catalog operations by BOM category")
		workstation  = fs.String("workstation", "Manual", "Workstation type: Manual, Semi-Auto, Automated")
		autoRepeat   = fs.Bool("auto-repeat", false, "Repeat category operations per matching BOM part")
		autoQuantity = fs.Bool("auto-quantity", false, "Take operation quantities from BOM part quantities")
		laborRate    = fs.Float64("labor-rate", 0, "Labor rate in $/hour")
		shift        = fs.Float64("shift", 0, "Shift duration in minutes")
		volume       = fs.Int("volume", 0, "Production volume in units")
		efficiency   = fs.Float64("efficiency", 0, "Worker efficiency rate in percent")
		outputDir    = fs.String("output", "", "Output directory for results (optional)")
		format       = fs.String("format", "text", "Output format: text, json")
		verbose      = fs.Bool("verbose", false, "Enable verbose output")
		help         = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	config := commands.Config{
		BOMFile:          *bomFile,
		WiresFile:        *wiresFile,
		TemplateDB:       *dbFile,
		TemplateID:       *templateID,
		Category:         *category,
		Workstation:      *workstation,
		AutoRepeat:       *autoRepeat,
		AutoQuantity:     *autoQuantity,
		LaborRate:        *laborRate,
		ShiftDuration:    *shift,
		ProductionVolume: *volume,
		EfficiencyRate:   *efficiency,
		OutputDir:        *outputDir,
		Format:           *format,
		Verbose:          *verbose,
		Help:             *help,
	}

	return commands.NewEstimateCommand(config, log).Execute(context.Background())
}

func runTemplate(args []string) error {
	action := ""
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		action = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("template", flag.ExitOnError)
	var (
		dbFile     = fs.String("db", "", "Path to the template SQLite database")
		templateID = fs.String("template", "", "Template id")
		file       = fs.String("file", "", "JSON file path for export/import")
		search     = fs.String("search", "", "Filter by name, description, or harness type")
		complexity = fs.String("complexity", "", "Filter by complexity tier")
		bomFile    = fs.String("bom", "", "BOM file for template matching")
		wiresFile  = fs.String("wires", "", "Wire cut list for template matching")
		verbose    = fs.Bool("verbose", false, "Enable verbose output")
		help       = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	config := commands.TemplateConfig{
		Action:     action,
		DBFile:     *dbFile,
		TemplateID: *templateID,
		File:       *file,
		Search:     *search,
		Complexity: *complexity,
		BOMFile:    *bomFile,
		WiresFile:  *wiresFile,
		Verbose:    *verbose,
		Help:       *help || action == "",
	}

	return commands.NewTemplateCommand(config, log).Execute(context.Background())
}

// newLogger builds a development logger in verbose mode and a quiet
// production logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
		return log, nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

func printUsage() {
	fmt.Printf(`Harness Cost Estimator CLI

USAGE:
    harnesscost <command> [options]

COMMANDS:
    estimate    Run a cost and time estimation over a BOM and wire cut list
    template    Manage the saved template library
    help        Show this help message

Run 'harnesscost <command> -help' for command-specific options.
`)
}
