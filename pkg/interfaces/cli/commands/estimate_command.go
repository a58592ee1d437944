package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/harnessworks/harnesscost/pkg/application/services/catalog"
	"github.com/harnessworks/harnesscost/pkg/application/services/costing"
	"github.com/harnessworks/harnesscost/pkg/application/services/expansion"
	"github.com/harnessworks/harnesscost/pkg/application/services/templates"
	"github.com/harnessworks/harnesscost/pkg/domain/entities"
	"github.com/harnessworks/harnesscost/pkg/domain/services"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/identity"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/repositories/csv"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/repositories/sqlite"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/repositories/xlsx"
	"github.com/harnessworks/harnesscost/pkg/interfaces/cli/output"
)

// Config holds configuration for the estimate command
type Config struct {
	BOMFile      string
	WiresFile    string
	TemplateDB   string
	TemplateID   string
	Category     string
	Workstation  string
	AutoRepeat   bool
	AutoQuantity bool

	LaborRate        float64
	ShiftDuration    float64
	ProductionVolume int
	EfficiencyRate   float64
	OutputDir        string
	Format           string
	Verbose          bool
	Help             bool
}

// EstimateCommand handles the main estimation logic
type EstimateCommand struct {
	config Config
	log    *zap.Logger
}

// NewEstimateCommand creates a new estimate command with the given configuration
func NewEstimateCommand(config Config, log *zap.Logger) *EstimateCommand {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateCommand{config: config, log: log}
}

// Execute runs the estimate command
func (c *EstimateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		c.printHeader()
	}

	bomItems, wireCutItems, err := c.loadInputs()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  BOM Items: %d\n", len(bomItems))
		fmt.Printf("  Wire Cut Items: %d\n", len(wireCutItems))
		fmt.Println()
	}

	specs := services.EstimateSpecs(bomItems, wireCutItems).
		ApplyTo(entities.HarnessSpecs{ComplexityLevel: entities.ComplexitySimple})

	params := c.parameters()
	workstation := c.workstation()

	operations, err := c.resolveOperations(bomItems)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("🔄 Running cost estimation over %d operations...\n", len(operations))
	}

	startTime := time.Now()
	report, err := costing.NewService().Report(
		operations,
		specs,
		workstation,
		params,
		bomItems,
		wireCutItems,
	)
	estimationTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error running cost estimation: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Estimation completed in %v\n\n", estimationTime)
	}

	outputConfig := output.Config{
		Format:         c.config.Format,
		OutputDir:      c.config.OutputDir,
		Verbose:        c.config.Verbose,
		EstimationTime: estimationTime,
		InputFiles: map[string]string{
			"BOM":   c.config.BOMFile,
			"Wires": c.config.WiresFile,
		},
	}

	if err := output.Generate(report, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Estimation complete!")
	}

	return nil
}

// validateInputs validates the command configuration
func (c *EstimateCommand) validateInputs() error {
	if c.config.BOMFile == "" && c.config.WiresFile == "" {
		return fmt.Errorf("must specify -bom and/or -wires input files")
	}
	if c.config.TemplateID != "" && c.config.TemplateDB == "" {
		return fmt.Errorf("-template requires -db pointing at a template database")
	}
	for name, path := range map[string]string{"BOM": c.config.BOMFile, "Wires": c.config.WiresFile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("%s file not found: %s", name, path)
		}
	}
	return nil
}

// loadInputs loads the BOM and wire-cut snapshots, dispatching on extension
func (c *EstimateCommand) loadInputs() ([]entities.BOMItem, []entities.WireCutItem, error) {
	csvLoader := csv.NewLoader(c.log)
	xlsxLoader := xlsx.NewLoader(c.log)

	var bomItems []entities.BOMItem
	var wireCutItems []entities.WireCutItem
	var err error

	if c.config.BOMFile != "" {
		if isWorkbook(c.config.BOMFile) {
			bomItems, err = xlsxLoader.LoadBOM(c.config.BOMFile)
		} else {
			bomItems, err = csvLoader.LoadBOM(c.config.BOMFile)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error loading BOM: %w", err)
		}
	}

	if c.config.WiresFile != "" {
		if isWorkbook(c.config.WiresFile) {
			wireCutItems, err = xlsxLoader.LoadWireCutList(c.config.WiresFile)
		} else {
			wireCutItems, err = csvLoader.LoadWireCutList(c.config.WiresFile)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error loading wire cut list: %w", err)
		}
	}

	return bomItems, wireCutItems, nil
}

// resolveOperations picks the operation set for the run. A template id takes
// priority; otherwise the standard catalog is filtered and expanded against
// the BOM.
func (c *EstimateCommand) resolveOperations(bomItems []entities.BOMItem) ([]entities.Operation, error) {
	if c.config.TemplateID != "" {
		db, err := sqlite.Open(c.config.TemplateDB)
		if err != nil {
			return nil, fmt.Errorf("error opening template database: %w", err)
		}
		defer db.Close()

		if err := sqlite.Migrate(db); err != nil {
			return nil, fmt.Errorf("error migrating template database: %w", err)
		}

		service := templates.NewService(
			sqlite.NewTemplateRepository(db),
			identity.NewGenerator(),
			identity.SystemClock{},
		)
		ops, err := service.Apply(c.config.TemplateID, bomItems, c.config.AutoRepeat, c.config.AutoQuantity)
		if err != nil {
			return nil, fmt.Errorf("error applying template: %w", err)
		}
		return ops, nil
	}

	standard := catalog.FilterByBOMCategory(
		catalog.StandardOperations(),
		entities.Category(fallbackCategory(c.config.Category)),
	)
	return expansion.ExpandForBOM(standard, bomItems, c.config.AutoRepeat, c.config.AutoQuantity), nil
}

// parameters builds the parameter bag from defaults plus flag overrides
func (c *EstimateCommand) parameters() entities.ProjectParameters {
	params := entities.DefaultProjectParameters()
	if c.config.LaborRate > 0 {
		params.LaborRate = c.config.LaborRate
	}
	if c.config.ShiftDuration > 0 {
		params.ShiftDuration = c.config.ShiftDuration
	}
	if c.config.ProductionVolume > 0 {
		params.ProductionVolume = c.config.ProductionVolume
	}
	if c.config.EfficiencyRate > 0 {
		params.EfficiencyRate = c.config.EfficiencyRate
	}
	return params
}

func (c *EstimateCommand) workstation() entities.WorkstationConfig {
	t := entities.WorkstationType(c.config.Workstation)
	switch t {
	case entities.WorkstationManual, entities.WorkstationSemiAuto, entities.WorkstationAutomated:
	default:
		t = entities.WorkstationManual
	}
	return entities.WorkstationConfig{
		Type:                 t,
		EfficiencyMultiplier: entities.DefaultEfficiencyMultiplier(t),
	}
}

// printHeader prints the command header information
func (c *EstimateCommand) printHeader() {
	fmt.Printf("🚀 Harness Cost Estimator CLI\n")
	fmt.Printf("Input files:\n")
	if c.config.BOMFile != "" {
		fmt.Printf("  BOM: %s\n", c.config.BOMFile)
	}
	if c.config.WiresFile != "" {
		fmt.Printf("  Wires: %s\n", c.config.WiresFile)
	}
	if c.config.TemplateID != "" {
		fmt.Printf("Template: %s (%s)\n", c.config.TemplateID, c.config.TemplateDB)
	}
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

func isWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}

func fallbackCategory(category string) string {
	if category == "" {
		return string(entities.CategoryAll)
	}
	return category
}

// showHelp displays the help message
func (c *EstimateCommand) showHelp() {
	fmt.Printf(`Harness Cost Estimator CLI - Manufacturing cost and time estimation for wire harnesses

USAGE:
    harnesscost estimate -bom <file> [-wires <file>] [options]
    harnesscost estimate -bom <file> -db <file> -template <id>

OPTIONS:
    -bom <file>         Path to BOM file (CSV or XLSX)
    -wires <file>       Path to wire cut list file (CSV or XLSX)
    -db <file>          Path to the template SQLite database
    -template <id>      Apply a saved template by id
    -category <name>    Filter catalog operations by BOM category (default: All)
    -workstation <t>    Workstation type: Manual, Semi-Auto, Automated (default: Manual)
    -auto-repeat        Repeat category operations per matching BOM part
    -auto-quantity      Take operation quantities from BOM part quantities
    -labor-rate <n>     Labor rate in $/hour (default: 25)
    -shift <n>          Shift duration in minutes (default: 480)
    -volume <n>         Production volume in units (default: 100)
    -efficiency <n>     Worker efficiency rate in percent (default: 85)
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json (default: text)
    -verbose            Enable verbose output
    -help               Show this help message

CSV FILE FORMATS:

bom.csv:
    Part Number,Description,Quantity,Category
    CON-001,Deutsch DT 12-way connector,4,Connector
    WIR-018,FLRY-B 0.75mm wire,120,Wire

wires.csv:
    Wire ID,From Point,To Point,Length,Wire Gauge,Color,Quantity
    W001,X1,SPLICE-A,450,0.75,RD,2

EXAMPLES:
    # Estimate from a BOM and wire cut list
    harnesscost estimate -bom data/bom.csv -wires data/wires.csv -verbose

    # Expand operations per BOM part with BOM-driven quantities
    harnesscost estimate -bom data/bom.csv -auto-repeat -auto-quantity

    # Apply a saved template
    harnesscost estimate -bom data/bom.xlsx -db templates.db -template template-1234

    # Generate JSON output for a 500-unit run
    harnesscost estimate -bom data/bom.csv -volume 500 -format json -output results/
`)
}
