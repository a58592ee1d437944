package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/harnessworks/harnesscost/pkg/application/services/templates"
	"github.com/harnessworks/harnesscost/pkg/domain/entities"
	"github.com/harnessworks/harnesscost/pkg/domain/services"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/identity"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/repositories/csv"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/repositories/jsonfile"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/repositories/sqlite"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/repositories/xlsx"
)

// TemplateConfig holds configuration for the template command
type TemplateConfig struct {
	Action     string
	DBFile     string
	TemplateID string
	File       string
	Search     string
	Complexity string
	BOMFile    string
	WiresFile  string
	Verbose    bool
	Help       bool
}

// TemplateCommand manages the saved template library
type TemplateCommand struct {
	config TemplateConfig
	log    *zap.Logger
}

// NewTemplateCommand creates a new template command with the given configuration
func NewTemplateCommand(config TemplateConfig, log *zap.Logger) *TemplateCommand {
	if log == nil {
		log = zap.NewNop()
	}
	return &TemplateCommand{config: config, log: log}
}

// Execute runs the template command
func (c *TemplateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.DBFile == "" {
		return fmt.Errorf("validation error: -db is required")
	}

	db, err := sqlite.Open(c.config.DBFile)
	if err != nil {
		return fmt.Errorf("error opening template database: %w", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		return fmt.Errorf("error migrating template database: %w", err)
	}

	repo := sqlite.NewTemplateRepository(db)
	ids := identity.NewGenerator()
	clock := identity.SystemClock{}
	service := templates.NewService(repo, ids, clock)

	switch c.config.Action {
	case "list":
		return c.list(service)
	case "delete":
		return c.delete(service)
	case "export":
		return c.export(repo, ids, clock)
	case "import":
		return c.importTemplates(repo, ids, clock)
	case "suggest":
		return c.suggest(service)
	default:
		return fmt.Errorf("unsupported template action: %s", c.config.Action)
	}
}

func (c *TemplateCommand) list(service *templates.Service) error {
	found, err := service.Search(c.config.Search, entities.ComplexityLevel(c.config.Complexity))
	if err != nil {
		return fmt.Errorf("error listing templates: %w", err)
	}

	if len(found) == 0 {
		fmt.Println("No templates found.")
		return nil
	}

	printTemplateTable(found)
	return nil
}

func (c *TemplateCommand) delete(service *templates.Service) error {
	if c.config.TemplateID == "" {
		return fmt.Errorf("validation error: -template is required for delete")
	}
	if err := service.Delete(c.config.TemplateID); err != nil {
		return fmt.Errorf("error deleting template: %w", err)
	}
	fmt.Printf("Deleted template %s\n", c.config.TemplateID)
	return nil
}

func (c *TemplateCommand) export(repo *sqlite.TemplateRepository, ids templates.IDGenerator, clock templates.Clock) error {
	if c.config.File == "" {
		return fmt.Errorf("validation error: -file is required for export")
	}

	all, err := repo.GetAllTemplates()
	if err != nil {
		return fmt.Errorf("error reading templates: %w", err)
	}

	store := jsonfile.NewStore(ids, clock)
	if err := store.ExportFile(c.config.File, all); err != nil {
		return fmt.Errorf("error exporting templates: %w", err)
	}

	fmt.Printf("Exported %d templates to %s\n", len(all), c.config.File)
	return nil
}

func (c *TemplateCommand) importTemplates(repo *sqlite.TemplateRepository, ids templates.IDGenerator, clock templates.Clock) error {
	if c.config.File == "" {
		return fmt.Errorf("validation error: -file is required for import")
	}

	store := jsonfile.NewStore(ids, clock)
	imported, err := store.ImportFile(c.config.File)
	if err != nil {
		return fmt.Errorf("error importing templates: %w", err)
	}

	for _, t := range imported {
		if err := repo.SaveTemplate(t); err != nil {
			return fmt.Errorf("error saving imported template %s: %w", t.Name, err)
		}
	}

	fmt.Printf("Imported %d templates from %s\n", len(imported), c.config.File)
	return nil
}

func (c *TemplateCommand) suggest(service *templates.Service) error {
	if c.config.BOMFile == "" {
		return fmt.Errorf("validation error: -bom is required for suggest")
	}

	csvLoader := csv.NewLoader(c.log)
	xlsxLoader := xlsx.NewLoader(c.log)

	var bomItems []entities.BOMItem
	var err error
	if isWorkbook(c.config.BOMFile) {
		bomItems, err = xlsxLoader.LoadBOM(c.config.BOMFile)
	} else {
		bomItems, err = csvLoader.LoadBOM(c.config.BOMFile)
	}
	if err != nil {
		return fmt.Errorf("error loading BOM: %w", err)
	}

	var wireCutItems []entities.WireCutItem
	if c.config.WiresFile != "" {
		if isWorkbook(c.config.WiresFile) {
			wireCutItems, err = xlsxLoader.LoadWireCutList(c.config.WiresFile)
		} else {
			wireCutItems, err = csvLoader.LoadWireCutList(c.config.WiresFile)
		}
		if err != nil {
			return fmt.Errorf("error loading wire cut list: %w", err)
		}
	}

	specs := services.EstimateSpecs(bomItems, wireCutItems).
		ApplyTo(entities.HarnessSpecs{ComplexityLevel: entities.ComplexitySimple})

	suggested, err := service.Suggest(bomItems, specs)
	if err != nil {
		return fmt.Errorf("error suggesting templates: %w", err)
	}

	if len(suggested) == 0 {
		fmt.Println("No matching templates found.")
		return nil
	}

	fmt.Printf("🔍 Suggested templates for %s complexity, %d wires, %d connectors:\n\n",
		specs.ComplexityLevel, specs.TotalWires, specs.TotalConnectors)
	printTemplateTable(suggested)
	return nil
}

func printTemplateTable(list []*entities.HarnessTemplate) {
	fmt.Printf("%-40s %-25s %-13s %6s %6s %6s\n",
		"ID", "Name", "Complexity", "Ops", "Wires", "Conns")
	fmt.Printf("%-40s %-25s %-13s %6s %6s %6s\n",
		"----------------------------------------", "-------------------------",
		"-------------", "------", "------", "------")
	for _, t := range list {
		fmt.Printf("%-40s %-25s %-13s %6d %6d %6d\n",
			t.ID, t.Name, t.Complexity,
			len(t.Operations), t.EstimatedWireCount, t.EstimatedConnectorCount)
	}
}

// showHelp displays the help message
func (c *TemplateCommand) showHelp() {
	fmt.Printf(`Harness Cost Estimator CLI - Template library management

USAGE:
    harnesscost template <action> -db <file> [options]

ACTIONS:
    list        List saved templates, optionally filtered
    delete      Delete a template by id
    export      Export the template library to a JSON file
    import      Import templates from a JSON file (fresh ids assigned)
    suggest     Suggest templates matching a BOM snapshot

OPTIONS:
    -db <file>          Path to the template SQLite database (required)
    -template <id>      Template id (delete)
    -file <file>        JSON file path (export, import)
    -search <term>      Filter by name, description, or harness type (list)
    -complexity <lvl>   Filter by complexity tier (list)
    -bom <file>         BOM file for matching (suggest)
    -wires <file>       Wire cut list for matching (suggest)
    -verbose            Enable verbose output
    -help               Show this help message

EXAMPLES:
    # List all saved templates
    harnesscost template list -db templates.db

    # Find engine harness templates
    harnesscost template list -db templates.db -search engine -complexity Complex

    # Share a template library
    harnesscost template export -db templates.db -file library.json
    harnesscost template import -db other.db -file library.json

    # Suggest templates for a new harness
    harnesscost template suggest -db templates.db -bom data/bom.csv -wires data/wires.csv
`)
}
