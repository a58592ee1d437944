package templates

import (
	"fmt"
	"strings"
	"time"

	"github.com/harnessworks/harnesscost/pkg/application/services/expansion"
	"github.com/harnessworks/harnesscost/pkg/domain/entities"
	"github.com/harnessworks/harnesscost/pkg/domain/repositories"
	"github.com/harnessworks/harnesscost/pkg/domain/services"
)

// IDGenerator assigns boundary identities. The core never generates ids
// itself so the computation stays deterministic and testable.
type IDGenerator interface {
	NewID(prefix string) string
}

// Clock abstracts wall-clock time for template timestamps
type Clock interface {
	Now() time.Time
}

// Service manages the saved template library and the operation lifecycle
// around it: save, edit, delete, suggest, and apply with BOM-driven
// expansion.
type Service struct {
	repo  repositories.TemplateRepository
	ids   IDGenerator
	clock Clock
}

// NewService creates a template service
func NewService(repo repositories.TemplateRepository, ids IDGenerator, clock Clock) *Service {
	return &Service{repo: repo, ids: ids, clock: clock}
}

// Save captures the current operations as a reusable template. Operation ids
// are stripped; the BOM categories, complexity tier, and estimated counts
// present at save time are recorded for later matching.
func (s *Service) Save(
	name, description, harnessType string,
	operations []entities.Operation,
	bomItems []entities.BOMItem,
	specs entities.HarnessSpecs,
) (*entities.HarnessTemplate, error) {
	if len(operations) == 0 {
		return nil, fmt.Errorf("cannot save template without operations")
	}

	stripped := make([]entities.Operation, 0, len(operations))
	for _, op := range operations {
		clone := op
		clone.ID = ""
		stripped = append(stripped, clone)
	}

	template, err := entities.NewHarnessTemplate(
		s.ids.NewID("template"),
		name,
		description,
		harnessType,
		stripped,
		uniqueCategories(bomItems),
		specs.ComplexityLevel,
		specs.TotalWires,
		specs.TotalConnectors,
		s.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveTemplate(template); err != nil {
		return nil, fmt.Errorf("save template: %w", err)
	}
	return template, nil
}

// Update edits a template's name, description, and harness type. Operations
// and matching metadata are immutable after save.
func (s *Service) Update(id, name, description, harnessType string) (*entities.HarnessTemplate, error) {
	template, err := s.repo.GetTemplate(id)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("template name cannot be empty")
	}
	template.Name = name
	template.Description = description
	template.HarnessType = harnessType

	if err := s.repo.SaveTemplate(template); err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return template, nil
}

// Delete removes a template from the library
func (s *Service) Delete(id string) error {
	return s.repo.DeleteTemplate(id)
}

// Apply expands a template's operations against the BOM snapshot, bumps the
// template's last-used timestamp, and returns placeable operations with
// freshly assigned ids.
func (s *Service) Apply(
	id string,
	bomItems []entities.BOMItem,
	autoRepeat, autoQuantity bool,
) ([]entities.Operation, error) {
	template, err := s.repo.GetTemplate(id)
	if err != nil {
		return nil, err
	}

	template.MarkUsed(s.clock.Now())
	if err := s.repo.SaveTemplate(template); err != nil {
		return nil, fmt.Errorf("record template use: %w", err)
	}

	expanded := expansion.ExpandForBOM(template.Operations, bomItems, autoRepeat, autoQuantity)
	for i := range expanded {
		expanded[i].ID = s.ids.NewID("op")
	}
	return expanded, nil
}

// PreviewApply reports how many operations a template apply would generate
// and their total quantity, without committing anything.
func (s *Service) PreviewApply(
	id string,
	bomItems []entities.BOMItem,
	autoRepeat, autoQuantity bool,
) (expansion.Preview, error) {
	template, err := s.repo.GetTemplate(id)
	if err != nil {
		return expansion.Preview{}, err
	}
	return expansion.PreviewExpansion(template.Operations, bomItems, autoRepeat, autoQuantity), nil
}

// Suggest returns the best-matching saved templates for the current BOM and
// harness metrics.
func (s *Service) Suggest(
	bomItems []entities.BOMItem,
	specs entities.HarnessSpecs,
) ([]*entities.HarnessTemplate, error) {
	all, err := s.repo.GetAllTemplates()
	if err != nil {
		return nil, err
	}
	return MatchTemplates(all, uniqueCategories(bomItems), specs), nil
}

// Search filters the library by a case-insensitive term over name,
// description, and harness type, and optionally by complexity tier (empty
// level means any).
func (s *Service) Search(term string, level entities.ComplexityLevel) ([]*entities.HarnessTemplate, error) {
	all, err := s.repo.GetAllTemplates()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	var out []*entities.HarnessTemplate
	for _, t := range all {
		if level != "" && t.Complexity != level {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Name), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.HarnessType), needle) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// AddOperation places a catalog or custom operation with a fresh id and a
// quantity resolved against the current BOM.
func (s *Service) AddOperation(op entities.Operation, bomItems []entities.BOMItem) entities.Operation {
	placed := op
	placed.ID = s.ids.NewID("op")
	placed.Quantity = services.ResolveQuantity(op, bomItems)
	return placed
}

// DuplicateOperation clones a placed operation with a fresh id, a "(Copy)"
// name suffix, and a re-resolved quantity.
func (s *Service) DuplicateOperation(op entities.Operation, bomItems []entities.BOMItem) entities.Operation {
	clone := op
	clone.ID = s.ids.NewID("op")
	clone.Name = fmt.Sprintf("%s (Copy)", op.Name)
	clone.Quantity = services.ResolveQuantity(op, bomItems)
	return clone
}

// uniqueCategories returns the distinct BOM categories in first-seen order
func uniqueCategories(bomItems []entities.BOMItem) []entities.Category {
	seen := make(map[entities.Category]struct{})
	var out []entities.Category
	for _, item := range bomItems {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}
