// Package jsonfile implements export and import of template libraries as
// JSON documents, the interchange format used to share templates between
// installations.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/harnessworks/harnesscost/pkg/application/services/templates"
	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

type operationRecord struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	SetupMinutes     float64 `json:"setupMinutes"`
	LaborMinutes     float64 `json:"laborMinutes"`
	IsManual         bool    `json:"isManual"`
	ComplexityFactor float64 `json:"complexityFactor"`
	Quantity         int64   `json:"quantity,omitempty"`
	BOMCategory      string  `json:"bomCategory,omitempty"`
}

type templateRecord struct {
	ID                      string            `json:"id"`
	Name                    string            `json:"name"`
	Description             string            `json:"description"`
	HarnessType             string            `json:"harnessType"`
	Operations              []operationRecord `json:"operations"`
	BOMCategories           []string          `json:"bomCategories"`
	Complexity              string            `json:"complexity"`
	EstimatedWireCount      int               `json:"estimatedWireCount"`
	EstimatedConnectorCount int               `json:"estimatedConnectorCount"`
	CreatedAt               string            `json:"createdAt,omitempty"`
	LastUsed                string            `json:"lastUsed,omitempty"`
}

// Store serializes template libraries. Imported templates get fresh ids so a
// shared library can never collide with locally saved templates.
type Store struct {
	ids   templates.IDGenerator
	clock templates.Clock
}

// NewStore creates a JSON template store
func NewStore(ids templates.IDGenerator, clock templates.Clock) *Store {
	return &Store{ids: ids, clock: clock}
}

// Export writes the template list as an indented JSON document.
func (s *Store) Export(w io.Writer, list []*entities.HarnessTemplate) error {
	records := make([]templateRecord, 0, len(list))
	for _, t := range list {
		records = append(records, toRecord(t))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode templates: %w", err)
	}
	return nil
}

// ExportFile writes the template list to a file path.
func (s *Store) ExportFile(path string, list []*entities.HarnessTemplate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create template export %s: %w", path, err)
	}
	defer f.Close()
	return s.Export(f, list)
}

// Import reads a template document, assigning fresh ids. A missing createdAt
// defaults to now; a missing lastUsed stays unset. The relative createdAt
// ordering of imported templates is preserved.
func (s *Store) Import(r io.Reader) ([]*entities.HarnessTemplate, error) {
	var records []templateRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode templates: %w", err)
	}

	now := s.clock.Now()
	out := make([]*entities.HarnessTemplate, 0, len(records))
	for i, rec := range records {
		t, err := fromRecord(rec, s.ids.NewID("imported"), now)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// ImportFile reads a template document from a file path.
func (s *Store) ImportFile(path string) ([]*entities.HarnessTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template import %s: %w", path, err)
	}
	defer f.Close()
	return s.Import(f)
}

func toRecord(t *entities.HarnessTemplate) templateRecord {
	ops := make([]operationRecord, 0, len(t.Operations))
	for _, op := range t.Operations {
		ops = append(ops, operationRecord{
			Name:             op.Name,
			Category:         op.Category,
			SetupMinutes:     op.SetupMinutes,
			LaborMinutes:     op.LaborMinutes,
			IsManual:         op.IsManual,
			ComplexityFactor: op.ComplexityFactor,
			Quantity:         int64(op.Quantity),
			BOMCategory:      string(op.BOMCategory),
		})
	}

	categories := make([]string, 0, len(t.BOMCategories))
	for _, c := range t.BOMCategories {
		categories = append(categories, string(c))
	}

	rec := templateRecord{
		ID:                      t.ID,
		Name:                    t.Name,
		Description:             t.Description,
		HarnessType:             t.HarnessType,
		Operations:              ops,
		BOMCategories:           categories,
		Complexity:              string(t.Complexity),
		EstimatedWireCount:      t.EstimatedWireCount,
		EstimatedConnectorCount: t.EstimatedConnectorCount,
		CreatedAt:               t.CreatedAt.Format(time.RFC3339Nano),
	}
	if t.LastUsed != nil {
		rec.LastUsed = t.LastUsed.Format(time.RFC3339Nano)
	}
	return rec
}

func fromRecord(rec templateRecord, id string, now time.Time) (*entities.HarnessTemplate, error) {
	ops := make([]entities.Operation, 0, len(rec.Operations))
	for _, op := range rec.Operations {
		ops = append(ops, entities.Operation{
			Name:             op.Name,
			Category:         op.Category,
			SetupMinutes:     op.SetupMinutes,
			LaborMinutes:     op.LaborMinutes,
			IsManual:         op.IsManual,
			ComplexityFactor: op.ComplexityFactor,
			Quantity:         entities.Quantity(op.Quantity),
			BOMCategory:      entities.Category(op.BOMCategory),
		})
	}

	categories := make([]entities.Category, 0, len(rec.BOMCategories))
	for _, c := range rec.BOMCategories {
		categories = append(categories, entities.Category(c))
	}

	createdAt := now
	if rec.CreatedAt != "" {
		parsed, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse createdAt %q: %w", rec.CreatedAt, err)
		}
		createdAt = parsed
	}

	t, err := entities.NewHarnessTemplate(
		id,
		rec.Name,
		rec.Description,
		rec.HarnessType,
		ops,
		categories,
		entities.ComplexityLevel(rec.Complexity),
		rec.EstimatedWireCount,
		rec.EstimatedConnectorCount,
		createdAt,
	)
	if err != nil {
		return nil, err
	}

	if rec.LastUsed != "" {
		lastUsed, err := time.Parse(time.RFC3339Nano, rec.LastUsed)
		if err != nil {
			return nil, fmt.Errorf("parse lastUsed %q: %w", rec.LastUsed, err)
		}
		t.LastUsed = &lastUsed
	}
	return t, nil
}
