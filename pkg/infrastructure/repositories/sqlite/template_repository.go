package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
	"github.com/harnessworks/harnesscost/pkg/domain/repositories"
)

// TemplateRepository stores templates in a SQLite database. Save has
// last-write-wins upsert semantics; GetAllTemplates preserves insertion
// order.
type TemplateRepository struct {
	db *sql.DB
}

// NewTemplateRepository creates a SQLite-backed template repository
func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Verify interface compliance
var _ repositories.TemplateRepository = (*TemplateRepository)(nil)

// GetTemplate returns the template with the given id
func (r *TemplateRepository) GetTemplate(id string) (*entities.HarnessTemplate, error) {
	row := r.db.QueryRow(`
		SELECT id, name, description, harness_type, complexity,
		       estimated_wire_count, estimated_connector_count,
		       bom_categories, created_at, last_used
		FROM templates WHERE id = ?`, id)

	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("template not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query template %s: %w", id, err)
	}

	if err := r.loadOperations(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetAllTemplates returns every saved template in insertion order
func (r *TemplateRepository) GetAllTemplates() ([]*entities.HarnessTemplate, error) {
	rows, err := r.db.Query(`
		SELECT id, name, description, harness_type, complexity,
		       estimated_wire_count, estimated_connector_count,
		       bom_categories, created_at, last_used
		FROM templates ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var out []*entities.HarnessTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}

	for _, t := range out {
		if err := r.loadOperations(t); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SaveTemplate inserts or overwrites a template and its operations
func (r *TemplateRepository) SaveTemplate(template *entities.HarnessTemplate) error {
	if template == nil || template.ID == "" {
		return fmt.Errorf("template must have an id")
	}

	categories, err := json.Marshal(template.BOMCategories)
	if err != nil {
		return fmt.Errorf("encode bom categories: %w", err)
	}

	var lastUsed any
	if template.LastUsed != nil {
		lastUsed = template.LastUsed.Format(time.RFC3339Nano)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save template: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO templates (id, name, description, harness_type, complexity,
			estimated_wire_count, estimated_connector_count,
			bom_categories, created_at, last_used)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			harness_type = excluded.harness_type,
			complexity = excluded.complexity,
			estimated_wire_count = excluded.estimated_wire_count,
			estimated_connector_count = excluded.estimated_connector_count,
			bom_categories = excluded.bom_categories,
			created_at = excluded.created_at,
			last_used = excluded.last_used`,
		template.ID, template.Name, template.Description, template.HarnessType,
		string(template.Complexity), template.EstimatedWireCount,
		template.EstimatedConnectorCount, string(categories),
		template.CreatedAt.Format(time.RFC3339Nano), lastUsed,
	); err != nil {
		return fmt.Errorf("upsert template %s: %w", template.ID, err)
	}

	if _, err := tx.Exec(`DELETE FROM template_operations WHERE template_id = ?`, template.ID); err != nil {
		return fmt.Errorf("clear operations for %s: %w", template.ID, err)
	}

	for i, op := range template.Operations {
		if _, err := tx.Exec(`
			INSERT INTO template_operations (template_id, position, id, name,
				category, setup_minutes, labor_minutes, is_manual,
				complexity_factor, quantity, bom_category)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			template.ID, i, op.ID, op.Name, op.Category,
			op.SetupMinutes, op.LaborMinutes, op.IsManual,
			op.ComplexityFactor, int64(op.Quantity), string(op.BOMCategory),
		); err != nil {
			return fmt.Errorf("insert operation %d for %s: %w", i, template.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save template %s: %w", template.ID, err)
	}
	return nil
}

// DeleteTemplate removes a template by id
func (r *TemplateRepository) DeleteTemplate(id string) error {
	res, err := r.db.Exec(`DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete template %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete template %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("template not found: %s", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*entities.HarnessTemplate, error) {
	var t entities.HarnessTemplate
	var complexity, categories, createdAt string
	var lastUsed sql.NullString

	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.HarnessType,
		&complexity, &t.EstimatedWireCount, &t.EstimatedConnectorCount,
		&categories, &createdAt, &lastUsed); err != nil {
		return nil, err
	}

	t.Complexity = entities.ComplexityLevel(complexity)
	if err := json.Unmarshal([]byte(categories), &t.BOMCategories); err != nil {
		return nil, fmt.Errorf("decode bom categories for %s: %w", t.ID, err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for %s: %w", t.ID, err)
	}
	t.CreatedAt = parsed

	if lastUsed.Valid {
		used, err := time.Parse(time.RFC3339Nano, lastUsed.String)
		if err != nil {
			return nil, fmt.Errorf("parse last_used for %s: %w", t.ID, err)
		}
		t.LastUsed = &used
	}
	return &t, nil
}

func (r *TemplateRepository) loadOperations(t *entities.HarnessTemplate) error {
	rows, err := r.db.Query(`
		SELECT id, name, category, setup_minutes, labor_minutes, is_manual,
		       complexity_factor, quantity, bom_category
		FROM template_operations WHERE template_id = ? ORDER BY position`, t.ID)
	if err != nil {
		return fmt.Errorf("query operations for %s: %w", t.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var op entities.Operation
		var quantity int64
		var bomCategory string
		if err := rows.Scan(&op.ID, &op.Name, &op.Category, &op.SetupMinutes,
			&op.LaborMinutes, &op.IsManual, &op.ComplexityFactor,
			&quantity, &bomCategory); err != nil {
			return fmt.Errorf("scan operation for %s: %w", t.ID, err)
		}
		op.Quantity = entities.Quantity(quantity)
		op.BOMCategory = entities.Category(bomCategory)
		t.Operations = append(t.Operations, op)
	}
	return rows.Err()
}
