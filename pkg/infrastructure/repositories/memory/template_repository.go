package memory

import (
	"fmt"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
	"github.com/harnessworks/harnesscost/pkg/domain/repositories"
)

// TemplateRepository provides in-memory template storage with last-write-wins
// upsert semantics.
type TemplateRepository struct {
	templates []entities.HarnessTemplate
	index     map[string]int
}

// NewTemplateRepository creates a new in-memory template repository
func NewTemplateRepository(expectedTemplates int) *TemplateRepository {
	return &TemplateRepository{
		templates: make([]entities.HarnessTemplate, 0, expectedTemplates),
		index:     make(map[string]int, expectedTemplates),
	}
}

// Verify interface compliance
var _ repositories.TemplateRepository = (*TemplateRepository)(nil)

// GetTemplate returns the template with the given id
func (r *TemplateRepository) GetTemplate(id string) (*entities.HarnessTemplate, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("template not found: %s", id)
	}
	clone := r.templates[i]
	return &clone, nil
}

// GetAllTemplates returns every saved template in insertion order
func (r *TemplateRepository) GetAllTemplates() ([]*entities.HarnessTemplate, error) {
	out := make([]*entities.HarnessTemplate, 0, len(r.templates))
	for i := range r.templates {
		clone := r.templates[i]
		out = append(out, &clone)
	}
	return out, nil
}

// SaveTemplate inserts or overwrites a template
func (r *TemplateRepository) SaveTemplate(template *entities.HarnessTemplate) error {
	if template == nil || template.ID == "" {
		return fmt.Errorf("template must have an id")
	}
	if i, ok := r.index[template.ID]; ok {
		r.templates[i] = *template
		return nil
	}
	r.index[template.ID] = len(r.templates)
	r.templates = append(r.templates, *template)
	return nil
}

// DeleteTemplate removes a template by id
func (r *TemplateRepository) DeleteTemplate(id string) error {
	i, ok := r.index[id]
	if !ok {
		return fmt.Errorf("template not found: %s", id)
	}
	r.templates = append(r.templates[:i], r.templates[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.templates); j++ {
		r.index[r.templates[j].ID] = j
	}
	return nil
}
