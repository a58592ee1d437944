package repositories

import "github.com/harnessworks/harnesscost/pkg/domain/entities"

// TemplateRepository provides access to the saved harness-template library.
// Templates are the only persisted resource; writes are last-write-wins,
// consistent with a single-user usage model.
type TemplateRepository interface {
	GetTemplate(id string) (*entities.HarnessTemplate, error)
	GetAllTemplates() ([]*entities.HarnessTemplate, error)
	SaveTemplate(template *entities.HarnessTemplate) error
	DeleteTemplate(id string) error
}
