package memory

import (
	"testing"
	"time"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

func testTemplate(id, name string) *entities.HarnessTemplate {
	return &entities.HarnessTemplate{
		ID:        id,
		Name:      name,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTemplateRepository_SaveAndGet(t *testing.T) {
	repo := NewTemplateRepository(2)

	if err := repo.SaveTemplate(testTemplate("t1", "Engine")); err != nil {
		t.Fatalf("Expected save to succeed: %v", err)
	}

	got, err := repo.GetTemplate("t1")
	if err != nil {
		t.Fatalf("Expected get to succeed: %v", err)
	}
	if got.Name != "Engine" {
		t.Errorf("Expected name Engine, got %s", got.Name)
	}

	// The returned template is a copy.
	got.Name = "Changed"
	again, err := repo.GetTemplate("t1")
	if err != nil {
		t.Fatalf("Expected get to succeed: %v", err)
	}
	if again.Name != "Engine" {
		t.Errorf("Expected stored template unchanged, got %s", again.Name)
	}
}

func TestTemplateRepository_SaveValidation(t *testing.T) {
	repo := NewTemplateRepository(0)

	if err := repo.SaveTemplate(nil); err == nil {
		t.Error("Expected saving nil template to fail")
	}
	if err := repo.SaveTemplate(&entities.HarnessTemplate{Name: "No ID"}); err == nil {
		t.Error("Expected saving template without id to fail")
	}
}

func TestTemplateRepository_UpsertKeepsPosition(t *testing.T) {
	repo := NewTemplateRepository(2)

	if err := repo.SaveTemplate(testTemplate("t1", "First")); err != nil {
		t.Fatalf("Expected save to succeed: %v", err)
	}
	if err := repo.SaveTemplate(testTemplate("t2", "Second")); err != nil {
		t.Fatalf("Expected save to succeed: %v", err)
	}
	if err := repo.SaveTemplate(testTemplate("t1", "First Updated")); err != nil {
		t.Fatalf("Expected upsert to succeed: %v", err)
	}

	all, err := repo.GetAllTemplates()
	if err != nil {
		t.Fatalf("Expected list to succeed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 templates, got %d", len(all))
	}
	if all[0].Name != "First Updated" || all[1].Name != "Second" {
		t.Errorf("Expected insertion order with overwrite, got %s then %s",
			all[0].Name, all[1].Name)
	}
}

func TestTemplateRepository_Delete(t *testing.T) {
	repo := NewTemplateRepository(3)
	for _, tmpl := range []*entities.HarnessTemplate{
		testTemplate("t1", "A"), testTemplate("t2", "B"), testTemplate("t3", "C"),
	} {
		if err := repo.SaveTemplate(tmpl); err != nil {
			t.Fatalf("Expected save to succeed: %v", err)
		}
	}

	if err := repo.DeleteTemplate("t2"); err != nil {
		t.Fatalf("Expected delete to succeed: %v", err)
	}
	if err := repo.DeleteTemplate("t2"); err == nil {
		t.Error("Expected second delete to fail")
	}

	// Remaining templates stay reachable after reindexing.
	got, err := repo.GetTemplate("t3")
	if err != nil {
		t.Fatalf("Expected get after delete to succeed: %v", err)
	}
	if got.Name != "C" {
		t.Errorf("Expected template C, got %s", got.Name)
	}

	all, err := repo.GetAllTemplates()
	if err != nil {
		t.Fatalf("Expected list to succeed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 templates after delete, got %d", len(all))
	}
}

func TestTemplateRepository_GetMissing(t *testing.T) {
	repo := NewTemplateRepository(0)
	if _, err := repo.GetTemplate("missing"); err == nil {
		t.Error("Expected get of missing template to fail")
	}
}
