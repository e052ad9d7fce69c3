package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

func TestCategoryCreateAndGet(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	category := models.Category{
		Name: models.LocalizedText{En: "Furniture", Ar: "أثاث"},
		Slug: "furniture",
	}
	if err := repo.Create(testCtx(), &category); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if category.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}

	found, err := repo.Get(testCtx(), category.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found.Name.En != "Furniture" || found.Name.Ar != "أثاث" {
		t.Fatalf("unexpected name: %+v", found.Name)
	}
}

func TestCategoryDuplicateSlugRejected(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	first := models.Category{Name: models.LocalizedText{En: "First"}, Slug: "dup"}
	if err := repo.Create(testCtx(), &first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second := models.Category{Name: models.LocalizedText{En: "Second"}, Slug: "dup"}
	if err := repo.Create(testCtx(), &second); !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestCategoryUpdateKeepsOwnSlug(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	category := models.Category{Name: models.LocalizedText{En: "Lamps"}, Slug: "lamps"}
	if err := repo.Create(testCtx(), &category); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Re-submitting the category's own slug must not conflict
	slug := "lamps"
	name := models.LocalizedText{En: "Table Lamps"}
	updated, err := repo.Update(testCtx(), category.ID, models.UpdateCategoryRequest{
		Name: &name,
		Slug: &slug,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name.En != "Table Lamps" || updated.Slug != "lamps" {
		t.Fatalf("unexpected result: %+v", updated)
	}
}

func TestCategoryUpdateSlugConflict(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	a := models.Category{Name: models.LocalizedText{En: "A"}, Slug: "a"}
	b := models.Category{Name: models.LocalizedText{En: "B"}, Slug: "b"}
	if err := repo.Create(testCtx(), &a); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(testCtx(), &b); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	slug := "a"
	if _, err := repo.Update(testCtx(), b.ID, models.UpdateCategoryRequest{Slug: &slug}); !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestCategoryCannotBeOwnParent(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	category := models.Category{Name: models.LocalizedText{En: "Loop"}, Slug: "loop"}
	if err := repo.Create(testCtx(), &category); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	parentID := category.ID
	if _, err := repo.Update(testCtx(), category.ID, models.UpdateCategoryRequest{ParentID: &parentID}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCategoryCreateWithMissingParent(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	missing := uuid.Must(uuid.NewV7())
	category := models.Category{
		Name:     models.LocalizedText{En: "Orphan"},
		Slug:     "orphan",
		ParentID: &missing,
	}
	if err := repo.Create(testCtx(), &category); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCategoryDeleteWithChildrenRejected(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	parent := models.Category{Name: models.LocalizedText{En: "Parent"}, Slug: "parent"}
	if err := repo.Create(testCtx(), &parent); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	child := models.Category{
		Name:     models.LocalizedText{En: "Child"},
		Slug:     "child",
		ParentID: &parent.ID,
	}
	if err := repo.Create(testCtx(), &child); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Delete(testCtx(), parent.ID); !errors.Is(err, ErrHasChildren) {
		t.Fatalf("expected ErrHasChildren, got %v", err)
	}

	// Deleting the child first unblocks the parent
	if err := repo.Delete(testCtx(), child.ID); err != nil {
		t.Fatalf("delete child failed: %v", err)
	}
	if err := repo.Delete(testCtx(), parent.ID); err != nil {
		t.Fatalf("delete parent failed: %v", err)
	}
}

func TestCategoryListNewestFirst(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	base := time.Now().Add(-time.Hour)
	for i, slug := range []string{"oldest", "middle", "newest"} {
		category := models.Category{
			Name:      models.LocalizedText{En: slug},
			Slug:      slug,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(testCtx(), &category); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	categories, err := repo.List(testCtx())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	if categories[0].Slug != "newest" || categories[2].Slug != "oldest" {
		t.Fatalf("unexpected order: %s, %s, %s", categories[0].Slug, categories[1].Slug, categories[2].Slug)
	}
}

func TestCategoryNotFound(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	if _, err := repo.Get(testCtx(), uuid.Must(uuid.NewV7())); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(testCtx(), uuid.Must(uuid.NewV7())); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
