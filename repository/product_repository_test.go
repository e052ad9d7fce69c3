package repository

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

func seedProduct(t *testing.T, repo *ProductRepository, slug string) *models.Product {
	t.Helper()
	product := models.Product{
		Name:   models.LocalizedText{En: slug},
		Slug:   slug,
		Price:  100,
		Stock:  5,
		Images: datatypes.JSONSlice[string]{},
		Tags:   datatypes.JSONSlice[string]{},
	}
	if err := repo.Create(testCtx(), &product); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return &product
}

func TestProductDuplicateSlugRejected(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	seedProduct(t, repo, "chair")
	product := models.Product{Name: models.LocalizedText{En: "Other"}, Slug: "chair"}
	if err := repo.Create(testCtx(), &product); !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestProductUpdateSlug(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	product := seedProduct(t, repo, "chair")
	seedProduct(t, repo, "lamp")

	// Own slug is fine
	if _, err := repo.Update(testCtx(), product.ID, map[string]interface{}{"slug": "chair"}); err != nil {
		t.Fatalf("update with own slug failed: %v", err)
	}

	// Someone else's slug is not
	if _, err := repo.Update(testCtx(), product.ID, map[string]interface{}{"slug": "lamp"}); !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestProductGetBySlug(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	seedProduct(t, repo, "chair")
	found, err := repo.GetBySlug(testCtx(), "chair")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if found.Slug != "chair" {
		t.Fatalf("unexpected product: %+v", found)
	}

	if _, err := repo.GetBySlug(testCtx(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductListStorefrontHidesArchived(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	visible := seedProduct(t, repo, "visible")
	archived := seedProduct(t, repo, "archived")
	if _, err := repo.Update(testCtx(), archived.ID, map[string]interface{}{"is_archived": true}); err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	products, err := repo.ListStorefront(testCtx(), false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != visible.ID {
		t.Fatalf("expected only the visible product, got %d", len(products))
	}
}

func TestProductListStorefrontFeaturedOnly(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	seedProduct(t, repo, "plain")
	featured := seedProduct(t, repo, "featured")
	if _, err := repo.Update(testCtx(), featured.ID, map[string]interface{}{"is_featured": true}); err != nil {
		t.Fatalf("feature failed: %v", err)
	}

	products, err := repo.ListStorefront(testCtx(), true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != featured.ID {
		t.Fatalf("expected only the featured product, got %d", len(products))
	}
}

func TestProductUpdateVariant(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	product := models.Product{
		Name:  models.LocalizedText{En: "Chair"},
		Slug:  "chair",
		Price: 100,
		Variants: models.VariantsList{
			{ID: "v1", Title: "Small", Options: map[string]string{"opt": "s"}, Price: 100, Stock: 5},
			{ID: "v2", Title: "Large", Options: map[string]string{"opt": "l"}, Price: 100, Stock: 5},
		},
	}
	if err := repo.Create(testCtx(), &product); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	price := 120.0
	sku := "CH-L"
	updated, err := repo.UpdateVariant(testCtx(), product.ID, "v2", models.UpdateVariantRequest{
		Price: &price,
		SKU:   &sku,
	})
	if err != nil {
		t.Fatalf("update variant failed: %v", err)
	}
	if updated.Variants[1].Price != 120 || updated.Variants[1].SKU != "CH-L" {
		t.Fatalf("variant not patched: %+v", updated.Variants[1])
	}
	// Sibling variant untouched
	if updated.Variants[0].Price != 100 {
		t.Fatalf("sibling variant modified: %+v", updated.Variants[0])
	}

	// Persisted, not just in memory
	reloaded, err := repo.Get(testCtx(), product.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Variants[1].Price != 120 {
		t.Fatalf("variant patch not persisted: %+v", reloaded.Variants[1])
	}

	if _, err := repo.UpdateVariant(testCtx(), product.ID, "missing", models.UpdateVariantRequest{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductSetDefaultImage(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	product := models.Product{
		Name:   models.LocalizedText{En: "Chair"},
		Slug:   "chair",
		Images: datatypes.JSONSlice[string]{"a.png", "b.png", "c.png"},
	}
	if err := repo.Create(testCtx(), &product); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.SetDefaultImage(testCtx(), product.ID, "b.png")
	if err != nil {
		t.Fatalf("set default image failed: %v", err)
	}
	if updated.Images[0] != "b.png" || updated.Images[1] != "a.png" || updated.Images[2] != "c.png" {
		t.Fatalf("unexpected order: %v", updated.Images)
	}

	if _, err := repo.SetDefaultImage(testCtx(), product.ID, "missing.png"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestProductDelete(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	product := seedProduct(t, repo, "chair")
	if err := repo.Delete(testCtx(), product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(testCtx(), uuid.Must(uuid.NewV7())); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
