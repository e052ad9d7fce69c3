package services

import (
	"errors"
	"testing"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

func sizeColorOptions() []models.ProductOption {
	return []models.ProductOption{
		{
			ID:   "opt-size",
			Name: models.LocalizedText{En: "Size", Ar: "الحجم"},
			Values: []models.OptionValue{
				{ID: "val-s", Name: models.LocalizedText{En: "S"}},
				{ID: "val-m", Name: models.LocalizedText{En: "M"}},
				{ID: "val-l", Name: models.LocalizedText{En: "L"}},
			},
		},
		{
			ID:   "opt-color",
			Name: models.LocalizedText{En: "Color", Ar: "اللون"},
			Values: []models.OptionValue{
				{ID: "val-red", Name: models.LocalizedText{En: "Red"}},
				{ID: "val-blue", Name: models.LocalizedText{En: "Blue"}},
			},
		},
	}
}

func TestGenerateVariantsCartesian(t *testing.T) {
	variants, err := GenerateVariants(sizeColorOptions(), 50, 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(variants) != 6 {
		t.Fatalf("expected 6 variants, got %d", len(variants))
	}

	// First option varies slowest, value order preserved
	wantTitles := []string{
		"S / Red", "S / Blue",
		"M / Red", "M / Blue",
		"L / Red", "L / Blue",
	}
	for i, want := range wantTitles {
		if variants[i].Title != want {
			t.Fatalf("variant %d: expected title %q, got %q", i, want, variants[i].Title)
		}
	}

	seen := make(map[string]bool)
	for _, v := range variants {
		if v.ID == "" {
			t.Fatal("expected generated variant id")
		}
		if seen[v.ID] {
			t.Fatalf("duplicate variant id %q", v.ID)
		}
		seen[v.ID] = true

		if v.Price != 50 || v.Stock != 3 || v.SKU != "" {
			t.Fatalf("unexpected seed values: %+v", v)
		}
		if len(v.Options) != 2 {
			t.Fatalf("expected 2 option entries, got %d", len(v.Options))
		}
	}

	// Spot-check the selection map of the first variant
	if variants[0].Options["opt-size"] != "val-s" || variants[0].Options["opt-color"] != "val-red" {
		t.Fatalf("unexpected selection: %v", variants[0].Options)
	}
}

func TestGenerateVariantsNoOptions(t *testing.T) {
	variants, err := GenerateVariants(nil, 50, 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if variants != nil {
		t.Fatalf("expected no variants, got %d", len(variants))
	}
}

func TestGenerateVariantsEmptyValuedOption(t *testing.T) {
	options := []models.ProductOption{
		{ID: "opt-size", Name: models.LocalizedText{En: "Size"}},
	}
	if _, err := GenerateVariants(options, 50, 3); !errors.Is(err, repository.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestVariantsMatchOptions(t *testing.T) {
	options := sizeColorOptions()
	variants, err := GenerateVariants(options, 50, 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if !VariantsMatchOptions(options, variants) {
		t.Fatal("freshly generated variants should match their options")
	}

	// A removed option makes the list stale
	if VariantsMatchOptions(options[:1], variants) {
		t.Fatal("expected stale after removing an option")
	}

	// A variant pointing at an unknown value is stale
	variants[0].Options["opt-size"] = "val-xl"
	if VariantsMatchOptions(options, variants) {
		t.Fatal("expected stale with unknown value id")
	}

	// No options means no variants
	if !VariantsMatchOptions(nil, nil) {
		t.Fatal("expected empty options and variants to match")
	}
	if VariantsMatchOptions(nil, variants) {
		t.Fatal("expected variants without options to be stale")
	}
}
