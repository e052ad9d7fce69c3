package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo catalog: two categories, two products (one with generated
// variants) and one quotation request.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MO3D CMS - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := repository.NewCategoryRepository(config.DB)
	products := repository.NewProductRepository(config.DB)
	quotations := repository.NewQuotationRepository(config.DB)

	// Categories
	furniture := models.Category{
		Name:        models.LocalizedText{En: "Furniture", Ar: "أثاث"},
		Slug:        "furniture",
		Description: models.LocalizedText{En: "Custom 3D printed furniture", Ar: "أثاث مطبوع ثلاثي الأبعاد"},
		SeoTitle:    models.LocalizedText{En: "Furniture | MO3D", Ar: "أثاث | MO3D"},
	}
	if err := categories.Create(ctx, &furniture); err != nil {
		log.Fatalf("Failed to seed category: %v", err)
	}

	chairs := models.Category{
		Name:     models.LocalizedText{En: "Chairs", Ar: "كراسي"},
		Slug:     "chairs",
		ParentID: &furniture.ID,
	}
	if err := categories.Create(ctx, &chairs); err != nil {
		log.Fatalf("Failed to seed category: %v", err)
	}
	log.Println("✓ Categories seeded")

	// Product with options and generated variants
	options := []models.ProductOption{
		{
			ID:   "opt-size",
			Name: models.LocalizedText{En: "Size", Ar: "الحجم"},
			Values: []models.OptionValue{
				{ID: "val-s", Name: models.LocalizedText{En: "Small", Ar: "صغير"}},
				{ID: "val-l", Name: models.LocalizedText{En: "Large", Ar: "كبير"}},
			},
		},
		{
			ID:   "opt-color",
			Name: models.LocalizedText{En: "Color", Ar: "اللون"},
			Values: []models.OptionValue{
				{ID: "val-white", Name: models.LocalizedText{En: "White", Ar: "أبيض"}},
				{ID: "val-black", Name: models.LocalizedText{En: "Black", Ar: "أسود"}},
			},
		},
	}

	variants, err := services.GenerateVariants(options, 149.00, 10)
	if err != nil {
		log.Fatalf("Failed to generate variants: %v", err)
	}

	chair := models.Product{
		Name:        models.LocalizedText{En: "Lattice Chair", Ar: "كرسي شبكي"},
		Slug:        "lattice-chair",
		Price:       149.00,
		Stock:       10,
		Description: models.LocalizedText{En: "Printed lattice-frame chair", Ar: "كرسي بهيكل شبكي مطبوع"},
		CategoryID:  chairs.ID,
		Images:      datatypes.JSONSlice[string]{},
		Tags:        datatypes.JSONSlice[string]{"chair", "lattice"},
		Specs:       models.SpecsMap{"material": "PLA"},
		IsFeatured:  true,
		Options:     options,
		Variants:    variants,
	}
	if err := products.Create(ctx, &chair); err != nil {
		log.Fatalf("Failed to seed product: %v", err)
	}

	lamp := models.Product{
		Name:        models.LocalizedText{En: "Helix Lamp", Ar: "مصباح حلزوني"},
		Slug:        "helix-lamp",
		Price:       59.00,
		Stock:       25,
		Description: models.LocalizedText{En: "Spiral printed table lamp", Ar: "مصباح طاولة حلزوني مطبوع"},
		CategoryID:  furniture.ID,
		Images:      datatypes.JSONSlice[string]{},
		Tags:        datatypes.JSONSlice[string]{"lamp"},
		Specs:       models.SpecsMap{"material": "PETG"},
	}
	if err := products.Create(ctx, &lamp); err != nil {
		log.Fatalf("Failed to seed product: %v", err)
	}
	log.Printf("✓ Products seeded (%d variants generated)", len(variants))

	// Quotation
	quotation := models.Quotation{
		CustomerName:    "Sample Customer",
		CustomerEmail:   "customer@example.com",
		RequestDetails:  "Custom shelving unit, 120x40cm, matte black",
		ReferenceImages: datatypes.JSONSlice[string]{},
	}
	if err := quotations.Create(ctx, &quotation); err != nil {
		log.Fatalf("Failed to seed quotation: %v", err)
	}
	log.Println("✓ Quotation seeded")

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Categories: %s, %s\n", furniture.Slug, chairs.Slug)
	fmt.Printf("Products:   %s, %s\n", chair.Slug, lamp.Slug)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login with ADMIN_PASSWORD")
}
