package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// OptionValue is one concrete choice along an option's axis (e.g. "Red").
type OptionValue struct {
	ID   string        `json:"id"`
	Name LocalizedText `json:"name"`
}

// ProductOption is one axis of variation (e.g. "Size"). The order of Values
// is preserved and drives the order of generated variants.
type ProductOption struct {
	ID     string        `json:"id"`
	Name   LocalizedText `json:"name"`
	Values []OptionValue `json:"values"`
}

// ProductVariant is one purchasable combination of one value from every
// defined option. Title is derived from the English value names and is not
// localized. Options maps optionId -> selected valueId and must hold exactly
// one entry per live option; a variant whose keys don't match the current
// option set is stale and gets regenerated.
type ProductVariant struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Options        map[string]string `json:"options"`
	Price          float64           `json:"price"`
	CompareAtPrice *float64          `json:"compareAtPrice,omitempty"`
	Stock          int               `json:"stock"`
	SKU            string            `json:"sku,omitempty"`
}

// Custom slice/map types so they can carry JSONB Scanner/Valuer methods
type (
	OptionsList  []ProductOption
	VariantsList []ProductVariant
	SpecsMap     map[string]string
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product document. Price and Stock are the base/fallback values used when no
// variants exist. Images[0], when present, is the default display image.
type Product struct {
	ID             uuid.UUID                  `json:"id" gorm:"type:uuid;primaryKey"`
	Name           LocalizedText              `json:"name" gorm:"type:jsonb;not null"`
	Slug           string                     `json:"slug" gorm:"uniqueIndex;not null"`
	SKU            string                     `json:"sku"`
	Price          float64                    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	CompareAtPrice *float64                   `json:"compareAtPrice,omitempty" gorm:"type:numeric(12,2)"`
	CostPerItem    *float64                   `json:"costPerItem,omitempty" gorm:"type:numeric(12,2)"`
	Stock          int                        `json:"stock" gorm:"not null;default:0"`
	Description    LocalizedText              `json:"description" gorm:"type:jsonb;not null"`
	CategoryID     uuid.UUID                  `json:"categoryId" gorm:"type:uuid;index"`
	Images         datatypes.JSONSlice[string] `json:"images" gorm:"not null"`
	Tags           datatypes.JSONSlice[string] `json:"tags" gorm:"not null"`
	Specs          SpecsMap                   `json:"specs" gorm:"type:jsonb;not null;default:'{}'"`
	IsFeatured     bool                       `json:"isFeatured" gorm:"default:false;index"`
	IsArchived     bool                       `json:"isArchived" gorm:"default:false;index"`
	SeoTitle       LocalizedText              `json:"seoTitle" gorm:"type:jsonb"`
	SeoDescription LocalizedText              `json:"seoDescription" gorm:"type:jsonb"`
	Options        OptionsList                `json:"options,omitempty" gorm:"type:jsonb;not null;default:'[]'"`
	Variants       VariantsList               `json:"variants,omitempty" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time                  `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time                  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// PromoteDefaultImage moves url to the front of images, preserving the
// relative order of everything else. Returns the list unchanged when the url
// is not present.
func PromoteDefaultImage(images []string, url string) ([]string, bool) {
	idx := -1
	for i, img := range images {
		if img == url {
			idx = i
			break
		}
	}
	if idx < 0 {
		return images, false
	}
	reordered := make([]string, 0, len(images))
	reordered = append(reordered, url)
	reordered = append(reordered, images[:idx]...)
	reordered = append(reordered, images[idx+1:]...)
	return reordered, true
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name           LocalizedText    `json:"name" binding:"required"`
	Slug           string           `json:"slug" binding:"required"`
	SKU            string           `json:"sku"`
	Price          float64          `json:"price" binding:"min=0"`
	CompareAtPrice *float64         `json:"compareAtPrice"`
	CostPerItem    *float64         `json:"costPerItem"`
	Stock          int              `json:"stock" binding:"min=0"`
	Description    LocalizedText    `json:"description"`
	CategoryID     uuid.UUID        `json:"categoryId"`
	Images         []string         `json:"images"`
	Tags           []string         `json:"tags"`
	Specs          map[string]string `json:"specs"`
	IsFeatured     bool             `json:"isFeatured"`
	IsArchived     bool             `json:"isArchived"`
	SeoTitle       LocalizedText    `json:"seoTitle"`
	SeoDescription LocalizedText    `json:"seoDescription"`
	Options        []ProductOption  `json:"options"`
	Variants       []ProductVariant `json:"variants"`
}

type UpdateProductRequest struct {
	Name           *LocalizedText    `json:"name"`
	Slug           *string           `json:"slug"`
	SKU            *string           `json:"sku"`
	Price          *float64          `json:"price" binding:"omitempty,min=0"`
	CompareAtPrice *float64          `json:"compareAtPrice"`
	CostPerItem    *float64          `json:"costPerItem"`
	Stock          *int              `json:"stock" binding:"omitempty,min=0"`
	Description    *LocalizedText    `json:"description"`
	CategoryID     *uuid.UUID        `json:"categoryId"`
	Images         *[]string         `json:"images"`
	Tags           *[]string         `json:"tags"`
	Specs          *map[string]string `json:"specs"`
	IsFeatured     *bool             `json:"isFeatured"`
	IsArchived     *bool             `json:"isArchived"`
	SeoTitle       *LocalizedText    `json:"seoTitle"`
	SeoDescription *LocalizedText    `json:"seoDescription"`
	Options        *[]ProductOption  `json:"options"`
	Variants       *[]ProductVariant `json:"variants"`
}

// UpdateVariantRequest patches price/stock/sku on one already-generated
// variant without re-running generation.
type UpdateVariantRequest struct {
	Price          *float64 `json:"price" binding:"omitempty,min=0"`
	CompareAtPrice *float64 `json:"compareAtPrice"`
	Stock          *int     `json:"stock" binding:"omitempty,min=0"`
	SKU            *string  `json:"sku"`
}

type SetDefaultImageRequest struct {
	URL string `json:"url" binding:"required"`
}

type GenerateVariantsRequest struct {
	Options   []ProductOption `json:"options" binding:"required"`
	BasePrice float64         `json:"basePrice" binding:"min=0"`
	BaseStock int             `json:"baseStock" binding:"min=0"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("failed to scan JSONB column")
	}
}

// OptionsList methods
func (o *OptionsList) Scan(value interface{}) error {
	if value == nil {
		*o = make(OptionsList, 0)
		return nil
	}
	return scanJSON(value, o)
}

func (o OptionsList) Value() (driver.Value, error) {
	if o == nil {
		return json.Marshal([]ProductOption{})
	}
	return json.Marshal(o)
}

// VariantsList methods
func (v *VariantsList) Scan(value interface{}) error {
	if value == nil {
		*v = make(VariantsList, 0)
		return nil
	}
	return scanJSON(value, v)
}

func (v VariantsList) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal([]ProductVariant{})
	}
	return json.Marshal(v)
}

// SpecsMap methods
func (s *SpecsMap) Scan(value interface{}) error {
	if value == nil {
		*s = make(SpecsMap)
		return nil
	}
	return scanJSON(value, s)
}

func (s SpecsMap) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(s)
}
