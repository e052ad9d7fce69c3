package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is one node of the catalog tree. A category that still has
// children (by parentId reference) cannot be deleted.
type Category struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Name           LocalizedText `json:"name" gorm:"type:jsonb;not null"`
	Slug           string        `json:"slug" gorm:"uniqueIndex;not null"`
	Description    LocalizedText `json:"description" gorm:"type:jsonb;not null"`
	ParentID       *uuid.UUID    `json:"parentId" gorm:"type:uuid;index"`
	Image          *string       `json:"image"`
	SeoTitle       LocalizedText `json:"seoTitle" gorm:"type:jsonb"`
	SeoDescription LocalizedText `json:"seoDescription" gorm:"type:jsonb"`
	CreatedAt      time.Time     `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// CategoryRequest is used when creating a category
type CategoryRequest struct {
	Name           LocalizedText `json:"name" binding:"required"`
	Slug           string        `json:"slug" binding:"required"`
	Description    LocalizedText `json:"description"`
	ParentID       *uuid.UUID    `json:"parentId"`
	Image          *string       `json:"image"`
	SeoTitle       LocalizedText `json:"seoTitle"`
	SeoDescription LocalizedText `json:"seoDescription"`
}

// UpdateCategoryRequest is used when updating a category.
// Omitted fields are left untouched (shallow merge).
type UpdateCategoryRequest struct {
	Name           *LocalizedText `json:"name"`
	Slug           *string        `json:"slug"`
	Description    *LocalizedText `json:"description"`
	ParentID       *uuid.UUID     `json:"parentId"`
	Image          *string        `json:"image"`
	SeoTitle       *LocalizedText `json:"seoTitle"`
	SeoDescription *LocalizedText `json:"seoDescription"`
}
