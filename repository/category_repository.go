package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

// CategoryRepository owns all reads and writes of the categories collection.
// Every read re-fetches from the store; nothing is held in memory.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns the full collection ordered by createdAt descending. No
// pagination: the catalog is assumed small.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// Create validates slug uniqueness and, when a parent is supplied, that the
// parent exists, then inserts. createdAt is stamped by the store.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	taken, err := r.slugTaken(ctx, category.Slug, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateSlug
	}

	if category.ParentID != nil {
		if err := r.checkParentExists(ctx, *category.ParentID); err != nil {
			return err
		}
	}

	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update merges the provided fields into the existing document. A slug equal
// to the category's own slug does not conflict; updating a nonexistent id
// fails with ErrNotFound.
func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (*models.Category, error) {
	if req.Slug != nil {
		taken, err := r.slugTaken(ctx, *req.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateSlug
		}
	}

	if req.ParentID != nil {
		if *req.ParentID == id {
			return nil, fmt.Errorf("%w: category cannot be its own parent", ErrValidation)
		}
		if err := r.checkParentExists(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ParentID != nil {
		updates["parent_id"] = *req.ParentID
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.SeoTitle != nil {
		updates["seo_title"] = *req.SeoTitle
	}
	if req.SeoDescription != nil {
		updates["seo_description"] = *req.SeoDescription
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update category: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.Get(ctx, id)
}

// Delete removes a childless category. A category referenced as parentId by
// any other category cannot be deleted.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var childCount int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("parent_id = ?", id).
		Count(&childCount).Error; err != nil {
		return fmt.Errorf("failed to check for subcategories: %w", err)
	}
	if childCount > 0 {
		return ErrHasChildren
	}

	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// slugTaken reports whether another category (any id but selfID) already owns
// the slug. Exact, case-sensitive match.
func (r *CategoryRepository) slugTaken(ctx context.Context, slug string, selfID uuid.UUID) (bool, error) {
	var existing models.Category
	err := r.db.WithContext(ctx).
		Select("id").
		Where("slug = ?", slug).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return existing.ID != selfID, nil
}

func (r *CategoryRepository) checkParentExists(ctx context.Context, parentID uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", parentID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check parent category: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: parent category not found", ErrValidation)
	}
	return nil
}
