package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

// ProductRepository owns all reads and writes of the products collection.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns the full collection ordered by createdAt descending.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListStorefront returns non-archived products, newest first, optionally only
// featured ones.
func (r *ProductRepository) ListStorefront(ctx context.Context, featuredOnly bool) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Where("is_archived = ?", false)
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	var products []models.Product
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list storefront products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}
	return &product, nil
}

// Create validates slug uniqueness and inserts. createdAt is stamped by the
// store. Option/variant consistency is the caller's concern (the generation
// engine runs before persistence).
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	taken, err := r.slugTaken(ctx, product.Slug, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateSlug
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update merges the given column updates into the existing document. A slug
// equal to the product's own slug does not conflict; a nonexistent id fails
// with ErrNotFound.
func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Product, error) {
	if slug, ok := updates["slug"].(string); ok {
		taken, err := r.slugTaken(ctx, slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateSlug
		}
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.Get(ctx, id)
}

// UpdateVariant patches price/stock/sku fields on a single variant of the
// already-generated list. It never re-runs generation.
func (r *ProductRepository) UpdateVariant(ctx context.Context, productID uuid.UUID, variantID string, req models.UpdateVariantRequest) (*models.Product, error) {
	product, err := r.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range product.Variants {
		if product.Variants[i].ID != variantID {
			continue
		}
		found = true
		if req.Price != nil {
			product.Variants[i].Price = *req.Price
		}
		if req.CompareAtPrice != nil {
			product.Variants[i].CompareAtPrice = req.CompareAtPrice
		}
		if req.Stock != nil {
			product.Variants[i].Stock = *req.Stock
		}
		if req.SKU != nil {
			product.Variants[i].SKU = *req.SKU
		}
		break
	}
	if !found {
		return nil, ErrNotFound
	}

	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("variants", product.Variants)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update variant: %w", res.Error)
	}
	return product, nil
}

// SetDefaultImage promotes url to images[0], preserving the order of the
// remaining images.
func (r *ProductRepository) SetDefaultImage(ctx context.Context, productID uuid.UUID, url string) (*models.Product, error) {
	product, err := r.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	reordered, ok := models.PromoteDefaultImage(product.Images, url)
	if !ok {
		return nil, fmt.Errorf("%w: image not found on product", ErrValidation)
	}
	product.Images = reordered

	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("images", product.Images)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to reorder images: %w", res.Error)
	}
	return product, nil
}

// Delete removes a product. There is deliberately no referential guard here:
// deleting a product referenced elsewhere is permitted, matching the store's
// original behavior.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) slugTaken(ctx context.Context, slug string, selfID uuid.UUID) (bool, error) {
	var existing models.Product
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
