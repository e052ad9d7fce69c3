package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

// QuotationRepository owns the quotations collection. Quotations are created
// by the storefront, mutated by admin action, and never deleted.
type QuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

func (r *QuotationRepository) List(ctx context.Context) ([]models.Quotation, error) {
	var quotations []models.Quotation
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&quotations).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	return quotations, nil
}

func (r *QuotationRepository) Get(ctx context.Context, id uuid.UUID) (*models.Quotation, error) {
	var quotation models.Quotation
	if err := r.db.WithContext(ctx).First(&quotation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	return &quotation, nil
}

// Create inserts a fresh quotation with status pending.
func (r *QuotationRepository) Create(ctx context.Context, quotation *models.Quotation) error {
	quotation.Status = models.QuotationStatusPending
	if err := r.db.WithContext(ctx).Create(quotation).Error; err != nil {
		return fmt.Errorf("failed to create quotation: %w", err)
	}
	return nil
}

func (r *QuotationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Quotation, error) {
	if !models.IsValidQuotationStatus(status) {
		return nil, fmt.Errorf("%w: unknown quotation status %q", ErrValidation, status)
	}

	res := r.db.WithContext(ctx).Model(&models.Quotation{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update quotation status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *QuotationRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*models.Quotation, error) {
	res := r.db.WithContext(ctx).Model(&models.Quotation{}).
		Where("id = ?", id).
		Update("admin_notes", notes)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update quotation notes: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}
