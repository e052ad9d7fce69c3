package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// GenerateVariants expands the options into the full cartesian product of
// purchasable variants. Option order is the outer-to-inner iteration order
// and value order within each option is preserved, so the output ordering is
// deterministic. Every generated variant is seeded with the base price and
// base stock and an empty sku; its title joins the English value names with
// " / " in option order.
//
// The result always replaces the previous variant list wholesale: per-variant
// edits made on old variants do not survive regeneration.
func GenerateVariants(options []models.ProductOption, basePrice float64, baseStock int) ([]models.ProductVariant, error) {
	if len(options) == 0 {
		return nil, nil
	}

	for _, opt := range options {
		if len(opt.Values) == 0 {
			return nil, fmt.Errorf("%w: option %q has no values", repository.ErrValidation, opt.Name.En)
		}
	}

	type pick struct {
		optionID string
		value    models.OptionValue
	}

	// Cartesian product, first option varying slowest
	combos := [][]pick{{}}
	for _, opt := range options {
		next := make([][]pick, 0, len(combos)*len(opt.Values))
		for _, combo := range combos {
			for _, val := range opt.Values {
				extended := make([]pick, len(combo), len(combo)+1)
				copy(extended, combo)
				extended = append(extended, pick{optionID: opt.ID, value: val})
				next = append(next, extended)
			}
		}
		combos = next
	}

	variants := make([]models.ProductVariant, 0, len(combos))
	for _, combo := range combos {
		selection := make(map[string]string, len(combo))
		titleParts := make([]string, 0, len(combo))
		for _, p := range combo {
			selection[p.optionID] = p.value.ID
			titleParts = append(titleParts, p.value.Name.En)
		}
		variants = append(variants, models.ProductVariant{
			ID:      uuid.NewString(),
			Title:   strings.Join(titleParts, " / "),
			Options: selection,
			Price:   basePrice,
			Stock:   baseStock,
			SKU:     "",
		})
	}
	return variants, nil
}

// VariantsMatchOptions reports whether every variant carries exactly one
// entry per currently-defined option, with value ids that belong to that
// option. A list that fails this check is stale and must be regenerated.
func VariantsMatchOptions(options []models.ProductOption, variants []models.ProductVariant) bool {
	if len(options) == 0 {
		return len(variants) == 0
	}
	if len(variants) == 0 {
		return false
	}

	valuesByOption := make(map[string]map[string]bool, len(options))
	for _, opt := range options {
		vals := make(map[string]bool, len(opt.Values))
		for _, v := range opt.Values {
			vals[v.ID] = true
		}
		valuesByOption[opt.ID] = vals
	}

	for _, variant := range variants {
		if len(variant.Options) != len(options) {
			return false
		}
		for optionID, valueID := range variant.Options {
			vals, ok := valuesByOption[optionID]
			if !ok || !vals[valueID] {
				return false
			}
		}
	}
	return true
}
