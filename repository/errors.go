package repository

import "errors"

// Error taxonomy for catalog operations. Controllers map these onto HTTP
// statuses; nothing below is ever swallowed or substituted with a default.
var (
	// ErrDuplicateSlug: a create/update would collide with an existing slug
	// in the same collection (case-sensitive exact match).
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrHasChildren: a category delete is blocked by existing subcategories.
	ErrHasChildren = errors.New("cannot delete category with subcategories")

	// ErrNotFound: the operation targets a nonexistent id.
	ErrNotFound = errors.New("not found")

	// ErrValidation: the payload fails a domain rule (empty-valued option,
	// unknown parent, unknown status, ...).
	ErrValidation = errors.New("validation failed")
)
