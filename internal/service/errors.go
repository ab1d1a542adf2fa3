package service

import "errors"

var (
	// ErrValidation marks a request rejected for a missing or malformed
	// field. Wrapped with a field-specific message at each check site.
	ErrValidation = errors.New("validation failed")

	// ErrCategoryConflict is returned when renaming a budget to a
	// category the user already has a budget for.
	ErrCategoryConflict = errors.New("a budget for this category already exists")
)
