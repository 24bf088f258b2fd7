package config

import "errors"

var (
	// ErrCategoryNotFound is returned when a category key is not registered.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrProviderNotFound is returned when a provider name is not registered.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrStyleNotFound is returned when a summary style is not registered.
	ErrStyleNotFound = errors.New("summary style not found")

	// ErrDependencyCycle is returned when the category dependency graph
	// contains a cycle.
	ErrDependencyCycle = errors.New("category dependency cycle")

	// ErrUnknownDependency is returned when a category depends on a key
	// that is not registered.
	ErrUnknownDependency = errors.New("unknown category dependency")
)
