// Package persistence provides the gorm repository implementations for every aggregate.
// Multi-table writes (services with features, projects with images) run in a transaction,
// unique constraint violations surface as apperr.ErrConflict and missing rows as apperr.ErrNotFound.
package persistence
