// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// UserRepository enumerates the user population.
type UserRepository interface {
	// ListUserIDs returns every known user ID. Users that only own
	// sub-records (settings or tokens) without a root record are included.
	ListUserIDs(ctx context.Context) ([]string, error)
}
