// Package profile defines the storage contracts for IP and SP profile
// records. Exactly one profile may exist per (role, openid) pair; that
// invariant is enforced by a lookup before create, not by a storage-level
// uniqueness constraint.
package profile

import (
	"context"

	"caseline/internal/domain/records"
)

// Repository is the kind-specific profile store. Separate instances back the
// IP and SP tables.
type Repository interface {
	// FindByOpenID returns the profile owned by the given external identity,
	// or nil when none exists.
	FindByOpenID(ctx context.Context, openID string) (records.Record, error)
	// FindByID returns the profile with the given id, or nil when none exists.
	FindByID(ctx context.Context, id uint) (records.Record, error)
	// Find returns all profiles of this kind, unfiltered.
	Find(ctx context.Context) ([]records.Record, error)
	// Create persists a new profile record and returns its assigned id.
	Create(ctx context.Context, rec records.Record) (uint, error)
	// Update persists changes to the profile with the given id and fails with
	// a record-not-found error when no such record exists.
	Update(ctx context.Context, id uint, rec records.Record) error
}

// DeleteService removes profiles by id, per kind. Each call fails with a
// record-not-found error when the id does not exist.
type DeleteService interface {
	DeleteIP(ctx context.Context, id uint) error
	DeleteSP(ctx context.Context, id uint) error
}
