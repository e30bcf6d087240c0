package ticket

import (
	"context"

	"caseline/internal/domain/records"
)

// Repository is the ticket store consumed by the creation workflow.
type Repository interface {
	// Create persists a new ticket record together with the creator's display
	// name and returns the assigned id.
	Create(ctx context.Context, rec records.Record, creatorName string) (uint, error)
	// FindByID returns the ticket with the given id, or nil when none exists.
	FindByID(ctx context.Context, id uint) (records.Record, error)
	// UpdateRead marks the ticket as read by the given identity.
	UpdateRead(ctx context.Context, id uint, openID string) error
}
