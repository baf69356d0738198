// Package users contains the storage port for the User entity and its
// PostgreSQL and in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/google/uuid"
)

// Repository is the user storage port. Implementations report failures with
// the storage error classes from the common package.
type Repository interface {
	// Insert assigns id, token, version 1 and timestamps.
	Insert(ctx context.Context, nu models.NewUser) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByToken(ctx context.Context, token uuid.UUID) (*models.User, error)
	// FindByEmail expects an address already normalized by models.NewEmail.
	FindByEmail(ctx context.Context, email models.Email) (*models.User, error)
	// List returns up to PageSize users with id >= StartID, ordered by id.
	List(ctx context.Context, f models.ListFilter) ([]*models.User, error)
	// Update applies patch only if the stored version equals version.
	Update(ctx context.Context, id, version int64, patch models.UserPatch) (*models.User, error)
	// Delete removes the user only if the stored version equals version.
	Delete(ctx context.Context, id, version int64) error
}
