// Package services holds the use cases of the server. Each use case runs its
// storage steps inside one transaction scope from the repository manager.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/dmitrijs2005/hexplay/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hexplay/internal/server/repositories/users"
	"github.com/google/uuid"
)

// Users is the inbound port the transports call. *UserService implements it.
type Users interface {
	Create(ctx context.Context, in CreateUser) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, startID int64, pageSize int) ([]*models.User, error)
	Update(ctx context.Context, id, version int64, in UpdateUser) (*models.User, error)
	Delete(ctx context.Context, id, version int64) (*models.User, error)
}

// CreateUser is raw creation input as received by a transport.
type CreateUser struct {
	Name  string
	Email string
	Age   *int
}

// UpdateUser is raw update input. Nil fields are left unchanged.
// Email is immutable; a non-nil Email is rejected.
type UpdateUser struct {
	Name  *string
	Email *string
	Age   *int
}

type UserService struct {
	repomanager repomanager.RepositoryManager
}

func NewUserService(m repomanager.RepositoryManager) *UserService {
	return &UserService{repomanager: m}
}

// Create validates the input before any transaction is opened.
func (s *UserService) Create(ctx context.Context, in CreateUser) (*models.User, error) {
	nu, err := models.BuildNewUser(in.Name, in.Email, in.Age)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.repomanager.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		user, err = repo.Insert(ctx, nu)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	if id < 0 {
		return nil, common.ErrInvalidID
	}
	return s.repomanager.Users().FindByID(ctx, id)
}

func (s *UserService) GetByToken(ctx context.Context, token string) (*models.User, error) {
	t, err := uuid.Parse(token)
	if err != nil {
		return nil, common.NewValidationError("token", "must be a UUID")
	}
	return s.repomanager.Users().FindByToken(ctx, t)
}

// GetByEmail normalizes email the way Create stores it before the lookup.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	e, err := models.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Users().FindByEmail(ctx, e)
}

// List returns users with id >= startID ordered by id. pageSize is capped at
// common.MaxPageSize. The page is read from one read-only snapshot.
func (s *UserService) List(ctx context.Context, startID int64, pageSize int) ([]*models.User, error) {
	if startID < 0 {
		return nil, common.ErrInvalidID
	}
	if pageSize < 1 {
		return nil, common.ErrInvalidPageSize
	}
	if pageSize > common.MaxPageSize {
		pageSize = common.MaxPageSize
	}

	var list []*models.User
	err := s.repomanager.InReadTx(ctx, func(ctx context.Context, repo users.Repository) error {
		var err error
		list, err = repo.List(ctx, models.ListFilter{StartID: startID, PageSize: pageSize})
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *UserService) Update(ctx context.Context, id, version int64, in UpdateUser) (*models.User, error) {
	if id < 0 {
		return nil, common.ErrInvalidID
	}
	if in.Email != nil {
		return nil, common.NewValidationError("email", "cannot be changed")
	}
	patch, err := models.BuildUserPatch(in.Name, in.Age)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.repomanager.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		if _, err := fetchVersioned(ctx, repo, id, version); err != nil {
			return err
		}
		user, err = repo.Update(ctx, id, version, patch)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}

	return user, nil
}

// Delete removes the user and returns the record as it was before deletion.
func (s *UserService) Delete(ctx context.Context, id, version int64) (*models.User, error) {
	if id < 0 {
		return nil, common.ErrInvalidID
	}

	var deleted *models.User
	err := s.repomanager.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		cur, err := fetchVersioned(ctx, repo, id, version)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, id, version); err != nil {
			return err
		}
		deleted = cur
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	return deleted, nil
}

// fetchVersioned loads the user and checks the caller's expected version.
// Storage re-checks the version on write, so a concurrent change between the
// two steps still ends in a conflict.
func fetchVersioned(ctx context.Context, repo users.Repository, id, version int64) (*models.User, error) {
	cur, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.Version != version {
		return nil, common.ErrVersionConflict
	}
	return cur, nil
}

func translate(err error) error {
	if errors.Is(err, common.ErrUniqueViolation) {
		return fmt.Errorf("%w: %w", common.ErrConflict, err)
	}
	return err
}
