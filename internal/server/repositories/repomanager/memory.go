package repomanager

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/dmitrijs2005/hexplay/internal/server/repositories/users"
	"github.com/google/uuid"
)

// MemoryRepositoryManager keeps users in process memory. Write transactions
// are serialized and work on a private copy of the table that replaces the
// committed one only when the unit of work succeeds. Read-only transactions
// share the committed table under a read lock.
type MemoryRepositoryManager struct {
	mu    sync.RWMutex
	table *users.MemoryTable
}

// NewMemoryRepositoryManager uses now as the row clock; nil means time.Now.
func NewMemoryRepositoryManager(now func() time.Time) *MemoryRepositoryManager {
	return &MemoryRepositoryManager{table: users.NewMemoryTable(now)}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return &autoCommitRepository{m: m}
}

func (m *MemoryRepositoryManager) InTx(ctx context.Context, fn TxFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := m.table.Clone()
	if err := fn(ctx, users.NewMemoryRepository(work)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.table = work
	return nil
}

func (m *MemoryRepositoryManager) InReadTx(ctx context.Context, fn TxFunc) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(ctx, users.ReadOnlyRepository{Repository: users.NewMemoryRepository(m.table)}); err != nil {
		return err
	}
	return ctx.Err()
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) Ping(ctx context.Context) error { return ctx.Err() }

func (m *MemoryRepositoryManager) Close() error { return nil }

// autoCommitRepository runs every call as its own transaction. Reads go
// through InReadTx and never copy the table.
type autoCommitRepository struct {
	m *MemoryRepositoryManager
}

func (r *autoCommitRepository) Insert(ctx context.Context, nu models.NewUser) (u *models.User, err error) {
	err = r.m.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		u, err = repo.Insert(ctx, nu)
		return err
	})
	return u, err
}

func (r *autoCommitRepository) FindByID(ctx context.Context, id int64) (u *models.User, err error) {
	err = r.m.InReadTx(ctx, func(ctx context.Context, repo users.Repository) error {
		u, err = repo.FindByID(ctx, id)
		return err
	})
	return u, err
}

func (r *autoCommitRepository) FindByToken(ctx context.Context, token uuid.UUID) (u *models.User, err error) {
	err = r.m.InReadTx(ctx, func(ctx context.Context, repo users.Repository) error {
		u, err = repo.FindByToken(ctx, token)
		return err
	})
	return u, err
}

func (r *autoCommitRepository) FindByEmail(ctx context.Context, email models.Email) (u *models.User, err error) {
	err = r.m.InReadTx(ctx, func(ctx context.Context, repo users.Repository) error {
		u, err = repo.FindByEmail(ctx, email)
		return err
	})
	return u, err
}

func (r *autoCommitRepository) List(ctx context.Context, f models.ListFilter) (list []*models.User, err error) {
	err = r.m.InReadTx(ctx, func(ctx context.Context, repo users.Repository) error {
		list, err = repo.List(ctx, f)
		return err
	})
	return list, err
}

func (r *autoCommitRepository) Update(ctx context.Context, id, version int64, patch models.UserPatch) (u *models.User, err error) {
	err = r.m.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		u, err = repo.Update(ctx, id, version, patch)
		return err
	})
	return u, err
}

func (r *autoCommitRepository) Delete(ctx context.Context, id, version int64) error {
	return r.m.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		return repo.Delete(ctx, id, version)
	})
}
