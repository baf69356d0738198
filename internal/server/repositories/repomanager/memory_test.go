package repomanager

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/dmitrijs2005/hexplay/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insert(t *testing.T, m *MemoryRepositoryManager, email string) *models.User {
	t.Helper()
	u, err := m.Users().Insert(context.Background(), models.NewUser{Name: "n", Email: models.Email(email)})
	require.NoError(t, err)
	return u
}

func count(t *testing.T, m *MemoryRepositoryManager) int {
	t.Helper()
	list, err := m.Users().List(context.Background(), models.ListFilter{PageSize: 100})
	require.NoError(t, err)
	return len(list)
}

func TestMemory_ImplementsManager(t *testing.T) {
	var _ RepositoryManager = NewMemoryRepositoryManager(nil)
}

func TestMemory_InTxCommits(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)

	err := m.InTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
		_, err := repo.Insert(ctx, models.NewUser{Name: "a", Email: "a@x.io"})
		if err != nil {
			return err
		}
		_, err = repo.Insert(ctx, models.NewUser{Name: "b", Email: "b@x.io"})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count(t, m))
}

func TestMemory_InTxRollsBackOnError(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)
	insert(t, m, "a@x.io")

	boom := errors.New("boom")
	err := m.InTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
		if _, err := repo.Insert(ctx, models.NewUser{Name: "b", Email: "b@x.io"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, count(t, m), "no partial writes may be visible")
}

func TestMemory_InTxRollsBackOnPanic(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)

	assert.Panics(t, func() {
		_ = m.InTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
			_, _ = repo.Insert(ctx, models.NewUser{Name: "b", Email: "b@x.io"})
			panic("kaput")
		})
	})
	assert.Equal(t, 0, count(t, m))
}

func TestMemory_InTxRollsBackOnCancel(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)
	ctx, cancel := context.WithCancel(context.Background())

	err := m.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		_, err := repo.Insert(ctx, models.NewUser{Name: "b", Email: "b@x.io"})
		cancel()
		return err
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, count(t, m))
}

func TestMemory_InTxRejectsCanceledContext(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemory_ConcurrentUpdatesSameVersion(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)
	u := insert(t, m, "ana@x.io")

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := "writer"
			_, err := m.Users().Update(context.Background(), u.ID, u.Version, models.UserPatch{Name: &name})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrVersionConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)

	got, err := m.Users().FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
}

func TestMemory_InReadTxRejectsWrites(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)
	u := insert(t, m, "ana@x.io")

	err := m.InReadTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
		_, err := repo.Insert(ctx, models.NewUser{Name: "b", Email: "b@x.io"})
		return err
	})
	assert.ErrorIs(t, err, common.ErrReadOnly)

	name := "changed"
	err = m.InReadTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
		_, err := repo.Update(ctx, u.ID, u.Version, models.UserPatch{Name: &name})
		return err
	})
	assert.ErrorIs(t, err, common.ErrReadOnly)

	err = m.InReadTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
		return repo.Delete(ctx, u.ID, u.Version)
	})
	assert.ErrorIs(t, err, common.ErrReadOnly)

	got, err := m.Users().FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Equal(t, 1, count(t, m))
}

func TestMemory_InReadTxSeesCommittedRows(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)
	a := insert(t, m, "a@x.io")
	insert(t, m, "b@x.io")

	err := m.InReadTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
		got, err := repo.FindByEmail(ctx, "a@x.io")
		if err != nil {
			return err
		}
		assert.Equal(t, a.ID, got.ID)

		list, err := repo.List(ctx, models.ListFilter{PageSize: 10})
		if err != nil {
			return err
		}
		assert.Len(t, list, 2)
		return nil
	})
	require.NoError(t, err)
}

func TestMemory_InReadTxRejectsCanceledContext(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.InReadTx(ctx, func(ctx context.Context, repo users.Repository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemory_ReadsReturnCopies(t *testing.T) {
	m := NewMemoryRepositoryManager(nil)
	u := insert(t, m, "ana@x.io")

	got, err := m.Users().FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := m.Users().FindByEmail(context.Background(), "ana@x.io")
	require.NoError(t, err)
	assert.Equal(t, "n", again.Name)
}
