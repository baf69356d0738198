package users

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/google/uuid"
)

// MemoryTable is the in-memory users table. It is not safe for concurrent
// use; callers serialize access and use Clone to get a private working copy.
type MemoryTable struct {
	rows   map[int64]*models.User
	nextID int64
	now    func() time.Time
}

func NewMemoryTable(now func() time.Time) *MemoryTable {
	if now == nil {
		now = time.Now
	}
	return &MemoryTable{rows: make(map[int64]*models.User), now: now}
}

// Clone returns a deep copy that can be changed without affecting t.
func (t *MemoryTable) Clone() *MemoryTable {
	c := &MemoryTable{rows: make(map[int64]*models.User, len(t.rows)), nextID: t.nextID, now: t.now}
	for id, u := range t.rows {
		c.rows[id] = u.Clone()
	}
	return c
}

// MemoryRepository implements Repository over a MemoryTable.
type MemoryRepository struct {
	t *MemoryTable
}

func NewMemoryRepository(t *MemoryTable) *MemoryRepository {
	return &MemoryRepository{t: t}
}

func (r *MemoryRepository) Insert(ctx context.Context, nu models.NewUser) (*models.User, error) {
	token := uuid.New()
	for _, u := range r.t.rows {
		if u.Email == nu.Email || u.Token == token {
			return nil, common.ErrUniqueViolation
		}
	}

	r.t.nextID++
	now := r.t.now().UTC()
	u := &models.User{
		ID:        r.t.nextID,
		Token:     token,
		Name:      nu.Name,
		Email:     nu.Email,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if nu.Age != nil {
		a := *nu.Age
		u.Age = &a
	}
	r.t.rows[u.ID] = u

	return u.Clone(), nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.t.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u.Clone(), nil
}

func (r *MemoryRepository) FindByToken(ctx context.Context, token uuid.UUID) (*models.User, error) {
	for _, u := range r.t.rows {
		if u.Token == token {
			return u.Clone(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email models.Email) (*models.User, error) {
	for _, u := range r.t.rows {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) List(ctx context.Context, f models.ListFilter) ([]*models.User, error) {
	ids := make([]int64, 0, len(r.t.rows))
	for id := range r.t.rows {
		if id >= f.StartID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > f.PageSize {
		ids = ids[:f.PageSize]
	}

	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, r.t.rows[id].Clone())
	}
	return users, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id, version int64, patch models.UserPatch) (*models.User, error) {
	cur, err := r.guard(id, version)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(cur)
	next.Version = cur.Version + 1
	next.UpdatedAt = r.t.now().UTC()
	if !next.UpdatedAt.After(cur.UpdatedAt) {
		next.UpdatedAt = cur.UpdatedAt.Add(time.Microsecond)
	}
	r.t.rows[id] = next

	return next.Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, version int64) error {
	if _, err := r.guard(id, version); err != nil {
		return err
	}
	delete(r.t.rows, id)
	return nil
}

// ReadOnlyRepository serves the reads of a Repository and fails every write
// with common.ErrReadOnly.
type ReadOnlyRepository struct {
	Repository
}

func (ReadOnlyRepository) Insert(context.Context, models.NewUser) (*models.User, error) {
	return nil, common.ErrReadOnly
}

func (ReadOnlyRepository) Update(context.Context, int64, int64, models.UserPatch) (*models.User, error) {
	return nil, common.ErrReadOnly
}

func (ReadOnlyRepository) Delete(context.Context, int64, int64) error {
	return common.ErrReadOnly
}

func (r *MemoryRepository) guard(id, version int64) (*models.User, error) {
	cur, ok := r.t.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if cur.Version != version {
		return nil, common.ErrVersionConflict
	}
	return cur, nil
}
