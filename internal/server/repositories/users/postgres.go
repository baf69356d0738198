package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/dbx"
	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/google/uuid"
)

const userColumns = `id, token, name, email, age, version, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, nu models.NewUser) (*models.User, error) {
	query :=
		`INSERT INTO users (token, name, email, age, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 1, now(), now())
		 RETURNING ` + userColumns

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, uuid.New(), nu.Name, nu.Email.String(), nullAge(nu.Age))
	if err != nil {
		return nil, dbx.Classify(err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) FindByToken(ctx context.Context, token uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE token = $1`
	return r.getOne(ctx, query, token)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email models.Email) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email.String())
}

func (r *PostgresRepository) List(ctx context.Context, f models.ListFilter) ([]*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE id >= $1
		 ORDER BY id
		 LIMIT $2`

	users := make([]*models.User, 0, f.PageSize)
	if err := r.db.SelectContext(ctx, &users, query, f.StartID, f.PageSize); err != nil {
		return nil, dbx.Classify(err)
	}

	return users, nil
}

// Update bumps version by one and keeps updated_at strictly increasing even
// when the server clock does not move between two writes.
func (r *PostgresRepository) Update(ctx context.Context, id, version int64, patch models.UserPatch) (*models.User, error) {
	query :=
		`UPDATE users
		 SET name = COALESCE($3, name),
		     age = COALESCE($4, age),
		     version = version + 1,
		     updated_at = GREATEST(now(), updated_at + interval '1 microsecond')
		 WHERE id = $1 AND version = $2
		 RETURNING ` + userColumns

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, id, version, nullString(patch.Name), nullAge(patch.Age))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.missReason(ctx, id)
		}
		return nil, dbx.Classify(err)
	}

	return user, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, version int64) error {
	query := `DELETE FROM users WHERE id = $1 AND version = $2`

	res, err := r.db.ExecContext(ctx, query, id, version)
	if err != nil {
		return dbx.Classify(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return dbx.Classify(err)
	}
	if n == 0 {
		return r.missReason(ctx, id)
	}

	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, dbx.Classify(err)
	}
	return user, nil
}

// missReason tells apart a missing row from a stale version after a
// version-guarded write matched nothing.
func (r *PostgresRepository) missReason(ctx context.Context, id int64) error {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id); err != nil {
		return dbx.Classify(err)
	}
	if !exists {
		return common.ErrNotFound
	}
	return common.ErrVersionConflict
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullAge(a *models.Age) sql.NullInt16 {
	if a == nil {
		return sql.NullInt16{}
	}
	return sql.NullInt16{Int16: int16(*a), Valid: true}
}
