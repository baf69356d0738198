package users

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "token", "name", "email", "age", "version", "created_at", "updated_at"}

const testToken = "3f1c1c2e-8d55-4f0e-9d0a-2b8f3b9f6a11"

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func mustToken(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.MustParse(testToken)
}

func ts() time.Time {
	return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestInsert_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^INSERT\s+INTO\s+users\s*\(token,\s*name,\s*email,\s*age,\s*version,\s*created_at,\s*updated_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*1,\s*now\(\),\s*now\(\)\)\s*RETURNING\s+id`

	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "Ana", "ana@example.com", int64(30)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), testToken, "Ana", "ana@example.com", int64(30), int64(1), ts(), ts()))

	age := models.Age(30)
	got, err := repo.Insert(context.Background(), models.NewUser{Name: "Ana", Email: "ana@example.com", Age: &age})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, testToken, got.Token.String())
	assert.Equal(t, models.Email("ana@example.com"), got.Email)
	require.NotNil(t, got.Age)
	assert.Equal(t, models.Age(30), *got.Age)
	assert.Equal(t, int64(1), got.Version)
}

func TestInsert_NullAge(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WithArgs(sqlmock.AnyArg(), "Bob", "bob@example.com", nil).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(2), testToken, "Bob", "bob@example.com", nil, int64(1), ts(), ts()))

	got, err := repo.Insert(context.Background(), models.NewUser{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Nil(t, got.Age)
}

func TestInsert_UniqueViolation(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Insert(context.Background(), models.NewUser{Name: "Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, common.ErrUniqueViolation)
}

func TestInsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).WillReturnError(errors.New("db down"))

	_, err := repo.Insert(context.Background(), models.NewUser{Name: "Ana", Email: "ana@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknown)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestFindByID_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+id,\s*token,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(7), testToken, "Ana", "ana@example.com", nil, int64(3), ts(), ts()))

	got, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, int64(3), got.Version)
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+id`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFindByToken_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	u := mustToken(t)
	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+token\s*=\s*\$1`).
		WithArgs(u.String()).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(9), testToken, "Ana", "ana@example.com", nil, int64(1), ts(), ts()))

	got, err := repo.FindByToken(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, u, got.Token)
}

func TestFindByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+email\s*=\s*\$1`).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(9), testToken, "Ana", "ana@example.com", nil, int64(1), ts(), ts()))

	got, err := repo.FindByEmail(context.Background(), models.Email("ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE\s+email`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.FindByEmail(context.Background(), models.Email("nobody@example.com"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_UsesStartAndLimit(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)FROM\s+users\s+WHERE\s+id\s*>=\s*\$1\s+ORDER\s+BY\s+id\s+LIMIT\s+\$2`
	mock.ExpectQuery(q).
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(5), testToken, "A", "a@example.com", nil, int64(1), ts(), ts()).
			AddRow(int64(8), "5c6f1d53-0a7c-4bb8-9b8c-7c2b8a0f9e10", "B", "b@example.com", int64(20), int64(2), ts(), ts()))

	got, err := repo.List(context.Background(), models.ListFilter{StartID: 5, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(5), got[0].ID)
	assert.Equal(t, int64(8), got[1].ID)
}

func TestList_Empty(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+users`).WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background(), models.ListFilter{StartID: 0, PageSize: 50})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpdate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*COALESCE\(\$3,\s*name\),\s*age\s*=\s*COALESCE\(\$4,\s*age\),\s*version\s*=\s*version\s*\+\s*1,.*WHERE\s+id\s*=\s*\$1\s+AND\s+version\s*=\s*\$2`
	mock.ExpectQuery(q).
		WithArgs(int64(1), int64(1), "Ana B", nil).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), testToken, "Ana B", "ana@example.com", int64(30), int64(2), ts(), ts().Add(time.Second)))

	name := "Ana B"
	got, err := repo.Update(context.Background(), 1, 1, models.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana B", got.Name)
	assert.Equal(t, int64(2), got.Version)
}

func TestUpdate_StaleVersion(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`UPDATE\s+users`).
		WithArgs(int64(1), int64(1), "X", nil).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectQuery(`SELECT\s+EXISTS`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	name := "X"
	_, err := repo.Update(context.Background(), 1, 1, models.UserPatch{Name: &name})
	assert.ErrorIs(t, err, common.ErrVersionConflict)
}

func TestUpdate_Missing(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`UPDATE\s+users`).WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectQuery(`SELECT\s+EXISTS`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	age := models.Age(40)
	_, err := repo.Update(context.Background(), 3, 1, models.UserPatch{Age: &age})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s+AND\s+version\s*=\s*\$2$`).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1, 2))
}

func TestDelete_StaleVersion(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+users`).
		WithArgs(int64(1), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT\s+EXISTS`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	assert.ErrorIs(t, repo.Delete(context.Background(), 1, 1), common.ErrVersionConflict)
}

func TestDelete_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+users`).WillReturnError(errors.New("db err"))

	err := repo.Delete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, common.ErrUnknown)
}
