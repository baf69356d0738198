// Package repomanager vends user repositories and owns the transaction
// boundary the use-case layer runs its units of work in.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/hexplay/internal/server/repositories/users"
)

// TxFunc is a unit of work. The repository it receives is bound to the
// surrounding transaction and must not be used after the function returns.
type TxFunc func(ctx context.Context, users users.Repository) error

type RepositoryManager interface {
	// Users returns a repository outside of any transaction, for single-statement reads.
	Users() users.Repository
	// InTx runs fn in one transaction. It commits when fn returns nil and
	// rolls back on error, panic (which is re-raised) or context cancellation.
	InTx(ctx context.Context, fn TxFunc) error
	// InReadTx runs fn in a read-only transaction that sees one consistent
	// snapshot. Writes through the repository fail with common.ErrReadOnly.
	InReadTx(ctx context.Context, fn TxFunc) error
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
