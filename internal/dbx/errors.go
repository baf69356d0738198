package dbx

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes Classify understands.
const (
	uniqueViolationCode  = "23505"
	readOnlyTxnErrorCode = "25006"
)

// Classify maps a raw driver error onto the storage error classes in common.
// Errors that are already classified, and context errors, pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if isClassified(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("db error: %w: %s", common.ErrUniqueViolation, pgErr.ConstraintName)
		case readOnlyTxnErrorCode:
			return fmt.Errorf("db error: %w", common.ErrReadOnly)
		}
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("db error: %w: %w", common.ErrConnectionFailure, err)
	}

	return fmt.Errorf("db error: %w: %w", common.ErrUnknown, err)
}

func isClassified(err error) bool {
	for _, target := range []error{
		common.ErrNotFound,
		common.ErrVersionConflict,
		common.ErrUniqueViolation,
		common.ErrConnectionFailure,
		common.ErrReadOnly,
		common.ErrUnknown,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
