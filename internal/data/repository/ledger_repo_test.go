package repository

import (
	"context"
	"errors"
	"testing"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// failingRow reports the same error on every Scan, standing in for a row
// read that the store rejects.
type failingRow struct {
	err error
}

func (r failingRow) Scan(dest ...any) error { return r.err }

type failingTx struct {
	pgx.Tx
	rowErr error
}

func (t failingTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return failingRow{err: t.rowErr}
}

func (t failingTx) Commit(ctx context.Context) error   { return nil }
func (t failingTx) Rollback(ctx context.Context) error { return nil }

// countingDB hands out failingTx transactions and counts how many were
// begun, which is how the tests observe the retry loop.
type countingDB struct {
	database.PgxIface
	rowErr error
	begins int
}

func (db *countingDB) Begin(ctx context.Context) (pgx.Tx, error) {
	db.begins++
	return failingTx{rowErr: db.rowErr}, nil
}

func TestLedgerRetriesSerializationConflictOnce(t *testing.T) {
	db := &countingDB{rowErr: &pgconn.PgError{Code: "40001"}}
	repo := NewLedgerRepository(db, zap.NewNop())

	err := repo.TransitionStatus(context.Background(), uuid.New(), entity.BookingStatusCancelled, nil)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict after retry, got %v", err)
	}
	if db.begins != 2 {
		t.Fatalf("expected exactly 2 transactions, got %d", db.begins)
	}
}

func TestLedgerRetriesDeadlockOnce(t *testing.T) {
	db := &countingDB{rowErr: &pgconn.PgError{Code: "40P01"}}
	repo := NewLedgerRepository(db, zap.NewNop())

	err := repo.DeleteBooking(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict after retry, got %v", err)
	}
	if db.begins != 2 {
		t.Fatalf("expected exactly 2 transactions, got %d", db.begins)
	}
}

func TestLedgerDoesNotRetryMissingBooking(t *testing.T) {
	db := &countingDB{rowErr: pgx.ErrNoRows}
	repo := NewLedgerRepository(db, zap.NewNop())

	err := repo.TransitionStatus(context.Background(), uuid.New(), entity.BookingStatusCancelled, nil)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
	if db.begins != 1 {
		t.Fatalf("expected a single transaction, got %d", db.begins)
	}
}

func TestLedgerDoesNotRetryOtherStoreErrors(t *testing.T) {
	db := &countingDB{rowErr: &pgconn.PgError{Code: "23505"}}
	repo := NewLedgerRepository(db, zap.NewNop())

	_, err := repo.CreateBooking(context.Background(), uuid.New(), &entity.Booking{})
	if err == nil {
		t.Fatalf("expected an error, got nil")
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("expected the raw store error, got ErrConflict: %v", err)
	}
	if db.begins != 1 {
		t.Fatalf("expected a single transaction, got %d", db.begins)
	}
}
