package repository

import (
	"context"
	"errors"
	"fmt"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// LedgerRepository is the only component allowed to mutate a class's
// booked_slots, always atomically with the matching booking write. Every
// operation is one transaction that performs all of its reads before any
// write, locking the rows it read, and is retried once on a serialization
// conflict before failing with ErrConflict.
type LedgerRepository interface {
	// CreateBooking re-checks capacity inside the transaction, increments
	// booked_slots and inserts the booking with a snapshot of the class
	// fields taken from the same transactional read.
	CreateBooking(ctx context.Context, classID uuid.UUID, booking *entity.Booking) (uuid.UUID, error)

	// TransitionStatus sets the booking's status. When the prior status held
	// a slot, the new status is cancelled and the class (if given and still
	// present) has a positive counter, booked_slots is decremented once.
	// Repeating a transition writes the status again but never decrements
	// twice.
	TransitionStatus(ctx context.Context, bookingID uuid.UUID, newStatus entity.BookingStatus, classID *uuid.UUID) error

	// DeleteBooking removes the booking and releases its slot when the
	// booking still occupied one, clamped at zero.
	DeleteBooking(ctx context.Context, bookingID uuid.UUID, classID *uuid.UUID) error
}

type ledgerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLedgerRepository(db database.PgxIface, log *zap.Logger) LedgerRepository {
	return &ledgerRepository{
		db:  db,
		log: log.With(zap.String("repository", "ledger")),
	}
}

func (r *ledgerRepository) CreateBooking(ctx context.Context, classID uuid.UUID, booking *entity.Booking) (uuid.UUID, error) {
	err := r.inTx(ctx, "create booking", func(tx pgx.Tx) error {
		// ---- reads ----
		class, err := classForUpdate(ctx, tx, classID)
		if err != nil {
			return err
		}
		if class == nil {
			return ErrClassNotFound
		}
		if !class.HasOpenSlots() {
			return ErrClassFull
		}

		// ---- writes ----
		if _, err := tx.Exec(ctx,
			`UPDATE classes SET booked_slots = booked_slots + 1, updated_at = NOW() WHERE id = $1`,
			class.ID,
		); err != nil {
			return fmt.Errorf("increment booked slots: %w", err)
		}

		// Snapshot from the in-transaction read, not from any cached copy.
		booking.ClassID = class.ID
		booking.ClassTitle = class.Title
		booking.InstructorID = class.InstructorID
		booking.ClassDate = class.Date
		booking.ClassStartTime = class.StartTime
		booking.ClassEndTime = class.EndTime

		if _, err := tx.Exec(ctx, `
			INSERT INTO bookings (id, first_name, last_name, email, phone, class_id, class_title, instructor_id, class_date, class_start_time, class_end_time, notes, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`,
			booking.ID,
			booking.FirstName,
			booking.LastName,
			booking.Email,
			booking.Phone,
			booking.ClassID,
			booking.ClassTitle,
			booking.InstructorID,
			booking.ClassDate,
			booking.ClassStartTime,
			booking.ClassEndTime,
			booking.Notes,
			booking.Status,
			booking.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	r.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("class_id", classID.String()),
	)
	return booking.ID, nil
}

func (r *ledgerRepository) TransitionStatus(ctx context.Context, bookingID uuid.UUID, newStatus entity.BookingStatus, classID *uuid.UUID) error {
	return r.inTx(ctx, "transition booking status", func(tx pgx.Tx) error {
		// ---- reads ----
		booking, err := bookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		// The class may have been deleted since the booking was made; that
		// is tolerated and simply leaves nothing to decrement.
		var class *entity.Class
		if classID != nil {
			class, err = classForUpdate(ctx, tx, *classID)
			if err != nil {
				return err
			}
		}

		if booking.Status != newStatus && !entity.CanTransition(booking.Status, newStatus) {
			return fmt.Errorf("%s to %s: %w", booking.Status, newStatus, ErrInvalidTransition)
		}

		// ---- writes ----
		if _, err := tx.Exec(ctx,
			`UPDATE bookings SET status = $2 WHERE id = $1`,
			booking.ID, newStatus,
		); err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}

		plan := entity.PlanStatusChange(booking.Status, newStatus, class)
		if plan.Decrement {
			if _, err := tx.Exec(ctx,
				`UPDATE classes SET booked_slots = booked_slots - 1, updated_at = NOW() WHERE id = $1`,
				class.ID,
			); err != nil {
				return fmt.Errorf("decrement booked slots: %w", err)
			}
		}

		return nil
	})
}

func (r *ledgerRepository) DeleteBooking(ctx context.Context, bookingID uuid.UUID, classID *uuid.UUID) error {
	return r.inTx(ctx, "delete booking", func(tx pgx.Tx) error {
		// ---- reads ----
		booking, err := bookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		var class *entity.Class
		if classID != nil {
			class, err = classForUpdate(ctx, tx, *classID)
			if err != nil {
				return err
			}
		}

		// ---- writes ----
		if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, booking.ID); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}

		plan := entity.PlanDeletion(booking.Status, class)
		if plan.Decrement {
			if _, err := tx.Exec(ctx,
				`UPDATE classes SET booked_slots = booked_slots - 1, updated_at = NOW() WHERE id = $1`,
				class.ID,
			); err != nil {
				return fmt.Errorf("decrement booked slots: %w", err)
			}
		}

		return nil
	})
}

// inTx runs fn inside a transaction, retrying once when the store reports a
// serialization conflict.
func (r *ledgerRepository) inTx(ctx context.Context, operation string, fn func(pgx.Tx) error) error {
	var err error
	for attempt := 1; attempt <= 2; attempt++ {
		err = r.attempt(ctx, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
		if attempt == 1 {
			r.log.Warn("Transaction conflict, retrying",
				zap.String("operation", operation),
				zap.Error(err),
			)
		}
	}

	r.log.Error("Transaction conflict after retry",
		zap.String("operation", operation),
		zap.Error(err),
	)
	return fmt.Errorf("%s: %w", operation, ErrConflict)
}

func (r *ledgerRepository) attempt(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// classForUpdate reads and locks the class row. Returns nil when the class
// does not exist.
func classForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1 FOR UPDATE`

	class, err := scanClass(tx.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock class row %s: %w", id.String(), err)
	}
	return class, nil
}

// bookingForUpdate reads and locks the booking row. Returns nil when the
// booking does not exist.
func bookingForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	booking, err := scanBooking(tx.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock booking row %s: %w", id.String(), err)
	}
	return booking, nil
}
