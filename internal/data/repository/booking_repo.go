package repository

import (
	"context"
	"fmt"
	"time"

	"fablab-booking/internal/data/entity"
	"fablab-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateWithDateClaim inserts the booking and appends its date to the
	// hall's booked_dates in one transaction. The append is guarded so that
	// a date can only be claimed once; a lost race surfaces as
	// ErrDateAlreadyBooked and nothing is written.
	CreateWithDateClaim(ctx context.Context, booking *entity.Booking) error

	// CancelWithDateRelease marks the booking cancelled and removes its date
	// from the hall's booked_dates in one transaction.
	CancelWithDateRelease(ctx context.Context, booking *entity.Booking) error

	// Decide applies an admin accept/reject to a pending booking. Rejection
	// releases the claimed date.
	Decide(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, hall_id, hall_name, hourly_rate, user_id, user_email,
	user_name, booking_date, start_time, end_time, duration, attendees, purpose, status,
	total_cost, cancelled_at, cancellation_reason, rejected_at, rejection_reason,
	created_at, updated_at`

// claimDateQuery appends the date only when the hall is open for booking and
// the date is not yet present. Zero rows affected means the claim failed.
const claimDateQuery = `
	UPDATE halls
	SET booked_dates = array_append(booked_dates, $2), updated_at = NOW()
	WHERE id = $1 AND is_available AND NOT (booked_dates @> ARRAY[$2]::text[])
`

const releaseDateQuery = `
	UPDATE halls
	SET booked_dates = array_remove(booked_dates, $2), updated_at = NOW()
	WHERE id = $1
`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.HallID,
		&b.HallName,
		&b.HourlyRate,
		&b.UserID,
		&b.UserEmail,
		&b.UserName,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.Duration,
		&b.Attendees,
		&b.Purpose,
		&b.Status,
		&b.TotalCost,
		&b.CancelledAt,
		&b.CancellationReason,
		&b.RejectedAt,
		&b.RejectionReason,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CreateWithDateClaim(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	claim, err := tx.Exec(ctx, claimDateQuery, booking.HallID, booking.BookingDate)
	if err != nil {
		r.log.Error("Failed to claim booking date",
			zap.Error(err),
			zap.String("hall_id", booking.HallID.String()),
			zap.String("date", booking.BookingDate),
		)
		return fmt.Errorf("claim date %s: %w", booking.BookingDate, err)
	}
	if claim.RowsAffected() == 0 {
		return ErrDateAlreadyBooked
	}

	insert := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22)
	`

	_, err = tx.Exec(ctx, insert,
		booking.ID,
		booking.Reference,
		booking.HallID,
		booking.HallName,
		booking.HourlyRate,
		booking.UserID,
		booking.UserEmail,
		booking.UserName,
		booking.BookingDate,
		booking.StartTime,
		booking.EndTime,
		booking.Duration,
		booking.Attendees,
		booking.Purpose,
		booking.Status,
		booking.TotalCost,
		booking.CancelledAt,
		booking.CancellationReason,
		booking.RejectedAt,
		booking.RejectionReason,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
		)
		return fmt.Errorf("insert booking %s: %w", booking.Reference, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) CancelWithDateRelease(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cancel transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	update := `
		UPDATE bookings
		SET status = $2, cancelled_at = $3, cancellation_reason = $4, updated_at = $5
		WHERE id = $1 AND status IN ('pending', 'accepted')
	`

	result, err := tx.Exec(ctx, update,
		booking.ID,
		entity.BookingStatusCancelled,
		booking.CancelledAt,
		booking.CancellationReason,
		time.Now(),
	)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("cancel booking %s: %w", booking.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not cancellable", booking.ID.String())
	}

	if _, err := tx.Exec(ctx, releaseDateQuery, booking.HallID, booking.BookingDate); err != nil {
		r.log.Error("Failed to release booked date",
			zap.Error(err),
			zap.String("hall_id", booking.HallID.String()),
			zap.String("date", booking.BookingDate),
		)
		return fmt.Errorf("release date %s: %w", booking.BookingDate, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cancel %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) Decide(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin decide transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	update := `
		UPDATE bookings
		SET status = $2, rejected_at = $3, rejection_reason = $4, updated_at = $5
		WHERE id = $1 AND status = 'pending'
	`

	result, err := tx.Exec(ctx, update,
		booking.ID,
		booking.Status,
		booking.RejectedAt,
		booking.RejectionReason,
		time.Now(),
	)
	if err != nil {
		r.log.Error("Failed to decide booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("status", string(booking.Status)),
		)
		return fmt.Errorf("decide booking %s: %w", booking.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s is not pending", booking.ID.String())
	}

	// A rejected booking no longer holds its date.
	if booking.Status == entity.BookingStatusRejected {
		if _, err := tx.Exec(ctx, releaseDateQuery, booking.HallID, booking.BookingDate); err != nil {
			r.log.Error("Failed to release date on rejection",
				zap.Error(err),
				zap.String("hall_id", booking.HallID.String()),
				zap.String("date", booking.BookingDate),
			)
			return fmt.Errorf("release date %s: %w", booking.BookingDate, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit decide %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY booking_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}
