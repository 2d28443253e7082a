package repository

import (
	"errors"

	"fablab-booking/pkg/database"

	"go.uber.org/zap"
)

// ErrDateAlreadyBooked is returned when the transactional guard on the
// hall's booked_dates refuses a submission. Exactly one of two concurrent
// submissions for the same hall and date can commit.
var ErrDateAlreadyBooked = errors.New("date already booked")

type Repository struct {
	User    UserRepository
	Hall    HallRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Hall:    NewHallRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
