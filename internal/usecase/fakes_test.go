package usecase

import (
	"context"
	"fmt"
	"sync"

	"fablab-booking/internal/data/entity"
	"fablab-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. The booking fake reproduces the transactional
// date-claim contract: the claim consults the authoritative hall state, so a
// caller holding a stale hall read still loses the race.

func testRepository(halls *fakeHallRepo, bookings *fakeBookingRepo) *repository.Repository {
	return &repository.Repository{
		User:    newFakeUserRepo(),
		Hall:    halls,
		Booking: bookings,
	}
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeHallRepo struct {
	mu     sync.Mutex
	halls  map[uuid.UUID]*entity.Hall
	frozen map[uuid.UUID]*entity.Hall
}

func newFakeHallRepo(halls ...*entity.Hall) *fakeHallRepo {
	r := &fakeHallRepo{halls: make(map[uuid.UUID]*entity.Hall)}
	for _, h := range halls {
		r.halls[h.ID] = h
	}
	return r
}

func copyHall(h *entity.Hall) *entity.Hall {
	cp := *h
	cp.Equipment = append([]string(nil), h.Equipment...)
	cp.Images = append([]string(nil), h.Images...)
	cp.BookedDates = append([]string(nil), h.BookedDates...)
	return &cp
}

// freeze pins FindByID to a snapshot of the current state. Subsequent writes
// still hit the live state, so readers see a stale calendar, the way a second
// browser tab does.
func (r *fakeHallRepo) freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = make(map[uuid.UUID]*entity.Hall, len(r.halls))
	for id, h := range r.halls {
		r.frozen[id] = copyHall(h)
	}
}

func (r *fakeHallRepo) Create(_ context.Context, hall *entity.Hall) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.halls[hall.ID] = copyHall(hall)
	return nil
}

func (r *fakeHallRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Hall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	source := r.halls
	if r.frozen != nil {
		source = r.frozen
	}
	h, ok := source[id]
	if !ok {
		return nil, nil
	}
	return copyHall(h), nil
}

func (r *fakeHallRepo) FindAll(_ context.Context, availableOnly bool) ([]*entity.Hall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var halls []*entity.Hall
	for _, h := range r.halls {
		if availableOnly && !h.IsAvailable {
			continue
		}
		halls = append(halls, copyHall(h))
	}
	return halls, nil
}

func (r *fakeHallRepo) Update(_ context.Context, hall *entity.Hall) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.halls[hall.ID]; !ok {
		return fmt.Errorf("hall %s not found", hall.ID.String())
	}
	updated := copyHall(hall)
	updated.BookedDates = r.halls[hall.ID].BookedDates
	r.halls[hall.ID] = updated
	return nil
}

func (r *fakeHallRepo) SetAvailability(_ context.Context, id uuid.UUID, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.halls[id]
	if !ok {
		return fmt.Errorf("hall %s not found", id.String())
	}
	h.IsAvailable = available
	return nil
}

type fakeBookingRepo struct {
	halls    *fakeHallRepo
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo(halls *fakeHallRepo, bookings ...*entity.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{
		halls:    halls,
		bookings: make(map[uuid.UUID]*entity.Booking),
	}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) CreateWithDateClaim(_ context.Context, booking *entity.Booking) error {
	r.halls.mu.Lock()
	defer r.halls.mu.Unlock()

	hall, ok := r.halls.halls[booking.HallID]
	if !ok {
		return fmt.Errorf("hall %s not found", booking.HallID.String())
	}
	if !hall.IsAvailable || hall.IsDateBooked(booking.BookingDate) {
		return repository.ErrDateAlreadyBooked
	}

	hall.BookedDates = append(hall.BookedDates, booking.BookingDate)
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) CancelWithDateRelease(_ context.Context, booking *entity.Booking) error {
	r.halls.mu.Lock()
	defer r.halls.mu.Unlock()

	stored, ok := r.bookings[booking.ID]
	if !ok || stored.Status.IsTerminal() {
		return fmt.Errorf("booking %s not cancellable", booking.ID.String())
	}

	stored.Status = entity.BookingStatusCancelled
	stored.CancelledAt = booking.CancelledAt
	stored.CancellationReason = booking.CancellationReason

	r.releaseDateLocked(booking.HallID, booking.BookingDate)
	return nil
}

func (r *fakeBookingRepo) Decide(_ context.Context, booking *entity.Booking) error {
	r.halls.mu.Lock()
	defer r.halls.mu.Unlock()

	stored, ok := r.bookings[booking.ID]
	if !ok || stored.Status != entity.BookingStatusPending {
		return fmt.Errorf("booking %s is not pending", booking.ID.String())
	}

	stored.Status = booking.Status
	stored.RejectedAt = booking.RejectedAt
	stored.RejectionReason = booking.RejectionReason

	if booking.Status == entity.BookingStatusRejected {
		r.releaseDateLocked(booking.HallID, booking.BookingDate)
	}
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.halls.mu.Lock()
	defer r.halls.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	r.halls.mu.Lock()
	defer r.halls.mu.Unlock()

	var bookings []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			cp := *b
			bookings = append(bookings, &cp)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) releaseDateLocked(hallID uuid.UUID, date string) {
	hall, ok := r.halls.halls[hallID]
	if !ok {
		return
	}
	kept := hall.BookedDates[:0]
	for _, d := range hall.BookedDates {
		if d != date {
			kept = append(kept, d)
		}
	}
	hall.BookedDates = kept
}
