package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fablab-booking/internal/calendar"
	"fablab-booking/internal/data/entity"
	"fablab-booking/internal/data/repository"
	"fablab-booking/internal/dto/request"
	"fablab-booking/internal/dto/response"
	"fablab-booking/internal/events"
	"fablab-booking/pkg/cache"
	"fablab-booking/pkg/metrics"
	"fablab-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService owns the booking lifecycle. Every operation takes the actor
// as an explicit argument; nothing here reads ambient authentication state.
type BookingService interface {
	CreateBooking(ctx context.Context, actor utils.Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetMyBookings(ctx context.Context, actor utils.Actor) (*response.MyBookingsResponse, error)
	CancelBooking(ctx context.Context, actor utils.Actor, bookingID string, req *request.CancelBookingRequest) (*response.BookingResponse, error)

	// DecideBooking applies an admin accept/reject to a pending booking.
	DecideBooking(ctx context.Context, actor utils.Actor, bookingID string, req *request.DecideBookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	config    *utils.Config
	cache     *cache.Cache
	publisher *events.Publisher
	log       *zap.Logger
	now       func() time.Time
}

func NewBookingService(
	repo *repository.Repository,
	config *utils.Config,
	c *cache.Cache,
	publisher *events.Publisher,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		config:    config,
		cache:     c,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
		now:       time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor utils.Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if actor.ID == uuid.Nil {
		return nil, fmt.Errorf("unauthorized: authentication required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	start, err := time.Parse(entity.TimeLayout, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %s: %w", req.StartTime, err)
	}
	end, err := time.Parse(entity.TimeLayout, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %s: %w", req.EndTime, err)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("validation failed: end time must be after start time")
	}

	today := s.now().Format(entity.DateLayout)
	if req.BookingDate < today {
		return nil, fmt.Errorf("validation failed: cannot book a past date")
	}

	hallID, err := utils.ParseUUID(req.HallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall ID format %s: %w", req.HallID, err)
	}

	// Fresh read at submission time; the calendar the user saw may be stale.
	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		s.log.Error("Failed to load hall for booking", zap.Error(err), zap.String("hall_id", req.HallID))
		return nil, fmt.Errorf("check hall: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("hall %s not found", req.HallID)
	}

	if !hall.IsAvailable {
		return nil, fmt.Errorf("hall %s is not accepting bookings", hall.Name)
	}

	if req.Attendees > hall.Capacity {
		return nil, fmt.Errorf("validation failed: %d attendees exceed hall capacity of %d", req.Attendees, hall.Capacity)
	}

	if hall.IsDateBooked(req.BookingDate) {
		metrics.IncBookingDateConflict()
		return nil, fmt.Errorf("date %s already booked for this hall", req.BookingDate)
	}

	duration := end.Sub(start).Hours()
	now := s.now()

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference: utils.GenerateBookingReference(),
		HallID:    hall.ID,
		// Snapshot of the hall at booking time; later hall edits must not
		// rewrite past bookings.
		HallName:    hall.Name,
		HourlyRate:  hall.HourlyRate,
		UserID:      actor.ID,
		UserEmail:   actor.Email,
		UserName:    actor.Name,
		BookingDate: req.BookingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    duration,
		Attendees:   req.Attendees,
		Purpose:     req.Purpose,
		Status:      entity.BookingStatusPending,
		TotalCost:   duration * hall.HourlyRate,
	}

	// Booking insert and booked_dates append commit together; a concurrent
	// claim of the same date loses here, not after a partial write.
	if err := s.repo.Booking.CreateWithDateClaim(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDateAlreadyBooked) {
			metrics.IncBookingDateConflict()
			return nil, fmt.Errorf("date %s already booked for this hall", req.BookingDate)
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("hall_id", req.HallID),
			zap.String("user_id", actor.ID.String()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated()
	s.invalidateAvailability(ctx, booking.HallID, booking.BookingDate)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("hall_id", hall.ID.String()),
		zap.String("user_id", actor.ID.String()),
		zap.String("date", booking.BookingDate),
		zap.Float64("total_cost", booking.TotalCost),
	)

	go s.publishCreated(booking)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetMyBookings(ctx context.Context, actor utils.Actor) (*response.MyBookingsResponse, error) {
	if actor.ID == uuid.Nil {
		return nil, fmt.Errorf("unauthorized: authentication required")
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", actor.ID.String()))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	today := s.now().Format(entity.DateLayout)

	resp := &response.MyBookingsResponse{
		Upcoming:  []response.BookingResponse{},
		Past:      []response.BookingResponse{},
		Cancelled: []response.BookingResponse{},
	}

	for _, b := range bookings {
		br := response.BookingToResponse(b)
		switch {
		case b.Status == entity.BookingStatusCancelled:
			resp.Cancelled = append(resp.Cancelled, br)
			resp.Stats.Cancelled++
		case b.IsUpcoming(today):
			resp.Upcoming = append(resp.Upcoming, br)
			resp.Stats.Upcoming++
		default:
			resp.Past = append(resp.Past, br)
			resp.Stats.Past++
		}

		resp.Stats.Total++
		if b.Status == entity.BookingStatusPending || b.Status == entity.BookingStatusAccepted {
			resp.Stats.TotalCost += b.TotalCost
		}
	}

	return resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor utils.Actor, bookingID string, req *request.CancelBookingRequest) (*response.BookingResponse, error) {
	if actor.ID == uuid.Nil {
		return nil, fmt.Errorf("unauthorized: authentication required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Cancel booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != actor.ID {
		return nil, fmt.Errorf("unauthorized: booking belongs to another user")
	}

	if booking.Status.IsTerminal() {
		return nil, fmt.Errorf("validation failed: booking is already %s", booking.Status)
	}

	today := s.now().Format(entity.DateLayout)
	if !booking.IsUpcoming(today) {
		return nil, fmt.Errorf("validation failed: cannot cancel a past booking")
	}

	now := s.now()
	booking.Status = entity.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancellationReason = &req.Reason

	if err := s.repo.Booking.CancelWithDateRelease(ctx, booking); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	metrics.IncBookingCancelled()
	s.invalidateAvailability(ctx, booking.HallID, booking.BookingDate)

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
		zap.String("user_id", actor.ID.String()),
	)

	go s.publishCancelled(booking, req.Reason)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DecideBooking(ctx context.Context, actor utils.Actor, bookingID string, req *request.DecideBookingRequest) (*response.BookingResponse, error) {
	if actor.ID == uuid.Nil {
		return nil, fmt.Errorf("unauthorized: authentication required")
	}
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("unauthorized: admin access required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Decide booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	target := entity.BookingStatus(req.Decision)
	if target == entity.BookingStatusRejected && req.Reason == "" {
		return nil, fmt.Errorf("validation failed: rejection requires a reason")
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("validation failed: cannot move booking from %s to %s", booking.Status, target)
	}

	booking.Status = target
	if target == entity.BookingStatusRejected {
		now := s.now()
		booking.RejectedAt = &now
		booking.RejectionReason = &req.Reason
	}

	if err := s.repo.Booking.Decide(ctx, booking); err != nil {
		s.log.Error("Failed to decide booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("decision", req.Decision),
		)
		return nil, fmt.Errorf("decide booking: %w", err)
	}

	metrics.IncAdminDecision(req.Decision)
	if target == entity.BookingStatusRejected {
		s.invalidateAvailability(ctx, booking.HallID, booking.BookingDate)
	}

	s.log.Info("Booking decided",
		zap.String("booking_id", bookingID),
		zap.String("decision", req.Decision),
		zap.String("admin_id", actor.ID.String()),
	)

	go s.publishDecided(booking, req.Decision, req.Reason)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := utils.ParseUUID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return booking, nil
}

func (s *bookingService) invalidateAvailability(ctx context.Context, hallID uuid.UUID, bookingDate string) {
	date, err := time.Parse(entity.DateLayout, bookingDate)
	if err != nil {
		return
	}

	cursor := calendar.CursorFor(date)
	today := s.now().Format(entity.DateLayout)
	s.cache.Delete(ctx, availabilityCacheKey(hallID.String(), cursor, today))
}

func (s *bookingService) publishCreated(b *entity.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = s.publisher.Publish(ctx, events.QueueBookingCreated, events.BookingCreatedEvent{
		BookingID:   b.ID.String(),
		Reference:   b.Reference,
		HallID:      b.HallID.String(),
		HallName:    b.HallName,
		UserID:      b.UserID.String(),
		UserEmail:   b.UserEmail,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		TotalCost:   b.TotalCost,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (s *bookingService) publishCancelled(b *entity.Booking, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cancelledAt := ""
	if b.CancelledAt != nil {
		cancelledAt = b.CancelledAt.UTC().Format(time.RFC3339)
	}

	_ = s.publisher.Publish(ctx, events.QueueBookingCancelled, events.BookingCancelledEvent{
		BookingID:   b.ID.String(),
		Reference:   b.Reference,
		HallID:      b.HallID.String(),
		HallName:    b.HallName,
		UserID:      b.UserID.String(),
		UserEmail:   b.UserEmail,
		BookingDate: b.BookingDate,
		Reason:      reason,
		CancelledAt: cancelledAt,
	})
}

func (s *bookingService) publishDecided(b *entity.Booking, decision, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = s.publisher.Publish(ctx, events.QueueBookingDecided, events.BookingDecidedEvent{
		BookingID:   b.ID.String(),
		Reference:   b.Reference,
		UserID:      b.UserID.String(),
		UserEmail:   b.UserEmail,
		BookingDate: b.BookingDate,
		Decision:    decision,
		Reason:      reason,
		DecidedAt:   s.now().UTC().Format(time.RFC3339),
	})
}
