package usecase

import (
	"context"
	"fmt"
	"time"

	"fablab-booking/internal/calendar"
	"fablab-booking/internal/data/entity"
	"fablab-booking/internal/data/repository"
	"fablab-booking/internal/dto/request"
	"fablab-booking/internal/dto/response"
	"fablab-booking/pkg/cache"
	"fablab-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HallService interface {
	ListHalls(ctx context.Context, availableOnly bool) ([]response.HallResponse, error)
	GetHall(ctx context.Context, hallID string) (*response.HallResponse, error)

	// GetAvailability renders the month grid for a hall. selected is the
	// date the caller has currently chosen, "" for none.
	GetAvailability(ctx context.Context, hallID string, cursor calendar.Cursor, selected string) (*response.AvailabilityResponse, error)

	// Admin operations.
	CreateHall(ctx context.Context, actor utils.Actor, req *request.CreateHallRequest) (*response.HallResponse, error)
	UpdateHall(ctx context.Context, actor utils.Actor, hallID string, req *request.UpdateHallRequest) (*response.HallResponse, error)
	SetAvailability(ctx context.Context, actor utils.Actor, hallID string, available bool) error
}

type hallService struct {
	halls  repository.HallRepository
	config *utils.Config
	cache  *cache.Cache
	log    *zap.Logger
	now    func() time.Time
}

func NewHallService(halls repository.HallRepository, config *utils.Config, c *cache.Cache, log *zap.Logger) HallService {
	return &hallService{
		halls:  halls,
		config: config,
		cache:  c,
		log:    log.With(zap.String("service", "hall")),
		now:    time.Now,
	}
}

func (s *hallService) ListHalls(ctx context.Context, availableOnly bool) ([]response.HallResponse, error) {
	halls, err := s.halls.FindAll(ctx, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("list halls: %w", err)
	}

	resp := make([]response.HallResponse, len(halls))
	for i, hall := range halls {
		resp[i] = response.HallToResponse(hall)
	}
	return resp, nil
}

func (s *hallService) GetHall(ctx context.Context, hallID string) (*response.HallResponse, error) {
	hall, err := s.findHall(ctx, hallID)
	if err != nil {
		return nil, err
	}

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func availabilityCacheKey(hallID string, cursor calendar.Cursor, today string) string {
	return fmt.Sprintf("availability:%s:%04d-%02d:%s", hallID, cursor.Year, int(cursor.Month), today)
}

func (s *hallService) GetAvailability(ctx context.Context, hallID string, cursor calendar.Cursor, selected string) (*response.AvailabilityResponse, error) {
	if _, err := utils.ParseUUID(hallID); err != nil {
		return nil, fmt.Errorf("invalid hall ID format %s: %w", hallID, err)
	}

	today := s.now().Format(entity.DateLayout)

	// The grid is a pure function of (hall, month, today), so it caches
	// cleanly as long as the selected date stays out of the key.
	var resp response.AvailabilityResponse
	if selected == "" {
		if s.cache.GetJSON(ctx, availabilityCacheKey(hallID, cursor, today), &resp) {
			return &resp, nil
		}
	}

	hall, err := s.findHall(ctx, hallID)
	if err != nil {
		return nil, err
	}

	cells := calendar.MonthGrid(cursor, calendar.HallAvailability{
		IsAvailable: hall.IsAvailable,
		BookedDates: hall.BookedDates,
	}, today, selected)

	resp = response.AvailabilityResponse{
		HallID: hallID,
		Year:   cursor.Year,
		Month:  int(cursor.Month),
		Today:  today,
		Cells:  cells,
	}

	if selected == "" {
		ttl := time.Duration(s.config.Redis.AvailabilityTTL) * time.Second
		s.cache.SetJSON(ctx, availabilityCacheKey(hallID, cursor, today), &resp, ttl)
	}

	return &resp, nil
}

func (s *hallService) CreateHall(ctx context.Context, actor utils.Actor, req *request.CreateHallRequest) (*response.HallResponse, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("unauthorized: admin access required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := s.now()
	hall := &entity.Hall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Equipment:   req.Equipment,
		Images:      req.Images,
		HourlyRate:  req.HourlyRate,
		IsAvailable: req.IsAvailable,
		Location:    req.Location,
		Rules:       req.Rules,
		BookedDates: []string{},
	}

	if err := s.halls.Create(ctx, hall); err != nil {
		s.log.Error("Failed to create hall", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create hall: %w", err)
	}

	s.log.Info("Hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
		zap.String("admin_id", actor.ID.String()))

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) UpdateHall(ctx context.Context, actor utils.Actor, hallID string, req *request.UpdateHallRequest) (*response.HallResponse, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("unauthorized: admin access required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hall, err := s.findHall(ctx, hallID)
	if err != nil {
		return nil, err
	}

	hall.Name = req.Name
	hall.Description = req.Description
	hall.Capacity = req.Capacity
	hall.Equipment = req.Equipment
	hall.Images = req.Images
	hall.HourlyRate = req.HourlyRate
	hall.IsAvailable = req.IsAvailable
	hall.Location = req.Location
	hall.Rules = req.Rules
	hall.UpdatedAt = s.now()

	if err := s.halls.Update(ctx, hall); err != nil {
		s.log.Error("Failed to update hall", zap.Error(err), zap.String("hall_id", hallID))
		return nil, fmt.Errorf("update hall: %w", err)
	}

	s.log.Info("Hall updated",
		zap.String("hall_id", hallID),
		zap.String("admin_id", actor.ID.String()))

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) SetAvailability(ctx context.Context, actor utils.Actor, hallID string, available bool) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("unauthorized: admin access required")
	}

	id, err := utils.ParseUUID(hallID)
	if err != nil {
		return fmt.Errorf("invalid hall ID format %s: %w", hallID, err)
	}

	if err := s.halls.SetAvailability(ctx, id, available); err != nil {
		return fmt.Errorf("set hall availability: %w", err)
	}

	s.log.Info("Hall availability changed",
		zap.String("hall_id", hallID),
		zap.Bool("available", available),
		zap.String("admin_id", actor.ID.String()))

	return nil
}

func (s *hallService) findHall(ctx context.Context, hallID string) (*entity.Hall, error) {
	id, err := utils.ParseUUID(hallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall ID format %s: %w", hallID, err)
	}

	hall, err := s.halls.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find hall: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("hall %s not found", hallID)
	}

	return hall, nil
}
