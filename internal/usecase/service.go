package usecase

import (
	"fablab-booking/internal/data/repository"
	"fablab-booking/internal/events"
	"fablab-booking/pkg/cache"
	"fablab-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Hall    HallService
	Booking BookingService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	cache *cache.Cache,
	publisher *events.Publisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, config, log),
		Hall:    NewHallService(repo.Hall, config, cache, log),
		Booking: NewBookingService(repo, config, cache, publisher, log),
	}
}
