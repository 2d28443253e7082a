package adaptor

import (
	"net/http"
	"strings"

	"fablab-booking/internal/usecase"
	"fablab-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Hall    *HallHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Hall:    NewHallHandler(service.Hall, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// respondServiceError maps service error messages to HTTP responses. Services
// return plain wrapped errors; classification happens once, here at the
// operation boundary.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already booked"):
		log.Warn(operation+" failed - date conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "unauthorized"),
		strings.Contains(errMsg, "credentials"),
		strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "not accepting"):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
