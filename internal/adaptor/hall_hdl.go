package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"fablab-booking/internal/calendar"
	"fablab-booking/internal/dto/request"
	"fablab-booking/internal/usecase"
	"fablab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// ListHalls handles GET /api/halls (public). ?available=true filters to
// halls currently accepting bookings.
func (h *HallHandler) ListHalls(w http.ResponseWriter, r *http.Request) {
	availableOnly := r.URL.Query().Get("available") == "true"

	halls, err := h.service.ListHalls(r.Context(), availableOnly)
	if err != nil {
		respondServiceError(w, h.log, err, "list halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// GetHall handles GET /api/halls/{id} (public)
func (h *HallHandler) GetHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	hall, err := h.service.GetHall(r.Context(), hallID)
	if err != nil {
		respondServiceError(w, h.log, err, "get hall")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// GetAvailability handles GET /api/halls/{id}/availability (public).
// ?month=YYYY-MM picks the displayed month (default: current), ?selected=
// marks the currently chosen date in the returned grid.
func (h *HallHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	cursor := calendar.CursorFor(time.Now())
	if month := r.URL.Query().Get("month"); month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid month format, use YYYY-MM", nil)
			return
		}
		cursor = calendar.CursorFor(t)
	}

	selected := r.URL.Query().Get("selected")

	availability, err := h.service.GetAvailability(r.Context(), hallID, cursor, selected)
	if err != nil {
		respondServiceError(w, h.log, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// CreateHall handles POST /api/admin/halls (admin only)
func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), actor, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "success", hall)
}

// UpdateHall handles PUT /api/admin/halls/{id} (admin only)
func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	var req request.UpdateHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.UpdateHall(r.Context(), actor, hallID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update hall")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// SetAvailability handles PUT /api/admin/halls/{id}/availability (admin only)
func (h *HallHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	var req struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SetAvailability(r.Context(), actor, hallID, req.Available); err != nil {
		respondServiceError(w, h.log, err, "set hall availability")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
