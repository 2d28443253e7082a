package wire

import (
	"net/http"

	"fablab-booking/internal/adaptor"
	"fablab-booking/internal/data/repository"
	"fablab-booking/internal/events"
	"fablab-booking/internal/usecase"
	"fablab-booking/pkg/cache"
	"fablab-booking/pkg/metrics"
	"fablab-booking/pkg/middleware"
	"fablab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	c *cache.Cache,
	publisher *events.Publisher,
	logger *zap.Logger,
) *App {
	metrics.Register()

	service := usecase.NewService(repo, config, c, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireHall(r, handler.Hall, config, logger)
	wireBooking(r, handler.Booking, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
