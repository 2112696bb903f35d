package wire

import (
	"net/http"

	"cinema-users/internal/adaptor"
	"cinema-users/internal/data/repository"
	"cinema-users/internal/usecase"
	"cinema-users/pkg/middleware"
	"cinema-users/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled HTTP application.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := utils.NewTokenIssuer(config.Security.JWTSecret, config.Security.JWTExpiryHours, utils.NewSystemClock())

	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, tokens, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &App{
		Router: setupRouter(handler, tokens, registry, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	tokens *utils.TokenIssuer,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics(registry)

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(metrics.Handler)

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, tokens, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	return r
}
