package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/http/handlers"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/http/middleware"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

// Deps groups everything the router mounts.
type Deps struct {
	Base      *handlers.Handlers
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Drivers   *handlers.DriverHandler
	Shipments *handlers.ShipmentHandler
	Track     *handlers.TrackHandler

	Logger logx.Logger

	// TrackLimit guards the public tracking group; nil disables limiting.
	TrackLimit func(http.Handler) http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(d.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(15 * time.Second))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Get("/health", d.Base.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Post("/login", d.Auth.Login)

		api.Get("/users", d.Users.List)
		api.Post("/users", d.Users.Save)
		api.Delete("/users/{username}", d.Users.Delete)

		api.Get("/drivers", d.Drivers.List)
		api.Post("/drivers", d.Drivers.Save)
		api.Delete("/drivers/{id}", d.Drivers.Delete)

		api.Get("/shipments", d.Shipments.List)
		api.Post("/shipments", d.Shipments.Create)
		api.Get("/shipments/{code}", d.Shipments.Get)
		api.Put("/shipments/{code}/location", d.Shipments.UpdateLocation)
		api.Put("/shipments/{code}/status", d.Shipments.UpdateStatus)
		api.Delete("/shipments/{code}", d.Shipments.Delete)

		api.Group(func(pub chi.Router) {
			if d.TrackLimit != nil {
				pub.Use(d.TrackLimit)
			}
			pub.Get("/track/phone/{phone}", d.Track.ByPhone)
			pub.Get("/track/{code}", d.Track.ByCode)
		})
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
