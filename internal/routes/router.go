package routes

import (
	"net/http"

	"flight-service/internal/auth"
	"flight-service/internal/booking/booking_api"
	"flight-service/internal/catalog/catalog_api"
	"flight-service/internal/flights/flight_api"
	"flight-service/internal/metrics"
	"flight-service/internal/users/user_api"
	"flight-service/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Catalog   *catalog_api.Handler
	Flights   *flight_api.Handler
	Booking   *booking_api.Handler
	Users     *user_api.Handler
	JWTSecret string
	Cache     *auth.TokenCache
	Metrics   *metrics.Registry
	Health    http.HandlerFunc
}

// New assembles the full HTTP surface. Catalog writes require staff,
// catalog reads any authenticated user; orders and tickets are
// owner-scoped behind authentication.
func New(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(metrics.Middleware(deps.Metrics))

	r.NotFound(NotFoundJSON)

	r.Get("/health", deps.Health)
	r.Handle("/metrics", promhttp.Handler())

	authn := auth.Middleware(deps.JWTSecret, deps.Cache)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", deps.Users.Register)
		r.Post("/token", deps.Users.Token)
		r.With(authn).Get("/me", deps.Users.Me)
	})

	r.Route("/api/flight-service", func(r chi.Router) {
		r.Use(authn)

		// Reads: any authenticated account.
		r.Get("/crews", deps.Catalog.ListCrews)
		r.Get("/crews/{id}", deps.Catalog.GetCrew)
		r.Get("/airports", deps.Catalog.ListAirports)
		r.Get("/airports/{id}", deps.Catalog.GetAirport)
		r.Get("/airplane-types", deps.Catalog.ListAirplaneTypes)
		r.Get("/airplane-types/{id}", deps.Catalog.GetAirplaneType)
		r.Get("/airplanes", deps.Catalog.ListAirplanes)
		r.Get("/airplanes/{id}", deps.Catalog.GetAirplane)
		r.Get("/routes", deps.Catalog.ListRoutes)
		r.Get("/routes/{id}", deps.Catalog.GetRoute)
		r.Get("/flights", deps.Flights.ListFlights)
		r.Get("/flights/{id}", deps.Flights.GetFlight)

		// Writes: staff only.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireStaff)

			r.Post("/crews", deps.Catalog.CreateCrew)
			r.Put("/crews/{id}", deps.Catalog.UpdateCrew)
			r.Delete("/crews/{id}", deps.Catalog.DeleteCrew)

			r.Post("/airports", deps.Catalog.CreateAirport)
			r.Put("/airports/{id}", deps.Catalog.UpdateAirport)
			r.Delete("/airports/{id}", deps.Catalog.DeleteAirport)

			r.Post("/airplane-types", deps.Catalog.CreateAirplaneType)
			r.Put("/airplane-types/{id}", deps.Catalog.UpdateAirplaneType)
			r.Delete("/airplane-types/{id}", deps.Catalog.DeleteAirplaneType)

			r.Post("/airplanes", deps.Catalog.CreateAirplane)
			r.Put("/airplanes/{id}", deps.Catalog.UpdateAirplane)
			r.Delete("/airplanes/{id}", deps.Catalog.DeleteAirplane)

			r.Post("/routes", deps.Catalog.CreateRoute)
			r.Put("/routes/{id}", deps.Catalog.UpdateRoute)
			r.Delete("/routes/{id}", deps.Catalog.DeleteRoute)

			r.Post("/flights", deps.Flights.CreateFlight)
			r.Put("/flights/{id}", deps.Flights.UpdateFlight)
			r.Delete("/flights/{id}", deps.Flights.DeleteFlight)
		})

		// Orders and tickets: always scoped to the requesting account.
		r.Get("/orders", deps.Booking.ListOrders)
		r.Post("/orders", deps.Booking.CreateOrder)
		r.Get("/orders/{id}", deps.Booking.GetOrder)
		r.Delete("/orders/{id}", deps.Booking.DeleteOrder)

		r.Get("/tickets", deps.Booking.ListTickets)
		r.Get("/tickets/{id}", deps.Booking.GetTicket)
	})

	return r
}

// requestID tags every response with a correlation id, keeping a
// client-supplied one when present.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// NotFoundJSON is a no-surprises 404 for unknown paths.
func NotFoundJSON(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, http.StatusNotFound, map[string]string{"detail": "not found"})
}
