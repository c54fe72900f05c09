// Package router wires the HTTP handlers, middleware and their dependencies
// into a single chi router.
package router

import (
	"log/slog"
	"net/http"

	"eventManager/internal/http-server/handlers/auth/login"
	"eventManager/internal/http-server/handlers/auth/signup"
	"eventManager/internal/http-server/handlers/booking/createBooking"
	"eventManager/internal/http-server/handlers/booking/getBooking"
	"eventManager/internal/http-server/handlers/booking/getMyBookings"
	"eventManager/internal/http-server/handlers/event/createEvent"
	"eventManager/internal/http-server/handlers/event/getAllEvents"
	"eventManager/internal/http-server/handlers/template/getAllTemplates"
	"eventManager/internal/http-server/handlers/template/getTemplate"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/http-server/middleware/mwlogger"
	"eventManager/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// Storage is satisfied by both the sqlite and the postgres store.
type Storage interface {
	signup.UserCreator
	login.UserProvider
	createEvent.EventCreator
	getAllEvents.EventsGetter
	getAllTemplates.TemplatesGetter
	getTemplate.TemplateGetter
	createBooking.BookingCreator
	getMyBookings.BookingsProvider
	getBooking.BookingProvider
}

type PasswordHasher interface {
	signup.PasswordHasher
	login.PasswordVerifier
}

type TokenManager interface {
	login.TokenIssuer
	auth.TokenVerifier
}

func New(
	log *slog.Logger,
	storage Storage,
	hasher PasswordHasher,
	tokens TokenManager,
	notifier createBooking.BookingNotifier,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	router.Post("/signup", signup.New(log, storage, hasher))
	router.Post("/login", login.New(log, storage, hasher, tokens))

	router.Get("/event-templates", getAllTemplates.New(log, storage))
	router.Get("/event-templates/{id}", getTemplate.New(log, storage))

	router.Get("/events", getAllEvents.New(log, storage))
	router.Post("/events", createEvent.New(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(auth.New(log, tokens))

		r.Post("/book-event", createBooking.New(log, storage, notifier))
		r.Get("/my-bookings", getMyBookings.New(log, storage))
		r.Get("/bookings/{id}", getBooking.New(log, storage))
	})

	return router
}
