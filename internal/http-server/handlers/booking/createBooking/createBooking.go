package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	EventID         int64    `json:"eventId" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required"`
	Address         string   `json:"address" validate:"required"`
	Date            string   `json:"date" validate:"required"`
	Time            string   `json:"time" validate:"required"`
	Addons          []string `json:"addons"`
	TotalPrice      int64    `json:"totalPrice" validate:"gte=0"`
	AdditionalNotes string   `json:"additionalNotes"`
}

type BookingResponse struct {
	response.Response
	Message   string `json:"message,omitempty"`
	BookingID int64  `json:"booking_id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, booking models.Booking) (int64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingNotifier
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, booking models.Booking) error
}

// New handles booking creation for the authenticated user. notifier may be
// nil; a failed notification is logged and does not affect the response.
func New(log *slog.Logger, bookings BookingCreator, notifier BookingNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("identity missing in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("access denied, token missing"))
			return
		}

		log = log.With(slog.Int64("user_id", identity.UserID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Debug("request body decoded", slog.Int64("event_id", req.EventID))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		booking := models.Booking{
			UserID:     identity.UserID,
			EventID:    req.EventID,
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Address:    req.Address,
			EventDate:  req.Date,
			EventTime:  req.Time,
			Addons:     req.Addons,
			TotalPrice: req.TotalPrice,
			Notes:      req.AdditionalNotes,
		}

		id, err := bookings.CreateBooking(r.Context(), booking)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventTemplateNotFound):
				log.Info("event template not found", slog.Int64("event_id", req.EventID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event template not found"))
			case errors.Is(err, storage.ErrUserNotFound):
				log.Warn("token refers to a missing user")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			default:
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("server error while booking"))
			}
			return
		}

		booking.ID = id

		log.Info("booking created", slog.Int64("booking_id", id))

		if notifier != nil {
			if err = notifier.BookingConfirmed(r.Context(), booking); err != nil {
				log.Error("failed to send booking confirmation", sl.Err(err))
			}
		}

		responseOK(w, r, id)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int64) {
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		Message:   "booking confirmed successfully",
		BookingID: id,
	})
}
