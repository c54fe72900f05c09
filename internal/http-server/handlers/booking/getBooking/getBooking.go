package getBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingProvider
type BookingProvider interface {
	GetBooking(ctx context.Context, id int64) (models.Booking, error)
}

// New returns a single booking to its owner. Bookings of other users are
// reported as not found so their ids cannot be probed.
func New(log *slog.Logger, bookings BookingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log := log.With(slog.String("op", op))

		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("identity missing in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("access denied, token missing"))
			return
		}

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(
			slog.Int64("booking_id", id),
			slog.Int64("user_id", identity.UserID),
		)

		booking, err := bookings.GetBooking(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Info("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch booking"))
			return
		}

		if booking.UserID != identity.UserID {
			log.Warn("booking belongs to another user")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("booking not found"))
			return
		}

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  &booking,
	})
}
