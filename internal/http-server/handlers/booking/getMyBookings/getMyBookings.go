package getMyBookings

import (
	"context"
	"log/slog"
	"net/http"

	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.BookingSummary `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsProvider
type BookingsProvider interface {
	GetUserBookings(ctx context.Context, userID int64) ([]models.BookingSummary, error)
}

func New(log *slog.Logger, bookings BookingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getMyBookings.New"

		log := log.With(slog.String("op", op))

		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("identity missing in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("access denied, token missing"))
			return
		}

		log = log.With(slog.Int64("user_id", identity.UserID))

		list, err := bookings.GetUserBookings(r.Context(), identity.UserID)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch bookings"))
			return
		}

		if list == nil {
			list = []models.BookingSummary{}
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.BookingSummary) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
