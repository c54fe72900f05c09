package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type EventResponse struct {
	response.Response
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, title, description, date string) (int64, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		eventID, err := event.CreateEvent(r.Context(), req.Title, req.Description, req.Date)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int64("id", eventID))

		responseOK(w, r, eventID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventID int64) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Message:  "event added",
		ID:       eventID,
	})
}
