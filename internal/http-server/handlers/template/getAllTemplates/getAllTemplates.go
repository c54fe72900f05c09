package getAllTemplates

import (
	"context"
	"log/slog"
	"net/http"

	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"

	"github.com/go-chi/render"
)

type TemplatesResponse struct {
	response.Response
	Templates []models.EventTemplate `json:"templates"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TemplatesGetter
type TemplatesGetter interface {
	GetAllEventTemplates(ctx context.Context) ([]models.EventTemplate, error)
}

func New(log *slog.Logger, templates TemplatesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.getAllTemplates.New"

		log := log.With(slog.String("op", op))

		list, err := templates.GetAllEventTemplates(r.Context())
		if err != nil {
			log.Error("failed to get event templates", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch event templates"))
			return
		}

		if list == nil {
			list = []models.EventTemplate{}
		}

		log.Info("event templates retrieved successfully", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, templates []models.EventTemplate) {
	render.JSON(w, r, TemplatesResponse{
		Response:  response.OK(),
		Templates: templates,
	})
}
