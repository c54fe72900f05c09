package getTemplate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type TemplateResponse struct {
	response.Response
	Template *models.EventTemplate `json:"template,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TemplateGetter
type TemplateGetter interface {
	GetEventTemplate(ctx context.Context, id int64) (models.EventTemplate, error)
}

func New(log *slog.Logger, templates TemplateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.getTemplate.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("template id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("template id is required"))
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid template id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid template id format"))
			return
		}

		log = log.With(slog.Int64("template_id", id))

		tmpl, err := templates.GetEventTemplate(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrEventTemplateNotFound) {
				log.Info("event template not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event template not found"))
				return
			}

			log.Error("failed to get event template", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch event template"))
			return
		}

		log.Info("event template retrieved")

		responseOK(w, r, tmpl)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, tmpl models.EventTemplate) {
	render.JSON(w, r, TemplateResponse{
		Response: response.OK(),
		Template: &tmpl,
	})
}
