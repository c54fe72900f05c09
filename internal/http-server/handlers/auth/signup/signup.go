package signup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/lib/password"
	"eventManager/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type Response struct {
	response.Response
	Message string `json:"message,omitempty"`
	UserID  int64  `json:"user_id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(ctx context.Context, name, email, passHash string) (int64, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

func New(log *slog.Logger, users UserCreator, hasher PasswordHasher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signup.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		// validator counts runes, bcrypt counts bytes.
		if len(req.Password) > password.MaxLength {
			log.Info("password too long")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("password must be at most 72 bytes"))
			return
		}

		passHash, err := hasher.Hash(req.Password)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("server error"))
			return
		}

		id, err := users.CreateUser(r.Context(), req.Name, req.Email, passHash)
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Info("email already registered")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email already registered"))
				return
			}

			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("server error"))
			return
		}

		log.Info("user registered", slog.Int64("user_id", id))

		responseCreated(w, r, id)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, id int64) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{
		Response: response.OK(),
		Message:  "signup successful",
		UserID:   id,
	})
}
