package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Response struct {
	response.Response
	Message string    `json:"message,omitempty"`
	Token   string    `json:"token,omitempty"`
	User    *UserInfo `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

type PasswordVerifier interface {
	Verify(plain, hash string) bool
}

type TokenIssuer interface {
	Issue(userID int64, name string) (string, error)
}

func New(log *slog.Logger, users UserProvider, verifier PasswordVerifier, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

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

		user, err := users.GetUserByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("user not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("server error"))
			return
		}

		if !verifier.Verify(req.Password, user.PasswordHash) {
			log.Info("incorrect password", slog.Int64("user_id", user.ID))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("incorrect password"))
			return
		}

		tokenString, err := tokens.Issue(user.ID, user.Name)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("server error"))
			return
		}

		log.Info("user logged in", slog.Int64("user_id", user.ID))

		responseOK(w, r, tokenString, user)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, tokenString string, user models.User) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Message:  "login successful",
		Token:    tokenString,
		User: &UserInfo{
			ID:   user.ID,
			Name: user.Name,
		},
	})
}
