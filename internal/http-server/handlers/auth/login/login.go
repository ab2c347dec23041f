package login

import (
	"context"
	"errors"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/models"
	"hallBooker/internal/storage"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	NewToken(user models.User) (string, error)
}

func New(log *slog.Logger, users UserProvider, tokens TokenIssuer) http.HandlerFunc {
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

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		user, err := users.UserByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("unknown email", slog.String("email", req.Email))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid credentials"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			log.Info("wrong password", slog.Int64("user_id", user.ID))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}

		token, err := tokens.NewToken(*user)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		log.Info("user logged in", slog.Int64("user_id", user.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Token:    token,
			User:     user,
		})
	}
}
