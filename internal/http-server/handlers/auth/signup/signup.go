package signup

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
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
}

type Response struct {
	response.Response
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserSaver
type UserSaver interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	NewToken(user models.User) (string, error)
}

func New(log *slog.Logger, users UserSaver, tokens TokenIssuer) http.HandlerFunc {
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

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		user, err := users.CreateUser(r.Context(), models.User{
			Name:         strings.TrimSpace(req.Name),
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: string(hash),
			Role:         models.RoleUser,
		})
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Info("email already registered", slog.String("email", req.Email))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email already registered"))
				return
			}

			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		token, err := tokens.NewToken(*user)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		log.Info("user registered", slog.Int64("user_id", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Token:    token,
			User:     user,
		})
	}
}
