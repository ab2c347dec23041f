package listUsers

import (
	"context"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type UsersResponse struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersProvider
type UsersProvider interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

func New(log *slog.Logger, provider UsersProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.listUsers.New"

		log := log.With(slog.String("op", op))

		users, err := provider.ListUsers(r.Context())
		if err != nil {
			log.Error("failed to get users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get users"))
			return
		}

		if users == nil {
			users = []models.User{}
		}

		log.Info("users retrieved", slog.Int("count", len(users)))

		render.JSON(w, r, UsersResponse{
			Response: response.OK(),
			Users:    users,
		})
	}
}
