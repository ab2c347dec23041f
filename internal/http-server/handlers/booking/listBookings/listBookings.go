package listBookings

import (
	"context"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsProvider
type BookingsProvider interface {
	BookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error)
}

func New(log *slog.Logger, provider BookingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log := log.With(slog.String("op", op))

		claims, ok := mwauth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no claims in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("access denied"))
			return
		}

		bookings, err := provider.BookingsByUser(r.Context(), claims.UserID)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		if bookings == nil {
			bookings = []models.Booking{}
		}

		log.Info("bookings retrieved", slog.Int64("user_id", claims.UserID), slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
