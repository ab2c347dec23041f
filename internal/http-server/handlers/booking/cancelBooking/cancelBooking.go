package cancelBooking

import (
	"context"
	"errors"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/storage"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceler
type BookingCanceler interface {
	CancelBooking(ctx context.Context, id, userID int64) error
}

func New(log *slog.Logger, canceler BookingCanceler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log := log.With(slog.String("op", op))

		claims, ok := mwauth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no claims in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("access denied"))
			return
		}

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", id))

		err = canceler.CancelBooking(r.Context(), id, claims.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Info("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to cancel booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to cancel booking"))
			return
		}

		log.Info("booking cancelled", slog.Int64("user_id", claims.UserID))

		render.JSON(w, r, response.OK())
	}
}
