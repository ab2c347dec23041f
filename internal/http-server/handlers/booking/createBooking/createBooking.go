package createBooking

import (
	"context"
	"errors"
	"hallBooker/internal/catalog"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/models"
	"hallBooker/internal/storage"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type BookingRequest struct {
	Hall    string   `json:"hall" validate:"required"`
	Date    string   `json:"date" validate:"required,datetime=2006-01-02"`
	Slots   []string `json:"slots" validate:"required,min=1"`
	Purpose string   `json:"purpose"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
}

func New(log *slog.Logger, c catalog.Catalog, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		claims, ok := mwauth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no claims in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("access denied"))
			return
		}

		var req BookingRequest

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
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if !c.IsHall(req.Hall) {
			log.Error("unknown hall", slog.String("hall", req.Hall))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown hall"))
			return
		}

		for _, slot := range req.Slots {
			if !c.IsSlot(slot) {
				log.Error("unknown slot", slog.String("slot", slot))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown slot: "+slot))
				return
			}
		}

		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			log.Error("invalid date", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format"))
			return
		}

		booking, err := creator.CreateBooking(r.Context(), models.Booking{
			UserID:  claims.UserID,
			Hall:    req.Hall,
			Date:    date,
			Slots:   c.Order(req.Slots),
			Purpose: strings.TrimSpace(req.Purpose),
		})
		if err != nil {
			if errors.Is(err, storage.ErrSlotsTaken) {
				log.Info("slots already booked", slog.String("hall", req.Hall), slog.String("date", req.Date))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("some slots are already booked"))
				return
			}

			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		log.Info("booking created", slog.Int64("booking_id", booking.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  booking,
		})
	}
}
