package getAvailability

import (
	"context"
	"hallBooker/internal/catalog"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/models"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

type AvailabilityResponse struct {
	response.Response
	Hall           string   `json:"hall"`
	Date           string   `json:"date"`
	BookedSlots    []string `json:"bookedSlots"`
	AvailableSlots []string `json:"availableSlots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsProvider
type BookingsProvider interface {
	BookingsByHallDate(ctx context.Context, hall string, date time.Time) ([]models.Booking, error)
}

func New(log *slog.Logger, c catalog.Catalog, provider BookingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAvailability.New"

		log := log.With(slog.String("op", op))

		hall := r.URL.Query().Get("hall")
		dateStr := r.URL.Query().Get("date")
		if hall == "" || dateStr == "" {
			log.Error("hall and date are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("hall and date are required"))
			return
		}

		if !c.IsHall(hall) {
			log.Error("unknown hall", slog.String("hall", hall))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown hall"))
			return
		}

		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			log.Error("invalid date", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format"))
			return
		}

		bookings, err := provider.BookingsByHallDate(r.Context(), hall, date)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check availability"))
			return
		}

		var booked []string
		for _, b := range bookings {
			booked = append(booked, b.Slots...)
		}
		booked = c.Order(booked)

		available := c.Available(booked)
		if available == nil {
			available = []string{}
		}

		log.Info("availability checked",
			slog.String("hall", hall),
			slog.String("date", dateStr),
			slog.Int("booked", len(booked)),
		)

		render.JSON(w, r, AvailabilityResponse{
			Response:       response.OK(),
			Hall:           hall,
			Date:           dateStr,
			BookedSlots:    booked,
			AvailableSlots: available,
		})
	}
}
