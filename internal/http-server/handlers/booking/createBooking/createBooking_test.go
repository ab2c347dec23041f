package createBooking

import (
	"bytes"
	"errors"
	"fmt"
	"hallBooker/internal/catalog"
	"hallBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/lib/jwt"
	"hallBooker/internal/lib/logger/handlers/slogdiscard"
	"hallBooker/internal/models"
	"hallBooker/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	asha := &jwt.Claims{UserID: 42, Name: "Asha"}

	date := time.Date(2026, time.October, 26, 0, 0, 0, 0, time.UTC)
	want := models.Booking{
		UserID:  42,
		Hall:    "SF Seminar Hall",
		Date:    date,
		Slots:   []string{"9:00 - 9:30", "1:00 - 1:30"},
		Purpose: "Workshop",
	}

	testCases := []struct {
		name           string
		claims         *jwt.Claims
		requestBody    string
		mockSetup      func(m *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success orders slots",
			claims:      asha,
			requestBody: `{"hall":"SF Seminar Hall","date":"2026-10-26","slots":["1:00 - 1:30","9:00 - 9:30"],"purpose":" Workshop "}`,
			mockSetup: func(m *mocks.BookingCreator) {
				saved := want
				saved.ID = 11
				m.On("CreateBooking", mock.Anything, want).Return(&saved, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":11`)
				assert.Contains(t, body, `"slots":["9:00 - 9:30","1:00 - 1:30"]`)
			},
		},
		{
			name:           "No claims",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:           "Invalid JSON",
			claims:         asha,
			requestBody:    `{"hall":`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing fields",
			claims:         asha,
			requestBody:    `{"purpose":"meeting"}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"field Hall is a required field, ` +
				`field Date is a required field, field Slots is a required field"}`,
		},
		{
			name:           "Empty slots",
			claims:         asha,
			requestBody:    `{"hall":"SF Seminar Hall","date":"2026-10-26","slots":[]}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Slots is too short"}`,
		},
		{
			name:           "Bad date",
			claims:         asha,
			requestBody:    `{"hall":"SF Seminar Hall","date":"26/10/2026","slots":["9:00 - 9:30"]}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Date is not a valid date"}`,
		},
		{
			name:           "Unknown hall",
			claims:         asha,
			requestBody:    `{"hall":"Gym","date":"2026-10-26","slots":["9:00 - 9:30"]}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unknown hall"}`,
		},
		{
			name:           "Unknown slot",
			claims:         asha,
			requestBody:    `{"hall":"SF Seminar Hall","date":"2026-10-26","slots":["9:00 - 9:30","midnight"]}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unknown slot: midnight"}`,
		},
		{
			name:        "Slots taken",
			claims:      asha,
			requestBody: `{"hall":"SF Seminar Hall","date":"2026-10-26","slots":["9:00 - 9:30"]}`,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("CreateBooking", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("storage.postgres.CreateBooking: %w", storage.ErrSlotsTaken))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"some slots are already booked"}`,
		},
		{
			name:        "Storage failure",
			claims:      asha,
			requestBody: `{"hall":"SF Seminar Hall","date":"2026-10-26","slots":["9:00 - 9:30"]}`,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewBookingCreator(t)
			tc.mockSetup(creator)

			router := chi.NewRouter()
			router.Post("/api/bookings", New(logger, catalog.Default(), creator))

			req, err := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			if tc.claims != nil {
				req = req.WithContext(mwauth.WithClaims(req.Context(), tc.claims))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
