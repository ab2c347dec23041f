package listBookings

import (
	"errors"
	"hallBooker/internal/http-server/handlers/booking/listBookings/mocks"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/lib/jwt"
	"hallBooker/internal/lib/logger/handlers/slogdiscard"
	"hallBooker/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	date := time.Date(2026, time.October, 26, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		claims         *jwt.Claims
		mockSetup      func(mock *mocks.BookingsProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			claims: &jwt.Claims{UserID: 42},
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("BookingsByUser", mock.Anything, int64(42)).Return([]models.Booking{
					{ID: 1, UserID: 42, Hall: "SF Seminar Hall", Date: date, Slots: []string{"9:00 - 9:30"}, Purpose: "meeting", CreatedAt: created},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","bookings":[{"id":1,"user_id":42,"hall":"SF Seminar Hall",` +
				`"booking_date":"2026-10-26T00:00:00Z","slots":["9:00 - 9:30"],"purpose":"meeting",` +
				`"created_at":"2026-10-19T10:00:00Z"}]}`,
		},
		{
			name:   "No bookings",
			claims: &jwt.Claims{UserID: 7},
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("BookingsByUser", mock.Anything, int64(7)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","bookings":[]}`,
		},
		{
			name:           "No claims",
			mockSetup:      func(m *mocks.BookingsProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:   "Storage failure",
			claims: &jwt.Claims{UserID: 42},
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("BookingsByUser", mock.Anything, int64(42)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewBookingsProvider(t)
			tc.mockSetup(provider)

			router := chi.NewRouter()
			router.Get("/api/bookings", New(logger, provider))

			req, err := http.NewRequest(http.MethodGet, "/api/bookings", nil)
			require.NoError(t, err)
			if tc.claims != nil {
				req = req.WithContext(mwauth.WithClaims(req.Context(), tc.claims))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
