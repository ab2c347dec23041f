package getAvailability

import (
	"encoding/json"
	"errors"
	"hallBooker/internal/catalog"
	"hallBooker/internal/http-server/handlers/booking/getAvailability/mocks"
	"hallBooker/internal/lib/logger/handlers/slogdiscard"
	"hallBooker/internal/models"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAvailabilityHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	c := catalog.Default()
	date := time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		hall           string
		date           string
		mockSetup      func(m *mocks.BookingsProvider)
		expectedStatus int
		expectedBody   string
		check          func(t *testing.T, resp AvailabilityResponse)
	}{
		{
			name: "Partly booked",
			hall: "SF Seminar Hall",
			date: "2026-10-20",
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("BookingsByHallDate", mock.Anything, "SF Seminar Hall", date).Return([]models.Booking{
					{ID: 1, Slots: c.Afternoon()},
					{ID: 2, Slots: []string{"9:00 - 9:30", "8:30 - 9:00"}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp AvailabilityResponse) {
				assert.Equal(t, append([]string{"8:30 - 9:00", "9:00 - 9:30"}, c.AfternoonSlots...), resp.BookedSlots)
				assert.Equal(t, c.MorningSlots[2:], resp.AvailableSlots)
				assert.Equal(t, "2026-10-20", resp.Date)
			},
		},
		{
			name: "Fully booked",
			hall: "Main Auditorium Hall",
			date: "2026-10-20",
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("BookingsByHallDate", mock.Anything, "Main Auditorium Hall", date).
					Return([]models.Booking{{ID: 1, Slots: c.AllSlots()}}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp AvailabilityResponse) {
				assert.Len(t, resp.BookedSlots, 16)
				assert.NotNil(t, resp.AvailableSlots)
				assert.Empty(t, resp.AvailableSlots)
			},
		},
		{
			name: "Free day",
			hall: "Vedhanayagam Hall",
			date: "2026-10-20",
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("BookingsByHallDate", mock.Anything, "Vedhanayagam Hall", date).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp AvailabilityResponse) {
				assert.Empty(t, resp.BookedSlots)
				assert.Equal(t, c.AllSlots(), resp.AvailableSlots)
			},
		},
		{
			name:           "Missing date",
			hall:           "SF Seminar Hall",
			mockSetup:      func(m *mocks.BookingsProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"hall and date are required"}`,
		},
		{
			name:           "Unknown hall",
			hall:           "Gym",
			date:           "2026-10-20",
			mockSetup:      func(m *mocks.BookingsProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unknown hall"}`,
		},
		{
			name:           "Bad date",
			hall:           "SF Seminar Hall",
			date:           "tomorrow",
			mockSetup:      func(m *mocks.BookingsProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid date format"}`,
		},
		{
			name: "Storage failure",
			hall: "SF Seminar Hall",
			date: "2026-10-20",
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("BookingsByHallDate", mock.Anything, "SF Seminar Hall", date).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to check availability"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewBookingsProvider(t)
			tc.mockSetup(provider)

			router := chi.NewRouter()
			router.Get("/api/availability", New(logger, c, provider))

			q := url.Values{}
			if tc.hall != "" {
				q.Set("hall", tc.hall)
			}
			if tc.date != "" {
				q.Set("date", tc.date)
			}

			req, err := http.NewRequest(http.MethodGet, "/api/availability?"+q.Encode(), nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
				return
			}

			var resp AvailabilityResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, tc.hall, resp.Hall)
			tc.check(t, resp)
		})
	}
}
