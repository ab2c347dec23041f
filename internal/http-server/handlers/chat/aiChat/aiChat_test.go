package aiChat

import (
	"bytes"
	"errors"
	"hallBooker/internal/chat"
	"hallBooker/internal/http-server/handlers/chat/aiChat/mocks"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/lib/jwt"
	"hallBooker/internal/lib/logger/handlers/slogdiscard"
	"hallBooker/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAIChatHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	asha := &jwt.Claims{UserID: 42, Name: "Asha", Role: models.RoleUser}
	ashaID := chat.Identity{UserID: 42, Name: "Asha", Role: models.RoleUser}

	testCases := []struct {
		name           string
		claims         *jwt.Claims
		requestBody    string
		mockSetup      func(m *mocks.Assistant)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Greeting",
			claims:      asha,
			requestBody: `{"message":"hi"}`,
			mockSetup: func(m *mocks.Assistant) {
				m.On("Reply", mock.Anything, ashaID, "hi").
					Return(chat.Reply{Response: "Hello Asha!", Intent: chat.IntentGreeting}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"response":"Hello Asha!","intent":"greeting","action":null}`,
		},
		{
			name:        "Empty message is passed through",
			claims:      asha,
			requestBody: `{}`,
			mockSetup: func(m *mocks.Assistant) {
				m.On("Reply", mock.Anything, ashaID, "").
					Return(chat.Reply{Response: "Welcome", Intent: chat.IntentGreeting}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"response":"Welcome","intent":"greeting","action":null}`,
		},
		{
			name:        "Booked",
			claims:      asha,
			requestBody: `{"message":"book sf seminar hall today morning"}`,
			mockSetup: func(m *mocks.Assistant) {
				m.On("Reply", mock.Anything, ashaID, "book sf seminar hall today morning").Return(chat.Reply{
					Response: "confirmed",
					Intent:   chat.IntentCreateBooking,
					Action:   chat.ActionBooked,
					Hall:     "SF Seminar Hall",
					Date:     "2026-10-19",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"response":"confirmed","intent":"create_booking","action":"booked",` +
				`"hall":"SF Seminar Hall","date":"2026-10-19"}`,
		},
		{
			name:        "Store failure still replies",
			claims:      asha,
			requestBody: `{"message":"show my bookings"}`,
			mockSetup: func(m *mocks.Assistant) {
				m.On("Reply", mock.Anything, ashaID, "show my bookings").Return(chat.Reply{
					Response: "failed",
					Intent:   chat.IntentViewBookings,
					Action:   chat.ActionError,
					Error:    true,
				}, errors.New("database error"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"response":"failed","intent":"view_bookings","action":"error","error":true}`,
		},
		{
			name:           "No claims",
			requestBody:    `{"message":"hi"}`,
			mockSetup:      func(m *mocks.Assistant) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:        "Invalid JSON greets",
			claims:      asha,
			requestBody: `message=hi`,
			mockSetup: func(m *mocks.Assistant) {
				m.On("Reply", mock.Anything, ashaID, "").
					Return(chat.Reply{Response: "Welcome", Intent: chat.IntentGreeting}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"response":"Welcome","intent":"greeting","action":null}`,
		},
		{
			name:        "Wrong message type greets",
			claims:      asha,
			requestBody: `{"message":5}`,
			mockSetup: func(m *mocks.Assistant) {
				m.On("Reply", mock.Anything, ashaID, "").
					Return(chat.Reply{Response: "Welcome", Intent: chat.IntentGreeting}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"response":"Welcome","intent":"greeting","action":null}`,
		},
		{
			name:        "Empty body greets",
			claims:      asha,
			requestBody: ``,
			mockSetup: func(m *mocks.Assistant) {
				m.On("Reply", mock.Anything, ashaID, "").
					Return(chat.Reply{Response: "Welcome", Intent: chat.IntentGreeting}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"response":"Welcome","intent":"greeting","action":null}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assistant := mocks.NewAssistant(t)
			tc.mockSetup(assistant)

			router := chi.NewRouter()
			router.Post("/api/ai-chat", New(logger, assistant))

			req, err := http.NewRequest(http.MethodPost, "/api/ai-chat", bytes.NewBufferString(tc.requestBody))
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
