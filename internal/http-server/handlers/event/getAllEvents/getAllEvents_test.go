package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventManager/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testEvents := []models.Event{
		{
			ID:          1,
			Title:       "Test Event 1",
			Description: "First",
			Date:        "2025-04-20",
		},
		{
			ID:    2,
			Title: "Test Event 2",
			Date:  "2025-04-21",
			Image: "/images/2.jpg",
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.EventsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, testEvents, resp.Events)
			},
		},
		{
			name: "Success with empty events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","events":[]}`,
		},
		{
			name: "Nil events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","events":[]}`,
		},
		{
			name: "Database error",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			eventsGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(eventsGetter)

			handler := New(logger, eventsGetter)

			req, err := http.NewRequest(http.MethodGet, "/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
