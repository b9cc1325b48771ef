package getSchedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventViewer/internal/http-server/handlers/event/getSchedule/mocks"
	"eventViewer/internal/lib/logger/handlers/slogdiscard"
	"eventViewer/internal/models"
)

var testLoc = time.FixedZone("EDT", -4*60*60)

func testEvents() []models.Event {
	t0 := time.Date(2025, 9, 16, 13, 0, 0, 0, testLoc).UnixMilli()
	hour := int64(time.Hour / time.Millisecond)

	return []models.Event{
		{
			ID:          1,
			Name:        "Intro to Go",
			EventType:   models.EventTypeWorkshop,
			Permission:  models.PermissionPublic,
			StartTime:   t0,
			EndTime:     t0 + hour,
			Description: "Bring a laptop.",
			Speakers:    []models.Speaker{{Name: "Ada"}},
			PublicURL:   "https://example.com/go",
		},
		{
			ID:         2,
			Name:       "Sponsor Dinner",
			EventType:  models.EventTypeActivity,
			Permission: models.PermissionPrivate,
			StartTime:  t0 + hour,
			EndTime:    t0 + 2*hour,
			PrivateURL: "https://example.com/dinner",
		},
		{
			ID:         3,
			Name:       "Day Two Kickoff",
			EventType:  models.EventTypeTechTalk,
			Permission: models.PermissionPublic,
			StartTime:  t0 + 24*hour,
			EndTime:    t0 + 25*hour,
		},
	}
}

func TestGetScheduleHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		authenticated  bool
		mockSetup      func(m *mocks.EventsProvider)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:          "Unauthenticated sees public schedule",
			authenticated: false,
			mockSetup: func(m *mocks.EventsProvider) {
				m.On("Events", mock.Anything).Return(testEvents(), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ScheduleResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.False(t, resp.Authenticated)
				require.Len(t, resp.Groups, 2)

				assert.Equal(t, "Tuesday, September 16, 2025", resp.Groups[0].Date)
				require.Len(t, resp.Groups[0].Events, 1)
				assert.Equal(t, 1, resp.Groups[0].Events[0].ID)

				assert.Equal(t, "Wednesday, September 17, 2025", resp.Groups[1].Date)
				require.Len(t, resp.Groups[1].Events, 1)
				assert.Equal(t, 3, resp.Groups[1].Events[0].ID)
			},
		},
		{
			name:          "Authenticated sees private events too",
			authenticated: true,
			mockSetup: func(m *mocks.EventsProvider) {
				m.On("Events", mock.Anything).Return(testEvents(), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ScheduleResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.True(t, resp.Authenticated)
				require.Len(t, resp.Groups, 2)
				require.Len(t, resp.Groups[0].Events, 2)
				assert.Equal(t, 1, resp.Groups[0].Events[0].ID)
				assert.Equal(t, 2, resp.Groups[0].Events[1].ID)
			},
		},
		{
			name:          "Empty batch gives empty groups",
			authenticated: false,
			mockSetup: func(m *mocks.EventsProvider) {
				m.On("Events", mock.Anything).Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ScheduleResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Groups)
			},
		},
		{
			name:          "Fetch failure",
			authenticated: false,
			mockSetup: func(m *mocks.EventsProvider) {
				m.On("Events", mock.Anything).Return(nil, errors.New("upstream down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewEventsProvider(t)
			tc.mockSetup(mockProvider)

			mockAuth := mocks.NewAuthChecker(t)
			mockAuth.On("Authenticated").Return(tc.authenticated).Maybe()

			handler := New(logger, mockProvider, mockAuth, testLoc)

			req, err := http.NewRequest("GET", "/api/schedule", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockProvider.AssertExpectations(t)
		})
	}
}

func TestEventViewFormatting(t *testing.T) {
	t.Parallel()

	mockProvider := mocks.NewEventsProvider(t)
	mockProvider.On("Events", mock.Anything).Return(testEvents(), nil)

	mockAuth := mocks.NewAuthChecker(t)
	mockAuth.On("Authenticated").Return(true)

	handler := New(slogdiscard.NewDiscardLogger(), mockProvider, mockAuth, testLoc)

	req := httptest.NewRequest("GET", "/api/schedule", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Groups)
	view := resp.Groups[0].Events[0]

	assert.Equal(t, "Workshop", view.TypeLabel)
	assert.Equal(t, "Sep 16, 2025 • 1:00 PM - 2:00 PM", view.TimeRange)
	assert.Equal(t, "Bring a laptop.", view.Description)
	assert.Equal(t, []string{"Ada"}, view.Speakers)
	assert.Equal(t, "https://example.com/go", view.URL)

	dinner := resp.Groups[0].Events[1]
	assert.Equal(t, "https://example.com/dinner", dinner.URL, "private url used when no public url")
}
