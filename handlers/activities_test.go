package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"schoolms/core"
	"schoolms/models"
	"schoolms/models/api"
	"schoolms/services"
	activitiessvc "schoolms/services/activities"
)

var testActivity = &models.Activity{
	ID:           "act_01234567890123456789012AB",
	Name:         "Chess Club",
	Description:  "Learn strategies and compete in chess tournaments",
	Days:         []string{"Monday", "Friday"},
	StartMinutes: 15*60 + 30,
	EndMinutes:   17 * 60,
	Capacity:     12,
	Participants: []string{"michael@mergington.edu"},
}

func TestActivitiesHandler_HandleListActivities(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*activitiessvc.MockActivitiesService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "success - no filters",
			url:  "/activities",
			mockSetup: func(m *activitiessvc.MockActivitiesService) {
				m.On("ListActivities", mock.Anything, services.ActivityFilter{}).
					Return([]*models.Activity{testActivity}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response []api.ActivityModel
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Len(t, response, 1)
				assert.Equal(t, "Chess Club", response[0].Name)
				assert.Equal(t, "15:30", response[0].StartTime)
				assert.Equal(t, "17:00", response[0].EndTime)
				assert.Equal(t, 11, response[0].SpotsLeft)
			},
		},
		{
			name: "success - day filter passed through",
			url:  "/activities?day=Monday",
			mockSetup: func(m *activitiessvc.MockActivitiesService) {
				m.On("ListActivities", mock.Anything, services.ActivityFilter{Day: "Monday"}).
					Return([]*models.Activity{testActivity}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response []api.ActivityModel
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Len(t, response, 1)
			},
		},
		{
			name:           "failure - malformed start_time",
			url:            "/activities?start_time=3pm",
			mockSetup:      func(m *activitiessvc.MockActivitiesService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "invalid start_time")
			},
		},
		{
			name: "failure - service error stays generic",
			url:  "/activities",
			mockSetup: func(m *activitiessvc.MockActivitiesService) {
				m.On("ListActivities", mock.Anything, services.ActivityFilter{}).
					Return(nil, fmt.Errorf("pq: relation does not exist"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "failed to fetch activities")
				assert.NotContains(t, string(body), "pq:")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockActivitiesService := &activitiessvc.MockActivitiesService{}
			tt.mockSetup(mockActivitiesService)
			handler := NewActivitiesHandler(mockActivitiesService)

			req := httptest.NewRequest("GET", tt.url, nil)
			rr := httptest.NewRecorder()

			handler.HandleListActivities(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			tt.validateBody(t, rr.Body.Bytes())

			mockActivitiesService.AssertExpectations(t)
		})
	}
}

func TestActivitiesHandler_HandleSignup(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*activitiessvc.MockActivitiesService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success - signs up student",
			url:  "/activities/Chess%20Club/signup?email=emma@mergington.edu",
			mockSetup: func(m *activitiessvc.MockActivitiesService) {
				m.On("SignupForActivity", mock.Anything, "Chess Club", "emma@mergington.edu").
					Return(testActivity, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure - missing email",
			url:            "/activities/Chess%20Club/signup",
			mockSetup:      func(m *activitiessvc.MockActivitiesService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "a valid email is required",
		},
		{
			name:           "failure - malformed email",
			url:            "/activities/Chess%20Club/signup?email=not-an-email",
			mockSetup:      func(m *activitiessvc.MockActivitiesService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "a valid email is required",
		},
		{
			name: "failure - unknown activity",
			url:  "/activities/Knitting/signup?email=emma@mergington.edu",
			mockSetup: func(m *activitiessvc.MockActivitiesService) {
				m.On("SignupForActivity", mock.Anything, "Knitting", "emma@mergington.edu").
					Return(nil, core.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "activity not found",
		},
		{
			name: "failure - already signed up",
			url:  "/activities/Chess%20Club/signup?email=michael@mergington.edu",
			mockSetup: func(m *activitiessvc.MockActivitiesService) {
				m.On("SignupForActivity", mock.Anything, "Chess Club", "michael@mergington.edu").
					Return(nil, activitiessvc.ErrAlreadySignedUp)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "already signed up",
		},
		{
			name: "failure - activity full",
			url:  "/activities/Chess%20Club/signup?email=emma@mergington.edu",
			mockSetup: func(m *activitiessvc.MockActivitiesService) {
				m.On("SignupForActivity", mock.Anything, "Chess Club", "emma@mergington.edu").
					Return(nil, activitiessvc.ErrActivityFull)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "activity is full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockActivitiesService := &activitiessvc.MockActivitiesService{}
			tt.mockSetup(mockActivitiesService)
			handler := NewActivitiesHandler(mockActivitiesService)

			req := httptest.NewRequest("POST", tt.url, nil)
			req = req.WithContext(contextWithTeacher(testTeacher))

			// Setup mux router to capture path variables
			router := mux.NewRouter()
			router.HandleFunc("/activities/{name}/signup", handler.HandleSignup)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockActivitiesService.AssertExpectations(t)
		})
	}
}

func TestActivitiesHandler_HandleUnregister(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*activitiessvc.MockActivitiesService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success - unregisters student",
			url:  "/activities/Chess%20Club/unregister?email=michael@mergington.edu",
			mockSetup: func(m *activitiessvc.MockActivitiesService) {
				m.On("UnregisterFromActivity", mock.Anything, "Chess Club", "michael@mergington.edu").
					Return(testActivity, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "failure - student not signed up",
			url:  "/activities/Chess%20Club/unregister?email=emma@mergington.edu",
			mockSetup: func(m *activitiessvc.MockActivitiesService) {
				m.On("UnregisterFromActivity", mock.Anything, "Chess Club", "emma@mergington.edu").
					Return(nil, activitiessvc.ErrNotSignedUp)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "not signed up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockActivitiesService := &activitiessvc.MockActivitiesService{}
			tt.mockSetup(mockActivitiesService)
			handler := NewActivitiesHandler(mockActivitiesService)

			req := httptest.NewRequest("POST", tt.url, nil)
			req = req.WithContext(contextWithTeacher(testTeacher))

			// Setup mux router to capture path variables
			router := mux.NewRouter()
			router.HandleFunc("/activities/{name}/unregister", handler.HandleUnregister)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockActivitiesService.AssertExpectations(t)
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		value    string
		expected int
		wantErr  bool
	}{
		{"00:00", 0, false},
		{"07:15", 435, false},
		{"15:30", 930, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"3pm", 0, true},
		{"7:5", 0, true},
		{"7:30", 0, true},
		{"07:5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			minutes, err := parseClock(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, minutes)
		})
	}
}
