// internal/handlers/time_entry_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"skillscape/internal/handlers"
	"skillscape/internal/model"
	"skillscape/internal/service/mocks"
)

func TestTimeEntryHandler_Start(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()

	validReq := model.StartSessionRequest{SkillID: skillID, Notes: "morning run"}
	startedEntry := &model.TimeEntry{
		TimeEntryID: uuid.New(),
		UserID:      userID,
		SkillID:     skillID,
		StartedAt:   time.Now(),
		Notes:       validReq.Notes,
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.TrackingService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "Success - Start session",
			userID: &userID,
			body:   validReq,
			setupMock: func(m *mocks.TrackingService) {
				m.On("StartSession", mock.Anything, userID, &validReq).
					Return(startedEntry, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Fail - Active session already exists",
			userID: &userID,
			body:   validReq,
			setupMock: func(m *mocks.TrackingService) {
				appErr := model.NewAppError("SESSION_ALREADY_ACTIVE", "You already have an active session. Stop it before starting a new one.", "", model.ErrConflict)
				m.On("StartSession", mock.Anything, userID, &validReq).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "SESSION_ALREADY_ACTIVE",
		},
		{
			name:           "Fail - Missing skill_id",
			userID:         &userID,
			body:           model.StartSessionRequest{Notes: "no skill"},
			setupMock:      func(m *mocks.TrackingService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Fail - Malformed JSON body",
			userID:         &userID,
			body:           `{"skill_id": "broken`,
			setupMock:      func(m *mocks.TrackingService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "Fail - Unauthenticated",
			userID:         nil,
			body:           validReq,
			setupMock:      func(m *mocks.TrackingService) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewTrackingService(t)
			tc.setupMock(mockService)

			handler := handlers.NewTimeEntryHandler(mockService, nil)
			router := chi.NewRouter()
			router.Use(testAuthMiddleware(tc.userID))
			router.Post("/api/v1/time-entries/start", handler.Start)

			req := createRequest(t, "POST", "/api/v1/time-entries/start", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.TimeEntry
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, startedEntry.TimeEntryID, resp.TimeEntryID)
				assert.Equal(t, skillID, resp.SkillID)
				assert.Nil(t, resp.EndedAt)
			} else if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestTimeEntryHandler_Stop(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	endedAt := time.Now()

	result := &model.SessionResult{
		TimeEntry: &model.TimeEntry{
			TimeEntryID:      uuid.New(),
			UserID:           userID,
			SkillID:          skillID,
			EndedAt:          &endedAt,
			DurationMinutes:  45,
			ExperienceGained: 450,
		},
		UserSkill:        &model.UserSkill{UserSkillID: uuid.New(), Experience: 450, Level: 5},
		ExperienceGained: 450,
		NewLevel:         5,
		LevelUp: &model.LevelUpEvent{
			LeveledUp: true,
			OldLevel:  1,
			NewLevel:  5,
		},
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		setupMock      func(m *mocks.TrackingService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "Success - Stop active session",
			userID: &userID,
			setupMock: func(m *mocks.TrackingService) {
				m.On("StopSession", mock.Anything, userID).Return(result, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Fail - No active session",
			userID: &userID,
			setupMock: func(m *mocks.TrackingService) {
				appErr := model.NewAppError("NO_ACTIVE_SESSION", "No active session to stop.", "", model.ErrNotFound)
				m.On("StopSession", mock.Anything, userID).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NO_ACTIVE_SESSION",
		},
		{
			name:           "Fail - Unauthenticated",
			userID:         nil,
			setupMock:      func(m *mocks.TrackingService) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewTrackingService(t)
			tc.setupMock(mockService)

			handler := handlers.NewTimeEntryHandler(mockService, nil)
			router := chi.NewRouter()
			router.Use(testAuthMiddleware(tc.userID))
			router.Post("/api/v1/time-entries/stop", handler.Stop)

			req := createRequest(t, "POST", "/api/v1/time-entries/stop", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.SessionResult
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, int64(450), resp.ExperienceGained)
				assert.Equal(t, 5, resp.NewLevel)
				assert.NotNil(t, resp.LevelUp)
				assert.True(t, resp.LevelUp.LeveledUp)
			} else if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestTimeEntryHandler_LogManual(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	completedAt := time.Now().Add(-time.Hour)

	validReq := model.LogManualEntryRequest{
		SkillID:         skillID,
		DurationMinutes: 30,
		CompletedAt:     completedAt,
	}
	endedAt := completedAt
	result := &model.SessionResult{
		TimeEntry: &model.TimeEntry{
			TimeEntryID:      uuid.New(),
			UserID:           userID,
			SkillID:          skillID,
			EndedAt:          &endedAt,
			DurationMinutes:  30,
			ExperienceGained: 300,
		},
		UserSkill:        &model.UserSkill{UserSkillID: uuid.New(), Experience: 300, Level: 4},
		ExperienceGained: 300,
		NewLevel:         4,
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.TrackingService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "Success - Log manual entry",
			userID: &userID,
			body:   validReq,
			setupMock: func(m *mocks.TrackingService) {
				m.On("LogManualEntry", mock.Anything, userID, mock.AnythingOfType("*model.LogManualEntryRequest")).
					Return(result, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Fail - Daily limit exceeded",
			userID: &userID,
			body:   validReq,
			setupMock: func(m *mocks.TrackingService) {
				appErr := model.NewAppError("DAILY_LIMIT_EXCEEDED", "Daily limit exceeded. You can only log up to 12 hours per skill per day.", "duration_minutes", model.ErrInvalidInput)
				m.On("LogManualEntry", mock.Anything, userID, mock.AnythingOfType("*model.LogManualEntryRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "DAILY_LIMIT_EXCEEDED",
		},
		{
			name:           "Fail - Missing duration",
			userID:         &userID,
			body:           model.LogManualEntryRequest{SkillID: skillID, CompletedAt: completedAt},
			setupMock:      func(m *mocks.TrackingService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Fail - Unauthenticated",
			userID:         nil,
			body:           validReq,
			setupMock:      func(m *mocks.TrackingService) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewTrackingService(t)
			tc.setupMock(mockService)

			handler := handlers.NewTimeEntryHandler(mockService, nil)
			router := chi.NewRouter()
			router.Use(testAuthMiddleware(tc.userID))
			router.Post("/api/v1/time-entries/log-manual", handler.LogManual)

			req := createRequest(t, "POST", "/api/v1/time-entries/log-manual", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.SessionResult
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, 30, resp.TimeEntry.DurationMinutes)
				assert.Equal(t, int64(300), resp.ExperienceGained)
			} else if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestTimeEntryHandler_GetActive(t *testing.T) {
	userID := uuid.New()

	activeEntry := &model.TimeEntry{
		TimeEntryID: uuid.New(),
		UserID:      userID,
		SkillID:     uuid.New(),
		StartedAt:   time.Now().Add(-25 * time.Minute),
	}

	t.Run("Success - Active session exists", func(t *testing.T) {
		mockService := mocks.NewTrackingService(t)
		mockService.On("GetActiveSession", mock.Anything, userID).
			Return(&model.ActiveSessionResponse{ActiveEntry: activeEntry, ElapsedMinutes: 25}, nil).Once()

		handler := handlers.NewTimeEntryHandler(mockService, nil)
		router := chi.NewRouter()
		router.Use(testAuthMiddleware(&userID))
		router.Get("/api/v1/time-entries/active", handler.GetActive)

		req := createRequest(t, "GET", "/api/v1/time-entries/active", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.ActiveSessionResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotNil(t, resp.ActiveEntry)
		assert.Equal(t, activeEntry.TimeEntryID, resp.ActiveEntry.TimeEntryID)
		assert.Equal(t, 25, resp.ElapsedMinutes)
	})

	t.Run("Success - No active session returns null entry", func(t *testing.T) {
		mockService := mocks.NewTrackingService(t)
		mockService.On("GetActiveSession", mock.Anything, userID).
			Return(&model.ActiveSessionResponse{}, nil).Once()

		handler := handlers.NewTimeEntryHandler(mockService, nil)
		router := chi.NewRouter()
		router.Use(testAuthMiddleware(&userID))
		router.Get("/api/v1/time-entries/active", handler.GetActive)

		req := createRequest(t, "GET", "/api/v1/time-entries/active", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.ActiveSessionResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Nil(t, resp.ActiveEntry)
	})
}

func TestTimeEntryHandler_ListEntries(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	entries := []*model.TimeEntry{
		{TimeEntryID: uuid.New(), UserID: userID, StartedAt: now.Add(-time.Hour), EndedAt: &now, DurationMinutes: 60},
		{TimeEntryID: uuid.New(), UserID: userID, StartedAt: now.Add(-3 * time.Hour), DurationMinutes: 20},
	}

	tests := []struct {
		name           string
		setupMock      func(m *mocks.TrackingService)
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "Success - Entries listed",
			setupMock: func(m *mocks.TrackingService) {
				m.On("ListEntries", mock.Anything, userID).Return(entries, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name: "Success - No entries yields empty array",
			setupMock: func(m *mocks.TrackingService) {
				m.On("ListEntries", mock.Anything, userID).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name: "Fail - Service error",
			setupMock: func(m *mocks.TrackingService) {
				m.On("ListEntries", mock.Anything, userID).
					Return(nil, errors.New("db gone")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewTrackingService(t)
			tc.setupMock(mockService)

			handler := handlers.NewTimeEntryHandler(mockService, nil)
			router := chi.NewRouter()
			router.Use(testAuthMiddleware(&userID))
			router.Get("/api/v1/time-entries", handler.ListEntries)

			req := createRequest(t, "GET", "/api/v1/time-entries", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp []model.TimeEntry
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp, tc.expectedCount)
			}
		})
	}
}
