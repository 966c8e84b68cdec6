// internal/handlers/skill_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"skillscape/internal/handlers"
	"skillscape/internal/model"
	"skillscape/internal/service/mocks"
)

func newSkillRouter(t *testing.T, userID *uuid.UUID) (*mocks.SkillService, *mocks.TrackingService, *chi.Mux) {
	t.Helper()

	mockSkillService := mocks.NewSkillService(t)
	mockTrackingService := mocks.NewTrackingService(t)
	handler := handlers.NewSkillHandler(mockSkillService, mockTrackingService, nil)

	router := chi.NewRouter()
	router.Use(testAuthMiddleware(userID))
	router.Get("/api/v1/skills", handler.ListSkills)
	router.Get("/api/v1/skills/my-skills", handler.MySkills)
	router.Get("/api/v1/skills/{skill_id}", handler.GetSkillDetail)
	router.Get("/api/v1/skills/{skill_id}/stats", handler.GetSkillStats)
	router.Get("/api/v1/dashboard", handler.Dashboard)
	router.Delete("/api/v1/user-skills/{skill_id}", handler.Untrack)

	return mockSkillService, mockTrackingService, router
}

func TestSkillHandler_ListSkills(t *testing.T) {
	userID := uuid.New()

	skills := []*model.Skill{
		{SkillID: uuid.New(), Name: "Running", Category: "Physical", XPRate: 12, IsActive: true},
		{SkillID: uuid.New(), Name: "Guitar", Category: "Creative", XPRate: 10, IsActive: true},
	}

	t.Run("Success - Catalog listed", func(t *testing.T) {
		mockSkillService, _, router := newSkillRouter(t, &userID)
		mockSkillService.On("ListSkills", mock.Anything).Return(skills, nil).Once()

		req := createRequest(t, "GET", "/api/v1/skills", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []model.Skill
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "Running", resp[0].Name)
	})

	t.Run("Success - Empty catalog yields empty array", func(t *testing.T) {
		mockSkillService, _, router := newSkillRouter(t, &userID)
		mockSkillService.On("ListSkills", mock.Anything).Return(nil, nil).Once()

		req := createRequest(t, "GET", "/api/v1/skills", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
	})
}

func TestSkillHandler_GetSkillDetail(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()

	detail := &model.SkillDetailResponse{
		Skill: &model.Skill{SkillID: skillID, Name: "Yoga", Category: "Physical", XPRate: 10, IsActive: true},
		Progress: &model.UserSkillProgressResponse{
			UserSkillID:           uuid.New(),
			Level:                 1,
			Experience:            0,
			ExperienceToNextLevel: 83,
		},
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		skillIDParam   string
		setupMock      func(m *mocks.SkillService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:         "Success - Detail with lazily created progress",
			userID:       &userID,
			skillIDParam: skillID.String(),
			setupMock: func(m *mocks.SkillService) {
				m.On("GetSkillDetail", mock.Anything, userID, skillID).Return(detail, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:         "Fail - Skill not found",
			userID:       &userID,
			skillIDParam: uuid.New().String(),
			setupMock: func(m *mocks.SkillService) {
				appErr := model.NewAppError("SKILL_NOT_FOUND", "Skill not found.", "", model.ErrNotFound)
				m.On("GetSkillDetail", mock.Anything, userID, mock.AnythingOfType("uuid.UUID")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SKILL_NOT_FOUND",
		},
		{
			name:           "Fail - Invalid UUID in path",
			userID:         &userID,
			skillIDParam:   "not-a-uuid",
			setupMock:      func(m *mocks.SkillService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name:           "Fail - Unauthenticated",
			userID:         nil,
			skillIDParam:   skillID.String(),
			setupMock:      func(m *mocks.SkillService) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSkillService, _, router := newSkillRouter(t, tc.userID)
			tc.setupMock(mockSkillService)

			url := fmt.Sprintf("/api/v1/skills/%s", tc.skillIDParam)
			req := createRequest(t, "GET", url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.SkillDetailResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, skillID, resp.Skill.SkillID)
				assert.NotNil(t, resp.Progress)
				assert.Equal(t, 83, resp.Progress.ExperienceToNextLevel)
			} else if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestSkillHandler_GetSkillStats(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()

	stats := &model.SkillStatsResponse{
		Skill:                 &model.Skill{SkillID: skillID, Name: "Swimming"},
		UserSkill:             &model.UserSkill{UserSkillID: uuid.New(), Level: 3, Experience: 200},
		TotalMinutes:          125,
		TotalHours:            2.1,
		TotalSessions:         3,
		AverageSessionMinutes: 41.7,
	}

	t.Run("Success - Stats returned", func(t *testing.T) {
		_, mockTrackingService, router := newSkillRouter(t, &userID)
		mockTrackingService.On("GetSkillStats", mock.Anything, userID, skillID).
			Return(stats, nil).Once()

		req := createRequest(t, "GET", fmt.Sprintf("/api/v1/skills/%s/stats", skillID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.SkillStatsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(125), resp.TotalMinutes)
		assert.InDelta(t, 2.1, resp.TotalHours, 0.001)
		assert.InDelta(t, 41.7, resp.AverageSessionMinutes, 0.001)
	})

	t.Run("Fail - Skill not tracked", func(t *testing.T) {
		_, mockTrackingService, router := newSkillRouter(t, &userID)
		appErr := model.NewAppError("SKILL_NOT_TRACKED", "You are not tracking this skill.", "", model.ErrNotFound)
		mockTrackingService.On("GetSkillStats", mock.Anything, userID, skillID).
			Return(nil, appErr).Once()

		req := createRequest(t, "GET", fmt.Sprintf("/api/v1/skills/%s/stats", skillID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assertErrorCode(t, rr.Body.Bytes(), "SKILL_NOT_TRACKED")
	})
}

func TestSkillHandler_Dashboard(t *testing.T) {
	userID := uuid.New()

	dashboard := &model.DashboardResponse{
		TotalLevel:    14,
		TotalXP:       5000,
		SkillsTracked: 3,
		TopSkills: []*model.UserSkillProgressResponse{
			{UserSkillID: uuid.New(), Level: 8, Experience: 3000},
		},
		RecentSessions: []*model.TimeEntry{
			{TimeEntryID: uuid.New(), DurationMinutes: 30},
		},
	}

	mockSkillService, _, router := newSkillRouter(t, &userID)
	mockSkillService.On("Dashboard", mock.Anything, userID).Return(dashboard, nil).Once()

	req := createRequest(t, "GET", "/api/v1/dashboard", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp model.DashboardResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(14), resp.TotalLevel)
	assert.Equal(t, int64(5000), resp.TotalXP)
	assert.Equal(t, int64(3), resp.SkillsTracked)
	assert.Len(t, resp.TopSkills, 1)
}

func TestSkillHandler_Untrack(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()

	tests := []struct {
		name           string
		skillIDParam   string
		setupMock      func(m *mocks.SkillService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:         "Success - Skill untracked",
			skillIDParam: skillID.String(),
			setupMock: func(m *mocks.SkillService) {
				m.On("Untrack", mock.Anything, userID, skillID).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:         "Fail - Skill not tracked",
			skillIDParam: uuid.New().String(),
			setupMock: func(m *mocks.SkillService) {
				appErr := model.NewAppError("SKILL_NOT_TRACKED", "You are not tracking this skill.", "", model.ErrNotFound)
				m.On("Untrack", mock.Anything, userID, mock.AnythingOfType("uuid.UUID")).
					Return(appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SKILL_NOT_TRACKED",
		},
		{
			name:           "Fail - Invalid UUID in path",
			skillIDParam:   "bogus",
			setupMock:      func(m *mocks.SkillService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "INVALID_URL_PARAM",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSkillService, _, router := newSkillRouter(t, &userID)
			tc.setupMock(mockSkillService)

			url := fmt.Sprintf("/api/v1/user-skills/%s", tc.skillIDParam)
			req := createRequest(t, "DELETE", url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.Bytes())
			} else if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}
