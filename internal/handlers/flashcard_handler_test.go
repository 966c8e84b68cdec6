// internal/handlers/flashcard_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
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

func newFlashcardRouter(t *testing.T, userID *uuid.UUID) (*mocks.FlashcardService, *chi.Mux) {
	t.Helper()

	mockService := mocks.NewFlashcardService(t)
	handler := handlers.NewFlashcardHandler(mockService, nil)

	router := chi.NewRouter()
	router.Use(testAuthMiddleware(userID))
	router.Get("/api/v1/skills/{skill_id}/flashcards", handler.List)
	router.Post("/api/v1/skills/{skill_id}/flashcards", handler.Create)
	router.Get("/api/v1/skills/{skill_id}/flashcards/study", handler.StudySet)
	router.Patch("/api/v1/skills/{skill_id}/flashcards/{flashcard_id}", handler.Update)
	router.Delete("/api/v1/skills/{skill_id}/flashcards/{flashcard_id}", handler.Delete)
	router.Post("/api/v1/skills/{skill_id}/flashcards/{flashcard_id}/answer", handler.RecordAnswer)

	return mockService, router
}

func TestFlashcardHandler_Create(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()

	validReq := model.StoreFlashcardRequest{
		Question: "What is the pentatonic scale?",
		Answer:   "A five-note scale.",
	}
	created := &model.FlashcardResponse{
		FlashcardID: uuid.New(),
		Question:    validReq.Question,
		Answer:      validReq.Answer,
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.FlashcardService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - Flashcard created",
			body: validReq,
			setupMock: func(m *mocks.FlashcardService) {
				m.On("CreateFlashcard", mock.Anything, userID, skillID, &validReq).
					Return(created, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Fail - Skill not tracked",
			body: validReq,
			setupMock: func(m *mocks.FlashcardService) {
				appErr := model.NewAppError("SKILL_NOT_TRACKED", "You are not tracking this skill.", "", model.ErrNotFound)
				m.On("CreateFlashcard", mock.Anything, userID, skillID, &validReq).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SKILL_NOT_TRACKED",
		},
		{
			name:           "Fail - Missing question",
			body:           model.StoreFlashcardRequest{Answer: "only answer"},
			setupMock:      func(m *mocks.FlashcardService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newFlashcardRouter(t, &userID)
			tc.setupMock(mockService)

			url := fmt.Sprintf("/api/v1/skills/%s/flashcards", skillID)
			req := createRequest(t, "POST", url, tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.FlashcardResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, created.FlashcardID, resp.FlashcardID)
				assert.Equal(t, validReq.Question, resp.Question)
			} else if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestFlashcardHandler_RecordAnswer(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	flashcardID := uuid.New()

	correct := true
	validReq := model.RecordAnswerRequest{Correct: &correct}
	studiedAt := time.Now()
	updated := &model.FlashcardResponse{
		FlashcardID:   flashcardID,
		Question:      "Q",
		Answer:        "A",
		TimesStudied:  3,
		TimesCorrect:  2,
		Accuracy:      67,
		LastStudiedAt: &studiedAt,
	}

	t.Run("Success - Answer recorded", func(t *testing.T) {
		mockService, router := newFlashcardRouter(t, &userID)
		mockService.On("RecordAnswer", mock.Anything, userID, skillID, flashcardID, mock.AnythingOfType("*model.RecordAnswerRequest")).
			Return(updated, nil).Once()

		url := fmt.Sprintf("/api/v1/skills/%s/flashcards/%s/answer", skillID, flashcardID)
		req := createRequest(t, "POST", url, validReq)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.FlashcardResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.TimesStudied)
		assert.Equal(t, 67, resp.Accuracy)
	})

	t.Run("Fail - Missing correct flag", func(t *testing.T) {
		mockService, router := newFlashcardRouter(t, &userID)
		_ = mockService

		url := fmt.Sprintf("/api/v1/skills/%s/flashcards/%s/answer", skillID, flashcardID)
		req := createRequest(t, "POST", url, model.RecordAnswerRequest{})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assertErrorCode(t, rr.Body.Bytes(), "VALIDATION_ERROR")
	})

	t.Run("Fail - Flashcard of another user", func(t *testing.T) {
		mockService, router := newFlashcardRouter(t, &userID)
		appErr := model.NewAppError("FLASHCARD_NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)
		mockService.On("RecordAnswer", mock.Anything, userID, skillID, flashcardID, mock.AnythingOfType("*model.RecordAnswerRequest")).
			Return(nil, appErr).Once()

		url := fmt.Sprintf("/api/v1/skills/%s/flashcards/%s/answer", skillID, flashcardID)
		req := createRequest(t, "POST", url, validReq)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assertErrorCode(t, rr.Body.Bytes(), "FLASHCARD_NOT_FOUND")
	})
}

func TestFlashcardHandler_StudySet(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()

	cards := []*model.FlashcardResponse{
		{FlashcardID: uuid.New(), Question: "Q1", Answer: "A1"},
		{FlashcardID: uuid.New(), Question: "Q2", Answer: "A2"},
	}

	mockService, router := newFlashcardRouter(t, &userID)
	mockService.On("StudySet", mock.Anything, userID, skillID).Return(cards, nil).Once()

	url := fmt.Sprintf("/api/v1/skills/%s/flashcards/study", skillID)
	req := createRequest(t, "GET", url, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []model.FlashcardResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestFlashcardHandler_Delete(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	flashcardID := uuid.New()

	tests := []struct {
		name           string
		setupMock      func(m *mocks.FlashcardService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - Flashcard deleted",
			setupMock: func(m *mocks.FlashcardService) {
				m.On("DeleteFlashcard", mock.Anything, userID, skillID, flashcardID).
					Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "Fail - Flashcard not found",
			setupMock: func(m *mocks.FlashcardService) {
				appErr := model.NewAppError("FLASHCARD_NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)
				m.On("DeleteFlashcard", mock.Anything, userID, skillID, flashcardID).
					Return(appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "FLASHCARD_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newFlashcardRouter(t, &userID)
			tc.setupMock(mockService)

			url := fmt.Sprintf("/api/v1/skills/%s/flashcards/%s", skillID, flashcardID)
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
