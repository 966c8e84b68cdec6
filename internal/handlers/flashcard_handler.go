// internal/handlers/flashcard_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"skillscape/internal/model"
	"skillscape/internal/service"
	"skillscape/internal/webutil"
)

type FlashcardHandler struct {
	service service.FlashcardService
	logger  *slog.Logger
}

func NewFlashcardHandler(s service.FlashcardService, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{service: s, logger: logger}
}

// List はスキルの暗記カード一覧のハンドラ
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListFlashcards"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	skillID, ok := parseUUIDParam(w, r, logger, "skill_id")
	if !ok {
		return
	}

	flashcards, err := h.service.ListFlashcards(r.Context(), userID, skillID)
	if err != nil {
		logger.Error("Error listing flashcards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if flashcards == nil {
		flashcards = []*model.FlashcardResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, flashcards, logger)
}

// Create は暗記カード作成のハンドラ
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateFlashcard"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	skillID, ok := parseUUIDParam(w, r, logger, "skill_id")
	if !ok {
		return
	}

	var req model.StoreFlashcardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	flashcard, err := h.service.CreateFlashcard(r.Context(), userID, skillID, &req)
	if err != nil {
		logger.Error("Error creating flashcard in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard created successfully", slog.String("flashcard_id", flashcard.FlashcardID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, flashcard, logger)
}

// Update は暗記カード更新のハンドラ
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateFlashcard"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	skillID, ok := parseUUIDParam(w, r, logger, "skill_id")
	if !ok {
		return
	}
	flashcardID, ok := parseUUIDParam(w, r, logger, "flashcard_id")
	if !ok {
		return
	}

	var req model.StoreFlashcardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	flashcard, err := h.service.UpdateFlashcard(r.Context(), userID, skillID, flashcardID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Flashcard not found", slog.Any("error", err))
		} else {
			logger.Error("Error updating flashcard in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, flashcard, logger)
}

// Delete は暗記カード削除のハンドラ
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteFlashcard"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	skillID, ok := parseUUIDParam(w, r, logger, "skill_id")
	if !ok {
		return
	}
	flashcardID, ok := parseUUIDParam(w, r, logger, "flashcard_id")
	if !ok {
		return
	}

	if err := h.service.DeleteFlashcard(r.Context(), userID, skillID, flashcardID); err != nil {
		logger.Error("Error deleting flashcard in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard deleted successfully", slog.String("flashcard_id", flashcardID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// StudySet はランダム順の学習セットのハンドラ
func (h *FlashcardHandler) StudySet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudySet"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	skillID, ok := parseUUIDParam(w, r, logger, "skill_id")
	if !ok {
		return
	}

	flashcards, err := h.service.StudySet(r.Context(), userID, skillID)
	if err != nil {
		logger.Error("Error building study set in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if flashcards == nil {
		flashcards = []*model.FlashcardResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, flashcards, logger)
}

// RecordAnswer は学習結果記録のハンドラ
func (h *FlashcardHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RecordAnswer"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	skillID, ok := parseUUIDParam(w, r, logger, "skill_id")
	if !ok {
		return
	}
	flashcardID, ok := parseUUIDParam(w, r, logger, "flashcard_id")
	if !ok {
		return
	}

	var req model.RecordAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	flashcard, err := h.service.RecordAnswer(r.Context(), userID, skillID, flashcardID, &req)
	if err != nil {
		logger.Error("Error recording flashcard answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, flashcard, logger)
}
