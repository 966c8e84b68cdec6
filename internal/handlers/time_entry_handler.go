// internal/handlers/time_entry_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"skillscape/internal/model"
	"skillscape/internal/service"
	"skillscape/internal/webutil"
)

type TimeEntryHandler struct {
	service service.TrackingService
	logger  *slog.Logger
}

func NewTimeEntryHandler(s service.TrackingService, logger *slog.Logger) *TimeEntryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimeEntryHandler{service: s, logger: logger}
}

// ListEntries は直近のタイムエントリ一覧のハンドラ
func (h *TimeEntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListEntries"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	entries, err := h.service.ListEntries(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing time entries in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []*model.TimeEntry{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// GetActive はアクティブセッション照会のハンドラ。
// セッションが無い場合も200でActiveEntry=nullを返す。
func (h *TimeEntryHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetActive"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	resp, err := h.service.GetActiveSession(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting active session from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Start はライブセッション開始のハンドラ
func (h *TimeEntryHandler) Start(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Start"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.StartSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateStruct(w, logger, req) {
		return
	}

	entry, err := h.service.StartSession(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Session start rejected", slog.Any("error", err))
		} else {
			logger.Error("Error starting session in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session started successfully", slog.String("time_entry_id", entry.TimeEntryID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, entry, logger)
}

// Stop はセッション終了のハンドラ
func (h *TimeEntryHandler) Stop(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Stop"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	result, err := h.service.StopSession(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("No active session to stop", slog.Any("error", err))
		} else {
			logger.Error("Error stopping session in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session stopped successfully",
		slog.Int("duration_minutes", result.TimeEntry.DurationMinutes),
		slog.Int64("experience_gained", result.ExperienceGained),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// LogManual は手動記録のハンドラ
func (h *TimeEntryHandler) LogManual(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "LogManual"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.LogManualEntryRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateStruct(w, logger, req) {
		return
	}

	result, err := h.service.LogManualEntry(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			logger.Info("Manual entry rejected", slog.Any("error", err))
		} else {
			logger.Error("Error logging manual entry in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Manual entry logged successfully",
		slog.Int("duration_minutes", result.TimeEntry.DurationMinutes),
		slog.Int64("experience_gained", result.ExperienceGained),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}
