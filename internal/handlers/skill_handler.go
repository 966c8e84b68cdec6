// internal/handlers/skill_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"skillscape/internal/model"
	"skillscape/internal/service"
	"skillscape/internal/webutil"
)

type SkillHandler struct {
	skillService    service.SkillService
	trackingService service.TrackingService
	logger          *slog.Logger
}

func NewSkillHandler(skillService service.SkillService, trackingService service.TrackingService, logger *slog.Logger) *SkillHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SkillHandler{
		skillService:    skillService,
		trackingService: trackingService,
		logger:          logger,
	}
}

// ListSkills は有効なスキルカタログ一覧のハンドラ
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListSkills"))

	skills, err := h.skillService.ListSkills(r.Context())
	if err != nil {
		logger.Error("Error listing skills in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if skills == nil {
		skills = []*model.Skill{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, skills, logger)
}

// MySkills はトラッキング中スキル一覧のハンドラ
func (h *SkillHandler) MySkills(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MySkills"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	skills, err := h.skillService.MySkills(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing user skills in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if skills == nil {
		skills = []*model.UserSkillProgressResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, skills, logger)
}

// GetSkillDetail はスキル詳細（進捗は遅延作成）のハンドラ
func (h *SkillHandler) GetSkillDetail(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSkillDetail"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	skillID, ok := parseUUIDParam(w, r, logger, "skill_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("skill_id", skillID.String()))

	detail, err := h.skillService.GetSkillDetail(r.Context(), userID, skillID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Skill not found", slog.Any("error", err))
		} else {
			logger.Error("Error getting skill detail from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// GetSkillStats はスキルごとの集計のハンドラ
func (h *SkillHandler) GetSkillStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSkillStats"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	skillID, ok := parseUUIDParam(w, r, logger, "skill_id")
	if !ok {
		return
	}

	stats, err := h.trackingService.GetSkillStats(r.Context(), userID, skillID)
	if err != nil {
		logger.Error("Error getting skill stats from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// Dashboard はダッシュボード集計のハンドラ
func (h *SkillHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Dashboard"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	dashboard, err := h.skillService.Dashboard(r.Context(), userID)
	if err != nil {
		logger.Error("Error building dashboard in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dashboard, logger)
}

// Untrack はスキルのトラッキング解除のハンドラ
func (h *SkillHandler) Untrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Untrack"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	skillID, ok := parseUUIDParam(w, r, logger, "skill_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("skill_id", skillID.String()))

	if err := h.skillService.Untrack(r.Context(), userID, skillID); err != nil {
		logger.Error("Error untracking skill in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Skill untracked successfully")
	w.WriteHeader(http.StatusNoContent)
}
