// internal/handlers/roadmap_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"learnroute/internal/middleware"
	"learnroute/internal/model"
	"learnroute/internal/service"
	"learnroute/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RoadmapHandler struct {
	service service.RoadmapService
}

func NewRoadmapHandler(s service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{service: s}
}

// CreateRoadmap builds a roadmap for the caller from the category template.
func (h *RoadmapHandler) CreateRoadmap(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateRoadmap"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateRoadmapRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create roadmap request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	roadmap, err := h.service.CreateRoadmap(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, roadmap, logger)
}

func (h *RoadmapHandler) GetRoadmap(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetRoadmap"))

	roadmapID, err := webutil.UUIDParam(r, "roadmap_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	roadmap, err := h.service.GetRoadmap(r.Context(), roadmapID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, roadmap, logger)
}

// ListMyRoadmaps lists the caller's roadmaps, newest first.
func (h *RoadmapHandler) ListMyRoadmaps(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListMyRoadmaps"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	h.listRoadmaps(w, r, logger, userID)
}

// ListUserRoadmaps lists the roadmaps of the user named in the URL.
func (h *RoadmapHandler) ListUserRoadmaps(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListUserRoadmaps"))

	userID, err := webutil.UUIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	h.listRoadmaps(w, r, logger, userID)
}

func (h *RoadmapHandler) listRoadmaps(w http.ResponseWriter, r *http.Request, logger *slog.Logger, userID uuid.UUID) {
	roadmaps, err := h.service.ListUserRoadmaps(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if roadmaps == nil {
		roadmaps = []*model.Roadmap{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, roadmaps, logger)
}

// UpdateProgress overrides the stored progress percentage.
func (h *RoadmapHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateProgress"))

	roadmapID, err := webutil.UUIDParam(r, "roadmap_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateProgressRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid progress request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	roadmap, err := h.service.UpdateProgress(r.Context(), roadmapID, *req.Progress)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, roadmap, logger)
}

// ToggleStep handles PATCH /roadmaps/{roadmap_id}/steps/{step_id}.
func (h *RoadmapHandler) ToggleStep(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ToggleStep"))

	roadmapID, err := webutil.UUIDParam(r, "roadmap_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	stepID := chi.URLParam(r, "step_id")
	logger = logger.With(slog.String("roadmap_id", roadmapID.String()), slog.String("step_id", stepID))

	var req model.ToggleStepRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid toggle request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	roadmap, err := h.service.ToggleStep(r.Context(), roadmapID, stepID, *req.Completed)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, roadmap, logger)
}

// CompleteRoadmap credits the authenticated caller, whoever owns the roadmap.
func (h *RoadmapHandler) CompleteRoadmap(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CompleteRoadmap"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	roadmapID, err := webutil.UUIDParam(r, "roadmap_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	roadmap, err := h.service.CompleteRoadmap(r.Context(), roadmapID, userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, roadmap, logger)
}
