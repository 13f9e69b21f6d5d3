package handlers

import (
	"net/http"

	"learnroute/internal/middleware"
	"learnroute/internal/model"
	"learnroute/internal/service"
	"learnroute/internal/webutil"
)

type ResourceHandler struct {
	service service.ResourceService
}

func NewResourceHandler(s service.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: s}
}

// ListResources serves GET /resources, optionally filtered by ?category=.
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	resources, err := h.service.ListResources(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if resources == nil {
		resources = []*model.Resource{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, resources, logger)
}

func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := webutil.UintParam(r, "resource_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resource, err := h.service.GetResource(r.Context(), id)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resource, logger)
}

// GetMultiple returns the known resources among the posted ids. Unknown
// ids are left out rather than reported.
func (h *ResourceHandler) GetMultiple(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.MultipleResourcesRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid multiple resources request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resources, err := h.service.GetResources(r.Context(), req.IDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if resources == nil {
		resources = []*model.Resource{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, resources, logger)
}

func (h *ResourceHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.CreateResourceRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create resource request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resource, err := h.service.CreateResource(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resource, logger)
}
