package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"aicomply/internal/service"
	"aicomply/internal/transport/rest/middleware"
)

// SystemHandler handles AI system inventory endpoints
type SystemHandler struct {
	systemSvc *service.SystemService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(systemSvc *service.SystemService) *SystemHandler {
	return &SystemHandler{systemSvc: systemSvc}
}

type systemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Vendor      string `json:"vendor"`
}

// Register handles POST /v1/systems
func (h *SystemHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req systemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orgID := middleware.GetOrgID(r.Context())
	system, err := h.systemSvc.Register(r.Context(), orgID, req.Name, req.Description, req.Vendor)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, system)
}

// List handles GET /v1/systems
func (h *SystemHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	systems, err := h.systemSvc.List(r.Context(), orgID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, systems)
}

// Get handles GET /v1/systems/{systemId}
func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	systemID := mux.Vars(r)["systemId"]

	system, err := h.systemSvc.Get(r.Context(), orgID, systemID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, system)
}

// Update handles PUT /v1/systems/{systemId}
func (h *SystemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req systemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orgID := middleware.GetOrgID(r.Context())
	systemID := mux.Vars(r)["systemId"]

	system, err := h.systemSvc.Update(r.Context(), orgID, systemID, req.Name, req.Description, req.Vendor)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, system)
}

// Retire handles POST /v1/systems/{systemId}/retire
func (h *SystemHandler) Retire(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	systemID := mux.Vars(r)["systemId"]

	system, err := h.systemSvc.Retire(r.Context(), orgID, systemID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, system)
}
