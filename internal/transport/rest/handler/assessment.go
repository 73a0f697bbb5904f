package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"aicomply/internal/model"
	"aicomply/internal/service"
	"aicomply/internal/transport/rest/middleware"
)

// AssessmentHandler handles classification wizard endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Questions handles GET /v1/questionnaire
func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	locale := parseLocale(r.URL.Query().Get("locale"))
	writeJSON(w, http.StatusOK, h.assessmentSvc.Questions(locale))
}

// Start handles POST /v1/systems/{systemId}/assessments
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Locale model.Locale `json:"locale"`
	}
	// Empty body means default locale
	json.NewDecoder(r.Body).Decode(&req)

	orgID := middleware.GetOrgID(r.Context())
	systemID := mux.Vars(r)["systemId"]

	state, err := h.assessmentSvc.Start(r.Context(), orgID, systemID, req.Locale)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, state)
}

// GetState handles GET /v1/assessments/{assessmentId}
func (h *AssessmentHandler) GetState(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	assessmentID := mux.Vars(r)["assessmentId"]

	state, err := h.assessmentSvc.GetState(r.Context(), orgID, assessmentID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// SaveAnswer handles PUT /v1/assessments/{assessmentId}/answers/{questionId}
func (h *AssessmentHandler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	var value model.AnswerValue
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orgID := middleware.GetOrgID(r.Context())
	vars := mux.Vars(r)

	state, err := h.assessmentSvc.SaveAnswer(r.Context(), orgID, vars["assessmentId"], vars["questionId"], value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssessmentNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAssessmentClosed):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Classify handles POST /v1/assessments/{assessmentId}/classify
func (h *AssessmentHandler) Classify(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	assessmentID := mux.Vars(r)["assessmentId"]

	assessment, err := h.assessmentSvc.Classify(r.Context(), orgID, assessmentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssessmentNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAssessmentClosed):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrIncomplete):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// History handles GET /v1/systems/{systemId}/assessments
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	systemID := mux.Vars(r)["systemId"]

	assessments, err := h.assessmentSvc.History(r.Context(), orgID, systemID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessments)
}

// ListTasks handles GET /v1/systems/{systemId}/tasks
func (h *AssessmentHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	systemID := mux.Vars(r)["systemId"]

	tasks, err := h.assessmentSvc.ListTasks(r.Context(), orgID, systemID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// ListOrgTasks handles GET /v1/tasks
func (h *AssessmentHandler) ListOrgTasks(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	status := model.TaskStatus(r.URL.Query().Get("status"))

	tasks, err := h.assessmentSvc.ListOrgTasks(r.Context(), orgID, status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// CompleteTask handles POST /v1/tasks/{taskId}/complete
func (h *AssessmentHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	taskID := mux.Vars(r)["taskId"]

	task, err := h.assessmentSvc.CompleteTask(r.Context(), orgID, taskID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, task)
}
