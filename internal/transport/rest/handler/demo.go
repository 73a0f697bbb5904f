package handler

import (
	"encoding/json"
	"net/http"

	"aicomply/internal/engine"
	"aicomply/internal/model"
)

// DemoHandler serves the public stateless demo: a short questionnaire and
// one-shot classification with no auth and no persistence.
type DemoHandler struct {
	eng *engine.Engine
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(eng *engine.Engine) *DemoHandler {
	return &DemoHandler{eng: eng}
}

// Questions handles GET /v1/demo/questions
func (h *DemoHandler) Questions(w http.ResponseWriter, r *http.Request) {
	locale := parseLocale(r.URL.Query().Get("locale"))
	writeJSON(w, http.StatusOK, h.eng.Questions(locale))
}

// Classify handles POST /v1/demo/classify
func (h *DemoHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Locale  model.Locale   `json:"locale"`
		Answers []model.Answer `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for _, a := range req.Answers {
		if err := h.eng.ValidateAnswer(a.QuestionID, a.Value); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	locale := parseLocale(string(req.Locale))
	result := h.eng.ClassifyRisk(engine.AnswerSetFrom(req.Answers), locale)
	writeJSON(w, http.StatusOK, result)
}

func parseLocale(s string) model.Locale {
	if model.Locale(s) == model.LocaleES {
		return model.LocaleES
	}
	return model.LocaleEN
}
