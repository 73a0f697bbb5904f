// Package engine implements the EU AI Act risk classification engine: an
// adaptive questionnaire whose answers map to a regulatory risk tier, a
// 0-100 severity score, the applicable legal articles and an ordered
// obligation list. The engine is pure, synchronous computation over
// immutable inputs — it performs no I/O, holds no cross-session state and
// always returns a result (never fail closed).
package engine

import (
	"fmt"

	"aicomply/internal/model"
)

// Bundle is the data configuration of an engine: question catalogue,
// scoring rule table, override list, threshold bands, obligation table and
// localized message tables. The production and demo engines share all
// code; they differ only in their bundles.
type Bundle struct {
	Name            string
	Questions       []model.Question
	Rules           []Rule
	Overrides       []Override
	Bands           []Band // nil means the default threshold policy
	Obligations     ObligationTable
	Recommendations map[model.RiskLevel][]string // message keys per tier
	Messages        Messages
}

// Engine evaluates classification sessions against one bundle. Safe for
// concurrent use: the bundle is read-only and every call receives its own
// answer set.
type Engine struct {
	bundle Bundle
	cat    *Catalogue
}

// New validates the bundle's catalogue and returns an engine.
func New(bundle Bundle) (*Engine, error) {
	cat, err := NewCatalogue(bundle.Questions)
	if err != nil {
		return nil, fmt.Errorf("bundle %s: %w", bundle.Name, err)
	}
	if bundle.Bands == nil {
		bundle.Bands = defaultBands
	}
	return &Engine{bundle: bundle, cat: cat}, nil
}

// MustNew builds an engine from a shipped bundle and panics on error.
func MustNew(bundle Bundle) *Engine {
	e, err := New(bundle)
	if err != nil {
		panic(err)
	}
	return e
}

// Questions returns the full catalogue rendered for a locale.
func (e *Engine) Questions(locale model.Locale) []model.RenderedQuestion {
	return e.render(e.cat.Questions(), locale)
}

// VisibleQuestions returns the ordered subset of questions currently
// applicable given the answers so far, rendered for a locale.
func (e *Engine) VisibleQuestions(set AnswerSet, locale model.Locale) []model.RenderedQuestion {
	return e.render(visible(e.cat, set), locale)
}

// Progress returns the wizard completion percentage (0-100).
func (e *Engine) Progress(set AnswerSet) int {
	return progress(e.cat, set)
}

// CanClassify reports whether every visible required question is answered.
// It is a UI-level gate: ClassifyRisk still produces a best-effort result
// when invoked early.
func (e *Engine) CanClassify(set AnswerSet) bool {
	return canClassify(e.cat, set)
}

// ClassifyRisk runs the full pipeline — scoring, tier resolution,
// obligation derivation, explanation — and returns a fresh result value.
// Identical answer sets yield identical results regardless of the order
// answers were recorded in.
func (e *Engine) ClassifyRisk(set AnswerSet, locale model.Locale) model.ClassificationResult {
	raw, tags := scoreAnswers(e.bundle.Rules, e.cat, set)
	score := clampScore(raw)
	level := classifyRisk(score, tags, e.bundle.Overrides, e.bundle.Bands)
	obligations := deriveObligations(e.bundle.Obligations, e.bundle.Messages, level, tags, locale)
	ex := explain(e.bundle.Messages, e.bundle.Recommendations, level, score, tags, locale)

	return model.ClassificationResult{
		RiskLevel:           level,
		Score:               score,
		MatchedTags:         tags,
		ApplicableArticles:  applicableArticles(obligations),
		Obligations:         obligations,
		Recommendations:     ex.Recommendations,
		Summary:             ex.Summary,
		DetailedExplanation: ex.Detail,
	}
}

// ValidateAnswer checks a submitted answer before it is recorded: the
// question must exist and the value must match its declared shape.
// Classification itself never needs this — malformed answers are ignored
// there — but the API boundary wants to reject bad input outright.
func (e *Engine) ValidateAnswer(questionID string, value model.AnswerValue) error {
	q, ok := e.cat.Question(questionID)
	if !ok {
		return fmt.Errorf("unknown question %q", questionID)
	}
	switch q.Type {
	case model.QuestionTypeBoolean:
		if value.Kind != model.AnswerKindBoolean {
			return fmt.Errorf("question %q expects a boolean answer", questionID)
		}
	case model.QuestionTypeSingleChoice:
		if value.Kind != model.AnswerKindChoice {
			return fmt.Errorf("question %q expects a single choice", questionID)
		}
		if !hasOption(q, value.Choice) {
			return fmt.Errorf("question %q has no option %q", questionID, value.Choice)
		}
	case model.QuestionTypeMultiChoice:
		if value.Kind != model.AnswerKindMultiChoice {
			return fmt.Errorf("question %q expects a multi-choice answer", questionID)
		}
		for _, v := range value.Choices {
			if !hasOption(q, v) {
				return fmt.Errorf("question %q has no option %q", questionID, v)
			}
		}
	}
	return nil
}

func (e *Engine) render(questions []model.Question, locale model.Locale) []model.RenderedQuestion {
	msgs := e.bundle.Messages
	out := make([]model.RenderedQuestion, 0, len(questions))
	for _, q := range questions {
		rq := model.RenderedQuestion{
			ID:         q.ID,
			Type:       q.Type,
			Text:       msgs.Get(locale, q.TextKey),
			ArticleRef: q.ArticleRef,
			Optional:   q.Optional,
		}
		if q.HelpTextKey != "" {
			if help, ok := msgs.Lookup(locale, q.HelpTextKey); ok {
				rq.HelpText = help
			}
		}
		for _, opt := range q.Options {
			rq.Options = append(rq.Options, model.RenderedOption{
				Value: opt.Value,
				Label: msgs.Get(locale, opt.LabelKey),
			})
		}
		out = append(out, rq)
	}
	return out
}
