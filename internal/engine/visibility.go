package engine

import "aicomply/internal/model"

// evalPredicate evaluates a visibility or scoring predicate against the
// current answers. Malformed or missing values make the leaf false rather
// than erroring: a predicate over an unanswered question simply does not
// match.
func evalPredicate(p model.Predicate, cat *Catalogue, set AnswerSet) bool {
	switch p.Op {
	case model.OpAlways:
		return true

	case model.OpEq:
		value, ok := validAnswer(cat, set, p.QuestionID)
		if !ok {
			return false
		}
		switch value.Kind {
		case model.AnswerKindBoolean:
			if value.Bool {
				return p.Value == "true"
			}
			return p.Value == "false"
		case model.AnswerKindChoice:
			return value.Choice == p.Value
		}
		return false

	case model.OpContains:
		value, ok := validAnswer(cat, set, p.QuestionID)
		if !ok || value.Kind != model.AnswerKindMultiChoice {
			return false
		}
		for _, v := range value.Choices {
			if v == p.Value {
				return true
			}
		}
		return false

	case model.OpAnd:
		for _, child := range p.Preds {
			if !evalPredicate(child, cat, set) {
				return false
			}
		}
		return true

	case model.OpOr:
		for _, child := range p.Preds {
			if evalPredicate(child, cat, set) {
				return true
			}
		}
		return false

	case model.OpNot:
		return len(p.Preds) == 1 && !evalPredicate(p.Preds[0], cat, set)
	}

	return false
}

// validAnswer returns the recorded answer for a question iff the question
// exists in the catalogue and the value matches the question's declared
// shape. Type-mismatched values, choices outside the option set and
// unknown question ids all count as unanswered — the engine never fails on
// stale client state.
func validAnswer(cat *Catalogue, set AnswerSet, questionID string) (model.AnswerValue, bool) {
	q, ok := cat.Question(questionID)
	if !ok {
		return model.AnswerValue{}, false
	}
	value, ok := set.Get(questionID)
	if !ok {
		return model.AnswerValue{}, false
	}

	switch q.Type {
	case model.QuestionTypeBoolean:
		if value.Kind != model.AnswerKindBoolean {
			return model.AnswerValue{}, false
		}
	case model.QuestionTypeSingleChoice:
		if value.Kind != model.AnswerKindChoice || !hasOption(q, value.Choice) {
			return model.AnswerValue{}, false
		}
	case model.QuestionTypeMultiChoice:
		if value.Kind != model.AnswerKindMultiChoice {
			return model.AnswerValue{}, false
		}
		for _, v := range value.Choices {
			if !hasOption(q, v) {
				return model.AnswerValue{}, false
			}
		}
	}
	return value, true
}

// resolve walks the catalogue in declaration order and computes both the
// currently visible questions and the effective answer set: the recorded
// answers restricted to visible questions. Predicates only reference
// earlier questions, so one forward pass settles cascading visibility —
// a question hidden by an earlier change takes its dependents down with
// it. Stale answers to hidden questions stay in the answer set but never
// reach a predicate or a scoring rule.
func resolve(cat *Catalogue, set AnswerSet) ([]model.Question, AnswerSet) {
	vis := make([]model.Question, 0, cat.Len())
	eff := NewAnswerSet()
	for _, q := range cat.Questions() {
		if q.VisibleIf != nil && !evalPredicate(*q.VisibleIf, cat, eff) {
			continue
		}
		vis = append(vis, q)
		if value, ok := validAnswer(cat, set, q.ID); ok {
			eff = eff.Set(q.ID, value)
		}
	}
	return vis, eff
}

// visible returns the ordered subset of catalogue questions currently
// applicable. Re-evaluated on every call: changing an earlier answer can
// add or remove later questions.
func visible(cat *Catalogue, set AnswerSet) []model.Question {
	vis, _ := resolve(cat, set)
	return vis
}

// answered reports whether a visible question carries a usable answer. An
// empty multi_choice selection only counts when the question is marked
// optional.
func answered(cat *Catalogue, set AnswerSet, q model.Question) bool {
	value, ok := validAnswer(cat, set, q.ID)
	if !ok {
		return false
	}
	if q.Type == model.QuestionTypeMultiChoice && len(value.Choices) == 0 {
		return q.Optional
	}
	return true
}

// progress returns answered-visible over total-visible as a 0-100
// percentage. The denominator is recomputed every call because visibility
// changes as answers change.
func progress(cat *Catalogue, set AnswerSet) int {
	vis := visible(cat, set)
	if len(vis) == 0 {
		return 0
	}
	count := 0
	for _, q := range vis {
		if answered(cat, set, q) {
			count++
		}
	}
	return count * 100 / len(vis)
}

// canClassify reports whether every currently visible required question
// has an answer.
func canClassify(cat *Catalogue, set AnswerSet) bool {
	for _, q := range visible(cat, set) {
		if q.Optional {
			continue
		}
		if !answered(cat, set, q) {
			return false
		}
	}
	return true
}
