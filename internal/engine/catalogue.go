package engine

import (
	"fmt"

	"aicomply/internal/model"
)

// Catalogue is a validated, ordered question set. It is load-time static
// data: built once per bundle and shared read-only across all
// classification calls.
type Catalogue struct {
	questions []model.Question
	index     map[string]int // question id -> position
}

// NewCatalogue validates the question list and returns a catalogue.
// Validation enforces the structural invariants the resolver and scorer
// rely on: unique ids, option sets on choice questions, and visibility
// predicates that reference only earlier questions (no forward references,
// hence no cycles).
func NewCatalogue(questions []model.Question) (*Catalogue, error) {
	index := make(map[string]int, len(questions))

	for i, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question %d: empty id", i)
		}
		if _, dup := index[q.ID]; dup {
			return nil, fmt.Errorf("question %q: duplicate id", q.ID)
		}

		switch q.Type {
		case model.QuestionTypeBoolean:
			if len(q.Options) > 0 {
				return nil, fmt.Errorf("question %q: boolean question cannot have options", q.ID)
			}
		case model.QuestionTypeSingleChoice, model.QuestionTypeMultiChoice:
			if len(q.Options) == 0 {
				return nil, fmt.Errorf("question %q: choice question needs options", q.ID)
			}
		default:
			return nil, fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
		}

		if q.VisibleIf != nil {
			for _, ref := range q.VisibleIf.QuestionIDs() {
				if _, ok := index[ref]; !ok {
					return nil, fmt.Errorf("question %q: visibility references unknown or later question %q", q.ID, ref)
				}
			}
			if err := validatePredicate(*q.VisibleIf); err != nil {
				return nil, fmt.Errorf("question %q: %w", q.ID, err)
			}
		}

		index[q.ID] = i
	}

	return &Catalogue{questions: questions, index: index}, nil
}

// MustCatalogue builds a catalogue from shipped bundle data and panics on
// error. Bundle catalogues are compile-time constants; a validation failure
// there is a programming error.
func MustCatalogue(questions []model.Question) *Catalogue {
	cat, err := NewCatalogue(questions)
	if err != nil {
		panic(err)
	}
	return cat
}

func validatePredicate(p model.Predicate) error {
	switch p.Op {
	case model.OpAlways:
		return nil
	case model.OpEq, model.OpContains:
		if p.QuestionID == "" {
			return fmt.Errorf("predicate %s: missing question id", p.Op)
		}
		return nil
	case model.OpAnd, model.OpOr:
		if len(p.Preds) == 0 {
			return fmt.Errorf("predicate %s: no children", p.Op)
		}
	case model.OpNot:
		if len(p.Preds) != 1 {
			return fmt.Errorf("predicate not: needs exactly one child")
		}
	default:
		return fmt.Errorf("unknown predicate op %q", p.Op)
	}

	for _, child := range p.Preds {
		if err := validatePredicate(child); err != nil {
			return err
		}
	}
	return nil
}

// Questions returns the catalogue in declaration order.
func (c *Catalogue) Questions() []model.Question {
	return c.questions
}

// Question looks up a question by id.
func (c *Catalogue) Question(id string) (model.Question, bool) {
	pos, ok := c.index[id]
	if !ok {
		return model.Question{}, false
	}
	return c.questions[pos], true
}

// Len returns the catalogue size.
func (c *Catalogue) Len() int {
	return len(c.questions)
}

// hasOption reports whether value is a declared option of the question.
func hasOption(q model.Question, value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
