package engine

import "aicomply/internal/model"

// AnswerSet is an ordered, deduplicated collection of answers with upsert
// semantics. It is an immutable value: Set returns a new AnswerSet, so a
// set handed to the engine can never change under it. Insertion order is
// preserved for display purposes but is irrelevant to scoring.
type AnswerSet struct {
	answers []model.Answer
}

// NewAnswerSet returns an empty answer set.
func NewAnswerSet() AnswerSet {
	return AnswerSet{}
}

// AnswerSetFrom builds an answer set from a slice, applying upsert
// semantics in slice order. Later duplicates overwrite earlier values but
// keep the original position.
func AnswerSetFrom(answers []model.Answer) AnswerSet {
	set := NewAnswerSet()
	for _, a := range answers {
		set = set.Set(a.QuestionID, a.Value)
	}
	return set
}

// Set records a value for a question, replacing any previous value. The
// receiver is left untouched.
func (s AnswerSet) Set(questionID string, value model.AnswerValue) AnswerSet {
	next := make([]model.Answer, len(s.answers), len(s.answers)+1)
	copy(next, s.answers)

	for i := range next {
		if next[i].QuestionID == questionID {
			next[i].Value = value
			return AnswerSet{answers: next}
		}
	}
	next = append(next, model.Answer{QuestionID: questionID, Value: value})
	return AnswerSet{answers: next}
}

// Get returns the recorded value for a question, if any.
func (s AnswerSet) Get(questionID string) (model.AnswerValue, bool) {
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			return a.Value, true
		}
	}
	return model.AnswerValue{}, false
}

// Len returns the number of recorded answers, including answers to
// questions that are no longer visible.
func (s AnswerSet) Len() int {
	return len(s.answers)
}

// Answers returns a copy of the recorded answers in insertion order.
func (s AnswerSet) Answers() []model.Answer {
	out := make([]model.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}
