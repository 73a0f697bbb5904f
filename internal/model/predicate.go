package model

// PredicateOp identifies a visibility predicate node
type PredicateOp string

const (
	OpAlways   PredicateOp = "always"   // unconditionally true
	OpEq       PredicateOp = "eq"       // answer equals Value ("true"/"false" for boolean)
	OpContains PredicateOp = "contains" // multi_choice answer contains Value
	OpAnd      PredicateOp = "and"
	OpOr       PredicateOp = "or"
	OpNot      PredicateOp = "not"
)

// Predicate is a small serializable boolean expression over prior answers.
// Predicates drive question visibility and scoring rules; they may only
// reference questions declared earlier in the catalogue, which rules out
// cycles and is validated at load time.
type Predicate struct {
	Op         PredicateOp `json:"op" bson:"op"`
	QuestionID string      `json:"questionId,omitempty" bson:"questionId,omitempty"`
	Value      string      `json:"value,omitempty" bson:"value,omitempty"`
	Preds      []Predicate `json:"preds,omitempty" bson:"preds,omitempty"`
}

// Always returns a predicate that is unconditionally true.
func Always() Predicate {
	return Predicate{Op: OpAlways}
}

// Eq matches when the answer to questionID equals value. Boolean answers
// compare against "true"/"false".
func Eq(questionID, value string) Predicate {
	return Predicate{Op: OpEq, QuestionID: questionID, Value: value}
}

// Contains matches when a multi_choice answer includes value.
func Contains(questionID, value string) Predicate {
	return Predicate{Op: OpContains, QuestionID: questionID, Value: value}
}

// And matches when every child predicate matches.
func And(preds ...Predicate) Predicate {
	return Predicate{Op: OpAnd, Preds: preds}
}

// Or matches when at least one child predicate matches.
func Or(preds ...Predicate) Predicate {
	return Predicate{Op: OpOr, Preds: preds}
}

// Not negates a predicate.
func Not(pred Predicate) Predicate {
	return Predicate{Op: OpNot, Preds: []Predicate{pred}}
}

// QuestionIDs returns every question id referenced anywhere in the
// predicate tree. Used by catalogue validation.
func (p Predicate) QuestionIDs() []string {
	var ids []string
	if p.QuestionID != "" {
		ids = append(ids, p.QuestionID)
	}
	for _, child := range p.Preds {
		ids = append(ids, child.QuestionIDs()...)
	}
	return ids
}
