package model

// AnswerKind tags the variant held by an AnswerValue
type AnswerKind string

const (
	AnswerKindBoolean     AnswerKind = "boolean"
	AnswerKindChoice      AnswerKind = "choice"
	AnswerKindMultiChoice AnswerKind = "multichoice"
)

// AnswerValue is a tagged union over the three answer shapes. The scoring
// engine matches on Kind instead of sniffing runtime types; a value whose
// Kind does not match its question's declared type counts as unanswered.
type AnswerValue struct {
	Kind    AnswerKind `json:"kind" bson:"kind"`
	Bool    bool       `json:"bool,omitempty" bson:"bool,omitempty"`
	Choice  string     `json:"choice,omitempty" bson:"choice,omitempty"`
	Choices []string   `json:"choices,omitempty" bson:"choices,omitempty"`
}

// BoolValue builds a boolean answer value.
func BoolValue(b bool) AnswerValue {
	return AnswerValue{Kind: AnswerKindBoolean, Bool: b}
}

// ChoiceValue builds a single_choice answer value.
func ChoiceValue(v string) AnswerValue {
	return AnswerValue{Kind: AnswerKindChoice, Choice: v}
}

// MultiChoiceValue builds a multi_choice answer value.
func MultiChoiceValue(vs ...string) AnswerValue {
	return AnswerValue{Kind: AnswerKindMultiChoice, Choices: vs}
}

// Answer pairs a question id with the recorded value. Exactly one answer
// per question id is kept in an answer set (upsert, not append).
type Answer struct {
	QuestionID string      `json:"questionId" bson:"questionId"`
	Value      AnswerValue `json:"value" bson:"value"`
}
