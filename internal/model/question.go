package model

// Locale selects the language used for rendered questions, explanations
// and obligations.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// QuestionType defines the type of classification question
type QuestionType string

const (
	QuestionTypeBoolean      QuestionType = "boolean"       // yes/no
	QuestionTypeSingleChoice QuestionType = "single_choice" // exactly one option
	QuestionTypeMultiChoice  QuestionType = "multi_choice"  // zero or more options
)

// Option is one selectable value of a choice question
type Option struct {
	Value    string `json:"value" bson:"value"`
	LabelKey string `json:"labelKey" bson:"labelKey"` // localization key
}

// Question is a single entry of the classification catalogue. Questions are
// immutable, versioned as a set with the application; there is no runtime
// mutation.
type Question struct {
	ID          string       `json:"id" bson:"id"`
	Type        QuestionType `json:"type" bson:"type"`
	TextKey     string       `json:"textKey" bson:"textKey"`
	HelpTextKey string       `json:"helpTextKey,omitempty" bson:"helpTextKey,omitempty"`
	Options     []Option     `json:"options,omitempty" bson:"options,omitempty"` // choice types only
	ArticleRef  string       `json:"articleRef,omitempty" bson:"articleRef,omitempty"`
	Optional    bool         `json:"optional,omitempty" bson:"optional,omitempty"` // multi_choice may stay empty
	VisibleIf   *Predicate   `json:"visibleIf,omitempty" bson:"visibleIf,omitempty"`
}

// RenderedOption is an option with its label resolved for a locale
type RenderedOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// RenderedQuestion is a question with all localization keys resolved,
// ready for display by the wizard UI
type RenderedQuestion struct {
	ID         string           `json:"id"`
	Type       QuestionType     `json:"type"`
	Text       string           `json:"text"`
	HelpText   string           `json:"helpText,omitempty"`
	Options    []RenderedOption `json:"options,omitempty"`
	ArticleRef string           `json:"articleRef,omitempty"`
	Optional   bool             `json:"optional,omitempty"`
}
