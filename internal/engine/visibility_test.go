package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicomply/internal/model"
)

func questionIDs(questions []model.Question) []string {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestVisibilityFollowUpAppears(t *testing.T) {
	cat := MustCatalogue(productionQuestions)

	set := NewAnswerSet()
	assert.NotContains(t, questionIDs(visible(cat, set)), "biometric-modality")

	set = set.Set("category", model.ChoiceValue("biometric"))
	assert.Contains(t, questionIDs(visible(cat, set)), "biometric-modality")
	assert.NotContains(t, questionIDs(visible(cat, set)), "hr-use")

	set = set.Set("category", model.ChoiceValue("hr-scoring"))
	assert.NotContains(t, questionIDs(visible(cat, set)), "biometric-modality")
	assert.Contains(t, questionIDs(visible(cat, set)), "hr-use")
}

func TestVisibilityOrPredicate(t *testing.T) {
	cat := MustCatalogue(productionQuestions)

	for _, category := range []string{"chatbot", "content-generation"} {
		set := NewAnswerSet().Set("category", model.ChoiceValue(category))
		assert.Contains(t, questionIDs(visible(cat, set)), "synthetic")
	}

	set := NewAnswerSet().Set("category", model.ChoiceValue("analytics"))
	assert.NotContains(t, questionIDs(visible(cat, set)), "synthetic")
}

func TestStaleAnswerIgnoredNotDropped(t *testing.T) {
	cat := MustCatalogue(productionQuestions)

	set := NewAnswerSet().
		Set("category", model.ChoiceValue("biometric")).
		Set("biometric-modality", model.ChoiceValue("facial-remote"))

	// Changing the earlier answer hides the follow-up; its answer stays
	// recorded but stops counting.
	set = set.Set("category", model.ChoiceValue("analytics"))

	_, stillThere := set.Get("biometric-modality")
	assert.True(t, stillThere)

	_, eff := resolve(cat, set)
	_, counted := eff.Get("biometric-modality")
	assert.False(t, counted)

	score, tags := scoreAnswers(productionRules, cat, set)
	assert.Equal(t, 5, score) // analytics only
	assert.NotContains(t, tags, TagRemoteBiometric)
}

func TestProgressRecomputesDenominator(t *testing.T) {
	cat := MustCatalogue(productionQuestions)

	set := NewAnswerSet()
	assert.Equal(t, 0, progress(cat, set))

	set = set.Set("category", model.ChoiceValue("analytics"))
	// 10 questions visible (no follow-ups), category answered, prohibited
	// optional counts as unanswered while empty and unset.
	p := progress(cat, set)
	assert.Greater(t, p, 0)
	assert.Less(t, p, 100)

	// Switching to biometric adds a follow-up: same answered count, larger
	// denominator, progress can only drop.
	q := progress(cat, set.Set("category", model.ChoiceValue("biometric")))
	assert.LessOrEqual(t, q, p)
}

func TestProgressComplete(t *testing.T) {
	cat := MustCatalogue(demoQuestions)

	set := NewAnswerSet().
		Set("category", model.ChoiceValue("analytics")).
		Set("autonomy", model.ChoiceValue("none")).
		Set("affected", model.ChoiceValue("employees")).
		Set("domain", model.ChoiceValue("other")).
		Set("data", model.ChoiceValue("anonymized"))

	assert.Equal(t, 100, progress(cat, set))
	assert.True(t, canClassify(cat, set))
}

func TestCanClassifyRequiresVisibleRequired(t *testing.T) {
	cat := MustCatalogue(productionQuestions)

	set := NewAnswerSet().
		Set("category", model.ChoiceValue("analytics")).
		Set("autonomy", model.ChoiceValue("none")).
		Set("affected", model.ChoiceValue("employees")).
		Set("domain", model.ChoiceValue("other")).
		Set("data", model.ChoiceValue("anonymized")).
		Set("interaction", model.BoolValue(false)).
		Set("safety", model.BoolValue(false))

	// prohibited is optional and may stay empty
	assert.True(t, canClassify(cat, set))

	// Switching to biometric exposes a required follow-up
	set = set.Set("category", model.ChoiceValue("biometric"))
	assert.False(t, canClassify(cat, set))

	set = set.Set("biometric-modality", model.ChoiceValue("voice"))
	assert.True(t, canClassify(cat, set))
}

func TestOptionalMultiChoiceMayStayEmpty(t *testing.T) {
	cat := MustCatalogue(productionQuestions)

	set := NewAnswerSet().Set("prohibited", model.MultiChoiceValue())
	q, ok := cat.Question("prohibited")
	require.True(t, ok)
	assert.True(t, answered(cat, set, q))
}

func TestMalformedAnswerCountsAsUnanswered(t *testing.T) {
	cat := MustCatalogue(productionQuestions)

	cases := []struct {
		name  string
		id    string
		value model.AnswerValue
	}{
		{"wrong kind for choice", "category", model.BoolValue(true)},
		{"value outside option set", "category", model.ChoiceValue("time-travel")},
		{"wrong kind for boolean", "interaction", model.ChoiceValue("yes")},
		{"multi with unknown option", "prohibited", model.MultiChoiceValue("social-scoring", "bad")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := NewAnswerSet().Set(tc.id, tc.value)
			q, ok := cat.Question(tc.id)
			require.True(t, ok)
			assert.False(t, answered(cat, set, q))
		})
	}
}

func TestUnknownQuestionIDIgnored(t *testing.T) {
	cat := MustCatalogue(productionQuestions)

	set := NewAnswerSet().
		Set("category", model.ChoiceValue("analytics")).
		Set("question-from-v2-catalogue", model.ChoiceValue("whatever"))

	score, _ := scoreAnswers(productionRules, cat, set)
	assert.Equal(t, 5, score)
	assert.Equal(t, len(visible(cat, NewAnswerSet())), len(visible(cat, set)))
}
