package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicomply/internal/model"
)

func TestExplainSummaryCarriesScore(t *testing.T) {
	ex := explain(productionMessages, productionRecommendations, model.RiskHigh, 65,
		[]model.RuleTag{TagHRScoringCategory}, model.LocaleEN)
	assert.Contains(t, ex.Summary, "65/100")
	assert.Contains(t, ex.Summary, "high risk")
}

func TestExplainReasonsPerTag(t *testing.T) {
	ex := explain(productionMessages, productionRecommendations, model.RiskHigh, 65,
		[]model.RuleTag{TagHRScoringCategory, TagEmploymentDomain}, model.LocaleEN)
	require.Len(t, ex.Reasons, 2)
	assert.Contains(t, ex.Detail, "This classification is based on:")
	for _, reason := range ex.Reasons {
		assert.Contains(t, ex.Detail, reason)
	}
}

func TestExplainUnknownTagOmitted(t *testing.T) {
	ex := explain(productionMessages, productionRecommendations, model.RiskMinimal, 5,
		[]model.RuleTag{TagAnalyticsCategory, "tag-from-the-future"}, model.LocaleEN)
	assert.Len(t, ex.Reasons, 1)
	assert.NotContains(t, ex.Detail, "tag-from-the-future")
}

func TestExplainSpanish(t *testing.T) {
	ex := explain(productionMessages, productionRecommendations, model.RiskUnacceptable, 100,
		[]model.RuleTag{TagProhibitedPractice}, model.LocaleES)
	assert.Contains(t, ex.Summary, "inaceptable")
	require.Len(t, ex.Reasons, 1)
	assert.True(t, strings.HasPrefix(ex.Reasons[0], "El sistema"))
	assert.NotEmpty(t, ex.Recommendations)
}

func TestExplainUnknownLocaleFallsBackToEnglish(t *testing.T) {
	en := explain(productionMessages, productionRecommendations, model.RiskMinimal, 5, nil, model.LocaleEN)
	de := explain(productionMessages, productionRecommendations, model.RiskMinimal, 5, nil, model.Locale("de"))
	assert.Equal(t, en, de)
}

func TestExplainNoTagsStillSummarizes(t *testing.T) {
	ex := explain(productionMessages, productionRecommendations, model.RiskMinimal, 0, nil, model.LocaleEN)
	assert.NotEmpty(t, ex.Summary)
	assert.NotEmpty(t, ex.Detail)
	assert.Empty(t, ex.Reasons)
}

func TestMessagesLookupFallback(t *testing.T) {
	msgs := Messages{
		model.LocaleEN: {"only.english": "hello"},
		model.LocaleES: {},
	}
	s, ok := msgs.Lookup(model.LocaleES, "only.english")
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = msgs.Lookup(model.LocaleES, "missing.everywhere")
	assert.False(t, ok)
	assert.Equal(t, "missing.everywhere", msgs.Get(model.LocaleES, "missing.everywhere"))
}
