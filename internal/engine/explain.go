package engine

import (
	"fmt"
	"strings"

	"aicomply/internal/model"
)

// explanation carries the localized, human-readable part of a result.
type explanation struct {
	Summary         string
	Detail          string
	Recommendations []string
	Reasons         []string
}

// explain renders the matched tags and resolved tier into localized
// strings. Pure lookup and templating: the only branching is omitting tags
// or recommendation keys that have no translation anywhere — unknown tags
// degrade gracefully, they never error.
func explain(msgs Messages, recommendations map[model.RiskLevel][]string, level model.RiskLevel, score int, tags []model.RuleTag, locale model.Locale) explanation {
	var ex explanation

	if tmpl, ok := msgs.Lookup(locale, "summary."+string(level)); ok {
		ex.Summary = fmt.Sprintf(tmpl, score)
	}

	for _, tag := range tags {
		if reason, ok := msgs.Lookup(locale, "tag."+string(tag)); ok {
			ex.Reasons = append(ex.Reasons, reason)
		}
	}

	var b strings.Builder
	if detail, ok := msgs.Lookup(locale, "detail."+string(level)); ok {
		b.WriteString(detail)
	}
	if len(ex.Reasons) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(msgs.Get(locale, "detail.reasons-intro"))
		for _, reason := range ex.Reasons {
			b.WriteString("\n- ")
			b.WriteString(reason)
		}
	}
	ex.Detail = b.String()

	for _, key := range recommendations[level] {
		if rec, ok := msgs.Lookup(locale, key); ok {
			ex.Recommendations = append(ex.Recommendations, rec)
		}
	}

	return ex
}
