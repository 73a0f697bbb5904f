package engine

import "aicomply/internal/model"

// Rule is one independent scoring contribution. When its predicate holds
// the rule adds Delta to the raw score and marks Tag as matched. Rules
// never see each other: contributions sum, which keeps scoring commutative
// and order-independent.
type Rule struct {
	Tag   model.RuleTag
	When  model.Predicate
	Delta int
}

// scoreAnswers sums the deltas of every firing rule and collects the
// matched tags in rule declaration order. Every rule is evaluated, but
// against the effective answer set: a rule referencing a hidden or
// never-asked question finds no answer and does not fire. A tag fires at
// most once even if several rules carry it. The returned score is the raw,
// unclamped sum; clamping to 0-100 happens once, at result construction.
func scoreAnswers(rules []Rule, cat *Catalogue, set AnswerSet) (int, []model.RuleTag) {
	_, eff := resolve(cat, set)

	score := 0
	seen := make(map[model.RuleTag]bool, len(rules))
	tags := make([]model.RuleTag, 0, len(rules))

	for _, rule := range rules {
		if !evalPredicate(rule.When, cat, eff) {
			continue
		}
		score += rule.Delta
		if rule.Tag != "" && !seen[rule.Tag] {
			seen[rule.Tag] = true
			tags = append(tags, rule.Tag)
		}
	}
	return score, tags
}

// clampScore bounds a raw score to the exposed 0-100 range.
func clampScore(raw int) int {
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return raw
}
