package engine

import (
	"sort"

	"aicomply/internal/model"
)

// ObligationSpec is one catalogue entry of the obligation table. Key is
// the localization stem: titles render from "ob.<key>.title", descriptions
// from "ob.<key>.desc" and deadlines from "deadline.<deadlineKey>".
type ObligationSpec struct {
	Key         string
	Article     string
	Priority    model.Priority
	DeadlineKey string
}

// ObligationTable holds the per-tier base obligation sets plus the
// targeted obligations individual tags attach on top.
type ObligationTable struct {
	Base     map[model.RiskLevel][]ObligationSpec
	Targeted map[model.RuleTag][]ObligationSpec
}

// deriveObligations builds the ordered obligation list for a tier and tag
// set. The tier's base set is unconditional; matched tags contribute their
// targeted obligations on top, in match order. Duplicate articles collapse
// to a single obligation keeping the first contributor's wording, the most
// severe priority of all contributors and the first catalogue position.
// Final order: priority descending, ties broken by that position (stable).
func deriveObligations(tbl ObligationTable, msgs Messages, level model.RiskLevel, tags []model.RuleTag, locale model.Locale) []model.Obligation {
	specs := append([]ObligationSpec(nil), tbl.Base[level]...)
	for _, tag := range tags {
		specs = append(specs, tbl.Targeted[tag]...)
	}

	merged := make([]ObligationSpec, 0, len(specs))
	byArticle := make(map[string]int, len(specs))
	for _, spec := range specs {
		if pos, dup := byArticle[spec.Article]; dup {
			merged[pos].Priority = merged[pos].Priority.Max(spec.Priority)
			continue
		}
		byArticle[spec.Article] = len(merged)
		merged = append(merged, spec)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Priority.Rank() > merged[j].Priority.Rank()
	})

	out := make([]model.Obligation, 0, len(merged))
	for _, spec := range merged {
		out = append(out, model.Obligation{
			Article:     spec.Article,
			Title:       msgs.Get(locale, "ob."+spec.Key+".title"),
			Description: msgs.Get(locale, "ob."+spec.Key+".desc"),
			Priority:    spec.Priority,
			Deadline:    msgs.Get(locale, "deadline."+spec.DeadlineKey),
		})
	}
	return out
}

// applicableArticles extracts the ordered, deduplicated article list from
// a derived obligation list.
func applicableArticles(obligations []model.Obligation) []string {
	seen := make(map[string]bool, len(obligations))
	out := make([]string, 0, len(obligations))
	for _, ob := range obligations {
		if seen[ob.Article] {
			continue
		}
		seen[ob.Article] = true
		out = append(out, ob.Article)
	}
	return out
}
