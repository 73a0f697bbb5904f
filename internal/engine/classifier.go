package engine

import "aicomply/internal/model"

// Override forces a risk level when its tag matched, regardless of the
// numeric score.
type Override struct {
	Tag   model.RuleTag
	Level model.RiskLevel
}

// Band maps a score range to a risk level. A band matches when the clamped
// score is >= Min; bands are declared most severe first and partition
// 0-100 with no gaps, the last band carrying Min 0.
type Band struct {
	Min   int
	Level model.RiskLevel
}

// defaultBands is the reference threshold policy: >=80 unacceptable,
// >=50 high, >=20 limited, else minimal. Boundary values belong to the
// higher-severity band.
var defaultBands = []Band{
	{Min: 80, Level: model.RiskUnacceptable},
	{Min: 50, Level: model.RiskHigh},
	{Min: 20, Level: model.RiskLimited},
	{Min: 0, Level: model.RiskMinimal},
}

// classifyRisk resolves the risk level in two phases. First the override
// phase: among overrides whose tag matched, the most severe level wins —
// severity is a total order, so resolution is deterministic even when
// several overrides match. Only if no override fired does the threshold
// phase map the clamped score through the bands.
func classifyRisk(score int, tags []model.RuleTag, overrides []Override, bands []Band) model.RiskLevel {
	matched := make(map[model.RuleTag]bool, len(tags))
	for _, t := range tags {
		matched[t] = true
	}

	var forced model.RiskLevel
	fired := false
	for _, o := range overrides {
		if !matched[o.Tag] {
			continue
		}
		if !fired || o.Level.Severity() > forced.Severity() {
			forced = o.Level
			fired = true
		}
	}
	if fired {
		return forced
	}

	score = clampScore(score)
	for _, b := range bands {
		if score >= b.Min {
			return b.Level
		}
	}
	return model.RiskMinimal
}
