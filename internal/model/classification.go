package model

// RiskLevel is one of the four EU AI Act risk tiers, totally ordered by
// severity: unacceptable > high > limited > minimal.
type RiskLevel string

const (
	RiskUnacceptable RiskLevel = "unacceptable"
	RiskHigh         RiskLevel = "high"
	RiskLimited      RiskLevel = "limited"
	RiskMinimal      RiskLevel = "minimal"
)

// Severity returns the rank of a risk level for override precedence.
// Higher means more severe; unknown levels rank below minimal.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskUnacceptable:
		return 3
	case RiskHigh:
		return 2
	case RiskLimited:
		return 1
	case RiskMinimal:
		return 0
	}
	return -1
}

// Priority ranks a compliance obligation
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank returns the sort rank of a priority, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	}
	return -1
}

// Max returns the more severe of two priorities.
func (p Priority) Max(other Priority) Priority {
	if other.Rank() > p.Rank() {
		return other
	}
	return p
}

// RuleTag identifies a matched scoring condition. Tags accumulate score,
// select targeted obligations and drive explanations.
type RuleTag string

// Obligation is a single compliance duty tied to a legal article.
// Ordering within a result is significant: priority descending, ties broken
// by catalogue declaration order.
type Obligation struct {
	Article     string   `json:"article" bson:"article"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Priority    Priority `json:"priority" bson:"priority"`
	Deadline    string   `json:"deadline" bson:"deadline"`
}

// ClassificationResult is the outcome of one classification run. It is a
// value, produced fresh on every call and never mutated afterwards;
// persistence and versioning belong to the storage layer.
type ClassificationResult struct {
	RiskLevel           RiskLevel    `json:"riskLevel" bson:"riskLevel"`
	Score               int          `json:"score" bson:"score"` // clamped to 0-100
	MatchedTags         []RuleTag    `json:"matchedTags" bson:"matchedTags"`
	ApplicableArticles  []string     `json:"applicableArticles" bson:"applicableArticles"`
	Obligations         []Obligation `json:"obligations" bson:"obligations"`
	Recommendations     []string     `json:"recommendations" bson:"recommendations"`
	Summary             string       `json:"summary" bson:"summary"`
	DetailedExplanation string       `json:"detailedExplanation" bson:"detailedExplanation"`
}
