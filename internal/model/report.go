package model

import "time"

// ComplianceSummary is the org-wide dashboard aggregate: how many systems
// sit in each risk tier and how much of the obligation checklist is open.
type ComplianceSummary struct {
	OrgID           string            `json:"orgId" bson:"orgId"`
	TotalSystems    int               `json:"totalSystems" bson:"totalSystems"`
	Assessed        int               `json:"assessed" bson:"assessed"`
	ByRiskLevel     map[RiskLevel]int `json:"byRiskLevel" bson:"byRiskLevel"`
	OpenObligations int               `json:"openObligations" bson:"openObligations"`
	DoneObligations int               `json:"doneObligations" bson:"doneObligations"`
	GeneratedAt     time.Time         `json:"generatedAt" bson:"generatedAt"`
}
