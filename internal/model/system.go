package model

import "time"

// SystemStatus tracks where an AI system stands in the compliance flow
type SystemStatus string

const (
	SystemDraft    SystemStatus = "draft"    // registered, not yet assessed
	SystemAssessed SystemStatus = "assessed" // has at least one classification
	SystemRetired  SystemStatus = "retired"  // no longer in use
)

// AISystem is one entry of an organization's AI inventory
type AISystem struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	OrgID       string       `json:"orgId" bson:"orgId"`
	Name        string       `json:"name" bson:"name"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Vendor      string       `json:"vendor,omitempty" bson:"vendor,omitempty"`
	Status      SystemStatus `json:"status" bson:"status"`
	RiskLevel   RiskLevel    `json:"riskLevel,omitempty" bson:"riskLevel,omitempty"` // latest classification
	CreatedAt   time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updatedAt"`
}
