package model

import "time"

// AssessmentStatus is the session state of a classification wizard run.
// collecting allows answer edits and repeated visibility re-evaluation;
// classified is terminal — starting over creates a new assessment.
type AssessmentStatus string

const (
	AssessmentCollecting AssessmentStatus = "collecting"
	AssessmentClassified AssessmentStatus = "classified"
)

// Assessment is one classification run of an AI system. While collecting,
// the draft answers live in Redis; the persisted document carries the final
// answer set and result once classified.
type Assessment struct {
	ID           string                `json:"id" bson:"_id,omitempty"`
	SystemID     string                `json:"systemId" bson:"systemId"`
	OrgID        string                `json:"orgId" bson:"orgId"`
	Status       AssessmentStatus      `json:"status" bson:"status"`
	Locale       Locale                `json:"locale" bson:"locale"`
	Answers      []Answer              `json:"answers,omitempty" bson:"answers,omitempty"`
	Result       *ClassificationResult `json:"result,omitempty" bson:"result,omitempty"`
	CreatedAt    time.Time             `json:"createdAt" bson:"createdAt"`
	ClassifiedAt *time.Time            `json:"classifiedAt,omitempty" bson:"classifiedAt,omitempty"`
}

// TaskStatus tracks an obligation checklist item
type TaskStatus string

const (
	TaskOpen TaskStatus = "open"
	TaskDone TaskStatus = "done"
)

// ObligationTask materializes one derived obligation as a trackable
// checklist item for the dashboard.
type ObligationTask struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	OrgID        string     `json:"orgId" bson:"orgId"`
	SystemID     string     `json:"systemId" bson:"systemId"`
	AssessmentID string     `json:"assessmentId" bson:"assessmentId"`
	Article      string     `json:"article" bson:"article"`
	Title        string     `json:"title" bson:"title"`
	Priority     Priority   `json:"priority" bson:"priority"`
	Deadline     string     `json:"deadline" bson:"deadline"`
	Status       TaskStatus `json:"status" bson:"status"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	DoneAt       *time.Time `json:"doneAt,omitempty" bson:"doneAt,omitempty"`
}
