package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"aicomply/internal/cache"
	"aicomply/internal/model"
)

// In-memory doubles for the Mongo repositories and Redis caches. They
// mirror the real implementations' contracts: lookups return nil on miss,
// not an error.

type fakeSystemRepo struct {
	mu      sync.Mutex
	systems map[string]*model.AISystem
}

func newFakeSystemRepo() *fakeSystemRepo {
	return &fakeSystemRepo{systems: make(map[string]*model.AISystem)}
}

func (r *fakeSystemRepo) Create(ctx context.Context, system *model.AISystem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if system.Status == "" {
		system.Status = model.SystemDraft
	}
	clone := *system
	r.systems[system.ID] = &clone
	return nil
}

func (r *fakeSystemRepo) GetByID(ctx context.Context, id string) (*model.AISystem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	system, ok := r.systems[id]
	if !ok {
		return nil, nil
	}
	clone := *system
	return &clone, nil
}

func (r *fakeSystemRepo) ListByOrg(ctx context.Context, orgID string) ([]*model.AISystem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.AISystem
	for _, system := range r.systems {
		if system.OrgID == orgID {
			clone := *system
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeSystemRepo) Update(ctx context.Context, system *model.AISystem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *system
	r.systems[system.ID] = &clone
	return nil
}

func (r *fakeSystemRepo) SetClassified(ctx context.Context, id string, level model.RiskLevel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if system, ok := r.systems[id]; ok {
		system.Status = model.SystemAssessed
		system.RiskLevel = level
	}
	return nil
}

func (r *fakeSystemRepo) CountByRiskLevel(ctx context.Context, orgID string) (map[model.RiskLevel]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[model.RiskLevel]int)
	for _, system := range r.systems {
		if system.OrgID == orgID && system.Status == model.SystemAssessed {
			counts[system.RiskLevel]++
		}
	}
	return counts, nil
}

type fakeAssessmentRepo struct {
	mu          sync.Mutex
	assessments map[string]*model.Assessment
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{assessments: make(map[string]*model.Assessment)}
}

func (r *fakeAssessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *assessment
	r.assessments[assessment.ID] = &clone
	return nil
}

func (r *fakeAssessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	assessment, ok := r.assessments[id]
	if !ok {
		return nil, nil
	}
	clone := *assessment
	return &clone, nil
}

func (r *fakeAssessmentRepo) ListBySystem(ctx context.Context, systemID string) ([]*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Assessment
	for _, assessment := range r.assessments {
		if assessment.SystemID == systemID {
			clone := *assessment
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeAssessmentRepo) Finalize(ctx context.Context, assessment *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *assessment
	r.assessments[assessment.ID] = &clone
	return nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*model.ObligationTask
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*model.ObligationTask)}
}

func (r *fakeTaskRepo) CreateMany(ctx context.Context, tasks []*model.ObligationTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, task := range tasks {
		if task.Status == "" {
			task.Status = model.TaskOpen
		}
		clone := *task
		r.tasks[task.ID] = &clone
	}
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id string) (*model.ObligationTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	clone := *task
	return &clone, nil
}

func (r *fakeTaskRepo) ListBySystem(ctx context.Context, systemID string) ([]*model.ObligationTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.ObligationTask
	for _, task := range r.tasks {
		if task.SystemID == systemID {
			clone := *task
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListByOrg(ctx context.Context, orgID string, status model.TaskStatus) ([]*model.ObligationTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.ObligationTask
	for _, task := range r.tasks {
		if task.OrgID == orgID && (status == "" || task.Status == status) {
			clone := *task
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) MarkDone(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	task.Status = model.TaskDone
	return nil
}

func (r *fakeTaskRepo) CountByStatus(ctx context.Context, orgID string) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	open, done := 0, 0
	for _, task := range r.tasks {
		if task.OrgID != orgID {
			continue
		}
		if task.Status == model.TaskDone {
			done++
		} else {
			open++
		}
	}
	return open, done, nil
}

func (r *fakeTaskRepo) DeleteOpenBySystem(ctx context.Context, systemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, task := range r.tasks {
		if task.SystemID == systemID && task.Status != model.TaskDone {
			delete(r.tasks, id)
		}
	}
	return nil
}

type fakeDraftCache struct {
	mu     sync.Mutex
	drafts map[string]*cache.Draft
}

func newFakeDraftCache() *fakeDraftCache {
	return &fakeDraftCache{drafts: make(map[string]*cache.Draft)}
}

func (c *fakeDraftCache) Set(ctx context.Context, draft *cache.Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clone := *draft
	c.drafts[draft.AssessmentID] = &clone
	return nil
}

func (c *fakeDraftCache) Get(ctx context.Context, assessmentID string) (*cache.Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	draft, ok := c.drafts[assessmentID]
	if !ok {
		return nil, nil
	}
	clone := *draft
	return &clone, nil
}

func (c *fakeDraftCache) Delete(ctx context.Context, assessmentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.drafts, assessmentID)
	return nil
}

type fakeSummaryCache struct {
	mu          sync.Mutex
	summaries   map[string]*model.ComplianceSummary
	invalidated int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{summaries: make(map[string]*model.ComplianceSummary)}
}

func (c *fakeSummaryCache) Set(ctx context.Context, summary *model.ComplianceSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clone := *summary
	c.summaries[summary.OrgID] = &clone
	return nil
}

func (c *fakeSummaryCache) Get(ctx context.Context, orgID string) (*model.ComplianceSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	summary, ok := c.summaries[orgID]
	if !ok {
		return nil, nil
	}
	clone := *summary
	return &clone, nil
}

func (c *fakeSummaryCache) Invalidate(ctx context.Context, orgID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.summaries, orgID)
	c.invalidated++
	return nil
}

type broadcastEvent struct {
	OrgID   string
	Type    string
	Payload interface{}
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []broadcastEvent
}

func (b *fakeBroadcaster) BroadcastToOrg(orgID string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastEvent{OrgID: orgID, Type: msgType, Payload: payload})
}

func (b *fakeBroadcaster) DisconnectOrg(orgID string) {}

func (b *fakeBroadcaster) typesSent() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, ev := range b.events {
		out = append(out, ev.Type)
	}
	return out
}
