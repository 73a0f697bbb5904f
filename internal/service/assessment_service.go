package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aicomply/internal/cache"
	"aicomply/internal/engine"
	"aicomply/internal/model"
	"aicomply/internal/repository"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrAssessmentClosed   = errors.New("assessment already classified")
	ErrIncomplete         = errors.New("questionnaire incomplete")
)

// AssessmentState is the wizard view returned to the client after every
// mutation: the currently visible questions rendered for the assessment's
// locale, the effective answers and the completion gate.
type AssessmentState struct {
	Assessment *model.Assessment        `json:"assessment"`
	Questions  []model.RenderedQuestion `json:"questions"`
	Answers    []model.Answer           `json:"answers"`
	Progress   int                      `json:"progress"`
	Complete   bool                     `json:"complete"`
}

// AssessmentService runs classification sessions: it owns the draft answer
// lifecycle, invokes the engine and materializes results as obligation
// tasks.
type AssessmentService struct {
	eng            *engine.Engine
	assessmentRepo repository.AssessmentRepo
	systemRepo     repository.SystemRepo
	taskRepo       repository.TaskRepo
	draftCache     cache.DraftCache
	summaryCache   cache.SummaryCache
	broadcaster    Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	eng *engine.Engine,
	assessmentRepo repository.AssessmentRepo,
	systemRepo repository.SystemRepo,
	taskRepo repository.TaskRepo,
	draftCache cache.DraftCache,
	summaryCache cache.SummaryCache,
) *AssessmentService {
	return &AssessmentService{
		eng:            eng,
		assessmentRepo: assessmentRepo,
		systemRepo:     systemRepo,
		taskRepo:       taskRepo,
		draftCache:     draftCache,
		summaryCache:   summaryCache,
	}
}

// SetBroadcaster injects the WebSocket broadcaster
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Questions returns the full catalogue rendered for a locale
func (s *AssessmentService) Questions(locale model.Locale) []model.RenderedQuestion {
	return s.eng.Questions(locale)
}

// Start opens a new classification run for a system. Re-assessing a system
// always starts fresh: earlier runs stay in the history untouched.
func (s *AssessmentService) Start(ctx context.Context, orgID, systemID string, locale model.Locale) (*AssessmentState, error) {
	system, err := s.systemRepo.GetByID(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get system: %w", err)
	}
	if system == nil || system.OrgID != orgID {
		return nil, fmt.Errorf("system not found")
	}

	if locale != model.LocaleEN && locale != model.LocaleES {
		locale = model.LocaleEN
	}

	assessment := &model.Assessment{
		ID:       "asm_" + uuid.New().String()[:8],
		SystemID: systemID,
		OrgID:    orgID,
		Status:   model.AssessmentCollecting,
		Locale:   locale,
	}
	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	draft := &cache.Draft{AssessmentID: assessment.ID, Locale: locale}
	if err := s.draftCache.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to init draft: %w", err)
	}

	return s.state(assessment, nil), nil
}

// GetState returns the current wizard view of an assessment
func (s *AssessmentService) GetState(ctx context.Context, orgID, assessmentID string) (*AssessmentState, error) {
	assessment, answers, err := s.load(ctx, orgID, assessmentID)
	if err != nil {
		return nil, err
	}
	return s.state(assessment, answers), nil
}

// SaveAnswer records one answer in the draft and returns the refreshed
// state — changing an early answer can reveal or hide later questions, so
// the client always gets the re-resolved view back.
func (s *AssessmentService) SaveAnswer(ctx context.Context, orgID, assessmentID, questionID string, value model.AnswerValue) (*AssessmentState, error) {
	assessment, answers, err := s.load(ctx, orgID, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.Status != model.AssessmentCollecting {
		return nil, ErrAssessmentClosed
	}

	if err := s.eng.ValidateAnswer(questionID, value); err != nil {
		return nil, err
	}

	set := engine.AnswerSetFrom(answers).Set(questionID, value)
	draft := &cache.Draft{
		AssessmentID: assessmentID,
		Answers:      set.Answers(),
		Locale:       assessment.Locale,
	}
	if err := s.draftCache.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return s.state(assessment, draft.Answers), nil
}

// Classify finalizes an assessment: it runs the engine over the draft,
// persists the result, materializes obligations as checklist tasks and
// stamps the system with its new risk tier.
func (s *AssessmentService) Classify(ctx context.Context, orgID, assessmentID string) (*model.Assessment, error) {
	assessment, answers, err := s.load(ctx, orgID, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.Status != model.AssessmentCollecting {
		return nil, ErrAssessmentClosed
	}

	set := engine.AnswerSetFrom(answers)
	if !s.eng.CanClassify(set) {
		return nil, fmt.Errorf("%w: %d%% answered", ErrIncomplete, s.eng.Progress(set))
	}

	result := s.eng.ClassifyRisk(set, assessment.Locale)
	now := time.Now()

	assessment.Status = model.AssessmentClassified
	assessment.Answers = set.Answers()
	assessment.Result = &result
	assessment.ClassifiedAt = &now

	if err := s.assessmentRepo.Finalize(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to finalize assessment: %w", err)
	}

	if err := s.systemRepo.SetClassified(ctx, assessment.SystemID, result.RiskLevel); err != nil {
		return nil, fmt.Errorf("failed to update system: %w", err)
	}

	// Superseded runs' open tasks would double-count against the new set
	if err := s.taskRepo.DeleteOpenBySystem(ctx, assessment.SystemID); err != nil {
		return nil, fmt.Errorf("failed to clear stale tasks: %w", err)
	}

	tasks := make([]*model.ObligationTask, 0, len(result.Obligations))
	for _, ob := range result.Obligations {
		tasks = append(tasks, &model.ObligationTask{
			ID:           "task_" + uuid.New().String()[:8],
			OrgID:        orgID,
			SystemID:     assessment.SystemID,
			AssessmentID: assessment.ID,
			Article:      ob.Article,
			Title:        ob.Title,
			Priority:     ob.Priority,
			Deadline:     ob.Deadline,
			Status:       model.TaskOpen,
		})
	}
	if err := s.taskRepo.CreateMany(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to create obligation tasks: %w", err)
	}

	// Draft is no longer the source of truth
	s.draftCache.Delete(ctx, assessmentID)
	s.summaryCache.Invalidate(ctx, orgID)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOrg(orgID, "assessment_classified", assessment)
	}

	return assessment, nil
}

// History lists a system's past assessments, newest first
func (s *AssessmentService) History(ctx context.Context, orgID, systemID string) ([]*model.Assessment, error) {
	system, err := s.systemRepo.GetByID(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get system: %w", err)
	}
	if system == nil || system.OrgID != orgID {
		return nil, fmt.Errorf("system not found")
	}
	return s.assessmentRepo.ListBySystem(ctx, systemID)
}

// ListTasks returns the obligation checklist of a system
func (s *AssessmentService) ListTasks(ctx context.Context, orgID, systemID string) ([]*model.ObligationTask, error) {
	tasks, err := s.taskRepo.ListBySystem(ctx, systemID)
	if err != nil {
		return nil, err
	}
	out := make([]*model.ObligationTask, 0, len(tasks))
	for _, task := range tasks {
		if task.OrgID == orgID {
			out = append(out, task)
		}
	}
	return out, nil
}

// ListOrgTasks returns the organization-wide obligation checklist,
// optionally filtered by status.
func (s *AssessmentService) ListOrgTasks(ctx context.Context, orgID string, status model.TaskStatus) ([]*model.ObligationTask, error) {
	if status != "" && status != model.TaskOpen && status != model.TaskDone {
		return nil, fmt.Errorf("unknown task status %q", status)
	}
	return s.taskRepo.ListByOrg(ctx, orgID, status)
}

// CompleteTask marks one obligation checklist item done
func (s *AssessmentService) CompleteTask(ctx context.Context, orgID, taskID string) (*model.ObligationTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil || task.OrgID != orgID {
		return nil, fmt.Errorf("task not found")
	}
	if task.Status == model.TaskDone {
		return task, nil
	}

	if err := s.taskRepo.MarkDone(ctx, taskID); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	now := time.Now()
	task.Status = model.TaskDone
	task.DoneAt = &now

	s.summaryCache.Invalidate(ctx, orgID)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOrg(orgID, "obligation_completed", task)
	}

	return task, nil
}

// load fetches an assessment, checks org ownership and pulls the working
// answer set: the Redis draft while collecting, the persisted set after.
func (s *AssessmentService) load(ctx context.Context, orgID, assessmentID string) (*model.Assessment, []model.Answer, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	if assessment == nil || assessment.OrgID != orgID {
		return nil, nil, ErrAssessmentNotFound
	}

	if assessment.Status != model.AssessmentCollecting {
		return assessment, assessment.Answers, nil
	}

	draft, err := s.draftCache.Get(ctx, assessmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		// Expired draft: the run restarts from zero answers
		return assessment, nil, nil
	}
	return assessment, draft.Answers, nil
}

func (s *AssessmentService) state(assessment *model.Assessment, answers []model.Answer) *AssessmentState {
	set := engine.AnswerSetFrom(answers)
	return &AssessmentState{
		Assessment: assessment,
		Questions:  s.eng.VisibleQuestions(set, assessment.Locale),
		Answers:    answers,
		Progress:   s.eng.Progress(set),
		Complete:   s.eng.CanClassify(set),
	}
}
