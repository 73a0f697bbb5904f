package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicomply/internal/engine"
	"aicomply/internal/model"
)

type testEnv struct {
	systemRepo     *fakeSystemRepo
	assessmentRepo *fakeAssessmentRepo
	taskRepo       *fakeTaskRepo
	draftCache     *fakeDraftCache
	summaryCache   *fakeSummaryCache
	broadcaster    *fakeBroadcaster
	svc            *AssessmentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		systemRepo:     newFakeSystemRepo(),
		assessmentRepo: newFakeAssessmentRepo(),
		taskRepo:       newFakeTaskRepo(),
		draftCache:     newFakeDraftCache(),
		summaryCache:   newFakeSummaryCache(),
		broadcaster:    &fakeBroadcaster{},
	}
	env.svc = NewAssessmentService(
		engine.MustNew(engine.ProductionBundle()),
		env.assessmentRepo, env.systemRepo, env.taskRepo,
		env.draftCache, env.summaryCache,
	)
	env.svc.SetBroadcaster(env.broadcaster)
	return env
}

func (env *testEnv) seedSystem(t *testing.T, orgID string) *model.AISystem {
	t.Helper()
	system := &model.AISystem{
		ID:     "sys_test",
		OrgID:  orgID,
		Name:   "CV Screening Assistant",
		Status: model.SystemDraft,
	}
	require.NoError(t, env.systemRepo.Create(context.Background(), system))
	return system
}

func TestStartOpensCollectingRun(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")

	state, err := env.svc.Start(context.Background(), "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)

	assert.Equal(t, model.AssessmentCollecting, state.Assessment.Status)
	assert.Equal(t, 0, state.Progress)
	assert.False(t, state.Complete)
	assert.NotEmpty(t, state.Questions)

	// Conditional follow-ups stay hidden with no answers recorded
	for _, q := range state.Questions {
		assert.NotEqual(t, "hr-use", q.ID)
		assert.NotEqual(t, "biometric-modality", q.ID)
	}
}

func TestStartUnknownSystem(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Start(context.Background(), "org_a", "sys_missing", model.LocaleEN)
	assert.Error(t, err)
}

func TestStartDefaultsLocale(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")

	state, err := env.svc.Start(context.Background(), "org_a", system.ID, model.Locale("fr"))
	require.NoError(t, err)
	assert.Equal(t, model.LocaleEN, state.Assessment.Locale)
}

func TestSaveAnswerRevealsFollowUp(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)

	state, err = env.svc.SaveAnswer(ctx, "org_a", state.Assessment.ID, "category", model.ChoiceValue("hr-scoring"))
	require.NoError(t, err)

	found := false
	for _, q := range state.Questions {
		if q.ID == "hr-use" {
			found = true
		}
	}
	assert.True(t, found, "hr-use should become visible")
	assert.Greater(t, state.Progress, 0)
}

func TestSaveAnswerRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	id := state.Assessment.ID

	_, err = env.svc.SaveAnswer(ctx, "org_a", id, "no-such-question", model.BoolValue(true))
	assert.Error(t, err)

	_, err = env.svc.SaveAnswer(ctx, "org_a", id, "category", model.BoolValue(true))
	assert.Error(t, err, "type mismatch")

	_, err = env.svc.SaveAnswer(ctx, "org_a", id, "category", model.ChoiceValue("not-an-option"))
	assert.Error(t, err)
}

func TestSaveAnswerOrgIsolation(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)

	_, err = env.svc.SaveAnswer(ctx, "org_b", state.Assessment.ID, "category", model.ChoiceValue("chatbot"))
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestClassifyRequiresCompleteness(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)

	_, err = env.svc.Classify(ctx, "org_a", state.Assessment.ID)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func answerAll(t *testing.T, env *testEnv, assessmentID string) {
	t.Helper()
	ctx := context.Background()
	answers := []model.Answer{
		{QuestionID: "category", Value: model.ChoiceValue("hr-scoring")},
		{QuestionID: "prohibited", Value: model.MultiChoiceValue()},
		{QuestionID: "hr-use", Value: model.ChoiceValue("screening")},
		{QuestionID: "autonomy", Value: model.ChoiceValue("none")},
		{QuestionID: "affected", Value: model.ChoiceValue("employees")},
		{QuestionID: "domain", Value: model.ChoiceValue("employment")},
		{QuestionID: "data", Value: model.ChoiceValue("personal")},
		{QuestionID: "interaction", Value: model.BoolValue(false)},
		{QuestionID: "safety", Value: model.BoolValue(false)},
	}
	for _, a := range answers {
		_, err := env.svc.SaveAnswer(ctx, "org_a", assessmentID, a.QuestionID, a.Value)
		require.NoError(t, err)
	}
}

func TestClassifyFullFlow(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	answerAll(t, env, state.Assessment.ID)

	state, err = env.svc.GetState(ctx, "org_a", state.Assessment.ID)
	require.NoError(t, err)
	assert.True(t, state.Complete)
	assert.Equal(t, 100, state.Progress)

	assessment, err := env.svc.Classify(ctx, "org_a", state.Assessment.ID)
	require.NoError(t, err)

	assert.Equal(t, model.AssessmentClassified, assessment.Status)
	require.NotNil(t, assessment.Result)
	assert.Equal(t, model.RiskHigh, assessment.Result.RiskLevel)
	assert.NotNil(t, assessment.ClassifiedAt)

	// System inventory stamped with the new tier
	updated, err := env.systemRepo.GetByID(ctx, system.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SystemAssessed, updated.Status)
	assert.Equal(t, model.RiskHigh, updated.RiskLevel)

	// Every derived obligation materialized as an open task
	tasks, err := env.svc.ListTasks(ctx, "org_a", system.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, len(assessment.Result.Obligations))
	for _, task := range tasks {
		assert.Equal(t, model.TaskOpen, task.Status)
		assert.Equal(t, assessment.ID, task.AssessmentID)
	}

	// Draft cleared, summary invalidated, dashboards notified
	draft, err := env.draftCache.Get(ctx, assessment.ID)
	require.NoError(t, err)
	assert.Nil(t, draft)
	assert.Greater(t, env.summaryCache.invalidated, 0)
	assert.Contains(t, env.broadcaster.typesSent(), "assessment_classified")
}

func TestClassifyTwiceFails(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	answerAll(t, env, state.Assessment.ID)

	_, err = env.svc.Classify(ctx, "org_a", state.Assessment.ID)
	require.NoError(t, err)

	_, err = env.svc.Classify(ctx, "org_a", state.Assessment.ID)
	assert.ErrorIs(t, err, ErrAssessmentClosed)

	_, err = env.svc.SaveAnswer(ctx, "org_a", state.Assessment.ID, "category", model.ChoiceValue("chatbot"))
	assert.ErrorIs(t, err, ErrAssessmentClosed)
}

func TestGetStateAfterClassifyUsesPersistedAnswers(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	answerAll(t, env, state.Assessment.ID)

	_, err = env.svc.Classify(ctx, "org_a", state.Assessment.ID)
	require.NoError(t, err)

	// Draft is gone but the classified run still shows its answers
	state, err = env.svc.GetState(ctx, "org_a", state.Assessment.ID)
	require.NoError(t, err)
	assert.Len(t, state.Answers, 9)
	assert.True(t, state.Complete)
}

func TestExpiredDraftRestartsEmpty(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	_, err = env.svc.SaveAnswer(ctx, "org_a", state.Assessment.ID, "category", model.ChoiceValue("chatbot"))
	require.NoError(t, err)

	// Simulate TTL expiry
	require.NoError(t, env.draftCache.Delete(ctx, state.Assessment.ID))

	state, err = env.svc.GetState(ctx, "org_a", state.Assessment.ID)
	require.NoError(t, err)
	assert.Empty(t, state.Answers)
	assert.Equal(t, 0, state.Progress)
}

func TestCompleteTask(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	answerAll(t, env, state.Assessment.ID)
	_, err = env.svc.Classify(ctx, "org_a", state.Assessment.ID)
	require.NoError(t, err)

	tasks, err := env.svc.ListTasks(ctx, "org_a", system.ID)
	require.NoError(t, err)
	require.NotEmpty(t, tasks)

	task, err := env.svc.CompleteTask(ctx, "org_a", tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskDone, task.Status)
	assert.Contains(t, env.broadcaster.typesSent(), "obligation_completed")

	// Completing a done task is a no-op
	again, err := env.svc.CompleteTask(ctx, "org_a", tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskDone, again.Status)

	_, err = env.svc.CompleteTask(ctx, "org_b", tasks[0].ID)
	assert.Error(t, err)
}

func TestHistoryListsRuns(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	first, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	answerAll(t, env, first.Assessment.ID)
	_, err = env.svc.Classify(ctx, "org_a", first.Assessment.ID)
	require.NoError(t, err)

	// Re-assessing starts a fresh run alongside the classified one
	_, err = env.svc.Start(ctx, "org_a", system.ID, model.LocaleES)
	require.NoError(t, err)

	history, err := env.svc.History(ctx, "org_a", system.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestReclassifyReplacesOpenTasks(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	first, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	answerAll(t, env, first.Assessment.ID)
	firstRun, err := env.svc.Classify(ctx, "org_a", first.Assessment.ID)
	require.NoError(t, err)

	tasks, err := env.svc.ListTasks(ctx, "org_a", system.ID)
	require.NoError(t, err)
	require.Len(t, tasks, len(firstRun.Result.Obligations))

	// One obligation is dealt with before the system is re-assessed
	_, err = env.svc.CompleteTask(ctx, "org_a", tasks[0].ID)
	require.NoError(t, err)

	second, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	answerAll(t, env, second.Assessment.ID)
	secondRun, err := env.svc.Classify(ctx, "org_a", second.Assessment.ID)
	require.NoError(t, err)

	// The new run's tasks replace the superseded run's open ones; the
	// completed task survives as a record.
	tasks, err = env.svc.ListTasks(ctx, "org_a", system.ID)
	require.NoError(t, err)
	require.Len(t, tasks, len(secondRun.Result.Obligations)+1)

	open, done := 0, 0
	for _, task := range tasks {
		switch task.Status {
		case model.TaskOpen:
			open++
			assert.Equal(t, second.Assessment.ID, task.AssessmentID)
		case model.TaskDone:
			done++
			assert.Equal(t, first.Assessment.ID, task.AssessmentID)
		}
	}
	assert.Equal(t, len(secondRun.Result.Obligations), open)
	assert.Equal(t, 1, done)

	// Org-wide counts don't double either
	orgOpen, orgDone, err := env.taskRepo.CountByStatus(ctx, "org_a")
	require.NoError(t, err)
	assert.Equal(t, len(secondRun.Result.Obligations), orgOpen)
	assert.Equal(t, 1, orgDone)
}

func TestListOrgTasksFiltersByStatus(t *testing.T) {
	env := newTestEnv(t)
	system := env.seedSystem(t, "org_a")
	ctx := context.Background()

	state, err := env.svc.Start(ctx, "org_a", system.ID, model.LocaleEN)
	require.NoError(t, err)
	answerAll(t, env, state.Assessment.ID)
	assessment, err := env.svc.Classify(ctx, "org_a", state.Assessment.ID)
	require.NoError(t, err)

	tasks, err := env.svc.ListTasks(ctx, "org_a", system.ID)
	require.NoError(t, err)
	_, err = env.svc.CompleteTask(ctx, "org_a", tasks[0].ID)
	require.NoError(t, err)

	open, err := env.svc.ListOrgTasks(ctx, "org_a", model.TaskOpen)
	require.NoError(t, err)
	assert.Len(t, open, len(assessment.Result.Obligations)-1)

	done, err := env.svc.ListOrgTasks(ctx, "org_a", model.TaskDone)
	require.NoError(t, err)
	assert.Len(t, done, 1)

	all, err := env.svc.ListOrgTasks(ctx, "org_a", "")
	require.NoError(t, err)
	assert.Len(t, all, len(assessment.Result.Obligations))

	_, err = env.svc.ListOrgTasks(ctx, "org_a", "bogus")
	assert.Error(t, err)

	other, err := env.svc.ListOrgTasks(ctx, "org_b", "")
	require.NoError(t, err)
	assert.Empty(t, other)
}
