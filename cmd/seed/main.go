package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicomply/internal/config"
	"aicomply/internal/engine"
	"aicomply/internal/model"
	"aicomply/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	systemRepo := repository.NewSystemRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	taskRepo := repository.NewTaskRepo(db)

	orgID := cfg.OrgID

	// A chatbot that stays in the limited tier and an HR screening tool
	// that lands in the high tier once assessed.
	chatbot := &model.AISystem{
		ID:          "sys_" + uuid.New().String()[:8],
		OrgID:       orgID,
		Name:        "Customer Support Chatbot",
		Description: "Conversational assistant answering customer questions on the web shop.",
		Vendor:      "in-house",
		Status:      model.SystemDraft,
	}
	if err := systemRepo.Create(ctx, chatbot); err != nil {
		log.Fatalf("Failed to insert system: %v", err)
	}

	screening := &model.AISystem{
		ID:          "sys_" + uuid.New().String()[:8],
		OrgID:       orgID,
		Name:        "CV Screening Assistant",
		Description: "Ranks incoming applications before recruiter review.",
		Vendor:      "TalentRank GmbH",
		Status:      model.SystemDraft,
	}
	if err := systemRepo.Create(ctx, screening); err != nil {
		log.Fatalf("Failed to insert system: %v", err)
	}

	// Classify the screening tool so the dashboard has data on first login
	eng := engine.MustNew(engine.ProductionBundle())
	answers := []model.Answer{
		{QuestionID: "category", Value: model.ChoiceValue("hr-scoring")},
		{QuestionID: "hr-use", Value: model.ChoiceValue("screening")},
		{QuestionID: "autonomy", Value: model.ChoiceValue("none")},
		{QuestionID: "affected", Value: model.ChoiceValue("employees")},
		{QuestionID: "domain", Value: model.ChoiceValue("employment")},
		{QuestionID: "data", Value: model.ChoiceValue("personal")},
		{QuestionID: "interaction", Value: model.BoolValue(false)},
		{QuestionID: "safety", Value: model.BoolValue(false)},
		{QuestionID: "prohibited", Value: model.MultiChoiceValue()},
		{QuestionID: "synthetic", Value: model.BoolValue(false)},
	}

	set := engine.AnswerSetFrom(answers)
	if !eng.CanClassify(set) {
		log.Fatalf("Seed answer set incomplete: %d%%", eng.Progress(set))
	}
	result := eng.ClassifyRisk(set, model.LocaleEN)

	now := time.Now()
	assessment := &model.Assessment{
		ID:           "asm_" + uuid.New().String()[:8],
		SystemID:     screening.ID,
		OrgID:        orgID,
		Status:       model.AssessmentClassified,
		Locale:       model.LocaleEN,
		Answers:      answers,
		Result:       &result,
		CreatedAt:    now,
		ClassifiedAt: &now,
	}
	if err := assessmentRepo.Create(ctx, assessment); err != nil {
		log.Fatalf("Failed to insert assessment: %v", err)
	}

	if err := systemRepo.SetClassified(ctx, screening.ID, result.RiskLevel); err != nil {
		log.Fatalf("Failed to update system: %v", err)
	}

	tasks := make([]*model.ObligationTask, 0, len(result.Obligations))
	for _, ob := range result.Obligations {
		tasks = append(tasks, &model.ObligationTask{
			ID:           "task_" + uuid.New().String()[:8],
			OrgID:        orgID,
			SystemID:     screening.ID,
			AssessmentID: assessment.ID,
			Article:      ob.Article,
			Title:        ob.Title,
			Priority:     ob.Priority,
			Deadline:     ob.Deadline,
			Status:       model.TaskOpen,
		})
	}
	if err := taskRepo.CreateMany(ctx, tasks); err != nil {
		log.Fatalf("Failed to insert tasks: %v", err)
	}

	fmt.Printf("Seeded org '%s': %d systems, 1 assessment (%s, score %d), %d obligation tasks\n",
		orgID, 2, result.RiskLevel, result.Score, len(tasks))
}
