package engine

import "aicomply/internal/model"

// demoQuestions is the reduced catalogue behind the public demo: the five
// core questions, no follow-ups and no conditional visibility. Question
// ids match the production catalogue, so the demo reuses the production
// rule table — rules over questions the demo never asks simply never fire.
var demoQuestions = []model.Question{
	{
		ID:      "category",
		Type:    model.QuestionTypeSingleChoice,
		TextKey: "q.category.text",
		Options: []model.Option{
			{Value: "biometric", LabelKey: "opt.category.biometric"},
			{Value: "hr-scoring", LabelKey: "opt.category.hr-scoring"},
			{Value: "chatbot", LabelKey: "opt.category.chatbot"},
			{Value: "analytics", LabelKey: "opt.category.analytics"},
			{Value: "other", LabelKey: "opt.category.other"},
		},
	},
	{
		ID:      "autonomy",
		Type:    model.QuestionTypeSingleChoice,
		TextKey: "q.autonomy.text",
		Options: []model.Option{
			{Value: "full", LabelKey: "opt.autonomy.full"},
			{Value: "partial", LabelKey: "opt.autonomy.partial"},
			{Value: "none", LabelKey: "opt.autonomy.none"},
		},
	},
	{
		ID:      "affected",
		Type:    model.QuestionTypeSingleChoice,
		TextKey: "q.affected.text",
		Options: []model.Option{
			{Value: "vulnerable", LabelKey: "opt.affected.vulnerable"},
			{Value: "general-public", LabelKey: "opt.affected.general-public"},
			{Value: "customers", LabelKey: "opt.affected.customers"},
			{Value: "employees", LabelKey: "opt.affected.employees"},
		},
	},
	{
		ID:      "domain",
		Type:    model.QuestionTypeSingleChoice,
		TextKey: "q.domain.text",
		Options: []model.Option{
			{Value: "justice", LabelKey: "opt.domain.justice"},
			{Value: "employment", LabelKey: "opt.domain.employment"},
			{Value: "finance", LabelKey: "opt.domain.finance"},
			{Value: "health", LabelKey: "opt.domain.health"},
			{Value: "education", LabelKey: "opt.domain.education"},
			{Value: "other", LabelKey: "opt.domain.other"},
		},
	},
	{
		ID:      "data",
		Type:    model.QuestionTypeSingleChoice,
		TextKey: "q.data.text",
		Options: []model.Option{
			{Value: "biometric", LabelKey: "opt.data.biometric"},
			{Value: "sensitive", LabelKey: "opt.data.sensitive"},
			{Value: "personal", LabelKey: "opt.data.personal"},
			{Value: "anonymized", LabelKey: "opt.data.anonymized"},
		},
	},
}

// DemoBundle is the reduced bundle behind the public demo endpoint. Same
// engine, same policy tables, smaller catalogue.
func DemoBundle() Bundle {
	return Bundle{
		Name:            "demo",
		Questions:       demoQuestions,
		Rules:           productionRules,
		Overrides:       productionOverrides,
		Obligations:     productionObligations,
		Recommendations: productionRecommendations,
		Messages:        productionMessages,
	}
}
