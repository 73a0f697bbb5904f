package engine

import "aicomply/internal/model"

// Rule tags. A tag marks that a scoring condition fired; it feeds the
// score, the targeted obligations and the explanation layer.
const (
	TagBiometricCategory      model.RuleTag = "biometric-category"
	TagHRScoringCategory      model.RuleTag = "hr-scoring-category"
	TagCreditScoringCategory  model.RuleTag = "credit-scoring-category"
	TagLawEnforcementCategory model.RuleTag = "law-enforcement-category"
	TagConversationalCategory model.RuleTag = "conversational-category"
	TagContentGenCategory     model.RuleTag = "content-generation-category"
	TagAnalyticsCategory      model.RuleTag = "analytics-category"
	TagProhibitedPractice     model.RuleTag = "prohibited-practice"
	TagRemoteBiometric        model.RuleTag = "remote-biometric"
	TagWorkplaceMonitoring    model.RuleTag = "workplace-monitoring"
	TagAutonomousDecision     model.RuleTag = "autonomous-decision"
	TagPartialAutonomy        model.RuleTag = "partial-autonomy"
	TagVulnerablePopulation   model.RuleTag = "vulnerable-population"
	TagGeneralPublic          model.RuleTag = "general-public"
	TagCustomerPopulation     model.RuleTag = "customer-population"
	TagInternalEmployees      model.RuleTag = "internal-employees"
	TagJusticeDomain          model.RuleTag = "justice-domain"
	TagEmploymentDomain       model.RuleTag = "employment-domain"
	TagFinanceDomain          model.RuleTag = "finance-domain"
	TagHealthDomain           model.RuleTag = "health-domain"
	TagEducationDomain        model.RuleTag = "education-domain"
	TagBiometricData          model.RuleTag = "biometric-data"
	TagSensitiveData          model.RuleTag = "sensitive-data"
	TagPersonalData           model.RuleTag = "personal-data"
	TagHumanInteraction       model.RuleTag = "human-interaction"
	TagSyntheticContent       model.RuleTag = "synthetic-content"
	TagSafetyComponent        model.RuleTag = "safety-component"
)

// productionQuestions is the full wizard catalogue. Order matters:
// visibility predicates may only reference earlier questions.
var productionQuestions = []model.Question{
	{
		ID:          "category",
		Type:        model.QuestionTypeSingleChoice,
		TextKey:     "q.category.text",
		HelpTextKey: "q.category.help",
		ArticleRef:  "Annex III",
		Options: []model.Option{
			{Value: "biometric", LabelKey: "opt.category.biometric"},
			{Value: "hr-scoring", LabelKey: "opt.category.hr-scoring"},
			{Value: "credit-scoring", LabelKey: "opt.category.credit-scoring"},
			{Value: "law-enforcement", LabelKey: "opt.category.law-enforcement"},
			{Value: "chatbot", LabelKey: "opt.category.chatbot"},
			{Value: "content-generation", LabelKey: "opt.category.content-generation"},
			{Value: "analytics", LabelKey: "opt.category.analytics"},
			{Value: "other", LabelKey: "opt.category.other"},
		},
	},
	{
		ID:          "prohibited",
		Type:        model.QuestionTypeMultiChoice,
		TextKey:     "q.prohibited.text",
		HelpTextKey: "q.prohibited.help",
		ArticleRef:  "Art. 5",
		Optional:    true, // none may apply
		Options: []model.Option{
			{Value: "social-scoring", LabelKey: "opt.prohibited.social-scoring"},
			{Value: "subliminal-manipulation", LabelKey: "opt.prohibited.subliminal-manipulation"},
			{Value: "emotion-workplace", LabelKey: "opt.prohibited.emotion-workplace"},
			{Value: "realtime-biometric-public", LabelKey: "opt.prohibited.realtime-biometric-public"},
		},
	},
	{
		ID:         "biometric-modality",
		Type:       model.QuestionTypeSingleChoice,
		TextKey:    "q.biometric-modality.text",
		ArticleRef: "Art. 6",
		VisibleIf:  predPtr(model.Eq("category", "biometric")),
		Options: []model.Option{
			{Value: "facial-remote", LabelKey: "opt.biometric-modality.facial-remote"},
			{Value: "facial-verification", LabelKey: "opt.biometric-modality.facial-verification"},
			{Value: "voice", LabelKey: "opt.biometric-modality.voice"},
			{Value: "fingerprint", LabelKey: "opt.biometric-modality.fingerprint"},
		},
	},
	{
		ID:         "hr-use",
		Type:       model.QuestionTypeSingleChoice,
		TextKey:    "q.hr-use.text",
		ArticleRef: "Annex III",
		VisibleIf:  predPtr(model.Eq("category", "hr-scoring")),
		Options: []model.Option{
			{Value: "screening", LabelKey: "opt.hr-use.screening"},
			{Value: "promotion", LabelKey: "opt.hr-use.promotion"},
			{Value: "monitoring", LabelKey: "opt.hr-use.monitoring"},
		},
	},
	{
		ID:          "autonomy",
		Type:        model.QuestionTypeSingleChoice,
		TextKey:     "q.autonomy.text",
		HelpTextKey: "q.autonomy.help",
		ArticleRef:  "Art. 14",
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
		ID:         "domain",
		Type:       model.QuestionTypeSingleChoice,
		TextKey:    "q.domain.text",
		ArticleRef: "Annex III",
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
		ID:          "data",
		Type:        model.QuestionTypeSingleChoice,
		TextKey:     "q.data.text",
		HelpTextKey: "q.data.help",
		ArticleRef:  "Art. 10",
		Options: []model.Option{
			{Value: "biometric", LabelKey: "opt.data.biometric"},
			{Value: "sensitive", LabelKey: "opt.data.sensitive"},
			{Value: "personal", LabelKey: "opt.data.personal"},
			{Value: "anonymized", LabelKey: "opt.data.anonymized"},
		},
	},
	{
		ID:         "interaction",
		Type:       model.QuestionTypeBoolean,
		TextKey:    "q.interaction.text",
		ArticleRef: "Art. 50",
	},
	{
		ID:         "synthetic",
		Type:       model.QuestionTypeBoolean,
		TextKey:    "q.synthetic.text",
		ArticleRef: "Art. 50",
		VisibleIf: predPtr(model.Or(
			model.Eq("category", "chatbot"),
			model.Eq("category", "content-generation"),
		)),
	},
	{
		ID:          "safety",
		Type:        model.QuestionTypeBoolean,
		TextKey:     "q.safety.text",
		HelpTextKey: "q.safety.help",
		ArticleRef:  "Art. 6",
	},
}

// productionRules is the reference scoring policy. Weights reconstruct the
// regulation-derived rule catalogue; each rule is independent and additive.
var productionRules = []Rule{
	// Category base weights
	{Tag: TagBiometricCategory, When: model.Eq("category", "biometric"), Delta: 40},
	{Tag: TagHRScoringCategory, When: model.Eq("category", "hr-scoring"), Delta: 35},
	{Tag: TagLawEnforcementCategory, When: model.Eq("category", "law-enforcement"), Delta: 35},
	{Tag: TagCreditScoringCategory, When: model.Eq("category", "credit-scoring"), Delta: 30},
	{Tag: TagConversationalCategory, When: model.Eq("category", "chatbot"), Delta: 10},
	{Tag: TagContentGenCategory, When: model.Eq("category", "content-generation"), Delta: 10},
	{Tag: TagAnalyticsCategory, When: model.Eq("category", "analytics"), Delta: 5},
	{When: model.Eq("category", "other"), Delta: 5},

	// Prohibited practices (Art. 5) — any selection fires the override tag
	{Tag: TagProhibitedPractice, When: model.Or(
		model.Contains("prohibited", "social-scoring"),
		model.Contains("prohibited", "subliminal-manipulation"),
		model.Contains("prohibited", "emotion-workplace"),
		model.Contains("prohibited", "realtime-biometric-public"),
	), Delta: 60},

	// Follow-up detail weights
	{Tag: TagRemoteBiometric, When: model.Eq("biometric-modality", "facial-remote"), Delta: 10},
	{Tag: TagWorkplaceMonitoring, When: model.Eq("hr-use", "monitoring"), Delta: 10},

	// Autonomy
	{Tag: TagAutonomousDecision, When: model.Eq("autonomy", "full"), Delta: 25},
	{Tag: TagPartialAutonomy, When: model.Eq("autonomy", "partial"), Delta: 10},

	// Affected population
	{Tag: TagVulnerablePopulation, When: model.Eq("affected", "vulnerable"), Delta: 20},
	{Tag: TagGeneralPublic, When: model.Eq("affected", "general-public"), Delta: 15},
	{Tag: TagCustomerPopulation, When: model.Eq("affected", "customers"), Delta: 10},
	// Internal-only deployment adds no weight; the tag still feeds the
	// explanation.
	{Tag: TagInternalEmployees, When: model.Eq("affected", "employees"), Delta: 0},

	// Regulated domains
	{Tag: TagJusticeDomain, When: model.Eq("domain", "justice"), Delta: 30},
	{Tag: TagEmploymentDomain, When: model.Eq("domain", "employment"), Delta: 25},
	{Tag: TagFinanceDomain, When: model.Eq("domain", "finance"), Delta: 20},
	{Tag: TagHealthDomain, When: model.Eq("domain", "health"), Delta: 20},
	{Tag: TagEducationDomain, When: model.Eq("domain", "education"), Delta: 15},

	// Data sensitivity
	{Tag: TagBiometricData, When: model.Eq("data", "biometric"), Delta: 20},
	{Tag: TagSensitiveData, When: model.Eq("data", "sensitive"), Delta: 15},
	{Tag: TagPersonalData, When: model.Eq("data", "personal"), Delta: 10},

	// Transparency and safety surface
	{Tag: TagHumanInteraction, When: model.Eq("interaction", "true"), Delta: 5},
	{Tag: TagSyntheticContent, When: model.Eq("synthetic", "true"), Delta: 5},
	{Tag: TagSafetyComponent, When: model.Eq("safety", "true"), Delta: 15},
}

// productionOverrides force a tier regardless of score. The most severe
// matching override wins.
var productionOverrides = []Override{
	{Tag: TagProhibitedPractice, Level: model.RiskUnacceptable},
	{Tag: TagLawEnforcementCategory, Level: model.RiskHigh},
	{Tag: TagRemoteBiometric, Level: model.RiskHigh},
	{Tag: TagWorkplaceMonitoring, Level: model.RiskHigh},
	{Tag: TagSafetyComponent, Level: model.RiskHigh},
}

// productionObligations maps tiers and tags to compliance duties.
var productionObligations = ObligationTable{
	Base: map[model.RiskLevel][]ObligationSpec{
		model.RiskMinimal: {
			{Key: "ai-literacy", Article: "Art. 4", Priority: model.PriorityLow, DeadlineKey: "ongoing"},
		},
		model.RiskLimited: {
			{Key: "ai-literacy", Article: "Art. 4", Priority: model.PriorityLow, DeadlineKey: "ongoing"},
			{Key: "transparency", Article: "Art. 50", Priority: model.PriorityMedium, DeadlineKey: "before-deployment"},
		},
		model.RiskHigh: {
			{Key: "risk-mgmt", Article: "Art. 9", Priority: model.PriorityCritical, DeadlineKey: "before-deployment"},
			{Key: "data-gov", Article: "Art. 10", Priority: model.PriorityCritical, DeadlineKey: "before-deployment"},
			{Key: "tech-doc", Article: "Art. 11", Priority: model.PriorityHigh, DeadlineKey: "before-market"},
			{Key: "records", Article: "Art. 12", Priority: model.PriorityHigh, DeadlineKey: "before-deployment"},
			{Key: "deployer-info", Article: "Art. 13", Priority: model.PriorityHigh, DeadlineKey: "before-market"},
			{Key: "oversight", Article: "Art. 14", Priority: model.PriorityCritical, DeadlineKey: "before-deployment"},
			{Key: "robustness", Article: "Art. 15", Priority: model.PriorityHigh, DeadlineKey: "before-market"},
			{Key: "fria", Article: "Art. 27", Priority: model.PriorityHigh, DeadlineKey: "before-deployment"},
			{Key: "ai-literacy", Article: "Art. 4", Priority: model.PriorityLow, DeadlineKey: "ongoing"},
		},
		model.RiskUnacceptable: {
			{Key: "cease", Article: "Art. 5", Priority: model.PriorityCritical, DeadlineKey: "immediate"},
			{Key: "ai-literacy", Article: "Art. 4", Priority: model.PriorityLow, DeadlineKey: "ongoing"},
		},
	},
	Targeted: map[model.RuleTag][]ObligationSpec{
		TagBiometricCategory: {
			{Key: "conformity", Article: "Art. 43", Priority: model.PriorityCritical, DeadlineKey: "before-market"},
			{Key: "registration", Article: "Art. 49", Priority: model.PriorityHigh, DeadlineKey: "before-market"},
		},
		TagHRScoringCategory: {
			{Key: "registration", Article: "Art. 49", Priority: model.PriorityHigh, DeadlineKey: "before-market"},
		},
		TagVulnerablePopulation: {
			{Key: "fria", Article: "Art. 27", Priority: model.PriorityCritical, DeadlineKey: "before-deployment"},
		},
		TagHumanInteraction: {
			{Key: "transparency", Article: "Art. 50", Priority: model.PriorityHigh, DeadlineKey: "before-deployment"},
		},
		TagSyntheticContent: {
			{Key: "content-marking", Article: "Art. 50", Priority: model.PriorityMedium, DeadlineKey: "before-deployment"},
		},
		TagBiometricData: {
			{Key: "data-gov", Article: "Art. 10", Priority: model.PriorityCritical, DeadlineKey: "before-deployment"},
		},
		TagWorkplaceMonitoring: {
			{Key: "worker-notice", Article: "Art. 26", Priority: model.PriorityHigh, DeadlineKey: "before-deployment"},
		},
	},
}

// productionRecommendations lists recommendation message keys per tier.
var productionRecommendations = map[model.RiskLevel][]string{
	model.RiskUnacceptable: {"rec.cease", "rec.legal-counsel", "rec.redesign"},
	model.RiskHigh:         {"rec.gap-analysis", "rec.conformity-prep", "rec.monitoring"},
	model.RiskLimited:      {"rec.transparency", "rec.inventory"},
	model.RiskMinimal:      {"rec.literacy", "rec.inventory"},
}

// ProductionBundle is the full, localized bundle driving the dashboard
// wizard.
func ProductionBundle() Bundle {
	return Bundle{
		Name:            "production",
		Questions:       productionQuestions,
		Rules:           productionRules,
		Overrides:       productionOverrides,
		Obligations:     productionObligations,
		Recommendations: productionRecommendations,
		Messages:        productionMessages,
	}
}

func predPtr(p model.Predicate) *model.Predicate {
	return &p
}
