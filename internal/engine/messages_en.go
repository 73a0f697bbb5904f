package engine

// messagesEN is the English string table shared by both bundles.
var messagesEN = map[string]string{
	// Questions
	"q.category.text":           "What is the primary purpose of the AI system?",
	"q.category.help":           "Pick the category that best describes what the system is used for in practice.",
	"q.prohibited.text":         "Does the system perform any of the following practices?",
	"q.prohibited.help":         "These practices are prohibited under Article 5. Leave empty if none apply.",
	"q.biometric-modality.text": "Which biometric modality does the system use?",
	"q.hr-use.text":             "How is the system used in employment decisions?",
	"q.autonomy.text":           "How autonomous are the system's decisions?",
	"q.autonomy.help":           "Fully autonomous means decisions take effect without human review.",
	"q.affected.text":           "Who is primarily affected by the system's outputs?",
	"q.domain.text":             "In which domain does the system operate?",
	"q.data.text":               "What is the most sensitive category of data the system processes?",
	"q.data.help":               "Pick the highest sensitivity level that applies.",
	"q.interaction.text":        "Does the system interact directly with natural persons?",
	"q.synthetic.text":          "Does the system generate synthetic audio, image, video or text content?",
	"q.safety.text":             "Is the system a safety component of a regulated product?",
	"q.safety.help":             "For example machinery, medical devices, vehicles or toys covered by EU harmonisation legislation.",

	// Options
	"opt.category.biometric":          "Biometric identification or categorisation",
	"opt.category.hr-scoring":         "Recruitment or employee evaluation",
	"opt.category.credit-scoring":     "Credit scoring or essential services access",
	"opt.category.law-enforcement":    "Law enforcement support",
	"opt.category.chatbot":            "Chatbot or conversational assistant",
	"opt.category.content-generation": "Content generation",
	"opt.category.analytics":          "Analytics and forecasting",
	"opt.category.other":              "Other",

	"opt.prohibited.social-scoring":            "Social scoring of natural persons",
	"opt.prohibited.subliminal-manipulation":   "Subliminal or manipulative techniques",
	"opt.prohibited.emotion-workplace":         "Emotion inference in the workplace or education",
	"opt.prohibited.realtime-biometric-public": "Real-time remote biometric identification in public spaces",

	"opt.biometric-modality.facial-remote":       "Remote facial recognition",
	"opt.biometric-modality.facial-verification": "Facial verification (one-to-one)",
	"opt.biometric-modality.voice":               "Voice recognition",
	"opt.biometric-modality.fingerprint":         "Fingerprint",

	"opt.hr-use.screening":  "Candidate screening",
	"opt.hr-use.promotion":  "Promotion and termination decisions",
	"opt.hr-use.monitoring": "Worker monitoring",

	"opt.autonomy.full":    "Fully autonomous",
	"opt.autonomy.partial": "Autonomous with human review",
	"opt.autonomy.none":    "Decision support only",

	"opt.affected.vulnerable":     "Vulnerable groups (minors, elderly, disabled persons)",
	"opt.affected.general-public": "General public",
	"opt.affected.customers":      "Customers and users",
	"opt.affected.employees":      "Internal employees",

	"opt.domain.justice":    "Justice and democratic processes",
	"opt.domain.employment": "Employment and workers management",
	"opt.domain.finance":    "Financial services",
	"opt.domain.health":     "Healthcare",
	"opt.domain.education":  "Education and vocational training",
	"opt.domain.other":      "Other",

	"opt.data.biometric":  "Biometric data",
	"opt.data.sensitive":  "Special categories of personal data",
	"opt.data.personal":   "Ordinary personal data",
	"opt.data.anonymized": "Anonymized or synthetic data",

	// Reason strings per tag
	"tag.biometric-category":          "The system performs biometric identification or categorisation.",
	"tag.hr-scoring-category":         "The system evaluates people in employment contexts.",
	"tag.credit-scoring-category":     "The system scores access to credit or essential services.",
	"tag.law-enforcement-category":    "The system supports law enforcement activities.",
	"tag.conversational-category":     "The system is a conversational assistant.",
	"tag.content-generation-category": "The system generates content.",
	"tag.analytics-category":          "The system performs analytics or forecasting.",
	"tag.prohibited-practice":         "The system performs a practice prohibited by Article 5.",
	"tag.remote-biometric":            "The system uses remote facial recognition.",
	"tag.workplace-monitoring":        "The system monitors workers.",
	"tag.autonomous-decision":         "Decisions take effect without human review.",
	"tag.partial-autonomy":            "Decisions are automated with human review.",
	"tag.vulnerable-population":       "The system affects vulnerable groups.",
	"tag.general-public":              "The system affects the general public.",
	"tag.customer-population":         "The system affects customers and users.",
	"tag.internal-employees":          "The system affects internal employees.",
	"tag.justice-domain":              "The system operates in the justice domain.",
	"tag.employment-domain":           "The system operates in employment and workers management.",
	"tag.finance-domain":              "The system operates in financial services.",
	"tag.health-domain":               "The system operates in healthcare.",
	"tag.education-domain":            "The system operates in education.",
	"tag.biometric-data":              "The system processes biometric data.",
	"tag.sensitive-data":              "The system processes special categories of personal data.",
	"tag.personal-data":               "The system processes personal data.",
	"tag.human-interaction":           "The system interacts directly with natural persons.",
	"tag.synthetic-content":           "The system generates synthetic content.",
	"tag.safety-component":            "The system is a safety component of a regulated product.",

	// Summaries and detail per tier (summary templates take the score)
	"summary.unacceptable": "The system falls into the unacceptable risk tier with a severity score of %d/100. Its use is prohibited under the EU AI Act.",
	"summary.high":         "The system is classified as high risk with a severity score of %d/100. The full set of high-risk obligations applies.",
	"summary.limited":      "The system is classified as limited risk with a severity score of %d/100. Transparency obligations apply.",
	"summary.minimal":      "The system is classified as minimal risk with a severity score of %d/100. Only general AI literacy duties apply.",

	"detail.unacceptable":  "One or more characteristics of this system match practices the EU AI Act prohibits outright. Deployment or continued operation exposes the organization to the highest sanction tier.",
	"detail.high":          "The system matches the high-risk profile of Annex III. Before placing it on the market or into service, the provider must implement the risk management, data governance, documentation, oversight and robustness requirements of Articles 9 to 15.",
	"detail.limited":       "The system does not reach the high-risk profile but triggers transparency duties: affected persons must be able to recognise that they interact with, or see content produced by, an AI system.",
	"detail.minimal":       "The system shows no characteristics that trigger specific EU AI Act obligations beyond the general AI literacy duty.",
	"detail.reasons-intro": "This classification is based on:",

	// Recommendations
	"rec.cease":           "Cease development or deployment of the prohibited functionality immediately.",
	"rec.legal-counsel":   "Involve specialised legal counsel before any further processing.",
	"rec.redesign":        "Evaluate whether the use case can be redesigned outside the prohibited practice.",
	"rec.gap-analysis":    "Run a gap analysis against the Article 9-15 requirements.",
	"rec.conformity-prep": "Plan the conformity assessment and CE marking before market placement.",
	"rec.monitoring":      "Set up post-market monitoring and incident reporting.",
	"rec.transparency":    "Make the AI nature of the system evident to affected persons.",
	"rec.inventory":       "Keep the system registered and up to date in your AI inventory.",
	"rec.literacy":        "Ensure staff operating the system have an adequate level of AI literacy.",

	// Obligations
	"ob.ai-literacy.title":     "AI literacy",
	"ob.ai-literacy.desc":      "Ensure a sufficient level of AI literacy of staff dealing with the operation and use of the system.",
	"ob.transparency.title":    "Transparency towards affected persons",
	"ob.transparency.desc":     "Inform natural persons that they are interacting with an AI system.",
	"ob.risk-mgmt.title":       "Risk management system",
	"ob.risk-mgmt.desc":        "Establish, implement and maintain a continuous risk management system across the lifecycle.",
	"ob.data-gov.title":        "Data and data governance",
	"ob.data-gov.desc":         "Apply data governance practices to training, validation and testing data sets.",
	"ob.tech-doc.title":        "Technical documentation",
	"ob.tech-doc.desc":         "Draw up technical documentation demonstrating compliance before market placement.",
	"ob.records.title":         "Record-keeping",
	"ob.records.desc":          "Enable automatic recording of events over the system's lifetime.",
	"ob.deployer-info.title":   "Instructions for deployers",
	"ob.deployer-info.desc":    "Provide deployers with instructions for use enabling compliant operation.",
	"ob.oversight.title":       "Human oversight",
	"ob.oversight.desc":        "Design the system so natural persons can effectively oversee it during use.",
	"ob.robustness.title":      "Accuracy, robustness and cybersecurity",
	"ob.robustness.desc":       "Achieve appropriate levels of accuracy, robustness and cybersecurity throughout the lifecycle.",
	"ob.fria.title":            "Fundamental rights impact assessment",
	"ob.fria.desc":             "Assess the impact on fundamental rights before putting the system into use.",
	"ob.cease.title":           "Cease prohibited practice",
	"ob.cease.desc":            "Stop the development, placing on the market and use of the prohibited functionality.",
	"ob.conformity.title":      "Third-party conformity assessment",
	"ob.conformity.desc":       "Undergo a conformity assessment involving a notified body.",
	"ob.registration.title":    "EU database registration",
	"ob.registration.desc":     "Register the system in the EU database for high-risk AI systems.",
	"ob.content-marking.title": "Marking of synthetic content",
	"ob.content-marking.desc":  "Mark generated audio, image, video or text content as artificially generated.",
	"ob.worker-notice.title":   "Worker information",
	"ob.worker-notice.desc":    "Inform workers and their representatives before putting the system into use at the workplace.",

	// Deadlines
	"deadline.immediate":         "Immediately",
	"deadline.before-deployment": "Before deployment",
	"deadline.before-market":     "Before market placement",
	"deadline.ongoing":           "Ongoing",
}
