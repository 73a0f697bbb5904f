package engine

import "aicomply/internal/model"

// messagesES is the Spanish string table. Keys missing here fall back to
// English at lookup time.
var messagesES = map[string]string{
	// Questions
	"q.category.text":           "¿Cuál es el propósito principal del sistema de IA?",
	"q.category.help":           "Elige la categoría que mejor describa el uso real del sistema.",
	"q.prohibited.text":         "¿Realiza el sistema alguna de las siguientes prácticas?",
	"q.prohibited.help":         "Estas prácticas están prohibidas por el Artículo 5. Deja vacío si ninguna aplica.",
	"q.biometric-modality.text": "¿Qué modalidad biométrica utiliza el sistema?",
	"q.hr-use.text":             "¿Cómo se usa el sistema en decisiones laborales?",
	"q.autonomy.text":           "¿Qué grado de autonomía tienen las decisiones del sistema?",
	"q.autonomy.help":           "Totalmente autónomo significa que las decisiones surten efecto sin revisión humana.",
	"q.affected.text":           "¿A quién afectan principalmente los resultados del sistema?",
	"q.domain.text":             "¿En qué ámbito opera el sistema?",
	"q.data.text":               "¿Cuál es la categoría de datos más sensible que procesa el sistema?",
	"q.data.help":               "Elige el nivel de sensibilidad más alto que aplique.",
	"q.interaction.text":        "¿Interactúa el sistema directamente con personas físicas?",
	"q.synthetic.text":          "¿Genera el sistema contenido sintético de audio, imagen, vídeo o texto?",
	"q.safety.text":             "¿Es el sistema un componente de seguridad de un producto regulado?",
	"q.safety.help":             "Por ejemplo maquinaria, productos sanitarios, vehículos o juguetes cubiertos por la legislación de armonización de la UE.",

	// Options
	"opt.category.biometric":          "Identificación o categorización biométrica",
	"opt.category.hr-scoring":         "Selección o evaluación de personal",
	"opt.category.credit-scoring":     "Calificación crediticia o acceso a servicios esenciales",
	"opt.category.law-enforcement":    "Apoyo a las fuerzas de seguridad",
	"opt.category.chatbot":            "Chatbot o asistente conversacional",
	"opt.category.content-generation": "Generación de contenido",
	"opt.category.analytics":          "Analítica y predicción",
	"opt.category.other":              "Otro",

	"opt.prohibited.social-scoring":            "Puntuación social de personas físicas",
	"opt.prohibited.subliminal-manipulation":   "Técnicas subliminales o manipuladoras",
	"opt.prohibited.emotion-workplace":         "Inferencia de emociones en el trabajo o la educación",
	"opt.prohibited.realtime-biometric-public": "Identificación biométrica remota en tiempo real en espacios públicos",

	"opt.biometric-modality.facial-remote":       "Reconocimiento facial remoto",
	"opt.biometric-modality.facial-verification": "Verificación facial (uno a uno)",
	"opt.biometric-modality.voice":               "Reconocimiento de voz",
	"opt.biometric-modality.fingerprint":         "Huella dactilar",

	"opt.hr-use.screening":  "Cribado de candidatos",
	"opt.hr-use.promotion":  "Decisiones de promoción y despido",
	"opt.hr-use.monitoring": "Supervisión de trabajadores",

	"opt.autonomy.full":    "Totalmente autónomo",
	"opt.autonomy.partial": "Autónomo con revisión humana",
	"opt.autonomy.none":    "Solo apoyo a la decisión",

	"opt.affected.vulnerable":     "Grupos vulnerables (menores, mayores, personas con discapacidad)",
	"opt.affected.general-public": "Público general",
	"opt.affected.customers":      "Clientes y usuarios",
	"opt.affected.employees":      "Empleados internos",

	"opt.domain.justice":    "Justicia y procesos democráticos",
	"opt.domain.employment": "Empleo y gestión de trabajadores",
	"opt.domain.finance":    "Servicios financieros",
	"opt.domain.health":     "Sanidad",
	"opt.domain.education":  "Educación y formación profesional",
	"opt.domain.other":      "Otro",

	"opt.data.biometric":  "Datos biométricos",
	"opt.data.sensitive":  "Categorías especiales de datos personales",
	"opt.data.personal":   "Datos personales ordinarios",
	"opt.data.anonymized": "Datos anonimizados o sintéticos",

	// Reason strings per tag
	"tag.biometric-category":          "El sistema realiza identificación o categorización biométrica.",
	"tag.hr-scoring-category":         "El sistema evalúa a personas en contextos laborales.",
	"tag.credit-scoring-category":     "El sistema puntúa el acceso a crédito o servicios esenciales.",
	"tag.law-enforcement-category":    "El sistema apoya actividades de las fuerzas de seguridad.",
	"tag.conversational-category":     "El sistema es un asistente conversacional.",
	"tag.content-generation-category": "El sistema genera contenido.",
	"tag.analytics-category":          "El sistema realiza analítica o predicción.",
	"tag.prohibited-practice":         "El sistema realiza una práctica prohibida por el Artículo 5.",
	"tag.remote-biometric":            "El sistema usa reconocimiento facial remoto.",
	"tag.workplace-monitoring":        "El sistema supervisa a trabajadores.",
	"tag.autonomous-decision":         "Las decisiones surten efecto sin revisión humana.",
	"tag.partial-autonomy":            "Las decisiones se automatizan con revisión humana.",
	"tag.vulnerable-population":       "El sistema afecta a grupos vulnerables.",
	"tag.general-public":              "El sistema afecta al público general.",
	"tag.customer-population":         "El sistema afecta a clientes y usuarios.",
	"tag.internal-employees":          "El sistema afecta a empleados internos.",
	"tag.justice-domain":              "El sistema opera en el ámbito de la justicia.",
	"tag.employment-domain":           "El sistema opera en empleo y gestión de trabajadores.",
	"tag.finance-domain":              "El sistema opera en servicios financieros.",
	"tag.health-domain":               "El sistema opera en sanidad.",
	"tag.education-domain":            "El sistema opera en educación.",
	"tag.biometric-data":              "El sistema procesa datos biométricos.",
	"tag.sensitive-data":              "El sistema procesa categorías especiales de datos personales.",
	"tag.personal-data":               "El sistema procesa datos personales.",
	"tag.human-interaction":           "El sistema interactúa directamente con personas físicas.",
	"tag.synthetic-content":           "El sistema genera contenido sintético.",
	"tag.safety-component":            "El sistema es un componente de seguridad de un producto regulado.",

	// Summaries and detail per tier
	"summary.unacceptable": "El sistema se sitúa en el nivel de riesgo inaceptable con una puntuación de severidad de %d/100. Su uso está prohibido por el Reglamento de IA.",
	"summary.high":         "El sistema se clasifica como de alto riesgo con una puntuación de severidad de %d/100. Aplica el conjunto completo de obligaciones de alto riesgo.",
	"summary.limited":      "El sistema se clasifica como de riesgo limitado con una puntuación de severidad de %d/100. Aplican obligaciones de transparencia.",
	"summary.minimal":      "El sistema se clasifica como de riesgo mínimo con una puntuación de severidad de %d/100. Solo aplican deberes generales de alfabetización en IA.",

	"detail.unacceptable":  "Una o más características de este sistema coinciden con prácticas que el Reglamento de IA prohíbe de plano. Su despliegue u operación continuada expone a la organización al nivel de sanción más alto.",
	"detail.high":          "El sistema coincide con el perfil de alto riesgo del Anexo III. Antes de introducirlo en el mercado o ponerlo en servicio, el proveedor debe implantar los requisitos de gestión de riesgos, gobernanza de datos, documentación, supervisión y robustez de los Artículos 9 a 15.",
	"detail.limited":       "El sistema no alcanza el perfil de alto riesgo pero activa deberes de transparencia: las personas afectadas deben poder reconocer que interactúan con un sistema de IA o que ven contenido producido por él.",
	"detail.minimal":       "El sistema no presenta características que activen obligaciones específicas del Reglamento de IA más allá del deber general de alfabetización en IA.",
	"detail.reasons-intro": "Esta clasificación se basa en:",

	// Recommendations
	"rec.cease":           "Cesa de inmediato el desarrollo o despliegue de la funcionalidad prohibida.",
	"rec.legal-counsel":   "Implica a asesoría jurídica especializada antes de cualquier tratamiento adicional.",
	"rec.redesign":        "Evalúa si el caso de uso puede rediseñarse fuera de la práctica prohibida.",
	"rec.gap-analysis":    "Realiza un análisis de brechas frente a los requisitos de los Artículos 9 a 15.",
	"rec.conformity-prep": "Planifica la evaluación de conformidad y el marcado CE antes de la comercialización.",
	"rec.monitoring":      "Establece la vigilancia poscomercialización y la notificación de incidentes.",
	"rec.transparency":    "Haz evidente a las personas afectadas la naturaleza de IA del sistema.",
	"rec.inventory":       "Mantén el sistema registrado y actualizado en tu inventario de IA.",
	"rec.literacy":        "Asegura que el personal que opera el sistema tenga un nivel adecuado de alfabetización en IA.",

	// Obligations
	"ob.ai-literacy.title":     "Alfabetización en IA",
	"ob.ai-literacy.desc":      "Garantizar un nivel suficiente de alfabetización en IA del personal que opera y usa el sistema.",
	"ob.transparency.title":    "Transparencia hacia las personas afectadas",
	"ob.transparency.desc":     "Informar a las personas físicas de que interactúan con un sistema de IA.",
	"ob.risk-mgmt.title":       "Sistema de gestión de riesgos",
	"ob.risk-mgmt.desc":        "Establecer, implantar y mantener un sistema continuo de gestión de riesgos durante todo el ciclo de vida.",
	"ob.data-gov.title":        "Datos y gobernanza de datos",
	"ob.data-gov.desc":         "Aplicar prácticas de gobernanza de datos a los conjuntos de entrenamiento, validación y prueba.",
	"ob.tech-doc.title":        "Documentación técnica",
	"ob.tech-doc.desc":         "Elaborar la documentación técnica que demuestre la conformidad antes de la comercialización.",
	"ob.records.title":         "Registro de actividad",
	"ob.records.desc":          "Permitir el registro automático de eventos durante la vida del sistema.",
	"ob.deployer-info.title":   "Instrucciones para responsables del despliegue",
	"ob.deployer-info.desc":    "Proporcionar instrucciones de uso que permitan una operación conforme.",
	"ob.oversight.title":       "Supervisión humana",
	"ob.oversight.desc":        "Diseñar el sistema de modo que personas físicas puedan supervisarlo eficazmente durante su uso.",
	"ob.robustness.title":      "Precisión, robustez y ciberseguridad",
	"ob.robustness.desc":       "Alcanzar niveles adecuados de precisión, robustez y ciberseguridad durante todo el ciclo de vida.",
	"ob.fria.title":            "Evaluación de impacto sobre derechos fundamentales",
	"ob.fria.desc":             "Evaluar el impacto sobre los derechos fundamentales antes de poner el sistema en uso.",
	"ob.cease.title":           "Cesar la práctica prohibida",
	"ob.cease.desc":            "Detener el desarrollo, la comercialización y el uso de la funcionalidad prohibida.",
	"ob.conformity.title":      "Evaluación de conformidad por terceros",
	"ob.conformity.desc":       "Someterse a una evaluación de conformidad con participación de un organismo notificado.",
	"ob.registration.title":    "Registro en la base de datos de la UE",
	"ob.registration.desc":     "Registrar el sistema en la base de datos de la UE para sistemas de IA de alto riesgo.",
	"ob.content-marking.title": "Marcado de contenido sintético",
	"ob.content-marking.desc":  "Marcar el contenido generado de audio, imagen, vídeo o texto como generado artificialmente.",
	"ob.worker-notice.title":   "Información a los trabajadores",
	"ob.worker-notice.desc":    "Informar a los trabajadores y a sus representantes antes de poner el sistema en uso en el lugar de trabajo.",

	// Deadlines
	"deadline.immediate":         "De inmediato",
	"deadline.before-deployment": "Antes del despliegue",
	"deadline.before-market":     "Antes de la comercialización",
	"deadline.ongoing":           "Continuo",
}

// productionMessages is the combined localized table.
var productionMessages = Messages{
	model.LocaleEN: messagesEN,
	model.LocaleES: messagesES,
}
