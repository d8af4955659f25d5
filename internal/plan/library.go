package plan

// Topic identifies one kind of plan content in the template library.
type Topic string

const (
	TopicProcess        Topic = "process"
	TopicQuestions      Topic = "questions"
	TopicQuestionsToAsk Topic = "questions_to_ask"
	TopicStudyMaterials Topic = "study_materials"
	TopicFinalTips      Topic = "final_tips"

	// Schedule density variants, selected by days until the interview.
	TopicScheduleImmediate Topic = "schedule.immediate" // <= 1 day
	TopicScheduleShort     Topic = "schedule.short"     // <= 3 days
	TopicScheduleWeek      Topic = "schedule.week"      // <= 7 days
	TopicScheduleLong      Topic = "schedule.long"      // > 7 days

	TopicPremiumQuestions   Topic = "premium.questions"
	TopicPremiumSimulation  Topic = "premium.simulation"
	TopicPremiumNegotiation Topic = "premium.negotiation"
	TopicPremiumMatrix      Topic = "premium.matrix"
)

// industryTopic resolves an industry value to its library topic. An
// unrecognized value falls back to the default industry template rather
// than erroring.
func industryTopic(i Industry) Topic {
	switch i {
	case IndustryTechnology, IndustryFinance, IndustryHealthcare, IndustryRetail, IndustryEducation:
		return Topic("industry." + string(i))
	default:
		return "industry.default"
	}
}

func interviewTypeTopic(t InterviewType) Topic {
	switch t {
	case InterviewTechnical, InterviewBehavioral, InterviewStrategic, InterviewCultural:
		return Topic("type." + string(t))
	default:
		return "type.default"
	}
}

// Context carries the values a template may substitute.
type Context struct {
	JobTitle        string
	CompanyName     string
	DaysUntil       int
	PracticePoints  string
	PersonalContext string
}

// TemplateFn renders one locale-specific template against a context.
type TemplateFn func(Context) string

type templateKey struct {
	topic    Topic
	locale   Locale
	category RoleCategory
}

// library maps each (topic, locale[, category]) to exactly one template.
// It is populated once at package init by the per-locale content files.
var library = map[templateKey]TemplateFn{}

func register(topic Topic, locale Locale, category RoleCategory, fn TemplateFn) {
	key := templateKey{topic: topic, locale: locale, category: category}
	if _, dup := library[key]; dup {
		panic("plan: duplicate template registration: " + string(topic) + "/" + string(locale) + "/" + string(category))
	}
	library[key] = fn
}

// lookup resolves a template. Missing (topic, locale, category) entries
// fall back to the general category for that locale, then to the default
// locale (pt); the library never fails to produce a string.
func lookup(topic Topic, locale Locale, category RoleCategory) TemplateFn {
	locale = normalizeLocale(locale)
	for _, key := range []templateKey{
		{topic, locale, category},
		{topic, locale, RoleGeneral},
		{topic, LocalePT, category},
		{topic, LocalePT, RoleGeneral},
	} {
		if fn, ok := library[key]; ok {
			return fn
		}
	}
	return func(Context) string { return "" }
}

var sectionEmojis = map[Topic]string{
	TopicProcess:            "📋",
	TopicQuestions:          "❓",
	TopicQuestionsToAsk:     "💬",
	TopicStudyMaterials:     "📚",
	TopicFinalTips:          "✨",
	TopicScheduleImmediate:  "📅",
	TopicScheduleShort:      "📅",
	TopicScheduleWeek:       "📅",
	TopicScheduleLong:       "📅",
	TopicPremiumQuestions:   "🔍",
	TopicPremiumSimulation:  "🎭",
	TopicPremiumNegotiation: "💰",
	TopicPremiumMatrix:      "🧭",
}

func emojiFor(topic Topic) string {
	if e, ok := sectionEmojis[topic]; ok {
		return e
	}
	switch {
	case hasTopicPrefix(topic, "industry."):
		return "🏢"
	case hasTopicPrefix(topic, "type."):
		return "🎯"
	}
	return "📌"
}

func hasTopicPrefix(topic Topic, prefix string) bool {
	return len(topic) >= len(prefix) && string(topic[:len(prefix)]) == prefix
}

// sectionTitles holds localized section headings keyed by topic. The
// schedule variants share one heading per locale.
var sectionTitles = map[Locale]map[Topic]string{}

func registerTitles(locale Locale, titles map[Topic]string) {
	if sectionTitles[locale] == nil {
		sectionTitles[locale] = map[Topic]string{}
	}
	for topic, title := range titles {
		sectionTitles[locale][topic] = title
	}
}

func titleFor(topic Topic, locale Locale) string {
	locale = normalizeLocale(locale)
	if t, ok := sectionTitles[locale][topic]; ok {
		return t
	}
	if t, ok := sectionTitles[LocalePT][topic]; ok {
		return t
	}
	return string(topic)
}

// Plan-level header strings.
var (
	planTitles = map[Locale]string{
		LocalePT: "PLANO DE PREPARAÇÃO PARA ENTREVISTA",
		LocaleEN: "INTERVIEW PREPARATION PLAN",
		LocaleES: "PLAN DE PREPARACIÓN PARA ENTREVISTA",
	}
	positionLabels = map[Locale]string{
		LocalePT: "CARGO",
		LocaleEN: "POSITION",
		LocaleES: "PUESTO",
	}
	companyLabels = map[Locale]string{
		LocalePT: "EMPRESA",
		LocaleEN: "COMPANY",
		LocaleES: "EMPRESA",
	}
)
