package plan

import "testing"

var allTopics = []Topic{
	TopicProcess, TopicQuestions, TopicQuestionsToAsk, TopicStudyMaterials, TopicFinalTips,
	TopicScheduleImmediate, TopicScheduleShort, TopicScheduleWeek, TopicScheduleLong,
	"industry.technology", "industry.finance", "industry.healthcare",
	"industry.retail", "industry.education", "industry.default",
	"type.technical", "type.behavioral", "type.strategic", "type.cultural", "type.default",
	TopicPremiumQuestions, TopicPremiumSimulation, TopicPremiumNegotiation, TopicPremiumMatrix,
}

// Every topic must resolve to a non-empty string for every supported
// locale and every role category; missing combinations must fall back,
// never fail.
func TestLookupTotality(t *testing.T) {
	ctx := Context{JobTitle: "Analista", CompanyName: "Acme", DaysUntil: 5}
	locales := []Locale{LocalePT, LocaleEN, LocaleES}
	categories := []RoleCategory{RoleTechnical, RoleManagerial, RoleGeneral}

	for _, topic := range allTopics {
		for _, locale := range locales {
			for _, category := range categories {
				if got := lookup(topic, locale, category)(ctx); got == "" {
					t.Errorf("lookup(%s, %s, %s) rendered empty", topic, locale, category)
				}
			}
		}
	}
}

func TestLookupUnknownLocaleFallsBackToDefault(t *testing.T) {
	ctx := Context{JobTitle: "Analista", CompanyName: "Acme"}
	want := lookup(TopicProcess, LocalePT, RoleGeneral)(ctx)
	got := lookup(TopicProcess, Locale("fr"), RoleGeneral)(ctx)
	if got != want {
		t.Fatalf("unknown locale should render the pt template\n got: %q\nwant: %q", got, want)
	}
}

func TestTitlesCoverAllTopicsAndLocales(t *testing.T) {
	for _, locale := range []Locale{LocalePT, LocaleEN, LocaleES} {
		for _, topic := range allTopics {
			if _, ok := sectionTitles[locale][topic]; !ok {
				t.Errorf("missing section title for (%s, %s)", topic, locale)
			}
		}
	}
}

func TestIndustryTopicFallback(t *testing.T) {
	if got := industryTopic(Industry("aerospace")); got != "industry.default" {
		t.Fatalf("unrecognized industry should map to default topic, got %s", got)
	}
	if got := industryTopic(IndustryFinance); got != "industry.finance" {
		t.Fatalf("known industry mapped to %s", got)
	}
}

func TestInterviewTypeTopicFallback(t *testing.T) {
	if got := interviewTypeTopic(InterviewType("panel")); got != "type.default" {
		t.Fatalf("unrecognized interview type should map to default topic, got %s", got)
	}
}
