package plan

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func baseInput() FormInput {
	return FormInput{
		JobTitle:       "Software Engineer",
		CompanyName:    "Acme",
		OutputLanguage: LocaleEN,
	}
}

func dateIn(now time.Time, days int) *time.Time {
	d := now.Add(time.Duration(days) * 24 * time.Hour)
	return &d
}

func TestComposeValidatesRequiredFields(t *testing.T) {
	if _, err := Compose(FormInput{CompanyName: "Acme", OutputLanguage: LocaleEN}); !errors.Is(err, ErrMissingJobTitle) {
		t.Fatalf("expected ErrMissingJobTitle, got %v", err)
	}
	if _, err := Compose(FormInput{JobTitle: "Engineer", OutputLanguage: LocaleEN}); !errors.Is(err, ErrMissingCompanyName) {
		t.Fatalf("expected ErrMissingCompanyName, got %v", err)
	}
}

// Excluding the opaque id, repeated composition of the same input must
// yield identical section content.
func TestComposeIsDeterministic(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	in := baseInput()
	in.Industry = IndustryFinance
	in.InterviewType = InterviewBehavioral
	in.InterviewDate = dateIn(now, 5)

	a, err := composeAt(in, now)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	b, err := composeAt(in, now)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if a.ID == b.ID {
		t.Fatalf("ids must be unique per call, both were %q", a.ID)
	}
	if !reflect.DeepEqual(a.Sections(), b.Sections()) {
		t.Fatal("sections differ between identical compositions")
	}
	if a.RawText != b.RawText {
		t.Fatal("raw text differs between identical compositions")
	}
}

func TestScheduleBoundaries(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	cases := []struct {
		days int
		want string // distinctive fragment of the selected en template
	}{
		{-1, "imminent"},
		{0, "imminent"},
		{1, "imminent"},
		{2, "focused sprint"},
		{3, "focused sprint"},
		{4, "one-week plan"},
		{7, "one-week plan"},
		{8, "long-range"},
		{30, "long-range"},
	}
	for _, tc := range cases {
		in := baseInput()
		in.InterviewDate = dateIn(now, tc.days)
		p, err := composeAt(in, now)
		if err != nil {
			t.Fatalf("compose with %d days: %v", tc.days, err)
		}
		if p.PreparationSchedule == nil {
			t.Fatalf("schedule section missing with %d days", tc.days)
		}
		if !strings.Contains(p.PreparationSchedule.Content, tc.want) {
			t.Errorf("%d days: schedule content %q does not contain %q",
				tc.days, p.PreparationSchedule.Content, tc.want)
		}
	}
}

func TestOptionalSectionPresence(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	p, err := composeAt(baseInput(), now)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if p.PreparationSchedule != nil {
		t.Error("schedule section present without interview date")
	}
	if len(p.IndustrySections) != 0 {
		t.Error("industry sections present without industry")
	}
	if len(p.InterviewTypeSections) != 0 {
		t.Error("interview type sections present without interview type")
	}

	in := baseInput()
	in.InterviewDate = dateIn(now, 10)
	in.Industry = IndustryHealthcare
	in.InterviewType = InterviewCultural
	p, err = composeAt(in, now)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if p.PreparationSchedule == nil {
		t.Error("schedule section missing with interview date")
	}
	if len(p.IndustrySections) != 1 {
		t.Errorf("want 1 industry section, got %d", len(p.IndustrySections))
	}
	if len(p.InterviewTypeSections) != 1 {
		t.Errorf("want 1 interview type section, got %d", len(p.InterviewTypeSections))
	}

	// "other" suppresses industry sections entirely.
	in = baseInput()
	in.Industry = IndustryOther
	p, err = composeAt(in, now)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(p.IndustrySections) != 0 {
		t.Error("industry sections present for industry=other")
	}
}

// The schedule section shifts the numbering of everything after it.
func TestRawTextNumberingTracksPresentSections(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	p, err := composeAt(baseInput(), now)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !strings.Contains(p.RawText, "2. Likely Interview Questions") {
		t.Fatalf("without a date the questions section should be numbered 2, raw:\n%s", p.RawText)
	}

	in := baseInput()
	in.InterviewDate = dateIn(now, 3)
	p, err = composeAt(in, now)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !strings.Contains(p.RawText, "2. Preparation Schedule") {
		t.Fatalf("schedule should be numbered 2, raw:\n%s", p.RawText)
	}
	if !strings.Contains(p.RawText, "3. Likely Interview Questions") {
		t.Fatalf("with a date the questions section should shift to 3, raw:\n%s", p.RawText)
	}
}

func TestComposeScenarioSoftwareEngineer(t *testing.T) {
	p, err := Compose(baseInput())
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if got := Classify("Software Engineer", ""); got != RoleTechnical {
		t.Fatalf("scenario expects a technical classification, got %q", got)
	}
	if len(p.Sections()) != 5 {
		t.Fatalf("want the 5 required sections, got %d", len(p.Sections()))
	}
	if !strings.HasPrefix(p.RawText, "INTERVIEW PREPARATION PLAN") {
		t.Fatalf("raw text should start with the localized title, got %q", p.RawText[:40])
	}
	if !strings.Contains(p.RawText, "POSITION: Software Engineer") {
		t.Error("raw text missing the position header")
	}
	if !strings.Contains(p.RawText, "COMPANY: Acme") {
		t.Error("raw text missing the company header")
	}
	// The questions and study sections must use the technical templates.
	if !strings.Contains(p.Questions.Content, "architecture, trade-offs") {
		t.Errorf("questions should use the technical template, got %q", p.Questions.Content)
	}
	if !strings.Contains(p.StudyMaterials.Content, "system design") {
		t.Errorf("study materials should use the technical template, got %q", p.StudyMaterials.Content)
	}
}

func TestComposeUnknownLocaleRendersDefault(t *testing.T) {
	in := baseInput()
	in.OutputLanguage = "de"
	p, err := Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !strings.HasPrefix(p.RawText, "PLANO DE PREPARAÇÃO PARA ENTREVISTA") {
		t.Fatalf("unknown locale should fall back to pt, raw starts %q", p.RawText[:50])
	}
}

func TestComposePremiumIsIdempotent(t *testing.T) {
	in := baseInput()
	base, err := Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	first, err := ComposePremium(in, base)
	if err != nil {
		t.Fatalf("compose premium: %v", err)
	}
	second, err := ComposePremium(in, base)
	if err != nil {
		t.Fatalf("compose premium: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("premium content differs between identical invocations")
	}
	if first.DetailedQuestions.Content == "" || first.SimulationScript.Content == "" ||
		first.NegotiationGuide.Content == "" || first.CompetencyMatrix.Content == "" {
		t.Fatal("premium sections must all be non-empty")
	}
}

func TestWithPremiumDoesNotMutateBase(t *testing.T) {
	in := baseInput()
	base, err := Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	pc, err := ComposePremium(in, base)
	if err != nil {
		t.Fatalf("compose premium: %v", err)
	}

	unlocked := base.WithPremium(pc)
	if base.Premium != nil {
		t.Fatal("unlocking must not mutate the base plan")
	}
	if unlocked.Premium == nil {
		t.Fatal("unlocked plan missing premium content")
	}
	if unlocked.ID != base.ID {
		t.Fatal("plan id must survive the premium unlock")
	}
	if unlocked.RawText != base.RawText {
		t.Fatal("compose-time raw text must not include premium sections")
	}

	full := RenderText(unlocked, true)
	if !strings.Contains(full, unlocked.Premium.NegotiationGuide.Title) {
		t.Fatal("premium-included render should append premium sections")
	}
	if strings.Contains(base.RawText, pc.NegotiationGuide.Title) {
		t.Fatal("plain render leaked a premium section")
	}
}
