package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValidateInput rejects a request missing its required fields. It runs
// before any assembly, so a rejected request never yields a partial plan.
func ValidateInput(in FormInput) error {
	if strings.TrimSpace(in.JobTitle) == "" {
		return ErrMissingJobTitle
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return ErrMissingCompanyName
	}
	return nil
}

// Compose builds a complete interview plan from a single request. It is
// pure apart from the freshly generated id and the wall clock used by the
// schedule assembler: the same input always yields content-equivalent
// sections. Any panic escaping an assembler is recovered here and
// surfaced as ErrGenerationFailed with no partial plan.
func Compose(in FormInput) (*InterviewPlan, error) {
	return composeAt(in, time.Now())
}

func composeAt(in FormInput, now time.Time) (p *InterviewPlan, err error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("%w: %v", ErrGenerationFailed, r)
		}
	}()

	category := Classify(in.JobTitle, in.JobLevel)

	out := &InterviewPlan{
		ID:          newPlanID(),
		JobTitle:    in.JobTitle,
		CompanyName: in.CompanyName,
		Locale:      normalizeLocale(in.OutputLanguage),

		Process:               assembleProcess(in, category),
		PreparationSchedule:   assembleSchedule(in, category, now),
		Questions:             assembleQuestions(in, category),
		IndustrySections:      assembleIndustrySections(in, category),
		InterviewTypeSections: assembleInterviewTypeSections(in, category),
		QuestionsToAsk:        assembleQuestionsToAsk(in, category),
		StudyMaterials:        assembleStudyMaterials(in, category),
		FinalTips:             assembleFinalTips(in, category),
	}
	out.RawText = RenderText(out, false)

	return out, nil
}

// newPlanID generates an opaque identifier unique per call. It only needs
// to disambiguate plans within one user's saved set, so a timestamp plus
// a random suffix is enough.
func newPlanID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("plan_%d_%s", time.Now().UnixMilli(), suffix)
}

// RenderText serializes the plan into its flattened plain-text rendition:
// a localized title line, the position/company header, then every present
// section numbered in composer order. Numbering counts only sections that
// are actually present. Premium sections are appended only when the
// caller explicitly asks for a premium-included render; the RawText
// stored on the plan at compose time never contains them.
func RenderText(p *InterviewPlan, includePremium bool) string {
	locale := normalizeLocale(p.Locale)

	var b strings.Builder
	b.WriteString(planTitles[locale])
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s: %s\n", positionLabels[locale], p.JobTitle)
	fmt.Fprintf(&b, "%s: %s\n", companyLabels[locale], p.CompanyName)

	sections := p.Sections()
	if includePremium && p.Premium != nil {
		sections = append(sections,
			p.Premium.DetailedQuestions,
			p.Premium.SimulationScript,
			p.Premium.NegotiationGuide,
			p.Premium.CompetencyMatrix,
		)
	}

	for i, s := range sections {
		fmt.Fprintf(&b, "\n%d. %s\n%s\n", i+1, s.Title, s.Content)
	}

	return b.String()
}
