package plan

import (
	"errors"
	"time"
)

// Locale is one of the supported output languages.
type Locale string

const (
	LocalePT Locale = "pt"
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// normalizeLocale maps unknown locales to the default (pt). The content
// library must always resolve, so an unrecognized locale never errors.
func normalizeLocale(l Locale) Locale {
	switch l {
	case LocalePT, LocaleEN, LocaleES:
		return l
	default:
		return LocalePT
	}
}

// JobLevel is the declared seniority of the candidate.
type JobLevel string

const (
	LevelJunior     JobLevel = "junior"
	LevelMid        JobLevel = "mid"
	LevelSenior     JobLevel = "senior"
	LevelLeadership JobLevel = "leadership"
)

// InterviewType is the declared format of the upcoming interview.
type InterviewType string

const (
	InterviewTechnical  InterviewType = "technical"
	InterviewBehavioral InterviewType = "behavioral"
	InterviewStrategic  InterviewType = "strategic"
	InterviewCultural   InterviewType = "cultural"
)

// Industry is the declared sector of the hiring company. IndustryOther
// suppresses industry-specific sections entirely.
type Industry string

const (
	IndustryTechnology Industry = "technology"
	IndustryFinance    Industry = "finance"
	IndustryHealthcare Industry = "healthcare"
	IndustryRetail     Industry = "retail"
	IndustryEducation  Industry = "education"
	IndustryOther      Industry = "other"
)

// RoleCategory is the coarse classification of a job title that drives
// template selection. Derived, never stored.
type RoleCategory string

const (
	RoleTechnical  RoleCategory = "technical"
	RoleManagerial RoleCategory = "managerial"
	RoleGeneral    RoleCategory = "general"
)

// FormInput is the user-supplied generation request. Immutable once
// submitted; the composer never mutates it.
type FormInput struct {
	JobTitle              string        `json:"job_title"`
	CompanyName           string        `json:"company_name"`
	JobURL                string        `json:"job_url,omitempty"`
	CandidateProfileURL   string        `json:"candidate_profile_url,omitempty"`
	InterviewerProfileURL string        `json:"interviewer_profile_url,omitempty"`
	InterviewDate         *time.Time    `json:"interview_date,omitempty"`
	InterviewType         InterviewType `json:"interview_type,omitempty"`
	JobLevel              JobLevel      `json:"job_level,omitempty"`
	Industry              Industry      `json:"industry,omitempty"`
	InterviewLanguage     string        `json:"interview_language,omitempty"`
	PracticePoints        string        `json:"practice_points,omitempty"`
	PersonalContext       string        `json:"personal_context,omitempty"`
	OutputLanguage        Locale        `json:"output_language"`
}

// Section is one titled, emoji-tagged block of plan content. Content is
// plain text with markdown-like bullet and bold markers.
type Section struct {
	Title   string `json:"title"`
	Emoji   string `json:"emoji"`
	Content string `json:"content"`
}

// PremiumContent bundles the four sections unlocked after payment.
type PremiumContent struct {
	DetailedQuestions Section `json:"detailed_questions"`
	SimulationScript  Section `json:"simulation_script"`
	NegotiationGuide  Section `json:"negotiation_guide"`
	CompetencyMatrix  Section `json:"competency_matrix"`
}

// InterviewPlan is the aggregate produced by Compose. It is never mutated
// in place: unlocking premium content yields a new value via WithPremium.
type InterviewPlan struct {
	ID          string `json:"id"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	Locale      Locale `json:"locale"`

	Process               Section   `json:"process"`
	PreparationSchedule   *Section  `json:"preparation_schedule,omitempty"`
	Questions             Section   `json:"questions"`
	IndustrySections      []Section `json:"industry_sections,omitempty"`
	InterviewTypeSections []Section `json:"interview_type_sections,omitempty"`
	QuestionsToAsk        Section   `json:"questions_to_ask"`
	StudyMaterials        Section   `json:"study_materials"`
	FinalTips             Section   `json:"final_tips"`

	Premium *PremiumContent `json:"premium,omitempty"`

	// RawText is a derived view; it is always regenerable from the
	// structured sections via RenderText.
	RawText string `json:"raw_text"`
}

// Sections returns the present sections in composer order: process,
// schedule, questions, industry, interview type, questions to ask, study
// materials, final tips. Premium sections are not included.
func (p *InterviewPlan) Sections() []Section {
	out := make([]Section, 0, 8+len(p.IndustrySections)+len(p.InterviewTypeSections))
	out = append(out, p.Process)
	if p.PreparationSchedule != nil {
		out = append(out, *p.PreparationSchedule)
	}
	out = append(out, p.Questions)
	out = append(out, p.IndustrySections...)
	out = append(out, p.InterviewTypeSections...)
	out = append(out, p.QuestionsToAsk, p.StudyMaterials, p.FinalTips)
	return out
}

// WithPremium returns a copy of the plan with premium content attached.
// The id and RawText of the base plan are preserved.
func (p *InterviewPlan) WithPremium(pc *PremiumContent) *InterviewPlan {
	clone := *p
	clone.Premium = pc
	return &clone
}

var (
	// ErrMissingJobTitle and ErrMissingCompanyName reject a request
	// before composition begins; no partial plan is produced.
	ErrMissingJobTitle    = errors.New("job title is required")
	ErrMissingCompanyName = errors.New("company name is required")

	// ErrGenerationFailed wraps any unexpected panic caught at the
	// Compose boundary.
	ErrGenerationFailed = errors.New("plan generation failed")
)
