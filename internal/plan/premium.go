package plan

import (
	"errors"
	"fmt"
)

// ComposePremium produces the four premium sections for an already
// composed plan. It is keyed off the same role category and locale as the
// base composition and is idempotent: repeated calls with the same input
// yield content-equal sections, so the UI may safely re-invoke it on
// re-render after the one-time unlock event.
func ComposePremium(in FormInput, base *InterviewPlan) (pc *PremiumContent, err error) {
	if base == nil {
		return nil, errors.New("base plan is required")
	}
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			pc = nil
			err = fmt.Errorf("%w: %v", ErrGenerationFailed, r)
		}
	}()

	category := Classify(in.JobTitle, in.JobLevel)
	ctx := contextFor(in)

	return &PremiumContent{
		DetailedQuestions: buildSection(TopicPremiumQuestions, in, category, ctx),
		SimulationScript:  buildSection(TopicPremiumSimulation, in, category, ctx),
		NegotiationGuide:  buildSection(TopicPremiumNegotiation, in, category, ctx),
		CompetencyMatrix:  buildSection(TopicPremiumMatrix, in, category, ctx),
	}, nil
}
