package plan

import "time"

// contextFor builds the template substitution context from the request.
// DaysUntil is only meaningful for schedule templates and is filled in by
// the schedule assembler.
func contextFor(in FormInput) Context {
	return Context{
		JobTitle:        in.JobTitle,
		CompanyName:     in.CompanyName,
		PracticePoints:  in.PracticePoints,
		PersonalContext: in.PersonalContext,
	}
}

func buildSection(topic Topic, in FormInput, category RoleCategory, ctx Context) Section {
	locale := normalizeLocale(in.OutputLanguage)
	return Section{
		Title:   titleFor(topic, locale),
		Emoji:   emojiFor(topic),
		Content: lookup(topic, locale, category)(ctx),
	}
}

func assembleProcess(in FormInput, category RoleCategory) Section {
	return buildSection(TopicProcess, in, category, contextFor(in))
}

func assembleQuestions(in FormInput, category RoleCategory) Section {
	return buildSection(TopicQuestions, in, category, contextFor(in))
}

func assembleQuestionsToAsk(in FormInput, category RoleCategory) Section {
	return buildSection(TopicQuestionsToAsk, in, category, contextFor(in))
}

func assembleStudyMaterials(in FormInput, category RoleCategory) Section {
	return buildSection(TopicStudyMaterials, in, category, contextFor(in))
}

func assembleFinalTips(in FormInput, category RoleCategory) Section {
	return buildSection(TopicFinalTips, in, category, contextFor(in))
}

// assembleSchedule is conditional: it returns nil when no interview date
// was supplied. The density variant is chosen by the calendar-day
// difference between the interview date and now, with inclusive upper
// bounds: exactly 3 days uses the short variant, exactly 7 the week one.
func assembleSchedule(in FormInput, category RoleCategory, now time.Time) *Section {
	if in.InterviewDate == nil {
		return nil
	}

	days := calendarDaysUntil(now, *in.InterviewDate)
	var topic Topic
	switch {
	case days <= 1:
		topic = TopicScheduleImmediate
	case days <= 3:
		topic = TopicScheduleShort
	case days <= 7:
		topic = TopicScheduleWeek
	default:
		topic = TopicScheduleLong
	}

	ctx := contextFor(in)
	ctx.DaysUntil = days
	s := buildSection(topic, in, category, ctx)
	return &s
}

// calendarDaysUntil returns the calendar-day difference between now and
// the interview date, both truncated to midnight UTC. The result may be
// zero or negative; no validation is applied to past dates.
func calendarDaysUntil(now, date time.Time) int {
	truncate := func(t time.Time) time.Time {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(truncate(date).Sub(truncate(now)).Hours() / 24)
}

// assembleIndustrySections returns zero or more industry-specific
// sections. An empty or "other" industry yields none; an unrecognized
// value falls back to the default industry template.
func assembleIndustrySections(in FormInput, category RoleCategory) []Section {
	if in.Industry == "" || in.Industry == IndustryOther {
		return nil
	}
	return []Section{buildSection(industryTopic(in.Industry), in, category, contextFor(in))}
}

// assembleInterviewTypeSections returns zero or more sections for the
// declared interview format; unrecognized values use the default
// template rather than erroring.
func assembleInterviewTypeSections(in FormInput, category RoleCategory) []Section {
	if in.InterviewType == "" {
		return nil
	}
	return []Section{buildSection(interviewTypeTopic(in.InterviewType), in, category, contextFor(in))}
}
