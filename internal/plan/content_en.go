package plan

import "fmt"

func init() {
	registerTitles(LocaleEN, map[Topic]string{
		TopicProcess:            "Interview Process",
		TopicQuestions:          "Likely Interview Questions",
		TopicQuestionsToAsk:     "Questions to Ask the Interviewer",
		TopicStudyMaterials:     "Study Materials",
		TopicFinalTips:          "Final Tips",
		TopicScheduleImmediate:  "Preparation Schedule",
		TopicScheduleShort:      "Preparation Schedule",
		TopicScheduleWeek:       "Preparation Schedule",
		TopicScheduleLong:       "Preparation Schedule",
		"industry.technology":   "Industry Focus: Technology",
		"industry.finance":      "Industry Focus: Finance",
		"industry.healthcare":   "Industry Focus: Healthcare",
		"industry.retail":       "Industry Focus: Retail",
		"industry.education":    "Industry Focus: Education",
		"industry.default":      "Industry Focus",
		"type.technical":        "Interview Format: Technical",
		"type.behavioral":       "Interview Format: Behavioral",
		"type.strategic":        "Interview Format: Strategic",
		"type.cultural":         "Interview Format: Cultural",
		"type.default":          "Interview Format",
		TopicPremiumQuestions:   "In-Depth Question Bank",
		TopicPremiumSimulation:  "Interview Simulation Script",
		TopicPremiumNegotiation: "Offer Negotiation Guide",
		TopicPremiumMatrix:      "Competency Matrix",
	})

	register(TopicProcess, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**How the hiring process at %s usually runs:**
- Application screening followed by a recruiter call to align expectations.
- One or two conversations with the hiring manager for the %s position.
- A practical or situational stage matched to the role.
- Final conversation covering offer details, compensation and start date.
- Confirm each stage in writing and keep your availability up to date.`, c.CompanyName, c.JobTitle)
	})

	register(TopicQuestions, LocaleEN, RoleTechnical, func(c Context) string {
		return fmt.Sprintf(`**Questions you are likely to hear for %s:**
- Walk me through a recent project: architecture, trade-offs and your exact role.
- How do you keep quality up? Testing strategy, code review, observability.
- Tell me about a production incident you handled and what changed afterwards.
- Why %s, and what would you want to build in your first six months?
- Expect a hands-on stage: live coding, system design or a take-home review.`, c.JobTitle, c.CompanyName)
	})
	register(TopicQuestions, LocaleEN, RoleManagerial, func(c Context) string {
		return fmt.Sprintf(`**Questions you are likely to hear for %s:**
- How do you structure and grow a team? Hiring, rituals, career ladders.
- Tell me about a conflict between people you managed and how you resolved it.
- How do you balance delivery pressure against technical or quality debt?
- Which metrics do you use to know your team is healthy and productive?
- Why %s, and what would you change in your first ninety days?`, c.JobTitle, c.CompanyName)
	})
	register(TopicQuestions, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Questions you are likely to hear for %s:**
- Tell me about yourself and why this role at %s interests you.
- Describe a result you are proud of and the obstacles you overcame.
- How do you organize your work when priorities change quickly?
- Tell me about a mistake you made and what you learned from it.
- Where do you want to be professionally in three years?`, c.JobTitle, c.CompanyName)
	})

	register(TopicQuestionsToAsk, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Good questions to ask at %s:**
- What does success look like for this role in the first six months?
- How is the team structured and who would I work with most closely?
- What are the biggest challenges the team is facing right now?
- How does %s support learning and career growth?
- What are the next steps in the process and the expected timeline?`, c.CompanyName, c.CompanyName)
	})

	register(TopicStudyMaterials, LocaleEN, RoleTechnical, func(c Context) string {
		return fmt.Sprintf(`**What to review before the interview:**
- The tech stack mentioned in the %s job description, hands-on if possible.
- Data structures, algorithms and system design fundamentals.
- Your own recent projects: be ready to defend every decision.
- %s's engineering blog, public repositories and recent product launches.
- Practice explaining technical decisions out loud, in plain language.`, c.JobTitle, c.CompanyName)
	})
	register(TopicStudyMaterials, LocaleEN, RoleManagerial, func(c Context) string {
		return fmt.Sprintf(`**What to review before the interview:**
- %s's org structure, leadership principles and public culture material.
- Frameworks you actually use: one-on-ones, feedback, prioritization.
- Stories with numbers: team growth, delivery improvements, retention.
- Recent news about %s, its market and its main competitors.
- Prepare two or three leadership situations in STAR format.`, c.CompanyName, c.CompanyName)
	})
	register(TopicStudyMaterials, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**What to review before the interview:**
- The full job description for %s; map each requirement to your experience.
- %s's website, mission, products and most recent announcements.
- Your resume: be ready to expand on every line without hesitation.
- Common behavioral questions, answered in STAR format.
- News about the sector %s operates in.`, c.JobTitle, c.CompanyName, c.CompanyName)
	})

	register(TopicFinalTips, LocaleEN, RoleGeneral, func(c Context) string {
		s := fmt.Sprintf(`**On the day:**
- Arrive early, or test your link, camera and microphone for remote calls.
- Bring concrete examples; numbers are more convincing than adjectives.
- Listen fully before answering, and ask when a question is unclear.
- Close by reaffirming your interest in %s and asking about next steps.
- Send a short thank-you note within a day.`, c.CompanyName)
		if c.PracticePoints != "" {
			s += fmt.Sprintf("\n- Extra attention to the points you flagged: %s.", c.PracticePoints)
		}
		if c.PersonalContext != "" {
			s += fmt.Sprintf("\n- Keep your own context in mind: %s.", c.PersonalContext)
		}
		return s
	})

	register(TopicScheduleImmediate, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Your interview at %s is imminent — down to essentials:**
- Re-read the job description and your three strongest stories.
- Do one out-loud run of your introduction; no new material today.
- Prepare clothes, documents, route or video link tonight.
- Sleep well; rest beats one more hour of cramming.`, c.CompanyName)
	})
	register(TopicScheduleShort, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**%d day(s) to go — focused sprint:**
- Day backwards from the interview: last day is review only, no new topics.
- One mock interview with a friend, out loud, timed.
- Deep-dive %s: product, recent news, the team you would join.
- Polish the answers to the questions listed above.`, c.DaysUntil, c.CompanyName)
	})
	register(TopicScheduleWeek, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**%d days to go — one-week plan:**
- Days 1–2: research %s and map the job requirements to your experience.
- Days 3–4: prepare and rehearse your core stories in STAR format.
- Days 5–6: mock interview plus targeted practice on weak spots.
- Final day: light review, logistics, early night.`, c.DaysUntil, c.CompanyName)
	})
	register(TopicScheduleLong, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**%d days to go — long-range preparation:**
- Week 1: research %s thoroughly and close knowledge gaps for the role.
- Then two or three practice sessions per week, alternating topics.
- Schedule at least two full mock interviews before the final week.
- Reserve the last two days for review and logistics only.`, c.DaysUntil, c.CompanyName)
	})

	registerIndustryEN()
	registerInterviewTypeEN()
	registerPremiumEN()
}

func registerIndustryEN() {
	register("industry.technology", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Working in technology at %s:**
- Expect questions about shipping fast without breaking quality.
- Know the product, its users and the competitive landscape.
- Show comfort with iteration: experiments, metrics, post-mortems.`, c.CompanyName)
	})
	register("industry.finance", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Working in finance at %s:**
- Regulation and risk come up constantly; show you respect both.
- Precision matters: double-check any numbers you quote.
- Read up on compliance basics relevant to the market %s serves.`, c.CompanyName, c.CompanyName)
	})
	register("industry.healthcare", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Working in healthcare at %s:**
- Patient impact and data privacy are the themes to anchor answers on.
- Expect questions about working under strict process and audit trails.
- Empathy is evaluated as seriously as competence here.`, c.CompanyName)
	})
	register("industry.retail", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Working in retail at %s:**
- Everything returns to the customer: frame answers around their experience.
- Seasonality and peak readiness are favorite interview themes.
- Know %s's channels, store footprint or marketplace position.`, c.CompanyName, c.CompanyName)
	})
	register("industry.education", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Working in education at %s:**
- Learning outcomes are the north star; tie your impact stories to them.
- Expect questions about serving very different user profiles patiently.
- Show genuine interest in %s's pedagogical approach.`, c.CompanyName, c.CompanyName)
	})
	register("industry.default", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Understanding %s's sector:**
- Research the main players, trends and pressures in this market.
- Prepare one informed observation about where the sector is heading.
- Connect your experience to the specific problems %s solves.`, c.CompanyName, c.CompanyName)
	})
}

func registerInterviewTypeEN() {
	register("type.technical", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparing for a technical interview:**
- Practice solving problems out loud; the reasoning is what is graded.
- Clarify requirements before coding and state your assumptions.
- It is fine to not know something — show how you would find out.
- Review the fundamentals behind the %s role, not just tools.`, c.JobTitle)
	})
	register("type.behavioral", LocaleEN, RoleGeneral, func(c Context) string {
		return `**Preparing for a behavioral interview:**
- Prepare six to eight stories in STAR format covering different competencies.
- Each story needs a measurable result and a lesson learned.
- Avoid "we" without "I": interviewers need to see your contribution.
- Be honest about failures; rehearsed perfection reads as evasion.`
	})
	register("type.strategic", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparing for a strategic interview:**
- Build a point of view on %s's market position and biggest bets.
- Practice structuring ambiguous problems before proposing answers.
- Bring one concrete idea you would explore in the role, with trade-offs.
- Expect pushback on your reasoning; defend it calmly, revise openly.`, c.CompanyName)
	})
	register("type.cultural", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparing for a culture interview:**
- Read everything %s publishes about values and working style.
- Prepare real examples of living similar values, not declarations of fit.
- Have an honest answer for what kind of environment you do NOT thrive in.
- Ask about how the values show up day to day; it signals seriousness.`, c.CompanyName)
	})
	register("type.default", LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparing for this interview stage:**
- Ask the recruiter what format to expect and who will be in the room.
- Default preparation: your story, the %s role, and %s itself.
- Prepare questions for the end; an empty "no questions" wastes the slot.`, c.JobTitle, c.CompanyName)
	})
}

func registerPremiumEN() {
	register(TopicPremiumQuestions, LocaleEN, RoleTechnical, func(c Context) string {
		return fmt.Sprintf(`**Extended question bank for %s:**
- Design a system for a core %s use case; defend capacity and failure choices.
- What would you refactor first in a legacy codebase, and how do you de-risk it?
- How do you evaluate build-vs-buy for a critical component?
- Describe your debugging process for an intermittent production failure.
- A teammate ships untested code under deadline pressure — what do you do?
- How do you keep up with your field without drowning in novelty?`, c.JobTitle, c.CompanyName)
	})
	register(TopicPremiumQuestions, LocaleEN, RoleManagerial, func(c Context) string {
		return fmt.Sprintf(`**Extended question bank for %s:**
- Walk through a reorganization you led: rationale, execution, fallout.
- How do you handle a strong performer who damages team morale?
- Your team misses a quarter badly — reconstruct your communication upward.
- How do you decide what to delegate and what to keep?
- Describe your hiring bar and a time you kept it under pressure to fill.
- What would your last team say is your biggest flaw as a leader?`, c.JobTitle)
	})
	register(TopicPremiumQuestions, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Extended question bank for %s:**
- Reconstruct a tough decision you made with incomplete information.
- Which feedback was hardest to hear, and what did you change?
- How do you win over a colleague who disagrees with your approach?
- Describe a time you delivered despite a resource being cut mid-way.
- What will be hardest for you in this role at %s, honestly?
- What does your ideal working week look like?`, c.JobTitle, c.CompanyName)
	})

	register(TopicPremiumSimulation, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Run this simulation out loud, timed (about 30 minutes):**
1. Two-minute introduction: who you are and why %s (rehearse until fluid).
2. Pick three questions from the sections above; answer each in 3–4 minutes.
3. Have someone interrupt with "why?" at least once per answer.
4. Close with your two best questions for the interviewer.
5. Review a recording: filler words, rambling, missing results. Repeat once.`, c.CompanyName)
	})
	register(TopicPremiumNegotiation, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**When the offer from %s arrives:**
- Never accept on the call; thank them and ask for the offer in writing.
- Research market compensation for %s in your region before replying.
- Negotiate the package, not just salary: equity, bonus, flexibility, start date.
- Anchor with a range where your target is the floor, and justify it with data.
- A respectful negotiation does not rescind real offers; silence costs more.`, c.CompanyName, c.JobTitle)
	})
	register(TopicPremiumMatrix, LocaleEN, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Score yourself 1–5 on what %s will evaluate; drill anything below 4:**
- Domain knowledge for %s.
- Communication: clear, structured, honest answers.
- Evidence of results: numbers and outcomes, not tasks.
- Collaboration: stories involving other people and other teams.
- Motivation: a specific, credible reason for wanting this role.`, c.CompanyName, c.JobTitle)
	})
}
