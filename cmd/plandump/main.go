package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"prepplan/internal/plan"
)

// plandump composes one interview plan from command line flags and prints
// the flattened text. Useful for eyeballing template output without the
// API stack running.
func main() {
	var (
		jobTitle      = flag.String("job-title", "", "job title (required)")
		companyName   = flag.String("company", "", "company name (required)")
		locale        = flag.String("locale", "pt", "output language: pt, en or es")
		interviewDate = flag.String("interview-date", "", "interview date, YYYY-MM-DD (optional)")
		interviewType = flag.String("interview-type", "", "interview type: technical, behavioral, strategic or cultural (optional)")
		jobLevel      = flag.String("job-level", "", "job level: junior, mid, senior or leadership (optional)")
		industry      = flag.String("industry", "", "industry: technology, finance, healthcare, retail, education or other (optional)")
		practice      = flag.String("practice-points", "", "topics the candidate wants to practice (optional)")
		personal      = flag.String("personal-context", "", "personal context to weave into the final tips (optional)")
		premium       = flag.Bool("premium", false, "also compose and print premium content")
	)
	flag.Parse()

	if strings.TrimSpace(*jobTitle) == "" {
		log.Fatal("missing required flag: --job-title")
	}
	if strings.TrimSpace(*companyName) == "" {
		log.Fatal("missing required flag: --company")
	}

	in := plan.FormInput{
		JobTitle:        *jobTitle,
		CompanyName:     *companyName,
		OutputLanguage:  plan.Locale(*locale),
		InterviewType:   plan.InterviewType(*interviewType),
		JobLevel:        plan.JobLevel(*jobLevel),
		Industry:        plan.Industry(*industry),
		PracticePoints:  *practice,
		PersonalContext: *personal,
	}

	if *interviewDate != "" {
		t, err := time.Parse("2006-01-02", *interviewDate)
		if err != nil {
			log.Fatalf("parse --interview-date: %v", err)
		}
		in.InterviewDate = &t
	}

	p, err := plan.Compose(in)
	if err != nil {
		log.Fatalf("compose plan: %v", err)
	}

	if *premium {
		pc, err := plan.ComposePremium(in, p)
		if err != nil {
			log.Fatalf("compose premium content: %v", err)
		}
		p = p.WithPremium(pc)
	}

	fmt.Fprintln(os.Stdout, plan.RenderText(p, *premium))
}
