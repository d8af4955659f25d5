package worker

import (
	"encoding/json"
	"strings"
	"testing"

	"gorm.io/datatypes"

	"prepplan/internal/database"
	"prepplan/internal/plan"
)

func savedPlanFixture(t *testing.T, premiumUnlocked bool) *database.SavedPlan {
	t.Helper()
	in := plan.FormInput{
		JobTitle:       "Software Engineer",
		CompanyName:    "Acme",
		OutputLanguage: plan.LocaleEN,
	}
	composed, err := plan.Compose(in)
	if err != nil {
		t.Fatalf("compose plan: %v", err)
	}
	if premiumUnlocked {
		pc, err := plan.ComposePremium(in, composed)
		if err != nil {
			t.Fatalf("compose premium: %v", err)
		}
		composed = composed.WithPremium(pc)
	}
	contentJSON, err := json.Marshal(composed)
	if err != nil {
		t.Fatalf("marshal content: %v", err)
	}
	return &database.SavedPlan{
		PlanID:          composed.ID,
		JobTitle:        composed.JobTitle,
		CompanyName:     composed.CompanyName,
		Locale:          string(composed.Locale),
		Content:         datatypes.JSON(contentJSON),
		RawText:         composed.RawText,
		PremiumUnlocked: premiumUnlocked,
	}
}

func TestRenderSavedPlanMatchesStoredText(t *testing.T) {
	rec := savedPlanFixture(t, false)

	text, err := renderSavedPlan(rec, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if text != rec.RawText {
		t.Errorf("rendered text differs from stored raw text")
	}
}

func TestRenderSavedPlanPremiumGate(t *testing.T) {
	locked := savedPlanFixture(t, false)
	text, err := renderSavedPlan(locked, true)
	if err != nil {
		t.Fatalf("render locked: %v", err)
	}
	if strings.Contains(text, "In-Depth Question Bank") {
		t.Errorf("locked plan export leaked premium content")
	}

	unlocked := savedPlanFixture(t, true)
	text, err = renderSavedPlan(unlocked, true)
	if err != nil {
		t.Fatalf("render unlocked: %v", err)
	}
	if !strings.Contains(text, "In-Depth Question Bank") {
		t.Errorf("unlocked plan export missing premium content")
	}

	// Caller opted out even though the plan is unlocked.
	text, err = renderSavedPlan(unlocked, false)
	if err != nil {
		t.Fatalf("render opted out: %v", err)
	}
	if strings.Contains(text, "In-Depth Question Bank") {
		t.Errorf("opted-out export still contains premium content")
	}
}

func TestRenderSavedPlanRejectsCorruptContent(t *testing.T) {
	rec := &database.SavedPlan{Content: datatypes.JSON([]byte("{not json"))}
	if _, err := renderSavedPlan(rec, false); err == nil {
		t.Fatal("expected error for corrupt content")
	}
}
