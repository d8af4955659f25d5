package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"prepplan/internal/database"
	"prepplan/internal/plan"
)

type fakeExportStore struct {
	presign map[string]string
	deleted []string
	failKey string
}

func newFakeExportStore() *fakeExportStore {
	return &fakeExportStore{presign: map[string]string{}}
}

func (s *fakeExportStore) PresignedURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	if objectKey == s.failKey {
		return "", minio.ErrorResponse{Code: "NoSuchKey"}
	}
	if v, ok := s.presign[objectKey]; ok {
		return v, nil
	}
	return "https://example.invalid/" + objectKey, nil
}

func (s *fakeExportStore) DeleteObject(_ context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.User{}, &database.SavedPlan{}, &database.PaymentRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newPlanTestHandler(t *testing.T) (*PlanHandler, *gorm.DB, *fakeExportStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	store := newFakeExportStore()
	h := NewPlanHandler(db, nil, store, 15*time.Minute, nil)
	return h, db, store
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func seedSavedPlan(t *testing.T, db *gorm.DB, userID uint, in plan.FormInput) *database.SavedPlan {
	t.Helper()
	composed, err := plan.Compose(in)
	if err != nil {
		t.Fatalf("compose plan: %v", err)
	}
	inputJSON, _ := json.Marshal(in)
	contentJSON, _ := json.Marshal(composed)
	rec := database.SavedPlan{
		PlanID:      composed.ID,
		JobTitle:    composed.JobTitle,
		CompanyName: composed.CompanyName,
		Locale:      string(composed.Locale),
		Input:       datatypes.JSON(inputJSON),
		Content:     datatypes.JSON(contentJSON),
		RawText:     composed.RawText,
		UserID:      userID,
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed saved plan: %v", err)
	}
	return &rec
}

func TestGenerateReturnsPlan(t *testing.T) {
	h, _, _ := newPlanTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v1/plans/generate", plan.FormInput{
		JobTitle:       "Software Engineer",
		CompanyName:    "Acme",
		OutputLanguage: plan.LocaleEN,
	})

	h.Generate(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	var got plan.InterviewPlan
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(got.ID, "plan_") {
		t.Errorf("plan id = %q, want plan_ prefix", got.ID)
	}
	if !strings.Contains(got.RawText, "INTERVIEW PREPARATION PLAN") {
		t.Errorf("raw text missing localized title: %q", got.RawText[:min(len(got.RawText), 80)])
	}
}

func TestGenerateRejectsMissingFields(t *testing.T) {
	h, _, _ := newPlanTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v1/plans/generate", plan.FormInput{
		CompanyName:    "Acme",
		OutputLanguage: plan.LocaleEN,
	})

	h.Generate(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSaveAndListScopedToOwner(t *testing.T) {
	h, db, _ := newPlanTestHandler(t)

	in := plan.FormInput{JobTitle: "Data Analyst", CompanyName: "Initech", OutputLanguage: plan.LocaleEN}
	composed, err := plan.Compose(in)
	if err != nil {
		t.Fatalf("compose plan: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = jsonRequest(t, http.MethodPost, "/v1/plans", savePlanRequest{Input: in, Plan: *composed})

	h.Save(c)
	if w.Code != http.StatusCreated {
		t.Fatalf("save status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}

	seedSavedPlan(t, db, 2, plan.FormInput{JobTitle: "Designer", CompanyName: "Globex", OutputLanguage: plan.LocaleEN})

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/plans", nil)

	h.List(c)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d", w.Code, http.StatusOK)
	}
	var listResp struct {
		Plans []savedPlanResponse `json:"plans"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listResp.Plans) != 1 {
		t.Fatalf("len(plans) = %d, want 1", len(listResp.Plans))
	}
	if listResp.Plans[0].PlanID != composed.ID {
		t.Errorf("plan id = %q, want %q", listResp.Plans[0].PlanID, composed.ID)
	}
}

func TestGetRejectsForeignPlan(t *testing.T) {
	h, db, _ := newPlanTestHandler(t)
	rec := seedSavedPlan(t, db, 2, plan.FormInput{JobTitle: "Engineer", CompanyName: "Acme", OutputLanguage: plan.LocaleEN})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/plans/"+rec.PlanID, nil)
	c.Params = gin.Params{{Key: "id", Value: rec.PlanID}}

	h.Get(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteRemovesExportObject(t *testing.T) {
	h, db, store := newPlanTestHandler(t)
	rec := seedSavedPlan(t, db, 1, plan.FormInput{JobTitle: "Engineer", CompanyName: "Acme", OutputLanguage: plan.LocaleEN})
	if err := db.Model(rec).Update("export_key", "plan-exports/1/abc.txt").Error; err != nil {
		t.Fatalf("set export key: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = httptest.NewRequest(http.MethodDelete, "/v1/plans/"+rec.PlanID, nil)
	c.Params = gin.Params{{Key: "id", Value: rec.PlanID}}

	h.Delete(c)
	// Invoking the handler directly bypasses gin's engine, which is what
	// normally flushes a body-less status to the recorder.
	c.Writer.WriteHeaderNow()
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "plan-exports/1/abc.txt" {
		t.Errorf("deleted objects = %v, want the export key", store.deleted)
	}
	var count int64
	db.Model(&database.SavedPlan{}).Where("plan_id = ?", rec.PlanID).Count(&count)
	if count != 0 {
		t.Errorf("saved plan still present after delete")
	}
}

func TestGetExportLink(t *testing.T) {
	h, db, _ := newPlanTestHandler(t)
	rec := seedSavedPlan(t, db, 1, plan.FormInput{JobTitle: "Engineer", CompanyName: "Acme", OutputLanguage: plan.LocaleEN})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/plans/"+rec.PlanID+"/export-link", nil)
	c.Params = gin.Params{{Key: "id", Value: rec.PlanID}}

	h.GetExportLink(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status without export = %d, want %d", w.Code, http.StatusNotFound)
	}

	if err := db.Model(rec).Update("export_key", "plan-exports/1/abc.txt").Error; err != nil {
		t.Fatalf("set export key: %v", err)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/plans/"+rec.PlanID+"/export-link", nil)
	c.Params = gin.Params{{Key: "id", Value: rec.PlanID}}

	h.GetExportLink(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status with export = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "example.invalid/plan-exports/1/abc.txt") {
		t.Errorf("body missing presigned url: %s", w.Body.String())
	}
}

func TestUnlockPremiumRequiresPaidRecord(t *testing.T) {
	h, db, _ := newPlanTestHandler(t)
	rec := seedSavedPlan(t, db, 1, plan.FormInput{JobTitle: "Engineer", CompanyName: "Acme", OutputLanguage: plan.LocaleEN})

	unlock := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("userID", uint(1))
		c.Request = httptest.NewRequest(http.MethodPost, "/v1/plans/"+rec.PlanID+"/premium", nil)
		c.Params = gin.Params{{Key: "id", Value: rec.PlanID}}
		h.UnlockPremium(c)
		return w
	}

	if w := unlock(); w.Code != http.StatusPaymentRequired {
		t.Fatalf("status without payment = %d, want %d", w.Code, http.StatusPaymentRequired)
	}

	pay := database.PaymentRecord{
		SessionID: "cs_test_123",
		PlanID:    rec.PlanID,
		UserID:    1,
		Amount:    1990,
		Currency:  "brl",
		Status:    database.PaymentStatusPaid,
	}
	if err := db.Create(&pay).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	if w := unlock(); w.Code != http.StatusOK {
		t.Fatalf("status with paid record = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var updated database.SavedPlan
	if err := db.Where("plan_id = ?", rec.PlanID).First(&updated).Error; err != nil {
		t.Fatalf("reload plan: %v", err)
	}
	if !updated.PremiumUnlocked {
		t.Fatal("premium_unlocked not persisted")
	}
	var content plan.InterviewPlan
	if err := json.Unmarshal(updated.Content, &content); err != nil {
		t.Fatalf("decode stored content: %v", err)
	}
	if content.Premium == nil {
		t.Fatal("stored content missing premium sections")
	}

	// A second unlock is a no-op success.
	if w := unlock(); w.Code != http.StatusOK {
		t.Fatalf("repeat unlock status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestUnlockPremiumIgnoresPendingPayment(t *testing.T) {
	h, db, _ := newPlanTestHandler(t)
	rec := seedSavedPlan(t, db, 1, plan.FormInput{JobTitle: "Engineer", CompanyName: "Acme", OutputLanguage: plan.LocaleEN})

	pay := database.PaymentRecord{
		SessionID: "cs_test_pending",
		PlanID:    rec.PlanID,
		UserID:    1,
		Amount:    1990,
		Currency:  "brl",
		Status:    database.PaymentStatusPending,
	}
	if err := db.Create(&pay).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/plans/"+rec.PlanID+"/premium", nil)
	c.Params = gin.Params{{Key: "id", Value: rec.PlanID}}

	h.UnlockPremium(c)
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusPaymentRequired)
	}
}
