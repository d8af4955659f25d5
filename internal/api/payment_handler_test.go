package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"prepplan/internal/config"
	"prepplan/internal/database"
	"prepplan/internal/payment"
	"prepplan/internal/plan"
)

type fakeGateway struct {
	lastRequest payment.CheckoutRequest
	session     payment.CheckoutSession
	event       payment.Event
	parseErr    error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, req payment.CheckoutRequest) (payment.CheckoutSession, error) {
	g.lastRequest = req
	return g.session, nil
}

func (g *fakeGateway) ParseEvent(_ []byte, _ string) (payment.Event, error) {
	if g.parseErr != nil {
		return payment.Event{}, g.parseErr
	}
	return g.event, nil
}

func paymentTestConfig() config.PaymentConfig {
	return config.PaymentConfig{
		PremiumAmount: 1990,
		Currency:      "brl",
		SuccessURL:    "https://app.example.com/plans",
		CancelURL:     "https://app.example.com/plans",
	}
}

func TestCheckoutCreatesPendingRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	rec := seedSavedPlan(t, db, 1, plan.FormInput{JobTitle: "Engineer", CompanyName: "Acme", OutputLanguage: plan.LocaleEN})

	gw := &fakeGateway{session: payment.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example/cs_test_1"}}
	h := NewPaymentHandler(db, gw, paymentTestConfig(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = jsonRequest(t, http.MethodPost, "/v1/payments/checkout", checkoutRequest{PlanID: rec.PlanID})

	h.Checkout(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	if gw.lastRequest.Metadata["plan_id"] != rec.PlanID {
		t.Errorf("metadata plan_id = %q, want %q", gw.lastRequest.Metadata["plan_id"], rec.PlanID)
	}
	if gw.lastRequest.Amount != 1990 || gw.lastRequest.Currency != "brl" {
		t.Errorf("amount/currency = %d/%s, want 1990/brl", gw.lastRequest.Amount, gw.lastRequest.Currency)
	}

	var pay database.PaymentRecord
	if err := db.Where("session_id = ?", "cs_test_1").First(&pay).Error; err != nil {
		t.Fatalf("load payment record: %v", err)
	}
	if pay.Status != database.PaymentStatusPending {
		t.Errorf("status = %q, want pending", pay.Status)
	}
	if pay.PlanID != rec.PlanID || pay.UserID != 1 {
		t.Errorf("record plan/user = %q/%d, want %q/1", pay.PlanID, pay.UserID, rec.PlanID)
	}
}

func TestCheckoutRejectsUnlockedPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	rec := seedSavedPlan(t, db, 1, plan.FormInput{JobTitle: "Engineer", CompanyName: "Acme", OutputLanguage: plan.LocaleEN})
	if err := db.Model(rec).Update("premium_unlocked", true).Error; err != nil {
		t.Fatalf("mark unlocked: %v", err)
	}

	h := NewPaymentHandler(db, &fakeGateway{}, paymentTestConfig(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = jsonRequest(t, http.MethodPost, "/v1/payments/checkout", checkoutRequest{PlanID: rec.PlanID})

	h.Checkout(c)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestWebhookMarksRecordPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	if err := db.Create(&database.PaymentRecord{
		SessionID: "cs_test_hook",
		PlanID:    "plan_1_abc",
		UserID:    1,
		Status:    database.PaymentStatusPending,
	}).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	gw := &fakeGateway{event: payment.Event{Type: payment.EventCheckoutCompleted, SessionID: "cs_test_hook"}}
	h := NewPaymentHandler(db, gw, paymentTestConfig(), nil)

	webhook := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewReader([]byte("{}")))
		h.Webhook(c)
		return w
	}

	if w := webhook(); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var pay database.PaymentRecord
	if err := db.Where("session_id = ?", "cs_test_hook").First(&pay).Error; err != nil {
		t.Fatalf("load payment record: %v", err)
	}
	if pay.Status != database.PaymentStatusPaid {
		t.Errorf("status = %q, want paid", pay.Status)
	}

	// Replaying the event must not flip an already settled record.
	if w := webhook(); w.Code != http.StatusOK {
		t.Fatalf("replay status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	gw := &fakeGateway{parseErr: errors.New("signature mismatch")}
	h := NewPaymentHandler(db, gw, paymentTestConfig(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewReader([]byte("{}")))

	h.Webhook(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestWebhookExpiredCancelsRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	if err := db.Create(&database.PaymentRecord{
		SessionID: "cs_test_exp",
		Status:    database.PaymentStatusPending,
	}).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	gw := &fakeGateway{event: payment.Event{Type: payment.EventCheckoutExpired, SessionID: "cs_test_exp"}}
	h := NewPaymentHandler(db, gw, paymentTestConfig(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewReader([]byte("{}")))

	h.Webhook(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var pay database.PaymentRecord
	if err := db.Where("session_id = ?", "cs_test_exp").First(&pay).Error; err != nil {
		t.Fatalf("load payment record: %v", err)
	}
	if pay.Status != database.PaymentStatusCanceled {
		t.Errorf("status = %q, want canceled", pay.Status)
	}
}
