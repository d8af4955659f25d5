package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"prepplan/internal/api/middleware"
	"prepplan/internal/config"
	"prepplan/internal/database"
	"prepplan/internal/payment"
)

// PaymentHandler drives the premium checkout flow. The handler creates
// pending payment records and flips them on verified webhook events;
// nothing here grants premium directly, that stays with UnlockPremium.
type PaymentHandler struct {
	db      *gorm.DB
	gateway payment.Gateway
	cfg     config.PaymentConfig
	logger  *slog.Logger
}

// NewPaymentHandler builds the handler.
func NewPaymentHandler(db *gorm.DB, gateway payment.Gateway, cfg config.PaymentConfig, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{db: db, gateway: gateway, cfg: cfg, logger: logger}
}

type checkoutRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// Checkout opens a hosted payment session for one saved plan and returns
// the redirect URL. Plans already unlocked are rejected up front.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c).With(slog.String("plan_id", req.PlanID))

	var rec database.SavedPlan
	err := h.db.WithContext(ctx).
		Where("plan_id = ? AND user_id = ?", req.PlanID, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "plan not found")
			return
		}
		logger.Error("load plan failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}
	if rec.PremiumUnlocked {
		Conflict(c, "premium already unlocked")
		return
	}

	session, err := h.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		Amount:      h.cfg.PremiumAmount,
		Currency:    h.cfg.Currency,
		ProductName: fmt.Sprintf("Premium interview plan: %s @ %s", rec.JobTitle, rec.CompanyName),
		SuccessURL:  h.resultURL(h.cfg.SuccessURL, "premium_success", req.PlanID),
		CancelURL:   h.resultURL(h.cfg.CancelURL, "premium_cancel", req.PlanID),
		Metadata: map[string]string{
			"plan_id": req.PlanID,
			"user_id": fmt.Sprintf("%d", userID),
		},
	})
	if err != nil {
		logger.Error("create checkout session failed", slog.Any("error", err))
		Internal(c, "checkout unavailable")
		return
	}

	pay := database.PaymentRecord{
		SessionID: session.ID,
		PlanID:    req.PlanID,
		UserID:    userID,
		Amount:    h.cfg.PremiumAmount,
		Currency:  h.cfg.Currency,
		Status:    database.PaymentStatusPending,
	}
	if err := h.db.WithContext(ctx).Create(&pay).Error; err != nil {
		logger.Error("create payment record failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	logger.Info("checkout session created", slog.String("session_id", session.ID))
	c.JSON(http.StatusOK, gin.H{"session_id": session.ID, "url": session.URL})
}

// Webhook receives processor notifications. The signature is verified by
// the gateway; unknown event types are acknowledged and ignored so the
// processor stops retrying them.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		BadRequest(c, "unreadable payload")
		return
	}

	logger := h.loggerFromContext(c)

	event, err := h.gateway.ParseEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		logger.Info("webhook signature rejected", slog.Any("error", err))
		BadRequest(c, "invalid signature")
		return
	}
	if event.SessionID == "" {
		c.Status(http.StatusOK)
		return
	}

	var status string
	switch event.Type {
	case payment.EventCheckoutCompleted:
		status = database.PaymentStatusPaid
	case payment.EventCheckoutExpired:
		status = database.PaymentStatusCanceled
	default:
		c.Status(http.StatusOK)
		return
	}

	ctx := c.Request.Context()
	res := h.db.WithContext(ctx).Model(&database.PaymentRecord{}).
		Where("session_id = ? AND status = ?", event.SessionID, database.PaymentStatusPending).
		Update("status", status)
	if res.Error != nil {
		logger.Error("update payment record failed",
			slog.String("session_id", event.SessionID), slog.Any("error", res.Error))
		Internal(c, "internal error")
		return
	}
	if res.RowsAffected == 0 {
		// Replayed event or unknown session; ack so the processor
		// does not keep retrying.
		logger.Info("webhook ignored", slog.String("session_id", event.SessionID),
			slog.String("type", event.Type))
		c.Status(http.StatusOK)
		return
	}

	logger.Info("payment record updated",
		slog.String("session_id", event.SessionID), slog.String("status", status))
	c.Status(http.StatusOK)
}

// resultURL appends the outcome flag and plan id onto a configured
// redirect target. The flags are purely informational for the frontend.
func (h *PaymentHandler) resultURL(base, flag, planID string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set(flag, "true")
	q.Set("plan_id", planID)
	u.RawQuery = q.Encode()
	return u.String()
}

func (h *PaymentHandler) loggerFromContext(c *gin.Context) *slog.Logger {
	if logger := middleware.LoggerFromContext(c); logger != nil {
		return logger
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}
