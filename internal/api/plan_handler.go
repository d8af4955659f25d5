package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"prepplan/internal/api/middleware"
	"prepplan/internal/database"
	"prepplan/internal/metrics"
	"prepplan/internal/plan"
	"prepplan/internal/storage"
	"prepplan/internal/tasks"
)

// exportStore is the slice of the object store the plan handler needs.
type exportStore interface {
	PresignedURL(ctx context.Context, objectKey string, ttl time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// PlanHandler serves plan generation, persistence and export endpoints.
// Generation itself is pure; everything stateful lives behind db, queue
// and store.
type PlanHandler struct {
	db         *gorm.DB
	queue      *asynq.Client
	store      exportStore
	presignTTL time.Duration
	logger     *slog.Logger
}

// NewPlanHandler builds the handler.
func NewPlanHandler(db *gorm.DB, queue *asynq.Client, store exportStore, presignTTL time.Duration, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{
		db:         db,
		queue:      queue,
		store:      store,
		presignTTL: presignTTL,
		logger:     logger,
	}
}

// Generate composes a plan from a form submission. It is a public
// endpoint: the result is returned, not stored, and no account is
// required.
func (h *PlanHandler) Generate(c *gin.Context) {
	var in plan.FormInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, err.Error())
		return
	}

	logger := h.loggerFromContext(c)

	p, err := plan.Compose(in)
	if err != nil {
		if errors.Is(err, plan.ErrMissingJobTitle) || errors.Is(err, plan.ErrMissingCompanyName) {
			BadRequest(c, err.Error())
			return
		}
		metrics.PlanGenerationFailed()
		logger.Error("plan generation failed", slog.Any("error", err))
		Internal(c, "plan generation failed")
		return
	}

	metrics.PlanGenerated(string(p.Locale), string(plan.Classify(in.JobTitle, in.JobLevel)))
	logger.Info("plan generated",
		slog.String("plan_id", p.ID),
		slog.String("locale", string(p.Locale)))
	c.JSON(http.StatusOK, p)
}

type savePlanRequest struct {
	Input plan.FormInput     `json:"input" binding:"required"`
	Plan  plan.InterviewPlan `json:"plan" binding:"required"`
}

type savedPlanResponse struct {
	ID              uint      `json:"id"`
	PlanID          string    `json:"plan_id"`
	JobTitle        string    `json:"job_title"`
	CompanyName     string    `json:"company_name"`
	Locale          string    `json:"locale"`
	PremiumUnlocked bool      `json:"premium_unlocked"`
	CreatedAt       time.Time `json:"created_at"`
}

func toSavedPlanResponse(rec *database.SavedPlan) savedPlanResponse {
	return savedPlanResponse{
		ID:              rec.ID,
		PlanID:          rec.PlanID,
		JobTitle:        rec.JobTitle,
		CompanyName:     rec.CompanyName,
		Locale:          rec.Locale,
		PremiumUnlocked: rec.PremiumUnlocked,
		CreatedAt:       rec.CreatedAt,
	}
}

// Save persists a generated plan under the authenticated account. The
// original input is stored alongside the content so premium material can
// be composed later from the same form.
func (h *PlanHandler) Save(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	var req savePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Plan.ID == "" {
		BadRequest(c, "plan id is required")
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c).With(slog.String("plan_id", req.Plan.ID))

	inputJSON, err := json.Marshal(req.Input)
	if err != nil {
		logger.Error("marshal plan input failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}
	contentJSON, err := json.Marshal(req.Plan)
	if err != nil {
		logger.Error("marshal plan content failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	rec := database.SavedPlan{
		PlanID:          req.Plan.ID,
		JobTitle:        req.Plan.JobTitle,
		CompanyName:     req.Plan.CompanyName,
		Locale:          string(req.Plan.Locale),
		Input:           datatypes.JSON(inputJSON),
		Content:         datatypes.JSON(contentJSON),
		RawText:         req.Plan.RawText,
		PremiumUnlocked: false,
		UserID:          userID,
	}

	if err := h.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate") {
			Conflict(c, "plan already saved")
			return
		}
		logger.Error("save plan failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	logger.Info("plan saved", slog.Uint64("saved_plan_id", uint64(rec.ID)))
	c.JSON(http.StatusCreated, toSavedPlanResponse(&rec))
}

// List returns the caller's saved plans, newest first.
func (h *PlanHandler) List(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	var recs []database.SavedPlan
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		h.loggerFromContext(c).Error("list plans failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	out := make([]savedPlanResponse, 0, len(recs))
	for i := range recs {
		out = append(out, toSavedPlanResponse(&recs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"plans": out})
}

// Get returns one saved plan, full content included.
func (h *PlanHandler) Get(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	rec, ok := h.findOwnedPlan(c, userID)
	if !ok {
		return
	}

	var content plan.InterviewPlan
	if err := json.Unmarshal(rec.Content, &content); err != nil {
		h.loggerFromContext(c).Error("decode stored plan failed",
			slog.String("plan_id", rec.PlanID), slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":             content,
		"premium_unlocked": rec.PremiumUnlocked,
		"raw_text":         rec.RawText,
		"created_at":       rec.CreatedAt,
	})
}

// Delete removes a saved plan and its export object, if any.
func (h *PlanHandler) Delete(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	rec, ok := h.findOwnedPlan(c, userID)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c).With(slog.String("plan_id", rec.PlanID))

	if rec.ExportKey != "" && h.store != nil {
		if err := h.store.DeleteObject(ctx, rec.ExportKey); err != nil {
			// The row still goes away; the orphan object is harmless.
			logger.Warn("delete export object failed", slog.Any("error", err))
		}
	}

	if err := h.db.WithContext(ctx).Delete(&database.SavedPlan{}, rec.ID).Error; err != nil {
		logger.Error("delete plan failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	logger.Info("plan deleted")
	c.Status(http.StatusNoContent)
}

// Export queues a background render-and-upload of the plan's text. The
// caller polls GetExportLink for the result.
func (h *PlanHandler) Export(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	rec, ok := h.findOwnedPlan(c, userID)
	if !ok {
		return
	}

	logger := h.loggerFromContext(c).With(slog.String("plan_id", rec.PlanID))

	task, err := tasks.NewPlanExportTask(rec.ID, userID, rec.PremiumUnlocked, middleware.GetCorrelationID(c))
	if err != nil {
		logger.Error("build export task failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	info, err := h.queue.EnqueueContext(c.Request.Context(), task)
	if err != nil {
		logger.Error("enqueue export task failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	logger.Info("plan export queued", slog.String("task_id", info.ID))
	c.JSON(http.StatusAccepted, gin.H{"task_id": info.ID})
}

// GetExportLink returns a presigned download URL for the last export.
func (h *PlanHandler) GetExportLink(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	rec, ok := h.findOwnedPlan(c, userID)
	if !ok {
		return
	}

	if rec.ExportKey == "" {
		NotFound(c, "no export available")
		return
	}

	url, err := h.store.PresignedURL(c.Request.Context(), rec.ExportKey, h.presignTTL)
	if err != nil {
		if storage.IsNoSuchKey(err) {
			NotFound(c, "no export available")
			return
		}
		h.loggerFromContext(c).Error("presign export failed",
			slog.String("plan_id", rec.PlanID), slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "expires_in": int(h.presignTTL.Seconds())})
}

// UnlockPremium composes and attaches premium content to a saved plan.
// It only proceeds when a paid payment record exists for this plan and
// user; success URLs and client-side flags are never trusted. Unlocking
// an already unlocked plan is a no-op success.
func (h *PlanHandler) UnlockPremium(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	rec, ok := h.findOwnedPlan(c, userID)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c).With(slog.String("plan_id", rec.PlanID))

	if rec.PremiumUnlocked {
		c.JSON(http.StatusOK, gin.H{"premium_unlocked": true})
		return
	}

	var pay database.PaymentRecord
	err := h.db.WithContext(ctx).
		Where("plan_id = ? AND user_id = ? AND status = ?", rec.PlanID, userID, database.PaymentStatusPaid).
		First(&pay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info("premium unlock refused: no paid record")
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment required"})
			return
		}
		logger.Error("payment lookup failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	var in plan.FormInput
	if err := json.Unmarshal(rec.Input, &in); err != nil {
		logger.Error("decode stored input failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}
	var base plan.InterviewPlan
	if err := json.Unmarshal(rec.Content, &base); err != nil {
		logger.Error("decode stored plan failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	premium, err := plan.ComposePremium(in, &base)
	if err != nil {
		logger.Error("premium generation failed", slog.Any("error", err))
		Internal(c, "premium generation failed")
		return
	}

	unlocked := base.WithPremium(premium)
	contentJSON, err := json.Marshal(unlocked)
	if err != nil {
		logger.Error("marshal unlocked plan failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	updates := map[string]any{
		"content":          datatypes.JSON(contentJSON),
		"premium_unlocked": true,
	}
	if err := h.db.WithContext(ctx).Model(&database.SavedPlan{}).
		Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
		logger.Error("persist unlocked plan failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	metrics.PremiumUnlocked()
	logger.Info("premium unlocked")
	c.JSON(http.StatusOK, gin.H{"premium_unlocked": true, "plan": unlocked})
}

// findOwnedPlan loads the plan in the :id path param and checks it
// belongs to userID. It writes the error response itself on failure.
func (h *PlanHandler) findOwnedPlan(c *gin.Context, userID uint) (*database.SavedPlan, bool) {
	planID := c.Param("id")
	if planID == "" {
		BadRequest(c, "plan id is required")
		return nil, false
	}

	var rec database.SavedPlan
	err := h.db.WithContext(c.Request.Context()).
		Where("plan_id = ? AND user_id = ?", planID, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "plan not found")
			return nil, false
		}
		h.loggerFromContext(c).Error("load plan failed",
			slog.String("plan_id", planID), slog.Any("error", err))
		Internal(c, "internal error")
		return nil, false
	}
	return &rec, true
}

func (h *PlanHandler) loggerFromContext(c *gin.Context) *slog.Logger {
	if logger := middleware.LoggerFromContext(c); logger != nil {
		return logger
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}
