package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"prepplan/internal/database"
	"prepplan/internal/errcode"
	"prepplan/internal/plan"
	"prepplan/internal/storage"
	"prepplan/internal/tasks"
)

// ExportTaskHandler consumes plan export tasks: render the saved plan to
// text, upload it, record the object key and notify the owner.
type ExportTaskHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient redis.UniversalClient
	logger      *slog.Logger
}

// NewExportTaskHandler builds the handler.
func NewExportTaskHandler(db *gorm.DB, storageClient *storage.Client, redisClient redis.UniversalClient, logger *slog.Logger) *ExportTaskHandler {
	return &ExportTaskHandler{
		db:          db,
		storage:     storageClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ProcessTask implements asynq.Handler.
func (h *ExportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.PlanExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Int("saved_plan_id", int(payload.SavedPlanID)),
	)
	log.Info("starting plan export task")

	var rec database.SavedPlan
	if err := h.db.WithContext(ctx).First(&rec, payload.SavedPlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("saved plan not found, skipping task")
			return nil
		}
		log.Error("query saved plan failed", slog.Any("error", err))
		return err
	}
	if rec.UserID != payload.UserID {
		log.Warn("saved plan owner mismatch, skipping task",
			slog.Uint64("owner_id", uint64(rec.UserID)),
			slog.Uint64("requested_by", uint64(payload.UserID)))
		return nil
	}

	log = log.With(slog.Uint64("user_id", uint64(rec.UserID)))

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		notify := PlanExportNotifyMessage{
			Status:        "error",
			SavedPlanID:   rec.ID,
			PlanID:        rec.PlanID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishExportNotify(ctx, rec.UserID, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	text, err := renderSavedPlan(&rec, payload.IncludePremium)
	if err != nil {
		log.Error("render saved plan failed", slog.Any("error", err))
		return err
	}

	objectKey := fmt.Sprintf("plan-exports/%d/%s.txt", rec.UserID, uuid.NewString())
	reader := strings.NewReader(text)
	if _, err := h.storage.UploadObject(ctx, objectKey, reader, int64(len(text)), "text/plain; charset=utf-8"); err != nil {
		log.Error("upload plan export failed", slog.Any("error", err))
		return err
	}

	if err := h.db.WithContext(ctx).Model(&rec).Update("export_key", objectKey).Error; err != nil {
		log.Error("update saved plan failed", slog.Any("error", err))
		return err
	}

	notify := PlanExportNotifyMessage{
		Status:        "completed",
		SavedPlanID:   rec.ID,
		PlanID:        rec.PlanID,
		ExportKey:     objectKey,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if err := h.publishExportNotify(ctx, rec.UserID, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("plan export task completed", slog.String("object_key", objectKey))
	return nil
}

// renderSavedPlan flattens the stored structured content back to text.
// Premium material only appears if the plan was actually unlocked; the
// request flag alone is not enough.
func renderSavedPlan(rec *database.SavedPlan, includePremium bool) (string, error) {
	var content plan.InterviewPlan
	if err := json.Unmarshal(rec.Content, &content); err != nil {
		return "", fmt.Errorf("decode stored plan content: %w", err)
	}
	return plan.RenderText(&content, includePremium && rec.PremiumUnlocked), nil
}

func (h *ExportTaskHandler) publishExportNotify(ctx context.Context, userID uint, notify PlanExportNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("user_notify:%d", userID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
