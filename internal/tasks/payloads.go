package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants shared by the queue producer and consumer.
const (
	TypePlanExport = "plan:export"
)

// PlanExportPayload carries the minimum needed to render and upload one
// saved plan. IncludePremium is only honored when the plan actually has
// premium content unlocked.
type PlanExportPayload struct {
	SavedPlanID    uint   `json:"saved_plan_id"`
	UserID         uint   `json:"user_id"`
	IncludePremium bool   `json:"include_premium"`
	CorrelationID  string `json:"correlation_id"`
}

// NewPlanExportTask builds a new plan export task.
func NewPlanExportTask(savedPlanID, userID uint, includePremium bool, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PlanExportPayload{
		SavedPlanID:    savedPlanID,
		UserID:         userID,
		IncludePremium: includePremium,
		CorrelationID:  correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePlanExport, payload), nil
}
