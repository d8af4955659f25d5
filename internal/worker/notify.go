package worker

// PlanExportNotifyMessage is the websocket message protocol forwarded to
// the frontend over redis pub/sub. Field names match what the client
// parses.
type PlanExportNotifyMessage struct {
	Status        string `json:"status"`
	SavedPlanID   uint   `json:"saved_plan_id"`
	PlanID        string `json:"plan_id"`
	ExportKey     string `json:"export_key,omitempty"`
	CorrelationID string `json:"correlation_id"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
}
