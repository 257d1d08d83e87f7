package domain

import "time"

// AuditEventKind identifica a rotina que gerou a entrada de auditoria
type AuditEventKind string

const (
	AuditBudgetDepletionCheck      AuditEventKind = "BUDGET_DEPLETION_CHECK"
	AuditSelectionCheck            AuditEventKind = "SELECTION_CHECK"
	AuditMaxAllowedEndDateUpdate   AuditEventKind = "MAX_ALLOWED_END_DATE_UPDATE"
	AuditMinAllowedStartDateUpdate AuditEventKind = "MIN_ALLOWED_START_DATE_UPDATE"
	AuditBudgetAmountValidation    AuditEventKind = "BUDGET_AMOUNT_VALIDATION"
	AuditSimpleCampaignStop        AuditEventKind = "SIMPLE_CAMPAIGN_STOP"
)

// AuditEntry é uma entrada imutável da trilha de decisão de uma avaliação
type AuditEntry struct {
	ID         int64          `json:"id"`
	CampaignID string         `json:"campaign_id"`
	EventKind  AuditEventKind `json:"event_kind"`
	Context    map[string]any `json:"context"`
	RecordedAt time.Time      `json:"recorded_at"`
}
