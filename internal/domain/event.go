package domain

import "time"

// EventKind é o tipo fechado de evento de atualização recebido na fila
type EventKind string

const (
	EventKindBudget            EventKind = "BUDGET"
	EventKindDailyCap          EventKind = "DAILY_CAP"
	EventKindInitialization    EventKind = "INITIALIZATION"
	EventKindCampaignStopState EventKind = "CAMPAIGNSTOP_STATE"
)

// Valid indica se o tipo de evento é conhecido
func (k EventKind) Valid() bool {
	switch k {
	case EventKindBudget, EventKindDailyCap, EventKindInitialization, EventKindCampaignStopState:
		return true
	}
	return false
}

// UpdateEvent é uma mensagem pendente da fila de atualização
type UpdateEvent struct {
	ID         int64     `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Kind       EventKind `json:"kind"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
