package domain

import "time"

// RunState representa o estado de veiculação de uma campanha
type RunState string

const (
	RunStateActive  RunState = "ACTIVE"
	RunStateStopped RunState = "STOPPED"
)

// CampaignStopState é o registro de controle persistido por campanha.
// Criado de forma preguiçosa na primeira avaliação e nunca removido.
type CampaignStopState struct {
	CampaignID             string     `json:"campaign_id"`
	State                  RunState   `json:"state"`
	AlmostDepleted         bool       `json:"almost_depleted"`
	MaxAllowedEndDate      *time.Time `json:"max_allowed_end_date"`
	MinAllowedStartDate    *time.Time `json:"min_allowed_start_date"`
	PendingBudgetUpdates   bool       `json:"pending_budget_updates"`
	AlmostDepletedMarkedAt *time.Time `json:"almost_depleted_marked_at"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// AllowedToRun indica se a campanha está liberada para veicular
func (s *CampaignStopState) AllowedToRun() bool {
	return s.State == RunStateActive
}

// ChangeKind identifica o tipo de mudança notificada à camada de veiculação
type ChangeKind string

const (
	ChangeKindState        ChangeKind = "state"
	ChangeKindMaxEndDate   ChangeKind = "max_allowed_end_date"
	ChangeKindMinStartDate ChangeKind = "min_allowed_start_date"
)

// CampaignStopStateResponse é a visão pública do registro de controle,
// calculada ao vivo a partir do registro armazenado
type CampaignStopStateResponse struct {
	CampaignID           string     `json:"campaign_id"`
	AllowedToRun         bool       `json:"allowed_to_run"`
	MaxAllowedEndDate    *time.Time `json:"max_allowed_end_date"`
	MinAllowedStartDate  *time.Time `json:"min_allowed_start_date"`
	AlmostDepleted       bool       `json:"almost_depleted"`
	PendingBudgetUpdates bool       `json:"pending_budget_updates"`
}
