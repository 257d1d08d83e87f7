package domain

import "time"

// RealtimeSample é uma observação de gasto por (grupo de anúncios, fonte, data).
// Série temporal somente-adição: nunca sobrescrita nem removida; o valor
// corrente de uma chave é sempre a linha com recorded_at mais recente.
type RealtimeSample struct {
	ID         int64     `json:"id"`
	CampaignID string    `json:"campaign_id"`
	AdGroupID  string    `json:"ad_group_id"`
	SourceID   string    `json:"source_id"`
	Date       time.Time `json:"date"`
	SpendLocal float64   `json:"spend_local"`
	RecordedAt time.Time `json:"recorded_at"`
}

// CampaignAggregate é o agregado diário de gasto por campanha, derivado
// das amostras mais recentes de cada entidade. Também somente-adição.
type CampaignAggregate struct {
	ID         int64     `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Date       time.Time `json:"date"`
	SpendLocal float64   `json:"spend_local"`
	RecordedAt time.Time `json:"recorded_at"`
}
