package domain

import "time"

// BudgetLineItem é um item de orçamento do ledger (dado externo, somente leitura aqui).
// Amount está na moeda da conta.
type BudgetLineItem struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActiveOn indica se o item de orçamento está vigente na data informada
func (b *BudgetLineItem) ActiveOn(date time.Time) bool {
	return !date.Before(b.StartDate) && !date.After(b.EndDate)
}

// EndedBefore indica se o item de orçamento já terminou antes da data informada
func (b *BudgetLineItem) EndedBefore(date time.Time) bool {
	return b.EndDate.Before(date)
}
