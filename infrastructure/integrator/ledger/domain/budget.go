package domain

// BudgetLineItemPayload é o formato de um item de orçamento na API do ledger
type BudgetLineItemPayload struct {
	ID         string  `json:"id"`
	CampaignID string  `json:"campaign_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	CreatedAt  string  `json:"created_at"`
}

// AmountPayload é a resposta das consultas de valor disponível e gasto liquidado
type AmountPayload struct {
	LineItemID string  `json:"line_item_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	AsOf       string  `json:"as_of"`
}

// ExchangeRatePayload é a resposta da consulta de taxa de câmbio
type ExchangeRatePayload struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}
