package domain

import "time"

// Campaign é a campanha de anúncios (dado externo, somente leitura aqui)
type Campaign struct {
	ID                  string    `json:"id"`
	AccountID           string    `json:"account_id"`
	Name                string    `json:"name"`
	Currency            string    `json:"currency"`
	RealTimeStopEnabled bool      `json:"real_time_stop_enabled"`
	UTCOffsetHours      int       `json:"utc_offset_hours"`
	CreatedAt           time.Time `json:"created_at"`
}

// LocalDate retorna a data corrente na fronteira de dia configurada da campanha
func (c *Campaign) LocalDate(now time.Time) time.Time {
	shifted := now.UTC().Add(time.Duration(c.UTCOffsetHours) * time.Hour)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// AdGroupSource é uma entidade de veiculação (grupo de anúncios x fonte de mídia)
// sob uma campanha. Dado externo, somente leitura aqui.
type AdGroupSource struct {
	AdGroupID          string  `json:"ad_group_id"`
	SourceID           string  `json:"source_id"`
	CampaignID         string  `json:"campaign_id"`
	DailyCapLocal      float64 `json:"daily_cap_local"`
	BudgetGroupID      string  `json:"budget_group_id"`
	GroupDailyCapLocal float64 `json:"group_daily_cap_local"`
	Archived           bool    `json:"archived"`
	Active             bool    `json:"active"`
	UTCOffsetHours     int     `json:"utc_offset_hours"`
}

// LocalDate retorna a data corrente na fronteira de dia local da fonte de mídia
func (a *AdGroupSource) LocalDate(now time.Time) time.Time {
	shifted := now.UTC().Add(time.Duration(a.UTCOffsetHours) * time.Hour)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// Grouped indica se a entidade pertence a um agrupamento de teto compartilhado
func (a *AdGroupSource) Grouped() bool {
	return a.BudgetGroupID != ""
}
