package estimating

import (
	"context"
	"time"

	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

// BudgetEstimator transforma séries temporais de gasto e orçamento do ledger
// em estimativas usadas pelas rotinas de parada de campanha
type BudgetEstimator interface {
	// PredictRemainingBudget calcula o orçamento restante previsto da campanha
	PredictRemainingBudget(ctx context.Context, campaign *domain.Campaign) (*BudgetPrediction, error)

	// EstimateLineItemSpend aloca o gasto em tempo real ainda não liquidado
	// entre os itens de orçamento vigentes, sem dupla alocação
	EstimateLineItemSpend(ctx context.Context, campaign *domain.Campaign) (map[string]float64, error)

	// AvailableBudget soma o valor disponível (até untilDate) dos itens de
	// orçamento vigentes hoje, convertido para moeda local
	AvailableBudget(ctx context.Context, campaign *domain.Campaign, untilDate time.Time) (float64, error)
}
