package estimating

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

// BudgetPrediction carrega os valores intermediários e o resultado da
// previsão de orçamento restante (tudo em moeda local)
type BudgetPrediction struct {
	UntilDate          time.Time
	AvailableBudget    float64
	RealtimeSpend      float64
	Remaining          float64
	SpendRate          float64
	PredictedIncrease  float64
	PredictedRemaining float64
}

type Service struct {
	cfg       config.CampaignStop
	ledger    ledger.LedgerIntegrator
	spendRepo repository.RealtimeSpendRepository
	now       func() time.Time
}

func NewService(
	cfg config.CampaignStop,
	ledgerService ledger.LedgerIntegrator,
	spendRepo repository.RealtimeSpendRepository,
) *Service {
	return &Service{
		cfg:       cfg,
		ledger:    ledgerService,
		spendRepo: spendRepo,
		now:       time.Now,
	}
}

// WithClock substitui a fonte de tempo (usado em testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) PredictRemainingBudget(ctx context.Context, campaign *domain.Campaign) (*BudgetPrediction, error) {
	now := s.now()
	today := campaign.LocalDate(now)

	untilDate, err := s.ledgerCutoffDate(ctx, campaign, now)
	if err != nil {
		return nil, err
	}

	availableBudget, err := s.AvailableBudget(ctx, campaign, untilDate)
	if err != nil {
		return nil, err
	}

	realtimeSpend, err := s.realtimeSpendSince(ctx, campaign.ID, untilDate.AddDate(0, 0, 1), today)
	if err != nil {
		return nil, err
	}

	remaining := availableBudget - realtimeSpend

	spendRate, err := s.spendRate(ctx, campaign.ID, today, now)
	if err != nil {
		return nil, err
	}

	predictedIncrease := spendRate * float64(s.cfg.CheckFrequencySeconds)

	prediction := &BudgetPrediction{
		UntilDate:          untilDate,
		AvailableBudget:    availableBudget,
		RealtimeSpend:      realtimeSpend,
		Remaining:          remaining,
		SpendRate:          spendRate,
		PredictedIncrease:  predictedIncrease,
		PredictedRemaining: remaining - predictedIncrease,
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":         campaign.ID,
		"until_date":          untilDate.Format(time.DateOnly),
		"available_budget":    availableBudget,
		"realtime_spend":      realtimeSpend,
		"predicted_remaining": prediction.PredictedRemaining,
	}).Debug("estimating: previsão de orçamento restante calculada")

	return prediction, nil
}

// ledgerCutoffDate decide até que data os números do ledger são confiáveis.
// Em horas críticas os dados de ontem ainda não são definitivos; se já existe
// um agregado em tempo real para ontem, o corte recua um dia e o número em
// tempo real cobre ontem, evitando dupla contagem.
func (s *Service) ledgerCutoffDate(ctx context.Context, campaign *domain.Campaign, now time.Time) (time.Time, error) {
	today := campaign.LocalDate(now)
	yesterday := today.AddDate(0, 0, -1)

	if !s.cfg.InCriticalHours(now) {
		return yesterday, nil
	}

	aggregate, err := s.spendRepo.LatestAggregate(ctx, campaign.ID, yesterday)
	if err != nil {
		return time.Time{}, fmt.Errorf("erro ao buscar agregado de ontem: %w", err)
	}

	if aggregate == nil {
		return yesterday, nil
	}

	return yesterday.AddDate(0, 0, -1), nil
}

func (s *Service) AvailableBudget(ctx context.Context, campaign *domain.Campaign, untilDate time.Time) (float64, error) {
	now := s.now()
	today := campaign.LocalDate(now)

	items, err := s.ledger.GetActiveBudgetLineItems(campaign.ID, today)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		available, err := s.ledger.GetAvailableAmount(item.ID, untilDate)
		if err != nil {
			return 0, err
		}
		if available > 0 {
			total += available
		}
	}

	rate, err := s.ledger.GetExchangeRate(campaign.Currency)
	if err != nil {
		return 0, err
	}

	return total * rate, nil
}

func (s *Service) realtimeSpendSince(ctx context.Context, campaignID string, startDate, endDate time.Time) (float64, error) {
	if startDate.After(endDate) {
		return 0, nil
	}

	aggregates, err := s.spendRepo.LatestAggregatesByDate(ctx, campaignID, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar agregados de gasto: %w", err)
	}

	var total float64
	for _, aggregate := range aggregates {
		total += aggregate.SpendLocal
	}

	return total, nil
}

// spendRate extrapola a taxa de gasto por segundo a partir das duas amostras
// mais recentes de hoje. Amostras a menos de MinSampleGapSeconds uma da outra
// são descartadas como ruidosas demais.
func (s *Service) spendRate(ctx context.Context, campaignID string, today time.Time, now time.Time) (float64, error) {
	aggregates, err := s.spendRepo.FreshestAggregates(ctx, campaignID, today, 2)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar agregados de hoje: %w", err)
	}

	if len(aggregates) == 0 {
		return 0, nil
	}

	maxAge := time.Duration(s.cfg.SampleMaxAgeSeconds) * time.Second
	if age := now.Sub(aggregates[0].RecordedAt); age > maxAge {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"sample_age":  age.String(),
		}).Warn("estimating: agregado mais recente de hoje está velho, prosseguindo com o melhor dado disponível")
	}

	if len(aggregates) < 2 {
		return 0, nil
	}

	current, previous := aggregates[0], aggregates[1]

	elapsed := current.RecordedAt.Sub(previous.RecordedAt).Seconds()
	if elapsed < float64(s.cfg.MinSampleGapSeconds) {
		return 0, nil
	}

	rate := (current.SpendLocal - previous.SpendLocal) / elapsed
	if rate < 0 {
		return 0, nil
	}

	return rate, nil
}

func (s *Service) EstimateLineItemSpend(ctx context.Context, campaign *domain.Campaign) (map[string]float64, error) {
	now := s.now()
	today := campaign.LocalDate(now)

	untilDate, err := s.ledgerCutoffDate(ctx, campaign, now)
	if err != nil {
		return nil, err
	}

	items, err := s.ledger.GetActiveBudgetLineItems(campaign.ID, today)
	if err != nil {
		return nil, err
	}

	rate, err := s.ledger.GetExchangeRate(campaign.Currency)
	if err != nil {
		return nil, err
	}

	// O gasto em tempo real ainda não liquidado é um pool único: cada item o
	// absorve até sua capacidade, do mais antigo para o mais novo, garantindo
	// que o mesmo gasto nunca seja alocado duas vezes
	pool, err := s.realtimeSpendSince(ctx, campaign.ID, untilDate.AddDate(0, 0, 1), today)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	estimates := make(map[string]float64, len(items))
	for _, item := range items {
		settled, err := s.ledger.GetSettledSpend(item.ID, untilDate)
		if err != nil {
			return nil, err
		}
		settledLocal := settled * rate

		capacity := item.Amount*rate - settledLocal
		if capacity < 0 {
			capacity = 0
		}

		allocation := capacity
		if pool < allocation {
			allocation = pool
		}
		pool -= allocation

		estimates[item.ID] = settledLocal + allocation
	}

	return estimates, nil
}
