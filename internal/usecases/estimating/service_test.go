package estimating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	ledgermocks "github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger/mocks"
	repomocks "github.com/vfg2006/campaign-stop-service/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() config.CampaignStop {
	return config.CampaignStop{
		BaseThresholdLocal:    100,
		RestartFactor:         1.5,
		CriticalHourStart:     2,
		CriticalHourEnd:       7,
		MinSampleGapSeconds:   60,
		CheckFrequencySeconds: 300,
		SampleMaxAgeSeconds:   900,
	}
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:                  "CMP001",
		Currency:            "BRL",
		RealTimeStopEnabled: true,
		UTCOffsetHours:      0,
	}
}

func TestService_PredictRemainingBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)
	mockSpendRepo := repomocks.NewMockRealtimeSpendRepository(ctrl)

	// Meio-dia: fora da janela de horas críticas
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	campaign := testCampaign()

	service := NewService(testConfig(), mockLedger, mockSpendRepo).
		WithClock(func() time.Time { return now })

	// Orçamento disponível: dois itens, um com saldo negativo que é ignorado
	mockLedger.EXPECT().
		GetActiveBudgetLineItems("CMP001", today).
		Return([]*domain.BudgetLineItem{
			{ID: "LI001"},
			{ID: "LI002"},
		}, nil)
	mockLedger.EXPECT().GetAvailableAmount("LI001", yesterday).Return(100.0, nil)
	mockLedger.EXPECT().GetAvailableAmount("LI002", yesterday).Return(-5.0, nil)
	mockLedger.EXPECT().GetExchangeRate("BRL").Return(5.0, nil)

	// Gasto em tempo real de hoje (corte do ledger foi ontem)
	mockSpendRepo.EXPECT().
		LatestAggregatesByDate(gomock.Any(), "CMP001", today, today).
		Return([]*domain.CampaignAggregate{
			{CampaignID: "CMP001", Date: today, SpendLocal: 120.0},
		}, nil)

	// Taxa de gasto: 60 de diferença em 600 segundos = 0.1/s
	mockSpendRepo.EXPECT().
		FreshestAggregates(gomock.Any(), "CMP001", today, 2).
		Return([]*domain.CampaignAggregate{
			{SpendLocal: 120.0, RecordedAt: now.Add(-5 * time.Minute)},
			{SpendLocal: 60.0, RecordedAt: now.Add(-15 * time.Minute)},
		}, nil)

	prediction, err := service.PredictRemainingBudget(context.Background(), campaign)

	assert.NoError(t, err)
	assert.Equal(t, yesterday, prediction.UntilDate)
	assert.Equal(t, 500.0, prediction.AvailableBudget)
	assert.Equal(t, 120.0, prediction.RealtimeSpend)
	assert.Equal(t, 380.0, prediction.Remaining)
	assert.InDelta(t, 0.1, prediction.SpendRate, 0.0001)
	assert.InDelta(t, 30.0, prediction.PredictedIncrease, 0.0001)
	assert.InDelta(t, 350.0, prediction.PredictedRemaining, 0.0001)
}

func TestService_PredictRemainingBudget_CriticalHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)
	mockSpendRepo := repomocks.NewMockRealtimeSpendRepository(ctrl)

	// 3h da manhã: dentro da janela de horas críticas
	now := time.Date(2024, 5, 10, 3, 0, 0, 0, time.UTC)
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	dayBefore := yesterday.AddDate(0, 0, -1)

	campaign := testCampaign()

	service := NewService(testConfig(), mockLedger, mockSpendRepo).
		WithClock(func() time.Time { return now })

	// Já existe agregado de ontem: o corte do ledger recua um dia
	mockSpendRepo.EXPECT().
		LatestAggregate(gomock.Any(), "CMP001", yesterday).
		Return(&domain.CampaignAggregate{Date: yesterday, SpendLocal: 80.0}, nil)

	mockLedger.EXPECT().
		GetActiveBudgetLineItems("CMP001", today).
		Return([]*domain.BudgetLineItem{{ID: "LI001"}}, nil)
	mockLedger.EXPECT().GetAvailableAmount("LI001", dayBefore).Return(200.0, nil)
	mockLedger.EXPECT().GetExchangeRate("BRL").Return(1.0, nil)

	// O gasto em tempo real agora cobre ontem e hoje
	mockSpendRepo.EXPECT().
		LatestAggregatesByDate(gomock.Any(), "CMP001", yesterday, today).
		Return([]*domain.CampaignAggregate{
			{Date: yesterday, SpendLocal: 80.0},
			{Date: today, SpendLocal: 20.0},
		}, nil)

	mockSpendRepo.EXPECT().
		FreshestAggregates(gomock.Any(), "CMP001", today, 2).
		Return(nil, nil)

	prediction, err := service.PredictRemainingBudget(context.Background(), campaign)

	assert.NoError(t, err)
	assert.Equal(t, dayBefore, prediction.UntilDate)
	assert.Equal(t, 100.0, prediction.RealtimeSpend)
	assert.Equal(t, 100.0, prediction.Remaining)
	assert.Equal(t, 0.0, prediction.SpendRate)
}

func TestService_spendRate(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		aggregates []*domain.CampaignAggregate
		expected   float64
	}{
		{
			name:       "Sem agregados a taxa é zero",
			aggregates: nil,
			expected:   0,
		},
		{
			name: "Um único agregado não permite extrapolar",
			aggregates: []*domain.CampaignAggregate{
				{SpendLocal: 50.0, RecordedAt: now.Add(-time.Minute)},
			},
			expected: 0,
		},
		{
			name: "Amostras próximas demais são descartadas como ruído",
			aggregates: []*domain.CampaignAggregate{
				{SpendLocal: 52.0, RecordedAt: now.Add(-time.Minute)},
				{SpendLocal: 50.0, RecordedAt: now.Add(-90 * time.Second)},
			},
			expected: 0,
		},
		{
			name: "Diferença negativa vira taxa zero",
			aggregates: []*domain.CampaignAggregate{
				{SpendLocal: 40.0, RecordedAt: now.Add(-time.Minute)},
				{SpendLocal: 50.0, RecordedAt: now.Add(-11 * time.Minute)},
			},
			expected: 0,
		},
		{
			name: "Duas amostras válidas extrapolam a taxa por segundo",
			aggregates: []*domain.CampaignAggregate{
				{SpendLocal: 110.0, RecordedAt: now.Add(-time.Minute)},
				{SpendLocal: 50.0, RecordedAt: now.Add(-11 * time.Minute)},
			},
			expected: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)
			mockSpendRepo := repomocks.NewMockRealtimeSpendRepository(ctrl)

			mockSpendRepo.EXPECT().
				FreshestAggregates(gomock.Any(), "CMP001", today, 2).
				Return(tt.aggregates, nil)

			service := NewService(testConfig(), mockLedger, mockSpendRepo).
				WithClock(func() time.Time { return now })

			rate, err := service.spendRate(context.Background(), "CMP001", today, now)

			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, rate, 0.0001)
		})
	}
}

func TestService_EstimateLineItemSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)
	mockSpendRepo := repomocks.NewMockRealtimeSpendRepository(ctrl)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	campaign := testCampaign()

	service := NewService(testConfig(), mockLedger, mockSpendRepo).
		WithClock(func() time.Time { return now })

	older := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	// Devolvidos fora de ordem de criação de propósito
	mockLedger.EXPECT().
		GetActiveBudgetLineItems("CMP001", today).
		Return([]*domain.BudgetLineItem{
			{ID: "LI002", Amount: 50.0, CreatedAt: newer},
			{ID: "LI001", Amount: 100.0, CreatedAt: older},
		}, nil)
	mockLedger.EXPECT().GetExchangeRate("BRL").Return(1.0, nil)

	// Pool de gasto em tempo real ainda não liquidado: 90
	mockSpendRepo.EXPECT().
		LatestAggregatesByDate(gomock.Any(), "CMP001", today, today).
		Return([]*domain.CampaignAggregate{{SpendLocal: 90.0}}, nil)

	mockLedger.EXPECT().GetSettledSpend("LI001", yesterday).Return(20.0, nil)
	mockLedger.EXPECT().GetSettledSpend("LI002", yesterday).Return(0.0, nil)

	estimates, err := service.EstimateLineItemSpend(context.Background(), campaign)

	assert.NoError(t, err)

	// O item mais antigo absorve o pool até sua capacidade (100-20=80);
	// o restante (10) vai para o próximo. Nada é alocado duas vezes.
	assert.InDelta(t, 100.0, estimates["LI001"], 0.0001)
	assert.InDelta(t, 10.0, estimates["LI002"], 0.0001)

	var total float64
	for _, estimate := range estimates {
		total += estimate
	}
	assert.InDelta(t, 20.0+90.0, total, 0.0001)
}
