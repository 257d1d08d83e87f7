package rundates

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	ledgermocks "github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger/mocks"
	notifiermocks "github.com/vfg2006/campaign-stop-service/infrastructure/integrator/notifier/mocks"
	repomocks "github.com/vfg2006/campaign-stop-service/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	estimatingmocks "github.com/vfg2006/campaign-stop-service/internal/usecases/estimating/mocks"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/stopping"
	"go.uber.org/mock/gomock"
)

// fakeTxRunner executa a função diretamente, sem transação real
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func testConfig() config.CampaignStop {
	return config.CampaignStop{
		BaseThresholdLocal:     100,
		RestartFactor:          1.5,
		MinStartThresholdLocal: 100,
		CriticalHourStart:      2,
		CriticalHourEnd:        7,
	}
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:                  "CMP001",
		Currency:            "BRL",
		RealTimeStopEnabled: true,
		UTCOffsetHours:      0,
		CreatedAt:           time.Date(2024, 4, 1, 15, 30, 0, 0, time.UTC),
	}
}

func day(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

func TestService_RefreshMaxAllowedEndDate(t *testing.T) {
	tests := []struct {
		name          string
		items         []*domain.BudgetLineItem
		current       *time.Time
		expectMax     time.Time
		expectChanged bool
	}{
		{
			name: "Cobertura contígua estende até o fim do último item encadeado",
			items: []*domain.BudgetLineItem{
				// Devolvidos fora de ordem de propósito
				{ID: "LI002", StartDate: day(time.May, 10), EndDate: day(time.June, 1)},
				{ID: "LI001", StartDate: day(time.April, 1), EndDate: day(time.May, 15)},
				// Início futuro, mas ainda dentro do máximo corrente: estende
				{ID: "LI003", StartDate: day(time.May, 20), EndDate: day(time.June, 30)},
			},
			current:       nil,
			expectMax:     day(time.June, 30),
			expectChanged: true,
		},
		{
			name: "Item futuro além do máximo corrente abre buraco e interrompe a varredura",
			items: []*domain.BudgetLineItem{
				{ID: "LI001", StartDate: day(time.April, 1), EndDate: day(time.May, 15)},
				{ID: "LI002", StartDate: day(time.May, 20), EndDate: day(time.June, 30)},
			},
			current:       nil,
			expectMax:     day(time.May, 15),
			expectChanged: true,
		},
		{
			name:          "Sem itens a data recua para a véspera da criação da campanha",
			items:         nil,
			current:       nil,
			expectMax:     day(time.March, 31),
			expectChanged: true,
		},
		{
			name: "Data já registrada não persiste nem notifica de novo",
			items: []*domain.BudgetLineItem{
				{ID: "LI001", StartDate: day(time.April, 1), EndDate: day(time.May, 15)},
			},
			current:       timePtr(day(time.May, 15)),
			expectMax:     day(time.May, 15),
			expectChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)
			mockStates := repomocks.NewMockCampaignStopStateRepository(ctrl)
			mockAudit := repomocks.NewMockAuditLogRepository(ctrl)
			mockNotifier := notifiermocks.NewMockNotifierIntegrator(ctrl)
			mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)

			campaign := testCampaign()
			today := day(time.May, 10)

			state := &domain.CampaignStopState{
				CampaignID:        "CMP001",
				State:             domain.RunStateActive,
				MaxAllowedEndDate: tt.current,
			}

			mockLedger.EXPECT().GetBudgetLineItems("CMP001", today).Return(tt.items, nil)
			mockStates.EXPECT().GetOrCreate(gomock.Any(), "CMP001").Return(state, nil)

			if tt.expectChanged {
				mockStates.EXPECT().Update(gomock.Any(), gomock.Any(), state).Return(nil)
				mockAudit.EXPECT().
					Append(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, entry *domain.AuditEntry) error {
						assert.Equal(t, domain.AuditMaxAllowedEndDateUpdate, entry.EventKind)
						assert.Equal(t, tt.expectMax.Format(time.DateOnly), entry.Context["current"])
						return nil
					})
				mockNotifier.EXPECT().
					NotifyStateChange("CMP001", domain.ChangeKindMaxEndDate, false).
					Return(nil)
			}

			manager := stopping.NewStateManager(nil, mockStates, mockNotifier).WithClock(testClock)
			service := NewService(testConfig(), fakeTxRunner{}, mockLedger, mockEstimator, mockAudit, manager).
				WithClock(testClock)

			err := service.RefreshMaxAllowedEndDate(context.Background(), campaign)

			assert.NoError(t, err)
			assert.NotNil(t, state.MaxAllowedEndDate)
			assert.Equal(t, tt.expectMax, *state.MaxAllowedEndDate)
		})
	}
}

func TestService_RefreshMinAllowedStartDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)
	mockStates := repomocks.NewMockCampaignStopStateRepository(ctrl)
	mockAudit := repomocks.NewMockAuditLogRepository(ctrl)
	mockNotifier := notifiermocks.NewMockNotifierIntegrator(ctrl)
	mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)

	campaign := testCampaign()
	today := day(time.May, 10)

	// LI000 já terminou e sai do cálculo. Na data de início de LI001 o
	// restante é 100-80=20, abaixo do limiar; na de LI002 os dois itens
	// vigentes somam 20+200=220 e liberam o início.
	mockLedger.EXPECT().
		GetBudgetLineItems("CMP001", today).
		Return([]*domain.BudgetLineItem{
			{ID: "LI000", StartDate: day(time.March, 1), EndDate: day(time.April, 30), Amount: 500},
			{ID: "LI002", StartDate: day(time.May, 15), EndDate: day(time.June, 15), Amount: 200},
			{ID: "LI001", StartDate: day(time.May, 1), EndDate: day(time.May, 31), Amount: 100},
		}, nil)

	mockEstimator.EXPECT().
		EstimateLineItemSpend(gomock.Any(), campaign).
		Return(map[string]float64{"LI001": 80}, nil)

	mockLedger.EXPECT().GetExchangeRate("BRL").Return(1.0, nil)

	state := &domain.CampaignStopState{CampaignID: "CMP001", State: domain.RunStateActive}
	mockStates.EXPECT().GetOrCreate(gomock.Any(), "CMP001").Return(state, nil)
	mockStates.EXPECT().Update(gomock.Any(), gomock.Any(), state).Return(nil)

	mockAudit.EXPECT().
		Append(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, entry *domain.AuditEntry) error {
			assert.Equal(t, domain.AuditMinAllowedStartDateUpdate, entry.EventKind)
			assert.Equal(t, "2024-05-15", entry.Context["current"])
			return nil
		})

	mockNotifier.EXPECT().
		NotifyStateChange("CMP001", domain.ChangeKindMinStartDate, false).
		Return(nil)

	manager := stopping.NewStateManager(nil, mockStates, mockNotifier).WithClock(testClock)
	service := NewService(testConfig(), fakeTxRunner{}, mockLedger, mockEstimator, mockAudit, manager).
		WithClock(testClock)

	err := service.RefreshMinAllowedStartDate(context.Background(), campaign)

	assert.NoError(t, err)
	assert.NotNil(t, state.MinAllowedStartDate)
	assert.Equal(t, day(time.May, 15), *state.MinAllowedStartDate)
}

func TestService_RefreshMinAllowedStartDate_SemCandidata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)
	mockStates := repomocks.NewMockCampaignStopStateRepository(ctrl)
	mockAudit := repomocks.NewMockAuditLogRepository(ctrl)
	mockNotifier := notifiermocks.NewMockNotifierIntegrator(ctrl)
	mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)

	campaign := testCampaign()
	today := day(time.May, 10)

	mockLedger.EXPECT().
		GetBudgetLineItems("CMP001", today).
		Return([]*domain.BudgetLineItem{
			{ID: "LI001", StartDate: day(time.May, 1), EndDate: day(time.May, 31), Amount: 100},
		}, nil)

	mockEstimator.EXPECT().
		EstimateLineItemSpend(gomock.Any(), campaign).
		Return(map[string]float64{"LI001": 90}, nil)

	mockLedger.EXPECT().GetExchangeRate("BRL").Return(1.0, nil)

	// A data registrada volta para nula e isso também é uma mudança
	previous := day(time.May, 1)
	state := &domain.CampaignStopState{
		CampaignID:          "CMP001",
		State:               domain.RunStateActive,
		MinAllowedStartDate: &previous,
	}
	mockStates.EXPECT().GetOrCreate(gomock.Any(), "CMP001").Return(state, nil)
	mockStates.EXPECT().Update(gomock.Any(), gomock.Any(), state).Return(nil)

	mockAudit.EXPECT().
		Append(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, entry *domain.AuditEntry) error {
			assert.Equal(t, "2024-05-01", entry.Context["previous"])
			assert.Nil(t, entry.Context["current"])
			return nil
		})

	mockNotifier.EXPECT().
		NotifyStateChange("CMP001", domain.ChangeKindMinStartDate, false).
		Return(nil)

	manager := stopping.NewStateManager(nil, mockStates, mockNotifier).WithClock(testClock)
	service := NewService(testConfig(), fakeTxRunner{}, mockLedger, mockEstimator, mockAudit, manager).
		WithClock(testClock)

	err := service.RefreshMinAllowedStartDate(context.Background(), campaign)

	assert.NoError(t, err)
	assert.Nil(t, state.MinAllowedStartDate)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
