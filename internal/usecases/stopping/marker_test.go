package stopping

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	notifiermocks "github.com/vfg2006/campaign-stop-service/infrastructure/integrator/notifier/mocks"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	estimatingmocks "github.com/vfg2006/campaign-stop-service/internal/usecases/estimating/mocks"
	refreshingmocks "github.com/vfg2006/campaign-stop-service/internal/usecases/refreshing/mocks"
	"go.uber.org/mock/gomock"
)

func TestMarker_projectWorstCaseSpend(t *testing.T) {
	marker := &Marker{}

	sources := []*domain.AdGroupSource{
		// Inativa sem agrupamento: só o gasto observado
		{AdGroupID: "ag1", SourceID: "src", Active: false},
		// Ativa com teto acima do observado: vale o teto
		{AdGroupID: "ag2", SourceID: "src", Active: true, DailyCapLocal: 100},
		// Ativa que já estourou o teto: vale o observado
		{AdGroupID: "ag3", SourceID: "src", Active: true, DailyCapLocal: 20},
		// Agrupamento com entidade ativa: o teto do grupo conta uma única vez
		{AdGroupID: "ag4", SourceID: "src", Active: true, BudgetGroupID: "g1", GroupDailyCapLocal: 200},
		{AdGroupID: "ag5", SourceID: "src", Active: false, BudgetGroupID: "g1", GroupDailyCapLocal: 200},
		// Agrupamento todo inativo: só o observado
		{AdGroupID: "ag6", SourceID: "src", Active: false, BudgetGroupID: "g2", GroupDailyCapLocal: 100},
	}

	observed := map[string]float64{
		"ag1/src": 30,
		"ag2/src": 40,
		"ag3/src": 50,
		"ag4/src": 120,
		"ag5/src": 30,
		"ag6/src": 10,
	}

	maxSpend := marker.projectWorstCaseSpend(sources, observed)

	// 30 + 100 + 50 + 200 + 10
	assert.InDelta(t, 390.0, maxSpend, 0.0001)
}

func TestMarker_MarkCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStates := mocks.NewMockCampaignStopStateRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	mockSpendRepo := mocks.NewMockRealtimeSpendRepository(ctrl)
	mockAudit := mocks.NewMockAuditLogRepository(ctrl)
	mockNotifier := notifiermocks.NewMockNotifierIntegrator(ctrl)
	mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)
	mockRefresher := refreshingmocks.NewMockTelemetryRefresher(ctrl)

	campaign := testCampaign()
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	state := &domain.CampaignStopState{CampaignID: "CMP001", State: domain.RunStateActive}

	mockStates.EXPECT().GetOrCreate(gomock.Any(), "CMP001").Return(state, nil)
	mockRefresher.EXPECT().RefreshIfStale(gomock.Any(), campaign).Return(nil)

	mockSpendRepo.EXPECT().
		LatestSamples(gomock.Any(), "CMP001", today).
		Return([]*domain.RealtimeSample{
			{AdGroupID: "ag1", SourceID: "src", SpendLocal: 40},
		}, nil)

	mockCampaigns.EXPECT().
		ListAdGroupSources(gomock.Any(), "CMP001").
		Return([]*domain.AdGroupSource{
			{AdGroupID: "ag1", SourceID: "src", Active: true, DailyCapLocal: 80},
		}, nil)

	// 100 disponível - 80 de pior caso = 20, abaixo do limiar de 50
	mockEstimator.EXPECT().
		AvailableBudget(gomock.Any(), campaign, yesterday).
		Return(100.0, nil)

	mockStates.EXPECT().Update(gomock.Any(), gomock.Any(), state).Return(nil)

	mockAudit.EXPECT().
		Append(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, entry *domain.AuditEntry) error {
			assert.Equal(t, domain.AuditSelectionCheck, entry.EventKind)
			assert.Equal(t, true, entry.Context["almost_depleted"])
			return nil
		})

	mockNotifier.EXPECT().SendDepletionAlert("CMP001").Return(nil)

	manager := NewStateManager(nil, mockStates, mockNotifier).WithClock(testClock)
	marker := NewMarker(
		testConfig(),
		fakeTxRunner{},
		mockCampaigns,
		mockSpendRepo,
		mockAudit,
		mockEstimator,
		mockRefresher,
		manager,
	).WithClock(testClock)

	err := marker.MarkCampaign(context.Background(), campaign)

	assert.NoError(t, err)
	assert.True(t, state.AlmostDepleted)
	assert.NotNil(t, state.AlmostDepletedMarkedAt)
}

func TestMarker_MarkCampaign_CampanhaParadaNuncaMarca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStates := mocks.NewMockCampaignStopStateRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	mockSpendRepo := mocks.NewMockRealtimeSpendRepository(ctrl)
	mockAudit := mocks.NewMockAuditLogRepository(ctrl)
	mockNotifier := notifiermocks.NewMockNotifierIntegrator(ctrl)
	mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)
	mockRefresher := refreshingmocks.NewMockTelemetryRefresher(ctrl)

	campaign := testCampaign()
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	state := &domain.CampaignStopState{CampaignID: "CMP001", State: domain.RunStateStopped}

	mockStates.EXPECT().GetOrCreate(gomock.Any(), "CMP001").Return(state, nil)
	mockRefresher.EXPECT().RefreshIfStale(gomock.Any(), campaign).Return(nil)
	mockSpendRepo.EXPECT().LatestSamples(gomock.Any(), "CMP001", today).Return(nil, nil)
	mockCampaigns.EXPECT().
		ListAdGroupSources(gomock.Any(), "CMP001").
		Return([]*domain.AdGroupSource{
			{AdGroupID: "ag1", SourceID: "src", Active: true, DailyCapLocal: 500},
		}, nil)
	mockEstimator.EXPECT().
		AvailableBudget(gomock.Any(), campaign, yesterday).
		Return(100.0, nil)

	// Campanha parada não é candidata: nada é persistido nem alertado

	manager := NewStateManager(nil, mockStates, mockNotifier).WithClock(testClock)
	marker := NewMarker(
		testConfig(),
		fakeTxRunner{},
		mockCampaigns,
		mockSpendRepo,
		mockAudit,
		mockEstimator,
		mockRefresher,
		manager,
	).WithClock(testClock)

	err := marker.MarkCampaign(context.Background(), campaign)

	assert.NoError(t, err)
	assert.False(t, state.AlmostDepleted)
}
