package stopping

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	notifiermocks "github.com/vfg2006/campaign-stop-service/infrastructure/integrator/notifier/mocks"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/estimating"
	estimatingmocks "github.com/vfg2006/campaign-stop-service/internal/usecases/estimating/mocks"
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
		BaseThresholdLocal:           100,
		RestartFactor:                1.5,
		AlmostDepletedThresholdLocal: 50,
		CriticalHourStart:            2,
		CriticalHourEnd:              7,
		CheckFrequencySeconds:        300,
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

func TestService_EvaluateCampaign(t *testing.T) {
	yesterday := time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		state          *domain.CampaignStopState
		predicted      float64
		expectState    domain.RunState
		expectNotify   bool
		expectDepleted bool
	}{
		{
			name:         "Campanha ativa acima do limiar permanece ativa",
			state:        &domain.CampaignStopState{CampaignID: "CMP001", State: domain.RunStateActive},
			predicted:    150,
			expectState:  domain.RunStateActive,
			expectNotify: false,
		},
		{
			name:         "Campanha ativa abaixo do limiar é parada",
			state:        &domain.CampaignStopState{CampaignID: "CMP001", State: domain.RunStateActive},
			predicted:    50,
			expectState:  domain.RunStateStopped,
			expectNotify: true,
		},
		{
			name:         "Histerese: parada entre o limiar base e o fator de reinício permanece parada",
			state:        &domain.CampaignStopState{CampaignID: "CMP001", State: domain.RunStateStopped},
			predicted:    120,
			expectState:  domain.RunStateStopped,
			expectNotify: false,
		},
		{
			name:         "Campanha parada acima do fator de reinício volta a veicular",
			state:        &domain.CampaignStopState{CampaignID: "CMP001", State: domain.RunStateStopped},
			predicted:    160,
			expectState:  domain.RunStateActive,
			expectNotify: true,
		},
		{
			name: "Data máxima de término vencida para a campanha mesmo com orçamento",
			state: &domain.CampaignStopState{
				CampaignID:        "CMP001",
				State:             domain.RunStateActive,
				MaxAllowedEndDate: &yesterday,
			},
			predicted:    1000,
			expectState:  domain.RunStateStopped,
			expectNotify: true,
		},
		{
			name: "Parada limpa o quase-esgotamento",
			state: &domain.CampaignStopState{
				CampaignID:     "CMP001",
				State:          domain.RunStateActive,
				AlmostDepleted: true,
			},
			predicted:      50,
			expectState:    domain.RunStateStopped,
			expectNotify:   true,
			expectDepleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStates := mocks.NewMockCampaignStopStateRepository(ctrl)
			mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
			mockAudit := mocks.NewMockAuditLogRepository(ctrl)
			mockNotifier := notifiermocks.NewMockNotifierIntegrator(ctrl)
			mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)

			campaign := testCampaign()

			mockStates.EXPECT().GetOrCreate(gomock.Any(), "CMP001").Return(tt.state, nil)
			mockStates.EXPECT().Update(gomock.Any(), gomock.Any(), tt.state).Return(nil)

			mockEstimator.EXPECT().
				PredictRemainingBudget(gomock.Any(), campaign).
				Return(&estimating.BudgetPrediction{
					UntilDate:          time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
					PredictedRemaining: tt.predicted,
				}, nil)

			mockAudit.EXPECT().
				Append(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, entry *domain.AuditEntry) error {
					assert.Equal(t, domain.AuditBudgetDepletionCheck, entry.EventKind)
					assert.Equal(t, "CMP001", entry.CampaignID)
					assert.Equal(t, string(tt.expectState), entry.Context["new_state"])
					return nil
				})

			if tt.expectNotify {
				mockNotifier.EXPECT().
					NotifyStateChange("CMP001", domain.ChangeKindState, true).
					Return(nil)
			}

			manager := NewStateManager(nil, mockStates, mockNotifier).WithClock(testClock)
			service := NewService(testConfig(), fakeTxRunner{}, mockCampaigns, mockAudit, mockEstimator, manager).
				WithClock(testClock)

			err := service.EvaluateCampaign(context.Background(), campaign)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectState, tt.state.State)
			assert.Equal(t, tt.expectDepleted, tt.state.AlmostDepleted)
		})
	}
}

func TestService_EvaluateCampaign_SemParadaEmTempoReal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStates := mocks.NewMockCampaignStopStateRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	mockAudit := mocks.NewMockAuditLogRepository(ctrl)
	mockNotifier := notifiermocks.NewMockNotifierIntegrator(ctrl)
	mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)

	campaign := testCampaign()
	campaign.RealTimeStopEnabled = false

	state := &domain.CampaignStopState{CampaignID: "CMP001", State: domain.RunStateStopped}

	// Sem previsão de orçamento: o estimador nunca é consultado
	mockStates.EXPECT().GetOrCreate(gomock.Any(), "CMP001").Return(state, nil)
	mockStates.EXPECT().Update(gomock.Any(), gomock.Any(), state).Return(nil)

	mockAudit.EXPECT().
		Append(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, entry *domain.AuditEntry) error {
			assert.Equal(t, domain.AuditSimpleCampaignStop, entry.EventKind)
			assert.Equal(t, false, entry.Context["end_date_gate"])
			return nil
		})

	mockNotifier.EXPECT().
		NotifyStateChange("CMP001", domain.ChangeKindState, true).
		Return(nil)

	manager := NewStateManager(nil, mockStates, mockNotifier).WithClock(testClock)
	service := NewService(testConfig(), fakeTxRunner{}, mockCampaigns, mockAudit, mockEstimator, manager).
		WithClock(testClock)

	err := service.EvaluateCampaign(context.Background(), campaign)

	assert.NoError(t, err)
	assert.Equal(t, domain.RunStateActive, state.State)
}

func TestService_GetCampaignStopStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStates := mocks.NewMockCampaignStopStateRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	mockAudit := mocks.NewMockAuditLogRepository(ctrl)
	mockNotifier := notifiermocks.NewMockNotifierIntegrator(ctrl)
	mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)

	yesterday := time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)

	// Desconhecida: resposta neutra
	mockCampaigns.EXPECT().GetByID(gomock.Any(), "CMP404").Return(nil, nil)

	// Sem a funcionalidade habilitada: resposta neutra
	disabled := testCampaign()
	disabled.ID = "CMP002"
	disabled.RealTimeStopEnabled = false
	mockCampaigns.EXPECT().GetByID(gomock.Any(), "CMP002").Return(disabled, nil)

	// Habilitada mas nunca avaliada: vale o padrão (parada)
	neverEvaluated := testCampaign()
	neverEvaluated.ID = "CMP003"
	mockCampaigns.EXPECT().GetByID(gomock.Any(), "CMP003").Return(neverEvaluated, nil)
	mockStates.EXPECT().GetByCampaignID(gomock.Any(), "CMP003").Return(nil, nil)

	// Ativa mas com a data máxima de término vencida: o portão é reavaliado ao vivo
	stale := testCampaign()
	stale.ID = "CMP004"
	mockCampaigns.EXPECT().GetByID(gomock.Any(), "CMP004").Return(stale, nil)
	mockStates.EXPECT().GetByCampaignID(gomock.Any(), "CMP004").Return(&domain.CampaignStopState{
		CampaignID:        "CMP004",
		State:             domain.RunStateActive,
		MaxAllowedEndDate: &yesterday,
	}, nil)

	manager := NewStateManager(nil, mockStates, mockNotifier).WithClock(testClock)
	service := NewService(testConfig(), fakeTxRunner{}, mockCampaigns, mockAudit, mockEstimator, manager).
		WithClock(testClock)

	responses, err := service.GetCampaignStopStates(
		context.Background(),
		[]string{"CMP404", "CMP002", "CMP003", "CMP004"},
	)

	assert.NoError(t, err)
	assert.Len(t, responses, 4)

	assert.True(t, responses["CMP404"].AllowedToRun)
	assert.True(t, responses["CMP002"].AllowedToRun)
	assert.False(t, responses["CMP003"].AllowedToRun)
	assert.False(t, responses["CMP004"].AllowedToRun)
	assert.Equal(t, &yesterday, responses["CMP004"].MaxAllowedEndDate)
}
