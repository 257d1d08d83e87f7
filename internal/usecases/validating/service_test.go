package validating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	ledgermocks "github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger/mocks"
	repomocks "github.com/vfg2006/campaign-stop-service/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	estimatingmocks "github.com/vfg2006/campaign-stop-service/internal/usecases/estimating/mocks"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:                  "CMP001",
		Currency:            "BRL",
		RealTimeStopEnabled: true,
	}
}

func TestService_ValidateBudgetAmount(t *testing.T) {
	tests := []struct {
		name           string
		proposedAmount float64
		estimate       float64
		rate           float64
		expectMin      float64
		expectAccepted bool
	}{
		{
			name:           "Valor acima do gasto estimado é aceito",
			proposedAmount: 100,
			estimate:       250,
			rate:           5,
			expectMin:      50,
			expectAccepted: true,
		},
		{
			name:           "Valor abaixo do gasto estimado é vetado com o mínimo aceito",
			proposedAmount: 40,
			estimate:       250,
			rate:           5,
			expectMin:      50,
			expectAccepted: false,
		},
		{
			name:           "Mínimo é arredondado em duas casas na moeda da conta",
			proposedAmount: 30,
			estimate:       100,
			rate:           3,
			expectMin:      33.33,
			expectAccepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCampaigns := repomocks.NewMockCampaignRepository(ctrl)
			mockAudit := repomocks.NewMockAuditLogRepository(ctrl)
			mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)
			mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)

			campaign := testCampaign()

			mockCampaigns.EXPECT().GetByID(gomock.Any(), "CMP001").Return(campaign, nil)
			mockEstimator.EXPECT().
				EstimateLineItemSpend(gomock.Any(), campaign).
				Return(map[string]float64{"LI001": tt.estimate}, nil)
			mockLedger.EXPECT().GetExchangeRate("BRL").Return(tt.rate, nil)

			// A decisão é auditada mesmo quando o valor é aceito
			mockAudit.EXPECT().
				Append(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, entry *domain.AuditEntry) error {
					assert.Equal(t, domain.AuditBudgetAmountValidation, entry.EventKind)
					assert.Equal(t, tt.expectAccepted, entry.Context["accepted"])
					assert.Equal(t, tt.expectMin, entry.Context["min_amount"])
					return nil
				})

			service := NewService(nil, mockCampaigns, mockAudit, mockEstimator, mockLedger).
				WithClock(func() time.Time { return testNow })

			err := service.ValidateBudgetAmount(context.Background(), "CMP001", "LI001", tt.proposedAmount)

			if tt.expectAccepted {
				assert.NoError(t, err)
				return
			}

			var minErr *MinBudgetError
			assert.True(t, errors.As(err, &minErr))
			assert.Equal(t, "LI001", minErr.LineItemID)
			assert.Equal(t, tt.expectMin, minErr.MinAmount)
		})
	}
}

func TestService_ValidateBudgetAmount_SemParadaEmTempoReal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := repomocks.NewMockCampaignRepository(ctrl)
	mockAudit := repomocks.NewMockAuditLogRepository(ctrl)
	mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)
	mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)

	campaign := testCampaign()
	campaign.RealTimeStopEnabled = false

	// Sem estimativa em tempo real não há veto nem auditoria
	mockCampaigns.EXPECT().GetByID(gomock.Any(), "CMP001").Return(campaign, nil)

	service := NewService(nil, mockCampaigns, mockAudit, mockEstimator, mockLedger)

	err := service.ValidateBudgetAmount(context.Background(), "CMP001", "LI001", 10)

	assert.NoError(t, err)
}

func TestService_ValidateBudgetAmount_CampanhaNaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := repomocks.NewMockCampaignRepository(ctrl)
	mockAudit := repomocks.NewMockAuditLogRepository(ctrl)
	mockEstimator := estimatingmocks.NewMockBudgetEstimator(ctrl)
	mockLedger := ledgermocks.NewMockLedgerIntegrator(ctrl)

	mockCampaigns.EXPECT().GetByID(gomock.Any(), "CMP404").Return(nil, nil)

	service := NewService(nil, mockCampaigns, mockAudit, mockEstimator, mockLedger)

	err := service.ValidateBudgetAmount(context.Background(), "CMP404", "LI001", 10)

	assert.True(t, errors.Is(err, ErrCampaignNotFound))
}
