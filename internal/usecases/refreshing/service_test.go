package refreshing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/telemetry"
	telemetrymocks "github.com/vfg2006/campaign-stop-service/infrastructure/integrator/telemetry/mocks"
	repomocks "github.com/vfg2006/campaign-stop-service/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func testConfig() config.CampaignStop {
	return config.CampaignStop{
		AggregateStalenessSeconds: 300,
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

func TestService_RefreshCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTelemetry := telemetrymocks.NewMockTelemetryIntegrator(ctrl)
	mockCampaigns := repomocks.NewMockCampaignRepository(ctrl)
	mockSpendRepo := repomocks.NewMockRealtimeSpendRepository(ctrl)

	campaign := testCampaign()
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	mockCampaigns.EXPECT().
		ListAdGroupSources(gomock.Any(), "CMP001").
		Return([]*domain.AdGroupSource{
			{AdGroupID: "ag1", SourceID: "meio_a", UTCOffsetHours: 0},
			{AdGroupID: "ag2", SourceID: "meio_b", UTCOffsetHours: 0},
			// Fuso bem atrás do UTC: a entidade ainda está no dia anterior
			{AdGroupID: "ag3", SourceID: "meio_c", UTCOffsetHours: -13},
		}, nil)

	mockTelemetry.EXPECT().
		FetchSpend("ag1", "meio_a").
		Return(&telemetry.SpendObservation{
			AdGroupID:  "ag1",
			SourceID:   "meio_a",
			SpendLocal: 30,
			Date:       today,
		}, nil)

	// Uma entidade indisponível não derruba a coleta das demais
	mockTelemetry.EXPECT().
		FetchSpend("ag2", "meio_b").
		Return(nil, errors.New("erro ao consultar gasto"))

	mockTelemetry.EXPECT().
		FetchSpend("ag3", "meio_c").
		Return(&telemetry.SpendObservation{
			AdGroupID:  "ag3",
			SourceID:   "meio_c",
			SpendLocal: 12,
			Date:       yesterday,
		}, nil)

	mockSpendRepo.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	mockSpendRepo.EXPECT().
		LatestSamples(gomock.Any(), "CMP001", today).
		Return([]*domain.RealtimeSample{
			{AdGroupID: "ag1", SourceID: "meio_a", SpendLocal: 30},
		}, nil)
	mockSpendRepo.EXPECT().
		AppendAggregate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, aggregate *domain.CampaignAggregate) error {
			assert.Equal(t, today, aggregate.Date)
			assert.Equal(t, 30.0, aggregate.SpendLocal)
			assert.Equal(t, testNow, aggregate.RecordedAt)
			return nil
		})

	// A entidade atrasada força o recálculo do agregado de ontem
	mockSpendRepo.EXPECT().
		LatestSamples(gomock.Any(), "CMP001", yesterday).
		Return([]*domain.RealtimeSample{
			{AdGroupID: "ag3", SourceID: "meio_c", SpendLocal: 12},
		}, nil)
	mockSpendRepo.EXPECT().
		AppendAggregate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, aggregate *domain.CampaignAggregate) error {
			assert.Equal(t, yesterday, aggregate.Date)
			assert.Equal(t, 12.0, aggregate.SpendLocal)
			return nil
		})

	service := NewService(testConfig(), mockTelemetry, mockCampaigns, mockSpendRepo).
		WithClock(testClock)

	err := service.RefreshCampaign(context.Background(), campaign)

	assert.NoError(t, err)
}

func TestService_RefreshIfStale(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Agregado recente dispensa a coleta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTelemetry := telemetrymocks.NewMockTelemetryIntegrator(ctrl)
		mockCampaigns := repomocks.NewMockCampaignRepository(ctrl)
		mockSpendRepo := repomocks.NewMockRealtimeSpendRepository(ctrl)

		mockSpendRepo.EXPECT().
			LatestAggregate(gomock.Any(), "CMP001", today).
			Return(&domain.CampaignAggregate{
				CampaignID: "CMP001",
				Date:       today,
				RecordedAt: testNow.Add(-time.Minute),
			}, nil)

		service := NewService(testConfig(), mockTelemetry, mockCampaigns, mockSpendRepo).
			WithClock(testClock)

		err := service.RefreshIfStale(context.Background(), testCampaign())

		assert.NoError(t, err)
	})

	t.Run("Agregado velho força a coleta completa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTelemetry := telemetrymocks.NewMockTelemetryIntegrator(ctrl)
		mockCampaigns := repomocks.NewMockCampaignRepository(ctrl)
		mockSpendRepo := repomocks.NewMockRealtimeSpendRepository(ctrl)

		mockSpendRepo.EXPECT().
			LatestAggregate(gomock.Any(), "CMP001", today).
			Return(&domain.CampaignAggregate{
				CampaignID: "CMP001",
				Date:       today,
				RecordedAt: testNow.Add(-time.Hour),
			}, nil)

		mockCampaigns.EXPECT().ListAdGroupSources(gomock.Any(), "CMP001").Return(nil, nil)
		mockSpendRepo.EXPECT().LatestSamples(gomock.Any(), "CMP001", today).Return(nil, nil)
		mockSpendRepo.EXPECT().
			AppendAggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, aggregate *domain.CampaignAggregate) error {
				assert.Equal(t, 0.0, aggregate.SpendLocal)
				return nil
			})

		service := NewService(testConfig(), mockTelemetry, mockCampaigns, mockSpendRepo).
			WithClock(testClock)

		err := service.RefreshIfStale(context.Background(), testCampaign())

		assert.NoError(t, err)
	})
}
