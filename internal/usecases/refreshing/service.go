package refreshing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/telemetry"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

// TelemetryRefresher coleta o gasto corrente das entidades de veiculação e
// recalcula os agregados diários da campanha
type TelemetryRefresher interface {
	// RefreshCampaign coleta o gasto de todas as entidades da campanha e
	// recalcula o agregado de hoje (e o de ontem quando alguma entidade ainda
	// está no dia anterior pelo fuso local)
	RefreshCampaign(ctx context.Context, campaign *domain.Campaign) error

	// RefreshIfStale só coleta quando o agregado de hoje está velho demais
	RefreshIfStale(ctx context.Context, campaign *domain.Campaign) error
}

type Service struct {
	cfg       config.CampaignStop
	telemetry telemetry.TelemetryIntegrator
	campaigns repository.CampaignRepository
	spendRepo repository.RealtimeSpendRepository
	now       func() time.Time
}

func NewService(
	cfg config.CampaignStop,
	telemetryService telemetry.TelemetryIntegrator,
	campaigns repository.CampaignRepository,
	spendRepo repository.RealtimeSpendRepository,
) *Service {
	return &Service{
		cfg:       cfg,
		telemetry: telemetryService,
		campaigns: campaigns,
		spendRepo: spendRepo,
		now:       time.Now,
	}
}

// WithClock substitui a fonte de tempo (usado em testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) RefreshCampaign(ctx context.Context, campaign *domain.Campaign) error {
	now := s.now()
	today := campaign.LocalDate(now)

	sources, err := s.campaigns.ListAdGroupSources(ctx, campaign.ID)
	if err != nil {
		return err
	}

	failures := 0
	laggingDay := false
	for _, source := range sources {
		observation, err := s.telemetry.FetchSpend(source.AdGroupID, source.SourceID)
		if err != nil {
			// Uma entidade indisponível não invalida a coleta das demais
			failures++
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"ad_group_id": source.AdGroupID,
				"source_id":   source.SourceID,
			}).Error("refreshing: erro ao coletar gasto da entidade")
			continue
		}

		sample := &domain.RealtimeSample{
			CampaignID: campaign.ID,
			AdGroupID:  observation.AdGroupID,
			SourceID:   observation.SourceID,
			Date:       observation.Date,
			SpendLocal: observation.SpendLocal,
			RecordedAt: now,
		}
		if err := s.spendRepo.AppendSample(ctx, sample); err != nil {
			return err
		}

		// Entidade ainda no dia anterior pelo fuso local: o agregado de ontem
		// da campanha também precisa ser recalculado
		if source.LocalDate(now).Before(today) {
			laggingDay = true
		}
	}

	if failures > 0 {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"failures":    failures,
			"total":       len(sources),
		}).Warn("refreshing: coleta concluída com falhas")
	}

	if err := s.recomputeAggregate(ctx, campaign.ID, today, now); err != nil {
		return err
	}

	if laggingDay {
		yesterday := today.AddDate(0, 0, -1)
		if err := s.recomputeAggregate(ctx, campaign.ID, yesterday, now); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) RefreshIfStale(ctx context.Context, campaign *domain.Campaign) error {
	now := s.now()
	today := campaign.LocalDate(now)

	aggregate, err := s.spendRepo.LatestAggregate(ctx, campaign.ID, today)
	if err != nil {
		return err
	}

	staleness := time.Duration(s.cfg.AggregateStalenessSeconds) * time.Second
	if aggregate != nil && now.Sub(aggregate.RecordedAt) < staleness {
		return nil
	}

	return s.RefreshCampaign(ctx, campaign)
}

// recomputeAggregate soma a amostra mais recente de cada entidade na data e
// grava um novo agregado da campanha
func (s *Service) recomputeAggregate(ctx context.Context, campaignID string, date time.Time, now time.Time) error {
	samples, err := s.spendRepo.LatestSamples(ctx, campaignID, date)
	if err != nil {
		return err
	}

	var total float64
	for _, sample := range samples {
		total += sample.SpendLocal
	}

	return s.spendRepo.AppendAggregate(ctx, &domain.CampaignAggregate{
		CampaignID: campaignID,
		Date:       date,
		SpendLocal: total,
		RecordedAt: now,
	})
}
