package stopping

import (
	"context"
	"database/sql"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/estimating"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/refreshing"
)

// Marker marca campanhas ativas cujo pior caso de gasto de hoje, projetado
// pelos tetos diários das entidades de veiculação, pode esgotar o orçamento
// disponível ainda hoje.
type Marker struct {
	cfg       config.CampaignStop
	runner    TxRunner
	campaigns repository.CampaignRepository
	spendRepo repository.RealtimeSpendRepository
	audit     repository.AuditLogRepository
	estimator estimating.BudgetEstimator
	refresher refreshing.TelemetryRefresher
	manager   *StateManager
	now       func() time.Time
}

func NewMarker(
	cfg config.CampaignStop,
	runner TxRunner,
	campaigns repository.CampaignRepository,
	spendRepo repository.RealtimeSpendRepository,
	audit repository.AuditLogRepository,
	estimator estimating.BudgetEstimator,
	refresher refreshing.TelemetryRefresher,
	manager *StateManager,
) *Marker {
	return &Marker{
		cfg:       cfg,
		runner:    runner,
		campaigns: campaigns,
		spendRepo: spendRepo,
		audit:     audit,
		estimator: estimator,
		refresher: refresher,
		manager:   manager,
		now:       time.Now,
	}
}

// WithClock substitui a fonte de tempo (usado em testes)
func (m *Marker) WithClock(now func() time.Time) *Marker {
	m.now = now
	return m
}

// MarkCampaigns atualiza a telemetria do lote com um pool limitado de workers
// e avalia cada campanha. A ordem é embaralhada a cada execução para que
// nenhuma campanha fique sistematicamente por último quando a execução é
// interrompida.
func (m *Marker) MarkCampaigns(ctx context.Context, campaigns []*domain.Campaign) error {
	shuffled := make([]*domain.Campaign, len(campaigns))
	copy(shuffled, campaigns)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	m.refreshBatch(ctx, shuffled)

	for _, campaign := range shuffled {
		if err := m.MarkCampaign(ctx, campaign); err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).
				Error("stopping: erro ao avaliar quase-esgotamento da campanha")
		}
	}

	return nil
}

func (m *Marker) refreshBatch(ctx context.Context, campaigns []*domain.Campaign) {
	workers := m.cfg.RefreshWorkers
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for _, campaign := range campaigns {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(campaign *domain.Campaign) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := m.refresher.RefreshIfStale(ctx, campaign); err != nil {
				logrus.WithError(err).WithField("campaign_id", campaign.ID).
					Error("stopping: erro ao atualizar telemetria da campanha")
			}
		}(campaign)
	}

	wg.Wait()
}

// MarkCampaign projeta o pior caso de gasto de hoje e compara com o orçamento
// disponível. Entidades inativas contribuem só com o gasto observado;
// entidades ativas contribuem com max(teto diário, gasto observado);
// agrupamentos de teto compartilhado são pontuados uma única vez contra o
// teto do grupo.
func (m *Marker) MarkCampaign(ctx context.Context, campaign *domain.Campaign) error {
	now := m.now()
	today := campaign.LocalDate(now)

	state, err := m.manager.GetOrCreate(ctx, campaign.ID)
	if err != nil {
		return err
	}

	if err := m.refresher.RefreshIfStale(ctx, campaign); err != nil {
		return err
	}

	observed, err := m.observedSpendByEntity(ctx, campaign, today, now)
	if err != nil {
		return err
	}

	sources, err := m.campaigns.ListAdGroupSources(ctx, campaign.ID)
	if err != nil {
		return err
	}

	maxSpend := m.projectWorstCaseSpend(sources, observed)

	// Em horas críticas os números de ontem do ledger ainda não são
	// definitivos, então o corte recua um dia e o pior caso cobre os dois dias
	untilDate := today.AddDate(0, 0, -1)
	if m.cfg.InCriticalHours(now) {
		untilDate = untilDate.AddDate(0, 0, -1)
	}

	available, err := m.estimator.AvailableBudget(ctx, campaign, untilDate)
	if err != nil {
		return err
	}

	almostDepleted := state.State == domain.RunStateActive &&
		available-maxSpend < m.cfg.AlmostDepletedThresholdLocal

	auditCtx := NewAuditContext(domain.AuditSelectionCheck, campaign.ID).
		Add("state", string(state.State)).
		Add("available_budget", available).
		Add("worst_case_spend", maxSpend).
		Add("threshold", m.cfg.AlmostDepletedThresholdLocal).
		Add("until_date", untilDate.Format(time.DateOnly)).
		Add("previous_almost_depleted", state.AlmostDepleted).
		Add("almost_depleted", almostDepleted)

	var transition Transition
	err = m.runner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		transition, err = m.manager.UpdateAlmostDepleted(ctx, tx, state, almostDepleted)
		if err != nil {
			return err
		}

		if !transition.Changed {
			return nil
		}

		return m.audit.Append(ctx, tx, auditCtx.Entry(now))
	})
	if err != nil {
		return err
	}

	m.manager.DispatchEffects(campaign.ID, transition)

	return nil
}

// observedSpendByEntity retorna o gasto já observado hoje por entidade. Em
// horas críticas as amostras de ontem também contam, porque o corte do ledger
// recua um dia e esse gasto ainda não está liquidado lá.
func (m *Marker) observedSpendByEntity(ctx context.Context, campaign *domain.Campaign, today time.Time, now time.Time) (map[string]float64, error) {
	dates := []time.Time{today}
	if m.cfg.InCriticalHours(now) {
		dates = append(dates, today.AddDate(0, 0, -1))
	}

	observed := make(map[string]float64)
	for _, date := range dates {
		samples, err := m.spendRepo.LatestSamples(ctx, campaign.ID, date)
		if err != nil {
			return nil, err
		}
		for _, sample := range samples {
			observed[sample.AdGroupID+"/"+sample.SourceID] += sample.SpendLocal
		}
	}

	return observed, nil
}

type groupBucket struct {
	capLocal  float64
	observed  float64
	anyActive bool
}

func (m *Marker) projectWorstCaseSpend(sources []*domain.AdGroupSource, observed map[string]float64) float64 {
	var maxSpend float64
	groups := make(map[string]*groupBucket)

	for _, source := range sources {
		spend := observed[source.AdGroupID+"/"+source.SourceID]

		if source.Grouped() {
			bucket, ok := groups[source.BudgetGroupID]
			if !ok {
				bucket = &groupBucket{capLocal: source.GroupDailyCapLocal}
				groups[source.BudgetGroupID] = bucket
			}
			bucket.observed += spend
			bucket.anyActive = bucket.anyActive || source.Active
			continue
		}

		if !source.Active {
			maxSpend += spend
			continue
		}

		if source.DailyCapLocal > spend {
			maxSpend += source.DailyCapLocal
		} else {
			maxSpend += spend
		}
	}

	for _, bucket := range groups {
		if bucket.anyActive && bucket.capLocal > bucket.observed {
			maxSpend += bucket.capLocal
		} else {
			maxSpend += bucket.observed
		}
	}

	return maxSpend
}
