package rundates

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/estimating"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/stopping"
)

// Calculator recalcula as datas-limite de veiculação derivadas dos itens de
// orçamento da campanha
type Calculator interface {
	// RefreshMaxAllowedEndDate recalcula o último dia coberto por orçamento
	// contíguo e persiste quando difere do registro
	RefreshMaxAllowedEndDate(ctx context.Context, campaign *domain.Campaign) error

	// RefreshMinAllowedStartDate recalcula a primeira data de início com
	// orçamento restante suficiente e persiste quando difere do registro
	RefreshMinAllowedStartDate(ctx context.Context, campaign *domain.Campaign) error
}

type Service struct {
	cfg       config.CampaignStop
	runner    stopping.TxRunner
	ledger    ledger.LedgerIntegrator
	estimator estimating.BudgetEstimator
	audit     repository.AuditLogRepository
	manager   *stopping.StateManager
	now       func() time.Time
}

func NewService(
	cfg config.CampaignStop,
	runner stopping.TxRunner,
	ledgerService ledger.LedgerIntegrator,
	estimator estimating.BudgetEstimator,
	audit repository.AuditLogRepository,
	manager *stopping.StateManager,
) *Service {
	return &Service{
		cfg:       cfg,
		runner:    runner,
		ledger:    ledgerService,
		estimator: estimator,
		audit:     audit,
		manager:   manager,
		now:       time.Now,
	}
}

// WithClock substitui a fonte de tempo (usado em testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// RefreshMaxAllowedEndDate varre os itens de orçamento em ordem de início e
// estende um máximo corrente a partir do dia anterior à criação da campanha.
// Um item cujo início está no futuro e além do máximo corrente abre um buraco
// sem cobertura: a varredura para ali.
func (s *Service) RefreshMaxAllowedEndDate(ctx context.Context, campaign *domain.Campaign) error {
	now := s.now()
	today := campaign.LocalDate(now)

	items, err := s.ledger.GetBudgetLineItems(campaign.ID, today)
	if err != nil {
		return err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].StartDate.Before(items[j].StartDate)
	})

	created := campaign.CreatedAt.UTC()
	runningMax := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -1)

	for _, item := range items {
		if item.StartDate.After(today) && item.StartDate.After(runningMax) {
			break
		}
		if item.EndDate.After(runningMax) {
			runningMax = item.EndDate
		}
	}

	state, err := s.manager.GetOrCreate(ctx, campaign.ID)
	if err != nil {
		return err
	}

	previous := state.MaxAllowedEndDate

	var transition stopping.Transition
	err = s.runner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		transition, err = s.manager.UpdateMaxAllowedEndDate(ctx, tx, state, &runningMax)
		if err != nil {
			return err
		}

		if !transition.Changed {
			return nil
		}

		auditCtx := stopping.NewAuditContext(domain.AuditMaxAllowedEndDateUpdate, campaign.ID).
			Add("previous", formatDatePtr(previous)).
			Add("current", runningMax.Format(time.DateOnly)).
			Add("line_items", len(items))

		return s.audit.Append(ctx, tx, auditCtx.Entry(now))
	})
	if err != nil {
		return err
	}

	s.manager.DispatchEffects(campaign.ID, transition)

	return nil
}

// RefreshMinAllowedStartDate procura, entre as datas de início dos itens
// ainda não terminados, a primeira em que o orçamento restante somado dos
// itens vigentes supera o limiar. Sem candidata, a data fica nula e a camada
// de veiculação não restringe o início.
func (s *Service) RefreshMinAllowedStartDate(ctx context.Context, campaign *domain.Campaign) error {
	now := s.now()
	today := campaign.LocalDate(now)

	allItems, err := s.ledger.GetBudgetLineItems(campaign.ID, today)
	if err != nil {
		return err
	}

	items := make([]*domain.BudgetLineItem, 0, len(allItems))
	for _, item := range allItems {
		if !item.EndedBefore(today) {
			items = append(items, item)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].StartDate.Before(items[j].StartDate)
	})

	estimates, err := s.estimator.EstimateLineItemSpend(ctx, campaign)
	if err != nil {
		return err
	}

	rate, err := s.ledger.GetExchangeRate(campaign.Currency)
	if err != nil {
		return err
	}

	var minStartDate *time.Time
	for _, candidate := range items {
		date := candidate.StartDate

		var remaining float64
		for _, item := range items {
			if item.ActiveOn(date) {
				remaining += item.Amount*rate - estimates[item.ID]
			}
		}

		if remaining > s.cfg.MinStartThresholdLocal {
			minStartDate = &date
			break
		}
	}

	state, err := s.manager.GetOrCreate(ctx, campaign.ID)
	if err != nil {
		return err
	}

	previous := state.MinAllowedStartDate

	var transition stopping.Transition
	err = s.runner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		transition, err = s.manager.UpdateMinAllowedStartDate(ctx, tx, state, minStartDate)
		if err != nil {
			return err
		}

		if !transition.Changed {
			return nil
		}

		auditCtx := stopping.NewAuditContext(domain.AuditMinAllowedStartDateUpdate, campaign.ID).
			Add("previous", formatDatePtr(previous)).
			Add("current", formatDatePtr(minStartDate)).
			Add("threshold", s.cfg.MinStartThresholdLocal).
			Add("line_items", len(items))

		return s.audit.Append(ctx, tx, auditCtx.Entry(now))
	})
	if err != nil {
		return err
	}

	s.manager.DispatchEffects(campaign.ID, transition)

	return nil
}

func formatDatePtr(date *time.Time) any {
	if date == nil {
		return nil
	}
	return date.Format(time.DateOnly)
}
