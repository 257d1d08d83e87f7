package stopping

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/estimating"
)

type Service struct {
	cfg       config.CampaignStop
	runner    TxRunner
	campaigns repository.CampaignRepository
	audit     repository.AuditLogRepository
	estimator estimating.BudgetEstimator
	manager   *StateManager
	now       func() time.Time
}

func NewService(
	cfg config.CampaignStop,
	runner TxRunner,
	campaigns repository.CampaignRepository,
	audit repository.AuditLogRepository,
	estimator estimating.BudgetEstimator,
	manager *StateManager,
) *Service {
	return &Service{
		cfg:       cfg,
		runner:    runner,
		campaigns: campaigns,
		audit:     audit,
		estimator: estimator,
		manager:   manager,
		now:       time.Now,
	}
}

// WithClock substitui a fonte de tempo (usado em testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) CheckCampaigns(ctx context.Context) error {
	campaigns, err := s.campaigns.ListRealTimeStopEnabled(ctx)
	if err != nil {
		return err
	}

	for _, campaign := range campaigns {
		if err := s.EvaluateCampaign(ctx, campaign); err != nil {
			// A falha de uma campanha não pode represar as demais
			logrus.WithError(err).WithField("campaign_id", campaign.ID).
				Error("stopping: erro ao avaliar esgotamento da campanha")
		}
	}

	return nil
}

// EvaluateCampaign decide se a campanha pode veicular. Dois portões, ambos
// precisam passar: a data máxima de término permitida ainda não venceu e o
// orçamento restante previsto está acima do limiar. Campanhas paradas só
// reiniciam acima de RestartFactor x o limiar base, evitando oscilação na
// fronteira.
func (s *Service) EvaluateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	// Sem a funcionalidade em tempo real só o portão de data se aplica
	if !campaign.RealTimeStopEnabled {
		return s.evaluateSimple(ctx, campaign)
	}

	now := s.now()
	today := campaign.LocalDate(now)

	auditCtx := NewAuditContext(domain.AuditBudgetDepletionCheck, campaign.ID)

	state, err := s.manager.GetOrCreate(ctx, campaign.ID)
	if err != nil {
		return err
	}

	prediction, err := s.estimator.PredictRemainingBudget(ctx, campaign)
	if err != nil {
		return err
	}

	endDateGate := state.MaxAllowedEndDate != nil && state.MaxAllowedEndDate.Before(today)

	threshold := s.cfg.BaseThresholdLocal
	if state.State == domain.RunStateStopped {
		threshold *= s.cfg.RestartFactor
	}
	budgetGate := prediction.PredictedRemaining < threshold

	allowed := !endDateGate && !budgetGate

	auditCtx.
		Add("previous_state", string(state.State)).
		Add("end_date_gate", endDateGate).
		Add("budget_gate", budgetGate).
		Add("threshold", threshold).
		Add("available_budget", prediction.AvailableBudget).
		Add("realtime_spend", prediction.RealtimeSpend).
		Add("spend_rate", prediction.SpendRate).
		Add("predicted_remaining", prediction.PredictedRemaining).
		Add("until_date", prediction.UntilDate.Format(time.DateOnly))

	var transitions []Transition
	err = s.runner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		transition, err := s.manager.SetAllowedToRun(ctx, tx, state, allowed)
		if err != nil {
			return err
		}
		transitions = append(transitions, transition)

		// Campanha que não pode veicular não é candidata a quase-esgotamento
		if !allowed {
			transition, err := s.manager.UpdateAlmostDepleted(ctx, tx, state, false)
			if err != nil {
				return err
			}
			transitions = append(transitions, transition)
		}

		auditCtx.Add("new_state", string(state.State))

		return s.audit.Append(ctx, tx, auditCtx.Entry(now))
	})
	if err != nil {
		return err
	}

	s.manager.DispatchEffects(campaign.ID, transitions...)

	return nil
}

// evaluateSimple decide a veiculação de campanhas sem parada em tempo real
// usando apenas o portão de data: não há previsão de orçamento nem marcação
// de quase-esgotamento
func (s *Service) evaluateSimple(ctx context.Context, campaign *domain.Campaign) error {
	now := s.now()
	today := campaign.LocalDate(now)

	state, err := s.manager.GetOrCreate(ctx, campaign.ID)
	if err != nil {
		return err
	}

	endDateGate := state.MaxAllowedEndDate != nil && state.MaxAllowedEndDate.Before(today)
	allowed := !endDateGate

	auditCtx := NewAuditContext(domain.AuditSimpleCampaignStop, campaign.ID).
		Add("previous_state", string(state.State)).
		Add("end_date_gate", endDateGate)

	var transition Transition
	err = s.runner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		transition, err = s.manager.SetAllowedToRun(ctx, tx, state, allowed)
		if err != nil {
			return err
		}

		auditCtx.Add("new_state", string(state.State))

		return s.audit.Append(ctx, tx, auditCtx.Entry(now))
	})
	if err != nil {
		return err
	}

	s.manager.DispatchEffects(campaign.ID, transition)

	return nil
}

// GetCampaignStopStates monta a visão pública dos registros de controle.
// O portão de data é reavaliado ao vivo: um registro antigo cuja data máxima
// de término já venceu reporta allowed_to_run=false mesmo antes do próximo
// ciclo de avaliação.
func (s *Service) GetCampaignStopStates(ctx context.Context, campaignIDs []string) (map[string]*domain.CampaignStopStateResponse, error) {
	responses := make(map[string]*domain.CampaignStopStateResponse, len(campaignIDs))

	for _, campaignID := range campaignIDs {
		campaign, err := s.campaigns.GetByID(ctx, campaignID)
		if err != nil {
			return nil, err
		}

		// Campanha desconhecida ou sem a funcionalidade habilitada: resposta
		// neutra, sempre liberada
		if campaign == nil || !campaign.RealTimeStopEnabled {
			responses[campaignID] = &domain.CampaignStopStateResponse{
				CampaignID:   campaignID,
				AllowedToRun: true,
			}
			continue
		}

		state, err := s.manager.GetByCampaignID(ctx, campaignID)
		if err != nil {
			return nil, err
		}

		// Habilitada mas nunca avaliada: vale o padrão do registro (STOPPED)
		if state == nil {
			responses[campaignID] = &domain.CampaignStopStateResponse{
				CampaignID: campaignID,
			}
			continue
		}

		allowed := state.AllowedToRun()
		today := campaign.LocalDate(s.now())
		if state.MaxAllowedEndDate != nil && state.MaxAllowedEndDate.Before(today) {
			allowed = false
		}

		responses[campaignID] = &domain.CampaignStopStateResponse{
			CampaignID:           campaignID,
			AllowedToRun:         allowed,
			MaxAllowedEndDate:    state.MaxAllowedEndDate,
			MinAllowedStartDate:  state.MinAllowedStartDate,
			AlmostDepleted:       state.AlmostDepleted,
			PendingBudgetUpdates: state.PendingBudgetUpdates,
		}
	}

	return responses, nil
}
