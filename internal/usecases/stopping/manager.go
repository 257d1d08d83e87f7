package stopping

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/notifier"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

// TxRunner abstrai a execução de uma função dentro de uma transação
type TxRunner interface {
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

// StateWriter expõe as mutações do registro de controle usadas fora do pacote
type StateWriter interface {
	ClearPendingBudgetUpdates(ctx context.Context, campaignID string) error
	MarkPendingBudgetUpdates(ctx context.Context, campaignID string) error
}

// StateManager centraliza as mutações do registro de controle. Cada método
// persiste o registro e devolve a Transition correspondente; as notificações
// só devem ser despachadas via DispatchEffects depois do commit da transação.
type StateManager struct {
	conn     postgres.Conn
	states   repository.CampaignStopStateRepository
	notifier notifier.NotifierIntegrator
	now      func() time.Time
}

func NewStateManager(
	conn postgres.Conn,
	states repository.CampaignStopStateRepository,
	notifierService notifier.NotifierIntegrator,
) *StateManager {
	return &StateManager{
		conn:     conn,
		states:   states,
		notifier: notifierService,
		now:      time.Now,
	}
}

// WithClock substitui a fonte de tempo (usado em testes)
func (m *StateManager) WithClock(now func() time.Time) *StateManager {
	m.now = now
	return m
}

func (m *StateManager) GetOrCreate(ctx context.Context, campaignID string) (*domain.CampaignStopState, error) {
	return m.states.GetOrCreate(ctx, campaignID)
}

func (m *StateManager) GetByCampaignID(ctx context.Context, campaignID string) (*domain.CampaignStopState, error) {
	return m.states.GetByCampaignID(ctx, campaignID)
}

// SetAllowedToRun aplica a decisão de veiculação e persiste o registro. O
// registro é persistido mesmo sem mudança de estado, para atualizar updated_at
// e manter visível que a campanha foi reavaliada.
func (m *StateManager) SetAllowedToRun(ctx context.Context, q postgres.Queryer, state *domain.CampaignStopState, allowed bool) (Transition, error) {
	transition := applyAllowedToRun(state, allowed)

	if err := m.states.Update(ctx, q, state); err != nil {
		return Transition{}, err
	}

	return transition, nil
}

func (m *StateManager) UpdateMaxAllowedEndDate(ctx context.Context, q postgres.Queryer, state *domain.CampaignStopState, date *time.Time) (Transition, error) {
	transition := applyMaxAllowedEndDate(state, date)
	if !transition.Changed {
		return transition, nil
	}

	if err := m.states.Update(ctx, q, state); err != nil {
		return Transition{}, err
	}

	return transition, nil
}

func (m *StateManager) UpdateMinAllowedStartDate(ctx context.Context, q postgres.Queryer, state *domain.CampaignStopState, date *time.Time) (Transition, error) {
	transition := applyMinAllowedStartDate(state, date)
	if !transition.Changed {
		return transition, nil
	}

	if err := m.states.Update(ctx, q, state); err != nil {
		return Transition{}, err
	}

	return transition, nil
}

func (m *StateManager) UpdateAlmostDepleted(ctx context.Context, q postgres.Queryer, state *domain.CampaignStopState, value bool) (Transition, error) {
	transition := applyAlmostDepleted(state, value, m.now())
	if !transition.Changed {
		return transition, nil
	}

	if err := m.states.Update(ctx, q, state); err != nil {
		return Transition{}, err
	}

	return transition, nil
}

// ClearPendingBudgetUpdates limpa a flag de atualizações de orçamento
// pendentes, fora de transação. Usado pelo tratador da fila após processar os
// eventos de uma campanha.
func (m *StateManager) ClearPendingBudgetUpdates(ctx context.Context, campaignID string) error {
	return m.setPendingBudgetUpdates(ctx, campaignID, false)
}

// MarkPendingBudgetUpdates marca que há eventos de orçamento enfileirados e
// ainda não processados para a campanha
func (m *StateManager) MarkPendingBudgetUpdates(ctx context.Context, campaignID string) error {
	return m.setPendingBudgetUpdates(ctx, campaignID, true)
}

func (m *StateManager) setPendingBudgetUpdates(ctx context.Context, campaignID string, value bool) error {
	state, err := m.states.GetOrCreate(ctx, campaignID)
	if err != nil {
		return err
	}

	transition := applyPendingBudgetUpdates(state, value)
	if !transition.Changed {
		return nil
	}

	return m.states.Update(ctx, m.conn, state)
}

// DispatchEffects dispara as notificações e alertas acumulados nas
// transições. Falhas de entrega são registradas mas não propagadas: a mudança
// de estado já está persistida e a camada de veiculação reconverge no próximo
// ciclo.
func (m *StateManager) DispatchEffects(campaignID string, transitions ...Transition) {
	for _, transition := range transitions {
		for _, kind := range transition.NotifyKinds {
			urgent := kind == domain.ChangeKindState
			if err := m.notifier.NotifyStateChange(campaignID, kind, urgent); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"campaign_id": campaignID,
					"change_kind": string(kind),
				}).Error("stopping: erro ao notificar mudança de estado")
			}
		}

		if transition.AlertDepletion {
			if err := m.notifier.SendDepletionAlert(campaignID); err != nil {
				logrus.WithError(err).WithField("campaign_id", campaignID).
					Error("stopping: erro ao enviar alerta de quase-esgotamento")
			}
		}
	}
}
