package validating

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/campaign-stop-service/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/estimating"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/stopping"
	"github.com/vfg2006/campaign-stop-service/pkg/utils"
)

// ErrCampaignNotFound indica que a campanha informada não é conhecida
var ErrCampaignNotFound = fmt.Errorf("campanha não encontrada")

// MinBudgetError veta uma redução de orçamento abaixo do gasto já estimado
// do item. Carrega o mínimo aceito, na moeda da conta, para o chamador
// corrigir a proposta.
type MinBudgetError struct {
	LineItemID string
	MinAmount  float64
}

func (e *MinBudgetError) Error() string {
	return fmt.Sprintf(
		"valor proposto abaixo do gasto estimado do item %s: mínimo aceito %.2f",
		e.LineItemID, e.MinAmount,
	)
}

// BudgetValidator veta, de forma síncrona, mudanças de orçamento que
// deixariam um item abaixo do que já foi gasto
type BudgetValidator interface {
	// ValidateBudgetAmount retorna *MinBudgetError quando o valor proposto é
	// menor que o gasto estimado do item
	ValidateBudgetAmount(ctx context.Context, campaignID, lineItemID string, proposedAmount float64) error
}

type Service struct {
	conn      postgres.Conn
	campaigns repository.CampaignRepository
	audit     repository.AuditLogRepository
	estimator estimating.BudgetEstimator
	ledger    ledger.LedgerIntegrator
	now       func() time.Time
}

func NewService(
	conn postgres.Conn,
	campaigns repository.CampaignRepository,
	audit repository.AuditLogRepository,
	estimator estimating.BudgetEstimator,
	ledgerService ledger.LedgerIntegrator,
) *Service {
	return &Service{
		conn:      conn,
		campaigns: campaigns,
		audit:     audit,
		estimator: estimator,
		ledger:    ledgerService,
		now:       time.Now,
	}
}

// WithClock substitui a fonte de tempo (usado em testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) ValidateBudgetAmount(ctx context.Context, campaignID, lineItemID string, proposedAmount float64) error {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	// Sem a funcionalidade habilitada não há estimativa em tempo real que
	// justifique um veto
	if !campaign.RealTimeStopEnabled {
		return nil
	}

	estimates, err := s.estimator.EstimateLineItemSpend(ctx, campaign)
	if err != nil {
		return err
	}

	rate, err := s.ledger.GetExchangeRate(campaign.Currency)
	if err != nil {
		return err
	}

	// A estimativa está em moeda local; o valor proposto vem na moeda da conta
	minAmount := 0.0
	if rate > 0 {
		minAmount = utils.RoundWithTwoDecimalPlace(estimates[lineItemID] / rate)
	}

	accepted := proposedAmount >= minAmount

	auditCtx := stopping.NewAuditContext(domain.AuditBudgetAmountValidation, campaignID).
		Add("line_item_id", lineItemID).
		Add("proposed_amount", proposedAmount).
		Add("min_amount", minAmount).
		Add("accepted", accepted)

	if err := s.audit.Append(ctx, s.conn, auditCtx.Entry(s.now())); err != nil {
		return err
	}

	if !accepted {
		return &MinBudgetError{LineItemID: lineItemID, MinAmount: minAmount}
	}

	return nil
}
