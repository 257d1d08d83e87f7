package ledger

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ledgerdomain "github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger/domain"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger/ledgerclient"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

// LedgerIntegrator expõe o ledger de orçamento/crédito (colaborador externo,
// somente leitura aqui, exceto pelo veto de validação que é disparado por ele)
type LedgerIntegrator interface {
	// GetActiveBudgetLineItems retorna os itens de orçamento vigentes na data
	GetActiveBudgetLineItems(campaignID string, asOf time.Time) ([]*domain.BudgetLineItem, error)
	// GetBudgetLineItems retorna todos os itens de orçamento da campanha
	GetBudgetLineItems(campaignID string, asOf time.Time) ([]*domain.BudgetLineItem, error)
	// GetAvailableAmount retorna o valor disponível do item até a data, na moeda da conta
	GetAvailableAmount(lineItemID string, untilDate time.Time) (float64, error)
	// GetSettledSpend retorna o gasto já liquidado do item até a data, na moeda da conta
	GetSettledSpend(lineItemID string, untilDate time.Time) (float64, error)
	// GetExchangeRate retorna a taxa moeda-da-conta -> moeda local
	GetExchangeRate(currency string) (float64, error)
}

type LedgerService struct {
	cfg    *config.Config
	Client ledgerclient.Client
}

func New(cfg *config.Config, client ledgerclient.Client) *LedgerService {
	return &LedgerService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *LedgerService) GetBudgetLineItems(campaignID string, asOf time.Time) ([]*domain.BudgetLineItem, error) {
	payloads, err := s.Client.GetBudgetLineItems(campaignID, asOf)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar itens de orçamento do ledger")
	}

	items := make([]*domain.BudgetLineItem, 0, len(payloads))
	for _, payload := range payloads {
		item, err := factoryBudgetLineItem(payload)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id":  campaignID,
				"line_item_id": payload.ID,
			}).WithError(err).Error("ledger: item de orçamento com datas inválidas, ignorando")
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *LedgerService) GetActiveBudgetLineItems(campaignID string, asOf time.Time) ([]*domain.BudgetLineItem, error) {
	items, err := s.GetBudgetLineItems(campaignID, asOf)
	if err != nil {
		return nil, err
	}

	active := make([]*domain.BudgetLineItem, 0, len(items))
	for _, item := range items {
		if item.ActiveOn(asOf) {
			active = append(active, item)
		}
	}

	return active, nil
}

func (s *LedgerService) GetAvailableAmount(lineItemID string, untilDate time.Time) (float64, error) {
	payload, err := s.Client.GetAvailableAmount(lineItemID, untilDate)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar valor disponível do ledger")
	}

	return payload.Amount, nil
}

func (s *LedgerService) GetSettledSpend(lineItemID string, untilDate time.Time) (float64, error) {
	payload, err := s.Client.GetSettledSpend(lineItemID, untilDate)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar gasto liquidado do ledger")
	}

	return payload.Amount, nil
}

func (s *LedgerService) GetExchangeRate(currency string) (float64, error) {
	payload, err := s.Client.GetExchangeRate(currency)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar taxa de câmbio do ledger")
	}

	return payload.Rate, nil
}

func factoryBudgetLineItem(payload ledgerdomain.BudgetLineItemPayload) (*domain.BudgetLineItem, error) {
	startDate, err := time.Parse(time.DateOnly, payload.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(time.DateOnly, payload.EndDate)
	if err != nil {
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339, payload.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &domain.BudgetLineItem{
		ID:         payload.ID,
		CampaignID: payload.CampaignID,
		StartDate:  startDate,
		EndDate:    endDate,
		Amount:     payload.Amount,
		Currency:   payload.Currency,
		CreatedAt:  createdAt,
	}, nil
}
