package ledgerclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	ledgerdomain "github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger/domain"
	"github.com/vfg2006/campaign-stop-service/internal/config"
)

type Client interface {
	GetBudgetLineItems(campaignID string, asOf time.Time) ([]ledgerdomain.BudgetLineItemPayload, error)
	GetAvailableAmount(lineItemID string, untilDate time.Time) (*ledgerdomain.AmountPayload, error)
	GetSettledSpend(lineItemID string, untilDate time.Time) (*ledgerdomain.AmountPayload, error)
	GetExchangeRate(currency string) (*ledgerdomain.ExchangeRatePayload, error)
}

type LedgerClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &LedgerClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *LedgerClient) GetBudgetLineItems(campaignID string, asOf time.Time) ([]ledgerdomain.BudgetLineItemPayload, error) {
	params := url.Values{}
	params.Add("as_of", asOf.Format(time.DateOnly))

	endpoint := fmt.Sprintf("%s/campaigns/%s/budgets?%s", c.Cfg.Ledger.URL, campaignID, params.Encode())

	body, err := c.doRequest(endpoint)
	if err != nil {
		return nil, err
	}

	var response struct {
		Data []ledgerdomain.BudgetLineItemPayload `json:"data"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do ledger")
		return nil, err
	}

	return response.Data, nil
}

func (c *LedgerClient) GetAvailableAmount(lineItemID string, untilDate time.Time) (*ledgerdomain.AmountPayload, error) {
	return c.getAmount("available", lineItemID, untilDate)
}

func (c *LedgerClient) GetSettledSpend(lineItemID string, untilDate time.Time) (*ledgerdomain.AmountPayload, error) {
	return c.getAmount("settled", lineItemID, untilDate)
}

func (c *LedgerClient) getAmount(kind string, lineItemID string, untilDate time.Time) (*ledgerdomain.AmountPayload, error) {
	params := url.Values{}
	params.Add("until", untilDate.Format(time.DateOnly))

	endpoint := fmt.Sprintf("%s/budgets/%s/%s?%s", c.Cfg.Ledger.URL, lineItemID, kind, params.Encode())

	body, err := c.doRequest(endpoint)
	if err != nil {
		return nil, err
	}

	payload := &ledgerdomain.AmountPayload{}
	if err := json.Unmarshal(body, payload); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do ledger")
		return nil, err
	}

	return payload, nil
}

func (c *LedgerClient) GetExchangeRate(currency string) (*ledgerdomain.ExchangeRatePayload, error) {
	endpoint := fmt.Sprintf("%s/exchange-rates/%s", c.Cfg.Ledger.URL, currency)

	body, err := c.doRequest(endpoint)
	if err != nil {
		return nil, err
	}

	payload := &ledgerdomain.ExchangeRatePayload{}
	if err := json.Unmarshal(body, payload); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do ledger")
		return nil, err
	}

	return payload, nil
}

func (c *LedgerClient) doRequest(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.Ledger.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ledger respondeu com status inesperado: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
