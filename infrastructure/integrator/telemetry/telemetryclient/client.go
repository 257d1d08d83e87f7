package telemetryclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/internal/config"
)

// A telemetria é consultada por entidade a cada ciclo de coleta, então a
// decodificação usa jsoniter
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SpendPayload é o formato da observação de gasto na API de telemetria
type SpendPayload struct {
	AdGroupID  string  `json:"ad_group_id"`
	SourceID   string  `json:"source_id"`
	SpendLocal float64 `json:"spend_local"`
	Date       string  `json:"date"`
}

type Client interface {
	GetCurrentSpend(adGroupID, sourceID string) (*SpendPayload, error)
}

type TelemetryClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &TelemetryClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *TelemetryClient) GetCurrentSpend(adGroupID, sourceID string) (*SpendPayload, error) {
	endpoint := fmt.Sprintf("%s/adgroups/%s/sources/%s/spend", c.Cfg.Telemetry.URL, adGroupID, sourceID)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.Telemetry.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telemetria respondeu com status inesperado: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	payload := &SpendPayload{}
	if err := json.Unmarshal(body, payload); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da telemetria")
		return nil, err
	}

	return payload, nil
}
