package telemetry

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/telemetry/telemetryclient"
	"github.com/vfg2006/campaign-stop-service/internal/config"
)

// SpendObservation é a leitura corrente de gasto de uma entidade de veiculação
type SpendObservation struct {
	AdGroupID  string
	SourceID   string
	SpendLocal float64
	Date       time.Time
}

// TelemetryIntegrator expõe a fonte de telemetria de gasto bruto
type TelemetryIntegrator interface {
	// FetchSpend retorna o gasto corrente do dia local da entidade
	FetchSpend(adGroupID, sourceID string) (*SpendObservation, error)
}

type TelemetryService struct {
	cfg    *config.Config
	Client telemetryclient.Client
}

func New(cfg *config.Config, client telemetryclient.Client) *TelemetryService {
	return &TelemetryService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TelemetryService) FetchSpend(adGroupID, sourceID string) (*SpendObservation, error) {
	payload, err := s.Client.GetCurrentSpend(adGroupID, sourceID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar gasto da telemetria")
	}

	date, err := time.Parse(time.DateOnly, payload.Date)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao converter data da telemetria")
	}

	return &SpendObservation{
		AdGroupID:  adGroupID,
		SourceID:   sourceID,
		SpendLocal: payload.SpendLocal,
		Date:       date,
	}, nil
}
