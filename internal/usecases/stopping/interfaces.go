package stopping

import (
	"context"

	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

// DepletionChecker decide, por campanha, se a veiculação continua ou para
type DepletionChecker interface {
	// CheckCampaigns varre todas as campanhas com parada em tempo real
	// habilitada e avalia cada uma
	CheckCampaigns(ctx context.Context) error

	// EvaluateCampaign roda uma avaliação completa de esgotamento para a
	// campanha: portões de data e de orçamento, persistência e auditoria
	EvaluateCampaign(ctx context.Context, campaign *domain.Campaign) error
}

// AlmostDepletedMarker marca campanhas cujo teto diário pode esgotar o
// orçamento ainda hoje
type AlmostDepletedMarker interface {
	MarkCampaigns(ctx context.Context, campaigns []*domain.Campaign) error
	MarkCampaign(ctx context.Context, campaign *domain.Campaign) error
}

// StateReader expõe a visão pública dos registros de controle
type StateReader interface {
	GetCampaignStopStates(ctx context.Context, campaignIDs []string) (map[string]*domain.CampaignStopStateResponse, error)
}
