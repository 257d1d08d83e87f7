package stopping

import (
	"time"

	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

// AuditContext acumula o contexto de uma única avaliação e é descarregado
// uma única vez ao final, junto com a mutação do registro de controle.
type AuditContext struct {
	campaignID string
	kind       domain.AuditEventKind
	values     map[string]any
}

func NewAuditContext(kind domain.AuditEventKind, campaignID string) *AuditContext {
	return &AuditContext{
		campaignID: campaignID,
		kind:       kind,
		values:     make(map[string]any),
	}
}

func (a *AuditContext) Add(key string, value any) *AuditContext {
	a.values[key] = value
	return a
}

func (a *AuditContext) Entry(recordedAt time.Time) *domain.AuditEntry {
	return &domain.AuditEntry{
		CampaignID: a.campaignID,
		EventKind:  a.kind,
		Context:    a.values,
		RecordedAt: recordedAt,
	}
}
