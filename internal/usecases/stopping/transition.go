package stopping

import (
	"time"

	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

// Transition é o resultado de uma decisão pura sobre o registro de controle:
// o que mudou e quais efeitos colaterais o chamador deve disparar depois de
// persistir. Manter a decisão separada da notificação permite testar a lógica
// de transição sem mockar I/O.
type Transition struct {
	Changed        bool
	NotifyKinds    []domain.ChangeKind
	AlertDepletion bool
}

// applyAllowedToRun aplica a decisão de veiculação ao registro. Qualquer
// transição para STOPPED força almost_depleted=false.
func applyAllowedToRun(state *domain.CampaignStopState, allowed bool) Transition {
	newState := domain.RunStateStopped
	if allowed {
		newState = domain.RunStateActive
	}

	if state.State == newState {
		return Transition{}
	}

	state.State = newState
	if newState == domain.RunStateStopped {
		state.AlmostDepleted = false
	}

	return Transition{
		Changed:     true,
		NotifyKinds: []domain.ChangeKind{domain.ChangeKindState},
	}
}

func applyMaxAllowedEndDate(state *domain.CampaignStopState, date *time.Time) Transition {
	if equalDatePtr(state.MaxAllowedEndDate, date) {
		return Transition{}
	}

	state.MaxAllowedEndDate = date

	return Transition{
		Changed:     true,
		NotifyKinds: []domain.ChangeKind{domain.ChangeKindMaxEndDate},
	}
}

func applyMinAllowedStartDate(state *domain.CampaignStopState, date *time.Time) Transition {
	if equalDatePtr(state.MinAllowedStartDate, date) {
		return Transition{}
	}

	state.MinAllowedStartDate = date

	return Transition{
		Changed:     true,
		NotifyKinds: []domain.ChangeKind{domain.ChangeKindMinStartDate},
	}
}

// applyAlmostDepleted marca ou desmarca o quase-esgotamento. O alerta aos
// interessados dispara apenas na transição false->true; enquanto já estiver
// marcado não há reenvio.
func applyAlmostDepleted(state *domain.CampaignStopState, value bool, now time.Time) Transition {
	if state.AlmostDepleted == value {
		return Transition{}
	}

	state.AlmostDepleted = value

	transition := Transition{Changed: true}
	if value {
		state.AlmostDepletedMarkedAt = &now
		transition.AlertDepletion = true
	}

	return transition
}

func applyPendingBudgetUpdates(state *domain.CampaignStopState, value bool) Transition {
	if state.PendingBudgetUpdates == value {
		return Transition{}
	}

	state.PendingBudgetUpdates = value

	return Transition{Changed: true}
}

func equalDatePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
