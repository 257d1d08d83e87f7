package stopping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

func TestApplyAllowedToRun(t *testing.T) {
	tests := []struct {
		name           string
		state          *domain.CampaignStopState
		allowed        bool
		expectChanged  bool
		expectState    domain.RunState
		expectDepleted bool
	}{
		{
			name:          "Campanha parada liberada deve transicionar para ACTIVE",
			state:         &domain.CampaignStopState{State: domain.RunStateStopped},
			allowed:       true,
			expectChanged: true,
			expectState:   domain.RunStateActive,
		},
		{
			name:          "Campanha ativa vetada deve transicionar para STOPPED",
			state:         &domain.CampaignStopState{State: domain.RunStateActive},
			allowed:       false,
			expectChanged: true,
			expectState:   domain.RunStateStopped,
		},
		{
			name:          "Campanha ativa liberada não muda nada",
			state:         &domain.CampaignStopState{State: domain.RunStateActive},
			allowed:       true,
			expectChanged: false,
			expectState:   domain.RunStateActive,
		},
		{
			name:          "Campanha parada vetada não muda nada",
			state:         &domain.CampaignStopState{State: domain.RunStateStopped},
			allowed:       false,
			expectChanged: false,
			expectState:   domain.RunStateStopped,
		},
		{
			name: "Transição para STOPPED limpa o quase-esgotamento",
			state: &domain.CampaignStopState{
				State:          domain.RunStateActive,
				AlmostDepleted: true,
			},
			allowed:        false,
			expectChanged:  true,
			expectState:    domain.RunStateStopped,
			expectDepleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transition := applyAllowedToRun(tt.state, tt.allowed)

			assert.Equal(t, tt.expectChanged, transition.Changed)
			assert.Equal(t, tt.expectState, tt.state.State)
			assert.Equal(t, tt.expectDepleted, tt.state.AlmostDepleted)

			if tt.expectChanged {
				assert.Equal(t, []domain.ChangeKind{domain.ChangeKindState}, transition.NotifyKinds)
			} else {
				assert.Empty(t, transition.NotifyKinds)
			}
		})
	}
}

func TestApplyMaxAllowedEndDate(t *testing.T) {
	date1 := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	date2 := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		current       *time.Time
		next          *time.Time
		expectChanged bool
	}{
		{
			name:          "Primeira data calculada deve marcar mudança",
			current:       nil,
			next:          &date1,
			expectChanged: true,
		},
		{
			name:          "Data diferente deve marcar mudança",
			current:       &date1,
			next:          &date2,
			expectChanged: true,
		},
		{
			name:          "Mesma data não muda nada",
			current:       &date1,
			next:          &date1,
			expectChanged: false,
		},
		{
			name:          "Ambas nulas não muda nada",
			current:       nil,
			next:          nil,
			expectChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &domain.CampaignStopState{MaxAllowedEndDate: tt.current}

			transition := applyMaxAllowedEndDate(state, tt.next)

			assert.Equal(t, tt.expectChanged, transition.Changed)
			assert.Equal(t, tt.next, state.MaxAllowedEndDate)

			if tt.expectChanged {
				assert.Equal(t, []domain.ChangeKind{domain.ChangeKindMaxEndDate}, transition.NotifyKinds)
			}
		})
	}
}

func TestApplyMinAllowedStartDate(t *testing.T) {
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Data nova deve marcar mudança e notificar", func(t *testing.T) {
		state := &domain.CampaignStopState{}

		transition := applyMinAllowedStartDate(state, &date)

		assert.True(t, transition.Changed)
		assert.Equal(t, []domain.ChangeKind{domain.ChangeKindMinStartDate}, transition.NotifyKinds)
		assert.Equal(t, &date, state.MinAllowedStartDate)
	})

	t.Run("Voltar para nula também é mudança", func(t *testing.T) {
		state := &domain.CampaignStopState{MinAllowedStartDate: &date}

		transition := applyMinAllowedStartDate(state, nil)

		assert.True(t, transition.Changed)
		assert.Nil(t, state.MinAllowedStartDate)
	})
}

func TestApplyAlmostDepleted(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

	t.Run("Transição false para true dispara alerta e registra o instante", func(t *testing.T) {
		state := &domain.CampaignStopState{AlmostDepleted: false}

		transition := applyAlmostDepleted(state, true, now)

		assert.True(t, transition.Changed)
		assert.True(t, transition.AlertDepletion)
		assert.True(t, state.AlmostDepleted)
		assert.NotNil(t, state.AlmostDepletedMarkedAt)
		assert.Equal(t, now, *state.AlmostDepletedMarkedAt)
	})

	t.Run("Já marcada não reenvia alerta", func(t *testing.T) {
		state := &domain.CampaignStopState{AlmostDepleted: true}

		transition := applyAlmostDepleted(state, true, now)

		assert.False(t, transition.Changed)
		assert.False(t, transition.AlertDepletion)
	})

	t.Run("Desmarcar não dispara alerta", func(t *testing.T) {
		state := &domain.CampaignStopState{AlmostDepleted: true}

		transition := applyAlmostDepleted(state, false, now)

		assert.True(t, transition.Changed)
		assert.False(t, transition.AlertDepletion)
		assert.False(t, state.AlmostDepleted)
	})
}

func TestApplyPendingBudgetUpdates(t *testing.T) {
	state := &domain.CampaignStopState{}

	transition := applyPendingBudgetUpdates(state, true)
	assert.True(t, transition.Changed)
	assert.True(t, state.PendingBudgetUpdates)

	transition = applyPendingBudgetUpdates(state, true)
	assert.False(t, transition.Changed)

	transition = applyPendingBudgetUpdates(state, false)
	assert.True(t, transition.Changed)
	assert.False(t, state.PendingBudgetUpdates)
}

func TestEqualDatePtr(t *testing.T) {
	date1 := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	date2 := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	sameAsDate1 := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, equalDatePtr(nil, nil))
	assert.True(t, equalDatePtr(&date1, &sameAsDate1))
	assert.False(t, equalDatePtr(&date1, &date2))
	assert.False(t, equalDatePtr(&date1, nil))
	assert.False(t, equalDatePtr(nil, &date2))
}
