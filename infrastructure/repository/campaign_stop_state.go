package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-stop-service/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

const (
	campaignStopStatesTable = "campaign_stop_states css"
)

type CampaignStopStateRepository interface {
	// GetOrCreate retorna o registro de controle da campanha, criando-o com
	// os valores padrão (STOPPED, sem datas, sem flags) na primeira avaliação
	GetOrCreate(ctx context.Context, campaignID string) (*domain.CampaignStopState, error)
	GetByCampaignID(ctx context.Context, campaignID string) (*domain.CampaignStopState, error)
	// Update persiste todos os campos mutáveis do registro. Recebe um Queryer
	// para poder rodar dentro da transação da avaliação.
	Update(ctx context.Context, q postgres.Queryer, state *domain.CampaignStopState) error
}

type campaignStopStateRepository struct {
	conn *postgres.Connection
}

func NewCampaignStopStateRepository(conn *postgres.Connection) CampaignStopStateRepository {
	return &campaignStopStateRepository{
		conn: conn,
	}
}

func (r *campaignStopStateRepository) GetOrCreate(ctx context.Context, campaignID string) (*domain.CampaignStopState, error) {
	// Upsert idempotente: se o registro já existe, o insert é um no-op
	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_stop_states").
		Columns("campaign_id", "state", "almost_depleted", "pending_budget_updates").
		Values(campaignID, string(domain.RunStateStopped), false, false).
		Suffix("ON CONFLICT (campaign_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return r.GetByCampaignID(ctx, campaignID)
}

func (r *campaignStopStateRepository) GetByCampaignID(ctx context.Context, campaignID string) (*domain.CampaignStopState, error) {
	query, args, err := squirrel.
		Select("css.campaign_id, css.state, css.almost_depleted, css.max_allowed_end_date, css.min_allowed_start_date, css.pending_budget_updates, css.almost_depleted_marked_at, css.created_at, css.updated_at").
		From(campaignStopStatesTable).
		Where(squirrel.Eq{"css.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	state, err := r.scanState(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de controle: %w", err)
	}

	return state, nil
}

func (r *campaignStopStateRepository) Update(ctx context.Context, q postgres.Queryer, state *domain.CampaignStopState) error {
	query, args, err := squirrel.StatementBuilder.
		Update("campaign_stop_states").
		Set("state", string(state.State)).
		Set("almost_depleted", state.AlmostDepleted).
		Set("max_allowed_end_date", nullableDate(state.MaxAllowedEndDate)).
		Set("min_allowed_start_date", nullableDate(state.MinAllowedStartDate)).
		Set("pending_budget_updates", state.PendingBudgetUpdates).
		Set("almost_depleted_marked_at", state.AlmostDepletedMarkedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"campaign_id": state.CampaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignStopStateRepository) scanState(row *sql.Row) (*domain.CampaignStopState, error) {
	state := &domain.CampaignStopState{}
	var rawState string

	err := row.Scan(
		&state.CampaignID,
		&rawState,
		&state.AlmostDepleted,
		&state.MaxAllowedEndDate,
		&state.MinAllowedStartDate,
		&state.PendingBudgetUpdates,
		&state.AlmostDepletedMarkedAt,
		&state.CreatedAt,
		&state.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	state.State = domain.RunState(rawState)

	return state, nil
}

func nullableDate(date *time.Time) any {
	if date == nil {
		return nil
	}
	return date.Format("2006-01-02")
}
