package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-stop-service/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

const (
	campaignsTable      = "campaigns c"
	adGroupSourcesTable = "ad_group_sources ags"
)

// CampaignRepository lê as campanhas e entidades de veiculação sincronizadas
// de fora. Este subsistema nunca escreve nessas tabelas.
type CampaignRepository interface {
	// GetByID retorna a campanha, ou nil se não for conhecida
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	ListRealTimeStopEnabled(ctx context.Context) ([]*domain.Campaign, error)
	// ListAdGroupSources retorna as entidades não arquivadas da campanha
	ListAdGroupSources(ctx context.Context, campaignID string) ([]*domain.AdGroupSource, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.account_id, c.name, c.currency, c.real_time_stop_enabled, c.utc_offset_hours, c.created_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	campaign, err := r.scanCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListRealTimeStopEnabled(ctx context.Context) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.account_id, c.name, c.currency, c.real_time_stop_enabled, c.utc_offset_hours, c.created_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.real_time_stop_enabled": true}).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		err := rows.Scan(
			&campaign.ID,
			&campaign.AccountID,
			&campaign.Name,
			&campaign.Currency,
			&campaign.RealTimeStopEnabled,
			&campaign.UTCOffsetHours,
			&campaign.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) ListAdGroupSources(ctx context.Context, campaignID string) ([]*domain.AdGroupSource, error) {
	query, args, err := squirrel.
		Select("ags.ad_group_id, ags.source_id, ags.campaign_id, ags.daily_cap_local, ags.budget_group_id, ags.group_daily_cap_local, ags.archived, ags.active, ags.utc_offset_hours").
		From(adGroupSourcesTable).
		Where(squirrel.Eq{"ags.campaign_id": campaignID, "ags.archived": false}).
		OrderBy("ags.ad_group_id ASC", "ags.source_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sources := make([]*domain.AdGroupSource, 0)
	for rows.Next() {
		source := &domain.AdGroupSource{}
		err := rows.Scan(
			&source.AdGroupID,
			&source.SourceID,
			&source.CampaignID,
			&source.DailyCapLocal,
			&source.BudgetGroupID,
			&source.GroupDailyCapLocal,
			&source.Archived,
			&source.Active,
			&source.UTCOffsetHours,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entidades de veiculação: %w", err)
		}
		sources = append(sources, source)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sources, nil
}

func (r *campaignRepository) scanCampaign(row *sql.Row) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	err := row.Scan(
		&campaign.ID,
		&campaign.AccountID,
		&campaign.Name,
		&campaign.Currency,
		&campaign.RealTimeStopEnabled,
		&campaign.UTCOffsetHours,
		&campaign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return campaign, nil
}
