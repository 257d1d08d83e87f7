package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-stop-service/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

const (
	realtimeSamplesTable    = "realtime_samples rs"
	campaignAggregatesTable = "campaign_aggregates ca"
)

// RealtimeSpendRepository persiste as séries temporais de gasto. Linhas são
// somente-adição; o valor corrente de uma chave é sempre o recorded_at mais
// recente.
type RealtimeSpendRepository interface {
	AppendSample(ctx context.Context, sample *domain.RealtimeSample) error
	AppendAggregate(ctx context.Context, aggregate *domain.CampaignAggregate) error
	// LatestAggregate retorna o agregado mais recente da campanha na data, ou nil
	LatestAggregate(ctx context.Context, campaignID string, date time.Time) (*domain.CampaignAggregate, error)
	// LatestAggregatesByDate retorna, por data do intervalo, o agregado mais recente
	LatestAggregatesByDate(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.CampaignAggregate, error)
	// FreshestAggregates retorna até limit agregados da data, do mais recente para o mais antigo
	FreshestAggregates(ctx context.Context, campaignID string, date time.Time, limit int) ([]*domain.CampaignAggregate, error)
	// LatestSamples retorna a amostra mais recente de cada (grupo de anúncios, fonte) na data
	LatestSamples(ctx context.Context, campaignID string, date time.Time) ([]*domain.RealtimeSample, error)
	DeleteSamplesOlderThan(ctx context.Context, days int) (int64, error)
	DeleteAggregatesOlderThan(ctx context.Context, days int) (int64, error)
}

type realtimeSpendRepository struct {
	conn *postgres.Connection
}

func NewRealtimeSpendRepository(conn *postgres.Connection) RealtimeSpendRepository {
	return &realtimeSpendRepository{
		conn: conn,
	}
}

func (r *realtimeSpendRepository) AppendSample(ctx context.Context, sample *domain.RealtimeSample) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("realtime_samples").
		Columns("campaign_id", "ad_group_id", "source_id", "date", "spend_local", "recorded_at").
		Values(
			sample.CampaignID,
			sample.AdGroupID,
			sample.SourceID,
			sample.Date.Format("2006-01-02"),
			sample.SpendLocal,
			sample.RecordedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *realtimeSpendRepository) AppendAggregate(ctx context.Context, aggregate *domain.CampaignAggregate) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_aggregates").
		Columns("campaign_id", "date", "spend_local", "recorded_at").
		Values(
			aggregate.CampaignID,
			aggregate.Date.Format("2006-01-02"),
			aggregate.SpendLocal,
			aggregate.RecordedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *realtimeSpendRepository) LatestAggregate(ctx context.Context, campaignID string, date time.Time) (*domain.CampaignAggregate, error) {
	aggregates, err := r.FreshestAggregates(ctx, campaignID, date, 1)
	if err != nil {
		return nil, err
	}

	if len(aggregates) == 0 {
		return nil, nil
	}

	return aggregates[0], nil
}

func (r *realtimeSpendRepository) LatestAggregatesByDate(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.CampaignAggregate, error) {
	query, args, err := squirrel.
		Select("DISTINCT ON (ca.date) ca.id, ca.campaign_id, ca.date, ca.spend_local, ca.recorded_at").
		From(campaignAggregatesTable).
		Where(squirrel.Eq{"ca.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"ca.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ca.date": endDate.Format("2006-01-02")}).
		OrderBy("ca.date ASC", "ca.recorded_at DESC").
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

	aggregates := make([]*domain.CampaignAggregate, 0)
	for rows.Next() {
		aggregate, err := r.scanAggregate(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregados: %w", err)
		}
		aggregates = append(aggregates, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}

func (r *realtimeSpendRepository) FreshestAggregates(ctx context.Context, campaignID string, date time.Time, limit int) ([]*domain.CampaignAggregate, error) {
	query, args, err := squirrel.
		Select("ca.id, ca.campaign_id, ca.date, ca.spend_local, ca.recorded_at").
		From(campaignAggregatesTable).
		Where(squirrel.Eq{"ca.campaign_id": campaignID, "ca.date": date.Format("2006-01-02")}).
		OrderBy("ca.recorded_at DESC").
		Limit(uint64(limit)).
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

	aggregates := make([]*domain.CampaignAggregate, 0)
	for rows.Next() {
		aggregate, err := r.scanAggregate(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregados: %w", err)
		}
		aggregates = append(aggregates, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}

func (r *realtimeSpendRepository) LatestSamples(ctx context.Context, campaignID string, date time.Time) ([]*domain.RealtimeSample, error) {
	query, args, err := squirrel.
		Select("DISTINCT ON (rs.ad_group_id, rs.source_id) rs.id, rs.campaign_id, rs.ad_group_id, rs.source_id, rs.date, rs.spend_local, rs.recorded_at").
		From(realtimeSamplesTable).
		Where(squirrel.Eq{"rs.campaign_id": campaignID, "rs.date": date.Format("2006-01-02")}).
		OrderBy("rs.ad_group_id ASC", "rs.source_id ASC", "rs.recorded_at DESC").
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

	samples := make([]*domain.RealtimeSample, 0)
	for rows.Next() {
		sample := &domain.RealtimeSample{}
		err := rows.Scan(
			&sample.ID,
			&sample.CampaignID,
			&sample.AdGroupID,
			&sample.SourceID,
			&sample.Date,
			&sample.SpendLocal,
			&sample.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear amostras: %w", err)
		}
		samples = append(samples, sample)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return samples, nil
}

func (r *realtimeSpendRepository) DeleteSamplesOlderThan(ctx context.Context, days int) (int64, error) {
	return r.deleteOlderThan(ctx, "realtime_samples", days)
}

func (r *realtimeSpendRepository) DeleteAggregatesOlderThan(ctx context.Context, days int) (int64, error) {
	return r.deleteOlderThan(ctx, "campaign_aggregates", days)
}

func (r *realtimeSpendRepository) deleteOlderThan(ctx context.Context, table string, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *realtimeSpendRepository) scanAggregate(rows *sql.Rows) (*domain.CampaignAggregate, error) {
	aggregate := &domain.CampaignAggregate{}

	err := rows.Scan(
		&aggregate.ID,
		&aggregate.CampaignID,
		&aggregate.Date,
		&aggregate.SpendLocal,
		&aggregate.RecordedAt,
	)
	if err != nil {
		return nil, err
	}

	return aggregate, nil
}
