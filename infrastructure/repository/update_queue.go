package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-stop-service/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

// UpdateQueueRepository é a fila de eventos de atualização apoiada no banco.
// A remoção usa SKIP LOCKED para que execuções concorrentes de outros
// consumidores não disputem as mesmas linhas.
type UpdateQueueRepository interface {
	Enqueue(ctx context.Context, campaignID string, kind domain.EventKind) error
	// DequeueBatch remove e retorna até limit eventos, na ordem de chegada
	DequeueBatch(ctx context.Context, limit int) ([]*domain.UpdateEvent, error)
	PendingCount(ctx context.Context) (int64, error)
}

type updateQueueRepository struct {
	conn *postgres.Connection
}

func NewUpdateQueueRepository(conn *postgres.Connection) UpdateQueueRepository {
	return &updateQueueRepository{
		conn: conn,
	}
}

func (r *updateQueueRepository) Enqueue(ctx context.Context, campaignID string, kind domain.EventKind) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_update_events").
		Columns("campaign_id", "kind", "enqueued_at").
		Values(campaignID, string(kind), time.Now()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

const dequeueBatchQuery = `
	DELETE FROM campaign_update_events
	WHERE id IN (
		SELECT id FROM campaign_update_events
		ORDER BY enqueued_at ASC, id ASC
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	)
	RETURNING id, campaign_id, kind, enqueued_at
`

func (r *updateQueueRepository) DequeueBatch(ctx context.Context, limit int) ([]*domain.UpdateEvent, error) {
	rows, err := r.conn.QueryContext(ctx, dequeueBatchQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.UpdateEvent, 0)
	for rows.Next() {
		event := &domain.UpdateEvent{}
		var rawKind string

		err := rows.Scan(
			&event.ID,
			&event.CampaignID,
			&rawKind,
			&event.EnqueuedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear eventos da fila: %w", err)
		}

		event.Kind = domain.EventKind(rawKind)
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

func (r *updateQueueRepository) PendingCount(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("campaign_update_events").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem de eventos: %w", err)
	}

	return count, nil
}
