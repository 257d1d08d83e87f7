package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-stop-service/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
)

const (
	auditLogTable = "campaign_stop_audit_log al"
)

// AuditLogRepository é a trilha de decisão somente-adição de cada avaliação
type AuditLogRepository interface {
	// Append grava a entrada. Recebe um Queryer para poder rodar na mesma
	// transação da mutação do registro de controle.
	Append(ctx context.Context, q postgres.Queryer, entry *domain.AuditEntry) error
	ListByCampaignID(ctx context.Context, campaignID string, limit int) ([]*domain.AuditEntry, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type auditLogRepository struct {
	conn *postgres.Connection
}

func NewAuditLogRepository(conn *postgres.Connection) AuditLogRepository {
	return &auditLogRepository{
		conn: conn,
	}
}

func (r *auditLogRepository) Append(ctx context.Context, q postgres.Queryer, entry *domain.AuditEntry) error {
	var contextJSON []byte
	var err error

	if entry.Context != nil {
		contextJSON, err = json.Marshal(entry.Context)
		if err != nil {
			return fmt.Errorf("erro ao serializar contexto para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_stop_audit_log").
		Columns("campaign_id", "event_kind", "context", "recorded_at").
		Values(
			entry.CampaignID,
			string(entry.EventKind),
			contextJSON,
			entry.RecordedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = q.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *auditLogRepository) ListByCampaignID(ctx context.Context, campaignID string, limit int) ([]*domain.AuditEntry, error) {
	query, args, err := squirrel.
		Select("al.id, al.campaign_id, al.event_kind, al.context, al.recorded_at").
		From(auditLogTable).
		Where(squirrel.Eq{"al.campaign_id": campaignID}).
		OrderBy("al.recorded_at DESC").
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

	entries := make([]*domain.AuditEntry, 0)
	for rows.Next() {
		entry := &domain.AuditEntry{}
		var rawKind string
		var contextJSON []byte

		err := rows.Scan(
			&entry.ID,
			&entry.CampaignID,
			&rawKind,
			&contextJSON,
			&entry.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear trilha de auditoria: %w", err)
		}

		entry.EventKind = domain.AuditEventKind(rawKind)
		if contextJSON != nil {
			if err := json.Unmarshal(contextJSON, &entry.Context); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de contexto: %w", err)
			}
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *auditLogRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("campaign_stop_audit_log").
		Where(squirrel.Lt{"recorded_at": cutoff}).
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
