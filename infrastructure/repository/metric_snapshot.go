package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

const (
	metricSnapshotsTable = "metric_snapshots ms"
)

type MetricSnapshotRepository interface {
	LatestPerPost(postIDs []string, asOf time.Time) (map[string]*domain.MetricSnapshot, error)
	GetHistory(postID string) ([]*domain.MetricSnapshot, error)
}

type metricSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricSnapshotRepository(conn *postgres.Connection) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

// LatestPerPost resolve, para cada post, o snapshot de maior observed_at que
// não excede o corte asOf. Posts sem nenhuma observação até o corte ficam
// fora do mapa; o chamador agrega as métricas deles como zero.
//
// O corte é obrigatório de propósito: consultas de "métricas atuais" sem
// limite observavam snapshots de meses futuros em relatórios históricos.
func (r *metricSnapshotRepository) LatestPerPost(postIDs []string, asOf time.Time) (map[string]*domain.MetricSnapshot, error) {
	if len(postIDs) == 0 {
		return map[string]*domain.MetricSnapshot{}, nil
	}

	query, args, err := squirrel.
		Select("DISTINCT ON (ms.post_id) ms.post_id, ms.observed_at, ms.reach, ms.impressions, ms.reactions, ms.comments, ms.shares, ms.saves, ms.plays").
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.post_id": postIDs}).
		Where(squirrel.LtOrEq{"ms.observed_at": asOf}).
		OrderBy("ms.post_id", "ms.observed_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make(map[string]*domain.MetricSnapshot)
	for rows.Next() {
		snapshot := &domain.MetricSnapshot{}
		if err := rows.Scan(
			&snapshot.PostID,
			&snapshot.ObservedAt,
			&snapshot.Reach,
			&snapshot.Impressions,
			&snapshot.Reactions,
			&snapshot.Comments,
			&snapshot.Shares,
			&snapshot.Saves,
			&snapshot.Plays,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot de métricas: %w", err)
		}
		snapshots[snapshot.PostID] = snapshot
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// GetHistory retorna todos os snapshots de um post em ordem de observação.
func (r *metricSnapshotRepository) GetHistory(postID string) ([]*domain.MetricSnapshot, error) {
	query, args, err := squirrel.
		Select("ms.post_id, ms.observed_at, ms.reach, ms.impressions, ms.reactions, ms.comments, ms.shares, ms.saves, ms.plays").
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.post_id": postID}).
		OrderBy("ms.observed_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.MetricSnapshot{}
		if err := rows.Scan(
			&snapshot.PostID,
			&snapshot.ObservedAt,
			&snapshot.Reach,
			&snapshot.Impressions,
			&snapshot.Reactions,
			&snapshot.Comments,
			&snapshot.Shares,
			&snapshot.Saves,
			&snapshot.Plays,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot de métricas: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
