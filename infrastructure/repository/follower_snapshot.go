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
	followerSnapshotsTable = "follower_snapshots fs"
)

type FollowerSnapshotRepository interface {
	LatestPerAccount(accountIDs []string, asOf time.Time) (map[string]*domain.FollowerSnapshot, error)
}

type followerSnapshotRepository struct {
	conn *postgres.Connection
}

func NewFollowerSnapshotRepository(conn *postgres.Connection) FollowerSnapshotRepository {
	return &followerSnapshotRepository{
		conn: conn,
	}
}

// LatestPerAccount resolve, para cada conta, o snapshot diário de seguidores
// de maior snapshot_date que não excede asOf (mesmo padrão do repositório de
// métricas). Contas sem histórico até asOf ficam fora do mapa — é assim que
// o cálculo de crescimento distingue "sem dados" de "zero seguidores".
// Havendo mais de uma linha para o mesmo dia, a mais recente vence.
func (r *followerSnapshotRepository) LatestPerAccount(accountIDs []string, asOf time.Time) (map[string]*domain.FollowerSnapshot, error) {
	if len(accountIDs) == 0 {
		return map[string]*domain.FollowerSnapshot{}, nil
	}

	query, args, err := squirrel.
		Select("DISTINCT ON (fs.account_id) fs.account_id, fs.platform, fs.snapshot_date, fs.follower_count").
		From(followerSnapshotsTable).
		Where(squirrel.Eq{"fs.account_id": accountIDs}).
		Where(squirrel.LtOrEq{"fs.snapshot_date": asOf}).
		OrderBy("fs.account_id", "fs.snapshot_date DESC", "fs.id DESC").
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

	snapshots := make(map[string]*domain.FollowerSnapshot)
	for rows.Next() {
		snapshot := &domain.FollowerSnapshot{}
		if err := rows.Scan(
			&snapshot.AccountID,
			&snapshot.Platform,
			&snapshot.SnapshotDate,
			&snapshot.FollowerCount,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot de seguidores: %w", err)
		}
		snapshots[snapshot.AccountID] = snapshot
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
