package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

const (
	adsCacheTable = "ads_cache ac"
)

// AdsCacheEntry é uma entrada do cache de anúncios: as campanhas de uma conta
// de anúncios sincronizadas para exatamente um mês, com o resumo da conta.
// O job de sincronização escreve; o agregador apenas lê.
type AdsCacheEntry struct {
	ID          int64               `json:"id"`
	AdAccountID string              `json:"ad_account_id"`
	Month       string              `json:"month"` // formato YYYY-MM
	Campaigns   []*domain.AdCampaign `json:"campaigns"`
	Summary     *domain.AdsStats    `json:"summary,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type AdsCacheRepository interface {
	GetCampaignsByMonth(month time.Time) ([]*domain.AdCampaign, error)
	GetEntriesByMonth(month time.Time) ([]*AdsCacheEntry, error)
	SaveOrUpdate(entry *AdsCacheEntry) error
	DeleteOlderThan(months int) (int64, error)
	GetSyncedMonths() ([]string, error)
}

type adsCacheRepository struct {
	conn *postgres.Connection
}

func NewAdsCacheRepository(conn *postgres.Connection) AdsCacheRepository {
	return &adsCacheRepository{
		conn: conn,
	}
}

// GetCampaignsByMonth retorna todas as campanhas sincronizadas para o mês,
// de todas as contas de anúncios, já desserializadas. A atribuição por
// cliente acontece na camada de agregação.
func (r *adsCacheRepository) GetCampaignsByMonth(month time.Time) ([]*domain.AdCampaign, error) {
	entries, err := r.GetEntriesByMonth(month)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.AdCampaign, 0)
	for _, entry := range entries {
		campaigns = append(campaigns, entry.Campaigns...)
	}

	return campaigns, nil
}

func (r *adsCacheRepository) GetEntriesByMonth(month time.Time) ([]*AdsCacheEntry, error) {
	period := utils.FormatMonth(month)

	query, args, err := squirrel.
		Select("ac.id, ac.ad_account_id, ac.month, ac.campaigns, ac.summary, ac.created_at, ac.updated_at").
		From(adsCacheTable).
		Where(squirrel.Eq{"ac.month": period}).
		OrderBy("ac.ad_account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*AdsCacheEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada do cache de anúncios: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *adsCacheRepository) SaveOrUpdate(entry *AdsCacheEntry) error {
	campaignsJSON, err := json.Marshal(entry.Campaigns)
	if err != nil {
		return fmt.Errorf("erro ao serializar campanhas para JSON: %w", err)
	}

	var summaryJSON []byte
	if entry.Summary != nil {
		summaryJSON, err = json.Marshal(entry.Summary)
		if err != nil {
			return fmt.Errorf("erro ao serializar resumo para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("ads_cache").
		Columns("ad_account_id", "month", "campaigns", "summary").
		Values(
			entry.AdAccountID,
			entry.Month,
			campaignsJSON,
			summaryJSON,
		).
		Suffix(`
			ON CONFLICT (ad_account_id, month) DO UPDATE SET
				campaigns = EXCLUDED.campaigns,
				summary = EXCLUDED.summary,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adsCacheRepository) DeleteOlderThan(months int) (int64, error) {
	cutoffTime := time.Now().AddDate(0, -months, 0)
	cutoffPeriod := utils.FormatMonth(cutoffTime)

	query := squirrel.Delete("ads_cache").
		Where(squirrel.Lt{"month": cutoffPeriod}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// GetSyncedMonths retorna todos os meses presentes no cache, em ordem
// crescente do formato YYYY-MM.
func (r *adsCacheRepository) GetSyncedMonths() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT month").
		From("ads_cache").
		OrderBy("month ASC").
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

	months := make([]string, 0)
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("erro ao escanear mês: %w", err)
		}
		months = append(months, month)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return months, nil
}

func (r *adsCacheRepository) scanEntry(rows *sql.Rows) (*AdsCacheEntry, error) {
	entry := &AdsCacheEntry{}
	var campaignsJSON, summaryJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.AdAccountID,
		&entry.Month,
		&campaignsJSON,
		&summaryJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if campaignsJSON != nil {
		if err := json.Unmarshal(campaignsJSON, &entry.Campaigns); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de campanhas: %w", err)
		}
	}

	if summaryJSON != nil {
		summary := &domain.AdsStats{}
		if err := json.Unmarshal(summaryJSON, summary); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de resumo: %w", err)
		}
		entry.Summary = summary
	}

	return entry, nil
}
