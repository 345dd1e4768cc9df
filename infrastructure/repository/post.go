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
	postsTable = "posts p"
)

type PostRepository interface {
	ListByAccountsAndWindow(accountIDs []string, platform domain.Platform, start, end time.Time) ([]*domain.Post, error)
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

// ListByAccountsAndWindow retorna os posts criados na janela [start, end)
// pelas contas informadas. A janela filtra pelo created_time do post; o corte
// das métricas é responsabilidade do repositório de snapshots.
func (r *postRepository) ListByAccountsAndWindow(accountIDs []string, platform domain.Platform, start, end time.Time) ([]*domain.Post, error) {
	if len(accountIDs) == 0 {
		return []*domain.Post{}, nil
	}

	query, args, err := squirrel.
		Select("p.id, p.account_id, p.platform, p.created_time, p.body, p.media_type, p.permalink").
		From(postsTable).
		Where(squirrel.Eq{"p.account_id": accountIDs, "p.platform": string(platform)}).
		Where(squirrel.GtOrEq{"p.created_time": start}).
		Where(squirrel.Lt{"p.created_time": end}).
		OrderBy("p.created_time ASC").
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

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post := &domain.Post{}
		if err := rows.Scan(
			&post.ID,
			&post.AccountID,
			&post.Platform,
			&post.CreatedTime,
			&post.Body,
			&post.MediaType,
			&post.Permalink,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear post: %w", err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, nil
}
