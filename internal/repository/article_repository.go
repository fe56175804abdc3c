package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-api/internal/domain"
)

const articleColumns = `a.id, a.title, a.content, a.cover_image, a.images, a.category_id, c.name,
	a.view_count, a.status, a.article_type, a.tag, a.create_time, a.update_time`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// FindByID returns the article with the given id, or (nil, nil) when no such
// article exists. The category name is resolved via a left join.
func (r *PostgresArticleRepository) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE a.id = $1
	`, articleColumns)

	a, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query article: %w", err)
	}
	return a, nil
}

// FindFiltered returns one page of articles matching the query predicates
// together with the total match count. Predicates combine with AND; nil
// predicates contribute no condition.
func (r *PostgresArticleRepository) FindFiltered(ctx context.Context, q ArticleQuery) ([]domain.Article, int64, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(column string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if q.Status != nil {
		addCondition("a.status", *q.Status)
	}
	if q.CategoryID != nil {
		addCondition("a.category_id", *q.CategoryID)
	}
	if q.ArticleType != nil {
		addCondition("a.article_type", *q.ArticleType)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM articles a %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	orderBy := "a.create_time DESC"
	if q.Sort == domain.SortByViewCountDesc {
		orderBy = "a.view_count DESC"
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		LEFT JOIN categories c ON c.id = a.category_id
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, articleColumns, where, orderBy, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, q.Limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read articles: %w", err)
	}

	return articles, total, nil
}

// Create inserts the article and fills in the store-assigned id and
// timestamps.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (title, content, cover_image, images, category_id, view_count, status, article_type, tag)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, create_time, update_time
	`,
		article.Title, article.Content, article.CoverImage, article.Images,
		article.CategoryID, article.ViewCount, article.Status, article.ArticleType, article.Tag,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// Update replaces all mutable columns of the article and refreshes the update
// timestamp, writing the new timestamp back into the entity.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET title = $2, content = $3, cover_image = $4, images = $5, category_id = $6,
			view_count = $7, status = $8, article_type = $9, tag = $10, update_time = NOW()
		WHERE id = $1
		RETURNING update_time
	`,
		article.ID, article.Title, article.Content, article.CoverImage, article.Images,
		article.CategoryID, article.ViewCount, article.Status, article.ArticleType, article.Tag,
	).Scan(&article.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("update article %d: no such row", article.ID)
		}
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// ExistsByID reports whether an article with the given id exists.
func (r *PostgresArticleRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// DeleteByID removes the article with the given id.
func (r *PostgresArticleRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM articles WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.CoverImage, &a.Images, &a.CategoryID, &a.CategoryName,
		&a.ViewCount, &a.Status, &a.ArticleType, &a.Tag, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if a.Images == nil {
		a.Images = []string{}
	}
	return &a, nil
}
