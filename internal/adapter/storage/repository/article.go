package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) ListArticles(ctx context.Context) ([]*domain.Article, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "price").
		From("articles").
		OrderBy("id")

	return r.queryArticles(ctx, statement)
}

func (r *Repository) ListArticlesByIDs(ctx context.Context, ids []int64) ([]*domain.Article, error) {
	if len(ids) == 0 {
		return []*domain.Article{}, nil
	}

	statement := r.db.QueryBuilder.
		Select("id", "name", "price").
		From("articles").
		Where(sq.Eq{"id": ids}).
		OrderBy("id")

	return r.queryArticles(ctx, statement)
}

func (r *Repository) queryArticles(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Article, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Article, 0)
	for rows.Next() {
		article := domain.Article{}
		err := rows.Scan(
			&article.ID,
			&article.Name,
			&article.Price,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &article)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

// CreateArticles inserts all articles in one statement and fills in their ids.
func (r *Repository) CreateArticles(ctx context.Context, articles []*domain.Article) ([]*domain.Article, error) {
	if len(articles) == 0 {
		return []*domain.Article{}, nil
	}

	statement := r.db.QueryBuilder.
		Insert("articles").
		Columns("name", "price")
	for _, a := range articles {
		statement = statement.Values(a.Name, a.Price)
	}
	statement = statement.Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, translateError(err)
	}
	if len(ids) != len(articles) {
		return nil, fmt.Errorf("inserted %d articles, got %d ids", len(articles), len(ids))
	}

	for i, a := range articles {
		a.ID = ids[i]
	}
	return articles, nil
}
