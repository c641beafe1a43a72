package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CreateOrder writes the order header and all of its lines in one
// transaction, so an order never exists without the lines it was created with.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("status").
			Values(order.Status).
			Suffix("RETURNING id")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
		if err != nil {
			return err
		}

		if len(order.Lines) == 0 {
			return nil
		}

		linesSt := r.db.QueryBuilder.
			Insert("order_lines").
			Columns("order_id", "article_id", "quantity")
		for i := range order.Lines {
			order.Lines[i].OrderID = order.ID
			linesSt = linesSt.Values(order.ID, order.Lines[i].ArticleID, order.Lines[i].Quantity)
		}

		sql, args, err = linesSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, translateError(err)
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "status").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Status,
	)
	if err != nil {
		return nil, translateError(err)
	}

	linesSt := r.db.QueryBuilder.
		Select("order_id", "article_id", "quantity").
		From("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("article_id")

	sql, args, err = linesSt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	order.Lines, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OrderLine, error) {
		line := domain.OrderLine{}
		err := row.Scan(&line.OrderID, &line.ArticleID, &line.Quantity)
		return line, err
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrder overwrites the order status. Lines are not touched.
func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", order.Status).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNoUpdatedData
	}

	return order, nil
}

// DeleteOrder removes the order. Its lines go with it through the
// ON DELETE CASCADE foreign key.
func (r *Repository) DeleteOrder(ctx context.Context, orderID int64) error {
	statement := r.db.QueryBuilder.
		Delete("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}
