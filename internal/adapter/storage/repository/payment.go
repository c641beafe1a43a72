package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/checkout/internal/core/domain"
)

func (r *Repository) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Insert("payments").
		Columns("order_id", "amount", "method", "status").
		Values(payment.OrderID, payment.Amount, payment.Method, payment.Status).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&payment.ID)
	if err != nil {
		return nil, translateError(err)
	}

	return payment, nil
}

func (r *Repository) ReadPayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "amount", "method", "status").
		From("payments").
		Where(sq.Eq{"id": paymentID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &payment, nil
}
