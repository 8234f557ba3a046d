package mysql

import (
	"context"
	"database/sql"

	"hotel_platform/internal/domain"
)

type PaymentRepo struct{ e execer }

func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (domain.Payment, error) {
	var p domain.Payment
	err := r.e.QueryRowContext(ctx, getPaymentSQL, id).
		Scan(&p.ID, &p.ReservationID, &p.Amount, &p.Method, &p.PaymentDate)
	if err == sql.ErrNoRows {
		return domain.Payment{}, domain.ErrNotFound
	}
	return p, err
}

func (r *PaymentRepo) GetAll(ctx context.Context) ([]domain.Payment, error) {
	return r.queryPayments(ctx, listPaymentsSQL)
}

func (r *PaymentRepo) GetByReservationID(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	return r.queryPayments(ctx, paymentsByReservationSQL, reservationID)
}

func (r *PaymentRepo) Create(ctx context.Context, p domain.Payment) (int64, error) {
	res, err := r.e.ExecContext(ctx, insertPaymentSQL,
		p.ReservationID, p.Amount, p.Method, p.PaymentDate.UTC())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *PaymentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.e.ExecContext(ctx, deletePaymentSQL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *PaymentRepo) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.e.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.Method, &p.PaymentDate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
