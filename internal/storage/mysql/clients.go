package mysql

import (
	"context"
	"database/sql"

	"hotel_platform/internal/domain"
)

type ClientRepo struct{ e execer }

func (r *ClientRepo) GetByID(ctx context.Context, id int64) (domain.Client, error) {
	var c domain.Client
	err := r.e.QueryRowContext(ctx, getClientSQL, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone)
	if err == sql.ErrNoRows {
		return domain.Client{}, domain.ErrNotFound
	}
	return c, err
}

func (r *ClientRepo) GetAll(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.e.QueryContext(ctx, listClientsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientRepo) Create(ctx context.Context, c domain.Client) (int64, error) {
	res, err := r.e.ExecContext(ctx, insertClientSQL, c.Name, c.Email, c.Phone)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ClientRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.e.ExecContext(ctx, deleteClientSQL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
