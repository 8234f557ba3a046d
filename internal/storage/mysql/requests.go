package mysql

import (
	"context"
	"database/sql"

	"hotel_platform/internal/domain"
)

type RequestRepo struct{ db *sql.DB }

func NewRequestRepo(db *sql.DB) *RequestRepo { return &RequestRepo{db: db} }

func (r *RequestRepo) GetByID(ctx context.Context, id int64) (domain.ServiceRequest, error) {
	q, err := scanRequestFrom(r.db.QueryRowContext(ctx, getRequestSQL, id))
	if err == sql.ErrNoRows {
		return domain.ServiceRequest{}, domain.ErrNotFound
	}
	return q, err
}

func (r *RequestRepo) GetPending(ctx context.Context) ([]domain.ServiceRequest, error) {
	return r.queryRequests(ctx, pendingRequestsSQL)
}

func (r *RequestRepo) GetByRoomID(ctx context.Context, roomID int64) ([]domain.ServiceRequest, error) {
	return r.queryRequests(ctx, requestsByRoomSQL, roomID)
}

func (r *RequestRepo) Create(ctx context.Context, q domain.ServiceRequest) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertRequestSQL,
		q.ClientID, q.RoomID, q.Text, q.Category, q.Priority, string(q.Status), q.Date.UTC())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *RequestRepo) Update(ctx context.Context, q domain.ServiceRequest) (bool, error) {
	var respDate any
	if q.ResponseDate != nil {
		respDate = q.ResponseDate.UTC()
	}
	res, err := r.db.ExecContext(ctx, updateRequestSQL,
		string(q.Status), q.Priority, q.Response, respDate, q.HandledBy, q.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *RequestRepo) queryRequests(ctx context.Context, query string, args ...any) ([]domain.ServiceRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ServiceRequest
	for rows.Next() {
		q, err := scanRequestFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func scanRequestFrom(s rowScanner) (domain.ServiceRequest, error) {
	var q domain.ServiceRequest
	var status string
	var response sql.NullString
	var respDate sql.NullTime
	var handledBy sql.NullInt64
	err := s.Scan(&q.ID, &q.ClientID, &q.RoomID, &q.Text, &q.Category, &q.Priority,
		&status, &q.Date, &response, &respDate, &handledBy)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	q.Status = domain.RequestStatus(status)
	if response.Valid {
		v := response.String
		q.Response = &v
	}
	if respDate.Valid {
		v := respDate.Time
		q.ResponseDate = &v
	}
	if handledBy.Valid {
		v := handledBy.Int64
		q.HandledBy = &v
	}
	return q, nil
}
