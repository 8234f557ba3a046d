package mysql

import (
	"context"
	"database/sql"
	"time"

	"hotel_platform/internal/domain"
)

type ReservationRepo struct{ e execer }

func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (domain.Reservation, error) {
	var rv domain.Reservation
	var status string
	err := r.e.QueryRowContext(ctx, getReservationSQL, id).
		Scan(&rv.ID, &rv.ClientID, &rv.RoomID, &rv.CheckIn, &rv.CheckOut, &status)
	if err == sql.ErrNoRows {
		return domain.Reservation{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Reservation{}, err
	}
	rv.Status = domain.ReservationStatus(status)
	return rv, nil
}

func (r *ReservationRepo) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	return r.queryReservations(ctx, listReservationsSQL)
}

func (r *ReservationRepo) GetByClientID(ctx context.Context, clientID int64) ([]domain.Reservation, error) {
	return r.queryReservations(ctx, reservationsByClientSQL, clientID)
}

func (r *ReservationRepo) GetByRoomID(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	return r.queryReservations(ctx, reservationsByRoomSQL, roomID)
}

func (r *ReservationRepo) GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.Reservation, error) {
	return r.queryReservations(ctx, reservationsByDateRangeSQL, to.Format(dateLayout), from.Format(dateLayout))
}

func (r *ReservationRepo) GetWithDetails(ctx context.Context, id int64) (domain.Reservation, error) {
	var rv domain.Reservation
	var status string
	var c domain.Client
	var rm domain.Room
	err := r.e.QueryRowContext(ctx, getReservationDetailsSQL, id).Scan(
		&rv.ID, &rv.ClientID, &rv.RoomID, &rv.CheckIn, &rv.CheckOut, &status,
		&c.Name, &c.Email, &c.Phone,
		&rm.RoomNumber, &rm.Capacity, &rm.Price,
	)
	if err == sql.ErrNoRows {
		return domain.Reservation{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Reservation{}, err
	}
	rv.Status = domain.ReservationStatus(status)
	c.ID = rv.ClientID
	rm.ID = rv.RoomID
	rv.Client = &c
	rv.Room = &rm
	return rv, nil
}

func (r *ReservationRepo) Create(ctx context.Context, rv domain.Reservation) (int64, error) {
	res, err := r.e.ExecContext(ctx, insertReservationSQL,
		rv.ClientID, rv.RoomID,
		rv.CheckIn.Format(dateLayout), rv.CheckOut.Format(dateLayout),
		string(rv.Status))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateStatus is conditional on the status the caller last observed; a
// concurrent transition makes it report false instead of overwriting.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) (bool, error) {
	res, err := r.e.ExecContext(ctx, updateReservationStatusSQL, string(to), id, string(from))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ReservationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.e.ExecContext(ctx, deleteReservationSQL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ReservationRepo) queryReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.e.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		var status string
		if err := rows.Scan(&rv.ID, &rv.ClientID, &rv.RoomID, &rv.CheckIn, &rv.CheckOut, &status); err != nil {
			return nil, err
		}
		rv.Status = domain.ReservationStatus(status)
		out = append(out, rv)
	}
	return out, rows.Err()
}
