package mysql

import (
	"context"
	"database/sql"
	"time"

	"hotel_platform/internal/domain"
)

const dateLayout = "2006-01-02"

type RoomRepo struct{ e execer }

func (r *RoomRepo) GetByID(ctx context.Context, id int64) (domain.Room, error) {
	return scanRoom(r.e.QueryRowContext(ctx, getRoomSQL, id))
}

func (r *RoomRepo) GetByRoomNumber(ctx context.Context, number string) (domain.Room, error) {
	return scanRoom(r.e.QueryRowContext(ctx, getRoomByNumberSQL, number))
}

func (r *RoomRepo) GetAll(ctx context.Context) ([]domain.Room, error) {
	return r.queryRooms(ctx, listRoomsSQL)
}

// GetAvailableRooms returns rooms free of conflicting reservations for
// [checkIn, checkOut], ordered by room number.
func (r *RoomRepo) GetAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	return r.queryRooms(ctx, availableRoomsSQL, checkOut.Format(dateLayout), checkIn.Format(dateLayout))
}

func (r *RoomRepo) Create(ctx context.Context, rm domain.Room) (int64, error) {
	res, err := r.e.ExecContext(ctx, insertRoomSQL, rm.RoomNumber, rm.Capacity, rm.Price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *RoomRepo) Update(ctx context.Context, rm domain.Room) (bool, error) {
	res, err := r.e.ExecContext(ctx, updateRoomSQL, rm.RoomNumber, rm.Capacity, rm.Price, rm.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *RoomRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.e.ExecContext(ctx, deleteRoomSQL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *RoomRepo) queryRooms(ctx context.Context, query string, args ...any) ([]domain.Room, error) {
	rows, err := r.e.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.RoomNumber, &rm.Capacity, &rm.Price); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func scanRoom(row *sql.Row) (domain.Room, error) {
	var rm domain.Room
	err := row.Scan(&rm.ID, &rm.RoomNumber, &rm.Capacity, &rm.Price)
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrNotFound
	}
	return rm, err
}
