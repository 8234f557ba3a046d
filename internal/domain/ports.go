package domain

import (
	"context"
	"time"
)

type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (Client, error)
	GetAll(ctx context.Context) ([]Client, error)
	Create(ctx context.Context, c Client) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (Room, error)
	GetAll(ctx context.Context) ([]Room, error)
	GetByRoomNumber(ctx context.Context, number string) (Room, error)
	GetAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]Room, error)
	Create(ctx context.Context, r Room) (int64, error)
	Update(ctx context.Context, r Room) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (Reservation, error)
	GetAll(ctx context.Context) ([]Reservation, error)
	GetByClientID(ctx context.Context, clientID int64) ([]Reservation, error)
	GetByRoomID(ctx context.Context, roomID int64) ([]Reservation, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]Reservation, error)
	// GetWithDetails loads the reservation with its client and room attached.
	GetWithDetails(ctx context.Context, id int64) (Reservation, error)
	Create(ctx context.Context, r Reservation) (int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to ReservationStatus) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (Payment, error)
	GetAll(ctx context.Context) ([]Payment, error)
	GetByReservationID(ctx context.Context, reservationID int64) ([]Payment, error)
	Create(ctx context.Context, p Payment) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UnitOfWork groups repository calls on one transaction. Obtained from a
// TxStarter; Rollback after Commit is a no-op so it can run deferred.
type UnitOfWork interface {
	Clients() ClientRepository
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository

	Commit() error
	Rollback() error
}

type TxStarter interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// Store exposes the same repositories outside any transaction.
type Store interface {
	TxStarter
	Clients() ClientRepository
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
}

// ReviewsQuery pages and filters room reviews.
type ReviewsQuery struct {
	RoomID     int64
	Page       int
	PageSize   int
	MinRating  *int
	IsVerified *bool
	IsApproved *bool
}

type ReviewsPage struct {
	Items      []Review `json:"items"`
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
}

func (p ReviewsPage) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

type ReviewRepository interface {
	GetByID(ctx context.Context, id int64) (Review, error)
	GetPaged(ctx context.Context, q ReviewsQuery) (ReviewsPage, error)
	Create(ctx context.Context, r Review) (int64, error)
	Update(ctx context.Context, r Review) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (ServiceRequest, error)
	GetPending(ctx context.Context) ([]ServiceRequest, error)
	GetByRoomID(ctx context.Context, roomID int64) ([]ServiceRequest, error)
	Create(ctx context.Context, q ServiceRequest) (int64, error)
	Update(ctx context.Context, q ServiceRequest) (bool, error)
}

// Cache is the read/write surface the services see; the two-level composite
// and both single tiers all implement it.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	DelPrefix(ctx context.Context, prefix string) error
}
