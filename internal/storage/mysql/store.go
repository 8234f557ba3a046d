package mysql

import (
	"context"
	"database/sql"

	"hotel_platform/internal/adapters/observability"
	"hotel_platform/internal/domain"
)

// execer is satisfied by both *sql.DB and *sql.Tx so the same repositories
// serve plain reads and transactional workflows.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles the reservation-side repositories over one *sql.DB and
// starts units of work.
type Store struct {
	db *sql.DB

	clients      *ClientRepo
	rooms        *RoomRepo
	reservations *ReservationRepo
	payments     *PaymentRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		clients:      &ClientRepo{e: db},
		rooms:        &RoomRepo{e: db},
		reservations: &ReservationRepo{e: db},
		payments:     &PaymentRepo{e: db},
	}
}

func (s *Store) Clients() domain.ClientRepository           { return s.clients }
func (s *Store) Rooms() domain.RoomRepository               { return s.rooms }
func (s *Store) Reservations() domain.ReservationRepository { return s.reservations }
func (s *Store) Payments() domain.PaymentRepository         { return s.payments }

// Begin opens a transaction and hands back repositories bound to it.
func (s *Store) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &UnitOfWork{
		tx:           tx,
		clients:      &ClientRepo{e: tx},
		rooms:        &RoomRepo{e: tx},
		reservations: &ReservationRepo{e: tx},
		payments:     &PaymentRepo{e: tx},
	}, nil
}

// UnitOfWork scopes repository calls to one *sql.Tx. Rollback after a
// successful Commit is a no-op, so callers can run it deferred.
type UnitOfWork struct {
	tx   *sql.Tx
	done bool

	clients      *ClientRepo
	rooms        *RoomRepo
	reservations *ReservationRepo
	payments     *PaymentRepo
}

func (u *UnitOfWork) Clients() domain.ClientRepository           { return u.clients }
func (u *UnitOfWork) Rooms() domain.RoomRepository               { return u.rooms }
func (u *UnitOfWork) Reservations() domain.ReservationRepository { return u.reservations }
func (u *UnitOfWork) Payments() domain.PaymentRepository         { return u.payments }

func (u *UnitOfWork) Commit() error {
	if u.done {
		return nil
	}
	u.done = true
	return u.tx.Commit()
}

func (u *UnitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	observability.ObserveRollback()
	return u.tx.Rollback()
}

var _ domain.Store = (*Store)(nil)
