package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_platform/internal/domain"
)

type ReservationService struct {
	store domain.Store
}

func NewReservationService(store domain.Store) *ReservationService {
	return &ReservationService{store: store}
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (domain.Reservation, error) {
	return s.store.Reservations().GetByID(ctx, id)
}

func (s *ReservationService) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	return s.store.Reservations().GetAll(ctx)
}

func (s *ReservationService) GetByClientID(ctx context.Context, clientID int64) ([]domain.Reservation, error) {
	return s.store.Reservations().GetByClientID(ctx, clientID)
}

func (s *ReservationService) GetWithDetails(ctx context.Context, id int64) (domain.Reservation, error) {
	return s.store.Reservations().GetWithDetails(ctx, id)
}

func (s *ReservationService) GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.Reservation, error) {
	if from.After(to) {
		return nil, domain.Validationf("start date cannot be after end date")
	}
	return s.store.Reservations().GetByDateRange(ctx, from, to)
}

// Create validates the date range, then checks client, room and availability
// inside one transaction before inserting the reservation as pending.
func (s *ReservationService) Create(ctx context.Context, clientID, roomID int64, checkIn, checkOut time.Time) (domain.Reservation, error) {
	checkIn, checkOut = dateOnly(checkIn), dateOnly(checkOut)
	if !checkOut.After(checkIn) {
		return domain.Reservation{}, domain.Validationf("check-out date must be after check-in date")
	}
	if checkIn.Before(today()) {
		return domain.Reservation{}, domain.Validationf("check-in date cannot be in the past")
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return domain.Reservation{}, err
	}
	defer rollback(uow, "reservation_create")

	if _, err := uow.Clients().GetByID(ctx, clientID); err != nil {
		return domain.Reservation{}, err
	}
	room, err := uow.Rooms().GetByID(ctx, roomID)
	if err != nil {
		return domain.Reservation{}, err
	}

	available, err := uow.Rooms().GetAvailableRooms(ctx, checkIn, checkOut)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !containsRoom(available, roomID) {
		return domain.Reservation{}, domain.Conflictf("room %s is not available for the selected dates", room.RoomNumber)
	}

	id, err := uow.Reservations().Create(ctx, domain.Reservation{
		ClientID: clientID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   domain.StatusPending,
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	if err := uow.Commit(); err != nil {
		return domain.Reservation{}, err
	}

	log.Info().Int64("reservation_id", id).Int64("client_id", clientID).
		Int64("room_id", roomID).Msg("reservation created")

	return s.store.Reservations().GetWithDetails(ctx, id)
}

// UpdateStatus applies one transition of the status machine.
func (s *ReservationService) UpdateStatus(ctx context.Context, id int64, next domain.ReservationStatus) (domain.Reservation, error) {
	rv, err := s.store.Reservations().GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !rv.Status.CanTransitionTo(next) {
		return domain.Reservation{}, domain.Conflictf("cannot change status from %q to %q", rv.Status, next)
	}

	ok, err := s.store.Reservations().UpdateStatus(ctx, id, rv.Status, next)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !ok {
		return domain.Reservation{}, domain.Conflictf("reservation %d was modified concurrently", id)
	}

	rv.Status = next
	log.Info().Int64("reservation_id", id).Str("status", string(next)).Msg("reservation status updated")
	return rv, nil
}

func (s *ReservationService) CheckIn(ctx context.Context, id int64) (domain.Reservation, error) {
	return s.UpdateStatus(ctx, id, domain.StatusCheckedIn)
}

func (s *ReservationService) CheckOut(ctx context.Context, id int64) (domain.Reservation, error) {
	return s.UpdateStatus(ctx, id, domain.StatusCheckedOut)
}

func (s *ReservationService) Cancel(ctx context.Context, id int64) (domain.Reservation, error) {
	return s.UpdateStatus(ctx, id, domain.StatusCancelled)
}

// Delete removes a reservation; only cancelled ones may go.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	rv, err := s.store.Reservations().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rv.Status != domain.StatusCancelled {
		return domain.Conflictf("can only delete cancelled reservations")
	}
	_, err = s.store.Reservations().Delete(ctx, id)
	return err
}

func containsRoom(rooms []domain.Room, id int64) bool {
	for _, r := range rooms {
		if r.ID == id {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func today() time.Time { return dateOnly(time.Now().UTC()) }

// rollback runs deferred around transactional workflows; it is a no-op after
// commit.
func rollback(uow domain.UnitOfWork, workflow string) {
	if err := uow.Rollback(); err != nil {
		log.Error().Err(err).Str("workflow", workflow).Msg("rollback failed")
	}
}
