package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_platform/internal/domain"
)

type RoomService struct {
	store domain.Store
}

func NewRoomService(store domain.Store) *RoomService {
	return &RoomService{store: store}
}

func (s *RoomService) GetByID(ctx context.Context, id int64) (domain.Room, error) {
	return s.store.Rooms().GetByID(ctx, id)
}

func (s *RoomService) GetAll(ctx context.Context) ([]domain.Room, error) {
	return s.store.Rooms().GetAll(ctx)
}

func (s *RoomService) GetByRoomNumber(ctx context.Context, number string) (domain.Room, error) {
	if strings.TrimSpace(number) == "" {
		return domain.Room{}, domain.Validationf("room number cannot be empty")
	}
	return s.store.Rooms().GetByRoomNumber(ctx, number)
}

// Available lists rooms free for [checkIn, checkOut], ordered by room number.
func (s *RoomService) Available(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	checkIn, checkOut = dateOnly(checkIn), dateOnly(checkOut)
	if !checkOut.After(checkIn) {
		return nil, domain.Validationf("check-out date must be after check-in date")
	}
	if checkIn.Before(today()) {
		return nil, domain.Validationf("check-in date cannot be in the past")
	}
	return s.store.Rooms().GetAvailableRooms(ctx, checkIn, checkOut)
}

func (s *RoomService) Create(ctx context.Context, number string, capacity int, price float64) (domain.Room, error) {
	if err := domain.ValidateRoom(capacity, price); err != nil {
		return domain.Room{}, err
	}
	if err := s.ensureNumberFree(ctx, number); err != nil {
		return domain.Room{}, err
	}

	room := domain.Room{RoomNumber: number, Capacity: capacity, Price: price}
	id, err := s.store.Rooms().Create(ctx, room)
	if err != nil {
		return domain.Room{}, err
	}
	room.ID = id
	log.Info().Int64("room_id", id).Str("room_number", number).Msg("room created")
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, room domain.Room) (domain.Room, error) {
	if err := domain.ValidateRoom(room.Capacity, room.Price); err != nil {
		return domain.Room{}, err
	}

	existing, err := s.store.Rooms().GetByID(ctx, room.ID)
	if err != nil {
		return domain.Room{}, err
	}
	if existing.RoomNumber != room.RoomNumber {
		if err := s.ensureNumberFree(ctx, room.RoomNumber); err != nil {
			return domain.Room{}, err
		}
	}

	if room.Capacity < existing.Capacity {
		active, err := s.hasActiveReservations(ctx, room.ID)
		if err != nil {
			return domain.Room{}, err
		}
		if active {
			return domain.Room{}, domain.Conflictf("cannot reduce room capacity while there are active reservations")
		}
	}

	ok, err := s.store.Rooms().Update(ctx, room)
	if err != nil {
		return domain.Room{}, err
	}
	if !ok {
		return domain.Room{}, domain.Conflictf("failed to update room %d", room.ID)
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.Rooms().GetByID(ctx, id); err != nil {
		return err
	}
	active, err := s.hasActiveReservations(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return domain.Conflictf("cannot delete room with active or future reservations")
	}
	_, err = s.store.Rooms().Delete(ctx, id)
	return err
}

func (s *RoomService) ensureNumberFree(ctx context.Context, number string) error {
	if strings.TrimSpace(number) == "" {
		return domain.Validationf("room number cannot be empty")
	}
	_, err := s.store.Rooms().GetByRoomNumber(ctx, number)
	if err == nil {
		return domain.Conflictf("room with number %q already exists", number)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (s *RoomService) hasActiveReservations(ctx context.Context, roomID int64) (bool, error) {
	reservations, err := s.store.Reservations().GetByRoomID(ctx, roomID)
	if err != nil {
		return false, err
	}
	for _, rv := range reservations {
		if rv.Status.Active() {
			return true, nil
		}
	}
	return false, nil
}
