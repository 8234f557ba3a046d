package app_test

import (
	"context"
	"errors"
	"testing"

	"hotel_platform/internal/app"
	"hotel_platform/internal/domain"
)

func TestCreateReservation(t *testing.T) {
	store := newMemStore()
	client := store.addClient(domain.Client{Name: "Omar Said", Email: "omar@example.com"})
	room := store.addRoom(domain.Room{RoomNumber: "101", Capacity: 2, Price: 80})
	svc := app.NewReservationService(store)

	rv, err := svc.Create(context.Background(), client.ID, room.ID, futureDate(3), futureDate(5))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rv.Status != domain.StatusPending {
		t.Errorf("status = %q, want pending", rv.Status)
	}
	if rv.Client == nil || rv.Room == nil {
		t.Fatalf("expected client and room details on the created reservation")
	}
	if rv.Nights() != 2 {
		t.Errorf("nights = %d, want 2", rv.Nights())
	}
}

func TestCreateReservationDateValidation(t *testing.T) {
	store := newMemStore()
	client := store.addClient(domain.Client{Name: "Omar Said"})
	room := store.addRoom(domain.Room{RoomNumber: "101", Capacity: 2, Price: 80})
	svc := app.NewReservationService(store)

	cases := []struct {
		name     string
		in, out  int
	}{
		{"check-out before check-in", 5, 3},
		{"same day", 3, 3},
		{"check-in in the past", -2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), client.ID, room.ID, futureDate(tc.in), futureDate(tc.out))
			if !domain.IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestCreateReservationUnknownClientOrRoom(t *testing.T) {
	store := newMemStore()
	client := store.addClient(domain.Client{Name: "Omar Said"})
	room := store.addRoom(domain.Room{RoomNumber: "101", Capacity: 2, Price: 80})
	svc := app.NewReservationService(store)

	if _, err := svc.Create(context.Background(), 999, room.ID, futureDate(3), futureDate(5)); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown client: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Create(context.Background(), client.ID, 999, futureDate(3), futureDate(5)); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown room: err = %v, want ErrNotFound", err)
	}
}

func TestCreateReservationRoomTaken(t *testing.T) {
	store := newMemStore()
	client := store.addClient(domain.Client{Name: "Omar Said"})
	room := store.addRoom(domain.Room{RoomNumber: "101", Capacity: 2, Price: 80})
	store.addReservation(domain.Reservation{
		ClientID: client.ID, RoomID: room.ID,
		CheckIn: futureDate(4), CheckOut: futureDate(8),
		Status: domain.StatusConfirmed,
	})
	svc := app.NewReservationService(store)

	// shared boundary day counts as an overlap
	_, err := svc.Create(context.Background(), client.ID, room.ID, futureDate(2), futureDate(4))
	if !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict for overlapping dates", err)
	}

	// a cancelled reservation frees the room
	store.state.reservations = map[int64]domain.Reservation{}
	store.addReservation(domain.Reservation{
		ClientID: client.ID, RoomID: room.ID,
		CheckIn: futureDate(4), CheckOut: futureDate(8),
		Status: domain.StatusCancelled,
	})
	if _, err := svc.Create(context.Background(), client.ID, room.ID, futureDate(4), futureDate(8)); err != nil {
		t.Fatalf("Create over cancelled reservation: %v", err)
	}
}

func TestReservationLifecycle(t *testing.T) {
	store := newMemStore()
	rv := seedReservation(store, domain.StatusPending, 2, 80)
	svc := app.NewReservationService(store)
	ctx := context.Background()

	if _, err := svc.UpdateStatus(ctx, rv.ID, domain.StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, err := svc.CheckIn(ctx, rv.ID); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if _, err := svc.CheckOut(ctx, rv.ID); err != nil {
		t.Fatalf("check out: %v", err)
	}

	// checked out is terminal
	if _, err := svc.Cancel(ctx, rv.ID); !domain.IsConflict(err) {
		t.Fatalf("cancel after check-out: err = %v, want conflict", err)
	}
}

func TestConfirmLosesToConcurrentCancel(t *testing.T) {
	store := newMemStore()
	rv := seedReservation(store, domain.StatusPending, 2, 80)
	svc := app.NewReservationService(store)
	ctx := context.Background()

	// a cancellation lands after the service has read the reservation but
	// before it writes the new status
	store.beforeStatusUpdate = func() {
		store.beforeStatusUpdate = nil
		r := store.state.reservations[rv.ID]
		r.Status = domain.StatusCancelled
		store.state.reservations[rv.ID] = r
	}

	if _, err := svc.UpdateStatus(ctx, rv.ID, domain.StatusConfirmed); !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict for concurrently cancelled reservation", err)
	}
	if got := store.state.reservations[rv.ID].Status; got != domain.StatusCancelled {
		t.Errorf("status = %q, want the cancellation to stick", got)
	}
}

func TestReservationInvalidTransitions(t *testing.T) {
	store := newMemStore()
	svc := app.NewReservationService(store)
	ctx := context.Background()

	pending := seedReservation(store, domain.StatusPending, 2, 80)
	if _, err := svc.CheckIn(ctx, pending.ID); !domain.IsConflict(err) {
		t.Errorf("check in from pending: err = %v, want conflict", err)
	}
	if _, err := svc.UpdateStatus(ctx, pending.ID, domain.StatusPending); !domain.IsConflict(err) {
		t.Errorf("pending to pending: err = %v, want conflict", err)
	}

	cancelled := seedReservation(store, domain.StatusCancelled, 2, 80)
	if _, err := svc.UpdateStatus(ctx, cancelled.ID, domain.StatusConfirmed); !domain.IsConflict(err) {
		t.Errorf("confirm cancelled: err = %v, want conflict", err)
	}
}

func TestDeleteReservationOnlyCancelled(t *testing.T) {
	store := newMemStore()
	svc := app.NewReservationService(store)
	ctx := context.Background()

	active := seedReservation(store, domain.StatusConfirmed, 2, 80)
	if err := svc.Delete(ctx, active.ID); !domain.IsConflict(err) {
		t.Fatalf("delete confirmed: err = %v, want conflict", err)
	}

	cancelled := seedReservation(store, domain.StatusCancelled, 2, 80)
	if err := svc.Delete(ctx, cancelled.ID); err != nil {
		t.Fatalf("delete cancelled: %v", err)
	}
	if _, err := store.Reservations().GetByID(ctx, cancelled.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("reservation still present after delete")
	}
}

func TestGetByDateRangeValidation(t *testing.T) {
	store := newMemStore()
	svc := app.NewReservationService(store)

	_, err := svc.GetByDateRange(context.Background(), futureDate(5), futureDate(3))
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
