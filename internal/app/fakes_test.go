package app_test

import (
	"context"
	"time"

	"hotel_platform/internal/domain"
)

// memStore is an in-memory domain.Store with snapshot-based rollback, so the
// all-or-nothing transaction behavior is visible to the tests.
type memStore struct {
	state *memState

	// failures maps an operation name to an error it should return.
	failures map[string]error

	// beforeStatusUpdate runs just before a reservation status write,
	// letting a test interleave a competing mutation.
	beforeStatusUpdate func()
}

type memState struct {
	clients      map[int64]domain.Client
	rooms        map[int64]domain.Room
	reservations map[int64]domain.Reservation
	payments     map[int64]domain.Payment
	nextID       int64
}

func newMemStore() *memStore {
	return &memStore{
		state: &memState{
			clients:      map[int64]domain.Client{},
			rooms:        map[int64]domain.Room{},
			reservations: map[int64]domain.Reservation{},
			payments:     map[int64]domain.Payment{},
		},
		failures: map[string]error{},
	}
}

func (s *memState) clone() *memState {
	c := &memState{
		clients:      make(map[int64]domain.Client, len(s.clients)),
		rooms:        make(map[int64]domain.Room, len(s.rooms)),
		reservations: make(map[int64]domain.Reservation, len(s.reservations)),
		payments:     make(map[int64]domain.Payment, len(s.payments)),
		nextID:       s.nextID,
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	return c
}

func (s *memStore) id() int64 {
	s.state.nextID++
	return s.state.nextID
}

func (s *memStore) addClient(c domain.Client) domain.Client {
	c.ID = s.id()
	s.state.clients[c.ID] = c
	return c
}

func (s *memStore) addRoom(r domain.Room) domain.Room {
	r.ID = s.id()
	s.state.rooms[r.ID] = r
	return r
}

func (s *memStore) addReservation(r domain.Reservation) domain.Reservation {
	r.ID = s.id()
	s.state.reservations[r.ID] = r
	return r
}

func (s *memStore) Clients() domain.ClientRepository           { return (*memClients)(s) }
func (s *memStore) Rooms() domain.RoomRepository               { return (*memRooms)(s) }
func (s *memStore) Reservations() domain.ReservationRepository { return (*memReservations)(s) }
func (s *memStore) Payments() domain.PaymentRepository         { return (*memPayments)(s) }

func (s *memStore) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	if err := s.failures["begin"]; err != nil {
		return nil, err
	}
	return &memUow{store: s, snapshot: s.state.clone()}, nil
}

type memUow struct {
	store    *memStore
	snapshot *memState
	done     bool
}

func (u *memUow) Clients() domain.ClientRepository           { return u.store.Clients() }
func (u *memUow) Rooms() domain.RoomRepository               { return u.store.Rooms() }
func (u *memUow) Reservations() domain.ReservationRepository { return u.store.Reservations() }
func (u *memUow) Payments() domain.PaymentRepository         { return u.store.Payments() }

func (u *memUow) Commit() error {
	if u.done {
		return nil
	}
	u.done = true
	return u.store.failures["commit"]
}

func (u *memUow) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	u.store.state = u.snapshot
	return nil
}

// ---- repositories ----

type memClients memStore

func (m *memClients) GetByID(ctx context.Context, id int64) (domain.Client, error) {
	c, ok := m.state.clients[id]
	if !ok {
		return domain.Client{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *memClients) GetAll(ctx context.Context) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range m.state.clients {
		out = append(out, c)
	}
	return out, nil
}

func (m *memClients) Create(ctx context.Context, c domain.Client) (int64, error) {
	c.ID = (*memStore)(m).id()
	m.state.clients[c.ID] = c
	return c.ID, nil
}

func (m *memClients) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := m.state.clients[id]
	delete(m.state.clients, id)
	return ok, nil
}

type memRooms memStore

func (m *memRooms) GetByID(ctx context.Context, id int64) (domain.Room, error) {
	r, ok := m.state.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return r, nil
}

func (m *memRooms) GetAll(ctx context.Context) ([]domain.Room, error) {
	var out []domain.Room
	for _, r := range m.state.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (m *memRooms) GetByRoomNumber(ctx context.Context, number string) (domain.Room, error) {
	for _, r := range m.state.rooms {
		if r.RoomNumber == number {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

func (m *memRooms) GetAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	var out []domain.Room
	for _, r := range m.state.rooms {
		conflict := false
		for _, rv := range m.state.reservations {
			if rv.RoomID != r.ID || !rv.Status.Active() {
				continue
			}
			// inclusive boundaries on both sides
			if !rv.CheckIn.After(checkOut) && !rv.CheckOut.Before(checkIn) {
				conflict = true
				break
			}
		}
		if !conflict {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRooms) Create(ctx context.Context, r domain.Room) (int64, error) {
	r.ID = (*memStore)(m).id()
	m.state.rooms[r.ID] = r
	return r.ID, nil
}

func (m *memRooms) Update(ctx context.Context, r domain.Room) (bool, error) {
	if _, ok := m.state.rooms[r.ID]; !ok {
		return false, nil
	}
	m.state.rooms[r.ID] = r
	return true, nil
}

func (m *memRooms) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := m.state.rooms[id]
	delete(m.state.rooms, id)
	return ok, nil
}

type memReservations memStore

func (m *memReservations) GetByID(ctx context.Context, id int64) (domain.Reservation, error) {
	r, ok := m.state.reservations[id]
	if !ok {
		return domain.Reservation{}, domain.ErrNotFound
	}
	return r, nil
}

func (m *memReservations) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range m.state.reservations {
		out = append(out, r)
	}
	return out, nil
}

func (m *memReservations) GetByClientID(ctx context.Context, clientID int64) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range m.state.reservations {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReservations) GetByRoomID(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range m.state.reservations {
		if r.RoomID == roomID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReservations) GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range m.state.reservations {
		if !r.CheckIn.After(to) && !r.CheckOut.Before(from) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReservations) GetWithDetails(ctx context.Context, id int64) (domain.Reservation, error) {
	if err := m.failures["reservations.details"]; err != nil {
		return domain.Reservation{}, err
	}
	r, ok := m.state.reservations[id]
	if !ok {
		return domain.Reservation{}, domain.ErrNotFound
	}
	if c, ok := m.state.clients[r.ClientID]; ok {
		r.Client = &c
	}
	if rm, ok := m.state.rooms[r.RoomID]; ok {
		r.Room = &rm
	}
	return r, nil
}

func (m *memReservations) Create(ctx context.Context, r domain.Reservation) (int64, error) {
	r.ID = (*memStore)(m).id()
	m.state.reservations[r.ID] = r
	return r.ID, nil
}

func (m *memReservations) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) (bool, error) {
	if m.beforeStatusUpdate != nil {
		m.beforeStatusUpdate()
	}
	r, ok := m.state.reservations[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if r.Status != from {
		return false, nil
	}
	r.Status = to
	m.state.reservations[id] = r
	return true, nil
}

func (m *memReservations) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := m.state.reservations[id]
	delete(m.state.reservations, id)
	return ok, nil
}

type memPayments memStore

func (m *memPayments) GetByID(ctx context.Context, id int64) (domain.Payment, error) {
	p, ok := m.state.payments[id]
	if !ok {
		return domain.Payment{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *memPayments) GetAll(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range m.state.payments {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPayments) GetByReservationID(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range m.state.payments {
		if p.ReservationID == reservationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPayments) Create(ctx context.Context, p domain.Payment) (int64, error) {
	if err := m.failures["payments.create"]; err != nil {
		return 0, err
	}
	p.ID = (*memStore)(m).id()
	m.state.payments[p.ID] = p
	return p.ID, nil
}

func (m *memPayments) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := m.state.payments[id]
	delete(m.state.payments, id)
	return ok, nil
}

// ---- shared fixtures ----

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func futureDate(days int) time.Time {
	t := time.Now().UTC().AddDate(0, 0, days)
	return date(t.Year(), t.Month(), t.Day())
}
