package domain

import "time"

// ReservationStatus is a closed set; transitions go through CanTransitionTo.
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

func ParseReservationStatus(s string) (ReservationStatus, error) {
	st := ReservationStatus(s)
	if _, ok := reservationTransitions[st]; !ok {
		return "", Validationf("unknown reservation status %q", s)
	}
	return st, nil
}

// CanTransitionTo reports whether the move is legal. Requesting the current
// status again is not.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no outbound transition exists.
func (s ReservationStatus) Terminal() bool {
	return len(reservationTransitions[s]) == 0
}

// Active means the reservation still occupies its room for availability
// purposes (anything not checked out and not cancelled).
func (s ReservationStatus) Active() bool {
	return s != StatusCheckedOut && s != StatusCancelled
}

type Reservation struct {
	ID       int64             `json:"id"`
	ClientID int64             `json:"client_id"`
	RoomID   int64             `json:"room_id"`
	CheckIn  time.Time         `json:"check_in"`  // date-only
	CheckOut time.Time         `json:"check_out"` // date-only
	Status   ReservationStatus `json:"status"`

	// Populated by detail reads only.
	Client *Client `json:"client,omitempty"`
	Room   *Room   `json:"room,omitempty"`
}

// Nights is the integer day count of the stay.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
