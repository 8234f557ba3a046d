package domain

const (
	MaxRoomCapacity = 10
	MaxRoomPrice    = 10000
)

type Room struct {
	ID         int64   `json:"id"`
	RoomNumber string  `json:"room_number"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"` // per night
}

func ValidateRoom(capacity int, price float64) error {
	if capacity <= 0 || capacity > MaxRoomCapacity {
		return Validationf("room capacity must be between 1 and %d", MaxRoomCapacity)
	}
	if price <= 0 {
		return Validationf("room price must be greater than 0")
	}
	if price > MaxRoomPrice {
		return Validationf("room price cannot exceed %d", MaxRoomPrice)
	}
	return nil
}
