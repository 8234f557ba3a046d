package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_platform/internal/domain"
)

type PaymentService struct {
	store domain.Store
}

func NewPaymentService(store domain.Store) *PaymentService {
	return &PaymentService{store: store}
}

func (s *PaymentService) GetByID(ctx context.Context, id int64) (domain.Payment, error) {
	return s.store.Payments().GetByID(ctx, id)
}

func (s *PaymentService) GetAll(ctx context.Context) ([]domain.Payment, error) {
	return s.store.Payments().GetAll(ctx)
}

func (s *PaymentService) GetByReservationID(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	return s.store.Payments().GetByReservationID(ctx, reservationID)
}

// Process records a payment and, once cumulative payments cover the stay
// cost, confirms a pending reservation. The whole workflow commits or rolls
// back as one unit.
func (s *PaymentService) Process(ctx context.Context, reservationID int64, amount float64, method string) (domain.Payment, error) {
	method, err := domain.NormalizePaymentMethod(method)
	if err != nil {
		return domain.Payment{}, err
	}
	if amount <= 0 {
		return domain.Payment{}, domain.Validationf("payment amount must be greater than 0")
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return domain.Payment{}, err
	}
	defer rollback(uow, "payment_settlement")

	rv, err := uow.Reservations().GetByID(ctx, reservationID)
	if err != nil {
		return domain.Payment{}, err
	}
	if rv.Status == domain.StatusCancelled {
		return domain.Payment{}, domain.Conflictf("cannot create payment for cancelled reservation")
	}

	payment := domain.Payment{
		ReservationID: reservationID,
		Amount:        amount,
		Method:        method,
		PaymentDate:   time.Now().UTC(),
	}
	payment.ID, err = uow.Payments().Create(ctx, payment)
	if err != nil {
		return domain.Payment{}, err
	}

	detailed, err := uow.Reservations().GetWithDetails(ctx, reservationID)
	if err != nil {
		return domain.Payment{}, err
	}

	payments, err := uow.Payments().GetByReservationID(ctx, reservationID)
	if err != nil {
		return domain.Payment{}, err
	}
	var totalPaid float64
	for _, p := range payments {
		totalPaid += p.Amount
	}

	cost, err := reservationCost(detailed)
	if err != nil {
		return domain.Payment{}, err
	}

	log.Info().Int64("reservation_id", reservationID).
		Float64("cost", cost).Float64("total_paid", totalPaid).
		Msg("payment settlement")

	if totalPaid >= cost && detailed.Status == domain.StatusPending {
		ok, err := uow.Reservations().UpdateStatus(ctx, reservationID, domain.StatusPending, domain.StatusConfirmed)
		if err != nil {
			return domain.Payment{}, err
		}
		if !ok {
			return domain.Payment{}, domain.Conflictf("reservation %d was modified concurrently", reservationID)
		}
		log.Info().Int64("reservation_id", reservationID).Msg("reservation confirmed after full payment")
	}

	if err := uow.Commit(); err != nil {
		return domain.Payment{}, err
	}
	return payment, nil
}

// Delete removes a payment created within the last day.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	p, err := s.store.Payments().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if time.Since(p.PaymentDate) > domain.PaymentDeletionWindow {
		return domain.Conflictf("cannot delete payments older than 1 day")
	}
	_, err = s.store.Payments().Delete(ctx, id)
	return err
}

func reservationCost(rv domain.Reservation) (float64, error) {
	if rv.Room == nil {
		return 0, domain.Validationf("room information is required to calculate cost")
	}
	nights := rv.Nights()
	if nights <= 0 {
		return 0, domain.Validationf("invalid reservation dates")
	}
	return float64(nights) * rv.Room.Price, nil
}
