package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_platform/internal/domain"
)

type ClientService struct {
	store domain.Store
}

func NewClientService(store domain.Store) *ClientService {
	return &ClientService{store: store}
}

func (s *ClientService) GetByID(ctx context.Context, id int64) (domain.Client, error) {
	return s.store.Clients().GetByID(ctx, id)
}

func (s *ClientService) GetAll(ctx context.Context) ([]domain.Client, error) {
	return s.store.Clients().GetAll(ctx)
}

func (s *ClientService) Create(ctx context.Context, name, email, phone string) (domain.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Client{}, domain.Validationf("client name is required")
	}
	client := domain.Client{Name: name, Email: strings.TrimSpace(email), Phone: strings.TrimSpace(phone)}
	id, err := s.store.Clients().Create(ctx, client)
	if err != nil {
		return domain.Client{}, err
	}
	client.ID = id
	log.Info().Int64("client_id", id).Msg("client created")
	return client, nil
}

// Delete refuses while the client still has reservations that are not settled.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.Clients().GetByID(ctx, id); err != nil {
		return err
	}
	rvs, err := s.store.Reservations().GetByClientID(ctx, id)
	if err != nil {
		return err
	}
	for _, rv := range rvs {
		if rv.Status.Active() {
			return domain.Conflictf("client %d has active reservations", id)
		}
	}
	_, err = s.store.Clients().Delete(ctx, id)
	return err
}
