package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"hotel_platform/internal/domain"
)

const (
	requestsPrefix     = "requests:"
	pendingRequestsKey = "requests:pending"
)

type RequestService struct {
	repo  domain.RequestRepository
	cache domain.Cache
}

func NewRequestService(repo domain.RequestRepository, cache domain.Cache) *RequestService {
	return &RequestService{repo: repo, cache: cache}
}

func (s *RequestService) GetByID(ctx context.Context, id int64) (domain.ServiceRequest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RequestService) GetByRoomID(ctx context.Context, roomID int64) ([]domain.ServiceRequest, error) {
	return s.repo.GetByRoomID(ctx, roomID)
}

// GetPending is the hot staff-dashboard read; cached read-through.
func (s *RequestService) GetPending(ctx context.Context) ([]domain.ServiceRequest, error) {
	var pending []domain.ServiceRequest
	if ok, _ := s.cache.Get(ctx, pendingRequestsKey, &pending); ok {
		return pending, nil
	}
	pending, err := s.repo.GetPending(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, pendingRequestsKey, pending, 0)
	return pending, nil
}

func (s *RequestService) Create(ctx context.Context, clientID, roomID int64, text, category string, priority int) (domain.ServiceRequest, error) {
	req, err := domain.NewServiceRequest(clientID, roomID, text, category, priority)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	req.ID, err = s.repo.Create(ctx, req)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	s.invalidate(ctx)
	log.Info().Int64("request_id", req.ID).Int64("room_id", roomID).
		Int("priority", priority).Msg("service request created")
	return req, nil
}

// UpdateStatus moves a request through its lifecycle; the employee taking it
// over and an optional response are recorded alongside.
func (s *RequestService) UpdateStatus(ctx context.Context, id int64, status string, handledBy int64, response string) (domain.ServiceRequest, error) {
	next, err := domain.ParseRequestStatus(status)
	if err != nil {
		return domain.ServiceRequest{}, err
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	if err := req.ChangeStatus(next); err != nil {
		return domain.ServiceRequest{}, err
	}
	if handledBy > 0 {
		req.HandledBy = &handledBy
	}
	if response != "" {
		if err := req.Respond(response); err != nil {
			return domain.ServiceRequest{}, err
		}
	}

	ok, err := s.repo.Update(ctx, req)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	if !ok {
		return domain.ServiceRequest{}, domain.Conflictf("request %d was modified concurrently", id)
	}
	s.invalidate(ctx)
	log.Info().Int64("request_id", id).Str("status", string(next)).Msg("service request status updated")
	return req, nil
}

func (s *RequestService) invalidate(ctx context.Context) {
	if err := s.cache.DelPrefix(ctx, requestsPrefix); err != nil {
		log.Warn().Err(err).Msg("request cache invalidation failed")
	}
}
