package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotel_platform/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ReviewService struct {
	repo  domain.ReviewRepository
	cache domain.Cache
}

func NewReviewService(repo domain.ReviewRepository, cache domain.Cache) *ReviewService {
	return &ReviewService{repo: repo, cache: cache}
}

func (s *ReviewService) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByRoom serves paged room reviews read-through: cache first, repo on a
// miss, result cached under a key carrying every query parameter.
func (s *ReviewService) ListByRoom(ctx context.Context, q domain.ReviewsQuery) (domain.ReviewsPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > maxPageSize {
		q.PageSize = defaultPageSize
	}

	key := reviewsKey(q)
	var page domain.ReviewsPage
	if ok, _ := s.cache.Get(ctx, key, &page); ok {
		return page, nil
	}

	page, err := s.repo.GetPaged(ctx, q)
	if err != nil {
		return domain.ReviewsPage{}, err
	}
	_ = s.cache.Set(ctx, key, page, 0)
	return page, nil
}

func (s *ReviewService) Create(ctx context.Context, clientID, roomID int64, rating int, comment string) (domain.Review, error) {
	review, err := domain.NewReview(clientID, roomID, rating, comment)
	if err != nil {
		return domain.Review{}, err
	}
	review.ID, err = s.repo.Create(ctx, review)
	if err != nil {
		return domain.Review{}, err
	}
	s.invalidateRoom(ctx, roomID)
	log.Info().Int64("review_id", review.ID).Int64("room_id", roomID).Msg("review created")
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id int64, rating int, comment string) (domain.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Review{}, err
	}
	if err := review.Update(rating, comment); err != nil {
		return domain.Review{}, err
	}
	if _, err := s.repo.Update(ctx, review); err != nil {
		return domain.Review{}, err
	}
	s.invalidateRoom(ctx, review.RoomID)
	return review, nil
}

func (s *ReviewService) Approve(ctx context.Context, id int64) (domain.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Review{}, err
	}
	if err := review.Approve(); err != nil {
		return domain.Review{}, err
	}
	if _, err := s.repo.Update(ctx, review); err != nil {
		return domain.Review{}, err
	}
	s.invalidateRoom(ctx, review.RoomID)
	return review, nil
}

func (s *ReviewService) Reject(ctx context.Context, id int64, reason string) (domain.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Review{}, err
	}
	if err := review.Reject(reason); err != nil {
		return domain.Review{}, err
	}
	if _, err := s.repo.Update(ctx, review); err != nil {
		return domain.Review{}, err
	}
	s.invalidateRoom(ctx, review.RoomID)
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateRoom(ctx, review.RoomID)
	return nil
}

// invalidateRoom drops every cached listing variant for the room right after
// the write commits.
func (s *ReviewService) invalidateRoom(ctx context.Context, roomID int64) {
	if err := s.cache.DelPrefix(ctx, fmt.Sprintf("reviews:room:%d", roomID)); err != nil {
		log.Warn().Err(err).Int64("room_id", roomID).Msg("review cache invalidation failed")
	}
}

func reviewsKey(q domain.ReviewsQuery) string {
	return fmt.Sprintf("reviews:room:%d:page:%d:size:%d:rating:%s:verified:%s:approved:%s",
		q.RoomID, q.Page, q.PageSize,
		fmtIntPtr(q.MinRating), fmtBoolPtr(q.IsVerified), fmtBoolPtr(q.IsApproved))
}

func fmtIntPtr(p *int) string {
	if p == nil {
		return "any"
	}
	return fmt.Sprintf("%d", *p)
}

func fmtBoolPtr(p *bool) string {
	if p == nil {
		return "any"
	}
	return fmt.Sprintf("%t", *p)
}
