package mysql

import (
	"context"
	"database/sql"
	"strings"

	"hotel_platform/internal/domain"
)

type ReviewRepo struct{ db *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	return scanReview(r.db.QueryRowContext(ctx, getReviewSQL, id))
}

// GetPaged filters by room plus the optional flags and returns one page with
// the total match count.
func (r *ReviewRepo) GetPaged(ctx context.Context, q domain.ReviewsQuery) (domain.ReviewsPage, error) {
	where := []string{"room_id = ?"}
	args := []any{q.RoomID}
	if q.MinRating != nil {
		where = append(where, "rating >= ?")
		args = append(args, *q.MinRating)
	}
	if q.IsVerified != nil {
		where = append(where, "is_verified = ?")
		args = append(args, *q.IsVerified)
	}
	if q.IsApproved != nil {
		where = append(where, "is_approved = ?")
		args = append(args, *q.IsApproved)
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reviews WHERE "+cond, args...).Scan(&total); err != nil {
		return domain.ReviewsPage{}, err
	}

	pageArgs := append(args, q.PageSize, (q.Page-1)*q.PageSize)
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reviewCols+" FROM reviews WHERE "+cond+" ORDER BY review_date DESC, id DESC LIMIT ? OFFSET ?",
		pageArgs...)
	if err != nil {
		return domain.ReviewsPage{}, err
	}
	defer rows.Close()

	var items []domain.Review
	for rows.Next() {
		rv, err := scanReviewRows(rows)
		if err != nil {
			return domain.ReviewsPage{}, err
		}
		items = append(items, rv)
	}
	if err := rows.Err(); err != nil {
		return domain.ReviewsPage{}, err
	}
	return domain.ReviewsPage{Items: items, TotalCount: total, Page: q.Page, PageSize: q.PageSize}, nil
}

func (r *ReviewRepo) Create(ctx context.Context, rv domain.Review) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.ClientID, rv.RoomID, rv.Rating, rv.Comment, rv.Date.UTC(),
		rv.IsVerified, rv.IsApproved, rv.RejectionReason)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ReviewRepo) Update(ctx context.Context, rv domain.Review) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateReviewSQL,
		rv.Rating, rv.Comment, rv.IsVerified, rv.IsApproved, rv.RejectionReason, rv.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ReviewRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteReviewSQL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanReviewFrom(s rowScanner) (domain.Review, error) {
	var rv domain.Review
	var reason sql.NullString
	err := s.Scan(&rv.ID, &rv.ClientID, &rv.RoomID, &rv.Rating, &rv.Comment,
		&rv.Date, &rv.IsVerified, &rv.IsApproved, &reason)
	if err != nil {
		return domain.Review{}, err
	}
	if reason.Valid {
		rs := reason.String
		rv.RejectionReason = &rs
	}
	return rv, nil
}

func scanReview(row *sql.Row) (domain.Review, error) {
	rv, err := scanReviewFrom(row)
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, err
}

func scanReviewRows(rows *sql.Rows) (domain.Review, error) {
	return scanReviewFrom(rows)
}
