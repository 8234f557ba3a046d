package domain

import (
	"strings"
	"time"
)

type Review struct {
	ID              int64     `json:"id"`
	ClientID        int64     `json:"client_id"`
	RoomID          int64     `json:"room_id"`
	Rating          int       `json:"rating"` // 1..5
	Comment         string    `json:"comment"`
	Date            time.Time `json:"date"` // UTC
	IsVerified      bool      `json:"is_verified"`
	IsApproved      bool      `json:"is_approved"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
}

func NewReview(clientID, roomID int64, rating int, comment string) (Review, error) {
	if clientID <= 0 {
		return Review{}, Validationf("client id must be positive")
	}
	if roomID <= 0 {
		return Review{}, Validationf("room id must be positive")
	}
	if err := validateReviewContent(rating, comment); err != nil {
		return Review{}, err
	}
	return Review{
		ClientID: clientID,
		RoomID:   roomID,
		Rating:   rating,
		Comment:  comment,
		Date:     time.Now().UTC(),
	}, nil
}

func (r *Review) Update(rating int, comment string) error {
	if err := validateReviewContent(rating, comment); err != nil {
		return err
	}
	r.Rating = rating
	r.Comment = comment
	return nil
}

func (r *Review) Approve() error {
	if r.IsApproved {
		return Conflictf("review %d is already approved", r.ID)
	}
	r.IsApproved = true
	r.RejectionReason = nil
	return nil
}

func (r *Review) Reject(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return Validationf("rejection reason is required")
	}
	if !r.IsApproved && r.RejectionReason != nil {
		return Conflictf("review %d is already rejected", r.ID)
	}
	r.IsApproved = false
	r.RejectionReason = &reason
	return nil
}

func validateReviewContent(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return Validationf("rating must be between 1 and 5, got %d", rating)
	}
	if strings.TrimSpace(comment) == "" {
		return Validationf("comment cannot be empty")
	}
	if len(comment) < 10 {
		return Validationf("comment must be at least 10 characters")
	}
	if len(comment) > 2000 {
		return Validationf("comment cannot exceed 2000 characters")
	}
	return nil
}

// RequestStatus drives the service-request lifecycle.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestApproved   RequestStatus = "approved"
	RequestRejected   RequestStatus = "rejected"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:    {RequestApproved, RequestRejected, RequestInProgress},
	RequestApproved:   {RequestInProgress},
	RequestInProgress: {RequestCompleted, RequestRejected},
	RequestRejected:   {},
	RequestCompleted:  {},
}

func ParseRequestStatus(s string) (RequestStatus, error) {
	st := RequestStatus(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := requestTransitions[st]; !ok {
		return "", Validationf("unknown request status %q", s)
	}
	return st, nil
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s RequestStatus) Final() bool {
	return len(requestTransitions[s]) == 0
}

type ServiceRequest struct {
	ID           int64         `json:"id"`
	ClientID     int64         `json:"client_id"`
	RoomID       int64         `json:"room_id"`
	Text         string        `json:"text"`
	Category     string        `json:"category"`
	Priority     int           `json:"priority"` // 1..5
	Status       RequestStatus `json:"status"`
	Date         time.Time     `json:"date"` // UTC
	Response     *string       `json:"response,omitempty"`
	ResponseDate *time.Time    `json:"response_date,omitempty"`
	HandledBy    *int64        `json:"handled_by,omitempty"`
}

func NewServiceRequest(clientID, roomID int64, text, category string, priority int) (ServiceRequest, error) {
	if clientID <= 0 {
		return ServiceRequest{}, Validationf("client id must be positive")
	}
	if roomID <= 0 {
		return ServiceRequest{}, Validationf("room id must be positive")
	}
	if err := validateRequestText(text); err != nil {
		return ServiceRequest{}, err
	}
	if priority < 1 || priority > 5 {
		return ServiceRequest{}, Validationf("priority must be between 1 and 5")
	}
	if strings.TrimSpace(category) == "" {
		category = "general"
	}
	return ServiceRequest{
		ClientID: clientID,
		RoomID:   roomID,
		Text:     text,
		Category: category,
		Priority: priority,
		Status:   RequestPending,
		Date:     time.Now().UTC(),
	}, nil
}

// ChangeStatus enforces the transition graph; the current status again is a
// conflict.
func (q *ServiceRequest) ChangeStatus(next RequestStatus) error {
	if q.Status == next {
		return Conflictf("request already has status %q", next)
	}
	if !q.Status.CanTransitionTo(next) {
		return Conflictf("cannot change request status from %q to %q", q.Status, next)
	}
	q.Status = next
	return nil
}

func (q *ServiceRequest) Respond(text string) error {
	if strings.TrimSpace(text) == "" {
		return Validationf("response cannot be empty")
	}
	if len(text) > 5000 {
		return Validationf("response cannot exceed 5000 characters")
	}
	now := time.Now().UTC()
	q.Response = &text
	q.ResponseDate = &now
	return nil
}

func validateRequestText(text string) error {
	if strings.TrimSpace(text) == "" {
		return Validationf("request text cannot be empty")
	}
	if len(text) < 10 {
		return Validationf("request text must be at least 10 characters")
	}
	if len(text) > 5000 {
		return Validationf("request text cannot exceed 5000 characters")
	}
	return nil
}
