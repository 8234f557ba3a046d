package domain_test

import (
	"strings"
	"testing"

	"hotel_platform/internal/domain"
)

func TestNewReview_Validation(t *testing.T) {
	if _, err := domain.NewReview(1, 5, 4, "clean room, friendly staff"); err != nil {
		t.Fatalf("valid review rejected: %v", err)
	}
	cases := []struct {
		name     string
		clientID int64
		roomID   int64
		rating   int
		comment  string
	}{
		{"zero client", 0, 5, 4, "clean room, friendly staff"},
		{"zero room", 1, 0, 4, "clean room, friendly staff"},
		{"rating low", 1, 5, 0, "clean room, friendly staff"},
		{"rating high", 1, 5, 6, "clean room, friendly staff"},
		{"short comment", 1, 5, 4, "meh"},
		{"long comment", 1, 5, 4, strings.Repeat("x", 2001)},
	}
	for _, tc := range cases {
		if _, err := domain.NewReview(tc.clientID, tc.roomID, tc.rating, tc.comment); !domain.IsValidation(err) {
			t.Errorf("%s: want validation error, got %v", tc.name, err)
		}
	}
}

func TestReview_ApproveTwiceConflicts(t *testing.T) {
	r, err := domain.NewReview(1, 5, 4, "clean room, friendly staff")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Approve(); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	if err := r.Approve(); !domain.IsConflict(err) {
		t.Fatalf("second approve: want conflict, got %v", err)
	}
}

func TestRequestStatus_Transitions(t *testing.T) {
	legal := [][2]domain.RequestStatus{
		{domain.RequestPending, domain.RequestApproved},
		{domain.RequestPending, domain.RequestRejected},
		{domain.RequestPending, domain.RequestInProgress},
		{domain.RequestApproved, domain.RequestInProgress},
		{domain.RequestInProgress, domain.RequestCompleted},
		{domain.RequestInProgress, domain.RequestRejected},
	}
	for _, p := range legal {
		if !p[0].CanTransitionTo(p[1]) {
			t.Errorf("%s -> %s should be legal", p[0], p[1])
		}
	}
	illegal := [][2]domain.RequestStatus{
		{domain.RequestRejected, domain.RequestPending},
		{domain.RequestCompleted, domain.RequestInProgress},
		{domain.RequestApproved, domain.RequestCompleted},
		{domain.RequestPending, domain.RequestCompleted},
	}
	for _, p := range illegal {
		if p[0].CanTransitionTo(p[1]) {
			t.Errorf("%s -> %s should be illegal", p[0], p[1])
		}
	}
}

func TestServiceRequest_ChangeStatus(t *testing.T) {
	q, err := domain.NewServiceRequest(1, 5, "extra towels to room please", "housekeeping", 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.ChangeStatus(domain.RequestPending); !domain.IsConflict(err) {
		t.Fatalf("same status: want conflict, got %v", err)
	}
	if err := q.ChangeStatus(domain.RequestInProgress); err != nil {
		t.Fatalf("pending -> in_progress: %v", err)
	}
	if err := q.ChangeStatus(domain.RequestApproved); !domain.IsConflict(err) {
		t.Fatalf("in_progress -> approved: want conflict, got %v", err)
	}
	if err := q.ChangeStatus(domain.RequestCompleted); err != nil {
		t.Fatalf("in_progress -> completed: %v", err)
	}
	if !q.Status.Final() {
		t.Fatal("completed must be final")
	}
}
