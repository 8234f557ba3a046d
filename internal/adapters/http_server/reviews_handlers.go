package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hotel_platform/internal/app"
	"hotel_platform/internal/domain"
)

// ReviewHandlers serves the guest-feedback surface: room reviews with
// moderation, and in-stay service requests.
type ReviewHandlers struct {
	Reviews  *app.ReviewService
	Requests *app.RequestService
}

func (s *Server) MountReviewHandlers(h *ReviewHandlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1/reviews", func(r chi.Router) {
		r.Post("/", h.createReview)
		r.Get("/{id}", h.getReview)
		r.Put("/{id}", h.updateReview)
		r.Delete("/{id}", h.deleteReview)
		r.Post("/{id}/approve", h.approveReview)
		r.Post("/{id}/reject", h.rejectReview)
	})
	s.mux.Get("/v1/rooms/{id}/reviews", h.listRoomReviews)

	s.mux.Route("/v1/requests", func(r chi.Router) {
		r.Post("/", h.createRequest)
		r.Get("/pending", h.pendingRequests)
		r.Get("/{id}", h.getRequest)
		r.Post("/{id}/status", h.updateRequestStatus)
	})
	s.mux.Get("/v1/rooms/{id}/requests", h.listRoomRequests)
}

// ---- reviews ----

type createReviewReq struct {
	ClientID int64  `json:"client_id" validate:"required,gt=0"`
	RoomID   int64  `json:"room_id" validate:"required,gt=0"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required"`
}

type updateReviewReq struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

type rejectReviewReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ReviewHandlers) createReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	review, err := h.Reviews.Create(r.Context(), req.ClientID, req.RoomID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandlers) getReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	review, err := h.Reviews.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandlers) updateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateReviewReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	review, err := h.Reviews.Update(r.Context(), id, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandlers) approveReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	review, err := h.Reviews.Approve(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandlers) rejectReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req rejectReviewReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	review, err := h.Reviews.Reject(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Reviews.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandlers) listRoomReviews(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := domain.ReviewsQuery{RoomID: roomID}
	qs := r.URL.Query()
	if v := qs.Get("page"); v != "" {
		if q.Page, err = strconv.Atoi(v); err != nil || q.Page < 1 {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "page must be a positive integer")
			return
		}
	}
	if v := qs.Get("page_size"); v != "" {
		if q.PageSize, err = strconv.Atoi(v); err != nil || q.PageSize < 1 {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "page_size must be a positive integer")
			return
		}
	}
	if v := qs.Get("min_rating"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "min_rating must be between 1 and 5")
			return
		}
		q.MinRating = &n
	}
	if v := qs.Get("verified"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "verified must be a boolean")
			return
		}
		q.IsVerified = &b
	}
	if v := qs.Get("approved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "approved must be a boolean")
			return
		}
		q.IsApproved = &b
	}

	page, err := h.Reviews.ListByRoom(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCachedJSON(w, r, page)
}

// ---- service requests ----

type createRequestReq struct {
	ClientID int64  `json:"client_id" validate:"required,gt=0"`
	RoomID   int64  `json:"room_id" validate:"required,gt=0"`
	Text     string `json:"text" validate:"required"`
	Category string `json:"category"`
	Priority int    `json:"priority" validate:"omitempty,min=1,max=5"`
}

type requestStatusReq struct {
	Status    string `json:"status" validate:"required"`
	HandledBy int64  `json:"handled_by" validate:"omitempty,gt=0"`
	Response  string `json:"response"`
}

func (h *ReviewHandlers) createRequest(w http.ResponseWriter, r *http.Request) {
	var req createRequestReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Priority == 0 {
		req.Priority = 3
	}
	sr, err := h.Requests.Create(r.Context(), req.ClientID, req.RoomID, req.Text, req.Category, req.Priority)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sr)
}

func (h *ReviewHandlers) getRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sr, err := h.Requests.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sr)
}

func (h *ReviewHandlers) pendingRequests(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Requests.GetPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pending)
}

func (h *ReviewHandlers) listRoomRequests(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	srs, err := h.Requests.GetByRoomID(r.Context(), roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, srs)
}

func (h *ReviewHandlers) updateRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req requestStatusReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	sr, err := h.Requests.UpdateStatus(r.Context(), id, req.Status, req.HandledBy, req.Response)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sr)
}
