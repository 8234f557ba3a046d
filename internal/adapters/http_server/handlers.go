package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"hotel_platform/internal/app"
	"hotel_platform/internal/domain"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

type Handlers struct {
	Clients      *app.ClientService
	Rooms        *app.RoomService
	Reservations *app.ReservationService
	Payments     *app.PaymentService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1/clients", func(r chi.Router) {
		r.Get("/", h.listClients)
		r.Post("/", h.createClient)
		r.Get("/{id}", h.getClient)
		r.Delete("/{id}", h.deleteClient)
		r.Get("/{id}/reservations", h.listClientReservations)
	})

	s.mux.Route("/v1/rooms", func(r chi.Router) {
		r.Get("/", h.listRooms)
		r.Post("/", h.createRoom)
		r.Get("/available", h.availableRooms)
		r.Get("/{id}", h.getRoom)
		r.Put("/{id}", h.updateRoom)
		r.Delete("/{id}", h.deleteRoom)
	})

	s.mux.Route("/v1/reservations", func(r chi.Router) {
		r.Get("/", h.listReservations)
		r.Post("/", h.createReservation)
		r.Get("/{id}", h.getReservation)
		r.Delete("/{id}", h.deleteReservation)
		r.Post("/{id}/status", h.updateReservationStatus)
		r.Get("/{id}/payments", h.listReservationPayments)
		r.Post("/{id}/payments", h.createPayment)
	})

	s.mux.Delete("/v1/payments/{id}", h.deletePayment)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps the service error taxonomy onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case domain.IsValidation(err):
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
	case domain.IsConflict(err):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCachedJSON sends v with a weak ETag and honors If-None-Match.
func writeCachedJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// decode unmarshals the body into dst and runs struct validation on it.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Validationf("invalid request body: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		return domain.Validationf("%v", err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("id must be a positive number")
	}
	return id, nil
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.Validationf("%s must be a date in the form %s", field, dateLayout)
	}
	return t, nil
}

// ---- clients ----

type createClientReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

func (h *Handlers) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *Handlers) getClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	client, err := h.Clients.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *Handlers) createClient(w http.ResponseWriter, r *http.Request) {
	var req createClientReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	client, err := h.Clients.Create(r.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *Handlers) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Clients.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listClientReservations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rvs, err := h.Reservations.GetByClientID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rvs)
}

// ---- rooms ----

type roomReq struct {
	RoomNumber string  `json:"room_number" validate:"required"`
	Capacity   int     `json:"capacity" validate:"required,min=1"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCachedJSON(w, r, rooms)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	room, err := h.Rooms.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var req roomReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	room, err := h.Rooms.Create(r.Context(), req.RoomNumber, req.Capacity, req.Price)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req roomReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	room, err := h.Rooms.Update(r.Context(), domain.Room{
		ID: id, RoomNumber: req.RoomNumber, Capacity: req.Capacity, Price: req.Price,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Rooms.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) availableRooms(w http.ResponseWriter, r *http.Request) {
	checkIn, err := parseDate(r.URL.Query().Get("check_in"), "check_in")
	if err != nil {
		writeError(w, err)
		return
	}
	checkOut, err := parseDate(r.URL.Query().Get("check_out"), "check_out")
	if err != nil {
		writeError(w, err)
		return
	}
	rooms, err := h.Rooms.Available(r.Context(), checkIn, checkOut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

// ---- reservations ----

type createReservationReq struct {
	ClientID int64  `json:"client_id" validate:"required,gt=0"`
	RoomID   int64  `json:"room_id" validate:"required,gt=0"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

type reservationStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("from") != "" || q.Get("to") != "" {
		from, err := parseDate(q.Get("from"), "from")
		if err != nil {
			writeError(w, err)
			return
		}
		to, err := parseDate(q.Get("to"), "to")
		if err != nil {
			writeError(w, err)
			return
		}
		rvs, err := h.Reservations.GetByDateRange(r.Context(), from, to)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rvs)
		return
	}

	rvs, err := h.Reservations.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rvs)
}

func (h *Handlers) getReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rv, err := h.Reservations.GetWithDetails(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	checkIn, err := parseDate(req.CheckIn, "check_in")
	if err != nil {
		writeError(w, err)
		return
	}
	checkOut, err := parseDate(req.CheckOut, "check_out")
	if err != nil {
		writeError(w, err)
		return
	}
	rv, err := h.Reservations.Create(r.Context(), req.ClientID, req.RoomID, checkIn, checkOut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *Handlers) updateReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req reservationStatusReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	status, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	rv, err := h.Reservations.UpdateStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *Handlers) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Reservations.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- payments ----

type createPaymentReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required"`
}

func (h *Handlers) listReservationPayments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ps, err := h.Payments.GetByReservationID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *Handlers) createPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createPaymentReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	p, err := h.Payments.Process(r.Context(), id, req.Amount, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) deletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Payments.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
