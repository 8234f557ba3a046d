package mysql

const (
	getClientSQL    = `SELECT id, name, email, phone FROM clients WHERE id = ?`
	listClientsSQL  = `SELECT id, name, email, phone FROM clients ORDER BY id`
	insertClientSQL = `INSERT INTO clients (name, email, phone) VALUES (?, ?, ?)`
	deleteClientSQL = `DELETE FROM clients WHERE id = ?`
)

const (
	getRoomSQL         = `SELECT id, room_number, capacity, price FROM rooms WHERE id = ?`
	getRoomByNumberSQL = `SELECT id, room_number, capacity, price FROM rooms WHERE room_number = ?`
	listRoomsSQL       = `SELECT id, room_number, capacity, price FROM rooms ORDER BY room_number`
	insertRoomSQL      = `INSERT INTO rooms (room_number, capacity, price) VALUES (?, ?, ?)`
	updateRoomSQL      = `UPDATE rooms SET room_number = ?, capacity = ?, price = ? WHERE id = ?`
	deleteRoomSQL      = `DELETE FROM rooms WHERE id = ?`

	// A room is available iff no reservation still occupying it overlaps the
	// requested range. Boundaries are inclusive on both sides, so back-to-back
	// same-day turnover counts as a conflict.
	availableRoomsSQL = `
SELECT r.id, r.room_number, r.capacity, r.price
FROM rooms r
WHERE r.id NOT IN (
    SELECT res.room_id
    FROM reservations res
    WHERE res.status NOT IN ('checked_out', 'cancelled')
      AND res.check_in <= ? AND res.check_out >= ?
)
ORDER BY r.room_number`
)

const (
	reservationCols = `id, client_id, room_id, check_in, check_out, status`

	getReservationSQL          = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ?`
	listReservationsSQL        = `SELECT ` + reservationCols + ` FROM reservations ORDER BY id`
	reservationsByClientSQL    = `SELECT ` + reservationCols + ` FROM reservations WHERE client_id = ? ORDER BY check_in`
	reservationsByRoomSQL      = `SELECT ` + reservationCols + ` FROM reservations WHERE room_id = ? ORDER BY check_in`
	reservationsByDateRangeSQL = `SELECT ` + reservationCols + ` FROM reservations WHERE check_in <= ? AND check_out >= ? ORDER BY check_in`

	getReservationDetailsSQL = `
SELECT res.id, res.client_id, res.room_id, res.check_in, res.check_out, res.status,
       c.name, c.email, c.phone,
       r.room_number, r.capacity, r.price
FROM reservations res
JOIN clients c ON c.id = res.client_id
JOIN rooms r ON r.id = res.room_id
WHERE res.id = ?`

	insertReservationSQL = `INSERT INTO reservations (client_id, room_id, check_in, check_out, status) VALUES (?, ?, ?, ?, ?)`
	// Conditional on the current status so a lost race between two writers
	// degrades to a no-op instead of an illegal jump.
	updateReservationStatusSQL = `UPDATE reservations SET status = ? WHERE id = ? AND status = ?`
	deleteReservationSQL       = `DELETE FROM reservations WHERE id = ?`
)

const (
	paymentCols = `id, reservation_id, amount, method, payment_date`

	getPaymentSQL            = `SELECT ` + paymentCols + ` FROM payments WHERE id = ?`
	listPaymentsSQL          = `SELECT ` + paymentCols + ` FROM payments ORDER BY id`
	paymentsByReservationSQL = `SELECT ` + paymentCols + ` FROM payments WHERE reservation_id = ? ORDER BY payment_date`
	insertPaymentSQL         = `INSERT INTO payments (reservation_id, amount, method, payment_date) VALUES (?, ?, ?, ?)`
	deletePaymentSQL         = `DELETE FROM payments WHERE id = ?`
)

const (
	reviewCols = `id, client_id, room_id, rating, comment, review_date, is_verified, is_approved, rejection_reason`

	getReviewSQL    = `SELECT ` + reviewCols + ` FROM reviews WHERE id = ?`
	insertReviewSQL = `INSERT INTO reviews (client_id, room_id, rating, comment, review_date, is_verified, is_approved, rejection_reason) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	updateReviewSQL = `UPDATE reviews SET rating = ?, comment = ?, is_verified = ?, is_approved = ?, rejection_reason = ? WHERE id = ?`
	deleteReviewSQL = `DELETE FROM reviews WHERE id = ?`
)

const (
	requestCols = `id, client_id, room_id, request_text, category, priority, status, request_date, response, response_date, handled_by`

	getRequestSQL      = `SELECT ` + requestCols + ` FROM service_requests WHERE id = ?`
	pendingRequestsSQL = `SELECT ` + requestCols + ` FROM service_requests WHERE status = 'pending' ORDER BY priority DESC, request_date`
	requestsByRoomSQL  = `SELECT ` + requestCols + ` FROM service_requests WHERE room_id = ? ORDER BY request_date DESC`
	insertRequestSQL   = `INSERT INTO service_requests (client_id, room_id, request_text, category, priority, status, request_date) VALUES (?, ?, ?, ?, ?, ?, ?)`
	updateRequestSQL   = `UPDATE service_requests SET status = ?, priority = ?, response = ?, response_date = ?, handled_by = ? WHERE id = ?`
)
