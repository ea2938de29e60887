package repository

import (
	"context"
	"time"

	"beautify-api/internal/domain/booking"
	"beautify-api/internal/infra"
	"beautify-api/internal/pkg/pgconv"
	"beautify-api/internal/usecase"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) usecase.BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `
	b.id, b.service_id, s.name AS service_name, b.slot_at,
	b.client_name, b.client_phone, b.client_email, b.notes,
	b.payment_option, b.total_ksh, b.deposit_ksh, b.paid_ksh,
	b.status, b.created_at, b.updated_at`

const createBookingQuery = `
WITH inserted AS (
	INSERT INTO bookings (
		id, service_id, slot_at, client_name, client_phone, client_email,
		notes, payment_option, total_ksh, deposit_ksh, paid_ksh, status,
		created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
	RETURNING *
)
SELECT` + bookingColumns + `
FROM inserted b
JOIN services s ON s.id = b.service_id`

func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	client := b.Client()
	row := r.pool.QueryRow(ctx, createBookingQuery,
		b.ID(), b.ServiceID(), b.SlotAt(),
		client.Name(), client.Phone(), client.Email(),
		pgconv.StringPtrToPgtype(nilIfEmpty(b.Notes())),
		b.PaymentOption().String(), b.TotalKsh(), b.DepositKsh(), b.PaidKsh(), b.Status().String(),
	)

	rm, err := scanBooking(row)
	if err != nil {
		return nil, wrapPgErr("failed to create booking", err)
	}
	return rm, nil
}

const findBookingByIDQuery = `
SELECT` + bookingColumns + `
FROM bookings b
JOIN services s ON s.id = b.service_id
WHERE b.id = $1`

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := r.pool.QueryRow(ctx, findBookingByIDQuery, id)

	rm, err := scanBooking(row)
	if err != nil {
		return nil, wrapPgErr("failed to find booking", err)
	}
	return rm, nil
}

const listBookingsQuery = `
SELECT` + bookingColumns + `
FROM bookings b
JOIN services s ON s.id = b.service_id
ORDER BY b.slot_at DESC`

func (r *bookingRepository) List(ctx context.Context) ([]*readmodel.BookingRM, error) {
	rows, err := r.pool.Query(ctx, listBookingsQuery)
	if err != nil {
		return nil, wrapPgErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return bookings, nil
}

const updateBookingStatusQuery = `
WITH updated AS (
	UPDATE bookings
	SET status = $2, updated_at = now()
	WHERE id = $1
	RETURNING *
)
SELECT` + bookingColumns + `
FROM updated b
JOIN services s ON s.id = b.service_id`

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*readmodel.BookingRM, error) {
	row := r.pool.QueryRow(ctx, updateBookingStatusQuery, id, status.String())

	rm, err := scanBooking(row)
	if err != nil {
		return nil, wrapPgErr("failed to update booking status", err)
	}
	return rm, nil
}

const confirmBookingQuery = `
WITH updated AS (
	UPDATE bookings
	SET status = $2, paid_ksh = paid_ksh + $3, updated_at = now()
	WHERE id = $1
	RETURNING *
)
SELECT` + bookingColumns + `
FROM updated b
JOIN services s ON s.id = b.service_id`

func (r *bookingRepository) Confirm(ctx context.Context, id uuid.UUID, paidKsh int) (*readmodel.BookingRM, error) {
	row := r.pool.QueryRow(ctx, confirmBookingQuery, id, booking.StatusConfirmed.String(), paidKsh)

	rm, err := scanBooking(row)
	if err != nil {
		return nil, wrapPgErr("failed to confirm booking", err)
	}
	return rm, nil
}

// Canceled bookings release their slot, so they are excluded here.
const listOccupiedSlotsQuery = `
SELECT slot_at
FROM bookings
WHERE slot_at >= $1 AND slot_at < $2 AND status <> $3`

func (r *bookingRepository) ListOccupiedSlots(ctx context.Context, date time.Time) ([]time.Time, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := r.pool.Query(ctx, listOccupiedSlotsQuery, dayStart, dayEnd, booking.StatusCanceled.String())
	if err != nil {
		return nil, wrapPgErr("failed to list occupied slots", err)
	}
	defer rows.Close()

	var slots []time.Time
	for rows.Next() {
		var slot time.Time
		if err := rows.Scan(&slot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot", err)
		}
		slots = append(slots, slot.In(date.Location()))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied slots", err)
	}
	return slots, nil
}

func scanBooking(row pgx.Row) (*readmodel.BookingRM, error) {
	var (
		rm    readmodel.BookingRM
		notes pgtype.Text
	)
	if err := row.Scan(
		&rm.ID, &rm.ServiceID, &rm.ServiceName, &rm.SlotAt,
		&rm.Name, &rm.Phone, &rm.Email, &notes,
		&rm.PaymentOption, &rm.TotalKsh, &rm.DepositKsh, &rm.PaidKsh,
		&rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
	); err != nil {
		return nil, err
	}
	rm.Notes = pgconv.StringPtrFromPgtype(notes)
	return &rm, nil
}
