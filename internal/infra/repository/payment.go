package repository

import (
	"context"

	"beautify-api/internal/infra"
	"beautify-api/internal/pkg/pgconv"
	"beautify-api/internal/usecase"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type paymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) usecase.PaymentRepository {
	return &paymentRepository{pool: pool}
}

// One payment row per booking. Re-initiating a push replaces the previous
// pending attempt instead of stacking rows.
const upsertPaymentQuery = `
INSERT INTO payments (booking_id, method, status, amount_ksh, phone, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
ON CONFLICT (booking_id)
DO UPDATE SET method = $2, status = $3, amount_ksh = $4, phone = $5, receipt = NULL, updated_at = now()`

func (r *paymentRepository) Upsert(ctx context.Context, p *readmodel.PaymentRM) error {
	_, err := r.pool.Exec(ctx, upsertPaymentQuery,
		p.BookingID, p.Method, p.Status, p.AmountKsh, p.Phone,
	)
	if err != nil {
		return wrapPgErr("failed to upsert payment", err)
	}
	return nil
}

const findPendingPaymentQuery = `
SELECT booking_id, method, status, amount_ksh, phone, receipt, created_at, updated_at
FROM payments
WHERE phone = $1 AND amount_ksh = $2 AND status = $3
ORDER BY updated_at DESC
LIMIT 1`

func (r *paymentRepository) FindPendingByPhoneAmount(ctx context.Context, phone string, amountKsh int) (*readmodel.PaymentRM, error) {
	row := r.pool.QueryRow(ctx, findPendingPaymentQuery, phone, amountKsh, usecase.PaymentStatusPending)

	var (
		rm      readmodel.PaymentRM
		receipt pgtype.Text
	)
	if err := row.Scan(
		&rm.BookingID, &rm.Method, &rm.Status, &rm.AmountKsh, &rm.Phone,
		&receipt, &rm.CreatedAt, &rm.UpdatedAt,
	); err != nil {
		return nil, wrapPgErr("failed to find pending payment", err)
	}
	rm.Receipt = pgconv.StringPtrFromPgtype(receipt)
	return &rm, nil
}

const markPaymentSuccessQuery = `
UPDATE payments
SET status = $2, receipt = $3, updated_at = now()
WHERE booking_id = $1`

func (r *paymentRepository) MarkSuccess(ctx context.Context, bookingID uuid.UUID, receipt string) error {
	tag, err := r.pool.Exec(ctx, markPaymentSuccessQuery, bookingID, usecase.PaymentStatusSuccess, receipt)
	if err != nil {
		return wrapPgErr("failed to mark payment success", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

const markPaymentFailedQuery = `
UPDATE payments
SET status = $2, updated_at = now()
WHERE booking_id = $1`

func (r *paymentRepository) MarkFailed(ctx context.Context, bookingID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, markPaymentFailedQuery, bookingID, usecase.PaymentStatusFailed)
	if err != nil {
		return wrapPgErr("failed to mark payment failed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
