package repository

import (
	"context"
	"time"

	"beautify-api/internal/domain/availability"
	"beautify-api/internal/infra"
	"beautify-api/internal/pkg/pgconv"
	"beautify-api/internal/usecase"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type availabilityRepository struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) usecase.AvailabilityRepository {
	return &availabilityRepository{pool: pool}
}

const findRuleByWeekdayQuery = `
SELECT weekday, start_time, end_time, active, updated_at
FROM availability_rules
WHERE weekday = $1`

func (r *availabilityRepository) FindRuleByWeekday(ctx context.Context, weekday int) (*readmodel.RuleRM, error) {
	row := r.pool.QueryRow(ctx, findRuleByWeekdayQuery, weekday)

	rm, err := scanRule(row)
	if err != nil {
		return nil, wrapPgErr("failed to find availability rule", err)
	}
	return rm, nil
}

const listRulesQuery = `
SELECT weekday, start_time, end_time, active, updated_at
FROM availability_rules
ORDER BY weekday`

func (r *availabilityRepository) ListRules(ctx context.Context) ([]*readmodel.RuleRM, error) {
	rows, err := r.pool.Query(ctx, listRulesQuery)
	if err != nil {
		return nil, wrapPgErr("failed to list availability rules", err)
	}
	defer rows.Close()

	var rules []*readmodel.RuleRM
	for rows.Next() {
		rm, err := scanRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability rule", err)
		}
		rules = append(rules, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability rules", err)
	}
	return rules, nil
}

const upsertRuleQuery = `
INSERT INTO availability_rules (weekday, start_time, end_time, active, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (weekday)
DO UPDATE SET start_time = $2, end_time = $3, active = $4, updated_at = now()
RETURNING weekday, start_time, end_time, active, updated_at`

func (r *availabilityRepository) UpsertRule(ctx context.Context, rule *availability.Rule) (*readmodel.RuleRM, error) {
	row := r.pool.QueryRow(ctx, upsertRuleQuery,
		int(rule.Weekday()), rule.Start().String(), rule.End().String(), rule.IsActive(),
	)

	rm, err := scanRule(row)
	if err != nil {
		return nil, wrapPgErr("failed to upsert availability rule", err)
	}
	return rm, nil
}

const listTimeOffQuery = `
SELECT id, date, start_time, end_time, reason, created_at
FROM time_off
ORDER BY date, start_time NULLS FIRST`

func (r *availabilityRepository) ListTimeOff(ctx context.Context) ([]*readmodel.TimeOffRM, error) {
	rows, err := r.pool.Query(ctx, listTimeOffQuery)
	if err != nil {
		return nil, wrapPgErr("failed to list time-off", err)
	}
	defer rows.Close()
	return collectTimeOff(rows)
}

const listTimeOffForDateQuery = `
SELECT id, date, start_time, end_time, reason, created_at
FROM time_off
WHERE date = $1::date
ORDER BY start_time NULLS FIRST`

func (r *availabilityRepository) ListTimeOffForDate(ctx context.Context, date time.Time) ([]*readmodel.TimeOffRM, error) {
	rows, err := r.pool.Query(ctx, listTimeOffForDateQuery, date)
	if err != nil {
		return nil, wrapPgErr("failed to list time-off for date", err)
	}
	defer rows.Close()
	return collectTimeOff(rows)
}

const createTimeOffQuery = `
INSERT INTO time_off (id, date, start_time, end_time, reason, created_at)
VALUES ($1, $2, $3, $4, $5, now())
RETURNING id, date, start_time, end_time, reason, created_at`

func (r *availabilityRepository) CreateTimeOff(ctx context.Context, timeOff *availability.TimeOff) (*readmodel.TimeOffRM, error) {
	row := r.pool.QueryRow(ctx, createTimeOffQuery,
		timeOff.ID(),
		timeOff.Date(),
		pgconv.StringPtrToPgtype(timeOfDayPtrString(timeOff.StartTime())),
		pgconv.StringPtrToPgtype(timeOfDayPtrString(timeOff.EndTime())),
		pgconv.StringPtrToPgtype(nilIfEmpty(timeOff.Reason())),
	)

	rm, err := scanTimeOff(row)
	if err != nil {
		return nil, wrapPgErr("failed to create time-off", err)
	}
	return rm, nil
}

const deleteTimeOffQuery = `DELETE FROM time_off WHERE id = $1`

func (r *availabilityRepository) DeleteTimeOff(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteTimeOffQuery, id)
	if err != nil {
		return wrapPgErr("failed to delete time-off", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time-off entry not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRule(row pgx.Row) (*readmodel.RuleRM, error) {
	var rm readmodel.RuleRM
	if err := row.Scan(&rm.Weekday, &rm.StartTime, &rm.EndTime, &rm.Active, &rm.UpdatedAt); err != nil {
		return nil, err
	}
	return &rm, nil
}

func scanTimeOff(row pgx.Row) (*readmodel.TimeOffRM, error) {
	var (
		rm        readmodel.TimeOffRM
		startTime pgtype.Text
		endTime   pgtype.Text
		reason    pgtype.Text
	)
	if err := row.Scan(&rm.ID, &rm.Date, &startTime, &endTime, &reason, &rm.CreatedAt); err != nil {
		return nil, err
	}
	rm.StartTime = pgconv.StringPtrFromPgtype(startTime)
	rm.EndTime = pgconv.StringPtrFromPgtype(endTime)
	rm.Reason = pgconv.StringPtrFromPgtype(reason)
	return &rm, nil
}

func collectTimeOff(rows pgx.Rows) ([]*readmodel.TimeOffRM, error) {
	var entries []*readmodel.TimeOffRM
	for rows.Next() {
		rm, err := scanTimeOff(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan time-off", err)
		}
		entries = append(entries, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time-off", err)
	}
	return entries, nil
}

func timeOfDayPtrString(t *availability.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
