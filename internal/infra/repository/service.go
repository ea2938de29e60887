package repository

import (
	"context"

	"beautify-api/internal/infra"
	"beautify-api/internal/usecase"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type serviceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) usecase.ServiceRepository {
	return &serviceRepository{pool: pool}
}

const findServiceByIDQuery = `
SELECT id, name, description, base_price, duration_min, category, active, created_at, updated_at
FROM services
WHERE id = $1`

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error) {
	row := r.pool.QueryRow(ctx, findServiceByIDQuery, id)

	rm, err := scanService(row)
	if err != nil {
		return nil, wrapPgErr("failed to find service", err)
	}
	return rm, nil
}

const listActiveServicesQuery = `
SELECT id, name, description, base_price, duration_min, category, active, created_at, updated_at
FROM services
WHERE active
ORDER BY category, name`

func (r *serviceRepository) ListActive(ctx context.Context) ([]*readmodel.ServiceRM, error) {
	rows, err := r.pool.Query(ctx, listActiveServicesQuery)
	if err != nil {
		return nil, wrapPgErr("failed to list services", err)
	}
	defer rows.Close()

	var services []*readmodel.ServiceRM
	for rows.Next() {
		rm, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		services = append(services, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return services, nil
}

const createServiceQuery = `
INSERT INTO services (id, name, description, base_price, duration_min, category, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id, name, description, base_price, duration_min, category, active, created_at, updated_at`

func (r *serviceRepository) Create(ctx context.Context, svc *readmodel.ServiceRM) (*readmodel.ServiceRM, error) {
	row := r.pool.QueryRow(ctx, createServiceQuery,
		svc.ID, svc.Name, svc.Description, svc.BasePrice, svc.DurationMin, svc.Category, svc.Active,
	)

	rm, err := scanService(row)
	if err != nil {
		return nil, wrapPgErr("failed to create service", err)
	}
	return rm, nil
}

const updateServiceQuery = `
UPDATE services
SET name = $2, description = $3, base_price = $4, duration_min = $5, category = $6, active = $7, updated_at = now()
WHERE id = $1
RETURNING id, name, description, base_price, duration_min, category, active, created_at, updated_at`

func (r *serviceRepository) Update(ctx context.Context, svc *readmodel.ServiceRM) (*readmodel.ServiceRM, error) {
	row := r.pool.QueryRow(ctx, updateServiceQuery,
		svc.ID, svc.Name, svc.Description, svc.BasePrice, svc.DurationMin, svc.Category, svc.Active,
	)

	rm, err := scanService(row)
	if err != nil {
		return nil, wrapPgErr("failed to update service", err)
	}
	return rm, nil
}

func scanService(row pgx.Row) (*readmodel.ServiceRM, error) {
	var rm readmodel.ServiceRM
	if err := row.Scan(
		&rm.ID, &rm.Name, &rm.Description, &rm.BasePrice, &rm.DurationMin,
		&rm.Category, &rm.Active, &rm.CreatedAt, &rm.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rm, nil
}
