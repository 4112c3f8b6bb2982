package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"metalease/internal/domain/lease"
	"metalease/internal/infra"
	"metalease/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contractColumns = "id, project_id, offer_id, start_time, end_time, status, properties, created_at, updated_at"

type ContractRepository struct {
	db *pgxpool.Pool
}

func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Find(ctx context.Context, id uuid.UUID) (*lease.Contract, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+contractColumns+" FROM contracts WHERE id = $1", id)

	contract, err := scanContract(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contract", err)
	}
	return contract, nil
}

func (r *ContractRepository) List(ctx context.Context, filter commands.ContractFilter) ([]*lease.Contract, error) {
	query := "SELECT " + contractColumns + " FROM contracts"
	where, args := buildContractWhere(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY start_time"

	return r.queryContracts(ctx, query, args)
}

func (r *ContractRepository) ListForResource(ctx context.Context, resourceUUID uuid.UUID, statuses []lease.ContractStatus, overlapping *lease.TimeWindow) ([]*lease.Contract, error) {
	query := `
		SELECT c.id, c.project_id, c.offer_id, c.start_time, c.end_time, c.status, c.properties, c.created_at, c.updated_at
		FROM contracts c
		JOIN offers o ON o.id = c.offer_id
		WHERE o.resource_uuid = $1`
	args := []any{resourceUUID}

	if len(statuses) > 0 {
		ss := make([]string, len(statuses))
		for i, s := range statuses {
			ss[i] = s.String()
		}
		args = append(args, ss)
		query += fmt.Sprintf(" AND c.status = ANY($%d)", len(args))
	}
	if overlapping != nil {
		// Half-open interval overlap: touching windows do not conflict.
		args = append(args, overlapping.End())
		query += fmt.Sprintf(" AND c.start_time < $%d", len(args))
		args = append(args, overlapping.Start())
		query += fmt.Sprintf(" AND c.end_time > $%d", len(args))
	}
	query += " ORDER BY c.start_time"

	return r.queryContracts(ctx, query, args)
}

func (r *ContractRepository) Save(ctx context.Context, contract *lease.Contract) (*lease.Contract, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO contracts (id, project_id, offer_id, start_time, end_time, status, properties)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    properties = EXCLUDED.properties,
		    updated_at = now()
		RETURNING `+contractColumns,
		contract.ID(), contract.ProjectID(), contract.OfferID(),
		contract.Window().Start(), contract.Window().End(),
		contract.Status().String(), contract.Properties(),
	)

	saved, err := scanContract(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save contract", err)
	}
	return saved, nil
}

func (r *ContractRepository) queryContracts(ctx context.Context, query string, args []any) ([]*lease.Contract, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contracts", err)
	}
	defer rows.Close()

	var contracts []*lease.Contract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan contract", err)
		}
		contracts = append(contracts, contract)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate contracts", err)
	}
	return contracts, nil
}

func buildContractWhere(filter commands.ContractFilter) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ProjectID != nil {
		clauses = append(clauses, "project_id = "+arg(*filter.ProjectID))
	}
	if filter.OfferID != nil {
		clauses = append(clauses, "offer_id = "+arg(*filter.OfferID))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		clauses = append(clauses, "status = ANY("+arg(statuses)+")")
	}
	if filter.StartNotAfter != nil {
		clauses = append(clauses, "start_time <= "+arg(*filter.StartNotAfter))
	}
	if filter.EndNotAfter != nil {
		clauses = append(clauses, "end_time <= "+arg(*filter.EndNotAfter))
	}
	return strings.Join(clauses, " AND "), args
}

func scanContract(row pgx.Row) (*lease.Contract, error) {
	var (
		id, projectID, offerID uuid.UUID
		startTime, endTime     time.Time
		status                 string
		properties             map[string]any
		createdAt, updatedAt   time.Time
	)
	err := row.Scan(&id, &projectID, &offerID,
		&startTime, &endTime, &status, &properties, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return lease.ReconstructContract(
		id, projectID, offerID,
		lease.ReconstructTimeWindow(startTime, endTime),
		lease.ContractStatus(status), properties, createdAt, updatedAt,
	), nil
}
