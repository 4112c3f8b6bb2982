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

const offerColumns = "id, project_id, resource_type, resource_uuid, start_time, end_time, status, properties, created_at, updated_at"

type OfferRepository struct {
	db *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Find(ctx context.Context, id uuid.UUID) (*lease.Offer, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+offerColumns+" FROM offers WHERE id = $1", id)

	offer, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}
	return offer, nil
}

func (r *OfferRepository) List(ctx context.Context, filter commands.OfferFilter) ([]*lease.Offer, error) {
	query := "SELECT " + offerColumns + " FROM offers"
	where, args := buildOfferWhere(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var offers []*lease.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offers", err)
	}
	return offers, nil
}

func (r *OfferRepository) Save(ctx context.Context, offer *lease.Offer) (*lease.Offer, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO offers (id, project_id, resource_type, resource_uuid, start_time, end_time, status, properties)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    properties = EXCLUDED.properties,
		    updated_at = now()
		RETURNING `+offerColumns,
		offer.ID(), offer.ProjectID(), offer.ResourceType(), offer.ResourceUUID(),
		offer.Window().Start(), offer.Window().End(), offer.Status().String(), offer.Properties(),
	)

	saved, err := scanOffer(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save offer", err)
	}
	return saved, nil
}

func buildOfferWhere(filter commands.OfferFilter) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ProjectID != nil {
		clauses = append(clauses, "project_id = "+arg(*filter.ProjectID))
	}
	if filter.ResourceUUID != nil {
		clauses = append(clauses, "resource_uuid = "+arg(*filter.ResourceUUID))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		clauses = append(clauses, "status = ANY("+arg(statuses)+")")
	}
	if filter.EndNotAfter != nil {
		clauses = append(clauses, "end_time <= "+arg(*filter.EndNotAfter))
	}
	return strings.Join(clauses, " AND "), args
}

func scanOffer(row pgx.Row) (*lease.Offer, error) {
	var (
		id, projectID, resourceUUID uuid.UUID
		resourceType, status        string
		startTime, endTime          time.Time
		properties                  map[string]any
		createdAt, updatedAt        time.Time
	)
	err := row.Scan(&id, &projectID, &resourceType, &resourceUUID,
		&startTime, &endTime, &status, &properties, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return lease.ReconstructOffer(
		id, projectID, resourceType, resourceUUID,
		lease.ReconstructTimeWindow(startTime, endTime),
		lease.OfferStatus(status), properties, createdAt, updatedAt,
	), nil
}
