package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hevindesign/sitegen/internal/domain"
)

var emissionColumns = []string{"id", "destination", "bytes", "sha256", "emitted_at"}

// EmissionRepository handles database operations for emissions.
type EmissionRepository struct {
	pool *pgxpool.Pool
}

// NewEmissionRepository creates a new EmissionRepository.
func NewEmissionRepository(pool *pgxpool.Pool) *EmissionRepository {
	return &EmissionRepository{pool: pool}
}

// Ping checks that the ledger database is reachable.
func (r *EmissionRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Create records an emission.
func (r *EmissionRepository) Create(ctx context.Context, emission *domain.Emission) error {
	query, args, err := psql.
		Insert("emissions").
		Columns(emissionColumns...).
		Values(emission.ID, emission.Destination, emission.Bytes, emission.SHA256, emission.EmittedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for emission %s: %w", emission.ID, err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert emission %s: %w", emission.ID, err)
	}

	return nil
}

// GetByID retrieves an emission by ID.
func (r *EmissionRepository) GetByID(ctx context.Context, emissionID string) (*domain.Emission, error) {
	query, args, err := psql.
		Select(emissionColumns...).
		From("emissions").
		Where(sq.Eq{"id": emissionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for emission %s: %w", emissionID, err)
	}

	emission, err := scanEmission(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmissionNotFound
		}
		return nil, fmt.Errorf("query emission: %w", err)
	}

	return emission, nil
}

// List returns the most recent emissions, newest first.
func (r *EmissionRepository) List(ctx context.Context, limit int) ([]*domain.Emission, error) {
	query, args, err := psql.
		Select(emissionColumns...).
		From("emissions").
		OrderBy("emitted_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query emissions: %w", err)
	}
	defer rows.Close()

	emissions := make([]*domain.Emission, 0, limit)
	for rows.Next() {
		emission, err := scanEmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan emission: %w", err)
		}
		emissions = append(emissions, emission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return emissions, nil
}

// CountByDestination returns how many times a destination has been written.
func (r *EmissionRepository) CountByDestination(ctx context.Context, destination string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("emissions").
		Where(sq.Eq{"destination": destination}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build CountByDestination query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count emissions for %s: %w", destination, err)
	}

	return count, nil
}

func scanEmission(row pgx.Row) (*domain.Emission, error) {
	var emission domain.Emission
	err := row.Scan(
		&emission.ID,
		&emission.Destination,
		&emission.Bytes,
		&emission.SHA256,
		&emission.EmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &emission, nil
}
