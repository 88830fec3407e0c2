package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, listing_type, title, capacity, unit_rate, occupancy_rate, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.Type, l.Title, l.Capacity, l.UnitRate, l.OccupancyRate, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT id, listing_type, title, capacity, unit_rate, occupancy_rate, last_scanned_at, created_at, updated_at
			  FROM listings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	l, err := scanListing(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	return l, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT id, listing_type, title, capacity, unit_rate, occupancy_rate, last_scanned_at, created_at, updated_at
			  FROM listings
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func (r *ListingRepository) UpdateScan(ctx context.Context, id string, occupancyRate int, scannedAt time.Time) error {
	query := `UPDATE listings
			  SET occupancy_rate = $2, last_scanned_at = $3, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, occupancyRate, scannedAt)
	if err != nil {
		return fmt.Errorf("update listing scan: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

func scanListing(scan func(dest ...any) error) (*domain.Listing, error) {
	var l domain.Listing
	var scannedAt sql.NullTime
	if err := scan(
		&l.ID, &l.Type, &l.Title, &l.Capacity, &l.UnitRate,
		&l.OccupancyRate, &scannedAt, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if scannedAt.Valid {
		t := scannedAt.Time
		l.LastScannedAt = &t
	}
	return &l, nil
}
