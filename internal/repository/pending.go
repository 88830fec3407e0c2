package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const pendingColumns = `id, promotion, listing_id, listing_title, listing_type,
		occupancy_gap, urgency, status, generated_at, expires_at`

type PendingPromoRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPendingPromoRepo(db *dbpg.DB) *PendingPromoRepository {
	return &PendingPromoRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PendingPromoRepository) Create(ctx context.Context, p *domain.PendingAIPromotion) error {
	promo, err := json.Marshal(p.Promotion)
	if err != nil {
		return fmt.Errorf("marshal draft promotion: %w", err)
	}

	query := `INSERT INTO pending_promotions (` + pendingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, promo, p.ListingID, p.ListingTitle, p.ListingType,
		p.OccupancyGap, p.Urgency, p.Status, p.GeneratedAt, p.ExpiresAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPendingDuplicate
		}
		return fmt.Errorf("insert pending promotion: %w", err)
	}

	return nil
}

func (r *PendingPromoRepository) GetByID(ctx context.Context, id string) (*domain.PendingAIPromotion, error) {
	query := `SELECT ` + pendingColumns + ` FROM pending_promotions WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get pending promotion: %w", err)
	}

	p, err := scanPending(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPendingNotFound
		}
		return nil, fmt.Errorf("scan pending promotion: %w", err)
	}

	return p, nil
}

func (r *PendingPromoRepository) ListPending(ctx context.Context) ([]*domain.PendingAIPromotion, error) {
	query := `SELECT ` + pendingColumns + `
			  FROM pending_promotions
			  WHERE status = $1
			  ORDER BY generated_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.PendingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending promotions: %w", err)
	}
	defer rows.Close()

	return collectPendings(rows)
}

func (r *PendingPromoRepository) HasLiveForListing(ctx context.Context, listingID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM pending_promotions
				WHERE listing_id = $1 AND status = $2
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, listingID, domain.PendingStatusPending)
	if err != nil {
		return false, fmt.Errorf("check live pending: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan live pending: %w", err)
	}

	return exists, nil
}

func (r *PendingPromoRepository) Resolve(ctx context.Context, id string, status domain.PendingStatus) error {
	query := `UPDATE pending_promotions
			  SET status = $2
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, domain.PendingStatusPending)
	if err != nil {
		return fmt.Errorf("resolve pending promotion: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pending rows affected: %w", err)
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrPendingResolved
	}

	return nil
}

func (r *PendingPromoRepository) ExpireDue(ctx context.Context, now time.Time) ([]*domain.PendingAIPromotion, error) {
	query := `UPDATE pending_promotions
			  SET status = $1
			  WHERE status = $2 AND expires_at < $3
			  RETURNING ` + pendingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.PendingStatusExpired, domain.PendingStatusPending, now,
	)
	if err != nil {
		return nil, fmt.Errorf("expire due pendings: %w", err)
	}
	defer rows.Close()

	return collectPendings(rows)
}

func collectPendings(rows *sql.Rows) ([]*domain.PendingAIPromotion, error) {
	var res []*domain.PendingAIPromotion
	for rows.Next() {
		p, err := scanPending(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan pending promotion: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanPending(scan func(dest ...any) error) (*domain.PendingAIPromotion, error) {
	var p domain.PendingAIPromotion
	var promo []byte

	if err := scan(
		&p.ID, &promo, &p.ListingID, &p.ListingTitle, &p.ListingType,
		&p.OccupancyGap, &p.Urgency, &p.Status, &p.GeneratedAt, &p.ExpiresAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(promo, &p.Promotion); err != nil {
		return nil, fmt.Errorf("unmarshal draft promotion: %w", err)
	}

	return &p, nil
}
