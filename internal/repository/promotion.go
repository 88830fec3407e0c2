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

const promotionColumns = `id, name, description, service_type, discount_type, discount_value,
		start_date, end_date, status, applicable_listings, usage_count, ai_generated,
		ai_trend, ai_trend_popularity, ai_peak_season, ai_reasoning, created_at, updated_at`

type PromotionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPromotionRepo(db *dbpg.DB) *PromotionRepository {
	return &PromotionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PromotionRepository) Create(ctx context.Context, p *domain.Promotion) error {
	query := `INSERT INTO promotions (` + promotionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	var trend, peakSeason, reasoning sql.NullString
	var popularity sql.NullInt32
	if p.AIAnalysis != nil {
		trend = sql.NullString{String: p.AIAnalysis.Trend, Valid: true}
		peakSeason = sql.NullString{String: p.AIAnalysis.PeakSeason, Valid: true}
		reasoning = sql.NullString{String: p.AIAnalysis.Reasoning, Valid: true}
		popularity = sql.NullInt32{Int32: int32(p.AIAnalysis.TrendPopularity), Valid: true}
	}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.Description, p.ServiceType, p.DiscountType, p.DiscountValue,
		p.StartDate, p.EndDate, p.Status, p.ApplicableListings, p.UsageCount, p.AIGenerated,
		trend, popularity, peakSeason, reasoning, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}

	return nil
}

func (r *PromotionRepository) GetByID(ctx context.Context, id string) (*domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get promotion: %w", err)
	}

	p, err := scanPromotion(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("scan promotion: %w", err)
	}

	return p, nil
}

func (r *PromotionRepository) List(ctx context.Context) ([]*domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()

	return collectPromotions(rows)
}

func (r *PromotionRepository) UpdateStatus(ctx context.Context, id string, from, to domain.PromotionStatus, at time.Time) error {
	query := `UPDATE promotions
			  SET status = $3, updated_at = $4
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to, at)
	if err != nil {
		return fmt.Errorf("update promotion status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("promotion rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a missing row from a status mismatch.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrInvalidTransition
	}

	return nil
}

func (r *PromotionRepository) UpdateDates(ctx context.Context, id string, start, end time.Time) error {
	query := `UPDATE promotions
			  SET start_date = $2, end_date = $3, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, start, end)
	if err != nil {
		return fmt.Errorf("update promotion dates: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("promotion rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPromotionNotFound
	}

	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("promotion rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPromotionNotFound
	}

	return nil
}

func (r *PromotionRepository) ActivateDue(ctx context.Context, now time.Time) ([]*domain.Promotion, error) {
	query := `UPDATE promotions
			  SET status = $1, updated_at = $4
			  WHERE status = $2 AND start_date <= $3
			  RETURNING ` + promotionColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.PromotionStatusActive, domain.PromotionStatusScheduled, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("activate due promotions: %w", err)
	}
	defer rows.Close()

	return collectPromotions(rows)
}

func (r *PromotionRepository) ExpireDue(ctx context.Context, now time.Time) ([]*domain.Promotion, error) {
	query := `UPDATE promotions
			  SET status = $1, updated_at = $4
			  WHERE status = $2 AND end_date < $3
			  RETURNING ` + promotionColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.PromotionStatusExpired, domain.PromotionStatusActive, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("expire due promotions: %w", err)
	}
	defer rows.Close()

	return collectPromotions(rows)
}

func collectPromotions(rows *sql.Rows) ([]*domain.Promotion, error) {
	var res []*domain.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanPromotion(scan func(dest ...any) error) (*domain.Promotion, error) {
	var p domain.Promotion
	var trend, peakSeason, reasoning sql.NullString
	var popularity sql.NullInt32

	if err := scan(
		&p.ID, &p.Name, &p.Description, &p.ServiceType, &p.DiscountType, &p.DiscountValue,
		&p.StartDate, &p.EndDate, &p.Status, &p.ApplicableListings, &p.UsageCount, &p.AIGenerated,
		&trend, &popularity, &peakSeason, &reasoning, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if trend.Valid {
		p.AIAnalysis = &domain.AIAnalysis{
			Trend:           trend.String,
			TrendPopularity: int(popularity.Int32),
			PeakSeason:      peakSeason.String,
			Reasoning:       reasoning.String,
		}
	}

	return &p, nil
}
