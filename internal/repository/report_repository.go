package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/gigwork-ledger/internal/model"
)

// ReportRepository answers the admin aggregations. Both queries run as a
// single statement, so they see a consistent snapshot without any locking.
// Qualifying jobs: paid, payment_date within [start, end] inclusive, owning
// contract terminated.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// BestProfession returns the profession whose contractors earned the most in
// the window. Ties break to the lexicographically first profession.
func (r *ReportRepository) BestProfession(ctx context.Context, start, end time.Time) (*model.ProfessionEarnings, error) {
	var rows []model.ProfessionEarnings
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.profession,
			SUM(j.price) AS earned
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.contractor_id
		WHERE j.paid IS TRUE
			AND j.payment_date >= ?
			AND j.payment_date <= ?
			AND c.status = 'terminated'
		GROUP BY p.profession
		ORDER BY earned DESC, p.profession ASC
		LIMIT 1
	`, start, end).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// BestClients ranks clients by total paid in the window, descending, ties
// broken by ascending client id.
func (r *ReportRepository) BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.ClientSpend, error) {
	var rows []model.ClientSpend
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.first_name || ' ' || p.last_name AS full_name,
			SUM(j.price) AS paid
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.client_id
		WHERE j.paid IS TRUE
			AND j.payment_date >= ?
			AND j.payment_date <= ?
			AND c.status = 'terminated'
		GROUP BY p.id, p.first_name, p.last_name
		ORDER BY paid DESC, p.id ASC
		LIMIT ?
	`, start, end, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
