package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/gigwork-ledger/internal/config"
	"github.com/nurpe/gigwork-ledger/internal/model"
)

// ReportStore is what ReportService needs from the storage layer. Both
// aggregations only consider paid jobs with a payment date inside the window
// whose contract is terminated.
type ReportStore interface {
	BestProfession(ctx context.Context, start, end time.Time) (*model.ProfessionEarnings, error)
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.ClientSpend, error)
}

type ReportService struct {
	store        ReportStore
	clientsLimit int
	log          zerolog.Logger
}

func NewReportService(store ReportStore, cfg *config.Config, log zerolog.Logger) *ReportService {
	return &ReportService{
		store:        store,
		clientsLimit: cfg.Ledger.BestClientsLimit,
		log:          log,
	}
}

// BestProfession returns the profession that earned the most inside
// [start, end]. Ties break to the lexicographically first profession.
func (s *ReportService) BestProfession(ctx context.Context, start, end time.Time) (*model.ProfessionEarnings, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	row, err := s.store.BestProfession(ctx, start, end)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoDataInRange
		}
		return nil, err
	}
	return row, nil
}

// BestClients returns up to limit clients ranked by total paid inside
// [start, end]. A non-positive limit falls back to the configured default.
func (s *ReportService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.ClientSpend, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.clientsLimit
	}

	rows, err := s.store.BestClients(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoDataInRange
	}
	return rows, nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start must be before or equal to end", ErrInvalidInput)
	}
	return nil
}
