package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/gigwork-ledger/internal/config"
	"github.com/nurpe/gigwork-ledger/internal/metrics"
	"github.com/nurpe/gigwork-ledger/internal/model"
	"github.com/nurpe/gigwork-ledger/internal/repository"
)

// LedgerStore is what LedgerService needs from the storage layer. Both
// methods must be atomic: every rule check and every balance mutation in one
// transaction over locked rows.
type LedgerStore interface {
	PayJob(ctx context.Context, clientID, jobID uuid.UUID, now time.Time) (*model.Job, error)
	Deposit(ctx context.Context, clientID uuid.UUID, amount, capRatio float64) (float64, error)
}

// LedgerService fronts the two balance-mutating operations. Role and input
// validation happen here, before any transaction is opened; business rules
// (unpaid check, funds check, deposit cap) live in the store transaction.
type LedgerService struct {
	store    LedgerStore
	capRatio float64
	log      zerolog.Logger
}

func NewLedgerService(store LedgerStore, cfg *config.Config, log zerolog.Logger) *LedgerService {
	return &LedgerService{
		store:    store,
		capRatio: cfg.Ledger.DepositCapRatio,
		log:      log,
	}
}

// PayJob pays the job on behalf of the principal, who must be a client.
// At most one call per job ever succeeds.
func (s *LedgerService) PayJob(ctx context.Context, principal model.Principal, jobID uuid.UUID) (*model.Job, error) {
	if !principal.IsClient() {
		metrics.PaymentsTotal.WithLabelValues("denied").Inc()
		return nil, ErrPermissionDenied
	}
	if jobID == uuid.Nil {
		return nil, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}

	job, err := s.store.PayJob(ctx, principal.ProfileID, jobID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotPayable):
			metrics.PaymentsTotal.WithLabelValues("not_payable").Inc()
			return nil, ErrJobNotPayable
		case errors.Is(err, repository.ErrInsufficientFunds):
			metrics.PaymentsTotal.WithLabelValues("insufficient_funds").Inc()
			return nil, ErrInsufficientFunds
		default:
			metrics.PaymentsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
	}

	metrics.PaymentsTotal.WithLabelValues("ok").Inc()
	metrics.PaymentAmount.Observe(job.Price)
	s.log.Info().
		Str("job_id", job.ID.String()).
		Str("client_id", principal.ProfileID.String()).
		Float64("price", job.Price).
		Msg("job paid")
	return job, nil
}

// Deposit credits the principal's own balance. rawAmount arrives as the
// request's textual form so that "not a number" and "negative" stay
// distinguishable from a zero value.
func (s *LedgerService) Deposit(ctx context.Context, principal model.Principal, targetID uuid.UUID, rawAmount string) (float64, error) {
	if !principal.IsClient() || targetID != principal.ProfileID {
		metrics.DepositsTotal.WithLabelValues("denied").Inc()
		return 0, ErrPermissionDenied
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(rawAmount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		metrics.DepositsTotal.WithLabelValues("invalid").Inc()
		return 0, ErrInvalidAmount
	}
	if amount < 0 {
		metrics.DepositsTotal.WithLabelValues("invalid").Inc()
		return 0, ErrNegativeAmount
	}

	balance, err := s.store.Deposit(ctx, principal.ProfileID, amount, s.capRatio)
	if err != nil {
		var capErr *repository.DepositCapError
		switch {
		case errors.As(err, &capErr):
			metrics.DepositsTotal.WithLabelValues("cap_exceeded").Inc()
			return 0, fmt.Errorf("%w: cap is %.2f", ErrDepositCapExceeded, capErr.Cap)
		case errors.Is(err, gorm.ErrRecordNotFound):
			metrics.DepositsTotal.WithLabelValues("error").Inc()
			return 0, ErrNotFound
		default:
			metrics.DepositsTotal.WithLabelValues("error").Inc()
			return 0, err
		}
	}

	metrics.DepositsTotal.WithLabelValues("ok").Inc()
	s.log.Info().
		Str("client_id", principal.ProfileID.String()).
		Float64("amount", amount).
		Msg("deposit accepted")
	return balance, nil
}
