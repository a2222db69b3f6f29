package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/gigwork-ledger/internal/model"
)

// ContractStore is what ContractService needs from the storage layer.
type ContractStore interface {
	GetContractForProfile(ctx context.Context, contractID, profileID uuid.UUID) (*model.Contract, error)
	ListContractsForProfile(ctx context.Context, profileID uuid.UUID) ([]model.Contract, error)
	ListUnpaidJobsForProfile(ctx context.Context, profileID uuid.UUID) ([]model.Job, error)
}

// ContractService serves the plain filtered reads: one contract, the
// caller's non-terminated contracts, the caller's unpaid jobs.
type ContractService struct {
	store ContractStore
	log   zerolog.Logger
}

func NewContractService(store ContractStore, log zerolog.Logger) *ContractService {
	return &ContractService{store: store, log: log}
}

func (s *ContractService) GetContract(ctx context.Context, principal model.Principal, contractID uuid.UUID) (*model.Contract, error) {
	if contractID == uuid.Nil {
		return nil, fmt.Errorf("%w: contract id is required", ErrInvalidInput)
	}

	contract, err := s.store.GetContractForProfile(ctx, contractID, principal.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) ListContracts(ctx context.Context, principal model.Principal) ([]model.Contract, error) {
	contracts, err := s.store.ListContractsForProfile(ctx, principal.ProfileID)
	if err != nil {
		return nil, err
	}
	if contracts == nil {
		contracts = []model.Contract{}
	}
	return contracts, nil
}

func (s *ContractService) ListUnpaidJobs(ctx context.Context, principal model.Principal) ([]model.Job, error) {
	jobs, err := s.store.ListUnpaidJobsForProfile(ctx, principal.ProfileID)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}
