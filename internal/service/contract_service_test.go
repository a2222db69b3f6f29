package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/gigwork-ledger/internal/model"
)

// stubContractStore mirrors the filters of the real queries: ownership on
// either side, non-terminated for listing, unpaid + in_progress for jobs.
type stubContractStore struct {
	contracts []model.Contract
	jobs      []model.Job
}

func (s *stubContractStore) contractByID(id uuid.UUID) *model.Contract {
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			return &s.contracts[i]
		}
	}
	return nil
}

func (s *stubContractStore) GetContractForProfile(_ context.Context, contractID, profileID uuid.UUID) (*model.Contract, error) {
	contract := s.contractByID(contractID)
	if contract == nil || !contract.BelongsTo(profileID) {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *contract
	return &clone, nil
}

func (s *stubContractStore) ListContractsForProfile(_ context.Context, profileID uuid.UUID) ([]model.Contract, error) {
	var out []model.Contract
	for _, contract := range s.contracts {
		if contract.BelongsTo(profileID) && contract.Status != model.ContractStatusTerminated {
			out = append(out, contract)
		}
	}
	return out, nil
}

func (s *stubContractStore) ListUnpaidJobsForProfile(_ context.Context, profileID uuid.UUID) ([]model.Job, error) {
	var out []model.Job
	for _, job := range s.jobs {
		if !job.IsUnpaid() {
			continue
		}
		contract := s.contractByID(job.ContractID)
		if contract == nil || !contract.IsActive() || !contract.BelongsTo(profileID) {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

func TestContractService_GetContract_Owned(t *testing.T) {
	client := uuid.New()
	contract := model.Contract{ID: uuid.New(), ClientID: client, ContractorID: uuid.New(), Status: model.ContractStatusInProgress}
	svc := NewContractService(&stubContractStore{contracts: []model.Contract{contract}}, discardLogger)

	got, err := svc.GetContract(context.Background(), model.Principal{ProfileID: client, Type: model.ProfileTypeClient}, contract.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != contract.ID {
		t.Errorf("contract id = %v, want %v", got.ID, contract.ID)
	}
}

func TestContractService_GetContract_NotOwned(t *testing.T) {
	contract := model.Contract{ID: uuid.New(), ClientID: uuid.New(), ContractorID: uuid.New()}
	svc := NewContractService(&stubContractStore{contracts: []model.Contract{contract}}, discardLogger)

	_, err := svc.GetContract(context.Background(), model.Principal{ProfileID: uuid.New(), Type: model.ProfileTypeClient}, contract.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestContractService_GetContract_Missing(t *testing.T) {
	svc := NewContractService(&stubContractStore{}, discardLogger)

	_, err := svc.GetContract(context.Background(), model.Principal{ProfileID: uuid.New(), Type: model.ProfileTypeClient}, uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestContractService_ListContracts_SkipsTerminated(t *testing.T) {
	client := uuid.New()
	store := &stubContractStore{contracts: []model.Contract{
		{ID: uuid.New(), ClientID: client, ContractorID: uuid.New(), Status: model.ContractStatusInProgress},
		{ID: uuid.New(), ClientID: client, ContractorID: uuid.New(), Status: model.ContractStatusNew},
		{ID: uuid.New(), ClientID: client, ContractorID: uuid.New(), Status: model.ContractStatusTerminated},
		{ID: uuid.New(), ClientID: uuid.New(), ContractorID: uuid.New(), Status: model.ContractStatusInProgress},
	}}
	svc := NewContractService(store, discardLogger)

	contracts, err := svc.ListContracts(context.Background(), model.Principal{ProfileID: client, Type: model.ProfileTypeClient})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contracts) != 2 {
		t.Errorf("expected 2 contracts, got %d", len(contracts))
	}
}

func TestContractService_ListContracts_EmptyIsNotAnError(t *testing.T) {
	svc := NewContractService(&stubContractStore{}, discardLogger)

	contracts, err := svc.ListContracts(context.Background(), model.Principal{ProfileID: uuid.New(), Type: model.ProfileTypeContractor})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contracts == nil || len(contracts) != 0 {
		t.Errorf("expected empty slice, got %#v", contracts)
	}
}

func TestContractService_ListUnpaidJobs_ActiveContractsOnly(t *testing.T) {
	contractor := uuid.New()
	active := model.Contract{ID: uuid.New(), ClientID: uuid.New(), ContractorID: contractor, Status: model.ContractStatusInProgress}
	terminated := model.Contract{ID: uuid.New(), ClientID: uuid.New(), ContractorID: contractor, Status: model.ContractStatusTerminated}

	paidAt := inWindow
	store := &stubContractStore{
		contracts: []model.Contract{active, terminated},
		jobs: []model.Job{
			{ID: uuid.New(), ContractID: active.ID, Price: 10},
			{ID: uuid.New(), ContractID: active.ID, Price: 20, PaidAt: &paidAt},
			{ID: uuid.New(), ContractID: terminated.ID, Price: 30},
		},
	}
	svc := NewContractService(store, discardLogger)

	jobs, err := svc.ListUnpaidJobs(context.Background(), model.Principal{ProfileID: contractor, Type: model.ProfileTypeContractor})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 unpaid job on an active contract, got %d", len(jobs))
	}
	if jobs[0].Price != 10 {
		t.Errorf("job price = %v, want 10", jobs[0].Price)
	}
}
