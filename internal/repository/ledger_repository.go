package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/gigwork-ledger/internal/model"
)

// LedgerRepository owns the two balance-mutating transactions. Every rule
// check runs inside the same transaction as the mutation it guards, on rows
// locked with SELECT ... FOR UPDATE, so two concurrent payments of one job
// cannot both observe it unpaid.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

type payableJob struct {
	ID           uuid.UUID
	ContractID   uuid.UUID
	Price        float64
	ClientID     uuid.UUID
	ContractorID uuid.UUID
}

type lockedProfile struct {
	ID      uuid.UUID
	Balance float64
}

// PayJob transfers the job's price from the client to the contractor and
// marks the job paid, all in one transaction. Returns ErrJobNotPayable when
// no unpaid job under an in_progress contract with this client exists, and
// ErrInsufficientFunds when the client's locked balance is short.
func (r *LedgerRepository) PayJob(ctx context.Context, clientID, jobID uuid.UUID, now time.Time) (*model.Job, error) {
	var paid model.Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job payableJob
		if err := tx.Raw(`
			SELECT
				j.id,
				j.contract_id,
				j.price,
				c.client_id,
				c.contractor_id
			FROM jobs j
			JOIN contracts c ON c.id = j.contract_id
			WHERE j.id = ?
				AND j.paid IS NOT TRUE
				AND c.status = 'in_progress'
				AND c.client_id = ?
			FOR UPDATE OF j
		`, jobID, clientID).Scan(&job).Error; err != nil {
			return err
		}
		if job.ID == uuid.Nil {
			return ErrJobNotPayable
		}

		// Both profile rows locked in ascending id order to avoid deadlock
		// between opposite transfers.
		var profiles []lockedProfile
		if err := tx.Raw(`
			SELECT id, balance
			FROM profiles
			WHERE id IN (?, ?)
			ORDER BY id ASC
			FOR UPDATE
		`, job.ClientID, job.ContractorID).Scan(&profiles).Error; err != nil {
			return err
		}
		var client *lockedProfile
		for i := range profiles {
			if profiles[i].ID == job.ClientID {
				client = &profiles[i]
			}
		}
		if client == nil || len(profiles) != 2 {
			return gorm.ErrRecordNotFound
		}

		if client.Balance < job.Price {
			return ErrInsufficientFunds
		}

		if err := tx.Exec(`
			UPDATE profiles SET balance = balance - ? WHERE id = ?
		`, job.Price, job.ClientID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE profiles SET balance = balance + ? WHERE id = ?
		`, job.Price, job.ContractorID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE jobs SET paid = TRUE, payment_date = ? WHERE id = ?
		`, now, jobID).Error; err != nil {
			return err
		}

		paid = model.Job{
			ID:         job.ID,
			ContractID: job.ContractID,
			Price:      job.Price,
			PaidAt:     &now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &paid, nil
}

// Deposit credits the client's balance after checking the cap: the amount
// may not exceed capRatio times the client's outstanding total (unpaid jobs
// under in_progress contracts). The profile row is locked before the sum is
// computed; PayJob locks the same row, so the outstanding total cannot move
// between the check and the commit. Returns the new balance.
func (r *LedgerRepository) Deposit(ctx context.Context, clientID uuid.UUID, amount, capRatio float64) (float64, error) {
	var newBalance float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client lockedProfile
		if err := tx.Raw(`
			SELECT id, balance
			FROM profiles
			WHERE id = ? AND type = 'client'
			FOR UPDATE
		`, clientID).Scan(&client).Error; err != nil {
			return err
		}
		if client.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}

		var outstanding float64
		if err := tx.Raw(`
			SELECT COALESCE(SUM(j.price), 0)
			FROM jobs j
			JOIN contracts c ON c.id = j.contract_id
			WHERE c.client_id = ?
				AND c.status = 'in_progress'
				AND j.paid IS NOT TRUE
		`, clientID).Scan(&outstanding).Error; err != nil {
			return err
		}

		cap := outstanding * capRatio
		if amount > cap {
			return &DepositCapError{Cap: cap}
		}

		if err := tx.Exec(`
			UPDATE profiles SET balance = balance + ? WHERE id = ?
		`, amount, clientID).Error; err != nil {
			return err
		}

		newBalance = client.Balance + amount
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}
