package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is a billable unit of work under exactly one contract. PaidAt is nil
// until the job is paid; a paid job is immutable. There is no "false" paid
// state: the zero value of the pointer is the unpaid state.
type Job struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	Description string
	Price       float64
	PaidAt      *time.Time
	CreatedAt   time.Time
}

func (j *Job) IsUnpaid() bool {
	return j.PaidAt == nil
}
