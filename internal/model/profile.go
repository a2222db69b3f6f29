package model

import (
	"time"

	"github.com/google/uuid"
)

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

// Profile is a party on the marketplace: a client pays for jobs, a
// contractor is paid for them. Balance is mutated only by the ledger
// transactions, never assigned directly.
type Profile struct {
	ID         uuid.UUID
	Type       ProfileType
	FirstName  string
	LastName   string
	Profession string
	Balance    float64
	CreatedAt  time.Time
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Profile) IsClient() bool {
	return p.Type == ProfileTypeClient
}

func (p *Profile) IsContractor() bool {
	return p.Type == ProfileTypeContractor
}
