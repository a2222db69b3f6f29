package model

import "github.com/google/uuid"

// ProfessionEarnings is one row of the best-profession aggregation: total
// price of qualifying paid jobs credited to contractors of that profession.
type ProfessionEarnings struct {
	Profession string
	Earned     float64
}

// ClientSpend is one row of the best-clients ranking.
type ClientSpend struct {
	ID       uuid.UUID
	FullName string
	Paid     float64
}
