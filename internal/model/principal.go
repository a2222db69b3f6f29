package model

import "github.com/google/uuid"

// Principal is the authenticated caller, resolved by the auth middleware
// from the access token before any service method runs. Services never see
// credentials, only this.
type Principal struct {
	ProfileID uuid.UUID
	Type      ProfileType
}

func (p Principal) IsClient() bool {
	return p.Type == ProfileTypeClient
}

func (p Principal) IsContractor() bool {
	return p.Type == ProfileTypeContractor
}
